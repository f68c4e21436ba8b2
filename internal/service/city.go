package service

import (
	"context"
	"strings"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/daterange"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/store"
)

// normalizeCity validates a city against its trip. The order index is left
// for the store to assign.
func normalizeCity(trip model.Trip, in model.CityInput) (model.City, error) {
	name, err := requiredText("name", in.Name)
	if err != nil {
		return model.City{}, err
	}
	start, err := daterange.ParseDate("start_date", in.StartDate)
	if err != nil {
		return model.City{}, err
	}
	end, err := daterange.ParseDate("end_date", in.EndDate)
	if err != nil {
		return model.City{}, err
	}
	if err := daterange.AssertNested(start, end, trip.StartDate, trip.EndDate); err != nil {
		return model.City{}, err
	}
	return model.City{
		TripID:    trip.ID,
		Name:      name,
		Country:   strings.TrimSpace(in.Country),
		StartDate: start,
		EndDate:   end,
	}, nil
}

// AddCity appends a city to the end of the trip's visit order.
func (p *Planner) AddCity(ctx context.Context, userID, tripID string, in model.CityInput) (model.City, error) {
	trip, err := p.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return model.City{}, err
	}
	city, err := normalizeCity(trip, in)
	if err != nil {
		return model.City{}, err
	}
	return p.store.AddCity(ctx, city)
}

// GetCity returns one city of the trip.
func (p *Planner) GetCity(ctx context.Context, userID, tripID, cityID string) (model.City, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return model.City{}, err
	}
	return p.store.GetCity(ctx, tripID, cityID)
}

// ListCities returns the trip's cities in visit order.
func (p *Planner) ListCities(ctx context.Context, userID, tripID string) ([]model.City, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	return p.store.ListCities(ctx, tripID)
}

// UpdateCity applies a partial update. The new range must stay inside the
// trip and still contain every activity of the city.
func (p *Planner) UpdateCity(ctx context.Context, userID, tripID, cityID string, patch model.CityPatch) (model.City, error) {
	trip, err := p.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return model.City{}, err
	}
	city, err := p.store.GetCity(ctx, tripID, cityID)
	if err != nil {
		return model.City{}, err
	}

	in := model.CityInput{
		Name:      city.Name,
		Country:   city.Country,
		StartDate: city.StartDate.String(),
		EndDate:   city.EndDate.String(),
	}
	if patch.Name != nil {
		in.Name = *patch.Name
	}
	if patch.Country != nil {
		in.Country = *patch.Country
	}
	if patch.StartDate != nil {
		in.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		in.EndDate = *patch.EndDate
	}

	next, err := normalizeCity(trip, in)
	if err != nil {
		return model.City{}, err
	}
	next.ID = city.ID
	next.OrderIndex = city.OrderIndex

	if patch.StartDate != nil || patch.EndDate != nil {
		activities, err := p.store.ListActivities(ctx, tripID, store.ActivityFilter{CityID: &city.ID})
		if err != nil {
			return model.City{}, err
		}
		for _, a := range activities {
			if err := daterange.AssertWithin(a.Date, next.StartDate, next.EndDate); err != nil {
				return model.City{}, apperr.Range("activity %s on %s would fall outside the city", a.Name, a.Date)
			}
		}
	}

	return p.store.UpdateCity(ctx, next)
}

// DeleteCity removes a city and its activities and closes the gap in the
// visit order.
func (p *Planner) DeleteCity(ctx context.Context, userID, tripID, cityID string) error {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return err
	}
	return p.store.DeleteCity(ctx, tripID, cityID)
}

// ReorderCities applies a complete reorder batch and returns the cities in
// their new order.
func (p *Planner) ReorderCities(ctx context.Context, userID, tripID string, assignments []model.ReorderAssignment) ([]model.City, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	cleaned := make([]model.ReorderAssignment, len(assignments))
	for i, a := range assignments {
		cleaned[i] = model.ReorderAssignment{CityID: strings.TrimSpace(a.CityID), OrderIndex: a.OrderIndex}
	}
	return p.store.ReorderCities(ctx, tripID, cleaned)
}
