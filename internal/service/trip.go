package service

import (
	"context"
	"strings"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/daterange"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// normalizeTrip validates a create payload into a trip row.
func (p *Planner) normalizeTrip(userID string, in model.TripInput) (model.Trip, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Trip{}, apperr.Invalid("user id is required")
	}
	name, err := requiredText("name", in.Name)
	if err != nil {
		return model.Trip{}, err
	}
	start, err := daterange.ParseDate("start_date", in.StartDate)
	if err != nil {
		return model.Trip{}, err
	}
	end, err := daterange.ParseDate("end_date", in.EndDate)
	if err != nil {
		return model.Trip{}, err
	}
	if err := daterange.AssertOrdered("trip", start, end); err != nil {
		return model.Trip{}, err
	}

	currency := strings.TrimSpace(in.Currency)
	if currency == "" {
		currency = p.defaultCurrency
	}
	currency, err = model.NormalizeCurrency(currency)
	if err != nil {
		return model.Trip{}, err
	}

	trip := model.Trip{
		OwnerID:       userID,
		Name:          name,
		Description:   optionalText(in.Description),
		StartDate:     start,
		EndDate:       end,
		CoverImageURL: optionalText(in.CoverImageURL),
		Currency:      currency,
	}
	if in.BudgetTotal != nil {
		total, err := model.NormalizeAmount("budget_total", *in.BudgetTotal)
		if err != nil {
			return model.Trip{}, err
		}
		trip.BudgetTotal = &total
	}
	return p.withStatus(trip), nil
}

// applyTripPatch merges a partial update into trip and re-validates it.
func (p *Planner) applyTripPatch(trip model.Trip, patch model.TripPatch) (model.Trip, error) {
	if patch.Name != nil {
		name, err := requiredText("name", *patch.Name)
		if err != nil {
			return model.Trip{}, err
		}
		trip.Name = name
	}
	if patch.Description != nil {
		trip.Description = optionalText(patch.Description)
	}
	if patch.CoverImageURL != nil {
		trip.CoverImageURL = optionalText(patch.CoverImageURL)
	}
	if patch.StartDate != nil {
		start, err := daterange.ParseDate("start_date", *patch.StartDate)
		if err != nil {
			return model.Trip{}, err
		}
		trip.StartDate = start
	}
	if patch.EndDate != nil {
		end, err := daterange.ParseDate("end_date", *patch.EndDate)
		if err != nil {
			return model.Trip{}, err
		}
		trip.EndDate = end
	}
	if err := daterange.AssertOrdered("trip", trip.StartDate, trip.EndDate); err != nil {
		return model.Trip{}, err
	}
	return p.withStatus(trip), nil
}

// CreateTrip creates an empty trip owned by userID.
func (p *Planner) CreateTrip(ctx context.Context, userID string, in model.TripInput) (model.Trip, error) {
	trip, err := p.normalizeTrip(userID, in)
	if err != nil {
		return model.Trip{}, err
	}
	return p.store.CreateTrip(ctx, trip)
}

// GetTrip returns one of userID's trips.
func (p *Planner) GetTrip(ctx context.Context, userID, tripID string) (model.Trip, error) {
	trip, err := p.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return model.Trip{}, err
	}
	return p.withStatus(trip), nil
}

// ListTrips returns userID's trips, earliest first.
func (p *Planner) ListTrips(ctx context.Context, userID string) ([]model.Trip, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperr.Invalid("user id is required")
	}
	trips, err := p.store.ListTrips(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		trips[i] = p.withStatus(trips[i])
	}
	return trips, nil
}

// UpdateTrip applies a partial update. New dates must still contain every
// city of the trip.
func (p *Planner) UpdateTrip(ctx context.Context, userID, tripID string, patch model.TripPatch) (model.Trip, error) {
	trip, err := p.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return model.Trip{}, err
	}
	updated, err := p.applyTripPatch(trip, patch)
	if err != nil {
		return model.Trip{}, err
	}

	if patch.StartDate != nil || patch.EndDate != nil {
		cities, err := p.store.ListCities(ctx, tripID)
		if err != nil {
			return model.Trip{}, err
		}
		for _, c := range cities {
			if err := daterange.AssertNested(c.StartDate, c.EndDate, updated.StartDate, updated.EndDate); err != nil {
				return model.Trip{}, apperr.Range("city %s (%s to %s) would fall outside the trip", c.Name, c.StartDate, c.EndDate)
			}
		}
	}

	return p.store.UpdateTrip(ctx, updated)
}

// DeleteTrip removes a trip with all its cities and activities.
func (p *Planner) DeleteTrip(ctx context.Context, userID, tripID string) error {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return err
	}
	return p.store.DeleteTrip(ctx, tripID)
}
