package service

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/daterange"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/store"
)

// normalizeActivity validates an activity against its city. The trip id is
// always taken from the city.
func normalizeActivity(city model.City, in model.ActivityInput) (model.Activity, error) {
	name, err := requiredText("name", in.Name)
	if err != nil {
		return model.Activity{}, err
	}
	category := model.Category(strings.ToLower(strings.TrimSpace(in.Category)))
	if !category.Valid() {
		return model.Activity{}, apperr.Invalid("category %q is not one of %v", in.Category, model.Categories)
	}
	date, err := daterange.ParseDate("activity_date", in.Date)
	if err != nil {
		return model.Activity{}, err
	}
	if err := daterange.AssertWithin(date, city.StartDate, city.EndDate); err != nil {
		return model.Activity{}, err
	}
	start, err := daterange.ParseOptionalClock("start_time", in.StartTime)
	if err != nil {
		return model.Activity{}, err
	}
	end, err := daterange.ParseOptionalClock("end_time", in.EndTime)
	if err != nil {
		return model.Activity{}, err
	}
	if err := daterange.AssertTimeOrder(start, end); err != nil {
		return model.Activity{}, err
	}

	cost := decimal.Zero
	if in.Cost != nil && strings.TrimSpace(*in.Cost) != "" {
		cost, err = model.ParseAmount("cost", *in.Cost)
		if err != nil {
			return model.Activity{}, err
		}
	}

	return model.Activity{
		TripID:    city.TripID,
		CityID:    city.ID,
		Name:      name,
		Category:  category,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Cost:      cost,
		Notes:     optionalText(in.Notes),
	}, nil
}

// AddActivity creates an activity in one of the trip's cities.
func (p *Planner) AddActivity(ctx context.Context, userID, tripID string, in model.ActivityInput) (model.Activity, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return model.Activity{}, err
	}
	cityID := strings.TrimSpace(in.CityID)
	if cityID == "" {
		return model.Activity{}, apperr.Invalid("city_id is required")
	}
	city, err := p.store.GetCity(ctx, tripID, cityID)
	if err != nil {
		return model.Activity{}, err
	}
	activity, err := normalizeActivity(city, in)
	if err != nil {
		return model.Activity{}, err
	}
	return p.store.CreateActivity(ctx, activity)
}

// GetActivity returns one activity of the trip.
func (p *Planner) GetActivity(ctx context.Context, userID, tripID, activityID string) (model.Activity, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return model.Activity{}, err
	}
	return p.store.GetActivity(ctx, tripID, activityID)
}

// ListActivities returns the trip's activities, optionally narrowed to one
// city, in itinerary order.
func (p *Planner) ListActivities(ctx context.Context, userID, tripID string, cityID *string) ([]model.Activity, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	var filter store.ActivityFilter
	if cityID != nil {
		if _, err := p.store.GetCity(ctx, tripID, *cityID); err != nil {
			return nil, err
		}
		filter.CityID = cityID
	}
	return p.store.ListActivities(ctx, tripID, filter)
}

// UpdateActivity applies a partial update. The activity may move to another
// city of the same trip; every invariant is checked against the result.
func (p *Planner) UpdateActivity(ctx context.Context, userID, tripID, activityID string, patch model.ActivityPatch) (model.Activity, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return model.Activity{}, err
	}
	current, err := p.store.GetActivity(ctx, tripID, activityID)
	if err != nil {
		return model.Activity{}, err
	}

	in := activityInputOf(current)
	if patch.CityID != nil {
		in.CityID = strings.TrimSpace(*patch.CityID)
	}
	if patch.Name != nil {
		in.Name = *patch.Name
	}
	if patch.Category != nil {
		in.Category = *patch.Category
	}
	if patch.Date != nil {
		in.Date = *patch.Date
	}
	if patch.StartTime != nil {
		in.StartTime = patch.StartTime
	}
	if patch.EndTime != nil {
		in.EndTime = patch.EndTime
	}
	if patch.Cost != nil {
		in.Cost = patch.Cost
	}
	if patch.Notes != nil {
		in.Notes = patch.Notes
	}

	city, err := p.store.GetCity(ctx, tripID, in.CityID)
	if err != nil {
		return model.Activity{}, err
	}
	next, err := normalizeActivity(city, in)
	if err != nil {
		return model.Activity{}, err
	}
	next.ID = current.ID
	return p.store.UpdateActivity(ctx, next)
}

// activityInputOf renders a stored activity back into its input form.
func activityInputOf(a model.Activity) model.ActivityInput {
	in := model.ActivityInput{
		CityID:   a.CityID,
		Name:     a.Name,
		Category: string(a.Category),
		Date:     a.Date.String(),
		Notes:    a.Notes,
	}
	if a.StartTime != nil {
		s := a.StartTime.Storage()
		in.StartTime = &s
	}
	if a.EndTime != nil {
		s := a.EndTime.Storage()
		in.EndTime = &s
	}
	cost := a.Cost.StringFixed(2)
	in.Cost = &cost
	return in
}

// DeleteActivity removes one activity.
func (p *Planner) DeleteActivity(ctx context.Context, userID, tripID, activityID string) error {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return err
	}
	return p.store.DeleteActivity(ctx, tripID, activityID)
}
