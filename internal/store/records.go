package store

import (
	"fmt"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/daterange"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// Persisted row shapes. They never leave this package; each has one
// mapping function to its model type.

const tripColumns = `id, owner_id, name, description, start_date, end_date,
	cover_image_url, status, budget_cents, currency, is_public, share_token,
	created_at, updated_at`

type tripRecord struct {
	ID            string  `db:"id"`
	OwnerID       string  `db:"owner_id"`
	Name          string  `db:"name"`
	Description   *string `db:"description"`
	StartDate     string  `db:"start_date"`
	EndDate       string  `db:"end_date"`
	CoverImageURL *string `db:"cover_image_url"`
	Status        string  `db:"status"`
	BudgetCents   *int64  `db:"budget_cents"`
	Currency      string  `db:"currency"`
	IsPublic      int     `db:"is_public"`
	ShareToken    *string `db:"share_token"`
	CreatedAt     int64   `db:"created_at"`
	UpdatedAt     int64   `db:"updated_at"`
}

func (r tripRecord) toModel() (model.Trip, error) {
	start, err := daterange.ParseDate("start_date", r.StartDate)
	if err != nil {
		return model.Trip{}, fmt.Errorf("trip %s: %w", r.ID, err)
	}
	end, err := daterange.ParseDate("end_date", r.EndDate)
	if err != nil {
		return model.Trip{}, fmt.Errorf("trip %s: %w", r.ID, err)
	}

	t := model.Trip{
		ID:            r.ID,
		OwnerID:       r.OwnerID,
		Name:          r.Name,
		Description:   r.Description,
		StartDate:     start,
		EndDate:       end,
		CoverImageURL: r.CoverImageURL,
		Status:        model.TripStatus(r.Status),
		Currency:      r.Currency,
		IsPublic:      r.IsPublic != 0,
		ShareToken:    r.ShareToken,
		CreatedAt:     fromMillis(r.CreatedAt),
		UpdatedAt:     fromMillis(r.UpdatedAt),
	}
	if r.BudgetCents != nil {
		total := model.FromCents(*r.BudgetCents)
		t.BudgetTotal = &total
	}
	return t, nil
}

func tripsFromRecords(recs []tripRecord) ([]model.Trip, error) {
	trips := make([]model.Trip, 0, len(recs))
	for _, r := range recs {
		t, err := r.toModel()
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, nil
}

const cityColumns = `id, trip_id, name, country, start_date, end_date,
	order_index, created_at, updated_at`

type cityRecord struct {
	ID         string `db:"id"`
	TripID     string `db:"trip_id"`
	Name       string `db:"name"`
	Country    string `db:"country"`
	StartDate  string `db:"start_date"`
	EndDate    string `db:"end_date"`
	OrderIndex int    `db:"order_index"`
	CreatedAt  int64  `db:"created_at"`
	UpdatedAt  int64  `db:"updated_at"`
}

func (r cityRecord) toModel() (model.City, error) {
	start, err := daterange.ParseDate("start_date", r.StartDate)
	if err != nil {
		return model.City{}, fmt.Errorf("city %s: %w", r.ID, err)
	}
	end, err := daterange.ParseDate("end_date", r.EndDate)
	if err != nil {
		return model.City{}, fmt.Errorf("city %s: %w", r.ID, err)
	}
	return model.City{
		ID:         r.ID,
		TripID:     r.TripID,
		Name:       r.Name,
		Country:    r.Country,
		StartDate:  start,
		EndDate:    end,
		OrderIndex: r.OrderIndex,
		CreatedAt:  fromMillis(r.CreatedAt),
		UpdatedAt:  fromMillis(r.UpdatedAt),
	}, nil
}

const activityColumns = `id, trip_id, city_id, name, category, activity_date,
	start_time, end_time, cost_cents, notes, created_at, updated_at`

type activityRecord struct {
	ID           string  `db:"id"`
	TripID       string  `db:"trip_id"`
	CityID       string  `db:"city_id"`
	Name         string  `db:"name"`
	Category     string  `db:"category"`
	ActivityDate string  `db:"activity_date"`
	StartTime    *string `db:"start_time"`
	EndTime      *string `db:"end_time"`
	CostCents    int64   `db:"cost_cents"`
	Notes        *string `db:"notes"`
	CreatedAt    int64   `db:"created_at"`
	UpdatedAt    int64   `db:"updated_at"`
}

func (r activityRecord) toModel() (model.Activity, error) {
	date, err := daterange.ParseDate("activity_date", r.ActivityDate)
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %s: %w", r.ID, err)
	}
	start, err := daterange.ParseOptionalClock("start_time", r.StartTime)
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %s: %w", r.ID, err)
	}
	end, err := daterange.ParseOptionalClock("end_time", r.EndTime)
	if err != nil {
		return model.Activity{}, fmt.Errorf("activity %s: %w", r.ID, err)
	}
	return model.Activity{
		ID:        r.ID,
		TripID:    r.TripID,
		CityID:    r.CityID,
		Name:      r.Name,
		Category:  model.Category(r.Category),
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Cost:      model.FromCents(r.CostCents),
		Notes:     r.Notes,
		CreatedAt: fromMillis(r.CreatedAt),
		UpdatedAt: fromMillis(r.UpdatedAt),
	}, nil
}

func activitiesFromRecords(recs []activityRecord) ([]model.Activity, error) {
	out := make([]model.Activity, 0, len(recs))
	for _, r := range recs {
		a, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// itineraryRecord is one row of the cities LEFT JOIN activities query.
// Activity columns are NULL for cities without activities.
type itineraryRecord struct {
	cityRecord
	ActivityID        *string `db:"a_id"`
	ActivityName      *string `db:"a_name"`
	ActivityCategory  *string `db:"a_category"`
	ActivityDate      *string `db:"a_activity_date"`
	ActivityStartTime *string `db:"a_start_time"`
	ActivityEndTime   *string `db:"a_end_time"`
	ActivityCostCents *int64  `db:"a_cost_cents"`
	ActivityNotes     *string `db:"a_notes"`
	ActivityCreatedAt *int64  `db:"a_created_at"`
	ActivityUpdatedAt *int64  `db:"a_updated_at"`
}

func (r itineraryRecord) toModel() (model.ItineraryRow, error) {
	city, err := r.cityRecord.toModel()
	if err != nil {
		return model.ItineraryRow{}, err
	}
	row := model.ItineraryRow{City: city}
	if r.ActivityID == nil {
		return row, nil
	}

	a := activityRecord{
		ID:        *r.ActivityID,
		TripID:    city.TripID,
		CityID:    city.ID,
		StartTime: r.ActivityStartTime,
		EndTime:   r.ActivityEndTime,
		Notes:     r.ActivityNotes,
	}
	if r.ActivityName != nil {
		a.Name = *r.ActivityName
	}
	if r.ActivityCategory != nil {
		a.Category = *r.ActivityCategory
	}
	if r.ActivityDate != nil {
		a.ActivityDate = *r.ActivityDate
	}
	if r.ActivityCostCents != nil {
		a.CostCents = *r.ActivityCostCents
	}
	if r.ActivityCreatedAt != nil {
		a.CreatedAt = *r.ActivityCreatedAt
	}
	if r.ActivityUpdatedAt != nil {
		a.UpdatedAt = *r.ActivityUpdatedAt
	}
	activity, err := a.toModel()
	if err != nil {
		return model.ItineraryRow{}, err
	}
	row.Activity = &activity
	return row, nil
}

func clockValue(c *model.Clock) *string {
	if c == nil {
		return nil
	}
	s := c.Storage()
	return &s
}
