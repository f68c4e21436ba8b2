package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItineraryRow is one row of the city ⟕ activity join for a trip. Activity
// is nil for a city without activities.
type ItineraryRow struct {
	City     City
	Activity *Activity
}

// CityGroup is one city in the city-wise itinerary.
type CityGroup struct {
	CityID     string         `json:"city_id"`
	CityName   string         `json:"city_name"`
	Country    string         `json:"country"`
	DateRange  string         `json:"date_range"`
	Activities []ActivityView `json:"activities"`
}

// ActivityView is an activity as surfaced in the city-wise itinerary.
type ActivityView struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	Date      Date            `json:"activity_date"`
	StartTime *Clock          `json:"start_time"`
	EndTime   *Clock          `json:"end_time"`
	Cost      decimal.Decimal `json:"cost"`
	Notes     *string         `json:"notes,omitempty"`
	Editable  bool            `json:"editable"`

	createdAt time.Time
}

// CreatedAt is the creation time used as the last sort key.
func (v ActivityView) CreatedAt() time.Time { return v.createdAt }

// NewActivityView projects an activity for itinerary views.
func NewActivityView(a Activity, editable bool) ActivityView {
	return ActivityView{
		ID:        a.ID,
		Name:      a.Name,
		Category:  a.Category,
		Date:      a.Date,
		StartTime: a.StartTime,
		EndTime:   a.EndTime,
		Cost:      a.Cost,
		Notes:     a.Notes,
		Editable:  editable,
		createdAt: a.CreatedAt,
	}
}

// DayGroup is the activities of one city on one date.
type DayGroup struct {
	Date       Date       `json:"date"`
	CityID     string     `json:"city_id"`
	City       string     `json:"city"`
	Activities []DayEntry `json:"activities"`
}

// DayEntry is the compact activity form used in the day-wise itinerary.
type DayEntry struct {
	ActivityID   string          `json:"activity_id"`
	ActivityName string          `json:"activity_name"`
	StartTime    *Clock          `json:"start_time"`
	EndTime      *Clock          `json:"end_time"`
	Cost         decimal.Decimal `json:"cost"`
}

// Itinerary holds both read models computed from one join.
type Itinerary struct {
	DayWise  []DayGroup  `json:"daywise"`
	CityWise []CityGroup `json:"citywise"`
}

// PublicTrip is the read-only view served for a share token.
type PublicTrip struct {
	Trip       Trip       `json:"trip"`
	Cities     []City     `json:"cities"`
	Activities []Activity `json:"activities"`
	Itinerary  Itinerary  `json:"itinerary"`
}
