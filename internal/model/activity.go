package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category classifies an activity for budget breakdowns.
type Category string

// Category constants.
const (
	CategorySightseeing Category = "sightseeing"
	CategoryFood        Category = "food"
	CategoryTravel      Category = "travel"
	CategoryStay        Category = "stay"
	CategoryOther       Category = "other"
)

// Categories lists every category in display order.
var Categories = []Category{
	CategorySightseeing,
	CategoryFood,
	CategoryTravel,
	CategoryStay,
	CategoryOther,
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Activity is a dated, optionally timed and costed event within a city.
// TripID always equals the TripID of the parent city.
type Activity struct {
	ID        string          `json:"id"`
	TripID    string          `json:"trip_id"`
	CityID    string          `json:"city_id"`
	Name      string          `json:"name"`
	Category  Category        `json:"category"`
	Date      Date            `json:"activity_date"`
	StartTime *Clock          `json:"start_time"`
	EndTime   *Clock          `json:"end_time"`
	Cost      decimal.Decimal `json:"cost"`
	Notes     *string         `json:"notes,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ActivityInput is the payload for creating an activity. Times are HH:MM
// or HH:MM:SS; Cost is a decimal string and defaults to zero.
type ActivityInput struct {
	CityID    string
	Name      string
	Category  string
	Date      string
	StartTime *string
	EndTime   *string
	Cost      *string
	Notes     *string
}

// ActivityPatch is a partial activity update. An empty StartTime or EndTime
// string clears the value.
type ActivityPatch struct {
	CityID    *string
	Name      *string
	Category  *string
	Date      *string
	StartTime *string
	EndTime   *string
	Cost      *string
	Notes     *string
}
