package model

import "time"

// City is a dated visit to a place within a trip. OrderIndex is the dense
// 1-based rank of the visit among the trip's cities.
type City struct {
	ID         string    `json:"id"`
	TripID     string    `json:"trip_id"`
	Name       string    `json:"name"`
	Country    string    `json:"country"`
	StartDate  Date      `json:"start_date"`
	EndDate    Date      `json:"end_date"`
	OrderIndex int       `json:"order_index"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CityInput is the payload for adding a city to a trip.
type CityInput struct {
	Name      string
	Country   string
	StartDate string
	EndDate   string
}

// CityPatch is a partial city update.
type CityPatch struct {
	Name      *string
	Country   *string
	StartDate *string
	EndDate   *string
}

// ReorderAssignment moves one city to a new position.
type ReorderAssignment struct {
	CityID     string `json:"city_id"`
	OrderIndex int    `json:"order_index"`
}
