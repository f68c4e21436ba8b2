package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripStatus is the lifecycle stage of a trip, derived from its dates.
type TripStatus string

// Trip status constants.
const (
	TripStatusUpcoming  TripStatus = "upcoming"
	TripStatusOngoing   TripStatus = "ongoing"
	TripStatusCompleted TripStatus = "completed"
)

// Trip is a planned journey owned by one user.
type Trip struct {
	ID            string           `json:"id"`
	OwnerID       string           `json:"owner_id,omitempty"`
	Name          string           `json:"name"`
	Description   *string          `json:"description,omitempty"`
	StartDate     Date             `json:"start_date"`
	EndDate       Date             `json:"end_date"`
	CoverImageURL *string          `json:"cover_image_url,omitempty"`
	Status        TripStatus       `json:"status"`
	BudgetTotal   *decimal.Decimal `json:"budget_total"`
	Currency      string           `json:"currency"`
	IsPublic      bool             `json:"is_public"`
	ShareToken    *string          `json:"share_token,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// DeriveStatus computes the lifecycle stage of [start, end] as of today.
func DeriveStatus(start, end, today Date) TripStatus {
	switch {
	case today.Before(start):
		return TripStatusUpcoming
	case today.After(end):
		return TripStatusCompleted
	default:
		return TripStatusOngoing
	}
}

// TripInput is the payload for creating a trip. Dates are YYYY-MM-DD.
type TripInput struct {
	Name          string
	Description   *string
	StartDate     string
	EndDate       string
	CoverImageURL *string
	BudgetTotal   *decimal.Decimal
	Currency      string
}

// TripPatch is a partial update; nil fields keep their current value.
type TripPatch struct {
	Name          *string
	Description   *string
	StartDate     *string
	EndDate       *string
	CoverImageURL *string
}

// BudgetPatch updates a trip's budget. At least one field must be set.
type BudgetPatch struct {
	BudgetTotal *decimal.Decimal
	Currency    *string
}

// ShareState is the result of enabling or disabling sharing.
type ShareState struct {
	TripID     string  `json:"trip_id"`
	IsPublic   bool    `json:"is_public"`
	ShareToken *string `json:"share_token"`
}
