package store

import (
	"context"
	"errors"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// ErrTokenCollision reports that a freshly generated share token is
// already held by another trip. Callers retry with a new token.
var ErrTokenCollision = errors.New("share token already in use")

// ActivityFilter narrows activity listings.
type ActivityFilter struct {
	CityID *string
	From   *model.Date // inclusive
	To     *model.Date // inclusive
}

// Store defines the persistence interface for the trip hierarchy. All
// multi-row mutations run inside a single transaction; a failure leaves no
// partial state behind.
type Store interface {
	// === Trips ===

	CreateTrip(ctx context.Context, trip model.Trip) (model.Trip, error)
	GetTrip(ctx context.Context, id string) (model.Trip, error)
	ListTrips(ctx context.Context, ownerID string) ([]model.Trip, error)
	UpdateTrip(ctx context.Context, trip model.Trip) (model.Trip, error)
	UpdateBudget(ctx context.Context, tripID string, patch model.BudgetPatch) (model.Trip, error)
	DeleteTrip(ctx context.Context, id string) error

	// === Cities ===

	AddCity(ctx context.Context, city model.City) (model.City, error)
	GetCity(ctx context.Context, tripID, cityID string) (model.City, error)
	ListCities(ctx context.Context, tripID string) ([]model.City, error)
	UpdateCity(ctx context.Context, city model.City) (model.City, error)
	DeleteCity(ctx context.Context, tripID, cityID string) error
	ReorderCities(ctx context.Context, tripID string, assignments []model.ReorderAssignment) ([]model.City, error)

	// === Activities ===

	CreateActivity(ctx context.Context, activity model.Activity) (model.Activity, error)
	GetActivity(ctx context.Context, tripID, activityID string) (model.Activity, error)
	ListActivities(ctx context.Context, tripID string, filter ActivityFilter) ([]model.Activity, error)
	UpdateActivity(ctx context.Context, activity model.Activity) (model.Activity, error)
	DeleteActivity(ctx context.Context, tripID, activityID string) error

	// === Itinerary ===

	ItineraryRows(ctx context.Context, tripID string) ([]model.ItineraryRow, error)

	// === Sharing ===

	EnableSharing(ctx context.Context, tripID, token string) (model.ShareState, error)
	DisableSharing(ctx context.Context, tripID string) error
	GetPublicTrip(ctx context.Context, token string) (model.Trip, error)
	ListPublicTrips(ctx context.Context, limit int) ([]model.Trip, error)
	CloneTrip(ctx context.Context, token string, build func(source model.Trip) model.Trip) (model.Trip, error)
}
