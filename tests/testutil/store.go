package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/daterange"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/store"
)

// NewTestStore creates a SQLiteStore in a per-test temp directory with all
// migrations applied. It automatically closes the store when the test
// completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "trips.db"))
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}

// Date parses a YYYY-MM-DD literal, failing the test on error.
func Date(t *testing.T, s string) model.Date {
	t.Helper()
	d, err := daterange.ParseDate("date", s)
	if err != nil {
		t.Fatalf("parsing date %q: %v", s, err)
	}
	return d
}

// SeedTrip inserts an upcoming trip owned by ownerID.
func SeedTrip(t *testing.T, s store.Store, ownerID, start, end string) model.Trip {
	t.Helper()
	trip, err := s.CreateTrip(context.Background(), model.Trip{
		OwnerID:   ownerID,
		Name:      "Trip " + start,
		StartDate: Date(t, start),
		EndDate:   Date(t, end),
		Status:    model.TripStatusUpcoming,
		Currency:  "USD",
	})
	if err != nil {
		t.Fatalf("seeding trip: %v", err)
	}
	return trip
}

// SeedCity appends a city to tripID.
func SeedCity(t *testing.T, s store.Store, tripID, name, start, end string) model.City {
	t.Helper()
	city, err := s.AddCity(context.Background(), model.City{
		TripID:    tripID,
		Name:      name,
		StartDate: Date(t, start),
		EndDate:   Date(t, end),
	})
	if err != nil {
		t.Fatalf("seeding city %s: %v", name, err)
	}
	return city
}

// SeedActivity inserts an untimed activity into city.
func SeedActivity(t *testing.T, s store.Store, city model.City, name string, category model.Category, date string, cost int64) model.Activity {
	t.Helper()
	a, err := s.CreateActivity(context.Background(), model.Activity{
		TripID:   city.TripID,
		CityID:   city.ID,
		Name:     name,
		Category: category,
		Date:     Date(t, date),
		Cost:     decimal.NewFromInt(cost),
	})
	if err != nil {
		t.Fatalf("seeding activity %s: %v", name, err)
	}
	return a
}
