package store_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/ordering"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/store"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/tests/testutil"
)

func orderOf(t *testing.T, s store.Store, tripID string) map[string]int {
	t.Helper()
	cities, err := s.ListCities(context.Background(), tripID)
	require.NoError(t, err)
	out := make(map[string]int, len(cities))
	for _, c := range cities {
		out[c.Name] = c.OrderIndex
	}
	return out
}

func TestMigrationsApplied(t *testing.T) {
	s := testutil.NewTestStore(t)
	var version int
	require.NoError(t, s.DB().Get(&version, "SELECT MAX(version) FROM schema_version"))
	assert.Equal(t, 2, version)
}

func TestCreateAndGetTrip(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)

	budget := decimal.RequireFromString("1500.50")
	desc := "winter"
	created, err := s.CreateTrip(ctx, model.Trip{
		OwnerID:     "u1",
		Name:        "Europe",
		Description: &desc,
		StartDate:   testutil.Date(t, "2026-01-01"),
		EndDate:     testutil.Date(t, "2026-01-10"),
		Status:      model.TripStatusUpcoming,
		BudgetTotal: &budget,
		Currency:    "EUR",
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := s.GetTrip(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Europe", got.Name)
	assert.Equal(t, "2026-01-01", got.StartDate.String())
	assert.Equal(t, "2026-01-10", got.EndDate.String())
	require.NotNil(t, got.BudgetTotal)
	assert.True(t, got.BudgetTotal.Equal(budget))
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, &desc, got.Description)
	assert.False(t, got.IsPublic)
	assert.Nil(t, got.ShareToken)

	_, err = s.GetTrip(ctx, uuid.NewString())
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestListTripsScopedToOwner(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	testutil.SeedTrip(t, s, "u1", "2026-03-01", "2026-03-05")
	testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-05")
	testutil.SeedTrip(t, s, "u2", "2026-02-01", "2026-02-05")

	trips, err := s.ListTrips(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "2026-01-01", trips[0].StartDate.String())
	assert.Equal(t, "2026-03-01", trips[1].StartDate.String())
}

func TestUpdateTripRejectsRangeThatDropsCities(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	testutil.SeedCity(t, s, trip.ID, "Paris", "2026-01-02", "2026-01-05")

	shrunk := trip
	shrunk.StartDate = testutil.Date(t, "2026-01-03")
	_, err := s.UpdateTrip(ctx, shrunk)
	assert.True(t, errors.Is(err, apperr.ErrInvalidRange))

	shrunk.StartDate = testutil.Date(t, "2026-01-02")
	shrunk.EndDate = testutil.Date(t, "2026-01-05")
	shrunk.Name = "Short"
	updated, err := s.UpdateTrip(ctx, shrunk)
	require.NoError(t, err)
	assert.Equal(t, "Short", updated.Name)
	assert.Equal(t, "2026-01-05", updated.EndDate.String())
}

func TestUpdateBudgetKeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")

	total := decimal.NewFromInt(900)
	updated, err := s.UpdateBudget(ctx, trip.ID, model.BudgetPatch{BudgetTotal: &total})
	require.NoError(t, err)
	require.NotNil(t, updated.BudgetTotal)
	assert.True(t, updated.BudgetTotal.Equal(total))
	assert.Equal(t, "USD", updated.Currency)

	cur := "JPY"
	updated, err = s.UpdateBudget(ctx, trip.ID, model.BudgetPatch{Currency: &cur})
	require.NoError(t, err)
	assert.True(t, updated.BudgetTotal.Equal(total))
	assert.Equal(t, "JPY", updated.Currency)

	_, err = s.UpdateBudget(ctx, uuid.NewString(), model.BudgetPatch{Currency: &cur})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestAddCityAssignsDenseIndices(t *testing.T) {
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")

	a := testutil.SeedCity(t, s, trip.ID, "Paris", "2026-01-01", "2026-01-03")
	b := testutil.SeedCity(t, s, trip.ID, "Lyon", "2026-01-04", "2026-01-05")
	c := testutil.SeedCity(t, s, trip.ID, "Rome", "2026-01-06", "2026-01-10")

	assert.Equal(t, 1, a.OrderIndex)
	assert.Equal(t, 2, b.OrderIndex)
	assert.Equal(t, 3, c.OrderIndex)

	_, err := s.AddCity(context.Background(), model.City{
		TripID:    uuid.NewString(),
		Name:      "Nowhere",
		StartDate: testutil.Date(t, "2026-01-01"),
		EndDate:   testutil.Date(t, "2026-01-02"),
	})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestReorderSwap(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	paris := testutil.SeedCity(t, s, trip.ID, "Paris", "2026-01-01", "2026-01-05")
	rome := testutil.SeedCity(t, s, trip.ID, "Rome", "2026-01-06", "2026-01-10")

	cities, err := s.ReorderCities(ctx, trip.ID, []model.ReorderAssignment{
		{CityID: paris.ID, OrderIndex: 2},
		{CityID: rome.ID, OrderIndex: 1},
	})
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "Rome", cities[0].Name)
	assert.Equal(t, "Paris", cities[1].Name)
	assert.Equal(t, map[string]int{"Paris": 2, "Rome": 1}, orderOf(t, s, trip.ID))
}

func TestReorderRejectionsLeaveOrderUntouched(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	other := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	a := testutil.SeedCity(t, s, trip.ID, "A", "2026-01-01", "2026-01-03")
	b := testutil.SeedCity(t, s, trip.ID, "B", "2026-01-04", "2026-01-06")
	c := testutil.SeedCity(t, s, trip.ID, "C", "2026-01-07", "2026-01-10")
	foreign := testutil.SeedCity(t, s, other.ID, "X", "2026-01-01", "2026-01-02")

	before := orderOf(t, s, trip.ID)

	cases := map[string][]model.ReorderAssignment{
		"empty":            {},
		"malformed id":     {{CityID: "nope", OrderIndex: 1}},
		"foreign city":     {{CityID: a.ID, OrderIndex: 1}, {CityID: b.ID, OrderIndex: 2}, {CityID: foreign.ID, OrderIndex: 3}},
		"duplicate id":     {{CityID: a.ID, OrderIndex: 1}, {CityID: a.ID, OrderIndex: 2}, {CityID: c.ID, OrderIndex: 3}},
		"duplicate index":  {{CityID: a.ID, OrderIndex: 1}, {CityID: b.ID, OrderIndex: 1}, {CityID: c.ID, OrderIndex: 3}},
		"gap":              {{CityID: a.ID, OrderIndex: 1}, {CityID: b.ID, OrderIndex: 2}, {CityID: c.ID, OrderIndex: 4}},
		"partial coverage": {{CityID: a.ID, OrderIndex: 2}, {CityID: b.ID, OrderIndex: 1}},
	}
	for name, batch := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := s.ReorderCities(ctx, trip.ID, batch)
			assert.True(t, errors.Is(err, apperr.ErrInvalidInput), "got %v", err)
			assert.Equal(t, before, orderOf(t, s, trip.ID))
		})
	}

	_, err := s.ReorderCities(ctx, uuid.NewString(), []model.ReorderAssignment{{CityID: a.ID, OrderIndex: 1}})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestReorderRotation(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	a := testutil.SeedCity(t, s, trip.ID, "A", "2026-01-01", "2026-01-03")
	b := testutil.SeedCity(t, s, trip.ID, "B", "2026-01-04", "2026-01-06")
	c := testutil.SeedCity(t, s, trip.ID, "C", "2026-01-07", "2026-01-10")

	_, err := s.ReorderCities(ctx, trip.ID, []model.ReorderAssignment{
		{CityID: a.ID, OrderIndex: 3},
		{CityID: b.ID, OrderIndex: 1},
		{CityID: c.ID, OrderIndex: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"A": 3, "B": 1, "C": 2}, orderOf(t, s, trip.ID))
}

func TestDeleteCityCompactsAndCascades(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	testutil.SeedCity(t, s, trip.ID, "A", "2026-01-01", "2026-01-03")
	b := testutil.SeedCity(t, s, trip.ID, "B", "2026-01-04", "2026-01-06")
	testutil.SeedCity(t, s, trip.ID, "C", "2026-01-07", "2026-01-10")
	testutil.SeedActivity(t, s, b, "Museum", model.CategorySightseeing, "2026-01-05", 10)

	require.NoError(t, s.DeleteCity(ctx, trip.ID, b.ID))
	assert.Equal(t, map[string]int{"A": 1, "C": 2}, orderOf(t, s, trip.ID))

	acts, err := s.ListActivities(ctx, trip.ID, store.ActivityFilter{})
	require.NoError(t, err)
	assert.Empty(t, acts)

	err = s.DeleteCity(ctx, trip.ID, b.ID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestDeleteTripCascades(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	city := testutil.SeedCity(t, s, trip.ID, "A", "2026-01-01", "2026-01-03")
	testutil.SeedActivity(t, s, city, "Walk", model.CategoryOther, "2026-01-02", 0)

	require.NoError(t, s.DeleteTrip(ctx, trip.ID))

	var n int
	require.NoError(t, s.DB().Get(&n, "SELECT COUNT(*) FROM cities"))
	assert.Zero(t, n)
	require.NoError(t, s.DB().Get(&n, "SELECT COUNT(*) FROM activities"))
	assert.Zero(t, n)

	assert.True(t, errors.Is(s.DeleteTrip(ctx, trip.ID), apperr.ErrNotFound))
}

func TestUpdateCityRejectsRangeThatDropsActivities(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	city := testutil.SeedCity(t, s, trip.ID, "Paris", "2026-01-01", "2026-01-05")
	testutil.SeedActivity(t, s, city, "Louvre", model.CategorySightseeing, "2026-01-03", 20)

	moved := city
	moved.EndDate = testutil.Date(t, "2026-01-02")
	_, err := s.UpdateCity(ctx, moved)
	assert.True(t, errors.Is(err, apperr.ErrInvalidRange))

	moved.EndDate = testutil.Date(t, "2026-01-04")
	moved.Country = "France"
	updated, err := s.UpdateCity(ctx, moved)
	require.NoError(t, err)
	assert.Equal(t, "France", updated.Country)
	assert.Equal(t, 1, updated.OrderIndex)
}

func TestActivityMustFallInsideCity(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	paris := testutil.SeedCity(t, s, trip.ID, "Paris", "2026-01-01", "2026-01-05")
	other := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")

	_, err := s.CreateActivity(ctx, model.Activity{
		TripID: trip.ID, CityID: paris.ID, Name: "Late", Category: model.CategoryFood,
		Date: testutil.Date(t, "2026-01-06"),
	})
	assert.True(t, errors.Is(err, apperr.ErrInvalidRange))

	_, err = s.CreateActivity(ctx, model.Activity{
		TripID: other.ID, CityID: paris.ID, Name: "Wrong trip", Category: model.CategoryFood,
		Date: testutil.Date(t, "2026-01-02"),
	})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestListActivitiesOrderingAndFilter(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	paris := testutil.SeedCity(t, s, trip.ID, "Paris", "2026-01-01", "2026-01-05")
	rome := testutil.SeedCity(t, s, trip.ID, "Rome", "2026-01-06", "2026-01-10")

	untimed := testutil.SeedActivity(t, s, paris, "Stroll", model.CategoryOther, "2026-01-02", 0)
	late, err := s.CreateActivity(ctx, model.Activity{
		TripID: trip.ID, CityID: paris.ID, Name: "Dinner", Category: model.CategoryFood,
		Date: testutil.Date(t, "2026-01-02"), StartTime: &model.Clock{Hour: 19},
		Cost: decimal.RequireFromString("42.50"),
	})
	require.NoError(t, err)
	early, err := s.CreateActivity(ctx, model.Activity{
		TripID: trip.ID, CityID: paris.ID, Name: "Breakfast", Category: model.CategoryFood,
		Date: testutil.Date(t, "2026-01-02"), StartTime: &model.Clock{Hour: 8}, EndTime: &model.Clock{Hour: 9},
	})
	require.NoError(t, err)
	testutil.SeedActivity(t, s, rome, "Colosseum", model.CategorySightseeing, "2026-01-07", 25)

	all, err := s.ListActivities(ctx, trip.ID, store.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, []string{early.ID, late.ID, untimed.ID}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.True(t, all[1].Cost.Equal(decimal.RequireFromString("42.5")))
	require.NotNil(t, all[0].EndTime)
	assert.Equal(t, 9, all[0].EndTime.Hour)

	from := testutil.Date(t, "2026-01-05")
	later, err := s.ListActivities(ctx, trip.ID, store.ActivityFilter{From: &from})
	require.NoError(t, err)
	require.Len(t, later, 1)
	assert.Equal(t, "Colosseum", later[0].Name)

	onlyParis, err := s.ListActivities(ctx, trip.ID, store.ActivityFilter{CityID: &paris.ID})
	require.NoError(t, err)
	assert.Len(t, onlyParis, 3)
}

func TestUpdateActivityMovesCity(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	paris := testutil.SeedCity(t, s, trip.ID, "Paris", "2026-01-01", "2026-01-05")
	rome := testutil.SeedCity(t, s, trip.ID, "Rome", "2026-01-06", "2026-01-10")
	a := testutil.SeedActivity(t, s, paris, "Train", model.CategoryTravel, "2026-01-05", 60)

	a.CityID = rome.ID
	_, err := s.UpdateActivity(ctx, a)
	assert.True(t, errors.Is(err, apperr.ErrInvalidRange))

	a.Date = testutil.Date(t, "2026-01-06")
	moved, err := s.UpdateActivity(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, rome.ID, moved.CityID)

	require.NoError(t, s.DeleteActivity(ctx, trip.ID, a.ID))
	assert.True(t, errors.Is(s.DeleteActivity(ctx, trip.ID, a.ID), apperr.ErrNotFound))
}

func TestItineraryRowsIncludeEmptyCities(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	paris := testutil.SeedCity(t, s, trip.ID, "Paris", "2026-01-01", "2026-01-05")
	testutil.SeedCity(t, s, trip.ID, "Rome", "2026-01-06", "2026-01-10")
	testutil.SeedActivity(t, s, paris, "Louvre", model.CategorySightseeing, "2026-01-03", 20)
	testutil.SeedActivity(t, s, paris, "Orsay", model.CategorySightseeing, "2026-01-02", 15)

	rows, err := s.ItineraryRows(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Paris", rows[0].City.Name)
	require.NotNil(t, rows[0].Activity)
	assert.Equal(t, "Orsay", rows[0].Activity.Name)
	assert.Equal(t, "Louvre", rows[1].Activity.Name)
	assert.Equal(t, "Rome", rows[2].City.Name)
	assert.Nil(t, rows[2].Activity)
}

func TestSharingLifecycle(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")

	state, err := s.EnableSharing(ctx, trip.ID, "token-aaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	assert.True(t, state.IsPublic)
	require.NotNil(t, state.ShareToken)
	assert.Equal(t, "token-aaaaaaaaaaaaaaaa", *state.ShareToken)

	again, err := s.EnableSharing(ctx, trip.ID, "token-bbbbbbbbbbbbbbbb")
	require.NoError(t, err)
	assert.Equal(t, "token-aaaaaaaaaaaaaaaa", *again.ShareToken)

	public, err := s.GetPublicTrip(ctx, "token-aaaaaaaaaaaaaaaa")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, public.ID)

	listed, err := s.ListPublicTrips(ctx, 0)
	require.NoError(t, err)
	require.Len(t, listed, 1)

	require.NoError(t, s.DisableSharing(ctx, trip.ID))
	_, err = s.GetPublicTrip(ctx, "token-aaaaaaaaaaaaaaaa")
	assert.True(t, errors.Is(err, apperr.ErrNotFound))

	listed, err = s.ListPublicTrips(ctx, 5)
	require.NoError(t, err)
	assert.Empty(t, listed)
}

func TestEnableSharingTokenCollision(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	first := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	second := testutil.SeedTrip(t, s, "u1", "2026-02-01", "2026-02-10")

	_, err := s.EnableSharing(ctx, first.ID, "same-token-0123456789")
	require.NoError(t, err)

	_, err = s.EnableSharing(ctx, second.ID, "same-token-0123456789")
	assert.True(t, errors.Is(err, store.ErrTokenCollision))

	got, err := s.GetTrip(ctx, second.ID)
	require.NoError(t, err)
	assert.False(t, got.IsPublic)
	assert.Nil(t, got.ShareToken)
}

func TestCloneTripIsIndependent(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	source := testutil.SeedTrip(t, s, "owner", "2026-01-01", "2026-01-10")
	total := decimal.NewFromInt(500)
	_, err := s.UpdateBudget(ctx, source.ID, model.BudgetPatch{BudgetTotal: &total})
	require.NoError(t, err)
	paris := testutil.SeedCity(t, s, source.ID, "Paris", "2026-01-01", "2026-01-05")
	rome := testutil.SeedCity(t, s, source.ID, "Rome", "2026-01-06", "2026-01-10")
	testutil.SeedCity(t, s, source.ID, "Empty", "2026-01-10", "2026-01-10")
	testutil.SeedActivity(t, s, paris, "Louvre", model.CategorySightseeing, "2026-01-03", 20)
	testutil.SeedActivity(t, s, rome, "Pasta", model.CategoryFood, "2026-01-07", 30)
	_, err = s.EnableSharing(ctx, source.ID, "clone-source-token-01")
	require.NoError(t, err)

	build := func(src model.Trip) model.Trip {
		src.ID = ""
		src.OwnerID = "cloner"
		src.BudgetTotal = nil
		return src
	}

	cloned, err := s.CloneTrip(ctx, "clone-source-token-01", build)
	require.NoError(t, err)
	assert.NotEqual(t, source.ID, cloned.ID)
	assert.Equal(t, "cloner", cloned.OwnerID)

	got, err := s.GetTrip(ctx, cloned.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BudgetTotal)
	assert.False(t, got.IsPublic)
	assert.Nil(t, got.ShareToken)

	srcCities, err := s.ListCities(ctx, source.ID)
	require.NoError(t, err)
	newCities, err := s.ListCities(ctx, cloned.ID)
	require.NoError(t, err)
	require.Len(t, newCities, 3)

	srcIDs := map[string]bool{}
	for i, c := range srcCities {
		srcIDs[c.ID] = true
		assert.Equal(t, c.Name, newCities[i].Name)
		assert.Equal(t, c.OrderIndex, newCities[i].OrderIndex)
	}
	newIDs := map[string]bool{}
	for _, c := range newCities {
		assert.False(t, srcIDs[c.ID])
		newIDs[c.ID] = true
	}

	acts, err := s.ListActivities(ctx, cloned.ID, store.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, acts, 2)
	names := []string{}
	for _, a := range acts {
		assert.True(t, newIDs[a.CityID], "activity %s must point at a cloned city", a.Name)
		names = append(names, a.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{"Louvre", "Pasta"}, names)

	// Mutating the clone leaves the source alone.
	require.NoError(t, s.DeleteCity(ctx, cloned.ID, newCities[0].ID))
	after, err := s.ListCities(ctx, source.ID)
	require.NoError(t, err)
	assert.Len(t, after, 3)
	srcActs, err := s.ListActivities(ctx, source.ID, store.ActivityFilter{})
	require.NoError(t, err)
	assert.Len(t, srcActs, 2)

	_, err = s.CloneTrip(ctx, "no-such-token-000000", build)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
}

func TestCloneTripAfterRevokeIsNotFound(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	source := testutil.SeedTrip(t, s, "owner", "2026-01-01", "2026-01-10")
	testutil.SeedCity(t, s, source.ID, "Paris", "2026-01-01", "2026-01-05")
	_, err := s.EnableSharing(ctx, source.ID, "revoked-token-0123456")
	require.NoError(t, err)

	_, err = s.GetPublicTrip(ctx, "revoked-token-0123456")
	require.NoError(t, err)
	require.NoError(t, s.DisableSharing(ctx, source.ID))

	called := false
	_, err = s.CloneTrip(ctx, "revoked-token-0123456", func(src model.Trip) model.Trip {
		called = true
		src.ID = ""
		src.OwnerID = "cloner"
		return src
	})
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	assert.False(t, called)

	trips, err := s.ListTrips(ctx, "cloner")
	require.NoError(t, err)
	assert.Empty(t, trips)
}

func countRows(t *testing.T, s *store.SQLiteStore, table string) int {
	t.Helper()
	var n int
	require.NoError(t, s.DB().Get(&n, "SELECT COUNT(*) FROM "+table))
	return n
}

// failOn installs a trigger that aborts any statement matching when.
func failOn(t *testing.T, s *store.SQLiteStore, name, event, when string) {
	t.Helper()
	_, err := s.DB().Exec(fmt.Sprintf(
		"CREATE TRIGGER %s %s WHEN %s BEGIN SELECT RAISE(ABORT, 'forced failure'); END",
		name, event, when))
	require.NoError(t, err)
}

func TestUnstorableAmountsAreRejected(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	city := testutil.SeedCity(t, s, trip.ID, "Paris", "2026-01-01", "2026-01-05")
	huge := decimal.RequireFromString("184467440737095516.17")

	_, err := s.CreateActivity(ctx, model.Activity{
		TripID: trip.ID, CityID: city.ID, Name: "Gold", Category: model.CategoryOther,
		Date: testutil.Date(t, "2026-01-02"), Cost: huge,
	})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	small := testutil.SeedActivity(t, s, city, "Cafe", model.CategoryFood, "2026-01-02", 3)
	small.Cost = huge
	_, err = s.UpdateActivity(ctx, small)
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	acts, err := s.ListActivities(ctx, trip.ID, store.ActivityFilter{})
	require.NoError(t, err)
	require.Len(t, acts, 1)
	assert.True(t, acts[0].Cost.Equal(decimal.NewFromInt(3)))

	budget := decimal.RequireFromString("92233720368547758.08")
	_, err = s.CreateTrip(ctx, model.Trip{
		OwnerID: "u2", Name: "Rich", Status: model.TripStatusUpcoming, Currency: "USD",
		StartDate: testutil.Date(t, "2026-01-01"), EndDate: testutil.Date(t, "2026-01-02"),
		BudgetTotal: &budget,
	})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	_, err = s.UpdateBudget(ctx, trip.ID, model.BudgetPatch{BudgetTotal: &budget})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))
	got, err := s.GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Nil(t, got.BudgetTotal)
}

func TestCityMustNestInsideCurrentTrip(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")

	// The trip shrinks after a caller validated against the old range.
	shrunk := trip
	shrunk.EndDate = testutil.Date(t, "2026-01-03")
	_, err := s.UpdateTrip(ctx, shrunk)
	require.NoError(t, err)

	_, err = s.AddCity(ctx, model.City{
		TripID: trip.ID, Name: "Late",
		StartDate: testutil.Date(t, "2026-01-05"), EndDate: testutil.Date(t, "2026-01-06"),
	})
	assert.True(t, errors.Is(err, apperr.ErrInvalidRange))

	city := testutil.SeedCity(t, s, trip.ID, "Early", "2026-01-01", "2026-01-02")
	city.EndDate = testutil.Date(t, "2026-01-08")
	_, err = s.UpdateCity(ctx, city)
	assert.True(t, errors.Is(err, apperr.ErrInvalidRange))

	cities, err := s.ListCities(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "2026-01-02", cities[0].EndDate.String())
}

func TestFailedCloneLeavesNothingBehind(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	source := testutil.SeedTrip(t, s, "owner", "2026-01-01", "2026-01-10")
	paris := testutil.SeedCity(t, s, source.ID, "Paris", "2026-01-01", "2026-01-05")
	rome := testutil.SeedCity(t, s, source.ID, "Rome", "2026-01-06", "2026-01-10")
	testutil.SeedActivity(t, s, paris, "Louvre", model.CategorySightseeing, "2026-01-03", 20)
	testutil.SeedActivity(t, s, rome, "Poison", model.CategoryFood, "2026-01-07", 30)
	_, err := s.EnableSharing(ctx, source.ID, "poisoned-token-012345")
	require.NoError(t, err)

	// Trip and cities copy fine; the second activity insert aborts.
	failOn(t, s, "fail_clone_activity", "BEFORE INSERT ON activities", "NEW.name = 'Poison'")

	trips, cities, acts := countRows(t, s, "trips"), countRows(t, s, "cities"), countRows(t, s, "activities")
	cloneID := uuid.NewString()
	_, err = s.CloneTrip(ctx, "poisoned-token-012345", func(src model.Trip) model.Trip {
		src.ID = cloneID
		src.OwnerID = "cloner"
		return src
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperr.ErrPersistenceFailure))

	assert.Equal(t, trips, countRows(t, s, "trips"))
	assert.Equal(t, cities, countRows(t, s, "cities"))
	assert.Equal(t, acts, countRows(t, s, "activities"))
	_, err = s.GetTrip(ctx, cloneID)
	assert.True(t, errors.Is(err, apperr.ErrNotFound))
	left, err := s.ListCities(ctx, cloneID)
	require.NoError(t, err)
	assert.Empty(t, left)
}

func TestFailedReorderAndDeleteRollBack(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	a := testutil.SeedCity(t, s, trip.ID, "A", "2026-01-01", "2026-01-03")
	b := testutil.SeedCity(t, s, trip.ID, "B", "2026-01-04", "2026-01-06")
	c := testutil.SeedCity(t, s, trip.ID, "C", "2026-01-07", "2026-01-10")

	// Aborts the second phase, once every row already carries the offset.
	failOn(t, s, "fail_final_index", "BEFORE UPDATE OF order_index ON cities",
		"NEW.name = 'C' AND NEW.order_index < 1000000")

	_, err := s.ReorderCities(ctx, trip.ID, []model.ReorderAssignment{
		{CityID: a.ID, OrderIndex: 3}, {CityID: b.ID, OrderIndex: 1}, {CityID: c.ID, OrderIndex: 2},
	})
	assert.True(t, errors.Is(err, apperr.ErrPersistenceFailure))
	assert.Equal(t, map[string]int{"A": 1, "B": 2, "C": 3}, orderOf(t, s, trip.ID))

	err = s.DeleteCity(ctx, trip.ID, a.ID)
	assert.True(t, errors.Is(err, apperr.ErrPersistenceFailure))
	assert.Equal(t, map[string]int{"A": 1, "B": 2, "C": 3}, orderOf(t, s, trip.ID))
}

func TestOrderStaysDenseUnderRandomEdits(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewTestStore(t)
	trip := testutil.SeedTrip(t, s, "u1", "2026-01-01", "2026-01-10")
	rng := rand.New(rand.NewSource(42))

	for step := 0; step < 120; step++ {
		cities, err := s.ListCities(ctx, trip.ID)
		require.NoError(t, err)

		switch roll := rng.Intn(10); {
		case len(cities) == 0 || roll < 4:
			testutil.SeedCity(t, s, trip.ID, fmt.Sprintf("city-%d", step), "2026-01-01", "2026-01-10")
		case roll < 7:
			perm := rng.Perm(len(cities))
			assignments := make([]model.ReorderAssignment, len(cities))
			for i, c := range cities {
				assignments[i] = model.ReorderAssignment{CityID: c.ID, OrderIndex: perm[i] + 1}
			}
			_, err := s.ReorderCities(ctx, trip.ID, assignments)
			require.NoError(t, err, "step %d", step)
		default:
			victim := cities[rng.Intn(len(cities))]
			require.NoError(t, s.DeleteCity(ctx, trip.ID, victim.ID), "step %d", step)
		}

		after, err := s.ListCities(ctx, trip.ID)
		require.NoError(t, err)
		indices := make([]int, len(after))
		for i, c := range after {
			indices[i] = c.OrderIndex
		}
		require.True(t, ordering.IsDense(indices), "step %d: %v", step, indices)
	}
}
