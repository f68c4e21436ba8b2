package budget

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)
	return &d
}

func TestSummarizeWithoutActivities(t *testing.T) {
	trip := model.Trip{Currency: "USD"}
	cities := []model.City{{ID: "paris", Name: "Paris", OrderIndex: 1}}

	s := Summarize(trip, cities, nil)

	assert.True(t, s.TotalSpent.IsZero())
	assert.Nil(t, s.Remaining)
	assert.False(t, s.OverBudget)
	assert.Len(t, s.ByCategory, len(model.Categories))
	for _, c := range model.Categories {
		assert.True(t, s.ByCategory[c].IsZero(), string(c))
	}
	require.Len(t, s.ByCity, 1)
	assert.Equal(t, "Paris", s.ByCity[0].CityName)
	assert.True(t, s.ByCity[0].Total.IsZero())
}

func TestSummarizeTotals(t *testing.T) {
	trip := model.Trip{Currency: "EUR", BudgetTotal: moneyPtr("100")}
	cities := []model.City{
		{ID: "rome", Name: "Rome", OrderIndex: 1},
		{ID: "paris", Name: "Paris", OrderIndex: 2},
		{ID: "nice", Name: "Nice", OrderIndex: 3},
	}
	activities := []model.Activity{
		{CityID: "paris", Category: model.CategorySightseeing, Cost: money("20.00")},
		{CityID: "rome", Category: model.CategoryFood, Cost: money("30.00")},
		{CityID: "rome", Category: model.CategoryFood, Cost: money("0.10")},
	}

	s := Summarize(trip, cities, activities)

	assert.Equal(t, "50.1", s.TotalSpent.String())
	require.NotNil(t, s.Remaining)
	assert.Equal(t, "49.9", s.Remaining.String())
	assert.False(t, s.OverBudget)
	assert.True(t, s.ByCategory[model.CategorySightseeing].Equal(money("20")))
	assert.True(t, s.ByCategory[model.CategoryFood].Equal(money("30.10")))
	assert.True(t, s.ByCategory[model.CategoryStay].IsZero())

	require.Len(t, s.ByCity, 3)
	assert.Equal(t, []string{"Rome", "Paris", "Nice"},
		[]string{s.ByCity[0].CityName, s.ByCity[1].CityName, s.ByCity[2].CityName})
	assert.True(t, s.ByCity[0].Total.Equal(money("30.10")))
	assert.True(t, s.ByCity[2].Total.IsZero())
}

func TestSummarizeOverBudget(t *testing.T) {
	trip := model.Trip{BudgetTotal: moneyPtr("10")}
	activities := []model.Activity{{Category: model.CategoryStay, Cost: money("10.01")}}

	s := Summarize(trip, nil, activities)
	assert.True(t, s.OverBudget)
	assert.Equal(t, "-0.01", s.Remaining.String())
}

func TestSummarizeExactlyAtBudgetIsNotOver(t *testing.T) {
	trip := model.Trip{BudgetTotal: moneyPtr("10")}
	activities := []model.Activity{{Category: model.CategoryStay, Cost: money("10")}}

	s := Summarize(trip, nil, activities)
	assert.False(t, s.OverBudget)
	assert.True(t, s.Remaining.IsZero())
}

func TestSummarizeZeroBudgetIsSet(t *testing.T) {
	trip := model.Trip{BudgetTotal: moneyPtr("0")}

	s := Summarize(trip, nil, nil)
	require.NotNil(t, s.Remaining)
	assert.True(t, s.Remaining.IsZero())
}

func TestNormalizePatch(t *testing.T) {
	_, err := NormalizePatch(model.BudgetPatch{})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	_, err = NormalizePatch(model.BudgetPatch{BudgetTotal: moneyPtr("-1")})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	long := "ABCDEFGHIJK"
	_, err = NormalizePatch(model.BudgetPatch{Currency: &long})
	assert.True(t, errors.Is(err, apperr.ErrInvalidInput))

	cur := "jpy"
	got, err := NormalizePatch(model.BudgetPatch{BudgetTotal: moneyPtr("1500.456"), Currency: &cur})
	require.NoError(t, err)
	assert.Equal(t, "1500.46", got.BudgetTotal.String())
	assert.Equal(t, "JPY", *got.Currency)
}
