// Package budget aggregates activity costs into a trip's spend summary.
package budget

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// CityTotal is the spend attributed to one city.
type CityTotal struct {
	CityID   string          `json:"city_id"`
	CityName string          `json:"city_name"`
	Total    decimal.Decimal `json:"total"`
}

// Summary is a trip's budget position.
type Summary struct {
	BudgetTotal *decimal.Decimal                   `json:"budget_total"`
	Currency    string                             `json:"currency"`
	TotalSpent  decimal.Decimal                    `json:"total_spent"`
	Remaining   *decimal.Decimal                   `json:"remaining"`
	OverBudget  bool                               `json:"over_budget"`
	ByCategory  map[model.Category]decimal.Decimal `json:"by_category"`
	ByCity      []CityTotal                        `json:"by_city"`
}

// Summarize totals activity costs by category and by city. cities must be
// ordered by order_index; ByCity keeps that order and reports zero for
// cities without activities. Every category key is always present.
func Summarize(trip model.Trip, cities []model.City, activities []model.Activity) Summary {
	byCategory := make(map[model.Category]decimal.Decimal, len(model.Categories))
	for _, c := range model.Categories {
		byCategory[c] = decimal.Zero
	}

	byCityID := make(map[string]decimal.Decimal, len(cities))
	total := decimal.Zero
	for _, a := range activities {
		total = total.Add(a.Cost)
		byCategory[a.Category] = byCategory[a.Category].Add(a.Cost)
		byCityID[a.CityID] = byCityID[a.CityID].Add(a.Cost)
	}

	byCity := make([]CityTotal, 0, len(cities))
	for _, c := range cities {
		byCity = append(byCity, CityTotal{
			CityID:   c.ID,
			CityName: c.Name,
			Total:    byCityID[c.ID],
		})
	}

	s := Summary{
		BudgetTotal: trip.BudgetTotal,
		Currency:    trip.Currency,
		TotalSpent:  total.Round(2),
		ByCategory:  byCategory,
		ByCity:      byCity,
	}
	if trip.BudgetTotal != nil {
		remaining := trip.BudgetTotal.Sub(total).Round(2)
		s.Remaining = &remaining
		s.OverBudget = total.GreaterThan(*trip.BudgetTotal)
	}
	return s
}

// NormalizePatch validates a budget update. At least one field is required;
// the total is non-negative and rounded to cents; the currency is
// upper-cased and at most model.MaxCurrencyLength characters.
func NormalizePatch(p model.BudgetPatch) (model.BudgetPatch, error) {
	if p.BudgetTotal == nil && p.Currency == nil {
		return model.BudgetPatch{}, apperr.Invalid("budget update requires budget_total or currency")
	}

	var out model.BudgetPatch
	if p.BudgetTotal != nil {
		total, err := model.NormalizeAmount("budget_total", *p.BudgetTotal)
		if err != nil {
			return model.BudgetPatch{}, err
		}
		out.BudgetTotal = &total
	}
	if p.Currency != nil {
		currency, err := model.NormalizeCurrency(strings.TrimSpace(*p.Currency))
		if err != nil {
			return model.BudgetPatch{}, err
		}
		out.Currency = &currency
	}
	return out, nil
}
