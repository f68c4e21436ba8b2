package service

import (
	"context"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/budget"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/store"
)

// GetBudgetSummary totals the trip's activity costs against its budget.
func (p *Planner) GetBudgetSummary(ctx context.Context, userID, tripID string) (budget.Summary, error) {
	trip, err := p.ownedTrip(ctx, userID, tripID)
	if err != nil {
		return budget.Summary{}, err
	}
	cities, err := p.store.ListCities(ctx, tripID)
	if err != nil {
		return budget.Summary{}, err
	}
	activities, err := p.store.ListActivities(ctx, tripID, store.ActivityFilter{})
	if err != nil {
		return budget.Summary{}, err
	}
	return budget.Summarize(trip, cities, activities), nil
}

// UpdateBudget sets the budget total, the currency or both. A field left
// nil keeps its stored value.
func (p *Planner) UpdateBudget(ctx context.Context, userID, tripID string, patch model.BudgetPatch) (model.Trip, error) {
	normalized, err := budget.NormalizePatch(patch)
	if err != nil {
		return model.Trip{}, err
	}
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return model.Trip{}, err
	}
	trip, err := p.store.UpdateBudget(ctx, tripID, normalized)
	if err != nil {
		return model.Trip{}, err
	}
	return p.withStatus(trip), nil
}
