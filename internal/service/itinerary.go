package service

import (
	"context"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/itinerary"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// Itinerary returns both the day-wise and city-wise views, computed from
// one read of the trip.
func (p *Planner) Itinerary(ctx context.Context, userID, tripID string) (model.Itinerary, error) {
	rows, err := p.itineraryRows(ctx, userID, tripID)
	if err != nil {
		return model.Itinerary{}, err
	}
	return itinerary.Full(rows, itinerary.Options{}), nil
}

// DayWiseItinerary groups the trip's activities by (date, city).
func (p *Planner) DayWiseItinerary(ctx context.Context, userID, tripID string) ([]model.DayGroup, error) {
	rows, err := p.itineraryRows(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return itinerary.DayWise(rows), nil
}

// CityWiseItinerary lists every city in visit order with its activities.
func (p *Planner) CityWiseItinerary(ctx context.Context, userID, tripID string) ([]model.CityGroup, error) {
	rows, err := p.itineraryRows(ctx, userID, tripID)
	if err != nil {
		return nil, err
	}
	return itinerary.CityWise(rows, itinerary.Options{}), nil
}

func (p *Planner) itineraryRows(ctx context.Context, userID, tripID string) ([]model.ItineraryRow, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return nil, err
	}
	return p.store.ItineraryRows(ctx, tripID)
}
