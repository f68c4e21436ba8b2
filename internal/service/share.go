package service

import (
	"context"
	"errors"
	"strings"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/itinerary"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/share"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/store"
)

// EnableSharing makes the trip public. An already shared trip keeps its
// token; otherwise a fresh one is issued, retrying on collision up to
// share.MaxAttempts times.
func (p *Planner) EnableSharing(ctx context.Context, userID, tripID string) (model.ShareState, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return model.ShareState{}, err
	}

	for attempt := 1; attempt <= share.MaxAttempts; attempt++ {
		token, err := p.tokens.NewToken()
		if err != nil {
			return model.ShareState{}, apperr.Persistence(err, "generating share token")
		}
		state, err := p.store.EnableSharing(ctx, tripID, token)
		if errors.Is(err, store.ErrTokenCollision) {
			p.logger.Printf("share token collision for trip %s (attempt %d/%d)", tripID, attempt, share.MaxAttempts)
			continue
		}
		if err != nil {
			return model.ShareState{}, err
		}
		return state, nil
	}
	return model.ShareState{}, apperr.Conflict("could not issue a unique share token for trip %s after %d attempts", tripID, share.MaxAttempts)
}

// DisableSharing makes the trip private and revokes its token.
func (p *Planner) DisableSharing(ctx context.Context, userID, tripID string) (model.ShareState, error) {
	if _, err := p.ownedTrip(ctx, userID, tripID); err != nil {
		return model.ShareState{}, err
	}
	if err := p.store.DisableSharing(ctx, tripID); err != nil {
		return model.ShareState{}, err
	}
	return model.ShareState{TripID: tripID, IsPublic: false}, nil
}

// ViewByToken returns the read-only view of a currently public trip. The
// owner and budget are not exposed and no activity is editable.
func (p *Planner) ViewByToken(ctx context.Context, token string) (model.PublicTrip, error) {
	trip, err := p.publicTrip(ctx, token)
	if err != nil {
		return model.PublicTrip{}, err
	}
	rows, err := p.store.ItineraryRows(ctx, trip.ID)
	if err != nil {
		return model.PublicTrip{}, err
	}

	view := model.PublicTrip{
		Trip:       publicView(p.withStatus(trip)),
		Cities:     []model.City{},
		Activities: []model.Activity{},
		Itinerary:  itinerary.Full(rows, itinerary.Options{ReadOnly: true}),
	}
	seen := make(map[string]bool)
	for _, r := range rows {
		if !seen[r.City.ID] {
			seen[r.City.ID] = true
			view.Cities = append(view.Cities, r.City)
		}
		if r.Activity != nil {
			view.Activities = append(view.Activities, *r.Activity)
		}
	}
	itinerary.SortActivities(view.Activities)
	return view, nil
}

// CloneToUser copies a public trip with all its cities and activities into
// a new private trip owned by newOwnerID. The copy has no budget. A token
// revoked before the copy commits yields NotFound.
func (p *Planner) CloneToUser(ctx context.Context, token, newOwnerID string) (model.Trip, error) {
	if strings.TrimSpace(newOwnerID) == "" {
		return model.Trip{}, apperr.Invalid("user id is required")
	}
	token = strings.TrimSpace(token)
	if err := share.ValidateToken(token); err != nil {
		return model.Trip{}, err
	}

	cloned, err := p.store.CloneTrip(ctx, token, func(source model.Trip) model.Trip {
		return p.withStatus(model.Trip{
			OwnerID:       newOwnerID,
			Name:          source.Name,
			Description:   source.Description,
			StartDate:     source.StartDate,
			EndDate:       source.EndDate,
			CoverImageURL: source.CoverImageURL,
			Currency:      source.Currency,
		})
	})
	if err != nil {
		p.logger.Printf("clone for %s rolled back: %v", newOwnerID, err)
		return model.Trip{}, err
	}
	return cloned, nil
}

// ListPublic returns public trips, most recently updated first. A limit of
// zero selects the configured page size.
func (p *Planner) ListPublic(ctx context.Context, limit int) ([]model.Trip, error) {
	if limit == 0 {
		limit = p.publicLimit
	}
	trips, err := p.store.ListPublicTrips(ctx, limit)
	if err != nil {
		return nil, err
	}
	for i := range trips {
		trips[i] = publicView(p.withStatus(trips[i]))
	}
	return trips, nil
}

func (p *Planner) publicTrip(ctx context.Context, token string) (model.Trip, error) {
	token = strings.TrimSpace(token)
	if err := share.ValidateToken(token); err != nil {
		return model.Trip{}, err
	}
	return p.store.GetPublicTrip(ctx, token)
}

// publicView strips owner-only fields from a trip.
func publicView(t model.Trip) model.Trip {
	t.OwnerID = ""
	t.BudgetTotal = nil
	return t
}
