// Package service is the trip engine's entry point. Every operation takes
// the acting user's id, re-checks trip ownership, normalizes its payload
// once and then reads or writes through the store.
package service

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/share"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/store"
)

const (
	defaultCurrency = "USD"
	maxNameLength   = 200
)

// Options configures a Planner. Zero values select the defaults.
type Options struct {
	// Tokens generates share tokens. Defaults to crypto/rand.
	Tokens *share.Generator
	// Now returns the current time; status derivation uses its date.
	Now func() time.Time
	// DefaultCurrency applies to trips created without a currency.
	DefaultCurrency string
	// PublicLimit is the page size of ListPublic when the caller passes 0.
	PublicLimit int
	Logger      *log.Logger
}

// Planner implements trip, city, activity, budget, itinerary, sharing and
// calendar operations over a Store.
type Planner struct {
	store           store.Store
	tokens          *share.Generator
	now             func() time.Time
	defaultCurrency string
	publicLimit     int
	logger          *log.Logger
}

// NewPlanner returns a Planner backed by s.
func NewPlanner(s store.Store, opts Options) *Planner {
	p := &Planner{
		store:           s,
		tokens:          opts.Tokens,
		now:             opts.Now,
		defaultCurrency: opts.DefaultCurrency,
		publicLimit:     opts.PublicLimit,
		logger:          opts.Logger,
	}
	if p.tokens == nil {
		p.tokens = share.NewGenerator(nil)
	}
	if p.now == nil {
		p.now = time.Now
	}
	if p.defaultCurrency == "" {
		p.defaultCurrency = defaultCurrency
	}
	if p.logger == nil {
		p.logger = log.Default()
	}
	return p
}

func (p *Planner) today() model.Date {
	return model.DateOf(p.now())
}

// withStatus refreshes the derived status as of today.
func (p *Planner) withStatus(t model.Trip) model.Trip {
	t.Status = model.DeriveStatus(t.StartDate, t.EndDate, p.today())
	return t
}

// ownedTrip loads tripID and checks that userID owns it. A missing trip is
// NotFound; a foreign trip is Forbidden.
func (p *Planner) ownedTrip(ctx context.Context, userID, tripID string) (model.Trip, error) {
	if strings.TrimSpace(userID) == "" {
		return model.Trip{}, apperr.Invalid("user id is required")
	}
	if strings.TrimSpace(tripID) == "" {
		return model.Trip{}, apperr.Invalid("trip id is required")
	}
	trip, err := p.store.GetTrip(ctx, tripID)
	if err != nil {
		return model.Trip{}, err
	}
	if trip.OwnerID != userID {
		return model.Trip{}, apperr.Forbidden("trip %s belongs to another user", tripID)
	}
	return trip, nil
}

// requiredText trims s and rejects empty or overlong values.
func requiredText(field, s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", apperr.Invalid("%s is required", field)
	}
	if len([]rune(s)) > maxNameLength {
		return "", apperr.Invalid("%s must be at most %d characters", field, maxNameLength)
	}
	return s, nil
}

// optionalText trims s and maps blank to nil.
func optionalText(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
