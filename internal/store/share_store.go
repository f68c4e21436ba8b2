package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

const (
	defaultPublicLimit = 20
	maxPublicLimit     = 100
)

// EnableSharing makes the trip public. A trip that already holds a token
// keeps it and token is ignored. Otherwise token is stored; if another trip
// holds it the call fails with ErrTokenCollision and nothing changes.
func (s *SQLiteStore) EnableSharing(ctx context.Context, tripID, token string) (model.ShareState, error) {
	var state model.ShareState
	err := s.withTx(ctx, "enabling sharing of trip "+tripID, func(tx *sqlx.Tx) error {
		trip, err := getTrip(ctx, tx, tripID)
		if err != nil {
			return err
		}

		ts := toMillis(now())
		if trip.ShareToken != nil {
			_, err = tx.ExecContext(ctx,
				"UPDATE trips SET is_public = 1, updated_at = ? WHERE id = ?", ts, tripID)
			if err != nil {
				return fmt.Errorf("publishing trip: %w", err)
			}
			state = model.ShareState{TripID: tripID, IsPublic: true, ShareToken: trip.ShareToken}
			return nil
		}

		_, err = tx.ExecContext(ctx, `
			UPDATE trips SET share_token = ?, is_public = 1, updated_at = ?
			WHERE id = ? AND share_token IS NULL`,
			token, ts, tripID)
		if isUniqueViolation(err) {
			return ErrTokenCollision
		}
		if err != nil {
			return fmt.Errorf("storing share token: %w", err)
		}
		issued := token
		state = model.ShareState{TripID: tripID, IsPublic: true, ShareToken: &issued}
		return nil
	})
	if err != nil {
		return model.ShareState{}, err
	}
	return state, nil
}

// DisableSharing makes the trip private and revokes its token. A later
// EnableSharing issues a new one.
func (s *SQLiteStore) DisableSharing(ctx context.Context, tripID string) error {
	result, err := s.db.ExecContext(ctx,
		"UPDATE trips SET is_public = 0, share_token = NULL, updated_at = ? WHERE id = ?",
		toMillis(now()), tripID)
	if err != nil {
		return apperr.Persistence(err, "disabling sharing of trip %s", tripID)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperr.NotFound("trip %s not found", tripID)
	}
	return nil
}

// GetPublicTrip resolves a token to a trip that is currently public.
func (s *SQLiteStore) GetPublicTrip(ctx context.Context, token string) (model.Trip, error) {
	var rec tripRecord
	err := s.db.GetContext(ctx, &rec,
		"SELECT "+tripColumns+" FROM trips WHERE share_token = ? AND is_public = 1", token)
	if err != nil {
		return model.Trip{}, notFoundOr(err, "shared trip", "for token")
	}
	return rec.toModel()
}

// ListPublicTrips returns public trips, most recently updated first. limit
// is clamped to [1, 100]; zero or less selects the default of 20.
func (s *SQLiteStore) ListPublicTrips(ctx context.Context, limit int) ([]model.Trip, error) {
	switch {
	case limit <= 0:
		limit = defaultPublicLimit
	case limit > maxPublicLimit:
		limit = maxPublicLimit
	}
	var recs []tripRecord
	err := s.db.SelectContext(ctx, &recs,
		"SELECT "+tripColumns+" FROM trips WHERE is_public = 1 ORDER BY updated_at DESC, id LIMIT ?",
		limit)
	if err != nil {
		return nil, apperr.Persistence(err, "listing public trips")
	}
	return tripsFromRecords(recs)
}

// CloneTrip copies the trip shared under token, with its cities and
// activities, in one transaction. The token must still resolve to a public
// trip inside that transaction. build receives the source row and returns
// the new trip; every city and activity gets a fresh id, activities are
// remapped to the copied cities and city order is kept verbatim.
func (s *SQLiteStore) CloneTrip(ctx context.Context, token string, build func(source model.Trip) model.Trip) (model.Trip, error) {
	var clone model.Trip
	err := s.withTx(ctx, "cloning shared trip", func(tx *sqlx.Tx) error {
		var rec tripRecord
		err := tx.GetContext(ctx, &rec,
			"SELECT "+tripColumns+" FROM trips WHERE share_token = ? AND is_public = 1", token)
		if err != nil {
			return notFoundOr(err, "shared trip", "for token")
		}
		source, err := rec.toModel()
		if err != nil {
			return err
		}

		clone = build(source)
		if clone.ID == "" {
			clone.ID = uuid.New().String()
		}
		ts := now()
		clone.CreatedAt = ts
		clone.UpdatedAt = ts
		clone.IsPublic = false
		clone.ShareToken = nil

		rows, err := itineraryRows(ctx, tx, source.ID)
		if err != nil {
			return err
		}
		if err := insertTrip(ctx, tx, clone); err != nil {
			return err
		}

		// Copies are stamped in source order so creation-time tiebreaks
		// sort the clone the same way as the source.
		seq := 0
		stamp := func() time.Time {
			seq++
			return ts.Add(time.Duration(seq) * time.Millisecond)
		}

		cityMap := make(map[string]string)
		for _, row := range rows {
			if _, done := cityMap[row.City.ID]; done {
				continue
			}
			c := row.City
			newID := uuid.New().String()
			cityMap[c.ID] = newID
			c.ID = newID
			c.TripID = clone.ID
			c.CreatedAt = stamp()
			c.UpdatedAt = c.CreatedAt
			if err := insertCity(ctx, tx, c); err != nil {
				return err
			}
		}

		for _, row := range rows {
			if row.Activity == nil {
				continue
			}
			a := *row.Activity
			cityID, ok := cityMap[a.CityID]
			if !ok {
				return fmt.Errorf("activity %s references unknown city %s", a.ID, a.CityID)
			}
			a.ID = uuid.New().String()
			a.TripID = clone.ID
			a.CityID = cityID
			a.CreatedAt = stamp()
			a.UpdatedAt = a.CreatedAt
			if err := insertActivity(ctx, tx, a); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return model.Trip{}, err
	}
	return clone, nil
}
