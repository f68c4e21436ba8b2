package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// CreateTrip inserts a new trip. Generates a UUID if ID is empty.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip model.Trip) (model.Trip, error) {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	ts := now()
	trip.CreatedAt = ts
	trip.UpdatedAt = ts

	if err := insertTrip(ctx, s.db, trip); err != nil {
		return model.Trip{}, apperr.Persistence(err, "creating trip")
	}
	return trip, nil
}

func insertTrip(ctx context.Context, db sqlx.ExecerContext, trip model.Trip) error {
	var budgetCents *int64
	if trip.BudgetTotal != nil {
		c, err := model.ToCents(*trip.BudgetTotal)
		if err != nil {
			return err
		}
		budgetCents = &c
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO trips (
			id, owner_id, name, description, start_date, end_date,
			cover_image_url, status, budget_cents, currency, is_public, share_token,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		trip.ID, trip.OwnerID, trip.Name, trip.Description,
		trip.StartDate.String(), trip.EndDate.String(),
		trip.CoverImageURL, string(trip.Status), budgetCents, trip.Currency,
		boolToInt(trip.IsPublic), trip.ShareToken,
		toMillis(trip.CreatedAt), toMillis(trip.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting trip %s: %w", trip.ID, err)
	}
	return nil
}

// GetTrip retrieves a single trip by ID.
func (s *SQLiteStore) GetTrip(ctx context.Context, id string) (model.Trip, error) {
	return getTrip(ctx, s.db, id)
}

func getTrip(ctx context.Context, q sqlx.QueryerContext, id string) (model.Trip, error) {
	var rec tripRecord
	err := sqlx.GetContext(ctx, q, &rec,
		"SELECT "+tripColumns+" FROM trips WHERE id = ?", id)
	if err != nil {
		return model.Trip{}, notFoundOr(err, "trip", id)
	}
	return rec.toModel()
}

// ListTrips retrieves every trip owned by ownerID, earliest first.
func (s *SQLiteStore) ListTrips(ctx context.Context, ownerID string) ([]model.Trip, error) {
	var recs []tripRecord
	err := s.db.SelectContext(ctx, &recs,
		"SELECT "+tripColumns+" FROM trips WHERE owner_id = ? ORDER BY start_date, created_at",
		ownerID)
	if err != nil {
		return nil, apperr.Persistence(err, "listing trips for %s", ownerID)
	}
	return tripsFromRecords(recs)
}

// UpdateTrip writes the editable trip fields. The new date range must
// still contain every city of the trip.
func (s *SQLiteStore) UpdateTrip(ctx context.Context, trip model.Trip) (model.Trip, error) {
	var updated model.Trip
	err := s.withTx(ctx, "updating trip "+trip.ID, func(tx *sqlx.Tx) error {
		var bounds struct {
			MinStart *string `db:"min_start"`
			MaxEnd   *string `db:"max_end"`
		}
		err := tx.GetContext(ctx, &bounds,
			"SELECT MIN(start_date) AS min_start, MAX(end_date) AS max_end FROM cities WHERE trip_id = ?",
			trip.ID)
		if err != nil {
			return fmt.Errorf("reading city bounds: %w", err)
		}
		if bounds.MinStart != nil && *bounds.MinStart < trip.StartDate.String() {
			return apperr.Range("trip would start after its city starting %s", *bounds.MinStart)
		}
		if bounds.MaxEnd != nil && *bounds.MaxEnd > trip.EndDate.String() {
			return apperr.Range("trip would end before its city ending %s", *bounds.MaxEnd)
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE trips SET
				name = ?, description = ?, start_date = ?, end_date = ?,
				cover_image_url = ?, status = ?, updated_at = ?
			WHERE id = ?`,
			trip.Name, trip.Description, trip.StartDate.String(), trip.EndDate.String(),
			trip.CoverImageURL, string(trip.Status), toMillis(now()),
			trip.ID,
		)
		if err != nil {
			return fmt.Errorf("updating trip %s: %w", trip.ID, err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return apperr.NotFound("trip %s not found", trip.ID)
		}

		updated, err = getTrip(ctx, tx, trip.ID)
		return err
	})
	if err != nil {
		return model.Trip{}, err
	}
	return updated, nil
}

// UpdateBudget applies a normalized budget patch. Nil fields keep their
// stored value.
func (s *SQLiteStore) UpdateBudget(ctx context.Context, tripID string, patch model.BudgetPatch) (model.Trip, error) {
	var budgetCents *int64
	if patch.BudgetTotal != nil {
		c, err := model.ToCents(*patch.BudgetTotal)
		if err != nil {
			return model.Trip{}, err
		}
		budgetCents = &c
	}

	var updated model.Trip
	err := s.withTx(ctx, "updating budget of trip "+tripID, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `
			UPDATE trips SET
				budget_cents = COALESCE(?, budget_cents),
				currency = COALESCE(?, currency),
				updated_at = ?
			WHERE id = ?`,
			budgetCents, patch.Currency, toMillis(now()), tripID,
		)
		if err != nil {
			return fmt.Errorf("updating budget: %w", err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return apperr.NotFound("trip %s not found", tripID)
		}
		updated, err = getTrip(ctx, tx, tripID)
		return err
	})
	if err != nil {
		return model.Trip{}, err
	}
	return updated, nil
}

// DeleteTrip removes a trip. Cascades to cities and activities.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", id)
	if err != nil {
		return apperr.Persistence(err, "deleting trip %s", id)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperr.NotFound("trip %s not found", id)
	}
	return nil
}

// tripExists reports whether the trip row is present.
func tripExists(ctx context.Context, q sqlx.QueryerContext, id string) (bool, error) {
	var one int
	err := sqlx.GetContext(ctx, q, &one, "SELECT 1 FROM trips WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking trip %s: %w", id, err)
	}
	return true, nil
}
