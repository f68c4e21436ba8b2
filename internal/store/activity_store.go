package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/daterange"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

const activityOrder = "activity_date, start_time IS NULL, start_time, created_at, id"

// CreateActivity inserts an activity after checking, in the same
// transaction, that its city belongs to the trip and its date falls in the
// city's range.
func (s *SQLiteStore) CreateActivity(ctx context.Context, activity model.Activity) (model.Activity, error) {
	if activity.ID == "" {
		activity.ID = uuid.New().String()
	}
	ts := now()
	activity.CreatedAt = ts
	activity.UpdatedAt = ts

	err := s.withTx(ctx, "creating activity in trip "+activity.TripID, func(tx *sqlx.Tx) error {
		if err := checkActivityCity(ctx, tx, activity); err != nil {
			return err
		}
		return insertActivity(ctx, tx, activity)
	})
	if err != nil {
		return model.Activity{}, err
	}
	return activity, nil
}

func checkActivityCity(ctx context.Context, tx *sqlx.Tx, activity model.Activity) error {
	city, err := getCity(ctx, tx, activity.TripID, activity.CityID)
	if err != nil {
		return err
	}
	return daterange.AssertWithin(activity.Date, city.StartDate, city.EndDate)
}

func insertActivity(ctx context.Context, db sqlx.ExecerContext, a model.Activity) error {
	cents, err := model.ToCents(a.Cost)
	if err != nil {
		return err
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO activities (
			id, trip_id, city_id, name, category, activity_date,
			start_time, end_time, cost_cents, notes, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.TripID, a.CityID, a.Name, string(a.Category), a.Date.String(),
		clockValue(a.StartTime), clockValue(a.EndTime), cents, a.Notes,
		toMillis(a.CreatedAt), toMillis(a.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting activity %s: %w", a.ID, err)
	}
	return nil
}

// GetActivity retrieves an activity scoped to its trip.
func (s *SQLiteStore) GetActivity(ctx context.Context, tripID, activityID string) (model.Activity, error) {
	return getActivity(ctx, s.db, tripID, activityID)
}

func getActivity(ctx context.Context, q sqlx.QueryerContext, tripID, activityID string) (model.Activity, error) {
	var rec activityRecord
	err := sqlx.GetContext(ctx, q, &rec,
		"SELECT "+activityColumns+" FROM activities WHERE id = ? AND trip_id = ?",
		activityID, tripID)
	if err != nil {
		return model.Activity{}, notFoundOr(err, "activity", activityID)
	}
	return rec.toModel()
}

// ListActivities retrieves a trip's activities matching filter, ordered by
// date, then start time with untimed entries last, then creation.
func (s *SQLiteStore) ListActivities(ctx context.Context, tripID string, filter ActivityFilter) ([]model.Activity, error) {
	where := []string{"trip_id = ?"}
	args := []any{tripID}
	if filter.CityID != nil {
		where = append(where, "city_id = ?")
		args = append(args, *filter.CityID)
	}
	if filter.From != nil {
		where = append(where, "activity_date >= ?")
		args = append(args, filter.From.String())
	}
	if filter.To != nil {
		where = append(where, "activity_date <= ?")
		args = append(args, filter.To.String())
	}

	query := "SELECT " + activityColumns + " FROM activities WHERE " +
		strings.Join(where, " AND ") + " ORDER BY " + activityOrder

	var recs []activityRecord
	if err := s.db.SelectContext(ctx, &recs, query, args...); err != nil {
		return nil, apperr.Persistence(err, "listing activities of trip %s", tripID)
	}
	return activitiesFromRecords(recs)
}

// UpdateActivity rewrites every mutable column of the activity. Moving it
// to another city re-checks membership and the date range.
func (s *SQLiteStore) UpdateActivity(ctx context.Context, activity model.Activity) (model.Activity, error) {
	cents, err := model.ToCents(activity.Cost)
	if err != nil {
		return model.Activity{}, err
	}

	var updated model.Activity
	err = s.withTx(ctx, "updating activity "+activity.ID, func(tx *sqlx.Tx) error {
		if err := checkActivityCity(ctx, tx, activity); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx, `
			UPDATE activities SET
				city_id = ?, name = ?, category = ?, activity_date = ?,
				start_time = ?, end_time = ?, cost_cents = ?, notes = ?, updated_at = ?
			WHERE id = ? AND trip_id = ?`,
			activity.CityID, activity.Name, string(activity.Category), activity.Date.String(),
			clockValue(activity.StartTime), clockValue(activity.EndTime),
			cents, activity.Notes, toMillis(now()),
			activity.ID, activity.TripID,
		)
		if err != nil {
			return fmt.Errorf("updating activity %s: %w", activity.ID, err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return apperr.NotFound("activity %s not found", activity.ID)
		}
		updated, err = getActivity(ctx, tx, activity.TripID, activity.ID)
		return err
	})
	if err != nil {
		return model.Activity{}, err
	}
	return updated, nil
}

// DeleteActivity removes an activity from its trip.
func (s *SQLiteStore) DeleteActivity(ctx context.Context, tripID, activityID string) error {
	result, err := s.db.ExecContext(ctx,
		"DELETE FROM activities WHERE id = ? AND trip_id = ?", activityID, tripID)
	if err != nil {
		return apperr.Persistence(err, "deleting activity %s", activityID)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return apperr.NotFound("activity %s not found", activityID)
	}
	return nil
}
