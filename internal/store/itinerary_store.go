package store

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

const itineraryQuery = `
	SELECT
		c.id, c.trip_id, c.name, c.country, c.start_date, c.end_date,
		c.order_index, c.created_at, c.updated_at,
		a.id            AS a_id,
		a.name          AS a_name,
		a.category      AS a_category,
		a.activity_date AS a_activity_date,
		a.start_time    AS a_start_time,
		a.end_time      AS a_end_time,
		a.cost_cents    AS a_cost_cents,
		a.notes         AS a_notes,
		a.created_at    AS a_created_at,
		a.updated_at    AS a_updated_at
	FROM cities c
	LEFT JOIN activities a ON a.city_id = c.id AND a.trip_id = c.trip_id
	WHERE c.trip_id = ?
	ORDER BY c.order_index, a.activity_date, a.start_time IS NULL, a.start_time, a.created_at, a.id`

// ItineraryRows returns one row per (city, activity) pair of the trip, plus
// one row with a nil activity for each city that has none.
func (s *SQLiteStore) ItineraryRows(ctx context.Context, tripID string) ([]model.ItineraryRow, error) {
	rows, err := itineraryRows(ctx, s.db, tripID)
	if err != nil {
		return nil, apperr.Persistence(err, "loading itinerary of trip %s", tripID)
	}
	return rows, nil
}

func itineraryRows(ctx context.Context, q sqlx.QueryerContext, tripID string) ([]model.ItineraryRow, error) {
	var recs []itineraryRecord
	if err := sqlx.SelectContext(ctx, q, &recs, itineraryQuery, tripID); err != nil {
		return nil, fmt.Errorf("selecting itinerary rows: %w", err)
	}
	out := make([]model.ItineraryRow, 0, len(recs))
	for _, r := range recs {
		row, err := r.toModel()
		if err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, nil
}
