package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/daterange"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/ordering"
)

// AddCity appends a city to its trip. The city's range must nest inside the
// trip's as read in the same transaction. The order index is assigned as
// MAX(order_index)+1; any value on city is ignored.
func (s *SQLiteStore) AddCity(ctx context.Context, city model.City) (model.City, error) {
	if city.ID == "" {
		city.ID = uuid.New().String()
	}
	ts := now()
	city.CreatedAt = ts
	city.UpdatedAt = ts

	err := s.withTx(ctx, "adding city to trip "+city.TripID, func(tx *sqlx.Tx) error {
		if err := checkCityTrip(ctx, tx, city); err != nil {
			return err
		}

		var maxIndex int
		err := tx.GetContext(ctx, &maxIndex,
			"SELECT COALESCE(MAX(order_index), 0) FROM cities WHERE trip_id = ?", city.TripID)
		if err != nil {
			return fmt.Errorf("reading max order index: %w", err)
		}
		city.OrderIndex = ordering.NextIndex(maxIndex)
		return insertCity(ctx, tx, city)
	})
	if err != nil {
		return model.City{}, err
	}
	return city, nil
}

func checkCityTrip(ctx context.Context, tx *sqlx.Tx, city model.City) error {
	trip, err := getTrip(ctx, tx, city.TripID)
	if err != nil {
		return err
	}
	return daterange.AssertNested(city.StartDate, city.EndDate, trip.StartDate, trip.EndDate)
}

func insertCity(ctx context.Context, db sqlx.ExecerContext, city model.City) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO cities (
			id, trip_id, name, country, start_date, end_date,
			order_index, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		city.ID, city.TripID, city.Name, city.Country,
		city.StartDate.String(), city.EndDate.String(),
		city.OrderIndex, toMillis(city.CreatedAt), toMillis(city.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting city %s: %w", city.ID, err)
	}
	return nil
}

// GetCity retrieves a city scoped to its trip.
func (s *SQLiteStore) GetCity(ctx context.Context, tripID, cityID string) (model.City, error) {
	return getCity(ctx, s.db, tripID, cityID)
}

func getCity(ctx context.Context, q sqlx.QueryerContext, tripID, cityID string) (model.City, error) {
	var rec cityRecord
	err := sqlx.GetContext(ctx, q, &rec,
		"SELECT "+cityColumns+" FROM cities WHERE id = ? AND trip_id = ?", cityID, tripID)
	if err != nil {
		return model.City{}, notFoundOr(err, "city", cityID)
	}
	return rec.toModel()
}

// ListCities retrieves a trip's cities in travel order.
func (s *SQLiteStore) ListCities(ctx context.Context, tripID string) ([]model.City, error) {
	cities, err := listCities(ctx, s.db, tripID)
	if err != nil {
		return nil, apperr.Persistence(err, "listing cities of trip %s", tripID)
	}
	return cities, nil
}

func listCities(ctx context.Context, q sqlx.QueryerContext, tripID string) ([]model.City, error) {
	var recs []cityRecord
	err := sqlx.SelectContext(ctx, q, &recs,
		"SELECT "+cityColumns+" FROM cities WHERE trip_id = ? ORDER BY order_index, created_at, id",
		tripID)
	if err != nil {
		return nil, fmt.Errorf("selecting cities: %w", err)
	}
	cities := make([]model.City, 0, len(recs))
	for _, r := range recs {
		c, err := r.toModel()
		if err != nil {
			return nil, err
		}
		cities = append(cities, c)
	}
	return cities, nil
}

// UpdateCity writes name, country and dates. The new range must nest inside
// the trip and still contain every activity of the city. The order index is
// not touched.
func (s *SQLiteStore) UpdateCity(ctx context.Context, city model.City) (model.City, error) {
	var updated model.City
	err := s.withTx(ctx, "updating city "+city.ID, func(tx *sqlx.Tx) error {
		if err := checkCityTrip(ctx, tx, city); err != nil {
			return err
		}

		var bounds struct {
			MinDate *string `db:"min_date"`
			MaxDate *string `db:"max_date"`
		}
		err := tx.GetContext(ctx, &bounds, `
			SELECT MIN(activity_date) AS min_date, MAX(activity_date) AS max_date
			FROM activities WHERE city_id = ? AND trip_id = ?`,
			city.ID, city.TripID)
		if err != nil {
			return fmt.Errorf("reading activity bounds: %w", err)
		}
		if bounds.MinDate != nil && *bounds.MinDate < city.StartDate.String() {
			return apperr.Range("city would start after its activity on %s", *bounds.MinDate)
		}
		if bounds.MaxDate != nil && *bounds.MaxDate > city.EndDate.String() {
			return apperr.Range("city would end before its activity on %s", *bounds.MaxDate)
		}

		result, err := tx.ExecContext(ctx, `
			UPDATE cities SET
				name = ?, country = ?, start_date = ?, end_date = ?, updated_at = ?
			WHERE id = ? AND trip_id = ?`,
			city.Name, city.Country, city.StartDate.String(), city.EndDate.String(),
			toMillis(now()), city.ID, city.TripID,
		)
		if err != nil {
			return fmt.Errorf("updating city %s: %w", city.ID, err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return apperr.NotFound("city %s not found", city.ID)
		}
		updated, err = getCity(ctx, tx, city.TripID, city.ID)
		return err
	})
	if err != nil {
		return model.City{}, err
	}
	return updated, nil
}

// DeleteCity removes a city and its activities, then compacts the
// remaining order indices back to 1..N.
func (s *SQLiteStore) DeleteCity(ctx context.Context, tripID, cityID string) error {
	return s.withTx(ctx, "deleting city "+cityID, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx,
			"DELETE FROM cities WHERE id = ? AND trip_id = ?", cityID, tripID)
		if err != nil {
			return fmt.Errorf("deleting city %s: %w", cityID, err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return apperr.NotFound("city %s not found", cityID)
		}

		remaining, err := listCities(ctx, tx, tripID)
		if err != nil {
			return err
		}
		ranked := make([]ordering.Ranked, 0, len(remaining))
		for _, c := range remaining {
			ranked = append(ranked, ordering.Ranked{ID: c.ID, OrderIndex: c.OrderIndex, CreatedAt: c.CreatedAt})
		}
		return applyOrder(ctx, tx, tripID, ordering.DenseRank(ranked))
	})
}

// ReorderCities applies a complete reorder batch. Validation runs inside
// the transaction against the current cities, so a rejected batch writes
// nothing.
func (s *SQLiteStore) ReorderCities(ctx context.Context, tripID string, assignments []model.ReorderAssignment) ([]model.City, error) {
	var cities []model.City
	err := s.withTx(ctx, "reordering cities of trip "+tripID, func(tx *sqlx.Tx) error {
		ok, err := tripExists(ctx, tx, tripID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("trip %s not found", tripID)
		}

		var existing []string
		err = tx.SelectContext(ctx, &existing, "SELECT id FROM cities WHERE trip_id = ?", tripID)
		if err != nil {
			return fmt.Errorf("selecting city ids: %w", err)
		}
		if err := ordering.ValidateReorder(existing, assignments); err != nil {
			return err
		}

		target := make(map[string]int, len(assignments))
		for _, a := range assignments {
			target[a.CityID] = a.OrderIndex
		}
		if err := applyOrder(ctx, tx, tripID, target); err != nil {
			return err
		}

		cities, err = listCities(ctx, tx, tripID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return cities, nil
}

// applyOrder moves every city of the trip out of the 1..N range, then sets
// each to its target. target must cover every city of the trip.
func applyOrder(ctx context.Context, tx *sqlx.Tx, tripID string, target map[string]int) error {
	if len(target) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx,
		"UPDATE cities SET order_index = order_index + ? WHERE trip_id = ?",
		ordering.Offset, tripID)
	if err != nil {
		return fmt.Errorf("shifting order indices: %w", err)
	}

	ts := toMillis(now())
	for id, idx := range target {
		result, err := tx.ExecContext(ctx,
			"UPDATE cities SET order_index = ?, updated_at = ? WHERE id = ? AND trip_id = ?",
			idx, ts, id, tripID)
		if err != nil {
			return fmt.Errorf("setting order index of city %s: %w", id, err)
		}
		if rows, _ := result.RowsAffected(); rows == 0 {
			return apperr.NotFound("city %s not found", id)
		}
	}
	return nil
}
