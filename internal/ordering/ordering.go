// Package ordering keeps the order_index values of a trip's cities a dense
// 1..N permutation.
//
// The store applies reorders in two phases inside one transaction: every
// affected row is first shifted by Offset, then set to its target. The
// shift keeps (trip_id, order_index) unique at every intermediate step,
// which a direct swap of two indices would not.
package ordering

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

// Offset is added to every affected index during the first reorder phase.
const Offset = 1_000_000

// NextIndex returns the index for a city appended after current max.
func NextIndex(currentMax int) int {
	if currentMax < 0 {
		return 1
	}
	return currentMax + 1
}

// ValidateReorder checks a complete reorder batch against the trip's current
// city ids. Checks run in a fixed order: id format and membership, duplicate
// ids, duplicate indices, index set equal to 1..N, and id set equal to the
// trip's cities. Any failure rejects the whole batch.
func ValidateReorder(existing []string, assignments []model.ReorderAssignment) error {
	if len(assignments) == 0 {
		return apperr.Invalid("reorder requires at least one assignment")
	}

	members := make(map[string]bool, len(existing))
	for _, id := range existing {
		members[id] = true
	}

	for _, a := range assignments {
		if _, err := uuid.Parse(a.CityID); err != nil {
			return apperr.Invalid("city id %q is malformed", a.CityID)
		}
		if !members[a.CityID] {
			return apperr.Invalid("city %s does not belong to this trip", a.CityID)
		}
	}

	seenIDs := make(map[string]bool, len(assignments))
	for _, a := range assignments {
		if seenIDs[a.CityID] {
			return apperr.Invalid("city %s appears more than once", a.CityID)
		}
		seenIDs[a.CityID] = true
	}

	seenIdx := make(map[int]bool, len(assignments))
	for _, a := range assignments {
		if seenIdx[a.OrderIndex] {
			return apperr.Invalid("order index %d appears more than once", a.OrderIndex)
		}
		seenIdx[a.OrderIndex] = true
	}

	n := len(assignments)
	for _, a := range assignments {
		if a.OrderIndex < 1 || a.OrderIndex > n {
			return apperr.Invalid("order indices must be exactly 1..%d, got %d", n, a.OrderIndex)
		}
	}

	if n != len(existing) {
		return apperr.Invalid("reorder must include all %d cities of the trip, got %d", len(existing), n)
	}

	return nil
}

// Ranked is the minimum a row needs to be densely ranked.
type Ranked struct {
	ID         string
	OrderIndex int
	CreatedAt  time.Time
}

// DenseRank returns the 1-based target index of each row, keyed by id,
// ordered by (order_index, created_at, id).
func DenseRank(rows []Ranked) map[string]int {
	sorted := make([]Ranked, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.OrderIndex != b.OrderIndex {
			return a.OrderIndex < b.OrderIndex
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.Before(b.CreatedAt)
		}
		return a.ID < b.ID
	})

	out := make(map[string]int, len(sorted))
	for i, r := range sorted {
		out[r.ID] = i + 1
	}
	return out
}

// IsDense reports whether indices form exactly {1..len(indices)}.
func IsDense(indices []int) bool {
	seen := make(map[int]bool, len(indices))
	for _, idx := range indices {
		if idx < 1 || idx > len(indices) || seen[idx] {
			return false
		}
		seen[idx] = true
	}
	return true
}
