package ordering

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/apperr"
	"github.com/AdhishMagic/GlobeTrotter-Empowering-Personalized-Travel-Planning-sub000/internal/model"
)

func ra(id string, idx int) model.ReorderAssignment {
	return model.ReorderAssignment{CityID: id, OrderIndex: idx}
}

func TestNextIndex(t *testing.T) {
	assert.Equal(t, 1, NextIndex(0))
	assert.Equal(t, 4, NextIndex(3))
}

func TestValidateReorder(t *testing.T) {
	a, b, c := uuid.NewString(), uuid.NewString(), uuid.NewString()
	outsider := uuid.NewString()
	existing := []string{a, b, c}

	tests := []struct {
		name        string
		assignments []model.ReorderAssignment
		wantErr     bool
	}{
		{
			name:        "full permutation",
			assignments: []model.ReorderAssignment{ra(a, 3), ra(b, 1), ra(c, 2)},
		},
		{
			name:        "empty batch",
			assignments: nil,
			wantErr:     true,
		},
		{
			name:        "malformed id",
			assignments: []model.ReorderAssignment{ra("not-a-uuid", 1), ra(b, 2), ra(c, 3)},
			wantErr:     true,
		},
		{
			name:        "non-member id",
			assignments: []model.ReorderAssignment{ra(outsider, 1), ra(b, 2), ra(c, 3)},
			wantErr:     true,
		},
		{
			name:        "duplicate city id",
			assignments: []model.ReorderAssignment{ra(a, 1), ra(a, 2), ra(c, 3)},
			wantErr:     true,
		},
		{
			name:        "duplicate order index",
			assignments: []model.ReorderAssignment{ra(a, 1), ra(b, 1), ra(c, 3)},
			wantErr:     true,
		},
		{
			name:        "index out of 1..N",
			assignments: []model.ReorderAssignment{ra(a, 1), ra(b, 2), ra(c, 4)},
			wantErr:     true,
		},
		{
			name:        "zero index",
			assignments: []model.ReorderAssignment{ra(a, 0), ra(b, 1), ra(c, 2)},
			wantErr:     true,
		},
		{
			name:        "partial reorder",
			assignments: []model.ReorderAssignment{ra(a, 2), ra(b, 1)},
			wantErr:     true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateReorder(existing, tc.assignments)
			if !tc.wantErr {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, apperr.ErrInvalidInput), "got %v", err)
		})
	}
}

func TestDenseRankCompactsGaps(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []Ranked{
		{ID: "c", OrderIndex: 5, CreatedAt: base},
		{ID: "a", OrderIndex: 1, CreatedAt: base},
		{ID: "b", OrderIndex: 3, CreatedAt: base},
	}

	got := DenseRank(rows)
	assert.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, got)
}

func TestDenseRankBreaksTiesByCreation(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	rows := []Ranked{
		{ID: "late", OrderIndex: 2, CreatedAt: base.Add(time.Minute)},
		{ID: "early", OrderIndex: 2, CreatedAt: base},
	}

	got := DenseRank(rows)
	assert.Equal(t, 1, got["early"])
	assert.Equal(t, 2, got["late"])
}

func TestIsDense(t *testing.T) {
	assert.True(t, IsDense(nil))
	assert.True(t, IsDense([]int{2, 1, 3}))
	assert.False(t, IsDense([]int{1, 3}))
	assert.False(t, IsDense([]int{1, 1}))
}
