package onboarding

import (
	"testing"

	apperrors "onboarding-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyOffset(t *testing.T) {
	tests := []struct {
		offset int
		want   MilestoneID
	}{
		{0, MilestoneDay1},
		{1, MilestoneWeek1},
		{4, MilestoneWeek1},
		{5, MilestoneDay30},
		{29, MilestoneDay30},
		{30, MilestoneDay60},
		{59, MilestoneDay60},
		{60, MilestoneDay90},
		{1000, MilestoneDay90},
	}
	for _, tt := range tests {
		got, err := ClassifyOffset(tt.offset)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "offset %d", tt.offset)
	}
}

func TestClassifyOffset_Totality(t *testing.T) {
	for offset := 0; offset <= 500; offset++ {
		got, err := ClassifyOffset(offset)
		require.NoError(t, err)
		assert.True(t, got.IsValid())

		matches := 0
		for _, def := range Milestones() {
			if def.Contains(offset) {
				matches++
			}
		}
		assert.Equal(t, 1, matches, "offset %d must belong to exactly one milestone", offset)
	}
}

func TestClassifyOffset_Negative(t *testing.T) {
	_, err := ClassifyOffset(-1)
	assert.True(t, apperrors.IsValidation(err))
}

func TestClassifyDueDate(t *testing.T) {
	start := MustParseDate("2025-01-06")

	t.Run("start day is day 1", func(t *testing.T) {
		got, err := ClassifyDueDate(start, start)
		require.NoError(t, err)
		assert.Equal(t, MilestoneDay1, got)
	})

	t.Run("friday of first week is week 1", func(t *testing.T) {
		got, err := ClassifyDueDate(start, MustParseDate("2025-01-10"))
		require.NoError(t, err)
		assert.Equal(t, MilestoneWeek1, got)
	})

	t.Run("following monday is day 30", func(t *testing.T) {
		got, err := ClassifyDueDate(start, MustParseDate("2025-01-13"))
		require.NoError(t, err)
		assert.Equal(t, MilestoneDay30, got)
	})

	t.Run("due before start fails", func(t *testing.T) {
		_, err := ClassifyDueDate(start, MustParseDate("2025-01-03"))
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})
}

func TestMilestoneDefinitions(t *testing.T) {
	ids := MilestoneIDs()
	assert.Equal(t, []MilestoneID{MilestoneDay1, MilestoneWeek1, MilestoneDay30, MilestoneDay60, MilestoneDay90}, ids)

	for i, id := range ids {
		assert.Equal(t, i, id.Index())
		def, ok := DefinitionOf(id)
		require.True(t, ok)
		assert.True(t, def.Contains(def.DefaultOffset), "%s default offset must sit in its own window", id)
	}

	assert.False(t, MilestoneID("day_120").IsValid())
	assert.Equal(t, -1, MilestoneID("day_120").Index())

	// callers cannot change the package table through the returned slice
	defs := Milestones()
	defs[0].Label = "changed"
	assert.Equal(t, "Day 1", Milestones()[0].Label)
}
