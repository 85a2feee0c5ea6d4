package onboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlan(t *testing.T) Plan {
	t.Helper()
	plan, _ := NewGenerator(MustDefaultCatalog()).Generate("software_engineer", MustParseDate("2025-01-06"), "Ada")
	return plan
}

func completeThrough(plan *Plan, milestones int) {
	for i := 0; i < milestones && i < len(plan.Milestones); i++ {
		for j := range plan.Milestones[i].Tasks {
			plan.Milestones[i].Tasks[j].Status = TaskStatusCompleted
		}
	}
}

func TestDeriveStatus_Scenarios(t *testing.T) {
	t.Run("on schedule at end of week one", func(t *testing.T) {
		plan := newTestPlan(t)
		completeThrough(&plan, 2)

		p := DeriveStatus(&plan, MustParseDate("2025-01-10"))
		assert.Equal(t, 2, p.ScheduledProgress)
		assert.Equal(t, 2, p.ActualProgress)
		assert.Equal(t, StatusInProgress, p.Status)
		assert.Equal(t, MilestoneDay30, p.CurrentMilestone)
		assert.Equal(t, 5, p.WorkingDay)
	})

	t.Run("overdue well past day 30", func(t *testing.T) {
		plan := newTestPlan(t)

		p := DeriveStatus(&plan, MustParseDate("2025-02-15"))
		assert.GreaterOrEqual(t, p.ScheduledProgress, 3)
		assert.Equal(t, 0, p.ActualProgress)
		assert.Equal(t, StatusOverdue, p.Status)
		assert.Equal(t, MilestoneDay1, p.CurrentMilestone)
	})

	t.Run("completed regardless of date", func(t *testing.T) {
		plan := newTestPlan(t)
		completeThrough(&plan, MilestoneCount)

		for _, today := range []string{"2024-12-01", "2025-01-06", "2025-03-01", "2026-01-01"} {
			p := DeriveStatus(&plan, MustParseDate(today))
			assert.Equal(t, 5, p.ActualProgress, today)
			assert.Equal(t, StatusCompleted, p.Status, today)
			assert.Equal(t, MilestoneDay90, p.CurrentMilestone, today)
			assert.Equal(t, 100.0, p.CompletionPercent, today)
		}
	})

	t.Run("not started before the start date", func(t *testing.T) {
		plan := newTestPlan(t)
		p := DeriveStatus(&plan, MustParseDate("2025-01-03"))
		assert.Equal(t, 0, p.ScheduledProgress)
		assert.Equal(t, 0, p.ActualProgress)
		assert.Equal(t, StatusNotStarted, p.Status)
		assert.Equal(t, 0, p.WorkingDay)
	})

	t.Run("ahead of schedule before start is in progress", func(t *testing.T) {
		plan := newTestPlan(t)
		completeThrough(&plan, 1)
		p := DeriveStatus(&plan, MustParseDate("2025-01-03"))
		assert.Equal(t, StatusInProgress, p.Status)
	})

	t.Run("start day with nothing done is behind", func(t *testing.T) {
		plan := newTestPlan(t)
		p := DeriveStatus(&plan, MustParseDate("2025-01-06"))
		assert.Equal(t, 1, p.ScheduledProgress)
		assert.Equal(t, StatusOverdue, p.Status)
	})
}

func TestScheduledProgress_Boundaries(t *testing.T) {
	start := MustParseDate("2025-01-06")
	tests := []struct {
		workingDay int
		want       int
	}{
		{1, 1},
		{4, 1},
		{5, 2},
		{29, 2},
		{30, 3},
		{59, 3},
		{60, 4},
		{89, 4},
		{90, 5},
		{200, 5},
	}
	for _, tt := range tests {
		today := AddWorkingDays(start, tt.workingDay-1)
		assert.Equal(t, tt.workingDay, WorkingDayNumber(start, today))
		assert.Equal(t, tt.want, ScheduledProgress(start, today), "working day %d", tt.workingDay)
	}
}

func TestActualProgress(t *testing.T) {
	t.Run("gap stops progress", func(t *testing.T) {
		plan := newTestPlan(t)
		completeThrough(&plan, 3)
		// reopen one week-1 task: only day 1 stays complete
		plan.Milestones[1].Tasks[0].Status = TaskStatusInProgress
		assert.Equal(t, 1, ActualProgress(&plan))
	})

	t.Run("later milestones do not count without earlier ones", func(t *testing.T) {
		plan := newTestPlan(t)
		for i := 1; i < MilestoneCount; i++ {
			for j := range plan.Milestones[i].Tasks {
				plan.Milestones[i].Tasks[j].Status = TaskStatusCompleted
			}
		}
		assert.Equal(t, 0, ActualProgress(&plan))
	})

	t.Run("empty milestone counts as complete", func(t *testing.T) {
		plan := newTestPlan(t)
		completeThrough(&plan, 1)
		plan.Milestones[1].Tasks = []Task{}
		assert.Equal(t, 2, ActualProgress(&plan))
	})
}

func TestActualProgress_Monotonic(t *testing.T) {
	plan := newTestPlan(t)

	type ref struct{ m, t int }
	var order []ref
	// complete tasks back to front so progress jumps late, then front to back on a second plan
	for i := len(plan.Milestones) - 1; i >= 0; i-- {
		for j := range plan.Milestones[i].Tasks {
			order = append(order, ref{i, j})
		}
	}

	for _, forward := range []bool{false, true} {
		p := newTestPlan(t)
		prev := ActualProgress(&p)
		for k := range order {
			r := order[k]
			if forward {
				r = order[len(order)-1-k]
			}
			p.Milestones[r.m].Tasks[r.t].Status = TaskStatusCompleted
			got := ActualProgress(&p)
			require.GreaterOrEqual(t, got, prev)
			prev = got
		}
		assert.Equal(t, MilestoneCount, prev)
	}
}

func TestDeriveStatus_Counts(t *testing.T) {
	plan := newTestPlan(t)
	completeThrough(&plan, 1)
	total, completed := plan.TaskCount()

	p := DeriveStatus(&plan, MustParseDate("2025-01-07"))
	assert.Equal(t, total, p.TotalTasks)
	assert.Equal(t, completed, p.CompletedTasks)
	assert.InDelta(t, float64(completed)*100/float64(total), p.CompletionPercent, 0.0001)
	assert.Equal(t, MustParseDate("2025-01-07"), p.EvaluatedOn)
}

func TestClocks(t *testing.T) {
	fixed := FixedClock{Date: MustParseDate("2025-01-10")}
	assert.Equal(t, "2025-01-10", fixed.Today().String())

	c := NewSystemClock("not/a_zone")
	assert.Equal(t, time.UTC, c.Location)
	today := c.Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, DateOf(time.Now().UTC()).Year(), today.Year())
}
