package onboarding

import (
	"errors"
	"testing"

	apperrors "onboarding-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetTaskStatus(t *testing.T) {
	t.Run("by id", func(t *testing.T) {
		plan := newTestPlan(t)
		task, err := plan.SetTaskStatus(MilestoneDay1, TaskRef{ID: 1}, TaskStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, TaskStatusCompleted, task.Status)
		assert.Equal(t, PlanStatusUpdated, plan.Status)

		found, milestone, ok := plan.FindTask(1)
		require.True(t, ok)
		assert.Equal(t, MilestoneDay1, milestone)
		assert.Equal(t, TaskStatusCompleted, found.Status)
	})

	t.Run("by name for documents without ids", func(t *testing.T) {
		plan := newTestPlan(t)
		task, err := plan.SetTaskStatus(MilestoneDay1, TaskRef{Name: "Meet your onboarding buddy"}, TaskStatusInProgress)
		require.NoError(t, err)
		assert.Equal(t, "Meet your onboarding buddy", task.Name)
		assert.Equal(t, TaskStatusInProgress, task.Status)
	})

	t.Run("id wins over name", func(t *testing.T) {
		plan := newTestPlan(t)
		task, err := plan.SetTaskStatus(MilestoneDay1, TaskRef{ID: 2, Name: "Meet your onboarding buddy"}, TaskStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, 2, task.ID)
	})

	t.Run("task in another milestone is not found", func(t *testing.T) {
		plan := newTestPlan(t)
		before := plan.Clone()
		_, err := plan.SetTaskStatus(MilestoneWeek1, TaskRef{ID: 1}, TaskStatusCompleted)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrTaskNotFound))
		assert.Equal(t, before, plan, "plan must not change on failure")
	})

	t.Run("missing milestone", func(t *testing.T) {
		plan := newTestPlan(t)
		plan.Milestones = plan.Milestones[:2]
		_, err := plan.SetTaskStatus(MilestoneDay90, TaskRef{ID: 1}, TaskStatusCompleted)
		assert.ErrorIs(t, err, apperrors.ErrMilestoneNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		plan := newTestPlan(t)
		_, err := plan.SetTaskStatus("day_120", TaskRef{ID: 1}, TaskStatusCompleted)
		assert.True(t, apperrors.IsValidation(err))

		_, err = plan.SetTaskStatus(MilestoneDay1, TaskRef{ID: 1}, "done")
		assert.True(t, apperrors.IsValidation(err))

		_, err = plan.SetTaskStatus(MilestoneDay1, TaskRef{}, TaskStatusCompleted)
		assert.True(t, apperrors.IsValidation(err))
		assert.Equal(t, PlanStatusDraft, plan.Status)
	})
}

func TestPlanValidate(t *testing.T) {
	t.Run("generated plan is valid", func(t *testing.T) {
		plan := newTestPlan(t)
		assert.NoError(t, plan.Validate())
	})

	t.Run("misfiled task", func(t *testing.T) {
		plan := newTestPlan(t)
		task := plan.Milestones[0].Tasks[0]
		plan.Milestones[2].Tasks = append(plan.Milestones[2].Tasks, Task{ID: 500, Name: "Misfiled", DueDate: task.DueDate})
		err := plan.Validate()
		require.Error(t, err)
		assert.True(t, apperrors.IsValidation(err))
	})

	t.Run("start-day task outside day 1", func(t *testing.T) {
		plan := newTestPlan(t)
		plan.Milestones[1].Tasks[0].DueDate = plan.StartDate
		assert.True(t, apperrors.IsValidation(plan.Validate()))
	})

	t.Run("due before start", func(t *testing.T) {
		plan := newTestPlan(t)
		plan.Milestones[0].Tasks[0].DueDate = plan.StartDate.AddDays(-3)
		assert.True(t, apperrors.IsValidation(plan.Validate()))
	})

	t.Run("duplicate ids", func(t *testing.T) {
		plan := newTestPlan(t)
		plan.Milestones[0].Tasks[1].ID = plan.Milestones[0].Tasks[0].ID
		assert.True(t, apperrors.IsValidation(plan.Validate()))
	})

	t.Run("wrong milestone order", func(t *testing.T) {
		plan := newTestPlan(t)
		plan.Milestones[0], plan.Milestones[1] = plan.Milestones[1], plan.Milestones[0]
		assert.True(t, apperrors.IsValidation(plan.Validate()))
	})

	t.Run("missing milestones", func(t *testing.T) {
		plan := newTestPlan(t)
		plan.Milestones = plan.Milestones[:4]
		assert.True(t, apperrors.IsValidation(plan.Validate()))
	})

	t.Run("missing start date", func(t *testing.T) {
		plan := newTestPlan(t)
		plan.StartDate = Date{}
		assert.True(t, apperrors.IsValidation(plan.Validate()))
	})
}

func TestPlanClone(t *testing.T) {
	plan := newTestPlan(t)
	clone := plan.Clone()
	assert.Equal(t, plan, clone)

	clone.Milestones[0].Tasks[0].Status = TaskStatusCompleted
	clone.Milestones[0].Tasks[0].Tags = append(clone.Milestones[0].Tasks[0].Tags[:0], "changed")
	clone.CompanyCulture.Values[0] = "changed"

	assert.Equal(t, TaskStatusNotStarted, plan.Milestones[0].Tasks[0].Status)
	assert.NotEqual(t, "changed", plan.CompanyCulture.Values[0])
	if len(plan.Milestones[0].Tasks[0].Tags) > 0 {
		assert.NotEqual(t, "changed", plan.Milestones[0].Tasks[0].Tags[0])
	}
}

func TestTaskRefString(t *testing.T) {
	assert.Equal(t, "#7", TaskRef{ID: 7}.String())
	assert.Equal(t, `"Kickoff"`, TaskRef{Name: "Kickoff"}.String())
}
