package onboarding

import "time"

// OnboardingStatus is the label derived from scheduled versus actual progress
type OnboardingStatus string

const (
	StatusNotStarted OnboardingStatus = "not_started"
	StatusInProgress OnboardingStatus = "in_progress"
	StatusCompleted  OnboardingStatus = "completed"
	StatusOverdue    OnboardingStatus = "overdue"
)

// IsValid checks if the OnboardingStatus is valid
func (s OnboardingStatus) IsValid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted, StatusOverdue:
		return true
	}
	return false
}

// Progress is the derived view of a plan at a given date. Never persisted.
type Progress struct {
	ActualProgress    int              `json:"actual_progress"`
	ScheduledProgress int              `json:"scheduled_progress"`
	Status            OnboardingStatus `json:"status"`
	CurrentMilestone  MilestoneID      `json:"current_milestone"`
	WorkingDay        int              `json:"working_day"`
	CompletedTasks    int              `json:"completed_tasks"`
	TotalTasks        int              `json:"total_tasks"`
	CompletionPercent float64          `json:"completion_percent"`
	EvaluatedOn       Date             `json:"evaluated_on"`
}

// WorkingDayNumber is the 1-based working day of today within the plan, or 0 before the start date
func WorkingDayNumber(start, today Date) int {
	if today.Before(start) {
		return 0
	}
	return WorkingDaysBetween(start, today) + 1
}

// ScheduledProgress counts milestones whose boundary day has been reached by today
func ScheduledProgress(start, today Date) int {
	day := WorkingDayNumber(start, today)
	count := 0
	for _, def := range milestoneDefinitions {
		if day >= def.Boundary {
			count++
		}
	}
	return count
}

// ActualProgress is the 1-based index of the furthest milestone for which it and
// every earlier milestone have all tasks completed. An empty milestone counts as complete.
func ActualProgress(plan *Plan) int {
	progress := 0
	for _, m := range plan.Milestones {
		for _, t := range m.Tasks {
			if t.Status != TaskStatusCompleted {
				return progress
			}
		}
		progress++
	}
	return progress
}

// DeriveStatus compares actual against scheduled progress. It is pure in (plan, today).
func DeriveStatus(plan *Plan, today Date) Progress {
	actual := ActualProgress(plan)
	scheduled := ScheduledProgress(plan.StartDate, today)
	total, completed := plan.TaskCount()

	var status OnboardingStatus
	switch {
	case scheduled == 0 && actual == 0:
		status = StatusNotStarted
	case actual >= MilestoneCount:
		status = StatusCompleted
	case actual < scheduled:
		status = StatusOverdue
	default:
		status = StatusInProgress
	}

	current := MilestoneDay90
	if actual < MilestoneCount {
		current = milestoneDefinitions[actual].ID
	}

	percent := 0.0
	if total > 0 {
		percent = float64(completed) * 100 / float64(total)
	}

	return Progress{
		ActualProgress:    actual,
		ScheduledProgress: scheduled,
		Status:            status,
		CurrentMilestone:  current,
		WorkingDay:        WorkingDayNumber(plan.StartDate, today),
		CompletedTasks:    completed,
		TotalTasks:        total,
		CompletionPercent: percent,
		EvaluatedOn:       today,
	}
}

// Clock supplies the current date to status derivation
type Clock interface {
	Today() Date
}

// SystemClock reads the wall clock in a fixed location
type SystemClock struct {
	Location *time.Location
}

// NewSystemClock returns a clock for the named IANA zone, falling back to UTC
func NewSystemClock(zone string) SystemClock {
	loc, err := time.LoadLocation(zone)
	if err != nil || zone == "" {
		loc = time.UTC
	}
	return SystemClock{Location: loc}
}

// Today returns the current calendar date in the clock's location
func (c SystemClock) Today() Date {
	loc := c.Location
	if loc == nil {
		loc = time.UTC
	}
	return DateOf(time.Now().In(loc))
}

// FixedClock always reports the same date
type FixedClock struct {
	Date Date
}

// Today returns the fixed date
func (c FixedClock) Today() Date {
	return c.Date
}
