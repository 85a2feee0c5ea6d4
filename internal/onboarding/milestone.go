package onboarding

import (
	"fmt"

	apperrors "onboarding-backend/internal/errors"
)

// MilestoneID identifies one of the five fixed onboarding checkpoints
type MilestoneID string

const (
	MilestoneDay1  MilestoneID = "day_1"
	MilestoneWeek1 MilestoneID = "week_1"
	MilestoneDay30 MilestoneID = "day_30"
	MilestoneDay60 MilestoneID = "day_60"
	MilestoneDay90 MilestoneID = "day_90"
)

// MilestoneCount is the number of milestones in every plan
const MilestoneCount = 5

// MilestoneDefinition describes the working-day window a milestone owns
type MilestoneDefinition struct {
	ID    MilestoneID
	Label string
	Color string
	// MinOffset and MaxOffset bound the working-day offset from the start date.
	// MaxOffset < 0 means unbounded.
	MinOffset int
	MaxOffset int
	// Boundary is the working day (1-based) by which the milestone should be reached
	Boundary int
	// DefaultOffset is the due offset used for tasks that carry no explicit one
	DefaultOffset int
}

var milestoneDefinitions = []MilestoneDefinition{
	{ID: MilestoneDay1, Label: "Day 1", Color: "#4CAF50", MinOffset: 0, MaxOffset: 0, Boundary: 1, DefaultOffset: 0},
	{ID: MilestoneWeek1, Label: "Week 1", Color: "#2196F3", MinOffset: 1, MaxOffset: 4, Boundary: 5, DefaultOffset: 2},
	{ID: MilestoneDay30, Label: "Day 30", Color: "#FF9800", MinOffset: 5, MaxOffset: 29, Boundary: 30, DefaultOffset: 15},
	{ID: MilestoneDay60, Label: "Day 60", Color: "#9C27B0", MinOffset: 30, MaxOffset: 59, Boundary: 60, DefaultOffset: 45},
	{ID: MilestoneDay90, Label: "Day 90", Color: "#F44336", MinOffset: 60, MaxOffset: -1, Boundary: 90, DefaultOffset: 75},
}

// Milestones returns the milestone definitions in plan order
func Milestones() []MilestoneDefinition {
	out := make([]MilestoneDefinition, len(milestoneDefinitions))
	copy(out, milestoneDefinitions)
	return out
}

// MilestoneIDs returns the five identifiers in plan order
func MilestoneIDs() []MilestoneID {
	ids := make([]MilestoneID, 0, len(milestoneDefinitions))
	for _, def := range milestoneDefinitions {
		ids = append(ids, def.ID)
	}
	return ids
}

// IsValid checks if the MilestoneID is one of the five known identifiers
func (id MilestoneID) IsValid() bool {
	_, ok := DefinitionOf(id)
	return ok
}

// Index returns the 0-based position of the milestone, or -1 if unknown
func (id MilestoneID) Index() int {
	for i, def := range milestoneDefinitions {
		if def.ID == id {
			return i
		}
	}
	return -1
}

// DefinitionOf looks up the definition for a milestone id
func DefinitionOf(id MilestoneID) (MilestoneDefinition, bool) {
	for _, def := range milestoneDefinitions {
		if def.ID == id {
			return def, true
		}
	}
	return MilestoneDefinition{}, false
}

// Contains reports whether a working-day offset falls inside the milestone window
func (def MilestoneDefinition) Contains(offset int) bool {
	if offset < def.MinOffset {
		return false
	}
	return def.MaxOffset < 0 || offset <= def.MaxOffset
}

// ClassifyOffset maps a working-day offset from the start date to its milestone.
// Every non-negative offset maps to exactly one milestone; day_90 absorbs overflow.
func ClassifyOffset(offset int) (MilestoneID, error) {
	if offset < 0 {
		return "", apperrors.NewValidationError("due_date", fmt.Sprintf("offset %d is before the start date", offset))
	}
	for _, def := range milestoneDefinitions {
		if def.Contains(offset) {
			return def.ID, nil
		}
	}
	// unreachable while the last window is unbounded
	return MilestoneDay90, nil
}

// ClassifyDueDate buckets a task due date relative to the plan start date
func ClassifyDueDate(start, due Date) (MilestoneID, error) {
	if due.Before(start) {
		return "", apperrors.NewValidationError("due_date",
			fmt.Sprintf("due date %s is before start date %s", due, start))
	}
	return ClassifyOffset(WorkingDaysBetween(start, due))
}
