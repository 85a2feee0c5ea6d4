package onboarding

import (
	"fmt"
	"time"

	apperrors "onboarding-backend/internal/errors"
)

// TaskStatus is the mutable completion state of a task
type TaskStatus string

const (
	TaskStatusNotStarted TaskStatus = "not_started"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusOverdue    TaskStatus = "overdue"
)

// IsValid checks if the TaskStatus is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusNotStarted, TaskStatusInProgress, TaskStatusCompleted, TaskStatusOverdue:
		return true
	}
	return false
}

// Priority of a task
type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

// IsValid checks if the Priority is valid
func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Assignee is the party responsible for a task
type Assignee string

const (
	AssigneeNewHire Assignee = "new_hire"
	AssigneeManager Assignee = "manager"
	AssigneeBuddy   Assignee = "buddy"
	AssigneeHR      Assignee = "hr"
)

// IsValid checks if the Assignee is valid
func (a Assignee) IsValid() bool {
	switch a {
	case AssigneeNewHire, AssigneeManager, AssigneeBuddy, AssigneeHR:
		return true
	}
	return false
}

// PlanStatus is the informational lifecycle tag of a plan document
type PlanStatus string

const (
	PlanStatusDraft   PlanStatus = "draft"
	PlanStatusUpdated PlanStatus = "updated"
)

// Task is a single onboarding activity
type Task struct {
	ID                 int        `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	DueDate            Date       `json:"due_date"`
	Status             TaskStatus `json:"status"`
	Priority           Priority   `json:"priority"`
	Assignee           Assignee   `json:"assignee"`
	EstimatedHours     float64    `json:"estimated_hours"`
	Tags               []string   `json:"tags"`
	Resources          []string   `json:"resources"`
	Checklist          []string   `json:"checklist"`
	LearningObjectives []string   `json:"learning_objectives"`
	SuccessMetrics     []string   `json:"success_metrics"`
}

// Milestone groups the tasks due inside one checkpoint window
type Milestone struct {
	ID    MilestoneID `json:"id"`
	Label string      `json:"label"`
	Color string      `json:"color"`
	Tasks []Task      `json:"tasks"`
}

// PersonalizedInsights is the role-specific guidance attached to a plan
type PersonalizedInsights struct {
	RoleAnalysis         string   `json:"role_analysis"`
	LearningPath         []string `json:"learning_path"`
	SuccessFactors       []string `json:"success_factors"`
	Challenges           []string `json:"challenges"`
	RecommendedResources []string `json:"recommended_resources"`
}

// CompanyCulture is shared by every plan regardless of role
type CompanyCulture struct {
	Mission     string   `json:"mission"`
	Values      []string `json:"values"`
	Norms       []string `json:"norms"`
	KeyContacts []string `json:"key_contacts"`
}

// Plan is the onboarding plan document persisted once per new hire
type Plan struct {
	Role                 string               `json:"role"`
	RoleKey              string               `json:"role_key"`
	NewHireName          string               `json:"new_hire_name"`
	StartDate            Date                 `json:"start_date"`
	Status               PlanStatus           `json:"status"`
	Source               string               `json:"source,omitempty"`
	GeneratedAt          time.Time            `json:"generated_at"`
	Milestones           []Milestone          `json:"milestones"`
	PersonalizedInsights PersonalizedInsights `json:"personalized_insights"`
	CompanyCulture       CompanyCulture       `json:"company_culture"`
}

// TaskRef locates a task by id, or by exact name for legacy documents
type TaskRef struct {
	ID   int
	Name string
}

func (r TaskRef) String() string {
	if r.ID != 0 {
		return fmt.Sprintf("#%d", r.ID)
	}
	return fmt.Sprintf("%q", r.Name)
}

// Milestone returns the milestone with the given id
func (p *Plan) Milestone(id MilestoneID) (*Milestone, bool) {
	for i := range p.Milestones {
		if p.Milestones[i].ID == id {
			return &p.Milestones[i], true
		}
	}
	return nil, false
}

// Task returns the task matching ref. The id is tried first, then the exact name.
func (m *Milestone) Task(ref TaskRef) (*Task, bool) {
	if ref.ID != 0 {
		for i := range m.Tasks {
			if m.Tasks[i].ID == ref.ID {
				return &m.Tasks[i], true
			}
		}
	}
	if ref.Name != "" {
		for i := range m.Tasks {
			if m.Tasks[i].Name == ref.Name {
				return &m.Tasks[i], true
			}
		}
	}
	return nil, false
}

// FindTask searches every milestone for a task id
func (p *Plan) FindTask(taskID int) (*Task, MilestoneID, bool) {
	for i := range p.Milestones {
		for j := range p.Milestones[i].Tasks {
			if p.Milestones[i].Tasks[j].ID == taskID {
				return &p.Milestones[i].Tasks[j], p.Milestones[i].ID, true
			}
		}
	}
	return nil, "", false
}

// SetTaskStatus overwrites the status of one task in place and marks the plan updated.
// The plan is left untouched on any error.
func (p *Plan) SetTaskStatus(milestoneID MilestoneID, ref TaskRef, status TaskStatus) (*Task, error) {
	if !milestoneID.IsValid() {
		return nil, apperrors.NewValidationError("milestone_id", fmt.Sprintf("unknown milestone %q", milestoneID))
	}
	if !status.IsValid() {
		return nil, apperrors.NewValidationError("status", fmt.Sprintf("unknown task status %q", status))
	}
	if ref.ID == 0 && ref.Name == "" {
		return nil, apperrors.NewValidationError("task_id", "task id or task name is required")
	}

	milestone, ok := p.Milestone(milestoneID)
	if !ok {
		return nil, apperrors.ErrMilestoneNotFound
	}
	task, ok := milestone.Task(ref)
	if !ok {
		return nil, fmt.Errorf("%w: %s in %s", apperrors.ErrTaskNotFound, ref, milestoneID)
	}

	task.Status = status
	p.Status = PlanStatusUpdated
	return task, nil
}

// Validate checks the structural invariants of a plan document: five milestones
// in fixed order, unique task ids and every due date inside its milestone window.
func (p *Plan) Validate() error {
	if p.StartDate.IsZero() {
		return apperrors.NewValidationError("start_date", "start date is required")
	}
	if len(p.Milestones) != MilestoneCount {
		return apperrors.NewValidationError("milestones",
			fmt.Sprintf("expected %d milestones, got %d", MilestoneCount, len(p.Milestones)))
	}

	seen := make(map[int]bool)
	for i, def := range milestoneDefinitions {
		m := p.Milestones[i]
		if m.ID != def.ID {
			return apperrors.NewValidationError("milestones",
				fmt.Sprintf("milestone %d must be %s, got %s", i+1, def.ID, m.ID))
		}
		for _, task := range m.Tasks {
			if task.ID <= 0 {
				return apperrors.NewValidationError("task_id", fmt.Sprintf("task %q has no id", task.Name))
			}
			if seen[task.ID] {
				return apperrors.NewValidationError("task_id", fmt.Sprintf("duplicate task id %d", task.ID))
			}
			seen[task.ID] = true

			got, err := ClassifyDueDate(p.StartDate, task.DueDate)
			if err != nil {
				return err
			}
			if got != m.ID {
				return apperrors.NewValidationError("due_date",
					fmt.Sprintf("task %d due %s belongs to %s, filed under %s", task.ID, task.DueDate, got, m.ID))
			}
		}
	}
	return nil
}

// Clone returns a deep copy so callers can mutate without aliasing a stored document
func (p Plan) Clone() Plan {
	out := p
	out.Milestones = make([]Milestone, len(p.Milestones))
	for i, m := range p.Milestones {
		cm := m
		cm.Tasks = make([]Task, len(m.Tasks))
		for j, t := range m.Tasks {
			ct := t
			ct.Tags = cloneStrings(t.Tags)
			ct.Resources = cloneStrings(t.Resources)
			ct.Checklist = cloneStrings(t.Checklist)
			ct.LearningObjectives = cloneStrings(t.LearningObjectives)
			ct.SuccessMetrics = cloneStrings(t.SuccessMetrics)
			cm.Tasks[j] = ct
		}
		out.Milestones[i] = cm
	}
	out.PersonalizedInsights.LearningPath = cloneStrings(p.PersonalizedInsights.LearningPath)
	out.PersonalizedInsights.SuccessFactors = cloneStrings(p.PersonalizedInsights.SuccessFactors)
	out.PersonalizedInsights.Challenges = cloneStrings(p.PersonalizedInsights.Challenges)
	out.PersonalizedInsights.RecommendedResources = cloneStrings(p.PersonalizedInsights.RecommendedResources)
	out.CompanyCulture.Values = cloneStrings(p.CompanyCulture.Values)
	out.CompanyCulture.Norms = cloneStrings(p.CompanyCulture.Norms)
	out.CompanyCulture.KeyContacts = cloneStrings(p.CompanyCulture.KeyContacts)
	return out
}

// TaskCount returns the total and completed number of tasks
func (p *Plan) TaskCount() (total, completed int) {
	for _, m := range p.Milestones {
		for _, t := range m.Tasks {
			total++
			if t.Status == TaskStatusCompleted {
				completed++
			}
		}
	}
	return total, completed
}

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
