package onboarding

import "strings"

// Generic tasks are numbered from GenericTaskIDBase and role tasks from RoleTaskIDBase
const (
	GenericTaskIDBase = 1
	RoleTaskIDBase    = 100
)

// Generator builds deterministic plans from a role catalog
type Generator struct {
	catalog *Catalog
}

// NewGenerator creates a generator over the given catalog
func NewGenerator(catalog *Catalog) *Generator {
	return &Generator{catalog: catalog}
}

// Catalog exposes the role templates the generator reads from
func (g *Generator) Catalog() *Catalog {
	return g.catalog
}

// Generate produces a plan for the role, start date and new hire name.
// The result depends only on its inputs: GeneratedAt and Source are left for the caller.
// Unknown roles degrade to the default template; Resolution.Fallback reports it.
func (g *Generator) Generate(role string, start Date, newHireName string) (Plan, Resolution) {
	res := g.catalog.Resolve(role)
	r := strings.NewReplacer("{role}", res.RoleName, "{name}", newHireName)

	byMilestone := make(map[MilestoneID][]Task, MilestoneCount)
	nextGeneric := GenericTaskIDBase
	for _, tpl := range g.catalog.GenericTasks {
		byMilestone[tpl.Milestone] = append(byMilestone[tpl.Milestone], buildTask(tpl, nextGeneric, start, r))
		nextGeneric++
	}

	roleTasks := make(map[MilestoneID][]Task, MilestoneCount)
	nextRole := RoleTaskIDBase
	// role ids are assigned in milestone order so they grow along the plan
	for _, def := range milestoneDefinitions {
		for _, tpl := range res.Template.Tasks {
			if tpl.Milestone != def.ID {
				continue
			}
			roleTasks[def.ID] = append(roleTasks[def.ID], buildTask(tpl, nextRole, start, r))
			nextRole++
		}
	}

	plan := Plan{
		Role:        res.RoleName,
		RoleKey:     res.RoleKey,
		NewHireName: newHireName,
		StartDate:   start,
		Status:      PlanStatusDraft,
		Milestones:  make([]Milestone, 0, MilestoneCount),
		PersonalizedInsights: PersonalizedInsights{
			RoleAnalysis:         r.Replace(res.Template.Insights.RoleAnalysis),
			LearningPath:         replaceAll(r, res.Template.Insights.LearningPath),
			SuccessFactors:       replaceAll(r, res.Template.Insights.SuccessFactors),
			Challenges:           replaceAll(r, res.Template.Insights.Challenges),
			RecommendedResources: replaceAll(r, res.Template.Insights.RecommendedResources),
		},
		CompanyCulture: CompanyCulture{
			Mission:     g.catalog.Culture.Mission,
			Values:      cloneStrings(g.catalog.Culture.Values),
			Norms:       cloneStrings(g.catalog.Culture.Norms),
			KeyContacts: cloneStrings(g.catalog.Culture.KeyContacts),
		},
	}

	for _, def := range milestoneDefinitions {
		tasks := append(byMilestone[def.ID], roleTasks[def.ID]...)
		if tasks == nil {
			tasks = []Task{}
		}
		plan.Milestones = append(plan.Milestones, Milestone{
			ID:    def.ID,
			Label: def.Label,
			Color: def.Color,
			Tasks: tasks,
		})
	}

	return plan, res
}

func buildTask(tpl TaskTemplate, id int, start Date, r *strings.Replacer) Task {
	priority := tpl.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	assignee := tpl.Assignee
	if assignee == "" {
		assignee = AssigneeNewHire
	}
	return Task{
		ID:                 id,
		Name:               r.Replace(tpl.Name),
		Description:        r.Replace(tpl.Description),
		DueDate:            AddWorkingDays(start, tpl.Offset()),
		Status:             TaskStatusNotStarted,
		Priority:           priority,
		Assignee:           assignee,
		EstimatedHours:     tpl.EstimatedHours,
		Tags:               replaceAll(r, tpl.Tags),
		Resources:          replaceAll(r, tpl.Resources),
		Checklist:          replaceAll(r, tpl.Checklist),
		LearningObjectives: replaceAll(r, tpl.LearningObjectives),
		SuccessMetrics:     replaceAll(r, tpl.SuccessMetrics),
	}
}

func replaceAll(r *strings.Replacer, in []string) []string {
	if in == nil {
		return []string{}
	}
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = r.Replace(s)
	}
	return out
}
