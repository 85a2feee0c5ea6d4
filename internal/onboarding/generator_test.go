package onboarding

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type GeneratorTestSuite struct {
	suite.Suite
	catalog   *Catalog
	generator *Generator
	start     Date
}

func (suite *GeneratorTestSuite) SetupTest() {
	catalog, err := DefaultCatalog()
	suite.Require().NoError(err)
	suite.catalog = catalog
	suite.generator = NewGenerator(catalog)
	suite.start = MustParseDate("2025-01-06")
}

func (suite *GeneratorTestSuite) TestGenerate_FiveMilestonesInOrder() {
	plan, _ := suite.generator.Generate("software_engineer", suite.start, "Ada")

	suite.Require().Len(plan.Milestones, MilestoneCount)
	for i, id := range MilestoneIDs() {
		suite.Equal(id, plan.Milestones[i].ID)
		suite.NotEmpty(plan.Milestones[i].Label)
		suite.NotEmpty(plan.Milestones[i].Color)
		suite.NotEmpty(plan.Milestones[i].Tasks)
	}
	suite.Equal(PlanStatusDraft, plan.Status)
	suite.True(plan.GeneratedAt.IsZero(), "generated_at is stamped by the caller")
	suite.NoError(plan.Validate())
}

func (suite *GeneratorTestSuite) TestGenerate_SelfConsistentForEveryRoleAndWeekday() {
	roles := append(suite.catalog.RoleKeys(), "underwater_basket_weaver", "")
	for i := 0; i < 7; i++ {
		start := suite.start.AddDays(i)
		for _, role := range roles {
			plan, _ := suite.generator.Generate(role, start, "Ada")
			for _, m := range plan.Milestones {
				for _, task := range m.Tasks {
					got, err := ClassifyDueDate(start, task.DueDate)
					suite.Require().NoError(err)
					suite.Equal(m.ID, got, "role %q start %s task %d %q", role, start, task.ID, task.Name)
				}
			}
			suite.NoError(plan.Validate(), "role %q start %s", role, start)
		}
	}
}

func (suite *GeneratorTestSuite) TestGenerate_Pure() {
	a, _ := suite.generator.Generate("designer", MustParseDate("2025-01-06"), "Ada")
	b, _ := suite.generator.Generate("designer", MustParseDate("2025-01-06"), "Ada")
	suite.Equal(a, b)

	ja, err := json.Marshal(a)
	suite.Require().NoError(err)
	jb, err := json.Marshal(b)
	suite.Require().NoError(err)
	suite.JSONEq(string(ja), string(jb))
}

func (suite *GeneratorTestSuite) TestGenerate_TaskIDs() {
	plan, _ := suite.generator.Generate("product_manager", suite.start, "Ada")

	lastGeneric, lastRole := 0, RoleTaskIDBase-1
	seen := map[int]bool{}
	for _, m := range plan.Milestones {
		for _, task := range m.Tasks {
			suite.False(seen[task.ID], "duplicate id %d", task.ID)
			seen[task.ID] = true
			if task.ID >= RoleTaskIDBase {
				suite.Greater(task.ID, lastRole)
				lastRole = task.ID
			} else {
				suite.Greater(task.ID, lastGeneric)
				lastGeneric = task.ID
			}
		}
	}
	suite.Equal(len(suite.catalog.GenericTasks), lastGeneric)
	role, ok := suite.catalog.Role("product_manager")
	suite.Require().True(ok)
	suite.Equal(RoleTaskIDBase+len(role.Tasks)-1, lastRole)
}

func (suite *GeneratorTestSuite) TestGenerate_InterpolatesRoleAndName() {
	plan, res := suite.generator.Generate("Designer", suite.start, "Ada")
	suite.False(res.Fallback)
	suite.Equal("designer", plan.RoleKey)
	suite.Equal("Product Designer", plan.Role)

	week1, ok := plan.Milestone(MilestoneWeek1)
	suite.Require().True(ok)
	found := false
	for _, task := range week1.Tasks {
		if task.Name == "Complete Product Designer role orientation" {
			found = true
		}
		suite.NotContains(task.Name, "{role}")
		suite.NotContains(task.Description, "{name}")
	}
	suite.True(found)
	suite.Contains(plan.PersonalizedInsights.RoleAnalysis, "Ada")
	suite.Contains(plan.PersonalizedInsights.RoleAnalysis, "Product Designer")
	suite.NotEmpty(plan.CompanyCulture.Values)
}

func (suite *GeneratorTestSuite) TestGenerate_AliasResolution() {
	for _, alias := range []string{"SWE", "  Software Engineer ", "software-engineer", "Developer"} {
		plan, res := suite.generator.Generate(alias, suite.start, "Ada")
		suite.False(res.Fallback, alias)
		suite.Equal("software_engineer", plan.RoleKey, alias)
	}
}

func (suite *GeneratorTestSuite) TestGenerate_UnknownRoleFallsBack() {
	fallback, res := suite.generator.Generate("underwater_basket_weaver", suite.start, "Ada")
	def, _ := suite.generator.Generate(suite.catalog.DefaultRole, suite.start, "Ada")

	suite.True(res.Fallback)
	suite.Equal("underwater_basket_weaver", fallback.RoleKey)
	suite.Equal("Underwater Basket Weaver", fallback.Role)

	suite.Require().Len(fallback.Milestones, len(def.Milestones))
	for i := range def.Milestones {
		suite.Require().Len(fallback.Milestones[i].Tasks, len(def.Milestones[i].Tasks))
		for j := range def.Milestones[i].Tasks {
			got := fallback.Milestones[i].Tasks[j]
			want := def.Milestones[i].Tasks[j]
			suite.Equal(want.ID, got.ID)
			suite.Equal(want.DueDate, got.DueDate)
			suite.Equal(strings.ReplaceAll(want.Name, "Software Engineer", "Underwater Basket Weaver"), got.Name)
		}
	}
}

func (suite *GeneratorTestSuite) TestGenerate_EmptyRoleUsesDefaultName() {
	plan, res := suite.generator.Generate("   ", suite.start, "Ada")
	suite.True(res.Fallback)
	suite.Equal("Software Engineer", plan.Role)
}

func TestGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(GeneratorTestSuite))
}

func TestGenerate_GoldenSnippet(t *testing.T) {
	g := NewGenerator(MustDefaultCatalog())
	plan, _ := g.Generate("designer", MustParseDate("2025-01-06"), "Ada")

	day1, ok := plan.Milestone(MilestoneDay1)
	require.True(t, ok)
	require.NotEmpty(t, day1.Tasks)
	first := day1.Tasks[0]
	assert.Equal(t, 1, first.ID)
	assert.Equal(t, "Welcome session and office tour", first.Name)
	assert.Equal(t, "2025-01-06", first.DueDate.String())
	assert.Equal(t, TaskStatusNotStarted, first.Status)
	assert.Equal(t, AssigneeHR, first.Assignee)

	day90, ok := plan.Milestone(MilestoneDay90)
	require.True(t, ok)
	last := day90.Tasks[len(day90.Tasks)-1]
	assert.Equal(t, 104, last.ID)
	assert.Equal(t, "Ship a design to production", last.Name)
	assert.Equal(t, "2025-04-21", last.DueDate.String())
}
