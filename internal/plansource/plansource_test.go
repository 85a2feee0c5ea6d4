package plansource

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/onboarding"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type fakeCompleter struct {
	answer string
	err    error
	calls  int
}

func (f *fakeCompleter) Complete(_ context.Context, _, _ string) (string, error) {
	f.calls++
	return f.answer, f.err
}

type memoryCache struct {
	mu    sync.Mutex
	items map[string]string
}

func (m *memoryCache) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.items[key]
	return v, ok, nil
}

func (m *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.items == nil {
		m.items = map[string]string{}
	}
	m.items[key] = value
	return nil
}

type failingSource struct{ err error }

func (f failingSource) Name() string { return "failing" }
func (f failingSource) Generate(context.Context, Request) (Result, error) {
	return Result{}, f.err
}

func remoteAnswer(t *testing.T) string {
	t.Helper()
	offset := func(n int) *int { return &n }
	answer := remotePlan{
		RoleAnalysis: "Designers here ship weekly.",
		LearningPath: []string{"Design system"},
		Milestones: []remoteMilestone{
			{ID: onboarding.MilestoneDay1, Tasks: []remoteTask{{Name: "Meet the design team", DueOffset: offset(0), Priority: "HIGH"}}},
			// offset 40 is outside week_1 and must fall back to the milestone default
			{ID: onboarding.MilestoneWeek1, Tasks: []remoteTask{{Name: "Audit the design system", DueOffset: offset(40), Assignee: "buddy", RoleSpecific: true}, {Name: "Set up laptop"}}},
			{ID: onboarding.MilestoneDay30, Tasks: []remoteTask{{Name: "Run a usability test"}, {Name: "  "}}},
			{ID: onboarding.MilestoneDay60, Tasks: []remoteTask{{Name: "Lead a design critique", DueOffset: offset(31), RoleSpecific: true}}},
			{ID: onboarding.MilestoneDay90, Tasks: []remoteTask{{Name: "Ship a redesign", Priority: "urgent"}}},
			{ID: "day_120", Tasks: []remoteTask{{Name: "Ignored"}}},
		},
	}
	data, err := json.Marshal(answer)
	require.NoError(t, err)
	return "Here is the plan:\n```json\n" + string(data) + "\n```"
}

type RemoteGeneratorTestSuite struct {
	suite.Suite
	catalog *onboarding.Catalog
	req     Request
}

func (suite *RemoteGeneratorTestSuite) SetupTest() {
	suite.catalog = onboarding.MustDefaultCatalog()
	suite.req = Request{Role: "designer", NewHireName: "Ada", StartDate: onboarding.MustParseDate("2025-01-06")}
}

func (suite *RemoteGeneratorTestSuite) TestGenerate_ParsesAndNormalizes() {
	completer := &fakeCompleter{answer: remoteAnswer(suite.T())}
	gen := NewRemoteGenerator(completer, nil, suite.catalog, RemoteOptions{})

	result, err := gen.Generate(context.Background(), suite.req)
	suite.Require().NoError(err)
	suite.Equal(SourceRemote, result.Source)
	suite.False(result.RoleFallback)

	plan := result.Plan
	suite.Equal("Product Designer", plan.Role)
	suite.NoError(plan.Validate())
	suite.Require().Len(plan.Milestones, onboarding.MilestoneCount)

	first := plan.Milestones[0].Tasks[0]
	suite.Equal(1, first.ID)
	suite.Equal(onboarding.PriorityHigh, first.Priority)
	suite.Equal(onboarding.AssigneeNewHire, first.Assignee)
	suite.Equal(onboarding.TaskStatusNotStarted, first.Status)

	week1 := plan.Milestones[1].Tasks
	suite.Require().Len(week1, 2)
	suite.Equal("Set up laptop", week1[0].Name, "generic tasks come first")
	suite.Equal("2025-01-08", week1[1].DueDate.String())
	suite.Equal(onboarding.AssigneeBuddy, week1[1].Assignee)

	suite.Len(plan.Milestones[2].Tasks, 1, "blank task names are dropped")
	suite.Equal(onboarding.PriorityMedium, plan.Milestones[4].Tasks[0].Priority)
	suite.NotEmpty(plan.CompanyCulture.Values)
}

func (suite *RemoteGeneratorTestSuite) TestGenerate_NumbersRoleTasksFromRoleBase() {
	gen := NewRemoteGenerator(&fakeCompleter{answer: remoteAnswer(suite.T())}, nil, suite.catalog, RemoteOptions{})

	result, err := gen.Generate(context.Background(), suite.req)
	suite.Require().NoError(err)

	ids := map[string]int{}
	for _, m := range result.Plan.Milestones {
		for _, task := range m.Tasks {
			ids[task.Name] = task.ID
		}
	}
	suite.Equal(map[string]int{
		"Meet the design team":    1,
		"Set up laptop":           2,
		"Run a usability test":    3,
		"Ship a redesign":         4,
		"Audit the design system": onboarding.RoleTaskIDBase,
		"Lead a design critique":  onboarding.RoleTaskIDBase + 1,
	}, ids)
}

func (suite *RemoteGeneratorTestSuite) TestGenerate_RejectsTooManyGenericTasks() {
	tasks := make([]remoteTask, onboarding.RoleTaskIDBase)
	for i := range tasks {
		tasks[i] = remoteTask{Name: fmt.Sprintf("Task %d", i)}
	}
	data, err := json.Marshal(remotePlan{Milestones: []remoteMilestone{{ID: onboarding.MilestoneDay90, Tasks: tasks}}})
	suite.Require().NoError(err)

	_, err = NewRemoteGenerator(&fakeCompleter{answer: string(data)}, nil, suite.catalog, RemoteOptions{}).Generate(context.Background(), suite.req)
	suite.True(apperrors.IsValidation(err))
}

func (suite *RemoteGeneratorTestSuite) TestGenerate_UsesCache() {
	completer := &fakeCompleter{answer: remoteAnswer(suite.T())}
	cache := &memoryCache{}
	gen := NewRemoteGenerator(completer, cache, suite.catalog, RemoteOptions{CacheTTL: time.Hour})

	first, err := gen.Generate(context.Background(), suite.req)
	suite.Require().NoError(err)
	second, err := gen.Generate(context.Background(), suite.req)
	suite.Require().NoError(err)

	suite.Equal(1, completer.calls)
	suite.Equal(first.Plan, second.Plan)
}

func (suite *RemoteGeneratorTestSuite) TestGenerate_Errors() {
	ctx := context.Background()

	_, err := NewRemoteGenerator(nil, nil, suite.catalog, RemoteOptions{}).Generate(ctx, suite.req)
	suite.True(apperrors.IsConfiguration(err))

	_, err = NewRemoteGenerator(&fakeCompleter{err: errors.New("boom")}, nil, suite.catalog, RemoteOptions{}).Generate(ctx, suite.req)
	suite.Error(err)

	_, err = NewRemoteGenerator(&fakeCompleter{answer: "no json here"}, nil, suite.catalog, RemoteOptions{}).Generate(ctx, suite.req)
	suite.True(apperrors.IsValidation(err))

	_, err = NewRemoteGenerator(&fakeCompleter{answer: `{"milestones": []}`}, nil, suite.catalog, RemoteOptions{}).Generate(ctx, suite.req)
	suite.ErrorIs(err, apperrors.ErrEmptyRemotePlan)
}

func (suite *RemoteGeneratorTestSuite) TestGenerate_InvalidAnswerIsNotCached() {
	cache := &memoryCache{}
	gen := NewRemoteGenerator(&fakeCompleter{answer: "{}"}, cache, suite.catalog, RemoteOptions{CacheTTL: time.Hour})
	_, err := gen.Generate(context.Background(), suite.req)
	suite.Error(err)
	suite.Empty(cache.items)
}

func TestRemoteGeneratorTestSuite(t *testing.T) {
	suite.Run(t, new(RemoteGeneratorTestSuite))
}

func TestYandexGPTCompleterRequest(t *testing.T) {
	completer := NewYandexGPTCompleter("token", "b1gcatalog", 0.3, 2000)

	data, err := json.Marshal(completer.request("system prompt", "user prompt"))
	require.NoError(t, err)

	var body struct {
		ModelURI          string `json:"modelUri"`
		CompletionOptions struct {
			Stream      bool    `json:"stream"`
			Temperature float64 `json:"temperature"`
			MaxTokens   int     `json:"maxTokens"`
		} `json:"completionOptions"`
		Messages []struct {
			Role string `json:"role"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(data, &body))

	assert.Equal(t, "gpt://b1gcatalog/yandexgpt-lite", body.ModelURI)
	assert.False(t, body.CompletionOptions.Stream)
	assert.InDelta(t, 0.3, body.CompletionOptions.Temperature, 1e-6)
	assert.Equal(t, 2000, body.CompletionOptions.MaxTokens)
	require.Len(t, body.Messages, 2)
	assert.Equal(t, "system", body.Messages[0].Role)
	assert.Equal(t, "system prompt", body.Messages[0].Text)
	assert.Equal(t, "user", body.Messages[1].Role)
	assert.Equal(t, "user prompt", body.Messages[1].Text)
}

func TestDeterministicTemplateGenerator(t *testing.T) {
	gen := NewDeterministicTemplateGenerator(onboarding.NewGenerator(onboarding.MustDefaultCatalog()))
	assert.Equal(t, SourceTemplate, gen.Name())

	result, err := gen.Generate(context.Background(), Request{Role: "astronaut", NewHireName: "Ada", StartDate: onboarding.MustParseDate("2025-01-06")})
	require.NoError(t, err)
	assert.True(t, result.RoleFallback)
	assert.Equal(t, SourceTemplate, result.Source)
	assert.NoError(t, result.Plan.Validate())
}

func TestFallbackSource(t *testing.T) {
	template := NewDeterministicTemplateGenerator(onboarding.NewGenerator(onboarding.MustDefaultCatalog()))
	req := Request{Role: "designer", NewHireName: "Ada", StartDate: onboarding.MustParseDate("2025-01-06")}

	t.Run("primary answers", func(t *testing.T) {
		src := NewFallbackSource(template, failingSource{err: errors.New("unused")})
		result, err := src.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.False(t, result.SourceFallback)
	})

	t.Run("secondary answers when primary fails", func(t *testing.T) {
		src := NewFallbackSource(failingSource{err: apperrors.ErrRemoteGeneratorDisabled}, template)
		assert.Equal(t, "failing", src.Name())
		result, err := src.Generate(context.Background(), req)
		require.NoError(t, err)
		assert.True(t, result.SourceFallback)
		assert.Equal(t, SourceTemplate, result.Source)
	})

	t.Run("both fail", func(t *testing.T) {
		boom := errors.New("boom")
		src := NewFallbackSource(failingSource{err: errors.New("first")}, failingSource{err: boom})
		_, err := src.Generate(context.Background(), req)
		assert.ErrorIs(t, err, boom)
	})
}

func TestFallbackReason(t *testing.T) {
	assert.Equal(t, "disabled", fallbackReason(apperrors.ErrRemoteGeneratorDisabled))
	assert.Equal(t, "timeout", fallbackReason(context.DeadlineExceeded))
	assert.Equal(t, "invalid", fallbackReason(apperrors.ErrEmptyRemotePlan))
	assert.Equal(t, "invalid", fallbackReason(apperrors.NewValidationError("x", "y")))
	assert.Equal(t, "error", fallbackReason(errors.New("boom")))
}

func TestNewSelectsSource(t *testing.T) {
	template := NewDeterministicTemplateGenerator(onboarding.NewGenerator(onboarding.MustDefaultCatalog()))
	remote := NewRemoteGenerator(nil, nil, onboarding.MustDefaultCatalog(), RemoteOptions{})

	assert.Same(t, template, New(SourceTemplate, template, remote))
	assert.Same(t, template, New(SourceRemote, template, nil))
	assert.IsType(t, &FallbackSource{}, New(SourceRemote, template, remote))
}
