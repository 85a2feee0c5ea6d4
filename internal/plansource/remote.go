package plansource

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	apperrors "onboarding-backend/internal/errors"
	"onboarding-backend/internal/logger"
	"onboarding-backend/internal/metrics"
	"onboarding-backend/internal/onboarding"

	yandexgpt "github.com/sheeiavellie/go-yandexgpt"
)

// Completer sends a system prompt and a user message to a language model
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// CompletionCache stores raw model answers by prompt hash
type CompletionCache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
}

// YandexGPTCompleter calls the YandexGPT completion API
type YandexGPTCompleter struct {
	client      *yandexgpt.YandexGPTClient
	catalogID   string
	temperature float64
	maxTokens   int
}

// NewYandexGPTCompleter creates a completer authenticated with an IAM token
func NewYandexGPTCompleter(iamToken, catalogID string, temperature float64, maxTokens int) *YandexGPTCompleter {
	return &YandexGPTCompleter{
		client:      yandexgpt.NewYandexGPTClientWithIAMToken(iamToken),
		catalogID:   catalogID,
		temperature: temperature,
		maxTokens:   maxTokens,
	}
}

// Complete sends one non-streaming completion request
func (c *YandexGPTCompleter) Complete(ctx context.Context, system, user string) (string, error) {
	response, err := c.client.CreateRequest(ctx, c.request(system, user))
	if err != nil {
		return "", fmt.Errorf("yandexgpt request failed: %w", err)
	}
	if len(response.Result.Alternatives) == 0 {
		return "", apperrors.ErrEmptyRemotePlan
	}
	return response.Result.Alternatives[0].Message.Text, nil
}

func (c *YandexGPTCompleter) request(system, user string) yandexgpt.YandexGPTRequest {
	return yandexgpt.YandexGPTRequest{
		ModelURI: yandexgpt.MakeModelURI(c.catalogID, yandexgpt.YandexGPTModelLite),
		CompletionOptions: yandexgpt.YandexGPTCompletionOptions{
			Stream:      false,
			Temperature: float32(c.temperature),
			MaxTokens:   c.maxTokens,
		},
		Messages: []yandexgpt.YandexGPTMessage{
			{
				Role: yandexgpt.YandexGPTMessageRoleSystem,
				Text: system,
			},
			{
				Role: yandexgpt.YandexGPTMessageRoleUser,
				Text: user,
			},
		},
	}
}

// RemoteOptions tunes the remote generator
type RemoteOptions struct {
	Timeout  time.Duration
	CacheTTL time.Duration
}

// RemoteGenerator asks a language model for the task list of a plan.
// Milestone labels, company culture and the role display name still come from
// the catalog, and every due date is re-derived on the working-day calendar.
type RemoteGenerator struct {
	completer Completer
	cache     CompletionCache
	catalog   *onboarding.Catalog
	opts      RemoteOptions
	logger    *logger.Logger
}

var _ PlanSource = (*RemoteGenerator)(nil)

// NewRemoteGenerator creates a remote generator. cache may be nil.
func NewRemoteGenerator(completer Completer, cache CompletionCache, catalog *onboarding.Catalog, opts RemoteOptions) *RemoteGenerator {
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	return &RemoteGenerator{
		completer: completer,
		cache:     cache,
		catalog:   catalog,
		opts:      opts,
		logger:    logger.New().Component("plansource.remote"),
	}
}

// Name returns "remote"
func (g *RemoteGenerator) Name() string {
	return SourceRemote
}

// Generate requests a plan from the model and validates it before returning
func (g *RemoteGenerator) Generate(ctx context.Context, req Request) (Result, error) {
	if g.completer == nil {
		return Result{}, apperrors.ErrRemoteGeneratorDisabled
	}

	res := g.catalog.Resolve(req.Role)
	userPrompt := buildUserPrompt(res.RoleName, req)
	key := cacheKey(userPrompt)

	started := time.Now()
	text, cached := g.cached(ctx, key)
	if !cached {
		callCtx, cancel := context.WithTimeout(ctx, g.opts.Timeout)
		defer cancel()

		var err error
		text, err = g.completer.Complete(callCtx, systemPrompt, userPrompt)
		if err != nil {
			metrics.RecordRemoteGeneration("error", time.Since(started))
			return Result{}, fmt.Errorf("remote plan generation failed: %w", err)
		}
	}

	plan, err := parseRemotePlan(text, res, req, g.catalog)
	if err != nil {
		metrics.RecordRemoteGeneration("invalid", time.Since(started))
		return Result{}, err
	}

	if cached {
		metrics.RecordRemoteGeneration("cached", time.Since(started))
	} else {
		metrics.RecordRemoteGeneration("success", time.Since(started))
		g.store(ctx, key, text)
	}

	return Result{
		Plan:         plan,
		Source:       SourceRemote,
		RoleFallback: res.Fallback,
	}, nil
}

func (g *RemoteGenerator) cached(ctx context.Context, key string) (string, bool) {
	if g.cache == nil {
		return "", false
	}
	text, ok, err := g.cache.Get(ctx, key)
	if err != nil {
		g.logger.WithError(err).Warn("Completion cache read failed")
		return "", false
	}
	return text, ok
}

func (g *RemoteGenerator) store(ctx context.Context, key, text string) {
	if g.cache == nil || g.opts.CacheTTL <= 0 {
		return
	}
	if err := g.cache.Set(ctx, key, text, g.opts.CacheTTL); err != nil {
		g.logger.WithError(err).Warn("Completion cache write failed")
	}
}

const systemPrompt = `You design 90-day onboarding plans for new employees.
Answer with a single JSON object and nothing else, using this shape:
{"role_analysis": string,
 "learning_path": [string], "success_factors": [string], "challenges": [string], "recommended_resources": [string],
 "milestones": [{"id": "day_1"|"week_1"|"day_30"|"day_60"|"day_90",
   "tasks": [{"name": string, "description": string, "due_offset": integer working days after the start date,
              "priority": "low"|"medium"|"high"|"critical", "assignee": "new_hire"|"manager"|"buddy"|"hr",
              "estimated_hours": number, "tags": [string], "resources": [string], "checklist": [string],
              "learning_objectives": [string], "success_metrics": [string], "role_specific": boolean}]}]}
Offsets: day_1 is 0, week_1 is 1 to 4, day_30 is 5 to 29, day_60 is 30 to 59, day_90 is 60 or more.
Give every milestone between two and five tasks.
Set role_specific to true for tasks that only make sense for this role and false for company-wide onboarding.`

func buildUserPrompt(roleName string, req Request) string {
	return fmt.Sprintf("Role: %s\nNew hire: %s\nStart date: %s (%s)",
		roleName, req.NewHireName, req.StartDate, req.StartDate.Weekday())
}

func cacheKey(prompt string) string {
	sum := sha256.Sum256([]byte(systemPrompt + "\n" + prompt))
	return "plansource:remote:" + hex.EncodeToString(sum[:])
}

type remoteTask struct {
	Name               string   `json:"name"`
	Description        string   `json:"description"`
	DueOffset          *int     `json:"due_offset"`
	Priority           string   `json:"priority"`
	Assignee           string   `json:"assignee"`
	EstimatedHours     float64  `json:"estimated_hours"`
	Tags               []string `json:"tags"`
	Resources          []string `json:"resources"`
	Checklist          []string `json:"checklist"`
	LearningObjectives []string `json:"learning_objectives"`
	SuccessMetrics     []string `json:"success_metrics"`
	RoleSpecific       bool     `json:"role_specific"`
}

type remoteMilestone struct {
	ID    onboarding.MilestoneID `json:"id"`
	Tasks []remoteTask           `json:"tasks"`
}

type remotePlan struct {
	RoleAnalysis         string            `json:"role_analysis"`
	LearningPath         []string          `json:"learning_path"`
	SuccessFactors       []string          `json:"success_factors"`
	Challenges           []string          `json:"challenges"`
	RecommendedResources []string          `json:"recommended_resources"`
	Milestones           []remoteMilestone `json:"milestones"`
}

// parseRemotePlan turns a model answer into a validated plan
func parseRemotePlan(text string, res onboarding.Resolution, req Request, catalog *onboarding.Catalog) (onboarding.Plan, error) {
	var rp remotePlan
	if err := json.Unmarshal([]byte(extractJSON(text)), &rp); err != nil {
		return onboarding.Plan{}, apperrors.NewValidationError("remote_plan", fmt.Sprintf("answer is not valid JSON: %v", err))
	}

	byMilestone := make(map[onboarding.MilestoneID][]remoteTask, onboarding.MilestoneCount)
	for _, m := range rp.Milestones {
		if !m.ID.IsValid() {
			continue
		}
		byMilestone[m.ID] = append(byMilestone[m.ID], m.Tasks...)
	}

	plan := onboarding.Plan{
		Role:        res.RoleName,
		RoleKey:     res.RoleKey,
		NewHireName: req.NewHireName,
		StartDate:   req.StartDate,
		Status:      onboarding.PlanStatusDraft,
		Milestones:  make([]onboarding.Milestone, 0, onboarding.MilestoneCount),
		PersonalizedInsights: onboarding.PersonalizedInsights{
			RoleAnalysis:         rp.RoleAnalysis,
			LearningPath:         nonNil(rp.LearningPath),
			SuccessFactors:       nonNil(rp.SuccessFactors),
			Challenges:           nonNil(rp.Challenges),
			RecommendedResources: nonNil(rp.RecommendedResources),
		},
		CompanyCulture: onboarding.CompanyCulture{
			Mission:     catalog.Culture.Mission,
			Values:      nonNil(catalog.Culture.Values),
			Norms:       nonNil(catalog.Culture.Norms),
			KeyContacts: nonNil(catalog.Culture.KeyContacts),
		},
	}

	nextGeneric, nextRole := onboarding.GenericTaskIDBase, onboarding.RoleTaskIDBase
	for _, def := range onboarding.Milestones() {
		var generic, role []onboarding.Task
		for _, rt := range byMilestone[def.ID] {
			if strings.TrimSpace(rt.Name) == "" {
				continue
			}
			task := onboarding.Task{
				Name:               strings.TrimSpace(rt.Name),
				Description:        rt.Description,
				DueDate:            onboarding.AddWorkingDays(req.StartDate, offsetFor(def, rt.DueOffset)),
				Status:             onboarding.TaskStatusNotStarted,
				Priority:           priorityOf(rt.Priority),
				Assignee:           assigneeOf(rt.Assignee),
				EstimatedHours:     rt.EstimatedHours,
				Tags:               nonNil(rt.Tags),
				Resources:          nonNil(rt.Resources),
				Checklist:          nonNil(rt.Checklist),
				LearningObjectives: nonNil(rt.LearningObjectives),
				SuccessMetrics:     nonNil(rt.SuccessMetrics),
			}
			if rt.RoleSpecific {
				task.ID = nextRole
				nextRole++
				role = append(role, task)
				continue
			}
			if nextGeneric >= onboarding.RoleTaskIDBase {
				return onboarding.Plan{}, apperrors.NewValidationError("remote_plan",
					fmt.Sprintf("too many generic tasks (ids must stay below %d)", onboarding.RoleTaskIDBase))
			}
			task.ID = nextGeneric
			nextGeneric++
			generic = append(generic, task)
		}
		// generic tasks lead each milestone, as in template plans
		tasks := append(make([]onboarding.Task, 0, len(generic)+len(role)), generic...)
		plan.Milestones = append(plan.Milestones, onboarding.Milestone{
			ID:    def.ID,
			Label: def.Label,
			Color: def.Color,
			Tasks: append(tasks, role...),
		})
	}

	if nextGeneric == onboarding.GenericTaskIDBase && nextRole == onboarding.RoleTaskIDBase {
		return onboarding.Plan{}, apperrors.ErrEmptyRemotePlan
	}
	if err := plan.Validate(); err != nil {
		return onboarding.Plan{}, fmt.Errorf("remote plan rejected: %w", err)
	}
	return plan, nil
}

// offsetFor keeps the model's offset only when it lands in the milestone it was filed under
func offsetFor(def onboarding.MilestoneDefinition, offset *int) int {
	if offset != nil && def.Contains(*offset) {
		return *offset
	}
	return def.DefaultOffset
}

func priorityOf(s string) onboarding.Priority {
	p := onboarding.Priority(strings.ToLower(strings.TrimSpace(s)))
	if p.IsValid() {
		return p
	}
	return onboarding.PriorityMedium
}

func assigneeOf(s string) onboarding.Assignee {
	a := onboarding.Assignee(strings.ToLower(strings.TrimSpace(s)))
	if a.IsValid() {
		return a
	}
	return onboarding.AssigneeNewHire
}

// extractJSON strips markdown fences and any prose around the outermost object
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return text
	}
	return text[start : end+1]
}

func nonNil(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
