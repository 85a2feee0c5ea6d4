package onboarding

import (
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed roles.yaml
var builtinCatalog []byte

// TaskTemplate is a task blueprint. Text fields may contain {role} and {name}.
type TaskTemplate struct {
	Milestone          MilestoneID `yaml:"milestone"`
	DueOffset          *int        `yaml:"due_offset"`
	Name               string      `yaml:"name"`
	Description        string      `yaml:"description"`
	Priority           Priority    `yaml:"priority"`
	Assignee           Assignee    `yaml:"assignee"`
	EstimatedHours     float64     `yaml:"estimated_hours"`
	Tags               []string    `yaml:"tags"`
	Resources          []string    `yaml:"resources"`
	Checklist          []string    `yaml:"checklist"`
	LearningObjectives []string    `yaml:"learning_objectives"`
	SuccessMetrics     []string    `yaml:"success_metrics"`
}

// Offset returns the working-day due offset, defaulting to the milestone's
func (t TaskTemplate) Offset() int {
	if t.DueOffset != nil {
		return *t.DueOffset
	}
	def, _ := DefinitionOf(t.Milestone)
	return def.DefaultOffset
}

// InsightsTemplate holds the role guidance attached to a plan
type InsightsTemplate struct {
	RoleAnalysis         string   `yaml:"role_analysis"`
	LearningPath         []string `yaml:"learning_path"`
	SuccessFactors       []string `yaml:"success_factors"`
	Challenges           []string `yaml:"challenges"`
	RecommendedResources []string `yaml:"recommended_resources"`
}

// RoleTemplate is everything role-specific in a plan
type RoleTemplate struct {
	Key         string           `yaml:"key"`
	DisplayName string           `yaml:"display_name"`
	Aliases     []string         `yaml:"aliases"`
	Insights    InsightsTemplate `yaml:"insights"`
	Tasks       []TaskTemplate   `yaml:"tasks"`
}

type cultureTemplate struct {
	Mission     string   `yaml:"mission"`
	Values      []string `yaml:"values"`
	Norms       []string `yaml:"norms"`
	KeyContacts []string `yaml:"key_contacts"`
}

// Catalog is the role template source used by the generator
type Catalog struct {
	DefaultRole  string          `yaml:"default_role"`
	Culture      cultureTemplate `yaml:"culture"`
	GenericTasks []TaskTemplate  `yaml:"generic_tasks"`
	Roles        []RoleTemplate  `yaml:"roles"`

	index map[string]int
}

// Resolution is the outcome of matching a free-text role against the catalog
type Resolution struct {
	Template RoleTemplate
	// RoleKey is the normalized input role
	RoleKey string
	// RoleName is what {role} expands to
	RoleName string
	// Fallback is set when the default template stood in for an unknown role
	Fallback bool
}

// DefaultCatalog parses the built-in templates
func DefaultCatalog() (*Catalog, error) {
	return ParseCatalog(builtinCatalog)
}

// MustDefaultCatalog is DefaultCatalog for wiring code; the embedded file is covered by tests
func MustDefaultCatalog() *Catalog {
	c, err := DefaultCatalog()
	if err != nil {
		panic(fmt.Sprintf("built-in role catalog is invalid: %v", err))
	}
	return c
}

// LoadCatalogFile reads a catalog from a YAML file on disk
func LoadCatalogFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open role templates %s: %w", path, err)
	}
	defer f.Close()
	return LoadCatalog(f)
}

// LoadCatalog reads a catalog from any reader
func LoadCatalog(r io.Reader) (*Catalog, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read role templates: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse role templates: %w", err)
	}
	if err := c.build(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Catalog) build() error {
	if len(c.Roles) == 0 {
		return fmt.Errorf("role catalog has no roles")
	}
	c.index = make(map[string]int)
	for i := range c.Roles {
		role := &c.Roles[i]
		role.Key = NormalizeRole(role.Key)
		if role.Key == "" {
			return fmt.Errorf("role %d has no key", i)
		}
		if role.DisplayName == "" {
			role.DisplayName = humanizeRole(role.Key)
		}
		names := append([]string{role.Key, role.DisplayName}, role.Aliases...)
		for _, name := range names {
			key := NormalizeRole(name)
			if other, dup := c.index[key]; dup && other != i {
				return fmt.Errorf("role name %q is claimed by both %s and %s", key, c.Roles[other].Key, role.Key)
			}
			c.index[key] = i
		}
		if err := validateTasks(role.Key, role.Tasks); err != nil {
			return err
		}
	}
	if err := validateTasks("generic", c.GenericTasks); err != nil {
		return err
	}

	c.DefaultRole = NormalizeRole(c.DefaultRole)
	if _, ok := c.index[c.DefaultRole]; !ok {
		return fmt.Errorf("default role %q is not defined", c.DefaultRole)
	}
	if len(c.GenericTasks) >= RoleTaskIDBase {
		return fmt.Errorf("too many generic tasks: %d (ids must stay below %d)", len(c.GenericTasks), RoleTaskIDBase)
	}
	return nil
}

// validateTasks rejects templates whose due offset would be filed under another milestone
func validateTasks(owner string, tasks []TaskTemplate) error {
	for i, t := range tasks {
		if !t.Milestone.IsValid() {
			return fmt.Errorf("%s task %d (%q): unknown milestone %q", owner, i, t.Name, t.Milestone)
		}
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Errorf("%s task %d: name is required", owner, i)
		}
		got, err := ClassifyOffset(t.Offset())
		if err != nil {
			return fmt.Errorf("%s task %q: %w", owner, t.Name, err)
		}
		if got != t.Milestone {
			return fmt.Errorf("%s task %q: offset %d belongs to %s, not %s", owner, t.Name, t.Offset(), got, t.Milestone)
		}
		if t.Priority != "" && !t.Priority.IsValid() {
			return fmt.Errorf("%s task %q: invalid priority %q", owner, t.Name, t.Priority)
		}
		if t.Assignee != "" && !t.Assignee.IsValid() {
			return fmt.Errorf("%s task %q: invalid assignee %q", owner, t.Name, t.Assignee)
		}
	}
	return nil
}

// Resolve matches a role against the catalog, falling back to the default role
func (c *Catalog) Resolve(role string) Resolution {
	key := NormalizeRole(role)
	if i, ok := c.index[key]; ok && key != "" {
		tpl := c.Roles[i]
		return Resolution{Template: tpl, RoleKey: tpl.Key, RoleName: tpl.DisplayName}
	}

	def := c.Roles[c.index[c.DefaultRole]]
	name := humanizeRole(key)
	if name == "" {
		name = def.DisplayName
	}
	return Resolution{Template: def, RoleKey: key, RoleName: name, Fallback: true}
}

// Role returns the template registered under key or alias
func (c *Catalog) Role(role string) (RoleTemplate, bool) {
	i, ok := c.index[NormalizeRole(role)]
	if !ok {
		return RoleTemplate{}, false
	}
	return c.Roles[i], true
}

// RoleKeys lists the canonical role keys in catalog order
func (c *Catalog) RoleKeys() []string {
	keys := make([]string, 0, len(c.Roles))
	for _, r := range c.Roles {
		keys = append(keys, r.Key)
	}
	return keys
}

// NormalizeRole lowercases a role, trims it and joins words with underscores
func NormalizeRole(role string) string {
	fields := strings.FieldsFunc(strings.ToLower(role), func(r rune) bool {
		return r == ' ' || r == '-' || r == '_' || r == '\t'
	})
	return strings.Join(fields, "_")
}

func humanizeRole(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.TrimSpace(strings.Join(words, " "))
}
