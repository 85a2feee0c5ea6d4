package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"onboarding-backend/internal/database/models"
	apperrors "onboarding-backend/internal/errors"

	"github.com/google/uuid"
)

// In-memory repositories honour the same contracts as the gorm ones, including
// the plan version check. They back service tests and single-process demos.

func stamp(base *models.BaseModel) {
	now := time.Now()
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = now
	}
	base.UpdatedAt = now
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}

// MemoryUserRepository keeps users in memory
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

var _ UserRepositoryInterface = (*MemoryUserRepository)(nil)

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[uuid.UUID]models.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, user.Email) {
			return apperrors.ErrUserExists
		}
	}
	stamp(&user.BaseModel)
	r.users[user.ID] = *user
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return &u, nil
}

func (r *MemoryUserRepository) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (r *MemoryUserRepository) List(_ context.Context, role models.UserRole, limit, offset int) ([]models.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.User
	for _, u := range r.users {
		if role == "" || u.Role == role {
			out = append(out, u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return page(out, limit, offset), int64(len(out)), nil
}

// NewHireDependent holds rows owned by a new hire
type NewHireDependent interface {
	DeleteByNewHireID(ctx context.Context, newHireID uuid.UUID) error
}

// MemoryNewHireRepository keeps new hires in memory
type MemoryNewHireRepository struct {
	mu         sync.RWMutex
	hires      map[uuid.UUID]models.NewHire
	dependents []NewHireDependent
}

var _ NewHireRepositoryInterface = (*MemoryNewHireRepository)(nil)

func NewMemoryNewHireRepository() *MemoryNewHireRepository {
	return &MemoryNewHireRepository{hires: make(map[uuid.UUID]models.NewHire)}
}

func (r *MemoryNewHireRepository) Create(_ context.Context, hire *models.NewHire) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, h := range r.hires {
		if strings.EqualFold(h.Email, hire.Email) {
			return apperrors.ErrNewHireExists
		}
	}
	stamp(&hire.BaseModel)
	if hire.CurrentMilestone == "" {
		hire.CurrentMilestone = "day_1"
	}
	r.hires[hire.ID] = *hire
	return nil
}

func (r *MemoryNewHireRepository) GetByID(_ context.Context, id uuid.UUID) (*models.NewHire, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	h, ok := r.hires[id]
	if !ok {
		return nil, apperrors.ErrNewHireNotFound
	}
	return &h, nil
}

func (r *MemoryNewHireRepository) List(_ context.Context, filter NewHireFilter) ([]models.NewHire, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []models.NewHire
	for _, h := range r.hires {
		if filter.ManagerID != nil && (h.ManagerID == nil || *h.ManagerID != *filter.ManagerID) {
			continue
		}
		if filter.BuddyID != nil && (h.BuddyID == nil || *h.BuddyID != *filter.BuddyID) {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].StartDate.Equal(out[j].StartDate) {
			return out[i].StartDate.After(out[j].StartDate)
		}
		return out[i].Name < out[j].Name
	})
	return page(out, filter.Limit, filter.Offset), int64(len(out)), nil
}

func (r *MemoryNewHireRepository) Update(_ context.Context, hire *models.NewHire) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hires[hire.ID]; !ok {
		return apperrors.ErrNewHireNotFound
	}
	for id, h := range r.hires {
		if id != hire.ID && strings.EqualFold(h.Email, hire.Email) {
			return apperrors.ErrNewHireExists
		}
	}
	hire.UpdatedAt = time.Now()
	r.hires[hire.ID] = *hire
	return nil
}

func (r *MemoryNewHireRepository) UpdateCurrentMilestone(_ context.Context, id uuid.UUID, milestone string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hires[id]
	if !ok {
		return apperrors.ErrNewHireNotFound
	}
	h.CurrentMilestone = milestone
	r.hires[id] = h
	return nil
}

func (r *MemoryNewHireRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hires[id]; !ok {
		return apperrors.ErrNewHireNotFound
	}
	delete(r.hires, id)
	return nil
}

// CascadeTo registers the stores DeleteCascade clears along with a new hire
func (r *MemoryNewHireRepository) CascadeTo(dependents ...NewHireDependent) *MemoryNewHireRepository {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.dependents = append(r.dependents, dependents...)
	return r
}

func (r *MemoryNewHireRepository) DeleteCascade(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hires[id]; !ok {
		return apperrors.ErrNewHireNotFound
	}
	for _, d := range r.dependents {
		if err := d.DeleteByNewHireID(ctx, id); err != nil {
			return err
		}
	}
	delete(r.hires, id)
	return nil
}

// MemoryPlanRepository keeps plans in memory, keyed by new hire
type MemoryPlanRepository struct {
	mu    sync.Mutex
	plans map[uuid.UUID]models.OnboardingPlan
}

var _ PlanRepositoryInterface = (*MemoryPlanRepository)(nil)

func NewMemoryPlanRepository() *MemoryPlanRepository {
	return &MemoryPlanRepository{plans: make(map[uuid.UUID]models.OnboardingPlan)}
}

func (r *MemoryPlanRepository) Create(_ context.Context, plan *models.OnboardingPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.plans[plan.NewHireID]; ok {
		return apperrors.ErrPlanExists
	}
	stamp(&plan.BaseModel)
	plan.Version = 1
	plan.SetPlan(plan.Document.Data().Clone())
	r.plans[plan.NewHireID] = *plan
	return nil
}

func (r *MemoryPlanRepository) GetByNewHireID(_ context.Context, newHireID uuid.UUID) (*models.OnboardingPlan, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.plans[newHireID]
	if !ok {
		return nil, apperrors.ErrPlanNotFound
	}
	p.SetPlan(p.Plan())
	return &p, nil
}

func (r *MemoryPlanRepository) Update(_ context.Context, plan *models.OnboardingPlan) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stored, ok := r.plans[plan.NewHireID]
	if !ok || stored.ID != plan.ID {
		return apperrors.ErrPlanNotFound
	}
	if stored.Version != plan.Version {
		return apperrors.ErrPlanVersionConflict
	}
	plan.Version++
	plan.UpdatedAt = time.Now()
	saved := *plan
	saved.SetPlan(plan.Plan())
	r.plans[plan.NewHireID] = saved
	return nil
}

func (r *MemoryPlanRepository) DeleteByNewHireID(_ context.Context, newHireID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.plans, newHireID)
	return nil
}

// MemoryCommentRepository keeps comments in insertion order
type MemoryCommentRepository struct {
	mu       sync.RWMutex
	comments []models.TaskComment
}

var _ CommentRepositoryInterface = (*MemoryCommentRepository)(nil)

func NewMemoryCommentRepository() *MemoryCommentRepository {
	return &MemoryCommentRepository{}
}

func (r *MemoryCommentRepository) Create(_ context.Context, comment *models.TaskComment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&comment.BaseModel)
	r.comments = append(r.comments, *comment)
	return nil
}

func (r *MemoryCommentRepository) ListByTask(_ context.Context, newHireID uuid.UUID, taskID int) ([]models.TaskComment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.TaskComment{}
	for _, c := range r.comments {
		if c.NewHireID == newHireID && c.TaskID == taskID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *MemoryCommentRepository) DeleteByNewHireID(_ context.Context, newHireID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.comments[:0]
	for _, c := range r.comments {
		if c.NewHireID != newHireID {
			kept = append(kept, c)
		}
	}
	r.comments = kept
	return nil
}

// MemoryFeedbackRepository keeps feedback in memory
type MemoryFeedbackRepository struct {
	mu      sync.RWMutex
	entries []models.Feedback
}

var _ FeedbackRepositoryInterface = (*MemoryFeedbackRepository)(nil)

func NewMemoryFeedbackRepository() *MemoryFeedbackRepository {
	return &MemoryFeedbackRepository{}
}

func (r *MemoryFeedbackRepository) Create(_ context.Context, feedback *models.Feedback) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&feedback.BaseModel)
	r.entries = append(r.entries, *feedback)
	return nil
}

func (r *MemoryFeedbackRepository) ListByNewHire(_ context.Context, newHireID uuid.UUID) ([]models.Feedback, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Feedback{}
	// newest first
	for i := len(r.entries) - 1; i >= 0; i-- {
		if r.entries[i].NewHireID == newHireID {
			out = append(out, r.entries[i])
		}
	}
	return out, nil
}

func (r *MemoryFeedbackRepository) DeleteByNewHireID(_ context.Context, newHireID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.entries[:0]
	for _, f := range r.entries {
		if f.NewHireID != newHireID {
			kept = append(kept, f)
		}
	}
	r.entries = kept
	return nil
}

// MemoryDocumentRepository keeps document metadata in memory
type MemoryDocumentRepository struct {
	mu   sync.RWMutex
	docs []models.Document
}

var _ DocumentRepositoryInterface = (*MemoryDocumentRepository)(nil)

func NewMemoryDocumentRepository() *MemoryDocumentRepository {
	return &MemoryDocumentRepository{}
}

func (r *MemoryDocumentRepository) Create(_ context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	stamp(&doc.BaseModel)
	r.docs = append(r.docs, *doc)
	return nil
}

func (r *MemoryDocumentRepository) GetByID(_ context.Context, id uuid.UUID) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.docs {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, apperrors.ErrDocumentNotFound
}

func (r *MemoryDocumentRepository) ListByNewHire(_ context.Context, newHireID uuid.UUID) ([]models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []models.Document{}
	for i := len(r.docs) - 1; i >= 0; i-- {
		if r.docs[i].NewHireID == newHireID {
			out = append(out, r.docs[i])
		}
	}
	return out, nil
}

func (r *MemoryDocumentRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, d := range r.docs {
		if d.ID == id {
			r.docs = append(r.docs[:i], r.docs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrDocumentNotFound
}

func (r *MemoryDocumentRepository) DeleteByNewHireID(_ context.Context, newHireID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	kept := r.docs[:0]
	for _, d := range r.docs {
		if d.NewHireID != newHireID {
			kept = append(kept, d)
		}
	}
	r.docs = kept
	return nil
}
