package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mkurov/dela/internal/domain"
	"github.com/mkurov/dela/internal/ptr"
	"github.com/mkurov/dela/internal/query"
	"github.com/mkurov/dela/internal/stats"
)

// Service provides business logic for task management. It validates
// input, resolves categories against the registry, and orchestrates
// operations through the Repository interface.
type Service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new task service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// NewServiceWithClock creates a task service with a fixed clock.
// Used by tests that need deterministic dates.
func NewServiceWithClock(repo Repository, now func() time.Time) *Service {
	return &Service{repo: repo, now: now}
}

// CreateTaskParams contains the raw input for creating a task.
type CreateTaskParams struct {
	Title       string
	Description string
	Priority    string
	DueDate     string
	Category    string
}

// CreateTask validates the input and stores a new task.
//
// Validation failures (blank title, invalid priority, invalid due date)
// are returned as domain errors; on success the returned task carries
// the store-assigned id, Completed=false, and CreatedAt stamped to the
// current date.
func (s *Service) CreateTask(ctx context.Context, params CreateTaskParams) (*domain.Task, error) {
	title, err := domain.NewTitle(params.Title)
	if err != nil {
		return nil, err
	}

	priority, err := domain.NewPriority(params.Priority)
	if err != nil {
		return nil, err
	}

	if _, err := domain.ParseDueDate(params.DueDate); err != nil {
		return nil, err
	}

	category, err := s.resolveCategory(ctx, params.Category)
	if err != nil {
		return nil, err
	}

	description := params.Description
	if strings.TrimSpace(description) == "" {
		description = ""
	}

	task := &domain.Task{
		Title:       title.String(),
		Description: description,
		Priority:    priority,
		DueDate:     params.DueDate,
		Category:    category,
		CreatedAt:   domain.FormatDate(s.now()),
	}

	created, err := s.repo.CreateTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return created, nil
}

// GetTask retrieves a task by id.
func (s *Service) GetTask(ctx context.Context, id int) (*domain.Task, error) {
	return s.repo.FindTaskByID(ctx, id)
}

// ListTasks returns all tasks in creation order.
func (s *Service) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.repo.ListTasks(ctx)
}

// UpdateTask applies the supplied fields of params to a task.
//
// Failure order follows the operation contract: not-found first, then
// the completed-task guard (which blocks every field, category
// included), then per-field validation in the deterministic order
// title, priority, due date. The first invalid field aborts the whole
// update with no partial mutation.
func (s *Service) UpdateTask(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error) {
	existing, err := s.repo.FindTaskByID(ctx, params.ID)
	if err != nil {
		return nil, err
	}
	if existing.Completed {
		return nil, fmt.Errorf("%w: task %d", domain.ErrTaskCompleted, params.ID)
	}

	if params.Title != nil {
		title, err := domain.NewTitle(*params.Title)
		if err != nil {
			return nil, err
		}
		params.Title = ptr.To(title.String())
	}

	if params.Priority != nil {
		priority, err := domain.NewPriority(*params.Priority)
		if err != nil {
			return nil, err
		}
		params.Priority = ptr.To(string(priority))
	}

	if params.DueDate != nil {
		if _, err := domain.ParseDueDate(*params.DueDate); err != nil {
			return nil, err
		}
	}

	if params.Description != nil && strings.TrimSpace(*params.Description) == "" {
		params.Description = ptr.To("")
	}

	if params.Category != nil {
		category, err := s.resolveCategory(ctx, *params.Category)
		if err != nil {
			return nil, err
		}
		params.Category = ptr.To(category)
	}

	return s.repo.UpdateTask(ctx, params)
}

// DeleteTask permanently removes a task. The confirmation flag is
// checked before existence: an unconfirmed delete fails even for an id
// that does not exist.
func (s *Service) DeleteTask(ctx context.Context, id int, confirmed bool) error {
	if !confirmed {
		return domain.ErrDeleteNotConfirmed
	}
	return s.repo.DeleteTask(ctx, id)
}

// CompleteTask marks a task as completed and returns it. Completing an
// already-completed task succeeds again.
func (s *Service) CompleteTask(ctx context.Context, id int) (*domain.Task, error) {
	return s.repo.CompleteTask(ctx, id)
}

// FilterByStatus returns tasks matching the given completion state.
func (s *Service) FilterByStatus(ctx context.Context, filter domain.StatusFilter) ([]domain.Task, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return query.ByStatus(tasks, filter), nil
}

// Search returns tasks whose title or description contains text,
// case-insensitively. Blank text returns all tasks.
func (s *Service) Search(ctx context.Context, text string) ([]domain.Task, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return query.Search(tasks, text), nil
}

// FilterByCategory returns tasks whose category matches label,
// case-insensitively.
func (s *Service) FilterByCategory(ctx context.Context, label string) ([]domain.Task, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return query.ByCategory(tasks, label), nil
}

// FilterByPriority returns tasks holding exactly the given priority.
func (s *Service) FilterByPriority(ctx context.Context, priority domain.Priority) ([]domain.Task, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return query.ByPriority(tasks, priority), nil
}

// Overdue returns incomplete tasks due strictly before the current
// date.
func (s *Service) Overdue(ctx context.Context) ([]domain.Task, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	return query.Overdue(tasks, s.now()), nil
}

// Categories returns the known category labels in registration order.
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

// Stats aggregates the current store contents into summary counts.
// The category breakdown covers every registered label plus the
// uncategorized sentinel, which is never part of the registry itself.
func (s *Service) Stats(ctx context.Context) (stats.Summary, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return stats.Summary{}, err
	}

	categories, err := s.repo.Categories(ctx)
	if err != nil {
		return stats.Summary{}, err
	}

	labels := append([]string(nil), categories...)
	if !containsFold(labels, domain.CategoryUncategorized) {
		labels = append(labels, domain.CategoryUncategorized)
	}

	return stats.Compute(tasks, labels, s.now()), nil
}

// resolveCategory normalizes a category label and grows the registry
// for previously unseen labels. The uncategorized sentinel is returned
// without being registered.
func (s *Service) resolveCategory(ctx context.Context, label string) (string, error) {
	category := domain.NormalizeCategory(label)
	if category == domain.CategoryUncategorized {
		return category, nil
	}
	if err := s.repo.RegisterCategory(ctx, category); err != nil {
		return "", fmt.Errorf("failed to register category: %w", err)
	}
	return category, nil
}

func containsFold(labels []string, target string) bool {
	for _, label := range labels {
		if strings.EqualFold(label, target) {
			return true
		}
	}
	return false
}
