package task

import (
	"context"

	"github.com/mkurov/dela/internal/domain"
)

// Repository defines storage operations for task management.
//
// Implementations own the task collection, the category registry, and
// the id counter. Field values arriving through UpdateTaskParams have
// already been validated by the service layer; repositories enforce the
// structural invariants (id assignment, not-found, the completed-task
// guard) under their own locking.
type Repository interface {
	// CreateTask stores a new task and assigns the next id.
	// The returned task carries the assigned id.
	CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error)

	// FindTaskByID retrieves a task by id.
	// Returns domain.ErrTaskNotFound if no such task exists.
	FindTaskByID(ctx context.Context, id int) (*domain.Task, error)

	// ListTasks returns all tasks in creation order.
	ListTasks(ctx context.Context) ([]domain.Task, error)

	// UpdateTask applies the non-nil fields of params to the task.
	// Returns domain.ErrTaskNotFound if the task does not exist and
	// domain.ErrTaskCompleted if it is already completed. The update is
	// atomic: either every supplied field is applied or none is.
	UpdateTask(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error)

	// DeleteTask permanently removes a task. No other task's id is
	// affected. Returns domain.ErrTaskNotFound if the task does not
	// exist.
	DeleteTask(ctx context.Context, id int) error

	// CompleteTask sets Completed=true and returns the task. Completing
	// an already-completed task is a success, not an error.
	// Returns domain.ErrTaskNotFound if the task does not exist.
	CompleteTask(ctx context.Context, id int) (*domain.Task, error)

	// Categories returns the known category labels in registration
	// order, starting with the seeded defaults.
	Categories(ctx context.Context) ([]string, error)

	// RegisterCategory adds a label to the category registry.
	// Idempotent: registering a known label is a no-op.
	RegisterCategory(ctx context.Context, label string) error

	// Close releases any resources held by the repository.
	Close() error
}
