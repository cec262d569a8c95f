// Package memory provides the default in-memory task repository.
// Nothing survives the end of the run.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/mkurov/dela/internal/domain"
)

// Store is an in-memory implementation of task.Repository.
//
// A single interactive run never touches the store from more than one
// goroutine, but every operation still takes the lock so the monotonic
// id counter and the registry stay collision-free if a concurrent
// front end is ever put on top.
type Store struct {
	mu sync.RWMutex

	tasks  []domain.Task // creation order
	nextID int

	categories []string // registration order
	known      map[string]struct{}
}

// NewStore creates a store seeded with the default category set.
// The first task created receives id 1.
func NewStore() *Store {
	s := &Store{
		nextID: 1,
		known:  make(map[string]struct{}),
	}
	for _, label := range domain.DefaultCategories() {
		s.categories = append(s.categories, label)
		s.known[label] = struct{}{}
	}
	return s
}

// CreateTask stores a copy of the task with the next id assigned.
// The counter only moves forward; deleted ids are never reused.
func (s *Store) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *task
	stored.ID = s.nextID
	s.nextID++

	s.tasks = append(s.tasks, stored)

	created := stored
	return &created, nil
}

// FindTaskByID returns a copy of the task with the given id.
func (s *Store) FindTaskByID(ctx context.Context, id int) (*domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
	}

	found := s.tasks[idx]
	return &found, nil
}

// ListTasks returns a copy of all tasks in creation order.
func (s *Store) ListTasks(ctx context.Context) ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.tasks), nil
}

// UpdateTask applies the non-nil fields of params atomically under the
// write lock. Completed tasks reject every field update.
func (s *Store) UpdateTask(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(params.ID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, params.ID)
	}

	task := &s.tasks[idx]
	if task.Completed {
		return nil, fmt.Errorf("%w: task %d", domain.ErrTaskCompleted, params.ID)
	}

	if params.Title != nil {
		task.Title = *params.Title
	}
	if params.Description != nil {
		task.Description = *params.Description
	}
	if params.Priority != nil {
		task.Priority = domain.Priority(*params.Priority)
	}
	if params.DueDate != nil {
		task.DueDate = *params.DueDate
	}
	if params.Category != nil {
		task.Category = *params.Category
	}

	updated := *task
	return &updated, nil
}

// DeleteTask removes the task permanently. Remaining tasks keep their
// ids and their creation order.
func (s *Store) DeleteTask(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
	}

	s.tasks = slices.Delete(s.tasks, idx, idx+1)
	return nil
}

// CompleteTask sets Completed=true and returns a copy of the task.
// Already-completed tasks complete again without error.
func (s *Store) CompleteTask(ctx context.Context, id int) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
	}

	s.tasks[idx].Completed = true

	completed := s.tasks[idx]
	return &completed, nil
}

// Categories returns the known labels in registration order.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.categories), nil
}

// RegisterCategory adds an unseen label to the registry. Registering a
// known label is a no-op.
func (s *Store) RegisterCategory(ctx context.Context, label string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.known[label]; ok {
		return nil
	}
	s.categories = append(s.categories, label)
	s.known[label] = struct{}{}
	return nil
}

// Close is a no-op; the store holds no external resources.
func (s *Store) Close() error {
	return nil
}

// indexOf returns the position of the task with the given id, or -1.
// Callers must hold the lock.
func (s *Store) indexOf(id int) int {
	return slices.IndexFunc(s.tasks, func(t domain.Task) bool {
		return t.ID == id
	})
}
