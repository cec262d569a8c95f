package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkurov/dela/internal/domain"
)

// Store implements task.Repository on top of SQLite. Id monotonicity
// across deletions comes from AUTOINCREMENT, which never hands out a
// rowid smaller than any previously assigned one.
type Store struct {
	db *sql.DB
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

const taskColumns = "id, title, description, priority, due_date, completed, category, created_at"

func scanTask(row interface{ Scan(...any) error }) (*domain.Task, error) {
	var task domain.Task
	var priority string
	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Description,
		&priority,
		&task.DueDate,
		&task.Completed,
		&task.Category,
		&task.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	task.Priority = domain.Priority(priority)
	return &task, nil
}

// CreateTask inserts the task and returns it with the assigned id.
func (s *Store) CreateTask(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, priority, due_date, completed, category, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		task.Title, task.Description, string(task.Priority), task.DueDate,
		task.Completed, task.Category, task.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert task: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read inserted id: %w", err)
	}

	created := *task
	created.ID = int(id)
	return &created, nil
}

// FindTaskByID retrieves a single task.
func (s *Store) FindTaskByID(ctx context.Context, id int) (*domain.Task, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id)

	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return task, nil
}

// ListTasks returns all tasks ordered by id, which is creation order.
func (s *Store) ListTasks(ctx context.Context) ([]domain.Task, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []domain.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, *task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies the non-nil fields of params inside a transaction
// so the read-check-write sequence is atomic.
func (s *Store) UpdateTask(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	row := tx.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", params.ID)
	task, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, params.ID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}

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

	_, err = tx.ExecContext(ctx,
		`UPDATE tasks SET title = ?, description = ?, priority = ?, due_date = ?, category = ?
		 WHERE id = ?`,
		task.Title, task.Description, string(task.Priority), task.DueDate, task.Category, task.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return task, nil
}

// DeleteTask removes the task row permanently.
func (s *Store) DeleteTask(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
	}
	return nil
}

// CompleteTask sets the completed flag and returns the task. Setting it
// on an already-completed task is a success.
func (s *Store) CompleteTask(ctx context.Context, id int) (*domain.Task, error) {
	res, err := s.db.ExecContext(ctx, "UPDATE tasks SET completed = 1 WHERE id = ?", id)
	if err != nil {
		return nil, fmt.Errorf("failed to complete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrTaskNotFound, id)
	}

	return s.FindTaskByID(ctx, id)
}

// Categories returns the known labels in registration order.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM categories ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var categories []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

// RegisterCategory appends an unseen label to the registry.
func (s *Store) RegisterCategory(ctx context.Context, label string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO categories (name, position)
		 VALUES (?, (SELECT COALESCE(MAX(position), 0) + 1 FROM categories))`,
		label,
	)
	if err != nil {
		return fmt.Errorf("failed to register category: %w", err)
	}
	return nil
}
