package task_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkurov/dela/internal/application/task"
	"github.com/mkurov/dela/internal/domain"
	"github.com/mkurov/dela/internal/ptr"
)

// captureRepo records which mutating calls the service makes. It serves
// the tests that assert a validation failure reaches the repository
// with zero mutations.
type captureRepo struct {
	existing *domain.Task

	createCalled       bool
	updateCalled       bool
	registeredCategory string
	capturedParams     domain.UpdateTaskParams
}

func (m *captureRepo) CreateTask(ctx context.Context, t *domain.Task) (*domain.Task, error) {
	m.createCalled = true
	created := *t
	created.ID = 1
	return &created, nil
}

func (m *captureRepo) FindTaskByID(ctx context.Context, id int) (*domain.Task, error) {
	if m.existing == nil || m.existing.ID != id {
		return nil, domain.ErrTaskNotFound
	}
	found := *m.existing
	return &found, nil
}

func (m *captureRepo) ListTasks(ctx context.Context) ([]domain.Task, error) {
	if m.existing == nil {
		return nil, nil
	}
	return []domain.Task{*m.existing}, nil
}

func (m *captureRepo) UpdateTask(ctx context.Context, params domain.UpdateTaskParams) (*domain.Task, error) {
	m.updateCalled = true
	m.capturedParams = params
	updated := *m.existing
	return &updated, nil
}

func (m *captureRepo) DeleteTask(ctx context.Context, id int) error {
	return nil
}

func (m *captureRepo) CompleteTask(ctx context.Context, id int) (*domain.Task, error) {
	return m.FindTaskByID(ctx, id)
}

func (m *captureRepo) Categories(ctx context.Context) ([]string, error) {
	return domain.DefaultCategories(), nil
}

func (m *captureRepo) RegisterCategory(ctx context.Context, label string) error {
	m.registeredCategory = label
	return nil
}

func (m *captureRepo) Close() error {
	return nil
}

func TestCreateValidationFailureNeverTouchesRepo(t *testing.T) {
	ctx := context.Background()
	repo := &captureRepo{}
	svc := task.NewService(repo)

	_, err := svc.CreateTask(ctx, task.CreateTaskParams{
		Title:    "ok",
		Priority: "bogus",
		DueDate:  "01.01.2030",
		Category: "Errands",
	})
	require.ErrorIs(t, err, domain.ErrInvalidPriority)

	assert.False(t, repo.createCalled)
	assert.Empty(t, repo.registeredCategory,
		"category must not be registered when validation fails")
}

func TestUpdateValidationFailureNeverTouchesRepo(t *testing.T) {
	ctx := context.Background()
	repo := &captureRepo{existing: &domain.Task{
		ID:       5,
		Title:    "stable",
		Priority: domain.PriorityLow,
		DueDate:  "01.01.2030",
		Category: domain.CategoryUncategorized,
	}}
	svc := task.NewService(repo)

	_, err := svc.UpdateTask(ctx, domain.UpdateTaskParams{
		ID:       5,
		Title:    ptr.To("fine"),
		DueDate:  ptr.To("bogus"),
		Category: ptr.To("Errands"),
	})
	require.ErrorIs(t, err, domain.ErrInvalidDueDate)

	assert.False(t, repo.updateCalled)
	assert.Empty(t, repo.registeredCategory)
}

func TestUpdatePassesNormalizedValuesToRepo(t *testing.T) {
	ctx := context.Background()
	repo := &captureRepo{existing: &domain.Task{
		ID:       5,
		Title:    "stable",
		Priority: domain.PriorityLow,
		DueDate:  "01.01.2030",
		Category: domain.CategoryUncategorized,
	}}
	svc := task.NewService(repo)

	_, err := svc.UpdateTask(ctx, domain.UpdateTaskParams{
		ID:       5,
		Title:    ptr.To("  trimmed  "),
		Category: ptr.To("  Errands "),
	})
	require.NoError(t, err)

	require.True(t, repo.updateCalled)
	assert.Equal(t, "trimmed", ptr.Deref(repo.capturedParams.Title, ""))
	assert.Equal(t, "Errands", ptr.Deref(repo.capturedParams.Category, ""))
	assert.Equal(t, "Errands", repo.registeredCategory)
	assert.Nil(t, repo.capturedParams.DueDate)
}
