package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkurov/dela/internal/application/task"
	"github.com/mkurov/dela/internal/domain"
	"github.com/mkurov/dela/internal/storage/compliance"
	"github.com/mkurov/dela/internal/storage/memory"
)

func TestRepositoryCompliance(t *testing.T) {
	compliance.RunRepositoryComplianceTest(t, func(t *testing.T) task.Repository {
		return memory.NewStore()
	})
}

func TestReturnedTasksAreCopies(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	created, err := store.CreateTask(ctx, &domain.Task{
		Title:    "immutable",
		Priority: domain.PriorityLow,
		DueDate:  "01.01.2030",
		Category: domain.CategoryUncategorized,
	})
	require.NoError(t, err)

	created.Title = "mutated by caller"

	found, err := store.FindTaskByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "immutable", found.Title)
}

func TestListSnapshotIsDetached(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := store.CreateTask(ctx, &domain.Task{
		Title:    "snapshot",
		Priority: domain.PriorityLow,
		DueDate:  "01.01.2030",
		Category: domain.CategoryUncategorized,
	})
	require.NoError(t, err)

	snapshot, err := store.ListTasks(ctx)
	require.NoError(t, err)
	snapshot[0].Title = "changed in snapshot"

	found, err := store.FindTaskByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "snapshot", found.Title)
}
