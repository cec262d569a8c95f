// Package compliance holds a shared test suite that every
// task.Repository implementation must pass.
package compliance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkurov/dela/internal/application/task"
	"github.com/mkurov/dela/internal/domain"
	"github.com/mkurov/dela/internal/ptr"
)

func newTask(title string) *domain.Task {
	return &domain.Task{
		Title:     title,
		Priority:  domain.PriorityMedium,
		DueDate:   "01.01.2030",
		Category:  domain.CategoryUncategorized,
		CreatedAt: "30.08.2026",
	}
}

// RunRepositoryComplianceTest runs a standard set of tests against a
// Repository implementation. setup returns a fresh (empty) repository
// for each subtest; its Close is called on teardown.
func RunRepositoryComplianceTest(t *testing.T, setup func(t *testing.T) task.Repository) {
	ctx := context.Background()

	t.Run("IDsStartAtOneAndIncrease", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		first, err := repo.CreateTask(ctx, newTask("first"))
		require.NoError(t, err)
		second, err := repo.CreateTask(ctx, newTask("second"))
		require.NoError(t, err)

		assert.Equal(t, 1, first.ID)
		assert.Equal(t, 2, second.ID)
	})

	t.Run("IDsNeverReusedAfterDelete", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		var lastID int
		for _, title := range []string{"a", "b", "c"} {
			created, err := repo.CreateTask(ctx, newTask(title))
			require.NoError(t, err)
			lastID = created.ID
		}

		require.NoError(t, repo.DeleteTask(ctx, lastID))
		require.NoError(t, repo.DeleteTask(ctx, 1))

		created, err := repo.CreateTask(ctx, newTask("d"))
		require.NoError(t, err)
		assert.Greater(t, created.ID, lastID)
	})

	t.Run("FindReturnsStoredTask", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		src := newTask("find me")
		src.Description = "with details"
		src.Category = "Work"
		created, err := repo.CreateTask(ctx, src)
		require.NoError(t, err)

		found, err := repo.FindTaskByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
		assert.Equal(t, "find me", found.Title)
		assert.Equal(t, "with details", found.Description)
		assert.Equal(t, domain.PriorityMedium, found.Priority)
		assert.Equal(t, "01.01.2030", found.DueDate)
		assert.Equal(t, "Work", found.Category)
		assert.Equal(t, "30.08.2026", found.CreatedAt)
		assert.False(t, found.Completed)
	})

	t.Run("FindUnknownIDFails", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		_, err := repo.FindTaskByID(ctx, 99)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("ListTasksKeepsCreationOrder", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		for _, title := range []string{"a", "b", "c"} {
			_, err := repo.CreateTask(ctx, newTask(title))
			require.NoError(t, err)
		}
		require.NoError(t, repo.DeleteTask(ctx, 2))

		tasks, err := repo.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, "a", tasks[0].Title)
		assert.Equal(t, "c", tasks[1].Title)
	})

	t.Run("UpdateAppliesOnlySuppliedFields", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		created, err := repo.CreateTask(ctx, newTask("original"))
		require.NoError(t, err)

		updated, err := repo.UpdateTask(ctx, domain.UpdateTaskParams{
			ID:       created.ID,
			Title:    ptr.To("renamed"),
			Priority: ptr.To(string(domain.PriorityUrgent)),
		})
		require.NoError(t, err)

		assert.Equal(t, "renamed", updated.Title)
		assert.Equal(t, domain.PriorityUrgent, updated.Priority)
		assert.Equal(t, "01.01.2030", updated.DueDate)
		assert.Equal(t, domain.CategoryUncategorized, updated.Category)
	})

	t.Run("UpdateClearsDescriptionWhenSuppliedEmpty", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		src := newTask("with description")
		src.Description = "something"
		created, err := repo.CreateTask(ctx, src)
		require.NoError(t, err)

		updated, err := repo.UpdateTask(ctx, domain.UpdateTaskParams{
			ID:          created.ID,
			Description: ptr.To(""),
		})
		require.NoError(t, err)
		assert.Empty(t, updated.Description)
	})

	t.Run("UpdateCompletedTaskFails", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		created, err := repo.CreateTask(ctx, newTask("done soon"))
		require.NoError(t, err)
		_, err = repo.CompleteTask(ctx, created.ID)
		require.NoError(t, err)

		_, err = repo.UpdateTask(ctx, domain.UpdateTaskParams{
			ID:       created.ID,
			Category: ptr.To("Work"),
		})
		assert.ErrorIs(t, err, domain.ErrTaskCompleted)
	})

	t.Run("UpdateUnknownIDFails", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		_, err := repo.UpdateTask(ctx, domain.UpdateTaskParams{
			ID:    42,
			Title: ptr.To("ghost"),
		})
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("DeleteRemovesTask", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		created, err := repo.CreateTask(ctx, newTask("short lived"))
		require.NoError(t, err)

		require.NoError(t, repo.DeleteTask(ctx, created.ID))

		_, err = repo.FindTaskByID(ctx, created.ID)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)

		assert.ErrorIs(t, repo.DeleteTask(ctx, created.ID), domain.ErrTaskNotFound)
	})

	t.Run("CompleteIsRepeatable", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		created, err := repo.CreateTask(ctx, newTask("twice done"))
		require.NoError(t, err)

		first, err := repo.CompleteTask(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, first.Completed)

		second, err := repo.CompleteTask(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, second.Completed)
	})

	t.Run("CompleteUnknownIDFails", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		_, err := repo.CompleteTask(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrTaskNotFound)
	})

	t.Run("CategoriesSeededWithDefaults", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		categories, err := repo.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultCategories(), categories)
	})

	t.Run("RegisterCategoryGrowsRegistryOnce", func(t *testing.T) {
		repo := setup(t)
		defer repo.Close()

		require.NoError(t, repo.RegisterCategory(ctx, "Groceries"))
		require.NoError(t, repo.RegisterCategory(ctx, "Groceries"))

		categories, err := repo.Categories(ctx)
		require.NoError(t, err)
		assert.Equal(t, append(domain.DefaultCategories(), "Groceries"), categories)
	})
}
