package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
)

func setupRepository(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func mustCreate(t *testing.T, repo *SQLiteRepository, title, description string) *domain.Task {
	t.Helper()
	task, err := domain.NewTask(title, description)
	require.NoError(t, err)
	require.NoError(t, repo.CreateTask(context.Background(), task))
	return task
}

func TestSQLiteRepository_CreateTask(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	t.Run("assigns sequential IDs starting at 1", func(t *testing.T) {
		first := mustCreate(t, repo, "First", "")
		second := mustCreate(t, repo, "Second", "")

		assert.Equal(t, int64(1), first.ID)
		assert.Equal(t, int64(2), second.ID)
	})

	t.Run("round-trips the description", func(t *testing.T) {
		created := mustCreate(t, repo, "With description", "the details")

		stored, err := repo.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "the details", stored.Description)
	})

	t.Run("stores absent description as NULL", func(t *testing.T) {
		created := mustCreate(t, repo, "Without description", "")

		var description any
		err := repo.db.QueryRow("SELECT description FROM tasks WHERE id = ?", created.ID).Scan(&description)
		require.NoError(t, err)
		assert.Nil(t, description)
	})
}

func TestSQLiteRepository_IDsNeverReused(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	first := mustCreate(t, repo, "A", "")
	mustCreate(t, repo, "B", "")

	require.NoError(t, repo.DeleteTask(ctx, first.ID))

	// AUTOINCREMENT never hands a deleted ID out again
	third := mustCreate(t, repo, "C", "")
	assert.Equal(t, int64(3), third.ID)
}

func TestSQLiteRepository_GetTask(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	created := mustCreate(t, repo, "Find me", "")

	t.Run("returns stored task", func(t *testing.T) {
		task, err := repo.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, task.ID)
		assert.Equal(t, "Find me", task.Title)
		assert.False(t, task.Completed)
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		_, err := repo.GetTask(ctx, 999)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestSQLiteRepository_ListTasks(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	t.Run("empty table lists no tasks", func(t *testing.T) {
		tasks, err := repo.ListTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)
	})

	t.Run("lists tasks in creation order", func(t *testing.T) {
		mustCreate(t, repo, "A", "")
		mustCreate(t, repo, "B", "")
		mustCreate(t, repo, "C", "")

		require.NoError(t, repo.DeleteTask(ctx, 2))

		tasks, err := repo.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, int64(1), tasks[0].ID)
		assert.Equal(t, int64(3), tasks[1].ID)
	})
}

func TestSQLiteRepository_UpdateTask(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	created := mustCreate(t, repo, "Before", "old")

	t.Run("overwrites all fields", func(t *testing.T) {
		created.Title = "After"
		created.Description = ""
		created.Completed = true
		require.NoError(t, repo.UpdateTask(ctx, created))

		stored, err := repo.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "After", stored.Title)
		assert.Empty(t, stored.Description)
		assert.True(t, stored.Completed)
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		missing := &domain.Task{ID: 999, Title: "Ghost"}
		err := repo.UpdateTask(ctx, missing)
		assert.True(t, errors.IsNotFound(err))
	})
}

func TestSQLiteRepository_DeleteTask(t *testing.T) {
	repo := setupRepository(t)
	ctx := context.Background()

	created := mustCreate(t, repo, "Doomed", "")

	require.NoError(t, repo.DeleteTask(ctx, created.ID))

	err := repo.DeleteTask(ctx, created.ID)
	assert.True(t, errors.IsNotFound(err))

	_, err = repo.GetTask(ctx, created.ID)
	assert.True(t, errors.IsNotFound(err))
}
