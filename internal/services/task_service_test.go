package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/config"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/repository/memory"
	"todo-tracker/internal/repository/sqlite"
)

// forEachBackend runs the test against both repository implementations,
// which must be behaviorally identical under the service.
func forEachBackend(t *testing.T, test func(t *testing.T, service TaskService)) {
	t.Helper()

	backends := map[string]func(t *testing.T) repository.Repository{
		"memory": func(t *testing.T) repository.Repository {
			return memory.New()
		},
		"sqlite": func(t *testing.T) repository.Repository {
			repo, err := sqlite.New(":memory:")
			require.NoError(t, err)
			t.Cleanup(func() { repo.Close() })
			return repo
		},
	}

	for name, newRepo := range backends {
		t.Run(name, func(t *testing.T) {
			test(t, NewTaskService(newRepo(t)))
		})
	}
}

func strPtr(s string) *string {
	return &s
}

func TestTaskService_CreateTask(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		t.Run("assigns sequential IDs starting at 1", func(t *testing.T) {
			first, err := service.CreateTask(ctx, "First", "")
			require.NoError(t, err)
			second, err := service.CreateTask(ctx, "Second", "")
			require.NoError(t, err)

			assert.Equal(t, int64(1), first.ID)
			assert.Equal(t, int64(2), second.ID)
			assert.False(t, first.Completed)
		})

		t.Run("trims title and description", func(t *testing.T) {
			task, err := service.CreateTask(ctx, "  Buy milk  ", "2%  ")
			require.NoError(t, err)
			assert.Equal(t, "Buy milk", task.Title)
			assert.Equal(t, "2%", task.Description)
			assert.False(t, task.Completed)
		})
	})
}

func TestTaskService_CreateTask_ValidationFailures(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		for _, title := range []string{"", "   "} {
			_, err := service.CreateTask(ctx, title, "desc")
			require.Error(t, err)
			assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
		}

		// Failed creates never touch the store or the ID counter
		tasks, err := service.ListTasks(ctx)
		require.NoError(t, err)
		assert.Empty(t, tasks)

		task, err := service.CreateTask(ctx, "Valid", "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), task.ID)
	})
}

func TestTaskService_GetTask(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		created, err := service.CreateTask(ctx, "Find me", "details")
		require.NoError(t, err)

		t.Run("returns existing task", func(t *testing.T) {
			task, found, err := service.GetTask(ctx, created.ID)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, "Find me", task.Title)
			assert.Equal(t, "details", task.Description)
		})

		t.Run("unknown ID is not an error", func(t *testing.T) {
			task, found, err := service.GetTask(ctx, 999)
			require.NoError(t, err)
			assert.False(t, found)
			assert.Nil(t, task)
		})
	})
}

func TestTaskService_ListTasks(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		t.Run("empty store is a valid result", func(t *testing.T) {
			tasks, err := service.ListTasks(ctx)
			require.NoError(t, err)
			assert.Empty(t, tasks)
		})

		t.Run("returns tasks in creation order", func(t *testing.T) {
			_, err := service.CreateTask(ctx, "A", "")
			require.NoError(t, err)
			_, err = service.CreateTask(ctx, "B", "")
			require.NoError(t, err)

			tasks, err := service.ListTasks(ctx)
			require.NoError(t, err)
			require.Len(t, tasks, 2)
			assert.Equal(t, "A", tasks[0].Title)
			assert.Equal(t, "B", tasks[1].Title)
		})
	})
}

func TestTaskService_UpdateTask(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		created, err := service.CreateTask(ctx, "Original", "original desc")
		require.NoError(t, err)

		t.Run("updates only the title", func(t *testing.T) {
			updated, err := service.UpdateTask(ctx, created.ID, strPtr("Updated"), nil)
			require.NoError(t, err)
			assert.True(t, updated)

			task, found, err := service.GetTask(ctx, created.ID)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, "Updated", task.Title)
			assert.Equal(t, "original desc", task.Description)
		})

		t.Run("updates only the description", func(t *testing.T) {
			updated, err := service.UpdateTask(ctx, created.ID, nil, strPtr("New desc"))
			require.NoError(t, err)
			assert.True(t, updated)

			task, _, err := service.GetTask(ctx, created.ID)
			require.NoError(t, err)
			assert.Equal(t, "Updated", task.Title)
			assert.Equal(t, "New desc", task.Description)
		})

		t.Run("empty description clears it to absent", func(t *testing.T) {
			updated, err := service.UpdateTask(ctx, created.ID, nil, strPtr(""))
			require.NoError(t, err)
			assert.True(t, updated)

			task, _, err := service.GetTask(ctx, created.ID)
			require.NoError(t, err)
			assert.False(t, task.HasDescription())
		})

		t.Run("unknown ID returns false without error", func(t *testing.T) {
			updated, err := service.UpdateTask(ctx, 999, strPtr("Anything"), nil)
			require.NoError(t, err)
			assert.False(t, updated)
		})
	})
}

func TestTaskService_UpdateTask_AllOrNothing(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		created, err := service.CreateTask(ctx, "Keep me", "keep desc")
		require.NoError(t, err)

		// An invalid title aborts the whole update: the valid
		// description supplied alongside it must not be applied.
		updated, err := service.UpdateTask(ctx, created.ID, strPtr("   "), strPtr("sneaky desc"))
		require.Error(t, err)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
		assert.False(t, updated)

		task, found, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, "Keep me", task.Title)
		assert.Equal(t, "keep desc", task.Description)
	})
}

func TestTaskService_ToggleCompletion(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		created, err := service.CreateTask(ctx, "Toggle me", "")
		require.NoError(t, err)

		toggled, err := service.ToggleCompletion(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, toggled)

		task, _, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, task.Completed)

		// A second toggle returns the task to its original state
		toggled, err = service.ToggleCompletion(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, toggled)

		task, _, err = service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, task.Completed)

		t.Run("unknown ID returns false without error", func(t *testing.T) {
			toggled, err := service.ToggleCompletion(ctx, 999)
			require.NoError(t, err)
			assert.False(t, toggled)
		})
	})
}

func TestTaskService_DeleteTask(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		created, err := service.CreateTask(ctx, "Doomed", "")
		require.NoError(t, err)

		deleted, err := service.DeleteTask(ctx, created.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		// Every later delete for the same ID reports false
		deleted, err = service.DeleteTask(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		_, found, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.False(t, found)
	})
}

func TestTaskService_IDsNeverReused(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		a, err := service.CreateTask(ctx, "A", "")
		require.NoError(t, err)
		assert.Equal(t, int64(1), a.ID)

		b, err := service.CreateTask(ctx, "B", "")
		require.NoError(t, err)
		assert.Equal(t, int64(2), b.ID)

		deleted, err := service.DeleteTask(ctx, a.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		c, err := service.CreateTask(ctx, "C", "")
		require.NoError(t, err)
		assert.Equal(t, int64(3), c.ID)

		tasks, err := service.ListTasks(ctx)
		require.NoError(t, err)
		require.Len(t, tasks, 2)
		assert.Equal(t, []int64{2, 3}, []int64{tasks[0].ID, tasks[1].ID})
	})
}

func TestTaskService_TasksAreNotAliased(t *testing.T) {
	forEachBackend(t, func(t *testing.T, service TaskService) {
		ctx := context.Background()

		created, err := service.CreateTask(ctx, "Stable", "")
		require.NoError(t, err)

		// Mutating a returned task must not leak into the store
		created.Title = "mutated"

		task, _, err := service.GetTask(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, "Stable", task.Title)
	})
}

func TestTaskService_WithConfig(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Validation.TitleMinLength = 1
	cfg.Validation.TitleMaxLength = 5

	service := NewTaskServiceWithConfig(memory.New(), cfg)
	ctx := context.Background()

	_, err := service.CreateTask(ctx, "short", "")
	assert.NoError(t, err)

	_, err = service.CreateTask(ctx, "much too long", "")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
}
