package services

import (
	"context"

	"todo-tracker/internal/config"
	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/validation"
)

// taskServiceImpl implements the TaskService interface
type taskServiceImpl struct {
	repo          repository.Repository
	taskValidator *validation.TaskValidator
}

// NewTaskService creates a new TaskService instance
func NewTaskService(repo repository.Repository) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		taskValidator: validation.NewTaskValidator(),
	}
}

// NewTaskServiceWithConfig creates a new TaskService instance with configured validation rules
func NewTaskServiceWithConfig(repo repository.Repository, cfg *config.Config) TaskService {
	return &taskServiceImpl{
		repo:          repo,
		taskValidator: validation.NewTaskValidatorWithConfig(cfg),
	}
}

// validateTitle validates and trims a task title
func (t *taskServiceImpl) validateTitle(title string) (string, error) {
	trimmed, err := t.taskValidator.GetValidTitle(title)
	if err != nil {
		return "", errors.NewValidationError("invalid task title", err)
	}
	return trimmed, nil
}

// CreateTask creates a new pending task with the given title and description
func (t *taskServiceImpl) CreateTask(ctx context.Context, title, description string) (*domain.Task, error) {
	// Validate before touching the store
	trimmedTitle, err := t.validateTitle(title)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(trimmedTitle, description)
	if err != nil {
		return nil, err
	}

	if err := t.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

// GetTask retrieves a task by its ID
func (t *taskServiceImpl) GetTask(ctx context.Context, id int64) (*domain.Task, bool, error) {
	task, err := t.repo.GetTask(ctx, id)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return task, true, nil
}

// ListTasks retrieves all tasks in creation order
func (t *taskServiceImpl) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	return t.repo.ListTasks(ctx)
}

// UpdateTask applies a partial update to an existing task. The update
// is all-or-nothing: an invalid title aborts before any field changes,
// so a description supplied alongside it is never applied.
func (t *taskServiceImpl) UpdateTask(ctx context.Context, id int64, title, description *string) (bool, error) {
	task, found, err := t.GetTask(ctx, id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	// Validate the new title before mutating anything
	var trimmedTitle string
	if title != nil {
		trimmedTitle, err = t.validateTitle(*title)
		if err != nil {
			return false, err
		}
	}

	if title != nil {
		if err := task.Rename(trimmedTitle); err != nil {
			return false, err
		}
	}
	if description != nil {
		task.SetDescription(*description)
	}

	if err := t.repo.UpdateTask(ctx, task); err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// ToggleCompletion flips the completion status of a task
func (t *taskServiceImpl) ToggleCompletion(ctx context.Context, id int64) (bool, error) {
	task, found, err := t.GetTask(ctx, id)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}

	task.ToggleCompletion()

	if err := t.repo.UpdateTask(ctx, task); err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}

// DeleteTask removes a task permanently
func (t *taskServiceImpl) DeleteTask(ctx context.Context, id int64) (bool, error) {
	if err := t.repo.DeleteTask(ctx, id); err != nil {
		if errors.IsNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
