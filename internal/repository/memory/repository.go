// Package memory provides the in-memory task repository. It is the
// default backend: state lives for the duration of the process and is
// owned by a single caller, so no locking is performed.
package memory

import (
	"context"
	"fmt"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
)

// Repository implements the repository interface on a plain map with
// an insertion-order index and a monotonically increasing ID counter.
type Repository struct {
	tasks  map[int64]*domain.Task
	order  []int64
	nextID int64
}

// New creates a new in-memory repository instance
func New() *Repository {
	return &Repository{
		tasks:  make(map[int64]*domain.Task),
		nextID: 1,
	}
}

// CreateTask stores a new task, assigning it the next ID. The counter
// advances exactly once per successful create and never reuses IDs,
// even after deletions.
func (r *Repository) CreateTask(ctx context.Context, task *domain.Task) error {
	task.ID = r.nextID
	r.nextID++

	r.tasks[task.ID] = cloneTask(task)
	r.order = append(r.order, task.ID)
	return nil
}

// GetTask retrieves a task by ID
func (r *Repository) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	task, ok := r.tasks[id]
	if !ok {
		return nil, errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	return cloneTask(task), nil
}

// ListTasks retrieves all tasks in creation order
func (r *Repository) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	tasks := make([]*domain.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, cloneTask(r.tasks[id]))
	}
	return tasks, nil
}

// UpdateTask overwrites an existing task
func (r *Repository) UpdateTask(ctx context.Context, task *domain.Task) error {
	if _, ok := r.tasks[task.ID]; !ok {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", task.ID))
	}
	r.tasks[task.ID] = cloneTask(task)
	return nil
}

// DeleteTask removes a task by ID. The deleted ID stops resolving and
// is never handed out again.
func (r *Repository) DeleteTask(ctx context.Context, id int64) error {
	if _, ok := r.tasks[id]; !ok {
		return errors.NewNotFoundError("task", fmt.Sprintf("%d", id))
	}
	delete(r.tasks, id)
	for i, orderedID := range r.order {
		if orderedID == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Close releases the repository. It is a no-op for the memory backend.
func (r *Repository) Close() error {
	return nil
}

// cloneTask copies a task so callers cannot mutate stored state directly
func cloneTask(task *domain.Task) *domain.Task {
	copied := *task
	return &copied
}
