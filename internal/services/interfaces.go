package services

import (
	"context"

	"todo-tracker/internal/domain"
)

// TaskService handles the task lifecycle: creation, lookup, listing,
// partial updates, completion toggling, and deletion.
//
// Unknown IDs are results, not errors: GetTask reports them through
// its bool return and the mutating operations return false. Errors are
// reserved for validation failures and storage faults.
type TaskService interface {
	// CreateTask validates the title, stores a new pending task, and
	// returns it with its assigned ID. The store (including the ID
	// counter) is untouched when validation fails.
	CreateTask(ctx context.Context, title, description string) (*domain.Task, error)

	// GetTask retrieves a task by ID. The bool is false when the ID is
	// unknown.
	GetTask(ctx context.Context, id int64) (*domain.Task, bool, error)

	// ListTasks returns all tasks in creation order. An empty slice is
	// a valid result.
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// UpdateTask applies a partial update. A nil pointer leaves the
	// field unchanged; a non-nil description that trims to empty
	// clears it. A supplied title must validate, and a validation
	// failure leaves the task entirely unmodified. Returns false when
	// the ID is unknown.
	UpdateTask(ctx context.Context, id int64, title, description *string) (bool, error)

	// ToggleCompletion flips the completion flag. Returns false when
	// the ID is unknown.
	ToggleCompletion(ctx context.Context, id int64) (bool, error)

	// DeleteTask removes the task permanently. Returns true once,
	// false on every later call for the same ID.
	DeleteTask(ctx context.Context, id int64) (bool, error)
}
