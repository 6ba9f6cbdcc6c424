// Package repository defines the storage contract shared by the
// in-memory and SQLite task repositories.
package repository

import (
	"context"

	"todo-tracker/internal/domain"
)

// Repository defines the interface for task storage operations.
// Implementations assign the task ID on create; IDs are never reused,
// even after a delete. ListTasks returns tasks in creation order.
// Lookups for unknown IDs return a not found error from the errors
// package; callers that want not-found as a plain result translate it.
type Repository interface {
	// Create operations
	CreateTask(ctx context.Context, task *domain.Task) error

	// Read operations
	GetTask(ctx context.Context, id int64) (*domain.Task, error)
	ListTasks(ctx context.Context) ([]*domain.Task, error)

	// Update operations
	UpdateTask(ctx context.Context, task *domain.Task) error

	// Delete operations
	DeleteTask(ctx context.Context, id int64) error

	// Utility
	Close() error
}
