// Package sqlite provides the SQLite-backed task repository. The
// default DSN is :memory:, so nothing outlives the process unless the
// operator points the backend at a file.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"todo-tracker/internal/domain"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// SQLiteRepository implements the repository interface on SQLite.
// The tasks table uses AUTOINCREMENT, so IDs are sequential from 1 and
// never reused after a delete.
type SQLiteRepository struct {
	db     *sql.DB
	mapper *TaskMapper
}

// New creates a new SQLite repository instance
func New(dsn string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	// Run migrations
	if err := migrations.RunMigrations(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, mapper: NewTaskMapper()}, nil
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTask creates a new task and assigns its ID from the database
func (r *SQLiteRepository) CreateTask(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (title, description, completed) VALUES (?, ?, ?)`

	dbTask := r.mapper.ToDatabase(*task)
	id, err := ExecuteWithLastInsertID(ctx, r.db, query, dbTask.Title, dbTask.Description, dbTask.Completed)
	if err != nil {
		return err
	}

	task.ID = id
	return nil
}

// GetTask retrieves a task by ID
func (r *SQLiteRepository) GetTask(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT id, title, description, completed FROM tasks WHERE id = ?`

	dbTask, err := QuerySingle(ctx, r.db, query, ScanTask, "task", fmt.Sprintf("%d", id), id)
	if err != nil {
		return nil, err
	}

	task := r.mapper.FromDatabase(*dbTask)
	return &task, nil
}

// ListTasks retrieves all tasks in creation order
func (r *SQLiteRepository) ListTasks(ctx context.Context) ([]*domain.Task, error) {
	query := `SELECT id, title, description, completed FROM tasks ORDER BY id ASC`

	dbTasks, err := QueryMultiple(ctx, r.db, query, ScanTasks, "tasks")
	if err != nil {
		return nil, err
	}

	return r.mapper.FromDatabaseSlice(dbTasks), nil
}

// UpdateTask overwrites an existing task
func (r *SQLiteRepository) UpdateTask(ctx context.Context, task *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, completed = ? WHERE id = ?`

	dbTask := r.mapper.ToDatabase(*task)
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", task.ID),
		dbTask.Title, dbTask.Description, dbTask.Completed, dbTask.ID)
}

// DeleteTask deletes a task by ID
func (r *SQLiteRepository) DeleteTask(ctx context.Context, id int64) error {
	query := `DELETE FROM tasks WHERE id = ?`
	return ExecuteWithRowsAffected(ctx, r.db, query, "task", fmt.Sprintf("%d", id), id)
}
