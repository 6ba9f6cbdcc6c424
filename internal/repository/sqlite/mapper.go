package sqlite

import (
	"todo-tracker/internal/domain"
)

// TaskMapper handles conversion between domain and database Task models.
type TaskMapper struct{}

// NewTaskMapper creates a new TaskMapper instance.
func NewTaskMapper() *TaskMapper {
	return &TaskMapper{}
}

// ToDatabase converts a domain Task to a database Task.
func (m *TaskMapper) ToDatabase(domainTask domain.Task) Task {
	dbTask := Task{
		ID:        domainTask.ID,
		Title:     domainTask.Title,
		Completed: domainTask.Completed,
	}
	if domainTask.Description != "" {
		description := domainTask.Description
		dbTask.Description = &description
	}
	return dbTask
}

// FromDatabase converts a database Task to a domain Task.
func (m *TaskMapper) FromDatabase(dbTask Task) domain.Task {
	domainTask := domain.Task{
		ID:        dbTask.ID,
		Title:     dbTask.Title,
		Completed: dbTask.Completed,
	}
	if dbTask.Description != nil {
		domainTask.Description = *dbTask.Description
	}
	return domainTask
}

// FromDatabaseSlice converts a slice of database Tasks to domain Tasks.
func (m *TaskMapper) FromDatabaseSlice(dbTasks []*Task) []*domain.Task {
	domainTasks := make([]*domain.Task, len(dbTasks))
	for i, dbTask := range dbTasks {
		domainTask := m.FromDatabase(*dbTask)
		domainTasks[i] = &domainTask
	}
	return domainTasks
}
