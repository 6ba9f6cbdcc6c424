package domain

import (
	"fmt"
	"strings"

	"todo-tracker/internal/errors"
)

// Task represents a single to-do item in the domain model.
// IDs are assigned by the storage layer on insert and never change
// afterwards. An empty Description means the task has none.
type Task struct {
	ID          int64
	Title       string
	Description string
	Completed   bool
}

// NewTask creates a new pending Task with the given title and optional
// description. The title must be non-empty after trimming; the
// description is trimmed and a whitespace-only value is stored as absent.
func NewTask(title, description string) (*Task, error) {
	task := &Task{}
	if err := task.Rename(title); err != nil {
		return nil, err
	}
	task.SetDescription(description)
	return task, nil
}

// Rename replaces the task title with the trimmed value. It fails
// without modifying the task when the title trims to empty.
func (t *Task) Rename(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return errors.NewValidationError("task title cannot be empty", nil)
	}
	t.Title = trimmed
	return nil
}

// SetDescription replaces the task description with the trimmed value.
// A value that trims to empty clears the description.
func (t *Task) SetDescription(description string) {
	t.Description = strings.TrimSpace(description)
}

// HasDescription reports whether the task has a description.
func (t *Task) HasDescription() bool {
	return t.Description != ""
}

// ToggleCompletion flips the completion flag.
func (t *Task) ToggleCompletion() {
	t.Completed = !t.Completed
}

// Status returns the display word for the completion state.
func (t *Task) Status() string {
	if t.Completed {
		return "Completed"
	}
	return "Pending"
}

// String returns the one-line rendering of the task.
func (t *Task) String() string {
	marker := "○"
	if t.Completed {
		marker = "✓"
	}
	return fmt.Sprintf("[%s] %d: %s", marker, t.ID, t.Title)
}

// DetailedString returns the multi-line rendering of the task. The
// description line is present only when the task has one.
func (t *Task) DetailedString() string {
	var b strings.Builder
	fmt.Fprintf(&b, "ID: %d\n", t.ID)
	fmt.Fprintf(&b, "Title: %s\n", t.Title)
	fmt.Fprintf(&b, "Status: %s\n", t.Status())
	if t.HasDescription() {
		fmt.Fprintf(&b, "Description: %s\n", t.Description)
	}
	return b.String()
}
