package cli

import (
	"context"
	"fmt"
	"io"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// CompleteCommand handles the complete command
type CompleteCommand struct {
	service services.TaskService
	out     io.Writer
}

// NewCompleteCommand creates a new complete command handler
func NewCompleteCommand(app *App) *CompleteCommand {
	return &CompleteCommand{service: app.service, out: app.out}
}

// Execute runs the complete command, toggling a task between pending
// and completed.
func (c *CompleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("task ID", "", "please provide a task ID")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	// Remember the previous state so the confirmation names the transition
	task, found, err := c.service.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(c.out, "Task with ID %d not found.\n", id)
		return nil
	}
	wasCompleted := task.Completed

	toggled, err := c.service.ToggleCompletion(ctx, id)
	if err != nil {
		return err
	}
	if !toggled {
		fmt.Fprintf(c.out, "Task with ID %d not found.\n", id)
		return nil
	}

	status := "completed"
	if wasCompleted {
		status = "marked incomplete"
	}
	fmt.Fprintf(c.out, "✓ Task %d %s\n", id, status)
	return nil
}
