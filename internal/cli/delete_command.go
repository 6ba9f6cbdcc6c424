package cli

import (
	"context"
	"fmt"
	"io"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// DeleteCommand handles the delete command
type DeleteCommand struct {
	service services.TaskService
	out     io.Writer
}

// NewDeleteCommand creates a new delete command handler
func NewDeleteCommand(app *App) *DeleteCommand {
	return &DeleteCommand{service: app.service, out: app.out}
}

// Execute runs the delete command
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("task ID", "", "please provide a task ID")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	deleted, err := c.service.DeleteTask(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		fmt.Fprintf(c.out, "Task with ID %d not found.\n", id)
		return nil
	}

	fmt.Fprintf(c.out, "✓ Deleted task %d\n", id)
	return nil
}
