package cli

import (
	"context"
	"fmt"
	"io"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// ShowCommand handles the show command
type ShowCommand struct {
	service services.TaskService
	out     io.Writer
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{service: app.service, out: app.out}
}

// Execute runs the show command, printing the detailed rendering of a task
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.NewInvalidInputError("task ID", "", "please provide a task ID")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	task, found, err := c.service.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		fmt.Fprintf(c.out, "Task with ID %d not found.\n", id)
		return nil
	}

	fmt.Fprintln(c.out, "\nTASK DETAILS:")
	fmt.Fprint(c.out, task.DetailedString())
	return nil
}
