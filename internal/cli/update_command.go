package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// noChange is the placeholder users type to leave a field unchanged.
// It exists only at the shell layer; the service API takes nil pointers.
const noChange = "."

// UpdateCommand handles the update command
type UpdateCommand struct {
	service services.TaskService
	out     io.Writer
}

// NewUpdateCommand creates a new update command handler
func NewUpdateCommand(app *App) *UpdateCommand {
	return &UpdateCommand{service: app.service, out: app.out}
}

// Execute runs the update command. Usage:
// update <id> <title|.> [description...|.]
func (c *UpdateCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return errors.NewInvalidInputError("arguments", strings.Join(args, " "),
			"please provide a task ID and at least one field to update")
	}

	id, err := parseTaskID(args[0])
	if err != nil {
		return err
	}

	var title *string
	if args[1] != noChange {
		title = &args[1]
	}

	var description *string
	if len(args) > 2 && args[2] != noChange {
		joined := strings.Join(args[2:], " ")
		description = &joined
	}

	updated, err := c.service.UpdateTask(ctx, id, title, description)
	if err != nil {
		return err
	}
	if !updated {
		fmt.Fprintf(c.out, "Task with ID %d not found.\n", id)
		return nil
	}

	fmt.Fprintf(c.out, "✓ Updated task %d\n", id)
	return nil
}
