package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo-tracker/internal/errors"
	"todo-tracker/internal/services"
)

// AddCommand handles the add command
type AddCommand struct {
	service services.TaskService
	out     io.Writer
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{service: app.service, out: app.out}
}

// Execute runs the add command. The first argument is the title, any
// remaining arguments are joined into the description.
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.NewInvalidInputError("title", "", "please provide a title for the task")
	}

	title := args[0]
	description := strings.Join(args[1:], " ")

	task, err := c.service.CreateTask(ctx, title, description)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "✓ Added task: [%d] %s\n", task.ID, task.Title)
	return nil
}
