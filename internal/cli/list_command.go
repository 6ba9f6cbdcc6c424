package cli

import (
	"context"
	"fmt"
	"io"

	"todo-tracker/internal/services"
)

// ListCommand handles the list command
type ListCommand struct {
	service services.TaskService
	out     io.Writer
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{service: app.service, out: app.out}
}

// Execute runs the list command, printing one line per task in
// creation order.
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	tasks, err := c.service.ListTasks(ctx)
	if err != nil {
		return err
	}

	if len(tasks) == 0 {
		fmt.Fprintln(c.out, "No tasks found.")
		return nil
	}

	fmt.Fprintln(c.out, "\nYOUR TASKS:")
	for _, task := range tasks {
		fmt.Fprintf(c.out, "  %s\n", task)
	}
	fmt.Fprintln(c.out)
	return nil
}
