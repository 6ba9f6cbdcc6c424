package cli

import (
	"context"
	"fmt"
	"io"
)

// HelpCommand handles the help command
type HelpCommand struct {
	out io.Writer
}

// NewHelpCommand creates a new help command handler
func NewHelpCommand(app *App) *HelpCommand {
	return &HelpCommand{out: app.out}
}

// Execute prints the help message showing available commands
func (c *HelpCommand) Execute(ctx context.Context, args []string) error {
	fmt.Fprintln(c.out, `
=== TODO TASK TRACKER ===
Available commands:
  add <title> [description]     - Add a new task
  list                          - List all tasks
  show <id>                     - Show details of a specific task
  update <id> <title|.> [desc|.] - Update a task ('.' leaves a field unchanged)
  complete <id>                 - Toggle a task between pending and completed
  delete <id>                   - Delete a task
  help                          - Show this help message
  quit                          - Exit the application
==================================`)
	return nil
}
