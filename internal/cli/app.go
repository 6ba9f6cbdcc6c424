package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"todo-tracker/internal/config"
	"todo-tracker/internal/errors"
	"todo-tracker/internal/logging"
	"todo-tracker/internal/services"
)

// App represents the interactive shell. It owns no domain logic: it
// reads lines, tokenizes them, dispatches to the task service through
// the command registry, and formats results.
type App struct {
	service      services.TaskService
	registry     *CommandRegistry
	errorHandler *ErrorHandler
	in           io.Reader
	out          io.Writer
	prompt       string
}

// NewApp creates a new shell instance reading from stdin and writing to stdout
func NewApp(service services.TaskService, cfg *config.Config) *App {
	return NewAppWithIO(service, cfg, os.Stdin, os.Stdout)
}

// NewAppWithIO creates a new shell instance with injected input and output streams
func NewAppWithIO(service services.TaskService, cfg *config.Config, in io.Reader, out io.Writer) *App {
	app := &App{
		service:      service,
		errorHandler: NewErrorHandler(),
		in:           in,
		out:          out,
		prompt:       cfg.Shell.Prompt,
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the read-eval-print loop until quit/exit or end of input.
// Command errors are printed and the loop continues; only input stream
// failures terminate with an error.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to the todo task tracker!")
	fmt.Fprintln(a.out, "Type 'help' for available commands.")

	scanner := bufio.NewScanner(a.in)
	for {
		fmt.Fprintf(a.out, "\n%s", a.prompt)

		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Fields(line)
		command := strings.ToLower(parts[0])
		args := parts[1:]

		if command == "quit" || command == "exit" {
			fmt.Fprintln(a.out, "Goodbye!")
			return nil
		}

		logging.Debugf("dispatching command: %s\n", command)
		if err := a.registry.Execute(ctx, command, args); err != nil {
			fmt.Fprintf(a.out, "Error: %s\n", a.errorHandler.UserMessage(err))
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	// End of input behaves like quit
	fmt.Fprintln(a.out, "\nGoodbye!")
	return nil
}

// parseTaskID converts a command argument to a task ID
func parseTaskID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, errors.NewInvalidInputError("task ID", arg, "must be a number")
	}
	return id, nil
}
