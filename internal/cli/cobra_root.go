package cli

import (
	"github.com/spf13/cobra"

	"todo-tracker/internal/config"
	"todo-tracker/internal/services"
)

// RootCommand represents the base command that launches the interactive shell
type RootCommand struct {
	cmd *cobra.Command
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand() *RootCommand {
	root := &RootCommand{}

	root.cmd = &cobra.Command{
		Use:   "todo",
		Short: "An interactive command-line task tracker",
		Long: `Todo is an interactive command-line application for tracking tasks.

It starts a shell that accepts line-oriented commands:
  add <title> [description]     # Add a new task
  list                          # List all tasks
  show <id>                     # Show details of a specific task
  update <id> <title|.> [desc|.] # Update a task ('.' leaves a field unchanged)
  complete <id>                 # Toggle a task between pending and completed
  delete <id>                   # Delete a task
  help                          # Show the in-shell help
  quit                          # Exit

CONFIGURATION:
  Configuration follows this priority order:
  command-line flags > environment variables > config files > defaults

  Config files: ~/.todo/config.toml, then ./todo.toml or ./.todo.toml

  Storage Configuration:
    TODO_STORAGE_BACKEND                   Storage backend: memory or sqlite (default: memory)
    TODO_STORAGE_DSN                       SQLite DSN (default: :memory:)

  Validation Configuration:
    TODO_VALIDATION_TITLE_MIN              Min task title length (default: 1)
    TODO_VALIDATION_TITLE_MAX              Max task title length (default: 255)

  Shell Configuration:
    TODO_SHELL_PROMPT                      Shell prompt (default: "todo> ")

  Application Configuration:
    TODO_APP_VERBOSE                       Enable verbose output (default: false)
    TODO_DEBUG                             Enable debug logging when set`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          root.run,
	}

	root.addGlobalFlags()

	return root
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addGlobalFlags adds global configuration flags
func (r *RootCommand) addGlobalFlags() {
	flags := r.cmd.Flags()

	// Storage configuration
	flags.String("backend", "", "Storage backend: memory or sqlite (overrides TODO_STORAGE_BACKEND)")
	flags.String("dsn", "", "SQLite DSN (overrides TODO_STORAGE_DSN)")

	// Validation configuration
	flags.Int("title-min-length", 0, "Minimum task title length (overrides TODO_VALIDATION_TITLE_MIN)")
	flags.Int("title-max-length", 0, "Maximum task title length (overrides TODO_VALIDATION_TITLE_MAX)")

	// Shell configuration
	flags.String("prompt", "", "Shell prompt (overrides TODO_SHELL_PROMPT)")

	// Application configuration
	flags.Bool("verbose", false, "Enable verbose output (overrides TODO_APP_VERBOSE)")
}

// run wires configuration, storage, and the service together and
// starts the shell
func (r *RootCommand) run(cmd *cobra.Command, args []string) error {
	cfg, err := config.NewLoader().LoadWithOverrides(overridesFromFlags(cmd))
	if err != nil {
		return err
	}

	repo, err := config.CreateRepository(cfg)
	if err != nil {
		return err
	}
	defer repo.Close()

	service := services.NewTaskServiceWithConfig(repo, cfg)
	app := NewApp(service, cfg)

	return app.Run(cmd.Context())
}

// overridesFromFlags collects the flags the user actually set
func overridesFromFlags(cmd *cobra.Command) *config.ConfigOverrides {
	overrides := &config.ConfigOverrides{}
	flags := cmd.Flags()

	if flags.Changed("backend") {
		backend, _ := flags.GetString("backend")
		overrides.Backend = &backend
	}
	if flags.Changed("dsn") {
		dsn, _ := flags.GetString("dsn")
		overrides.DSN = &dsn
	}
	if flags.Changed("title-min-length") {
		minLen, _ := flags.GetInt("title-min-length")
		overrides.TitleMinLength = &minLen
	}
	if flags.Changed("title-max-length") {
		maxLen, _ := flags.GetInt("title-max-length")
		overrides.TitleMaxLength = &maxLen
	}
	if flags.Changed("prompt") {
		prompt, _ := flags.GetString("prompt")
		overrides.Prompt = &prompt
	}
	if flags.Changed("verbose") {
		verbose, _ := flags.GetBool("verbose")
		overrides.Verbose = &verbose
	}

	return overrides
}
