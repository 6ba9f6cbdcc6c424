package config

import (
	"os"
	"strconv"
)

// Storage backend names accepted by the repository factory.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
)

// Config holds all configuration options for the todo application
type Config struct {
	Storage     StorageConfig     `toml:"storage"`
	Validation  ValidationConfig  `toml:"validation"`
	Shell       ShellConfig       `toml:"shell"`
	Application ApplicationConfig `toml:"application"`
}

// StorageConfig holds storage backend configuration
type StorageConfig struct {
	Backend string `toml:"backend" env:"TODO_STORAGE_BACKEND"`
	DSN     string `toml:"dsn" env:"TODO_STORAGE_DSN"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMinLength int `toml:"title_min_length" env:"TODO_VALIDATION_TITLE_MIN"`
	TitleMaxLength int `toml:"title_max_length" env:"TODO_VALIDATION_TITLE_MAX"`
}

// ShellConfig holds interactive shell configuration
type ShellConfig struct {
	Prompt string `toml:"prompt" env:"TODO_SHELL_PROMPT"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Verbose bool `toml:"verbose" env:"TODO_APP_VERBOSE"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: BackendMemory,
			DSN:     ":memory:",
		},
		Validation: ValidationConfig{
			TitleMinLength: 1,
			TitleMaxLength: 255,
		},
		Shell: ShellConfig{
			Prompt: "todo> ",
		},
		Application: ApplicationConfig{
			Verbose: false,
		},
	}
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Storage configuration
	if backend := os.Getenv("TODO_STORAGE_BACKEND"); backend != "" {
		c.Storage.Backend = backend
	}
	if dsn := os.Getenv("TODO_STORAGE_DSN"); dsn != "" {
		c.Storage.DSN = dsn
	}

	// Validation configuration
	if minLen := os.Getenv("TODO_VALIDATION_TITLE_MIN"); minLen != "" {
		if n, err := strconv.Atoi(minLen); err == nil {
			c.Validation.TitleMinLength = n
		}
	}
	if maxLen := os.Getenv("TODO_VALIDATION_TITLE_MAX"); maxLen != "" {
		if n, err := strconv.Atoi(maxLen); err == nil {
			c.Validation.TitleMaxLength = n
		}
	}

	// Shell configuration
	if prompt := os.Getenv("TODO_SHELL_PROMPT"); prompt != "" {
		c.Shell.Prompt = prompt
	}

	// Application configuration
	if verbose := os.Getenv("TODO_APP_VERBOSE"); verbose != "" {
		if b, err := strconv.ParseBool(verbose); err == nil {
			c.Application.Verbose = b
		}
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	// Validate storage configuration
	if c.Storage.Backend == "" {
		return &ConfigError{Field: "storage.backend", Message: "storage backend cannot be empty"}
	}
	if c.Storage.Backend != BackendMemory && c.Storage.Backend != BackendSQLite {
		return &ConfigError{Field: "storage.backend", Message: "storage backend must be 'memory' or 'sqlite'"}
	}
	if c.Storage.Backend == BackendSQLite && c.Storage.DSN == "" {
		return &ConfigError{Field: "storage.dsn", Message: "storage DSN cannot be empty for the sqlite backend"}
	}

	// Validate validation configuration
	if c.Validation.TitleMinLength < 1 {
		return &ConfigError{Field: "validation.title_min_length", Message: "title minimum length must be at least 1"}
	}
	if c.Validation.TitleMaxLength < c.Validation.TitleMinLength {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be greater than minimum length"}
	}

	// Validate shell configuration
	if c.Shell.Prompt == "" {
		return &ConfigError{Field: "shell.prompt", Message: "shell prompt cannot be empty"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
