package config

import (
	"fmt"

	"todo-tracker/internal/logging"
	"todo-tracker/internal/repository"
	"todo-tracker/internal/repository/memory"
	"todo-tracker/internal/repository/sqlite"
)

// CreateRepository creates a repository instance using the configuration system
func CreateRepository(config *Config) (repository.Repository, error) {
	switch config.Storage.Backend {
	case BackendMemory:
		logging.Debugln("using in-memory task repository")
		return memory.New(), nil
	case BackendSQLite:
		logging.Debugf("using sqlite task repository: %s\n", config.Storage.DSN)
		repo, err := sqlite.New(config.Storage.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		return repo, nil
	default:
		return nil, &ConfigError{Field: "storage.backend", Message: fmt.Sprintf("unknown storage backend: %s", config.Storage.Backend)}
	}
}

// CreateTestRepository creates an in-memory repository for testing
func CreateTestRepository() repository.Repository {
	return memory.New()
}
