package store

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/symptom-guidance-server/internal/domain"
)

// New creates the store backend named by the configuration.
func New(config domain.StoreConfig, logger *logrus.Logger) (domain.Store, error) {
	switch config.Backend {
	case "sqlite", "":
		return NewSQLiteStore(config.SQLitePath)
	case "redis":
		return NewRedisStore(config, logger)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store backend: %s", config.Backend)
	}
}
