package storage

import (
	"fmt"

	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/config"
)

// New selects a backend from config. The returned repositories share one
// underlying store.
func New(cfg *config.Config, logger internal.Logger) (MoodRepository, UserRepository, Closer, error) {
	switch cfg.DBType {
	case "file":
		s, err := NewFileStorage(cfg.DataDir, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return s, s, s, nil
	case "sqlite":
		s, err := NewSQLiteStorage(cfg.SQLitePath, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return s, s, s, nil
	case "postgres":
		s, err := NewPostgresStorage(cfg.DBDSN, logger)
		if err != nil {
			return nil, nil, nil, err
		}
		return s, s, s, nil
	default:
		return nil, nil, nil, fmt.Errorf("storage: unknown backend %q", cfg.DBType)
	}
}
