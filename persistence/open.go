package persistence

import (
	"fmt"

	"github.com/wfunc/hangman/config"
)

// Open builds the Store selected by cfg.Driver.
func Open(cfg config.StorageConfig) (Store, error) {
	switch cfg.Driver {
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		return OpenPostgres(cfg.Postgres.DSN())
	case config.DriverGorm:
		return NewGormPostgreSQL(cfg.Postgres.DSN())
	case config.DriverMemory:
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
