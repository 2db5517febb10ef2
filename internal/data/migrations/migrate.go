// Package migrations owns the database schema. SQL files are embedded so the
// binary can migrate without a checkout.
package migrations

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5" // registers the pgx5:// scheme
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed sql/*.sql
var migrationsFS embed.FS

// migrateIface is the subset of *migrate.Migrate the Migrator drives.
type migrateIface interface {
	Up() error
	Down() error
	Version() (version uint, dirty bool, err error)
	Close() (source error, database error)
}

type Migrator struct {
	m   migrateIface
	log *zap.Logger
}

// NewMigrator opens a migrator against databaseURL, which must use the
// pgx5:// scheme (see database.MigrateURL).
func NewMigrator(databaseURL string, log *zap.Logger) (*Migrator, error) {
	source, err := iofs.New(migrationsFS, "sql")
	if err != nil {
		return nil, fmt.Errorf("create migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, databaseURL)
	if err != nil {
		_ = source.Close()
		return nil, fmt.Errorf("initialize migrator: %w", err)
	}

	return &Migrator{m: m, log: log.With(zap.String("component", "migrator"))}, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up() error {
	err := m.m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		m.log.Info("Schema already up to date")
		return nil
	}
	if err != nil {
		m.log.Error("Failed to apply migrations", zap.Error(err))
		return fmt.Errorf("migrate up: %w", err)
	}

	m.log.Info("Migrations applied")
	return nil
}

// Down rolls back every migration. All portal data is dropped.
func (m *Migrator) Down() error {
	err := m.m.Down()
	if errors.Is(err, migrate.ErrNoChange) {
		return nil
	}
	if err != nil {
		m.log.Error("Failed to roll back migrations", zap.Error(err))
		return fmt.Errorf("migrate down: %w", err)
	}

	m.log.Info("Migrations rolled back")
	return nil
}

// Version returns the applied version; 0 means nothing has been applied.
func (m *Migrator) Version() (uint, bool, error) {
	version, dirty, err := m.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migrate version: %w", err)
	}
	return version, dirty, nil
}

func (m *Migrator) Close() error {
	srcErr, dbErr := m.m.Close()
	if srcErr != nil {
		return fmt.Errorf("close migration source: %w", srcErr)
	}
	if dbErr != nil {
		return fmt.Errorf("close migration database: %w", dbErr)
	}
	return nil
}
