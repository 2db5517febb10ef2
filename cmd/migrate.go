package cmd

import (
	"telehealth-portal/internal/data/migrations"
	"telehealth-portal/pkg/database"
	"telehealth-portal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMigrateCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			if e.config.App.StorageDriver != utils.DriverPostgres {
				return errMemoryDriver
			}
			return nil
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(*cobra.Command, []string) error {
			return e.migrateUp()
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back all migrations (drops every table)",
		RunE: func(*cobra.Command, []string) error {
			return e.withMigrator(func(m *migrations.Migrator) error {
				return m.Down()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withMigrator(func(m *migrations.Migrator) error {
				version, dirty, err := m.Version()
				if err != nil {
					return err
				}
				cmd.Printf("version %d (dirty: %t)\n", version, dirty)
				return nil
			})
		},
	})

	return cmd
}

func (e *env) migrateUp() error {
	return e.withMigrator(func(m *migrations.Migrator) error {
		return m.Up()
	})
}

func (e *env) withMigrator(fn func(*migrations.Migrator) error) error {
	m, err := migrations.NewMigrator(database.MigrateURL(e.config.Database), e.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := m.Close(); err != nil {
			e.logger.Warn("Failed to close migrator", zap.Error(err))
		}
	}()

	return fn(m)
}
