package cmd

import (
	"context"
	"errors"
	"fmt"

	"telehealth-portal/internal/data/repository"
	"telehealth-portal/pkg/database"
	"telehealth-portal/pkg/utils"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// env is the config and logger shared by every subcommand.
type env struct {
	config *utils.Config
	logger *zap.Logger
}

var errMemoryDriver = errors.New("command requires STORAGE_DRIVER=postgres")

// NewRootCmd creates the portal CLI.
func NewRootCmd() *cobra.Command {
	e := &env{}

	cmd := &cobra.Command{
		Use:           "portal",
		Short:         "Telehealth portal backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			config, err := utils.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			logger, err := utils.InitLogger(config.App.LogPath, config.App.Name, config.App.Debug)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}

			e.config = config
			e.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if e.logger != nil {
				_ = e.logger.Sync()
			}
		},
	}

	cmd.AddCommand(newServeCmd(e))
	cmd.AddCommand(newMigrateCmd(e))
	cmd.AddCommand(newSessionsCmd(e))

	return cmd
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// openRepository connects the configured storage driver. The returned
// closer releases the database pool, if any.
func (e *env) openRepository(ctx context.Context) (*repository.Repository, func(), error) {
	if e.config.App.StorageDriver == utils.DriverMemory {
		e.logger.Warn("Using in-memory storage, data will not survive a restart")
		return repository.NewMemoryRepository(e.config.Session.CleanupInterval, e.logger), func() {}, nil
	}

	db, err := database.InitDB(ctx, e.config.Database)
	if err != nil {
		return nil, nil, err
	}
	e.logger.Info("Database connected successfully",
		zap.String("host", e.config.Database.Host),
		zap.String("database", e.config.Database.Name))

	return repository.NewRepository(db, e.logger), db.Close, nil
}
