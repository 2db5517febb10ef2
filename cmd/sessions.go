package cmd

import (
	"fmt"

	"telehealth-portal/internal/usecase"
	"telehealth-portal/pkg/utils"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func newSessionsCmd(e *env) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sessions",
		Short: "Maintain stored sessions",
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
		Use:   "prune",
		Short: "Delete sessions that expired more than a week ago",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return e.withSessions(cmd, func(sessions usecase.SessionService) error {
				n, err := sessions.Prune(cmd.Context())
				if err != nil {
					return err
				}
				cmd.Printf("pruned %d sessions\n", n)
				return nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "revoke <user-id>",
		Short: "Revoke every active session of a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid user id %q: %w", args[0], err)
			}

			return e.withSessions(cmd, func(sessions usecase.SessionService) error {
				if err := sessions.RevokeUser(cmd.Context(), userID); err != nil {
					return err
				}
				cmd.Printf("revoked sessions of %s\n", userID)
				return nil
			})
		},
	})

	return cmd
}

func (e *env) withSessions(cmd *cobra.Command, fn func(usecase.SessionService) error) error {
	repo, closeRepo, err := e.openRepository(cmd.Context())
	if err != nil {
		return err
	}
	defer closeRepo()

	return fn(usecase.NewSessionService(repo.Session, e.config.Session, e.logger))
}
