package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the saved login session",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := openSessionStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			slog.Info("Session cleared")
			return nil
		},
	}
}
