package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/krishemitra/krishi/internal/api"
	"github.com/krishemitra/krishi/internal/common"
	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/session"
)

// openSessionStore opens the configured session database.
func openSessionStore() (*session.Store, error) {
	store, err := session.Open(sessionPath())
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}
	return store, nil
}

// historyCmd prints past recommendations without entering the TUI,
// for scripting and quick checks.
func historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Print your recommendation history",
		RunE: func(cmd *cobra.Command, _ []string) error {
			store, err := openSessionStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			farmer, ok, err := store.Farmer()
			if err != nil {
				return fmt.Errorf("failed to read session: %w", err)
			}
			if !ok {
				return common.NewUserError("not logged in - run krishi and log in first", common.ErrNoSession)
			}

			lang, err := store.Language()
			if err != nil {
				lang = i18n.English
			}

			client := api.NewClient(viper.GetString("backend.url"))
			history, err := client.History(cmd.Context(), farmer.Mobile)
			if err != nil {
				return fmt.Errorf("failed to fetch history: %w", err)
			}

			if len(history) == 0 {
				fmt.Fprintln(os.Stdout, i18n.T(lang, "noRecommendations"))
				return nil
			}

			for _, rec := range history {
				crop := i18n.Pick(lang, rec.EnglishName, rec.Crop)
				fmt.Fprintf(os.Stdout, "%-20s %-12s %6.1f %s  ₹%.0f  %s\n",
					crop, rec.SowingDate, rec.AreaSown, i18n.T(lang, "acres"),
					rec.TotalCost, rec.CreatedAt)
			}
			return nil
		},
	}
}
