package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/krishemitra/krishi/internal/api"
	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/session"
	"github.com/krishemitra/krishi/internal/tui"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

// runTUI is the root command: restore any saved session and start the
// interactive client.
func runTUI(cmd *cobra.Command, _ []string) error {
	store, err := session.Open(sessionPath())
	if err != nil {
		return fmt.Errorf("failed to open session store: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("failed to close session store", "error", closeErr)
		}
	}()

	lang, err := store.Language()
	if err != nil {
		slog.Warn("failed to load language preference", "error", err)
		lang = i18n.English
	}

	// A corrupt saved farmer record falls back to the login screen
	// rather than blocking startup.
	var farmer *model.Farmer
	saved, ok, err := store.Farmer()
	switch {
	case err != nil:
		slog.Warn("failed to restore session", "error", err)
	case ok:
		farmer = &saved
		slog.Debug("restored session", "mobile", saved.Mobile)
	}

	cfg := tui.Config{
		Backend:  api.NewClient(viper.GetString("backend.url")),
		Session:  store,
		Farmer:   farmer,
		Theme:    themes.GetTheme(viper.GetString("ui.theme")),
		Language: lang,
	}
	return tui.Run(cmd.Context(), cfg)
}
