package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/session"
	"github.com/krishemitra/krishi/internal/tui/components"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

// Config holds the dependencies of the TUI.
type Config struct {
	Backend  components.Backend
	Session  *session.Store
	Farmer   *model.Farmer // non-nil when a session was restored
	Theme    themes.Theme
	Language i18n.Language
}

// Run starts the TUI and blocks until the user quits.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Backend == nil {
		return fmt.Errorf("backend is required")
	}
	if cfg.Session == nil {
		return fmt.Errorf("session store is required")
	}

	p := tea.NewProgram(
		newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
