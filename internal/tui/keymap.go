package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Actions
	Select     key.Binding
	Back       key.Binding
	NewPlan    key.Binding
	Profile    key.Binding
	EditField  key.Binding
	SaveReport key.Binding
	Retry      key.Binding

	// Session
	SwitchTab      key.Binding
	ToggleLanguage key.Binding
	Logout         key.Binding

	// Application
	ForceQuit   key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "next option"),
		),

		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "select/submit"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("Esc", "back"),
		),
		NewPlan: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new recommendation"),
		),
		Profile: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "profile"),
		),
		EditField: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		SaveReport: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save report"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),

		SwitchTab: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "switch login/signup"),
		),
		ToggleLanguage: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("Ctrl+T", "switch language"),
		),
		Logout: key.NewBinding(
			key.WithKeys("ctrl+d"),
			key.WithHelp("Ctrl+D", "logout"),
		),

		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "quit"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "clear screen"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Select, k.Back, k.ToggleLanguage, k.ForceQuit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Back, k.NewPlan, k.Profile},
		{k.SwitchTab, k.ToggleLanguage, k.Logout},
		{k.SaveReport, k.Retry, k.ForceQuit},
	}
}
