package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/krishemitra/krishi/internal/common"
	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/session"
	"github.com/krishemitra/krishi/internal/tui/components"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

// View identifies which screen is active.
type View int

// Screens. Login is the only view reachable without an authenticated
// farmer; every other view requires one.
const (
	ViewLogin View = iota
	ViewDashboard
	ViewForm
	ViewResults
	ViewProfile
)

// Model is the root TUI state: the active view plus one sub-model per
// screen. All cross-screen transitions happen here, driven by the
// exported messages the screens emit.
type Model struct {
	theme   themes.Theme
	keymap  KeyMap
	backend components.Backend
	session *session.Store

	lang   i18n.Language
	farmer model.Farmer
	view   View

	login     components.LoginModel
	dashboard components.DashboardModel
	form      components.FormModel
	results   components.ResultsModel
	profile   components.ProfileModel

	width    int
	height   int
	quitting bool
}

// newModel creates the root model. When a farmer session was restored
// the app opens directly on the dashboard.
func newModel(cfg Config) Model {
	m := Model{
		theme:   cfg.Theme,
		keymap:  DefaultKeyMap(),
		backend: cfg.Backend,
		session: cfg.Session,
		lang:    cfg.Language,
		view:    ViewLogin,
	}
	m.login = components.NewLoginModel(cfg.Backend, cfg.Language, cfg.Theme)

	if cfg.Farmer != nil {
		m.farmer = *cfg.Farmer
		m.dashboard = components.NewDashboardModel(cfg.Backend, m.farmer, cfg.Language, cfg.Theme)
		m.view = ViewDashboard
	}
	return m
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.EnterAltScreen}
	if m.view == ViewDashboard {
		cmds = append(cmds, m.dashboard.Activate())
	}
	return tea.Batch(cmds...)
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, newModel, cmd := m.handleGlobalKeys(msg); handled {
			return newModel, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		// Every screen tracks its own size.
		return m.broadcast(msg)

	case components.LoginSuccessMsg:
		return m.handleLogin(msg)

	case components.LogoutMsg:
		return m.reset()

	case components.NewRecommendationMsg:
		m.form = components.NewFormModel(m.backend, m.farmer, m.lang, m.theme)
		m.view = ViewForm
		return m, m.form.Activate()

	case components.OpenProfileMsg:
		m.profile = components.NewProfileModel(m.farmer, m.lang, m.theme)
		m.view = ViewProfile
		return m, nil

	case components.OpenRecommendationMsg:
		m.results = components.NewResultsModel(msg.Recommendation, m.lang, m.theme)
		m.view = ViewResults
		return m, nil

	case components.RecommendationReadyMsg:
		m.results = components.NewResultsModel(msg.Recommendation, m.lang, m.theme)
		m.view = ViewResults
		return m, nil

	case components.ProfileSavedMsg:
		m.farmer = msg.Farmer
		if err := m.session.SaveFarmer(m.farmer); err != nil {
			common.LogError(err, "failed to persist farmer", common.Fields{"mobile": m.farmer.Mobile})
		}
		m.dashboard.SetFarmer(m.farmer)
		return m, nil

	case components.BackMsg:
		m.view = ViewDashboard
		return m, m.dashboard.Activate()
	}

	return m.delegate(msg)
}

// handleGlobalKeys handles keys that work in any view. The bool result
// reports whether the key was consumed.
func (m Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.ForceQuit):
		m.quitting = true
		return true, m, tea.Quit

	case key.Matches(msg, m.keymap.ClearScreen):
		return true, m, tea.ClearScreen

	case key.Matches(msg, m.keymap.ToggleLanguage):
		newModel, cmd := m.toggleLanguage()
		return true, newModel, cmd

	case key.Matches(msg, m.keymap.Logout):
		if m.view != ViewLogin {
			newModel, cmd := m.reset()
			return true, newModel, cmd
		}

	case key.Matches(msg, m.keymap.Back):
		switch m.view {
		case ViewForm, ViewResults:
			m.view = ViewDashboard
			return true, m, m.dashboard.Activate()
		case ViewProfile:
			// While the edit form is open esc stays local so it can
			// discard the edits instead of leaving the screen.
			if !m.profile.Editing() {
				m.view = ViewDashboard
				return true, m, m.dashboard.Activate()
			}
		}
	}

	return false, m, nil
}

func (m Model) handleLogin(msg components.LoginSuccessMsg) (tea.Model, tea.Cmd) {
	m.farmer = msg.Farmer
	m.lang = msg.Language

	if err := m.session.SaveFarmer(m.farmer); err != nil {
		common.LogError(err, "failed to persist session", common.Fields{"mobile": m.farmer.Mobile})
	}

	m.dashboard = components.NewDashboardModel(m.backend, m.farmer, m.lang, m.theme)
	m.view = ViewDashboard
	return m, m.dashboard.Activate()
}

// reset is the single logout transition: the persisted farmer and all
// screen state are dropped, the language preference is kept.
func (m Model) reset() (tea.Model, tea.Cmd) {
	if err := m.session.Clear(); err != nil {
		common.LogError(err, "failed to clear session", nil)
	}

	m.farmer = model.Farmer{}
	m.login = components.NewLoginModel(m.backend, m.lang, m.theme)
	m.dashboard = components.DashboardModel{}
	m.form = components.FormModel{}
	m.results = components.ResultsModel{}
	m.profile = components.ProfileModel{}
	m.view = ViewLogin
	return m, nil
}

func (m Model) toggleLanguage() (tea.Model, tea.Cmd) {
	m.lang = m.lang.Toggle()
	if err := m.session.SaveLanguage(m.lang); err != nil {
		common.LogError(err, "failed to persist language", common.Fields{"language": string(m.lang)})
	}

	m.login.SetLanguage(m.lang)
	m.dashboard.SetLanguage(m.lang)
	m.form.SetLanguage(m.lang)
	m.results.SetLanguage(m.lang)
	m.profile.SetLanguage(m.lang)
	return m, nil
}

// delegate routes a message to the active screen.
func (m Model) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case ViewLogin:
		m.login, cmd = m.login.Update(msg)
	case ViewDashboard:
		m.dashboard, cmd = m.dashboard.Update(msg)
	case ViewForm:
		m.form, cmd = m.form.Update(msg)
	case ViewResults:
		m.results, cmd = m.results.Update(msg)
	case ViewProfile:
		m.profile, cmd = m.profile.Update(msg)
	}
	return m, cmd
}

// broadcast sends a message to every screen.
func (m Model) broadcast(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.login, cmd = m.login.Update(msg)
	cmds = append(cmds, cmd)
	m.dashboard, cmd = m.dashboard.Update(msg)
	cmds = append(cmds, cmd)
	m.form, cmd = m.form.Update(msg)
	cmds = append(cmds, cmd)
	m.results, cmd = m.results.Update(msg)
	cmds = append(cmds, cmd)
	m.profile, cmd = m.profile.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch m.view {
	case ViewLogin:
		body = m.login.View()
	case ViewDashboard:
		body = m.dashboard.View()
	case ViewForm:
		body = m.form.View()
	case ViewResults:
		body = m.results.View()
	case ViewProfile:
		body = m.profile.View()
	}

	footer := m.theme.StatusPending.Render(
		"[ctrl+t] " + m.lang.Toggle().Label() + "  [ctrl+c] quit",
	)
	return body + "\n" + footer
}
