package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

// historyMsg carries the farmer's recommendation history.
type historyMsg struct {
	err   error
	items []model.Recommendation
	gen   int
}

// weatherMsg carries the dashboard weather snapshot. A fetch failure
// never produces this message: weather is optional and failure leaves
// the card absent.
type weatherMsg struct {
	weather model.Weather
	gen     int
}

// DashboardModel is the home screen: a weather card for the farmer's
// own mandal and the recommendation history, newest first.
type DashboardModel struct {
	backend Backend
	theme   themes.Theme
	lang    i18n.Language
	farmer  model.Farmer

	history []model.Recommendation
	weather *model.Weather
	cursor  int

	spinner spinner.Model
	phase   phase
	errText string
	gen     int
	width   int
	height  int
}

// NewDashboardModel creates the dashboard for a logged-in farmer.
func NewDashboardModel(backend Backend, farmer model.Farmer, lang i18n.Language, theme themes.Theme) DashboardModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return DashboardModel{
		backend: backend,
		theme:   theme,
		lang:    lang,
		farmer:  farmer,
		spinner: s,
		phase:   phaseIdle,
	}
}

// SetLanguage switches the UI language.
func (m *DashboardModel) SetLanguage(lang i18n.Language) {
	m.lang = lang
}

// SetFarmer replaces the farmer record after a profile edit.
func (m *DashboardModel) SetFarmer(farmer model.Farmer) {
	m.farmer = farmer
}

// Activate starts the dashboard data fetch. Called every time the
// screen becomes visible so the history reflects recommendations made
// since the last visit.
func (m *DashboardModel) Activate() tea.Cmd {
	m.phase = phaseLoading
	m.errText = ""
	m.weather = nil
	m.gen = nextGen()
	return tea.Batch(m.spinner.Tick, m.fetchHistory(m.gen), m.fetchWeather(m.gen))
}

func (m DashboardModel) fetchHistory(gen int) tea.Cmd {
	backend := m.backend
	mobile := m.farmer.Mobile
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		items, err := backend.History(ctx, mobile)
		return historyMsg{gen: gen, items: items, err: err}
	}
}

func (m DashboardModel) fetchWeather(gen int) tea.Cmd {
	backend := m.backend
	district, mandal := m.farmer.District, m.farmer.Mandal
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		w, err := backend.Weather(ctx, district, mandal)
		if err != nil {
			// Weather is decoration, not data the farmer acts on
			// from here. The dashboard renders without the card.
			return nil
		}
		return weatherMsg{gen: gen, weather: w}
	}
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case historyMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		if msg.err != nil {
			m.phase = phaseError
			m.errText = backendMessage(msg.err, i18n.T(m.lang, "error"))
			return m, nil
		}
		m.phase = phaseLoaded
		m.history = msg.items
		if m.cursor >= len(m.history) {
			m.cursor = 0
		}
		return m, nil

	case weatherMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		w := msg.weather
		m.weather = &w
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m DashboardModel) handleKey(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case "down", "j":
		if m.cursor < len(m.history)-1 {
			m.cursor++
		}
		return m, nil

	case "enter":
		if m.phase == phaseLoaded && len(m.history) > 0 {
			rec := m.history[m.cursor]
			return m, func() tea.Msg { return OpenRecommendationMsg{Recommendation: rec} }
		}
		return m, nil

	case "n":
		return m, func() tea.Msg { return NewRecommendationMsg{} }

	case "p":
		return m, func() tea.Msg { return OpenProfileMsg{} }

	case "r":
		if m.phase == phaseError {
			cmd := m.Activate()
			return m, cmd
		}
		return m, nil
	}

	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	t := func(key string) string { return i18n.T(m.lang, key) }

	header := m.theme.Header.Render("🌾 "+t("appName")) + " " +
		m.theme.Subtitle.Render(t("welcome")+", "+m.farmer.Name)

	sections := []string{header, ""}

	if card := m.weatherCard(); card != "" {
		sections = append(sections, card, "")
	}

	sections = append(sections, m.theme.Title.Render(t("recentRecommendations")))

	switch m.phase {
	case phaseLoading:
		sections = append(sections, m.spinner.View()+" "+t("loading"))

	case phaseError:
		sections = append(sections,
			m.theme.StatusError.Render(m.errText),
			m.theme.StatusPending.Render("[r] "+t("retry")),
		)

	case phaseLoaded:
		if len(m.history) == 0 {
			sections = append(sections,
				m.theme.Normal.Render(t("noRecommendations")),
				m.theme.StatusPending.Render(t("startFirstPlan")),
			)
		} else {
			for i, rec := range m.history {
				sections = append(sections, m.historyLine(i, rec))
			}
		}
	}

	sections = append(sections, "",
		m.theme.StatusPending.Render(
			"[n] "+t("getNewRecommendation")+"  [p] "+t("profile")+"  [ctrl+d] "+t("logout"),
		),
	)

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m DashboardModel) weatherCard() string {
	if m.weather == nil {
		return ""
	}
	t := func(key string) string { return i18n.T(m.lang, key) }
	w := m.weather

	var b strings.Builder
	b.WriteString(m.theme.Bold.Render(themes.GetWeatherIcon(w.Main) + " " + t("currentWeather")))
	if w.Location != "" {
		b.WriteString(m.theme.StatusPending.Render("  " + w.Location))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("%.1f°C  %s  %s %d%%", w.Temperature, w.Description, t("humidity"), w.Humidity))
	if w.Rain3h > 0 {
		b.WriteString(fmt.Sprintf("  %s %.1fmm", t("rainfall"), w.Rain3h))
	}

	return m.theme.BorderedBox.Render(b.String())
}

func (m DashboardModel) historyLine(i int, rec model.Recommendation) string {
	crop := i18n.Pick(m.lang, rec.EnglishName, rec.Crop)
	if crop == "" {
		crop = rec.Crop
	}

	line := fmt.Sprintf("%s  %s · %.1f %s · ₹%.0f",
		crop, rec.SowingDate, rec.AreaSown, i18n.T(m.lang, "acres"), rec.TotalCost)
	if rec.CreatedAt != "" {
		line += "  " + rec.CreatedAt
	}

	if i == m.cursor {
		return m.theme.Selected.Render(" " + line + " ")
	}
	return m.theme.Normal.Render("  " + line)
}

// History returns the loaded history, for tests.
func (m DashboardModel) History() []model.Recommendation {
	return m.history
}

// Weather returns the loaded weather snapshot, nil when unavailable.
func (m DashboardModel) Weather() *model.Weather {
	return m.weather
}

// Err returns the currently displayed error text.
func (m DashboardModel) Err() string {
	return m.errText
}
