package components

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

// reportSavedMsg carries the outcome of writing a plain-text report.
type reportSavedMsg struct {
	err  error
	path string
}

// ResultsModel displays one recommendation in full: the fertilizer
// table, weather advice, the stage schedule accordion, organic
// alternatives and purchase pointers.
type ResultsModel struct {
	rec      model.Recommendation
	schedule ScheduleModel
	theme    themes.Theme
	lang     i18n.Language

	savedPath string
	errText   string
	width     int
	height    int
}

// NewResultsModel creates the results screen for one recommendation.
func NewResultsModel(rec model.Recommendation, lang i18n.Language, theme themes.Theme) ResultsModel {
	return ResultsModel{
		rec:      rec,
		schedule: NewScheduleModel(rec.StageSchedule, lang, theme),
		theme:    theme,
		lang:     lang,
	}
}

// SetLanguage switches the UI language.
func (m *ResultsModel) SetLanguage(lang i18n.Language) {
	m.lang = lang
	m.schedule.SetLanguage(lang)
}

// Recommendation returns the displayed recommendation.
func (m ResultsModel) Recommendation() model.Recommendation {
	return m.rec
}

// Update handles messages.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case reportSavedMsg:
		if msg.err != nil {
			m.errText = msg.err.Error()
			return m, nil
		}
		m.savedPath = msg.path
		m.errText = ""
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			m.schedule.MoveCursor(-1)
			return m, nil
		case "down", "j":
			m.schedule.MoveCursor(1)
			return m, nil
		case "enter", " ":
			m.schedule.Toggle()
			return m, nil
		case "s":
			rec := m.rec
			lang := m.lang
			return m, func() tea.Msg {
				path, err := WriteReport(rec, lang)
				return reportSavedMsg{path: path, err: err}
			}
		}
	}

	return m, nil
}

// View renders the results screen.
func (m ResultsModel) View() string {
	t := func(key string) string { return i18n.T(m.lang, key) }
	rec := m.rec

	crop := i18n.Pick(m.lang, rec.EnglishName, rec.Crop)
	if crop == "" {
		crop = rec.Crop
	}

	title := fmt.Sprintf("🌱 %s: %s", t("recommendation"), crop)
	if rec.Variety != "" {
		title += " (" + rec.Variety + ")"
	}

	sections := []string{
		m.theme.Title.Render(title),
		m.theme.Subtitle.Render(fmt.Sprintf("%s · %s · %.1f %s · %s",
			rec.District, rec.Mandal, rec.AreaSown, t("acres"), rec.SowingDate)),
	}

	if rec.CurrentStage != "" {
		stage := fmt.Sprintf("%s: %s (%s %d)", t("cropStage"), rec.CurrentStage, t("daysAfterSowing"), rec.DaysAfterSowing)
		sections = append(sections, m.theme.Bold.Render(stage))
		if rec.StageDescription != "" {
			sections = append(sections, m.theme.Italic.Render(rec.StageDescription))
		}
	}

	if card := m.weatherSection(); card != "" {
		sections = append(sections, "", card)
	}
	if table := m.fertilizerSection(); table != "" {
		sections = append(sections, "", table)
	}

	sections = append(sections, "",
		m.theme.Bold.Render(fmt.Sprintf("%s: ₹%.0f", t("totalCost"), rec.TotalCost)))
	if rec.ExpectedYieldIncrease != "" {
		sections = append(sections,
			m.theme.StatusSuccess.Render(t("expectedYield")+": "+rec.ExpectedYieldIncrease))
	}

	if len(rec.Notes) > 0 {
		sections = append(sections, "", m.theme.Label.Render(t("notes")))
		for _, note := range rec.Notes {
			sections = append(sections, m.theme.Normal.Render("• "+note))
		}
	}

	if !m.schedule.Empty() {
		sections = append(sections, "", m.schedule.View())
	}
	if organic := m.organicSection(); organic != "" {
		sections = append(sections, "", organic)
	}
	sections = append(sections, "", m.purchaseSection())

	switch {
	case m.errText != "":
		sections = append(sections, "", m.theme.StatusError.Render(m.errText))
	case m.savedPath != "":
		sections = append(sections, "", m.theme.StatusSuccess.Render(t("reportSaved")+" "+m.savedPath))
	}

	sections = append(sections, "",
		m.theme.StatusPending.Render("[s] "+t("print")+"  [esc] "+t("back")))

	return m.theme.Box.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m ResultsModel) weatherSection() string {
	t := func(key string) string { return i18n.T(m.lang, key) }
	rec := m.rec

	var b strings.Builder
	if w := rec.Weather; w != nil {
		b.WriteString(m.theme.Bold.Render(themes.GetWeatherIcon(w.Main) + " " + t("currentWeather")))
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%.1f°C  %s  %s %d%%", w.Temperature, w.Description, t("humidity"), w.Humidity))
		if w.Rain3h > 0 {
			b.WriteString(fmt.Sprintf("  %s %.1fmm", t("rainfall"), w.Rain3h))
		}
		b.WriteString("\n")
	}

	if wa := rec.WeatherAnalysis; wa != nil {
		b.WriteString(m.theme.Label.Render(t("weatherAdvice")))
		b.WriteString("\n")
		if wa.CanApply {
			b.WriteString(m.theme.StatusSuccess.Render("✓ " + wa.TimingAdvice))
		} else {
			b.WriteString(m.theme.StatusWarning.Render("⚠ " + wa.TimingAdvice))
		}
		for _, note := range wa.WeatherNotes {
			b.WriteString("\n" + m.theme.Normal.Render("• "+note))
		}
	}

	out := strings.TrimRight(b.String(), "\n")
	if out == "" {
		return ""
	}
	return m.theme.BorderedBox.Render(out)
}

func (m ResultsModel) fertilizerSection() string {
	t := func(key string) string { return i18n.T(m.lang, key) }
	rec := m.rec
	if len(rec.Fertilizers) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.theme.Label.Render(t("fertilizers")))
	b.WriteString("\n")
	b.WriteString(m.theme.Bold.Render(fmt.Sprintf("%-18s %10s %12s %10s  %s",
		t("fertilizerType"), t("amount"), t("amountPerAcre"), t("cost"), t("timing"))))
	for _, f := range rec.Fertilizers {
		name := i18n.Pick(m.lang, f.Type, f.TeluguName)
		b.WriteString("\n" + fmt.Sprintf("%-18s %10.1f %12.1f %10.0f  %s",
			name, f.AmountKg, f.AmountPerAcre, f.Cost, f.Timing))
	}
	return b.String()
}

func (m ResultsModel) organicSection() string {
	t := func(key string) string { return i18n.T(m.lang, key) }
	org := m.rec.Organic
	if org == nil {
		return ""
	}

	group := func(title string, items []model.OrganicItem) string {
		if len(items) == 0 {
			return ""
		}
		var b strings.Builder
		b.WriteString(m.theme.Label.Render(title) + "\n")
		for _, item := range items {
			line := "• " + i18n.Pick(m.lang, item.Name, item.TeluguName)
			if item.RatePerAcre != "" {
				line += "  " + item.RatePerAcre
			}
			if item.Season != "" {
				line += "  (" + item.Season + ")"
			}
			b.WriteString(m.theme.Normal.Render(line) + "\n")
		}
		return b.String()
	}

	body := group(t("manures"), org.Manures) +
		group(t("bioFertilizers"), org.BioFertilizers) +
		group(t("greenManures"), org.GreenManures)
	if body == "" {
		return ""
	}
	return m.theme.Title.Render("🌿 "+t("organicOptions")) + "\n" + strings.TrimRight(body, "\n")
}

func (m ResultsModel) purchaseSection() string {
	t := func(key string) string { return i18n.T(m.lang, key) }
	rec := m.rec

	var b strings.Builder
	b.WriteString(m.theme.Title.Render("🛒 " + t("whereToBuy")))
	b.WriteString("\n" + m.theme.Label.Render(t("nearbyShops")))
	b.WriteString("\n" + m.theme.Normal.Render(fmt.Sprintf("%s %s, %s", t("findShops"), rec.Mandal, rec.District)))
	b.WriteString("\n" + m.theme.Label.Render(t("onlineStores")))
	b.WriteString("\n" + m.theme.Normal.Render("• AgriBegri  • BigHaat  • IFFCO Bazar"))
	return b.String()
}

// SavedPath returns the path of the last saved report, for tests.
func (m ResultsModel) SavedPath() string {
	return m.savedPath
}
