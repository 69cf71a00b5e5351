package components

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

// Field indexes for the recommendation form.
const (
	formFieldCrop = iota
	formFieldVariety
	formFieldSowingDate
	formFieldDistrict
	formFieldMandal
	formFieldArea
	formFieldCount
)

// referenceMsg carries the crop and district reference lists loaded
// when the form opens.
type referenceMsg struct {
	err       error
	crops     []model.Crop
	districts []model.District
	gen       int
}

// mandalsMsg carries the mandal list for one district. The generation
// scopes it to the district selection that requested it: switching
// districts again before the response lands makes it stale.
type mandalsMsg struct {
	err     error
	mandals []model.Mandal
	gen     int
}

// recommendationMsg carries the computed plan or the failure.
type recommendationMsg struct {
	err error
	rec model.Recommendation
	gen int
}

// FormModel is the recommendation request form. Crop, district and
// mandal are cycling selectors backed by reference lists; variety,
// sowing date and area are free-text inputs.
type FormModel struct {
	backend Backend
	theme   themes.Theme
	lang    i18n.Language
	farmer  model.Farmer

	crops     []model.Crop
	districts []model.District
	mandals   []model.Mandal

	cropIdx     int
	districtIdx int
	mandalIdx   int // -1 while no mandal is selected

	variety    textinput.Model
	sowingDate textinput.Model
	area       textinput.Model

	focus   int
	spinner spinner.Model
	phase   phase
	errText string

	refGen    int
	mandalGen int
	submitGen int

	mandalLoading bool
	submitting    bool
	width         int
	height        int
}

// NewFormModel creates the recommendation form for a logged-in farmer.
func NewFormModel(backend Backend, farmer model.Farmer, lang i18n.Language, theme themes.Theme) FormModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	variety := textinput.New()
	variety.Placeholder = i18n.T(lang, "enterVariety")

	sowingDate := textinput.New()
	sowingDate.Placeholder = "YYYY-MM-DD"
	sowingDate.CharLimit = len("2006-01-02")
	sowingDate.SetValue(time.Now().Format("2006-01-02"))

	area := textinput.New()
	area.Placeholder = i18n.T(lang, "enterArea")

	m := FormModel{
		backend:    backend,
		theme:      theme,
		lang:       lang,
		farmer:     farmer,
		variety:    variety,
		sowingDate: sowingDate,
		area:       area,
		mandalIdx:  -1,
		phase:      phaseIdle,
		spinner:    s,
	}
	return m
}

// SetLanguage switches the UI language.
func (m *FormModel) SetLanguage(lang i18n.Language) {
	m.lang = lang
	m.variety.Placeholder = i18n.T(lang, "enterVariety")
	m.area.Placeholder = i18n.T(lang, "enterArea")
}

// Activate loads the crop and district reference lists.
func (m *FormModel) Activate() tea.Cmd {
	m.phase = phaseLoading
	m.errText = ""
	m.refGen = nextGen()
	return tea.Batch(m.spinner.Tick, m.fetchReference(m.refGen))
}

func (m FormModel) fetchReference(gen int) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		crops, err := backend.Crops(ctx)
		if err != nil {
			return referenceMsg{gen: gen, err: err}
		}
		districts, err := backend.Districts(ctx)
		if err != nil {
			return referenceMsg{gen: gen, err: err}
		}
		return referenceMsg{gen: gen, crops: crops, districts: districts}
	}
}

func (m FormModel) fetchMandals(gen int, district string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		mandals, err := backend.Mandals(ctx, district)
		return mandalsMsg{gen: gen, mandals: mandals, err: err}
	}
}

// selectDistrict makes idx the active district. The mandal list is
// replaced, never merged, and the mandal selection is cleared so a
// mandal from the previous district can never be submitted.
func (m *FormModel) selectDistrict(idx int) tea.Cmd {
	m.districtIdx = idx
	m.mandals = nil
	m.mandalIdx = -1
	m.mandalLoading = true
	m.mandalGen = nextGen()
	return m.fetchMandals(m.mandalGen, m.districts[idx].Name)
}

// Update handles messages.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if m.phase != phaseLoading && !m.mandalLoading && !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case referenceMsg:
		return m.handleReference(msg)

	case mandalsMsg:
		if msg.gen != m.mandalGen {
			return m, nil
		}
		m.mandalLoading = false
		if msg.err != nil {
			m.errText = backendMessage(msg.err, i18n.T(m.lang, "error"))
			return m, nil
		}
		m.mandals = msg.mandals
		// Preselect the farmer's own mandal when it belongs to the
		// active district.
		for i, md := range m.mandals {
			if md.Name == m.farmer.Mandal {
				m.mandalIdx = i
				break
			}
		}
		if m.mandalIdx < 0 && len(m.mandals) > 0 {
			m.mandalIdx = 0
		}
		return m, nil

	case recommendationMsg:
		if msg.gen != m.submitGen {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errText = backendMessage(msg.err, i18n.T(m.lang, "error"))
			return m, nil
		}
		rec := msg.rec
		return m, func() tea.Msg { return RecommendationReadyMsg{Recommendation: rec} }

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m FormModel) handleReference(msg referenceMsg) (FormModel, tea.Cmd) {
	if msg.gen != m.refGen {
		return m, nil
	}
	if msg.err != nil {
		m.phase = phaseError
		m.errText = backendMessage(msg.err, i18n.T(m.lang, "error"))
		return m, nil
	}

	m.phase = phaseLoaded
	m.crops = msg.crops
	m.districts = msg.districts
	m.cropIdx = 0
	m.focusField(formFieldCrop)

	if len(m.districts) == 0 {
		return m, nil
	}

	// Default to the farmer's own district.
	idx := 0
	for i, d := range m.districts {
		if d.Name == m.farmer.District {
			idx = i
			break
		}
	}
	cmd := m.selectDistrict(idx)
	return m, cmd
}

func (m FormModel) handleKey(msg tea.KeyMsg) (FormModel, tea.Cmd) {
	if m.phase != phaseLoaded {
		if msg.String() == "r" && m.phase == phaseError {
			cmd := m.Activate()
			return m, cmd
		}
		return m, nil
	}

	switch msg.String() {
	case "tab", "down":
		m.focusField(m.focus + 1)
		return m, nil

	case "shift+tab", "up":
		m.focusField(m.focus - 1)
		return m, nil

	case "left":
		return m.cycle(-1)

	case "right":
		return m.cycle(1)

	case "enter":
		if m.submitting {
			return m, nil
		}
		return m.submit()
	}

	var cmd tea.Cmd
	switch m.focus {
	case formFieldVariety:
		m.variety, cmd = m.variety.Update(msg)
	case formFieldSowingDate:
		m.sowingDate, cmd = m.sowingDate.Update(msg)
	case formFieldArea:
		m.area, cmd = m.area.Update(msg)
	}
	return m, cmd
}

// cycle moves the focused selector by delta, wrapping around.
func (m FormModel) cycle(delta int) (FormModel, tea.Cmd) {
	switch m.focus {
	case formFieldCrop:
		if n := len(m.crops); n > 0 {
			m.cropIdx = ((m.cropIdx+delta)%n + n) % n
		}
		return m, nil

	case formFieldDistrict:
		if n := len(m.districts); n > 0 {
			idx := ((m.districtIdx+delta)%n + n) % n
			if idx != m.districtIdx {
				cmd := m.selectDistrict(idx)
				return m, tea.Batch(m.spinner.Tick, cmd)
			}
		}
		return m, nil

	case formFieldMandal:
		if n := len(m.mandals); n > 0 {
			if m.mandalIdx < 0 {
				m.mandalIdx = 0
			} else {
				m.mandalIdx = ((m.mandalIdx+delta)%n + n) % n
			}
		}
		return m, nil
	}

	return m, nil
}

func (m *FormModel) focusField(idx int) {
	m.focus = ((idx % formFieldCount) + formFieldCount) % formFieldCount
	m.variety.Blur()
	m.sowingDate.Blur()
	m.area.Blur()
	switch m.focus {
	case formFieldVariety:
		m.variety.Focus()
	case formFieldSowingDate:
		m.sowingDate.Focus()
	case formFieldArea:
		m.area.Focus()
	}
}

func (m FormModel) submit() (FormModel, tea.Cmd) {
	// All validation happens before any network call.
	if len(m.crops) == 0 {
		m.errText = i18n.T(m.lang, "selectCrop")
		return m, nil
	}
	if m.mandalIdx < 0 || m.mandalIdx >= len(m.mandals) {
		m.errText = i18n.T(m.lang, "selectMandal")
		return m, nil
	}

	area, err := model.ParseArea(m.area.Value())
	if err != nil {
		m.errText = i18n.T(m.lang, "invalidArea")
		return m, nil
	}

	req := model.RecommendationRequest{
		CropName:   m.crops[m.cropIdx].EnglishName,
		Variety:    m.variety.Value(),
		SowingDate: m.sowingDate.Value(),
		District:   m.districts[m.districtIdx].Name,
		Mandal:     m.mandals[m.mandalIdx].Name,
		AreaSown:   area,
	}
	if err := req.Validate(); err != nil {
		m.errText = i18n.T(m.lang, "error") + ": " + err.Error()
		return m, nil
	}

	m.errText = ""
	m.submitting = true
	m.submitGen = nextGen()

	backend := m.backend
	mobile := m.farmer.Mobile
	gen := m.submitGen
	return m, tea.Batch(m.spinner.Tick, func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		rec, err := backend.Recommendation(ctx, mobile, req)
		return recommendationMsg{gen: gen, rec: rec, err: err}
	})
}

// View renders the form.
func (m FormModel) View() string {
	t := func(key string) string { return i18n.T(m.lang, key) }

	sections := []string{m.theme.Title.Render(t("getNewRecommendation")), ""}

	switch m.phase {
	case phaseLoading:
		sections = append(sections, m.spinner.View()+" "+t("loading"))

	case phaseError:
		sections = append(sections,
			m.theme.StatusError.Render(m.errText),
			m.theme.StatusPending.Render("[r] "+t("retry")),
		)

	case phaseLoaded:
		if m.errText != "" {
			sections = append(sections, m.theme.StatusError.Render(m.errText), "")
		}

		sections = append(sections,
			m.theme.Label.Render(t("cropName")),
			m.selectorView(formFieldCrop, m.cropLabel()),
			m.theme.Label.Render(t("variety")),
			m.variety.View(),
			m.theme.Label.Render(t("sowingDate")),
			m.sowingDate.View(),
			m.theme.Label.Render(t("district")),
			m.selectorView(formFieldDistrict, m.districtLabel()),
			m.theme.Label.Render(t("mandal")),
			m.selectorView(formFieldMandal, m.mandalLabel()),
			m.theme.Label.Render(t("areaSown")),
			m.area.View(),
		)

		if m.submitting {
			sections = append(sections, "", m.spinner.View()+" "+t("loading"))
		} else {
			sections = append(sections, "",
				m.theme.StatusPending.Render("[enter] "+t("getRecommendation")+"  [esc] "+t("back")))
		}
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.theme.Box.Render(content)
}

func (m FormModel) selectorView(field int, label string) string {
	if m.focus == field {
		return m.theme.Selected.Render(" ◀ " + label + " ▶ ")
	}
	return m.theme.Normal.Render("   " + label)
}

func (m FormModel) cropLabel() string {
	if len(m.crops) == 0 {
		return i18n.T(m.lang, "notAvailable")
	}
	c := m.crops[m.cropIdx]
	return i18n.Pick(m.lang, c.EnglishName, c.TeluguName)
}

func (m FormModel) districtLabel() string {
	if len(m.districts) == 0 {
		return i18n.T(m.lang, "notAvailable")
	}
	return m.districts[m.districtIdx].Name
}

func (m FormModel) mandalLabel() string {
	if m.mandalLoading {
		return i18n.T(m.lang, "loading")
	}
	if m.mandalIdx < 0 || m.mandalIdx >= len(m.mandals) {
		return i18n.T(m.lang, "selectMandal")
	}
	return m.mandals[m.mandalIdx].Name
}

// Mandals returns the current mandal list, for tests.
func (m FormModel) Mandals() []model.Mandal {
	return m.mandals
}

// SelectedMandal returns the selected mandal name, empty when none.
func (m FormModel) SelectedMandal() string {
	if m.mandalIdx < 0 || m.mandalIdx >= len(m.mandals) {
		return ""
	}
	return m.mandals[m.mandalIdx].Name
}

// Err returns the currently displayed error text.
func (m FormModel) Err() string {
	return m.errText
}
