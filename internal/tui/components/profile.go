package components

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

// Field indexes for the profile edit form. The mobile number is the
// account identity and is not editable.
const (
	profileFieldName = iota
	profileFieldDistrict
	profileFieldMandal
	profileFieldCount
)

// ProfileModel shows the farmer's account details and lets them edit
// name, district and mandal. Edits are saved locally only.
type ProfileModel struct {
	theme  themes.Theme
	lang   i18n.Language
	farmer model.Farmer

	editing bool
	inputs  []textinput.Model
	focus   int
	saved   bool
	width   int
	height  int
}

// NewProfileModel creates the profile screen.
func NewProfileModel(farmer model.Farmer, lang i18n.Language, theme themes.Theme) ProfileModel {
	return ProfileModel{
		theme:  theme,
		lang:   lang,
		farmer: farmer,
	}
}

// SetLanguage switches the UI language.
func (m *ProfileModel) SetLanguage(lang i18n.Language) {
	m.lang = lang
}

// Update handles messages.
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.handleEditKey(msg)
		}
		if msg.String() == "e" {
			m.startEditing()
			return m, nil
		}
		return m, nil
	}

	return m, nil
}

func (m *ProfileModel) startEditing() {
	name := textinput.New()
	name.SetValue(m.farmer.Name)
	name.Focus()

	district := textinput.New()
	district.SetValue(m.farmer.District)

	mandal := textinput.New()
	mandal.SetValue(m.farmer.Mandal)

	m.inputs = []textinput.Model{name, district, mandal}
	m.focus = profileFieldName
	m.editing = true
	m.saved = false
}

func (m ProfileModel) handleEditKey(msg tea.KeyMsg) (ProfileModel, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		m.focusField(m.focus + 1)
		return m, nil

	case "shift+tab", "up":
		m.focusField(m.focus - 1)
		return m, nil

	case "esc":
		// Discard the edits.
		m.editing = false
		m.inputs = nil
		return m, nil

	case "enter":
		m.farmer.Name = m.inputs[profileFieldName].Value()
		m.farmer.District = m.inputs[profileFieldDistrict].Value()
		m.farmer.Mandal = m.inputs[profileFieldMandal].Value()
		m.farmer.LanguagePreference = string(m.lang)
		m.editing = false
		m.inputs = nil
		m.saved = true

		farmer := m.farmer
		return m, func() tea.Msg { return ProfileSavedMsg{Farmer: farmer} }
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *ProfileModel) focusField(idx int) {
	m.focus = ((idx % profileFieldCount) + profileFieldCount) % profileFieldCount
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
}

// Editing reports whether the edit form is open. The root model uses
// this to keep esc local while edits are pending.
func (m ProfileModel) Editing() bool {
	return m.editing
}

// Farmer returns the current (possibly edited) farmer record.
func (m ProfileModel) Farmer() model.Farmer {
	return m.farmer
}

// View renders the profile screen.
func (m ProfileModel) View() string {
	t := func(key string) string { return i18n.T(m.lang, key) }

	sections := []string{m.theme.Title.Render("👤 " + t("profile")), ""}

	if m.editing {
		sections = append(sections,
			m.theme.Label.Render(t("name")),
			m.inputs[profileFieldName].View(),
			m.theme.Label.Render(t("district")),
			m.inputs[profileFieldDistrict].View(),
			m.theme.Label.Render(t("mandal")),
			m.inputs[profileFieldMandal].View(),
			"",
			m.theme.StatusPending.Render("[enter] "+t("saveChanges")+"  [esc] "+t("cancel")),
		)
	} else {
		row := func(label, value string) string {
			return m.theme.Label.Render(label+": ") + m.theme.Normal.Render(value)
		}
		sections = append(sections,
			row(t("name"), m.farmer.Name),
			row(t("mobileNumber"), m.farmer.Mobile),
			row(t("district"), m.farmer.District),
			row(t("mandal"), m.farmer.Mandal),
			row(t("languagePreference"), i18n.Parse(m.farmer.LanguagePreference).Label()),
		)
		if m.saved {
			sections = append(sections, "", m.theme.StatusSuccess.Render(t("profileUpdated")))
		}
		sections = append(sections, "",
			m.theme.StatusPending.Render("[e] "+t("editProfile")+"  [esc] "+t("back")))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	return m.theme.Box.Render(content)
}
