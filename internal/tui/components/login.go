package components

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/krishemitra/krishi/internal/api"
	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

// LoginTab selects between the two mutually exclusive sub-modes.
type LoginTab int

// Login sub-modes.
const (
	TabLogin LoginTab = iota
	TabSignup
)

// Field indexes for the login tab.
const (
	loginFieldMobile = iota
	loginFieldOTP
	loginFieldCount
)

// Field indexes for the signup tab.
const (
	signupFieldName = iota
	signupFieldMobile
	signupFieldDistrict
	signupFieldMandal
	signupFieldOTP
	signupFieldCount
)

// authResultMsg carries the outcome of a login or signup attempt.
type authResultMsg struct {
	err        error
	resp       model.LoginResponse
	gen        int
	registered bool // true when the failing call was register, not login
}

// LoginModel is the authentication screen: login and signup tabs over
// the same mobile+OTP credential flow.
type LoginModel struct {
	backend Backend
	theme   themes.Theme
	lang    i18n.Language
	tab     LoginTab

	loginInputs  []textinput.Model
	signupInputs []textinput.Model
	focus        int

	spinner spinner.Model
	phase   phase
	errText string
	gen     int
	width   int
	height  int
}

// NewLoginModel creates the login screen.
func NewLoginModel(backend Backend, lang i18n.Language, theme themes.Theme) LoginModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	m := LoginModel{
		backend: backend,
		theme:   theme,
		lang:    lang,
		spinner: s,
		phase:   phaseIdle,
	}
	m.loginInputs = m.buildLoginInputs()
	m.signupInputs = m.buildSignupInputs()
	m.focusField(0)
	return m
}

func (m LoginModel) buildLoginInputs() []textinput.Model {
	mobile := textinput.New()
	mobile.Placeholder = i18n.T(m.lang, "enterMobile")
	mobile.CharLimit = model.MobileLength

	otp := textinput.New()
	otp.Placeholder = i18n.T(m.lang, "enterOTP")
	otp.CharLimit = model.OTPLength

	return []textinput.Model{mobile, otp}
}

func (m LoginModel) buildSignupInputs() []textinput.Model {
	name := textinput.New()
	name.Placeholder = i18n.T(m.lang, "enterName")

	mobile := textinput.New()
	mobile.Placeholder = i18n.T(m.lang, "enterMobile")
	mobile.CharLimit = model.MobileLength

	district := textinput.New()
	district.Placeholder = i18n.T(m.lang, "selectDistrict")

	mandal := textinput.New()
	mandal.Placeholder = i18n.T(m.lang, "selectMandal")

	otp := textinput.New()
	otp.Placeholder = i18n.T(m.lang, "enterOTP")
	otp.CharLimit = model.OTPLength

	return []textinput.Model{name, mobile, district, mandal, otp}
}

// SetLanguage switches the UI language without losing entered values.
func (m *LoginModel) SetLanguage(lang i18n.Language) {
	m.lang = lang
	m.loginInputs[loginFieldMobile].Placeholder = i18n.T(lang, "enterMobile")
	m.loginInputs[loginFieldOTP].Placeholder = i18n.T(lang, "enterOTP")
	m.signupInputs[signupFieldName].Placeholder = i18n.T(lang, "enterName")
	m.signupInputs[signupFieldMobile].Placeholder = i18n.T(lang, "enterMobile")
	m.signupInputs[signupFieldDistrict].Placeholder = i18n.T(lang, "selectDistrict")
	m.signupInputs[signupFieldMandal].Placeholder = i18n.T(lang, "selectMandal")
	m.signupInputs[signupFieldOTP].Placeholder = i18n.T(lang, "enterOTP")
}

// Update handles messages.
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
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

	case authResultMsg:
		return m.handleAuthResult(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m LoginModel) handleKey(msg tea.KeyMsg) (LoginModel, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		// Switch tabs; entered values and errors do not carry over.
		if m.tab == TabLogin {
			m.tab = TabSignup
		} else {
			m.tab = TabLogin
		}
		m.errText = ""
		m.phase = phaseIdle
		m.focusField(0)
		return m, nil

	case "tab", "down":
		m.focusField(m.focus + 1)
		return m, nil

	case "shift+tab", "up":
		m.focusField(m.focus - 1)
		return m, nil

	case "enter":
		// Submission is disabled while a request is in flight.
		if m.phase == phaseLoading {
			return m, nil
		}
		return m.submit()
	}

	// Everything else goes to the focused input.
	inputs := m.activeInputs()
	var cmd tea.Cmd
	inputs[m.focus], cmd = inputs[m.focus].Update(msg)
	m.sanitizeInputs()
	return m, cmd
}

// sanitizeInputs enforces digits-only content on mobile and OTP
// fields: non-digit characters are stripped as typed and input beyond
// the field length is truncated.
func (m *LoginModel) sanitizeInputs() {
	clamp := func(in *textinput.Model, maxLen int) {
		cleaned := sanitizeDigits(in.Value(), maxLen)
		if cleaned != in.Value() {
			in.SetValue(cleaned)
			in.CursorEnd()
		}
	}
	clamp(&m.loginInputs[loginFieldMobile], model.MobileLength)
	clamp(&m.loginInputs[loginFieldOTP], model.OTPLength)
	clamp(&m.signupInputs[signupFieldMobile], model.MobileLength)
	clamp(&m.signupInputs[signupFieldOTP], model.OTPLength)
}

func sanitizeDigits(s string, maxLen int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == maxLen {
			break
		}
	}
	return b.String()
}

func (m *LoginModel) activeInputs() []textinput.Model {
	if m.tab == TabSignup {
		return m.signupInputs
	}
	return m.loginInputs
}

func (m *LoginModel) fieldCount() int {
	if m.tab == TabSignup {
		return signupFieldCount
	}
	return loginFieldCount
}

func (m *LoginModel) focusField(idx int) {
	count := m.fieldCount()
	m.focus = ((idx % count) + count) % count
	inputs := m.activeInputs()
	for i := range inputs {
		if i == m.focus {
			inputs[i].Focus()
		} else {
			inputs[i].Blur()
		}
	}
}

func (m LoginModel) submit() (LoginModel, tea.Cmd) {
	// The mobile format check runs before any network call.
	if m.tab == TabLogin {
		mobile := m.loginInputs[loginFieldMobile].Value()
		if !model.ValidMobile(mobile) {
			m.errText = i18n.T(m.lang, "invalidMobile")
			m.phase = phaseError
			return m, nil
		}
		m.phase = phaseLoading
		m.errText = ""
		m.gen = nextGen()
		return m, tea.Batch(m.spinner.Tick, m.loginCmd(m.gen, mobile, m.loginInputs[loginFieldOTP].Value()))
	}

	mobile := m.signupInputs[signupFieldMobile].Value()
	if !model.ValidMobile(mobile) {
		m.errText = i18n.T(m.lang, "invalidMobile")
		m.phase = phaseError
		return m, nil
	}
	farmer := model.Farmer{
		Mobile:             mobile,
		Name:               m.signupInputs[signupFieldName].Value(),
		District:           m.signupInputs[signupFieldDistrict].Value(),
		Mandal:             m.signupInputs[signupFieldMandal].Value(),
		LanguagePreference: string(m.lang),
	}
	if err := farmer.Validate(); err != nil {
		m.errText = i18n.T(m.lang, "registrationError")
		m.phase = phaseError
		return m, nil
	}
	m.phase = phaseLoading
	m.errText = ""
	m.gen = nextGen()
	return m, tea.Batch(m.spinner.Tick, m.signupCmd(m.gen, farmer, m.signupInputs[signupFieldOTP].Value()))
}

// loginCmd performs a plain login.
func (m LoginModel) loginCmd(gen int, mobile, otp string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		resp, err := backend.Login(ctx, mobile, otp)
		return authResultMsg{gen: gen, resp: resp, err: err}
	}
}

// signupCmd registers and then immediately logs in with the same
// credentials. Registration succeeding but login failing leaves the
// farmer unauthenticated.
func (m LoginModel) signupCmd(gen int, farmer model.Farmer, otp string) tea.Cmd {
	backend := m.backend
	return func() tea.Msg {
		ctx, cancel := apiContext()
		defer cancel()

		if _, err := backend.Register(ctx, farmer); err != nil {
			return authResultMsg{gen: gen, err: err, registered: true}
		}

		resp, err := backend.Login(ctx, farmer.Mobile, otp)
		return authResultMsg{gen: gen, resp: resp, err: err}
	}
}

func (m LoginModel) handleAuthResult(msg authResultMsg) (LoginModel, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}

	if msg.err != nil {
		m.phase = phaseError
		fallback := "loginError"
		if msg.registered {
			fallback = "registrationError"
		}
		m.errText = backendMessage(msg.err, i18n.T(m.lang, fallback))
		return m, nil
	}

	if !msg.resp.Success || msg.resp.Farmer == nil {
		// Transport succeeded but the backend rejected the login.
		m.phase = phaseError
		m.errText = msg.resp.Message
		if m.errText == "" {
			m.errText = i18n.T(m.lang, "loginError")
		}
		return m, nil
	}

	m.phase = phaseLoaded
	farmer := *msg.resp.Farmer
	lang := m.lang
	return m, func() tea.Msg {
		return LoginSuccessMsg{Farmer: farmer, Language: lang}
	}
}

// backendMessage prefers the backend's own error text over the
// generic localized fallback.
func backendMessage(err error, fallback string) string {
	var apiErr *api.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// View renders the login screen.
func (m LoginModel) View() string {
	t := func(key string) string { return i18n.T(m.lang, key) }

	title := m.theme.Title.Render("🌾 " + t("appName"))
	subtitle := m.theme.Subtitle.Render(t("welcome"))

	var tabs string
	loginTab := t("loginTab")
	signupTab := t("signupTab")
	if m.tab == TabLogin {
		tabs = m.theme.Selected.Render(" "+loginTab+" ") + "  " + m.theme.Normal.Render(signupTab)
	} else {
		tabs = m.theme.Normal.Render(loginTab) + "  " + m.theme.Selected.Render(" "+signupTab+" ")
	}

	var fields []string
	switch m.tab {
	case TabLogin:
		fields = append(fields,
			m.theme.Label.Render(t("mobileNumber")),
			m.loginInputs[loginFieldMobile].View(),
			m.theme.Label.Render(t("otp")),
			m.loginInputs[loginFieldOTP].View(),
			m.theme.StatusPending.Render(t("devOtp")),
		)
	case TabSignup:
		fields = append(fields,
			m.theme.Label.Render(t("name")),
			m.signupInputs[signupFieldName].View(),
			m.theme.Label.Render(t("mobileNumber")),
			m.signupInputs[signupFieldMobile].View(),
			m.theme.Label.Render(t("district")),
			m.signupInputs[signupFieldDistrict].View(),
			m.theme.Label.Render(t("mandal")),
			m.signupInputs[signupFieldMandal].View(),
			m.theme.Label.Render(t("otp")),
			m.signupInputs[signupFieldOTP].View(),
			m.theme.StatusPending.Render(t("devOtp")),
		)
	}

	sections := []string{title, subtitle, tabs, ""}
	if m.errText != "" {
		sections = append(sections, m.theme.StatusError.Render(m.errText), "")
	}
	sections = append(sections, fields...)

	switch {
	case m.phase == phaseLoading:
		sections = append(sections, "", m.spinner.View()+" "+t("loading"))
	case m.tab == TabLogin:
		sections = append(sections, "", m.theme.StatusPending.Render("[enter] "+t("login")+"  [ctrl+s] "+t("signupTab")))
	default:
		sections = append(sections, "", m.theme.StatusPending.Render("[enter] "+t("createAccount")+"  [ctrl+s] "+t("loginTab")))
	}

	content := lipgloss.JoinVertical(lipgloss.Left, sections...)
	box := m.theme.RoundedBox.Render(content)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
	}
	return box
}

// Tab returns the active sub-mode.
func (m LoginModel) Tab() LoginTab {
	return m.tab
}

// Err returns the currently displayed error text.
func (m LoginModel) Err() string {
	return m.errText
}

// Loading reports whether an auth request is in flight.
func (m LoginModel) Loading() bool {
	return m.phase == phaseLoading
}
