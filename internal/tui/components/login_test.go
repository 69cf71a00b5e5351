package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishemitra/krishi/internal/api"
	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/testutil"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

func TestSanitizeDigits(t *testing.T) {
	tests := []struct {
		name   string
		in     string
		maxLen int
		want   string
	}{
		{name: "digits pass through", in: "987654", maxLen: 10, want: "987654"},
		{name: "letters stripped", in: "98a7b6", maxLen: 10, want: "9876"},
		{name: "spaces stripped", in: "98 76 54", maxLen: 10, want: "987654"},
		{name: "truncated at max", in: "987654321099", maxLen: 10, want: "9876543210"},
		{name: "plus stripped", in: "+919876543210", maxLen: 10, want: "9198765432"},
		{name: "empty", in: "", maxLen: 10, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeDigits(tt.in, tt.maxLen))
		})
	}
}

func TestMobileInputStripsNonDigits(t *testing.T) {
	m := NewLoginModel(&testutil.FakeBackend{}, i18n.English, themes.Default)

	for _, r := range "98ab76-543 210xx" {
		m, _ = m.Update(keyMsg(string(r)))
	}

	assert.Equal(t, "9876543210", m.loginInputs[loginFieldMobile].Value())
}

func TestLoginRejectsShortMobileWithoutNetwork(t *testing.T) {
	fake := &testutil.FakeBackend{}
	m := NewLoginModel(fake, i18n.English, themes.Default)
	m.loginInputs[loginFieldMobile].SetValue("12345")

	m, cmd := m.Update(keyMsg("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, i18n.T(i18n.English, "invalidMobile"), m.Err())
	assert.Zero(t, fake.CallCount("login"), "no network call before client-side validation passes")
}

func TestLoginSuccessEmitsMessage(t *testing.T) {
	farmer := model.Farmer{Mobile: "9876543210", Name: "Ravi Kumar"}
	fake := &testutil.FakeBackend{
		LoginResult: model.LoginResponse{Success: true, Farmer: &farmer},
	}
	m := NewLoginModel(fake, i18n.Telugu, themes.Default)
	m.loginInputs[loginFieldMobile].SetValue("9876543210")
	m.loginInputs[loginFieldOTP].SetValue("123456")

	m, cmd := m.Update(keyMsg("enter"))
	require.True(t, m.Loading())

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)

	m, cmd = m.Update(msgs[0])
	msgs = runCmd(cmd)
	require.Len(t, msgs, 1)

	success, ok := msgs[0].(LoginSuccessMsg)
	require.True(t, ok)
	assert.Equal(t, farmer, success.Farmer)
	assert.Equal(t, i18n.Telugu, success.Language)
	assert.False(t, m.Loading())
}

func TestLoginBackendRejectionShowsMessage(t *testing.T) {
	fake := &testutil.FakeBackend{
		LoginResult: model.LoginResponse{Success: false, Message: "Invalid OTP"},
	}
	m := NewLoginModel(fake, i18n.English, themes.Default)
	m.loginInputs[loginFieldMobile].SetValue("9876543210")
	m.loginInputs[loginFieldOTP].SetValue("000000")

	m, cmd := m.Update(keyMsg("enter"))
	for _, msg := range runCmd(cmd) {
		m, _ = m.Update(msg)
	}

	assert.Equal(t, "Invalid OTP", m.Err())
	assert.False(t, m.Loading())
}

func TestSignupChainsRegisterThenLogin(t *testing.T) {
	farmer := model.Farmer{Mobile: "9876543210", Name: "Ravi Kumar"}
	fake := &testutil.FakeBackend{
		RegisterResult: farmer,
		LoginResult:    model.LoginResponse{Success: true, Farmer: &farmer},
	}
	m := NewLoginModel(fake, i18n.English, themes.Default)
	m, _ = m.Update(keyMsg("ctrl+s"))
	require.Equal(t, TabSignup, m.Tab())

	m.signupInputs[signupFieldName].SetValue("Ravi Kumar")
	m.signupInputs[signupFieldMobile].SetValue("9876543210")
	m.signupInputs[signupFieldDistrict].SetValue("Guntur")
	m.signupInputs[signupFieldMandal].SetValue("Tenali")
	m.signupInputs[signupFieldOTP].SetValue("123456")

	m, cmd := m.Update(keyMsg("enter"))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)

	assert.Equal(t, []string{"register", "login"}, fake.Calls)

	_, cmd = m.Update(msgs[0])
	msgs = runCmd(cmd)
	require.Len(t, msgs, 1)
	_, ok := msgs[0].(LoginSuccessMsg)
	assert.True(t, ok)
}

func TestSignupRegisterFailureShowsBackendMessage(t *testing.T) {
	fake := &testutil.FakeBackend{
		RegisterErr: &api.APIError{StatusCode: 400, Message: "Mobile number already registered"},
	}
	m := NewLoginModel(fake, i18n.English, themes.Default)
	m, _ = m.Update(keyMsg("ctrl+s"))

	m.signupInputs[signupFieldName].SetValue("Ravi Kumar")
	m.signupInputs[signupFieldMobile].SetValue("9876543210")

	m, cmd := m.Update(keyMsg("enter"))
	for _, msg := range runCmd(cmd) {
		m, _ = m.Update(msg)
	}

	assert.Equal(t, "Mobile number already registered", m.Err())
	assert.Zero(t, fake.CallCount("login"), "login must not run after failed registration")
}

func TestSwitchingTabsClearsError(t *testing.T) {
	m := NewLoginModel(&testutil.FakeBackend{}, i18n.English, themes.Default)
	m.loginInputs[loginFieldMobile].SetValue("12345")

	m, _ = m.Update(keyMsg("enter"))
	require.NotEmpty(t, m.Err())

	m, _ = m.Update(keyMsg("ctrl+s"))
	assert.Empty(t, m.Err())
}

func TestStaleAuthResultDropped(t *testing.T) {
	fake := &testutil.FakeBackend{}
	m := NewLoginModel(fake, i18n.English, themes.Default)
	m.gen = 5

	m, _ = m.Update(authResultMsg{gen: 3, err: &api.APIError{Message: "old failure"}})

	assert.Empty(t, m.Err(), "responses from superseded requests are dropped")
}
