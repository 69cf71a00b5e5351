package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

func TestProfileEditAndSave(t *testing.T) {
	m := NewProfileModel(testFarmer, i18n.Telugu, themes.Default)
	require.False(t, m.Editing())

	m, _ = m.Update(keyMsg("e"))
	require.True(t, m.Editing())

	m.inputs[profileFieldName].SetValue("Ravi K")
	m.inputs[profileFieldDistrict].SetValue("Krishna")
	m.inputs[profileFieldMandal].SetValue("Machilipatnam")

	m, cmd := m.Update(keyMsg("enter"))
	require.False(t, m.Editing())

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	saved, ok := msgs[0].(ProfileSavedMsg)
	require.True(t, ok)

	assert.Equal(t, "Ravi K", saved.Farmer.Name)
	assert.Equal(t, "Krishna", saved.Farmer.District)
	assert.Equal(t, "Machilipatnam", saved.Farmer.Mandal)
	assert.Equal(t, "te", saved.Farmer.LanguagePreference)
	assert.Equal(t, testFarmer.Mobile, saved.Farmer.Mobile, "mobile is the identity and never changes")
}

func TestProfileEscDiscardsEdits(t *testing.T) {
	m := NewProfileModel(testFarmer, i18n.English, themes.Default)

	m, _ = m.Update(keyMsg("e"))
	m.inputs[profileFieldName].SetValue("Someone Else")

	m, cmd := m.Update(keyMsg("esc"))

	assert.Nil(t, cmd)
	assert.False(t, m.Editing())
	assert.Equal(t, testFarmer.Name, m.Farmer().Name)
}

func TestProfileViewShowsFarmer(t *testing.T) {
	m := NewProfileModel(testFarmer, i18n.English, themes.Default)

	view := m.View()
	assert.Contains(t, view, testFarmer.Name)
	assert.Contains(t, view, testFarmer.Mobile)
	assert.Contains(t, view, testFarmer.District)
}
