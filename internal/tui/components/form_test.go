package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
	"github.com/krishemitra/krishi/internal/testutil"
	"github.com/krishemitra/krishi/internal/tui/themes"
)

func referenceBackend() *testutil.FakeBackend {
	return &testutil.FakeBackend{
		CropsResult: []model.Crop{
			{EnglishName: "Rice", TeluguName: "వరి"},
			{EnglishName: "Cotton", TeluguName: "పత్తి"},
		},
		DistrictsResult: []model.District{{Name: "Guntur"}, {Name: "Krishna"}},
		MandalsByDistrict: map[string][]model.Mandal{
			"Guntur":  {{Name: "Tenali"}, {Name: "Mangalagiri"}},
			"Krishna": {{Name: "Machilipatnam"}},
		},
	}
}

// drainForm feeds every produced message back into the model until the
// command queue is empty.
func drainForm(m FormModel, cmd tea.Cmd) FormModel {
	queue := runCmd(cmd)
	for len(queue) > 0 {
		msg := queue[0]
		queue = queue[1:]
		var next tea.Cmd
		m, next = m.Update(msg)
		queue = append(queue, runCmd(next)...)
	}
	return m
}

func loadedForm(t *testing.T, fake *testutil.FakeBackend) FormModel {
	t.Helper()
	m := NewFormModel(fake, testFarmer, i18n.English, themes.Default)
	m = drainForm(m, m.Activate())
	require.Equal(t, phaseLoaded, m.phase)
	return m
}

func TestFormLoadsReferenceData(t *testing.T) {
	m := loadedForm(t, referenceBackend())

	assert.Len(t, m.crops, 2)
	assert.Len(t, m.districts, 2)
	assert.Equal(t, "Guntur", m.districts[m.districtIdx].Name, "defaults to the farmer's district")
	assert.Equal(t, "Tenali", m.SelectedMandal(), "preselects the farmer's mandal")
}

func TestDistrictSwitchReplacesMandalList(t *testing.T) {
	m := loadedForm(t, referenceBackend())
	(&m).focusField(formFieldDistrict)

	m, cmd := m.Update(keyMsg("right"))
	assert.Empty(t, m.Mandals(), "old mandals are dropped before the new list arrives")
	assert.Empty(t, m.SelectedMandal(), "mandal selection clears on district change")

	m = drainForm(m, cmd)
	require.Len(t, m.Mandals(), 1)
	assert.Equal(t, "Machilipatnam", m.Mandals()[0].Name)
	assert.Equal(t, "Machilipatnam", m.SelectedMandal())
}

func TestStaleMandalResponseDropped(t *testing.T) {
	m := loadedForm(t, referenceBackend())

	m, _ = m.Update(mandalsMsg{gen: m.mandalGen + 5, mandals: []model.Mandal{{Name: "Elsewhere"}}})

	assert.Equal(t, "Tenali", m.SelectedMandal(), "mandals from a superseded fetch are ignored")
}

func TestFormValidatesAreaBeforeNetwork(t *testing.T) {
	fake := referenceBackend()
	m := loadedForm(t, fake)
	m.area.SetValue("not-a-number")

	m, cmd := m.Update(keyMsg("enter"))

	assert.Nil(t, cmd)
	assert.Equal(t, i18n.T(i18n.English, "invalidArea"), m.Err())
	assert.Zero(t, fake.CallCount("recommendation"))
}

func TestFormSubmitEmitsRecommendation(t *testing.T) {
	fake := referenceBackend()
	fake.RecommendationResult = model.Recommendation{EnglishName: "Rice", TotalCost: 4200}
	m := loadedForm(t, fake)
	m.area.SetValue("2.5")

	m, cmd := m.Update(keyMsg("enter"))
	require.True(t, m.submitting)

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	m, cmd = m.Update(msgs[0])

	msgs = runCmd(cmd)
	require.Len(t, msgs, 1)
	ready, ok := msgs[0].(RecommendationReadyMsg)
	require.True(t, ok)
	assert.Equal(t, "Rice", ready.Recommendation.EnglishName)
	assert.False(t, m.submitting)
}

func TestFormReferenceFailureSetsError(t *testing.T) {
	fake := referenceBackend()
	fake.CropsErr = assert.AnError

	m := NewFormModel(fake, testFarmer, i18n.English, themes.Default)
	m = drainForm(m, m.Activate())

	assert.Equal(t, phaseError, m.phase)
	assert.NotEmpty(t, m.Err())
}

func TestFormCropSelectorWraps(t *testing.T) {
	m := loadedForm(t, referenceBackend())
	(&m).focusField(formFieldCrop)

	m, _ = m.Update(keyMsg("left"))
	assert.Equal(t, 1, m.cropIdx, "cycling left from the first crop wraps to the last")

	m, _ = m.Update(keyMsg("right"))
	assert.Equal(t, 0, m.cropIdx)
}
