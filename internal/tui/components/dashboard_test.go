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

var testFarmer = model.Farmer{
	Mobile:   "9876543210",
	Name:     "Ravi Kumar",
	District: "Guntur",
	Mandal:   "Tenali",
}

func activateDashboard(t *testing.T, fake *testutil.FakeBackend) DashboardModel {
	t.Helper()
	m := NewDashboardModel(fake, testFarmer, i18n.English, themes.Default)
	cmd := m.Activate()
	for _, msg := range runCmd(cmd) {
		m, _ = m.Update(msg)
	}
	return m
}

func TestDashboardLoadsHistoryAndWeather(t *testing.T) {
	fake := &testutil.FakeBackend{
		HistoryResult: []model.Recommendation{
			{EnglishName: "Cotton", TotalCost: 5100},
			{EnglishName: "Rice", TotalCost: 4200},
		},
		WeatherResult: model.Weather{Temperature: 31.5, Main: "Clouds", Humidity: 74},
	}

	m := activateDashboard(t, fake)

	require.Len(t, m.History(), 2)
	require.NotNil(t, m.Weather())
	assert.InDelta(t, 31.5, m.Weather().Temperature, 0.0001)
	assert.Empty(t, m.Err())
}

func TestDashboardWeatherFailureIsNotFatal(t *testing.T) {
	fake := &testutil.FakeBackend{
		HistoryResult: []model.Recommendation{{EnglishName: "Rice"}},
		WeatherErr:    &api.APIError{StatusCode: 503, Message: "weather provider down"},
	}

	m := activateDashboard(t, fake)

	assert.Len(t, m.History(), 1)
	assert.Nil(t, m.Weather(), "weather card stays absent when the fetch fails")
	assert.Empty(t, m.Err(), "a weather failure must not surface as an error")
}

func TestDashboardHistoryFailureShowsError(t *testing.T) {
	fake := &testutil.FakeBackend{
		HistoryErr:    &api.APIError{StatusCode: 500, Message: "database unavailable"},
		WeatherResult: model.Weather{Temperature: 30},
	}

	m := activateDashboard(t, fake)

	assert.Equal(t, "database unavailable", m.Err())
	assert.Empty(t, m.History())
}

func TestDashboardEnterOpensSelectedRecommendation(t *testing.T) {
	fake := &testutil.FakeBackend{
		HistoryResult: []model.Recommendation{
			{EnglishName: "Cotton"},
			{EnglishName: "Rice"},
		},
	}
	m := activateDashboard(t, fake)

	m, _ = m.Update(keyMsg("down"))
	_, cmd := m.Update(keyMsg("enter"))

	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	open, ok := msgs[0].(OpenRecommendationMsg)
	require.True(t, ok)
	assert.Equal(t, "Rice", open.Recommendation.EnglishName)
}

func TestDashboardShortcutsEmitMessages(t *testing.T) {
	m := activateDashboard(t, &testutil.FakeBackend{})

	_, cmd := m.Update(keyMsg("n"))
	msgs := runCmd(cmd)
	require.Len(t, msgs, 1)
	_, ok := msgs[0].(NewRecommendationMsg)
	assert.True(t, ok)

	_, cmd = m.Update(keyMsg("p"))
	msgs = runCmd(cmd)
	require.Len(t, msgs, 1)
	_, ok = msgs[0].(OpenProfileMsg)
	assert.True(t, ok)
}

func TestDashboardReactivationRefetches(t *testing.T) {
	fake := &testutil.FakeBackend{}
	m := activateDashboard(t, fake)

	cmd := m.Activate()
	for _, msg := range runCmd(cmd) {
		m, _ = m.Update(msg)
	}

	assert.Equal(t, 2, fake.CallCount("history"), "each activation re-fetches history")
}

func TestDashboardStaleHistoryDropped(t *testing.T) {
	fake := &testutil.FakeBackend{
		HistoryResult: []model.Recommendation{{EnglishName: "Rice"}},
	}
	m := activateDashboard(t, fake)
	require.Len(t, m.History(), 1)

	m, _ = m.Update(historyMsg{gen: m.gen - 1, items: []model.Recommendation{{}, {}, {}}})

	assert.Len(t, m.History(), 1, "a stale response must not replace current data")
}
