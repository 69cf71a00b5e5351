package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "krishi.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	assert.Error(t, err)
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "krishi.db")
	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.Close())
}

func TestFarmerRoundTrip(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Farmer()
	require.NoError(t, err)
	assert.False(t, ok)

	farmer := model.Farmer{
		ID:                 7,
		Mobile:             "9876543210",
		Name:               "Ravi Kumar",
		District:           "Guntur",
		Mandal:             "Tenali",
		LanguagePreference: "te",
	}
	require.NoError(t, store.SaveFarmer(farmer))

	got, ok, err := store.Farmer()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, farmer, got)
}

func TestSaveFarmerReplaces(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveFarmer(model.Farmer{Mobile: "9876543210", Name: "Ravi"}))
	require.NoError(t, store.SaveFarmer(model.Farmer{Mobile: "9876543210", Name: "Ravi Kumar"}))

	got, ok, err := store.Farmer()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ravi Kumar", got.Name)
}

func TestClearKeepsLanguage(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, store.SaveFarmer(model.Farmer{Mobile: "9876543210", Name: "Ravi"}))
	require.NoError(t, store.SaveLanguage(i18n.Telugu))

	require.NoError(t, store.Clear())

	_, ok, err := store.Farmer()
	require.NoError(t, err)
	assert.False(t, ok, "farmer should be gone after clear")

	lang, err := store.Language()
	require.NoError(t, err)
	assert.Equal(t, i18n.Telugu, lang, "language should survive logout")
}

func TestLanguageDefaultsToEnglish(t *testing.T) {
	store := newTestStore(t)

	lang, err := store.Language()
	require.NoError(t, err)
	assert.Equal(t, i18n.English, lang)
}

func TestSessionSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "krishi.db")

	store, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveFarmer(model.Farmer{Mobile: "9876543210", Name: "Ravi"}))
	require.NoError(t, store.SaveLanguage(i18n.Telugu))
	require.NoError(t, store.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	farmer, ok, err := reopened.Farmer()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Ravi", farmer.Name)

	lang, err := reopened.Language()
	require.NoError(t, err)
	assert.Equal(t, i18n.Telugu, lang)
}
