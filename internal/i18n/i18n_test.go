package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultLanguage(t *testing.T) {
	tr, err := New("uk")
	require.NoError(t, err)
	assert.Equal(t, LanguageUK, tr.Language())

	tr, err = New("ru")
	require.NoError(t, err)
	assert.Equal(t, LanguageRU, tr.Language())
}

func TestNew_UnsupportedLanguage(t *testing.T) {
	_, err := New("en")
	assert.Error(t, err)
}

func TestSetLanguage(t *testing.T) {
	tr, err := New("uk")
	require.NoError(t, err)

	require.NoError(t, tr.SetLanguage("ru"))
	assert.Equal(t, LanguageRU, tr.Language())

	err = tr.SetLanguage("de")
	assert.Error(t, err)
	assert.Equal(t, LanguageRU, tr.Language(), "failed switch keeps current language")
}

func TestT_BothLanguagesTranslateKnownKey(t *testing.T) {
	tr, err := New("uk")
	require.NoError(t, err)

	uk := tr.T("hero.title")
	assert.NotEqual(t, "hero.title", uk)

	require.NoError(t, tr.SetLanguage("ru"))
	ru := tr.T("hero.title")
	assert.NotEqual(t, "hero.title", ru)
	assert.NotEqual(t, uk, ru)
}

func TestT_MissingKeyFallsBackToKey(t *testing.T) {
	tr, err := New("uk")
	require.NoError(t, err)

	assert.Equal(t, "no.such.key", tr.T("no.such.key"))
}

func TestTable_IsACopy(t *testing.T) {
	tr, err := New("uk")
	require.NoError(t, err)

	table := tr.Table()
	require.NotEmpty(t, table)

	table["hero.title"] = "mutated"
	assert.NotEqual(t, "mutated", tr.T("hero.title"))
}

func TestTable_TracksSelectedLanguage(t *testing.T) {
	tr, err := New("uk")
	require.NoError(t, err)

	ukTitle := tr.Table()["hero.title"]
	require.NoError(t, tr.SetLanguage("ru"))
	assert.NotEqual(t, ukTitle, tr.Table()["hero.title"])
}
