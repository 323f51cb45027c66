package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTranslations(t *testing.T) {
	t.Run("loads embedded defaults", func(t *testing.T) {
		trans, err := NewTranslations("en", "locales")

		require.NoError(t, err)
		msg := trans.GetMessage("app_usage", 0, nil)
		assert.Equal(t, "Smart conventional commits without leaving your terminal", msg)
	})

	t.Run("loads spanish locale file", func(t *testing.T) {
		trans, err := NewTranslations("es", "locales")

		require.NoError(t, err)
		msg := trans.GetMessage("no_staged_changes", 0, nil)
		assert.Contains(t, msg, "git add")
		assert.NotContains(t, msg, "No staged changes")
	})
}

func TestGetMessage(t *testing.T) {
	trans, err := NewTranslations("en", "locales")
	require.NoError(t, err)

	t.Run("renders template data", func(t *testing.T) {
		msg := trans.GetMessage("invalid_suggestions_count", 0, map[string]interface{}{
			"Min": 1,
			"Max": 10,
		})
		assert.Equal(t, "Number of suggestions must be between 1 and 10", msg)
	})

	t.Run("missing id returns a marker", func(t *testing.T) {
		msg := trans.GetMessage("does_not_exist", 0, nil)
		assert.Equal(t, "Translation missing: does_not_exist", msg)
	})
}

func TestSetLanguage(t *testing.T) {
	trans, err := NewTranslations("en", "locales")
	require.NoError(t, err)

	t.Run("switches to a loaded language", func(t *testing.T) {
		require.NoError(t, trans.SetLanguage("es"))
		msg := trans.GetMessage("app_usage", 0, nil)
		assert.NotEqual(t, "Smart conventional commits without leaving your terminal", msg)
	})

	t.Run("rejects an unknown language", func(t *testing.T) {
		err := trans.SetLanguage("fr")
		assert.Error(t, err)
	})
}
