package i18n_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

func newTestTranslator(t *testing.T, opts ...i18n.Option) *i18n.Translator {
	t.Helper()

	adapter := &i18n.MapAdapter{
		Data: map[string]map[string]any{
			"en": {
				"hello":   "Hello",
				"welcome": "Welcome, %{name}!",
				"errors": map[string]any{
					"required": "%{fieldName} must be filled in.",
				},
				"onlyEnglish": "Only in English",
			},
			"sv": {
				"hello":   "Hej",
				"welcome": "Välkommen, %{name}!",
				"errors": map[string]any{
					"required": "%{fieldName} måste fyllas i.",
				},
			},
		},
	}

	translator, err := i18n.NewTranslator(context.Background(), adapter, opts...)
	require.NoError(t, err)
	return translator
}

func TestNewTranslator(t *testing.T) {
	t.Run("fails without adapter", func(t *testing.T) {
		translator, err := i18n.NewTranslator(context.Background(), nil)
		require.ErrorIs(t, err, i18n.ErrNilAdapter)
		assert.Nil(t, translator)
	})

	t.Run("propagates adapter errors", func(t *testing.T) {
		adapter := i18n.NewFileAdapter(i18n.NewYAMLParser(), "does-not-exist.yaml")
		_, err := i18n.NewTranslator(context.Background(), adapter)
		require.ErrorIs(t, err, i18n.ErrFailedToReadFile)
	})

	t.Run("rejects empty language code", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"": {"a": "b"}}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		require.ErrorIs(t, err, i18n.ErrEmptyLanguageCode)
	})

	t.Run("rejects nil catalog", func(t *testing.T) {
		adapter := &i18n.MapAdapter{Data: map[string]map[string]any{"en": nil}}
		_, err := i18n.NewTranslator(context.Background(), adapter)
		require.ErrorIs(t, err, i18n.ErrNilLanguageCatalog)
	})

	t.Run("accepts empty catalogs", func(t *testing.T) {
		translator, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{})
		require.NoError(t, err)
		assert.Empty(t, translator.SupportedLanguages())
		assert.Equal(t, "missing", translator.T("en", "missing"))
	})
}

func TestTranslator_SupportedLanguages(t *testing.T) {
	translator := newTestTranslator(t)
	assert.Equal(t, []string{"en", "sv"}, translator.SupportedLanguages())
	assert.Equal(t, i18n.DefaultLanguage, translator.DefaultLanguage())
}

func TestTranslator_HasTranslation(t *testing.T) {
	translator := newTestTranslator(t)

	assert.True(t, translator.HasTranslation("en", "hello"))
	assert.True(t, translator.HasTranslation("sv", "errors.required"))
	assert.False(t, translator.HasTranslation("en", "goodbye"))
	assert.False(t, translator.HasTranslation("de", "hello"))
	assert.False(t, translator.HasTranslation("en", "errors.missing"))
	assert.False(t, translator.HasTranslation("en", "hello.nested"))
}

func TestTranslator_T(t *testing.T) {
	translator := newTestTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		args []string
		want string
	}{
		{name: "simple key", lang: "en", key: "hello", want: "Hello"},
		{name: "other language", lang: "sv", key: "hello", want: "Hej"},
		{name: "named placeholder", lang: "sv", key: "welcome", args: []string{"name", "Anna"}, want: "Välkommen, Anna!"},
		{name: "nested key", lang: "en", key: "errors.required", args: []string{"fieldName", "Email"}, want: "Email must be filled in."},
		{name: "unknown placeholder kept", lang: "en", key: "welcome", args: []string{"other", "x"}, want: "Welcome, %{name}!"},
		{name: "odd argument ignored", lang: "en", key: "welcome", args: []string{"name", "Bo", "dangling"}, want: "Welcome, Bo!"},
		{name: "falls back to default language", lang: "sv", key: "onlyEnglish", want: "Only in English"},
		{name: "unsupported language uses default", lang: "de", key: "hello", want: "Hello"},
		{name: "missing key returns key", lang: "en", key: "missing.key", want: "missing.key"},
		{name: "map value returns key", lang: "en", key: "errors", want: "errors"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, translator.T(tt.lang, tt.key, tt.args...))
		})
	}
}

func TestTranslator_WithoutFallbackToKey(t *testing.T) {
	translator := newTestTranslator(t, i18n.WithFallbackToKey(false))

	assert.Empty(t, translator.T("en", "missing"))
	assert.Equal(t, "Hello", translator.T("en", "hello"))
}

func TestTranslator_WithDefaultLanguage(t *testing.T) {
	translator := newTestTranslator(t, i18n.WithDefaultLanguage("sv"))

	assert.Equal(t, "sv", translator.DefaultLanguage())
	assert.Equal(t, "Hej", translator.T("de", "hello"))
}

func TestTranslator_Td(t *testing.T) {
	translator := newTestTranslator(t)

	assert.Equal(t, "Hej", translator.Td("sv", "hello", "fallback"))
	assert.Equal(t, "Hi Bo", translator.Td("sv", "missing", "Hi %{name}", "name", "Bo"))
}

func TestTranslator_Tc(t *testing.T) {
	translator := newTestTranslator(t)

	ctx := i18n.SetLocale(context.Background(), "sv")
	assert.Equal(t, "Hej", translator.Tc(ctx, "hello"))
	assert.Equal(t, "Hello", translator.Tc(context.Background(), "hello"))
}

func TestTranslator_MissingTranslationsLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	translator := newTestTranslator(t,
		i18n.WithLogger(logger),
		i18n.WithMissingTranslationsLogging(true),
	)

	translator.T("en", "missing")
	assert.Contains(t, buf.String(), "translation not found")
	assert.Contains(t, buf.String(), "key=missing")

	buf.Reset()
	quiet := newTestTranslator(t, i18n.WithLogger(logger), i18n.WithMissingTranslationsLogging(true), i18n.WithNoLogging())
	quiet.T("en", "missing")
	assert.Empty(t, buf.String())
}

type flakyAdapter struct {
	data map[string]map[string]any
	err  error
}

func (a *flakyAdapter) Load(context.Context) (map[string]map[string]any, error) {
	return a.data, a.err
}

func TestTranslator_Reload(t *testing.T) {
	adapter := &flakyAdapter{data: map[string]map[string]any{"en": {"hello": "Hello"}}}
	translator, err := i18n.NewTranslator(context.Background(), adapter)
	require.NoError(t, err)

	adapter.data = map[string]map[string]any{"en": {"hello": "Hi"}}
	require.NoError(t, translator.Reload(context.Background()))
	assert.Equal(t, "Hi", translator.T("en", "hello"))

	adapter.err = errors.New("boom")
	require.Error(t, translator.Reload(context.Background()))
	assert.Equal(t, "Hi", translator.T("en", "hello"))
}
