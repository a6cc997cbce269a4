package translator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
	"github.com/dmitrymomot/fieldcheck/pkg/translator"
)

func TestDefault_Translate(t *testing.T) {
	tr := translator.NewDefault()

	tests := []struct {
		name   string
		key    string
		params translator.Params
		want   string
	}{
		{
			name: "unknown key is returned unchanged",
			key:  "lemmeltag",
			want: "lemmeltag",
		},
		{
			name:   "unknown key ignores params",
			key:    "hello %fieldName%",
			params: translator.Params{"fieldName": "Email"},
			want:   "hello %fieldName%",
		},
		{
			name: "unnamed field",
			key:  translator.KeyUnnamedField,
			want: "Field",
		},
		{
			name:   "required message",
			key:    translator.KeyIsRequired,
			params: translator.Params{translator.ParamFieldName: "Field"},
			want:   "Field must be filled in.",
		},
		{
			name:   "min message",
			key:    translator.KeyMustBeMin,
			params: translator.Params{translator.ParamFieldName: "Age", translator.ParamMin: "18"},
			want:   "Age must be at least 18.",
		},
		{
			name:   "regexp explanation",
			key:    translator.KeyHasAnInvalidFormat,
			params: translator.Params{translator.ParamFieldName: "Code", translator.ParamRegexpExpl: "A-Z"},
			want:   "Code has an invalid format (A-Z).",
		},
		{
			name: "template without params keeps placeholders",
			key:  translator.KeyIsRequired,
			want: "%fieldName% must be filled in.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Translate(tt.key, tt.params))
		})
	}
}

func TestDefault_Overrides(t *testing.T) {
	tr := translator.NewDefault(map[string]string{
		translator.KeyIsRequired: "Please fill in %fieldName%.",
		"custom":                 "Custom %x%",
	})

	assert.Equal(t, "Please fill in Name.", tr.Translate(translator.KeyIsRequired, translator.Params{"fieldName": "Name"}))
	assert.Equal(t, "Custom 1", tr.Translate("custom", translator.Params{"x": "1"}))

	// the built-in table is not modified by overrides
	assert.Equal(t, "Name must be filled in.", translator.NewDefault().Translate(translator.KeyIsRequired, translator.Params{"fieldName": "Name"}))
}

type recordingService struct {
	lang string
	key  string
	args []string
}

func (s *recordingService) T(lang, key string, args ...string) string {
	s.lang, s.key, s.args = lang, key, args
	return "translated:" + key
}

func TestProxy_Translate(t *testing.T) {
	t.Run("forwards sorted params", func(t *testing.T) {
		svc := &recordingService{}
		proxy := translator.NewProxy(svc, "sv")

		got := proxy.Translate(translator.KeyMustBeMax, translator.Params{"max": "5", "fieldName": "Antal"})

		assert.Equal(t, "translated:"+translator.KeyMustBeMax, got)
		assert.Equal(t, "sv", svc.lang)
		assert.Equal(t, translator.KeyMustBeMax, svc.key)
		assert.Equal(t, []string{"fieldName", "Antal", "max", "5"}, svc.args)
	})

	t.Run("defaults language", func(t *testing.T) {
		proxy := translator.NewProxy(&recordingService{}, "")
		assert.Equal(t, i18n.DefaultLanguage, proxy.Lang())
	})

	t.Run("nil service", func(t *testing.T) {
		assert.Nil(t, translator.NewProxy(nil, "en"))
		assert.Nil(t, translator.NewProxy((*i18n.Translator)(nil), "en"))
		assert.Nil(t, translator.NewProxy((*recordingService)(nil), "en"))
	})

	t.Run("works with i18n translator", func(t *testing.T) {
		service, err := i18n.NewTranslator(context.Background(), &i18n.MapAdapter{
			Data: map[string]map[string]any{
				"en": {"greeting": "Hello %{name}"},
			},
		})
		require.NoError(t, err)

		proxy := translator.NewProxy(service, "en")
		assert.Equal(t, "Hello Bo", proxy.Translate("greeting", translator.Params{"name": "Bo"}))
		assert.Equal(t, "unknown", proxy.Translate("unknown", nil))
	})
}

func TestFunc_Translate(t *testing.T) {
	var tr translator.Translator = translator.Func(func(key string, params translator.Params) string {
		return key + "/" + params["x"]
	})
	assert.Equal(t, "k/1", tr.Translate("k", translator.Params{"x": "1"}))
}

func TestNewCatalog(t *testing.T) {
	catalog, err := translator.NewCatalog(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"en", "sv"}, catalog.SupportedLanguages())

	params := translator.Params{translator.ParamFieldName: "E-post"}

	t.Run("swedish", func(t *testing.T) {
		proxy := translator.NewProxy(catalog, "sv")
		assert.Equal(t, "E-post måste fyllas i.", proxy.Translate(translator.KeyIsRequired, params))
		assert.Equal(t, "Fältet", proxy.Translate(translator.KeyUnnamedField, nil))
	})

	t.Run("english matches the default table", func(t *testing.T) {
		proxy := translator.NewProxy(catalog, "en")
		def := translator.NewDefault()

		keys := []string{
			translator.KeyUnnamedField,
			translator.KeyIsRequired,
			translator.KeyCannotBeEmpty,
			translator.KeyMustBeMin,
			translator.KeyMustBeMax,
			translator.KeyMustContainAtLeast,
			translator.KeyMustContainAtMost,
			translator.KeyMustContainExactly,
			translator.KeyHasAnInvalidFormat,
			translator.KeyIsNotAValidEmail,
			translator.KeyIsNotAValidDate,
			translator.KeyIsNotAValidDateTime,
		}
		full := translator.Params{
			translator.ParamFieldName:  "Name",
			translator.ParamMin:        "1",
			translator.ParamMax:        "2",
			translator.ParamMinLength:  "3",
			translator.ParamMaxLength:  "4",
			translator.ParamLength:     "5",
			translator.ParamRegexpExpl: "A-Z",
		}
		for _, key := range keys {
			assert.Equal(t, def.Translate(key, full), proxy.Translate(key, full), key)
		}
	})

	t.Run("every swedish key is translated", func(t *testing.T) {
		for _, key := range []string{translator.KeyIsNotAValidDate, translator.KeyMustContainExactly} {
			assert.True(t, catalog.HasTranslation("sv", key), key)
		}
	})
}
