package translator

import (
	"maps"
	"reflect"
	"slices"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

// Params holds named values substituted into a message template.
type Params map[string]string

// Translator resolves a message key to display text.
type Translator interface {
	Translate(key string, params Params) string
}

// Func adapts an ordinary function to the Translator interface.
type Func func(key string, params Params) string

// Translate calls f(key, params).
func (f Func) Translate(key string, params Params) string {
	return f(key, params)
}

// Service is a generic translation service keyed by language.
// *i18n.Translator satisfies it.
type Service interface {
	T(lang, key string, args ...string) string
}

// Proxy forwards translations to a Service for a fixed language.
type Proxy struct {
	service Service
	lang    string
}

// NewProxy returns a Translator backed by service. An empty lang means i18n.DefaultLanguage.
// It returns nil when service is nil, including a typed nil such as (*i18n.Translator)(nil).
func NewProxy(service Service, lang string) *Proxy {
	if isNil(service) {
		return nil
	}
	if lang == "" {
		lang = i18n.DefaultLanguage
	}
	return &Proxy{service: service, lang: lang}
}

// Lang returns the language the proxy translates into.
func (p *Proxy) Lang() string {
	return p.lang
}

// Translate passes key and params to the service as sorted key/value pairs.
func (p *Proxy) Translate(key string, params Params) string {
	args := make([]string, 0, len(params)*2)
	for _, name := range slices.Sorted(maps.Keys(params)) {
		args = append(args, name, params[name])
	}
	return p.service.T(p.lang, key, args...)
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Interface, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
