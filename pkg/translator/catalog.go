package translator

import (
	"context"
	"embed"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
)

//go:embed locales/*.yaml
var locales embed.FS

// NewCatalog loads the bundled message catalogs (en, sv) into an i18n.Translator.
// Wrap the result with NewProxy to use it as a Translator.
func NewCatalog(ctx context.Context, opts ...i18n.Option) (*i18n.Translator, error) {
	adapter := i18n.NewEmbeddedFsAdapter(i18n.NewYAMLParser(), locales, "locales")
	return i18n.NewTranslator(ctx, adapter, opts...)
}
