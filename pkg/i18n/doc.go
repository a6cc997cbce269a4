// Package i18n provides a small catalog-backed translation service: message keys
// are looked up per language and named placeholders are substituted.
//
// It is the service the validator's translator proxy forwards to when messages
// should come from application catalogs instead of the built-in English table.
// The Translator is safe for concurrent use.
//
// # Architecture
//
// The Translator delegates storage to a TranslationAdapter. Adapters return
// translation maps keyed by language code. Ready-made adapters cover an
// in-memory map, a single file, a directory and any fs.FS (typically embed.FS).
// File content is decoded by a Parser; YAML and JSON parsers are included.
//
// Catalog values may be nested maps, addressed with dot-separated keys
// ("errors.required"). Placeholders use the `%{name}` form.
//
// # Usage
//
//	adapter := i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), "./locales")
//
//	translator, err := i18n.NewTranslator(ctx, adapter,
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithFallbackToKey(true),
//	)
//	if err != nil {
//		return err
//	}
//
//	msg := translator.T("sv", "errorFieldXIsRequired", "fieldName", "E-post")
//
// A language without a catalog, or a key missing from it, falls back to the
// default language and then to the key itself (when WithFallbackToKey is on).
//
// # Error Handling
//
// Loading errors wrap package sentinels, so callers can check them with errors.Is:
//
//	if errors.Is(err, i18n.ErrFailedToParseYAML) {
//	    // bad catalog file
//	}
package i18n
