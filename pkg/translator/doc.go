// Package translator defines the capability the validator uses to turn message
// keys into display text, together with its implementations.
//
// A Translator has a single method, Translate(key, params). Three
// implementations are provided:
//
//   - Default holds a built-in English table keyed by the validator's message
//     keys, with %name% placeholders. Unknown keys come back unchanged.
//   - Proxy forwards every call to a Service (for example *i18n.Translator)
//     for one language, so messages can come from application catalogs.
//   - Func adapts a plain function.
//
// NewCatalog loads the bundled English and Swedish catalogs into an
// i18n.Translator:
//
//	catalog, err := translator.NewCatalog(ctx)
//	if err != nil {
//		return err
//	}
//	tr := translator.NewProxy(catalog, "sv")
//	tr.Translate(translator.KeyIsRequired, translator.Params{"fieldName": "E-post"})
//	// "E-post måste fyllas i."
package translator
