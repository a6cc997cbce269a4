// Package validator checks submitted records field by field against
// declarative rules and produces human-readable messages plus a cleaned copy
// of the data.
//
// Rules are plain maps, so they can be written in Go or decoded from YAML or
// JSON (see package ruleset):
//
//	v, err := validator.New(validator.RuleSet{
//		"email": {"required": true, "email": true, "textKey": "email"},
//		"age":   {"min": 18, "max": 130},
//		"zip":   {"regexp": `^\d{5}$`, "regexpExpl": "five digits"},
//	})
//	if err != nil {
//		return err
//	}
//
//	errs, err := v.Validate(map[string]any{"email": " bo@example.com ", "age": 17})
//	if err != nil {
//		return err // configuration error in the rules
//	}
//	if !errs.IsEmpty() {
//		return errs // "validation failed: age: Field must be at least 18."
//	}
//	data := v.ValidatedData() // email is trimmed
//
// # Rules
//
//   - required (bool): nil or "" fails. 0, "0" and false are values.
//   - nonEmpty (bool): like required, but 0 and "0" fail too.
//   - nullable (bool): nil or "" passes whatever the other rules say.
//   - min, max (number): numeric bounds; numeric strings are accepted.
//   - minLength, maxLength, length (number): character counts.
//   - regexp (string) with optional regexpExpl (string) shown in the message.
//   - email, date, dateTime (bool): format checks. Dates must exist on the calendar.
//   - custom (func(any) string): returns "" on success or the final message.
//   - textKey (string): translation key of the field name used in messages.
//
// Strings are trimmed before any check. An empty value skips every rule but
// required and nonEmpty. The content rules run in the order listed above and
// only the first failure is reported.
//
// # Errors
//
// Data problems are never Go errors: they are returned as Errors, a map of
// field to message. A Go error means the configuration is wrong: an unknown
// rule (ErrUnknownRule), an argument of the wrong type (ErrInvalidRuleArgument)
// or an unusable translator (ErrInvalidTranslator).
//
// # Messages
//
// Messages are produced by a translator.Translator. Without WithTranslator the
// built-in English table is used. Passing an *i18n.Translator (or any
// translator.Service) together with WithLocale serves messages from catalogs.
package validator
