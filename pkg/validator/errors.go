package validator

import "errors"

// Configuration errors. They point at a programming mistake in the rules or
// the validator setup and are returned, never reported as field messages.
var (
	// ErrUnknownRule is returned when a rule name is not one of RuleNames.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrInvalidRuleArgument is returned when a rule argument has the wrong type
	// or, for regexp, does not compile.
	ErrInvalidRuleArgument = errors.New("invalid validation rule argument")

	// ErrInvalidTranslator is returned by New when the translator option is
	// neither a translator.Translator nor a translator.Service.
	ErrInvalidTranslator = errors.New("invalid translator")
)
