package validator

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"sync"
)

// Recognized rule names.
const (
	RuleRequired   = "required"
	RuleNonEmpty   = "nonEmpty"
	RuleNullable   = "nullable"
	RuleMin        = "min"
	RuleMax        = "max"
	RuleMinLength  = "minLength"
	RuleMaxLength  = "maxLength"
	RuleLength     = "length"
	RuleRegexp     = "regexp"
	RuleRegexpExpl = "regexpExpl"
	RuleEmail      = "email"
	RuleDate       = "date"
	RuleDateTime   = "dateTime"
	RuleCustom     = "custom"
	RuleTextKey    = "textKey"
)

var ruleNames = []string{
	RuleRequired,
	RuleNonEmpty,
	RuleNullable,
	RuleMin,
	RuleMax,
	RuleMinLength,
	RuleMaxLength,
	RuleLength,
	RuleRegexp,
	RuleRegexpExpl,
	RuleEmail,
	RuleDate,
	RuleDateTime,
	RuleCustom,
	RuleTextKey,
}

// contentRules are the value checks run on non-empty values, in this order.
var contentRules = []string{
	RuleMin,
	RuleMax,
	RuleMinLength,
	RuleMaxLength,
	RuleLength,
	RuleRegexp,
	RuleEmail,
	RuleDate,
	RuleDateTime,
	RuleCustom,
}

// Rules maps a rule name to its argument for one field.
//
//	validator.Rules{"required": true, "maxLength": 64, "textKey": "email"}
type Rules map[string]any

// RuleSet maps field names to their rules.
type RuleSet map[string]Rules

// CustomFunc checks a value and returns an empty string when it passes,
// otherwise the final error message. The message is not translated.
type CustomFunc func(value any) string

// RuleNames returns the recognized rule names.
func RuleNames() []string {
	return slices.Clone(ruleNames)
}

// CheckRules reports whether every rule name is recognized and carries an
// argument of the right type. It does not look at any value.
func CheckRules(rules Rules) error {
	for _, name := range slices.Sorted(maps.Keys(rules)) {
		if err := checkArgument(name, rules[name]); err != nil {
			return err
		}
	}
	return nil
}

// CheckRuleSet runs CheckRules for every field.
func CheckRuleSet(set RuleSet) error {
	for _, field := range slices.Sorted(maps.Keys(set)) {
		if err := CheckRules(set[field]); err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}
	}
	return nil
}

func checkArgument(name string, arg any) error {
	switch name {
	case RuleRequired, RuleNonEmpty, RuleNullable, RuleEmail, RuleDate, RuleDateTime:
		if _, ok := arg.(bool); !ok {
			return invalidArgument(name, "a boolean", arg)
		}
	case RuleMin, RuleMax, RuleMinLength, RuleMaxLength, RuleLength:
		if _, ok := number(arg); !ok {
			return invalidArgument(name, "a number", arg)
		}
	case RuleRegexp:
		pattern, ok := arg.(string)
		if !ok {
			return invalidArgument(name, "a pattern string", arg)
		}
		if _, err := compilePattern(pattern); err != nil {
			return fmt.Errorf("%w: rule %q: %w", ErrInvalidRuleArgument, name, err)
		}
	case RuleRegexpExpl, RuleTextKey:
		if _, ok := arg.(string); !ok {
			return invalidArgument(name, "a string", arg)
		}
	case RuleCustom:
		if _, ok := customFunc(arg); !ok {
			return invalidArgument(name, "a func(any) string", arg)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return nil
}

func invalidArgument(name, want string, arg any) error {
	return fmt.Errorf("%w: rule %q expects %s, got %T", ErrInvalidRuleArgument, name, want, arg)
}

func customFunc(arg any) (CustomFunc, bool) {
	switch fn := arg.(type) {
	case CustomFunc:
		return fn, fn != nil
	case func(any) string:
		return fn, fn != nil
	}
	return nil, false
}

func flag(rules Rules, name string) bool {
	on, _ := rules[name].(bool)
	return on
}

var patterns sync.Map // pattern string -> *regexp.Regexp

func compilePattern(pattern string) (*regexp.Regexp, error) {
	if re, ok := patterns.Load(pattern); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	patterns.Store(pattern, re)
	return re, nil
}

func cloneRuleSet(set RuleSet) RuleSet {
	out := make(RuleSet, len(set))
	for field, rules := range set {
		out[field] = maps.Clone(rules)
	}
	return out
}
