package validator

import (
	"fmt"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/translator"
)

// Validator checks records against a per-field RuleSet and keeps the
// transformed data of its most recent Validate call.
//
// A Validator is meant to be owned by a single request or session. Its
// methods are safe to call concurrently, but changing rules while Validate
// runs only affects later calls.
type Validator struct {
	mu         sync.RWMutex
	rules      RuleSet
	validated  map[string]any
	translator translator.Translator
	logger     *slog.Logger
}

type options struct {
	translator any
	locale     string
	logger     *slog.Logger
}

// Option configures a Validator.
type Option func(*options)

// WithTranslator sets the message translator. It accepts a
// translator.Translator, a translator.Service (such as *i18n.Translator, which
// is wrapped in a translator.Proxy) or nil for the built-in English messages.
// Any other value makes New fail with ErrInvalidTranslator.
func WithTranslator(t any) Option {
	return func(o *options) {
		o.translator = t
	}
}

// WithLocale sets the language used when the translator is a translator.Service.
func WithLocale(lang string) Option {
	return func(o *options) {
		o.locale = lang
	}
}

// WithLogger sets the logger. Failed fields are logged at debug level,
// configuration errors at error level. Defaults to a discard logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// New creates a Validator for rules, which may be nil.
func New(rules RuleSet, opts ...Option) (*Validator, error) {
	o := &options{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}

	tr, err := resolveTranslator(o.translator, o.locale)
	if err != nil {
		return nil, err
	}

	return &Validator{
		rules:      cloneRuleSet(rules),
		validated:  map[string]any{},
		translator: tr,
		logger:     o.logger.With(logger.Component("validator")),
	}, nil
}

func resolveTranslator(t any, locale string) (translator.Translator, error) {
	switch tr := t.(type) {
	case nil:
		return translator.NewDefault(), nil
	case translator.Translator:
		if isNilValue(tr) {
			return nil, fmt.Errorf("%w: nil %T", ErrInvalidTranslator, t)
		}
		return tr, nil
	case translator.Service:
		proxy := translator.NewProxy(tr, locale)
		if proxy == nil {
			return nil, fmt.Errorf("%w: nil %T", ErrInvalidTranslator, t)
		}
		return proxy, nil
	default:
		return nil, fmt.Errorf("%w: %T implements neither Translate nor T", ErrInvalidTranslator, t)
	}
}

// AddFieldRules merges set into the configured rules. For a field that
// already has rules, new arguments overwrite existing ones with the same name
// and the others are kept.
func (v *Validator) AddFieldRules(set RuleSet) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for field, rules := range set {
		if v.rules[field] == nil {
			v.rules[field] = make(Rules, len(rules))
		}
		maps.Copy(v.rules[field], rules)
	}
}

// RemoveFieldRules deletes every rule of field. Unknown fields are ignored.
func (v *Validator) RemoveFieldRules(field string) {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.rules, field)
}

// FieldRules returns a copy of the rules for field, empty if it has none.
func (v *Validator) FieldRules(field string) Rules {
	v.mu.RLock()
	defer v.mu.RUnlock()

	rules := maps.Clone(v.rules[field])
	if rules == nil {
		rules = Rules{}
	}
	return rules
}

// ValidRuleNames returns the recognized rule names.
func (v *Validator) ValidRuleNames() []string {
	return RuleNames()
}

// Validate checks record against the configured rules and returns the
// messages of the failing fields.
//
// A configured field missing from record is checked as nil. Fields of record
// without rules are copied to the validated data unchanged. A configuration
// error in any field's rules aborts the whole call.
func (v *Validator) Validate(record map[string]any) (Errors, error) {
	v.mu.RLock()
	set := cloneRuleSet(v.rules)
	v.mu.RUnlock()

	errs := Errors{}
	data := make(map[string]any, len(record))

	for field, value := range record {
		if _, ok := set[field]; !ok {
			data[field] = value
		}
	}

	for _, field := range slices.Sorted(maps.Keys(set)) {
		value, present := record[field]

		out, f, err := evaluate(value, set[field])
		if err != nil {
			v.logger.Error("invalid field rules", logger.Field(field), logger.Error(err))
			v.setValidated(map[string]any{})
			return nil, fmt.Errorf("field %q: %w", field, err)
		}

		if present {
			data[field] = out
		}
		if f != nil {
			errs[field] = v.message(f, set[field])
			v.logger.Debug("field failed validation", logger.Field(field), logger.Rule(f.rule))
		}
	}

	v.setValidated(data)
	return errs, nil
}

func (v *Validator) setValidated(data map[string]any) {
	v.mu.Lock()
	v.validated = data
	v.mu.Unlock()
}

// ValidatedData returns a copy of the data produced by the last Validate call:
// every submitted field, with configured fields in their transformed form
// (strings trimmed), whether they passed or not.
func (v *Validator) ValidatedData() map[string]any {
	v.mu.RLock()
	defer v.mu.RUnlock()

	return maps.Clone(v.validated)
}

// ValidatedValue returns one field of ValidatedData.
func (v *Validator) ValidatedValue(field string) (any, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	value, ok := v.validated[field]
	return value, ok
}

// ValidateValue checks a single value against rules and returns the error
// message, or an empty string when the value passes.
func (v *Validator) ValidateValue(value any, rules Rules) (string, error) {
	_, msg, err := v.CheckValue(value, rules)
	return msg, err
}

// CheckValue is ValidateValue that also returns the transformed value
// (trimmed when value is a string).
func (v *Validator) CheckValue(value any, rules Rules) (any, string, error) {
	out, f, err := evaluate(value, rules)
	if err != nil {
		return nil, "", err
	}
	if f == nil {
		return out, "", nil
	}
	return out, v.message(f, rules), nil
}

// message renders a failure through the translator. The field name comes from
// the textKey rule, or the generic unnamed-field text.
func (v *Validator) message(f *failure, rules Rules) string {
	if f.message != "" {
		return f.message
	}

	nameKey := translator.KeyUnnamedField
	if key, _ := rules[RuleTextKey].(string); key != "" {
		nameKey = key
	}

	params := translator.Params{translator.ParamFieldName: v.translator.Translate(nameKey, nil)}
	maps.Copy(params, f.params)
	return v.translator.Translate(f.key, params)
}

// failure describes the first rule a value broke.
type failure struct {
	rule   string
	key    string
	params translator.Params
	// message is the literal text returned by a custom rule
	message string
}

// evaluate validates the rules, normalizes value and finds the first failing rule.
func evaluate(value any, rules Rules) (any, *failure, error) {
	if err := CheckRules(rules); err != nil {
		return nil, nil, err
	}

	value = indirect(value)
	if flag(rules, RuleNullable) && isEmpty(value) {
		return value, nil, nil
	}

	if s, ok := value.(string); ok {
		value = strings.TrimSpace(s)
	}

	return value, check(value, rules), nil
}

func check(value any, rules Rules) *failure {
	empty := isEmpty(value)

	switch {
	case flag(rules, RuleRequired) && empty:
		return &failure{rule: RuleRequired, key: translator.KeyIsRequired}
	case flag(rules, RuleNonEmpty) && (empty || isZeroLike(value)):
		return &failure{rule: RuleNonEmpty, key: translator.KeyCannotBeEmpty}
	case empty:
		return nil
	}

	for _, name := range contentRules {
		arg, ok := rules[name]
		if !ok {
			continue
		}
		if f := applyRule(name, arg, value, rules); f != nil {
			return f
		}
	}
	return nil
}

// applyRule runs one content rule on a non-empty value. Only custom sees
// values that have no text form; the other rules skip them.
func applyRule(name string, arg, value any, rules Rules) *failure {
	if name == RuleCustom {
		fn, _ := customFunc(arg)
		if msg := fn(value); msg != "" {
			return &failure{rule: name, message: msg}
		}
		return nil
	}

	s, ok := text(value)
	if !ok {
		return nil
	}

	limit, _ := number(arg)
	on, _ := arg.(bool)

	switch name {
	case RuleMin:
		if n, ok := numericValue(value); !ok || n < limit {
			return bound(name, translator.KeyMustBeMin, translator.ParamMin, limit)
		}
	case RuleMax:
		if n, ok := numericValue(value); !ok || n > limit {
			return bound(name, translator.KeyMustBeMax, translator.ParamMax, limit)
		}
	case RuleMinLength:
		if float64(length(s)) < limit {
			return bound(name, translator.KeyMustContainAtLeast, translator.ParamMinLength, limit)
		}
	case RuleMaxLength:
		if float64(length(s)) > limit {
			return bound(name, translator.KeyMustContainAtMost, translator.ParamMaxLength, limit)
		}
	case RuleLength:
		if s != "" && float64(length(s)) != limit {
			return bound(name, translator.KeyMustContainExactly, translator.ParamLength, limit)
		}
	case RuleRegexp:
		pattern, _ := arg.(string)
		re, err := compilePattern(pattern)
		if err == nil && !re.MatchString(s) {
			expl, _ := rules[RuleRegexpExpl].(string)
			if expl == "" {
				expl = pattern
			}
			return &failure{
				rule:   name,
				key:    translator.KeyHasAnInvalidFormat,
				params: translator.Params{translator.ParamRegexpExpl: expl},
			}
		}
	case RuleEmail:
		if on && !isEmail(s) {
			return &failure{rule: name, key: translator.KeyIsNotAValidEmail}
		}
	case RuleDate:
		if on && !isDate(s) {
			return &failure{rule: name, key: translator.KeyIsNotAValidDate}
		}
	case RuleDateTime:
		if on && !isDateTime(s) {
			return &failure{rule: name, key: translator.KeyIsNotAValidDateTime}
		}
	}
	return nil
}

func bound(rule, key, param string, limit float64) *failure {
	return &failure{
		rule:   rule,
		key:    key,
		params: translator.Params{param: formatNumber(limit)},
	}
}
