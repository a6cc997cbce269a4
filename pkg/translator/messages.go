package translator

// Message keys produced by the validator.
const (
	KeyUnnamedField        = "errorTheNoneSpecifiedField"
	KeyIsRequired          = "errorFieldXIsRequired"
	KeyCannotBeEmpty       = "errorFieldXCannotBeEmpty"
	KeyMustBeMin           = "errorFieldXMustBeMin"
	KeyMustBeMax           = "errorFieldXMustBeMax"
	KeyMustContainAtLeast  = "errorFieldXMustContainAtLeast"
	KeyMustContainAtMost   = "errorFieldXMustContainAtMost"
	KeyMustContainExactly  = "errorFieldXMustContainExactly"
	KeyHasAnInvalidFormat  = "errorFieldXHasAnInvalidFormat"
	KeyIsNotAValidEmail    = "errorFieldXIsNotAValidEmailAddress"
	KeyIsNotAValidDate     = "errorFieldXIsNotAValidDate"
	KeyIsNotAValidDateTime = "errorFieldXIsNotAValidDateTime"
)

// Placeholder names passed along with the message keys.
const (
	ParamFieldName  = "fieldName"
	ParamMin        = "min"
	ParamMax        = "max"
	ParamMinLength  = "minLength"
	ParamMaxLength  = "maxLength"
	ParamLength     = "length"
	ParamRegexpExpl = "regexpExpl"
)

// defaultMessages is the built-in English table. Placeholders use the %name% form.
var defaultMessages = map[string]string{
	KeyUnnamedField:        "Field",
	KeyIsRequired:          "%fieldName% must be filled in.",
	KeyCannotBeEmpty:       "%fieldName% cannot be empty.",
	KeyMustBeMin:           "%fieldName% must be at least %min%.",
	KeyMustBeMax:           "%fieldName% must be at most %max%.",
	KeyMustContainAtLeast:  "%fieldName% must contain at least %minLength% characters.",
	KeyMustContainAtMost:   "%fieldName% must contain at most %maxLength% characters.",
	KeyMustContainExactly:  "%fieldName% must contain exactly %length% characters.",
	KeyHasAnInvalidFormat:  "%fieldName% has an invalid format (%regexpExpl%).",
	KeyIsNotAValidEmail:    "%fieldName% is not a valid email address.",
	KeyIsNotAValidDate:     "%fieldName% is not a valid date.",
	KeyIsNotAValidDateTime: "%fieldName% is not a valid date and time.",
}
