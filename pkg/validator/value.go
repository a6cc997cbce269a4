package validator

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// indirect dereferences pointers so *string from a form binder behaves like string.
// A nil pointer becomes nil.
func indirect(value any) any {
	if value == nil {
		return nil
	}
	rv := reflect.ValueOf(value)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	return rv.Interface()
}

// isNilValue reports whether v is nil or a typed nil held in an interface.
func isNilValue(v any) bool {
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

// isEmpty reports whether value counts as not provided: nil or "".
// false, 0 and "0" are values.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	}
	return false
}

// isZeroLike reports whether value is 0 or "0", which nonEmpty rejects.
func isZeroLike(value any) bool {
	if s, ok := value.(string); ok {
		return s == "0"
	}
	n, ok := number(value)
	return ok && n == 0
}

// number converts Go numeric kinds and json.Number to float64.
// Strings are not numbers here; use numericValue for submitted values.
func number(value any) (float64, bool) {
	switch v := value.(type) {
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), !math.IsNaN(float64(v))
	case float64:
		return v, !math.IsNaN(v)
	}
	return 0, false
}

// numericValue is number plus numeric strings, as submitted form values are strings.
func numericValue(value any) (float64, bool) {
	if s, ok := value.(string); ok {
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		return f, err == nil && !math.IsNaN(f)
	}
	return number(value)
}

// text returns the string form of a scalar value. Booleans, slices, maps and
// structs are not text and are skipped by the string rules.
func text(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return formatNumber(v), true
	}
	if _, ok := number(value); ok {
		return fmt.Sprint(value), true
	}
	return "", false
}

func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}

// length counts characters after NFC normalization, so a decomposed "é" counts once.
func length(s string) int {
	return utf8.RuneCountInString(norm.NFC.String(s))
}
