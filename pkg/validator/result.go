package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Errors maps field names to their validation message. Only failing fields
// are present. It implements error so a handler can return it directly.
//
// An empty Errors stored in an error variable is not nil. Check IsEmpty
// before returning it as an error.
type Errors map[string]string

// Error implements the error interface.
// Fields are listed in name order so the text is stable.
func (e Errors) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(e))
	for _, field := range e.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has checks if a field has an error.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for a field, or an empty string.
func (e Errors) Get(field string) string {
	return e[field]
}

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []string {
	return slices.Sorted(maps.Keys(e))
}

// IsEmpty returns true if there are no validation errors.
func (e Errors) IsEmpty() bool {
	return len(e) == 0
}
