package i18n

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Parser turns the content of a catalog file into per-language translation maps.
type Parser interface {
	// Parse processes the given content string and returns a nested map structure.
	// The outer map is keyed by locale identifier, the inner map holds translation
	// keys and their values (strings or nested maps for dotted keys).
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension checks if the parser supports a given file extension.
	// The extension may or may not include a leading dot.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil if none matches.
func NewParserForFile(filename string) Parser {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), ".")) {
	case "json":
		return NewJSONParser()
	case "yaml", "yml":
		return NewYAMLParser()
	default:
		return nil
	}
}

// splitLanguages checks that every top-level entry is a language catalog.
func splitLanguages(data map[string]any) (map[string]map[string]any, error) {
	result := make(map[string]map[string]any, len(data))
	for lang, val := range data {
		catalog, ok := val.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("invalid structure for language '%s': expected map, got %T", lang, val)
		}
		result[lang] = catalog
	}
	if len(result) == 0 {
		return nil, fmt.Errorf("no translations found")
	}
	return result, nil
}
