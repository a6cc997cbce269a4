package i18n

import "errors"

// Package errors use descriptive messages for debugging while avoiding implementation details.
// Context cancellation errors are separated to allow proper error handling in timeouts.
var (
	// Translator construction
	ErrNilAdapter         = errors.New("translation adapter is nil")
	ErrEmptyLanguageCode  = errors.New("empty language code found")
	ErrNilLanguageCatalog = errors.New("nil translations map for language")

	// JSON operations
	ErrJSONParsingCancelled = errors.New("json parsing cancelled")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON content")

	// YAML operations
	ErrYAMLParsingCancelled = errors.New("yaml parsing cancelled")
	ErrFailedToParseYAML    = errors.New("failed to parse YAML content")

	// File operations
	ErrLoadingFileCancelled = errors.New("loading translation file cancelled")
	ErrFailedToReadFile     = errors.New("failed to read translation file")
	ErrFailedToParseFile    = errors.New("failed to parse translation file")
	ErrEmptyFile            = errors.New("translation file is empty")

	// Directory and embedded filesystem operations
	ErrFailedToAccessDirectory = errors.New("failed to access directory")
	ErrFailedToReadDirectory   = errors.New("failed to read directory")
	ErrNoTranslationFiles      = errors.New("no valid translation files found")
)
