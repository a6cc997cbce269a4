package ruleset

import "errors"

var (
	// ErrUnsupportedFormat is returned for formats other than YAML and JSON.
	ErrUnsupportedFormat = errors.New("unsupported document format")

	// ErrDecodingCancelled is returned when the context is done before decoding starts.
	ErrDecodingCancelled = errors.New("decoding cancelled")

	// ErrEmptyDocument is returned when a document has no content.
	ErrEmptyDocument = errors.New("empty document")

	// ErrInvalidDocument is returned when a document is not valid YAML or JSON
	// or does not have the expected shape.
	ErrInvalidDocument = errors.New("invalid document")

	// ErrInvalidRules is returned when a rule document names unknown rules or
	// carries arguments of the wrong type.
	ErrInvalidRules = errors.New("invalid rules")

	// ErrCustomRule is returned when a rule document uses the custom rule,
	// which needs a Go function and cannot be written in a file.
	ErrCustomRule = errors.New("custom rule cannot be declared in a document")

	// ErrFailedToReadFile is returned when a file cannot be read.
	ErrFailedToReadFile = errors.New("failed to read file")
)
