package ruleset

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

// document is the file shape of a rule set:
//
//	fields:
//	  email:
//	    required: true
//	    email: true
//	    textKey: email
//	  age:
//	    min: 18
type document struct {
	Fields map[string]map[string]any `yaml:"fields" json:"fields"`
}

// Decode parses a rule document and checks every field's rules.
func Decode(ctx context.Context, format Format, data []byte) (validator.RuleSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrDecodingCancelled, err)
	}

	var doc document
	if err := unmarshal(format, data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Fields) == 0 {
		return nil, fmt.Errorf("%w: no fields", ErrInvalidDocument)
	}

	set := make(validator.RuleSet, len(doc.Fields))
	for _, field := range slices.Sorted(maps.Keys(doc.Fields)) {
		rules := doc.Fields[field]
		if _, ok := rules[validator.RuleCustom]; ok {
			return nil, fmt.Errorf("%w: field %q", ErrCustomRule, field)
		}
		if rules == nil {
			rules = map[string]any{}
		}
		set[field] = validator.Rules(rules)
	}

	if err := validator.CheckRuleSet(set); err != nil {
		return nil, errors.Join(ErrInvalidRules, err)
	}
	return set, nil
}

// LoadFile reads and decodes a rule document. The format comes from the extension.
func LoadFile(ctx context.Context, path string) (validator.RuleSet, error) {
	format, data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	set, err := Decode(ctx, format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// DecodeRecord parses a record: a single object of field names to values.
// JSON numbers are returned as json.Number.
func DecodeRecord(ctx context.Context, format Format, data []byte) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrDecodingCancelled, err)
	}

	var record map[string]any
	if err := unmarshal(format, data, &record); err != nil {
		return nil, err
	}
	if record == nil {
		record = map[string]any{}
	}
	return record, nil
}

// LoadRecordFile reads and decodes a record. The format comes from the extension.
func LoadRecordFile(ctx context.Context, path string) (map[string]any, error) {
	format, data, err := readFile(ctx, path)
	if err != nil {
		return nil, err
	}

	record, err := DecodeRecord(ctx, format, data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return record, nil
}

func readFile(ctx context.Context, path string) (Format, []byte, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return "", nil, err
	}
	if err := ctx.Err(); err != nil {
		return "", nil, errors.Join(ErrDecodingCancelled, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", nil, errors.Join(ErrFailedToReadFile, err)
	}
	return format, data, nil
}
