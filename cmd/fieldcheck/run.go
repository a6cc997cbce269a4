package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/fieldcheck/pkg/i18n"
	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/ruleset"
	"github.com/dmitrymomot/fieldcheck/pkg/translator"
	"github.com/dmitrymomot/fieldcheck/pkg/validator"
)

const serviceName = "fieldcheck"

// Exit codes.
const (
	exitValid   = 0
	exitInvalid = 1
	exitError   = 2
)

type runIDKey struct{}

// report is what the command prints.
type report struct {
	Valid  bool             `json:"valid" yaml:"valid"`
	Errors validator.Errors `json:"errors" yaml:"errors"`
	Data   map[string]any   `json:"data" yaml:"data"`
}

// run executes the command and returns its exit code.
func run(ctx context.Context, cfg Config, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet(serviceName, flag.ContinueOnError)
	flags.SetOutput(stderr)
	rulesPath := flags.String("rules", "", "rule file (.yaml, .yml or .json)")
	dataPath := flags.String("data", "", "record file (.yaml, .yml or .json)")
	output := flags.String("output", cfg.Output, "report format: json or yaml")
	locale := flags.String("locale", cfg.Locale, "message language")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitValid
		}
		return exitError
	}
	if *rulesPath == "" || *dataPath == "" {
		fmt.Fprintln(stderr, "fieldcheck: -rules and -data are required")
		flags.Usage()
		return exitError
	}
	cfg.Output = *output
	cfg.Locale = *locale

	logOpts, err := cfg.loggerOptions()
	if err != nil {
		fmt.Fprintf(stderr, "fieldcheck: %v\n", err)
		return exitError
	}
	log := logger.New(append(logOpts,
		logger.WithOutput(stderr),
		logger.WithContextValue("run_id", runIDKey{}),
	)...)

	ctx = context.WithValue(ctx, runIDKey{}, uuid.NewString())
	ctx = i18n.SetLocale(ctx, cfg.Locale)

	code, err := check(ctx, cfg, *rulesPath, *dataPath, stdout, log)
	if err != nil {
		log.ErrorContext(ctx, "check failed", logger.Error(err))
		return exitError
	}
	return code
}

func check(ctx context.Context, cfg Config, rulesPath, dataPath string, stdout io.Writer, log *slog.Logger) (int, error) {
	format, err := cfg.outputFormat()
	if err != nil {
		return exitError, err
	}

	set, err := ruleset.LoadFile(ctx, rulesPath)
	if err != nil {
		return exitError, err
	}
	log.DebugContext(ctx, "rules loaded", logger.Path(rulesPath), logger.Count(len(set)))

	record, err := ruleset.LoadRecordFile(ctx, dataPath)
	if err != nil {
		return exitError, err
	}

	tr, err := newTranslator(ctx, cfg, log)
	if err != nil {
		return exitError, err
	}

	locale := i18n.GetLocale(ctx)
	v, err := validator.New(set,
		validator.WithTranslator(tr),
		validator.WithLocale(locale),
		validator.WithLogger(log),
	)
	if err != nil {
		return exitError, err
	}

	errs, err := v.Validate(record)
	if err != nil {
		return exitError, err
	}

	rep := report{Valid: errs.IsEmpty(), Errors: errs, Data: v.ValidatedData()}
	if err := writeReport(stdout, format, rep); err != nil {
		return exitError, err
	}

	log.InfoContext(ctx, "record checked",
		logger.Path(dataPath),
		slog.String("locale", locale),
		slog.Bool("valid", rep.Valid),
		logger.Count(len(errs)),
	)
	if !rep.Valid {
		return exitInvalid, nil
	}
	return exitValid, nil
}

// newTranslator loads the catalogs from CatalogDir, or the bundled ones when it is empty.
func newTranslator(ctx context.Context, cfg Config, log *slog.Logger) (*i18n.Translator, error) {
	opts := []i18n.Option{i18n.WithLogger(log.With(logger.Component("i18n")))}

	var (
		tr  *i18n.Translator
		err error
	)
	if cfg.CatalogDir != "" {
		tr, err = i18n.NewTranslator(ctx, i18n.NewDirectoryAdapter(i18n.NewYAMLParser(), cfg.CatalogDir), opts...)
	} else {
		tr, err = translator.NewCatalog(ctx, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("loading message catalogs: %w", err)
	}

	if locale := i18n.GetLocale(ctx); !slices.Contains(tr.SupportedLanguages(), locale) {
		log.WarnContext(ctx, "locale has no catalog, using default language",
			slog.String("locale", locale),
			slog.String("default", tr.DefaultLanguage()),
		)
	}
	return tr, nil
}

func writeReport(w io.Writer, format ruleset.Format, rep report) error {
	switch format {
	case ruleset.FormatYAML:
		rep.Data = plainValues(rep.Data).(map[string]any)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return err
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
}

// plainValues replaces json.Number with int64 or float64 so YAML prints numbers unquoted.
func plainValues(v any) any {
	switch t := v.(type) {
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = plainValues(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = plainValues(val)
		}
		return out
	}
	return v
}
