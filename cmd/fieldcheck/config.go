package main

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/fieldcheck/pkg/logger"
	"github.com/dmitrymomot/fieldcheck/pkg/ruleset"
)

// Config is the command configuration read from the environment.
type Config struct {
	Env        string `env:"APP_ENV" envDefault:"development"`
	LogLevel   string `env:"LOG_LEVEL"`
	LogFormat  string `env:"LOG_FORMAT"`
	Locale     string `env:"FIELDCHECK_LOCALE" envDefault:"en"`
	CatalogDir string `env:"FIELDCHECK_CATALOG_DIR"`
	Output     string `env:"FIELDCHECK_OUTPUT" envDefault:"json"`
}

// loggerOptions turns the logging settings into logger options. The
// environment preset comes first so LOG_LEVEL and LOG_FORMAT override it.
func (c Config) loggerOptions() ([]logger.Option, error) {
	opts := []logger.Option{logger.WithEnvironment(c.Env, serviceName)}

	if c.LogLevel != "" {
		level, err := logger.ParseLevel(c.LogLevel)
		if err != nil {
			return nil, err
		}
		opts = append(opts, logger.WithLevel(level))
	}

	switch f := logger.Format(strings.ToLower(c.LogFormat)); f {
	case "":
	case logger.FormatJSON, logger.FormatText:
		opts = append(opts, logger.WithFormat(f))
	default:
		return nil, fmt.Errorf("invalid log format %q: must be %q or %q", c.LogFormat, logger.FormatJSON, logger.FormatText)
	}

	return opts, nil
}

func (c Config) outputFormat() (ruleset.Format, error) {
	return ruleset.ParseFormat(c.Output)
}
