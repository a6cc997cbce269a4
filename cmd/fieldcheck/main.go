// Command fieldcheck validates a record file against a rule file.
//
//	fieldcheck -rules rules.yaml -data record.json
//
// It prints the validation report to stdout and exits with 0 when the record
// is valid, 1 when a field failed and 2 on a configuration or I/O error.
// Settings are read from the environment (and an optional .env file):
//
//	APP_ENV                 development, staging or production
//	LOG_LEVEL               debug, info, warn or error
//	LOG_FORMAT              text or json; defaults to the APP_ENV preset
//	FIELDCHECK_LOCALE       message language, default en
//	FIELDCHECK_CATALOG_DIR  directory of YAML catalogs replacing the bundled ones
//	FIELDCHECK_OUTPUT       json or yaml, default json
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/fieldcheck/pkg/config"
)

func main() {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "fieldcheck: %v\n", err)
		os.Exit(exitError)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, cfg, os.Args[1:], os.Stdout, os.Stderr)
	stop()

	os.Exit(code)
}
