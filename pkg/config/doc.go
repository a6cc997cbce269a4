// Package config loads application configuration from environment variables
// into tagged structs.
//
// It wraps github.com/joho/godotenv (optional .env files) and
// github.com/caarlos0/env/v11 (struct tags). Each configuration type is parsed
// once per process and served from an in-memory cache afterwards.
//
//	type Config struct {
//		Env      string `env:"APP_ENV" envDefault:"development"`
//		LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatalf("parsing env: %v", err)
//	}
//
// LoadEnv reads additional .env files before the first Load. Reset clears the
// cache, which tests use after changing the environment.
//
// Errors can be compared with errors.Is: ErrParsingConfig, ErrLoadingEnvFile,
// ErrConfigNotLoaded and ErrNilPointer.
package config
