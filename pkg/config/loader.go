package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds one parsed configuration value. once guards the parse so
// concurrent first loads of the same type run env.Parse a single time.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	// cache maps a type name to its *entry
	cache sync.Map

	defaultEnvLoaded sync.Once
)

// Load loads environment variables into the provided configuration struct.
// Each configuration type is parsed once; later calls copy the cached value.
// A failed parse is not cached, so a later call can succeed once the
// environment is fixed.
//
// The default .env file in the working directory is loaded on first use if
// present. Variables already set in the process environment win over it.
//
// Example:
//
//	type Config struct {
//		Locale string `env:"FIELDCHECK_LOCALE" envDefault:"en"`
//		Output string `env:"FIELDCHECK_OUTPUT" envDefault:"json"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		// Handle error
//	}
func Load[T any](v *T) error {
	defaultEnvLoaded.Do(func() {
		// the .env file is optional
		_ = godotenv.Load()
	})
	if v == nil {
		return ErrNilPointer
	}

	typeName := getTypeName[T]()
	actual, _ := cache.LoadOrStore(typeName, &entry{})
	e := actual.(*entry)

	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		cache.CompareAndDelete(typeName, e)
		return e.err
	}

	cached, ok := e.value.(T)
	if !ok {
		return ErrConfigNotLoaded
	}
	*v = cached
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
// This is useful for configurations that are required for the application to start.
//
// Example:
//
//	var cfg Config
//	config.MustLoad(&cfg)
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// LoadEnv loads the given .env files into the process environment. Variables
// that are already set are kept. Without arguments the default .env is loaded.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Reset drops every cached configuration so the next Load parses the
// environment again. Intended for tests.
func Reset() {
	cache.Clear()
}

// getTypeName returns a string identifier for the generic type T
func getTypeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
