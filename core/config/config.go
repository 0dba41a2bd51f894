package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	dotenvOnce sync.Once
	cache      sync.Map // reflect.Type -> loaded struct value
)

// Load parses environment variables into the tagged struct pointed to by v.
// A .env file in the working directory is loaded once per process before the
// first parse. Each configuration type is parsed only once; subsequent calls
// for the same type return the cached value.
func Load[T any](v *T) error {
	if v == nil {
		return fmt.Errorf("config: nil target")
	}

	dotenvOnce.Do(func() {
		// Missing .env is fine; real environments set variables directly.
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(*v)
	if cached, ok := cache.Load(t); ok {
		*v = cached.(T)
		return nil
	}

	if err := env.Parse(v); err != nil {
		return fmt.Errorf("config: parse %s: %w", t, err)
	}

	actual, _ := cache.LoadOrStore(t, *v)
	*v = actual.(T)
	return nil
}

// MustLoad is Load, panicking on failure. Useful at process startup where a
// bad environment should abort immediately.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(err)
	}
}
