package config

import (
	"os"
	"strings"
)

// EnvSource merges process environment variables into the store.
type EnvSource struct {
	prefix  string
	environ func() []string
}

// Env creates a source over the process environment. When prefix is
// non-empty, only variables with that prefix are included and the prefix is
// stripped. Variable names map to lowercase dotted keys: APP_SERVER_ADDR
// with prefix "APP_" becomes "server.addr".
func Env(prefix string) *EnvSource {
	return &EnvSource{prefix: prefix, environ: os.Environ}
}

// Apply implements the Source interface.
func (s *EnvSource) Apply(store Store) error {
	for _, pair := range s.environ() {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			continue
		}
		if s.prefix != "" {
			if !strings.HasPrefix(name, s.prefix) {
				continue
			}
			name = strings.TrimPrefix(name, s.prefix)
		}
		key := strings.ToLower(strings.ReplaceAll(name, "_", "."))
		store.Set(key, value)
	}
	return nil
}

// ArgsSource merges command-line arguments of the form --key=value or
// key=value into the store. Arguments without '=' are ignored.
type ArgsSource struct {
	args []string
}

// Args creates a source over command-line arguments, typically os.Args[1:].
func Args(args []string) *ArgsSource {
	return &ArgsSource{args: args}
}

// Apply implements the Source interface.
func (s *ArgsSource) Apply(store Store) error {
	for _, arg := range s.args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			continue
		}
		key = strings.ToLower(strings.TrimLeft(key, "-"))
		if key == "" {
			continue
		}
		store.Set(key, value)
	}
	return nil
}

// MapSource merges a fixed set of in-memory pairs into the store.
type MapSource map[string]any

// Map creates a source over in-memory key-value pairs.
func Map(values map[string]any) MapSource {
	return MapSource(values)
}

// Apply implements the Source interface.
func (s MapSource) Apply(store Store) error {
	for key, value := range s {
		store.Set(strings.ToLower(key), value)
	}
	return nil
}
