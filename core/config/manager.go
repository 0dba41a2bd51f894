package config

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// Store is the flat key-value structure sources write into.
type Store map[string]any

// Set stores a value under key, overriding any earlier source's value.
func (s Store) Set(key string, value any) {
	s[key] = value
}

// Source serializes configuration data into a Store.
type Source interface {
	Apply(Store) error
}

// Manager holds configuration merged from an ordered list of sources.
type Manager struct {
	store Store
}

// Read applies the sources in order into one store. Subsequent sources
// override previous sources key by key. The first failing source aborts the
// read; a missing required file surfaces as *MissingSourceError.
func Read(srcs ...Source) (*Manager, error) {
	store := make(Store)
	for _, src := range srcs {
		if err := src.Apply(store); err != nil {
			return nil, err
		}
	}
	return &Manager{store: store}, nil
}

// Get returns the raw value for key.
func (m *Manager) Get(key string) (any, bool) {
	v, ok := m.store[key]
	return v, ok
}

// String returns the value for key rendered as a string, or the fallback
// when the key is absent.
func (m *Manager) String(key, fallback string) string {
	v, ok := m.store[key]
	if !ok {
		return fallback
	}
	return fmt.Sprint(v)
}

// Unmarshal decodes the merged store into the struct pointed to by v,
// using `config` field tags. Nested structs map to dotted key prefixes.
func (m *Manager) Unmarshal(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "config",
		Result:           v,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("config: build decoder: %w", err)
	}
	return dec.Decode(nest(m.store))
}

// nest expands dotted keys into nested maps so mapstructure can walk
// embedded struct fields: "server.addr" becomes {"server": {"addr": ...}}.
func nest(flat Store) map[string]any {
	out := make(map[string]any, len(flat))
	for key, value := range flat {
		parts := splitKey(key)
		node := out
		for i, part := range parts {
			if i == len(parts)-1 {
				node[part] = value
				break
			}
			next, ok := node[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				node[part] = next
			}
			node = next
		}
	}
	return out
}

func splitKey(key string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			parts = append(parts, key[start:i])
			start = i + 1
		}
	}
	return append(parts, key[start:])
}
