package config

import (
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/ini.v1"
)

// fileFormat is the closed set of supported configuration file formats.
type fileFormat int

const (
	formatJSON fileFormat = iota
	formatXML
	formatINI
)

// FileSource reads configuration from a file on disk. Sources are required
// by default: a missing or unreadable file fails the Read with
// *MissingSourceError. Optional sources silently skip a missing file but
// still fail on malformed content.
type FileSource struct {
	path     string
	format   fileFormat
	optional bool
}

// JSONFile creates a required source backed by a JSON object file.
// Nested objects flatten to dotted keys.
func JSONFile(path string) *FileSource {
	return &FileSource{path: path, format: formatJSON}
}

// XMLFile creates a required source backed by an XML document.
// Element nesting flattens to dotted keys; the root element is skipped.
func XMLFile(path string) *FileSource {
	return &FileSource{path: path, format: formatXML}
}

// INIFile creates a required source backed by an INI file. Section names
// prefix their keys ("section.key"); keys in the default section are bare.
func INIFile(path string) *FileSource {
	return &FileSource{path: path, format: formatINI}
}

// Optional marks the source as tolerating absence.
func (s *FileSource) Optional() *FileSource {
	s.optional = true
	return s
}

// Apply implements the Source interface.
func (s *FileSource) Apply(store Store) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if s.optional && os.IsNotExist(err) {
			return nil
		}
		return &MissingSourceError{Path: s.path, Cause: err}
	}

	switch s.format {
	case formatJSON:
		return s.applyJSON(data, store)
	case formatXML:
		return s.applyXML(data, store)
	case formatINI:
		return s.applyINI(data, store)
	}
	return fmt.Errorf("config: unknown file format for %q", s.path)
}

func (s *FileSource) applyJSON(data []byte, store Store) error {
	var root map[string]any
	if err := json.Unmarshal(data, &root); err != nil {
		return fmt.Errorf("config: parse json %q: %w", s.path, err)
	}
	flatten("", root, store)
	return nil
}

func (s *FileSource) applyINI(data []byte, store Store) error {
	f, err := ini.Load(data)
	if err != nil {
		return fmt.Errorf("config: parse ini %q: %w", s.path, err)
	}
	for _, section := range f.Sections() {
		prefix := ""
		if section.Name() != ini.DefaultSection {
			prefix = strings.ToLower(section.Name()) + "."
		}
		for _, key := range section.Keys() {
			store.Set(prefix+strings.ToLower(key.Name()), key.Value())
		}
	}
	return nil
}

// applyXML walks the document tree and stores leaf element text under the
// dotted path of element names, root element excluded.
func (s *FileSource) applyXML(data []byte, store Store) error {
	dec := xml.NewDecoder(strings.NewReader(string(data)))

	var path []string
	var text strings.Builder
	for {
		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("config: parse xml %q: %w", s.path, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			path = append(path, strings.ToLower(t.Name.Local))
			text.Reset()
		case xml.CharData:
			text.Write(t)
		case xml.EndElement:
			// Leaf elements (depth > 1, past the root) contribute values.
			if v := strings.TrimSpace(text.String()); v != "" && len(path) > 1 {
				store.Set(strings.Join(path[1:], "."), v)
			}
			text.Reset()
			if len(path) > 0 {
				path = path[:len(path)-1]
			}
		}
	}
}

// flatten writes nested maps into the store under dotted keys.
func flatten(prefix string, node map[string]any, store Store) {
	for key, value := range node {
		full := strings.ToLower(key)
		if prefix != "" {
			full = prefix + "." + full
		}
		if child, ok := value.(map[string]any); ok {
			flatten(full, child, store)
			continue
		}
		store.Set(full, value)
	}
}
