package show

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a records document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrNotCollection is returned when a document is neither a sequence of
	// records nor an object holding one.
	ErrNotCollection = errors.New("document must be a list of shows or an object with a \"shows\" list")

	// ErrEmptyDocument is returned for a document with no content.
	ErrEmptyDocument = errors.New("document is empty")
)

// FormatForPath picks the document format from a file extension. Anything
// that is not .yaml or .yml is read as JSON.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// LoadFile reads and decodes the records document at path.
func LoadFile(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	records, err := Decode(data, FormatForPath(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// Decode parses a records document. The top-level value must be a sequence
// of records or an object whose "shows" field is one. Elements that are not
// objects become records with every field absent.
func Decode(data []byte, format Format) ([]Record, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var doc any
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid yaml: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid json: %w", err)
		}
	}

	items, err := collection(doc)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(items))
	for _, item := range items {
		m, _ := asObject(item)
		records = append(records, FromMap(m))
	}
	return records, nil
}

func collection(doc any) ([]any, error) {
	if items, ok := doc.([]any); ok {
		return items, nil
	}
	m, ok := asObject(doc)
	if !ok {
		return nil, ErrNotCollection
	}
	items, ok := m["shows"].([]any)
	if !ok {
		return nil, ErrNotCollection
	}
	return items, nil
}

// asObject normalizes the two map shapes decoders produce. yaml.v3 yields
// map[any]any when a mapping has non-string keys.
func asObject(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}
