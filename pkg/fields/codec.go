package fields

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the serialization used by Encode.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat resolves a format name. "yml" is accepted as YAML.
func ParseFormat(raw string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("fields: unsupported format %q", raw)
	}
}

// FormatFromPath infers the format from a file extension, defaulting to JSON.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

type document struct {
	Fields List `json:"fields" yaml:"fields"`
}

// Decode parses a field list from JSON, falling back to YAML. The payload is
// either a bare sequence of fields or a mapping with a "fields" key. Fields
// without an id receive one from gen (NewID when gen is nil). Kinds are
// normalised and the resulting list must satisfy List.Validate.
func Decode(data []byte, source string, gen IDGenerator) (List, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("fields: %s is empty", source)
	}
	if gen == nil {
		gen = NewID
	}

	list, err := parseList(trimmed)
	if err != nil {
		return nil, fmt.Errorf("fields: parse %s: %w", source, err)
	}

	out := make(List, 0, len(list))
	for i, field := range list {
		kind, err := ParseFieldType(string(field.Type))
		if err != nil {
			return nil, fmt.Errorf("fields: %s field %d: %w", source, i, err)
		}
		field.Type = kind
		if strings.TrimSpace(field.ID) == "" {
			field.ID = gen()
		}
		out = append(out, field.Normalize())
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("fields: %s: %w", source, err)
	}
	return out, nil
}

func parseList(data []byte) (List, error) {
	switch data[0] {
	case '[':
		var list List
		if err := json.Unmarshal(data, &list); err == nil {
			return list, nil
		}
	case '{':
		var doc document
		if err := json.Unmarshal(data, &doc); err == nil {
			return doc.Fields, nil
		}
	}

	var list List
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Fields, nil
}

// LoadFile reads and decodes a field list from disk.
func LoadFile(path string, gen IDGenerator) (List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("fields: read %s: %w", path, err)
	}
	return Decode(data, path, gen)
}

// Encode serializes the list wrapped in a {"fields": [...]} document.
func Encode(list List, format Format) ([]byte, error) {
	if list == nil {
		list = List{}
	}
	doc := document{Fields: list}
	switch format {
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return nil, fmt.Errorf("fields: encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("fields: encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	case FormatJSON, "":
		payload, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("fields: encode json: %w", err)
		}
		return append(payload, '\n'), nil
	default:
		return nil, fmt.Errorf("fields: unsupported format %q", format)
	}
}

// WriteFile encodes list using the format implied by the path extension.
func WriteFile(path string, list List) error {
	payload, err := Encode(list, FormatFromPath(path))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("fields: write %s: %w", path, err)
	}
	return nil
}
