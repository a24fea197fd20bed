// Package manifest reads and writes the JSON package descriptor that
// records the project's version, and keeps the lockfile in sync after a
// version change. The descriptor is package.json-compatible: all fields
// other than "version" pass through a release untouched.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest is one loaded package descriptor.
type Manifest struct {
	Path string

	fields map[string]json.RawMessage
}

// Load reads and parses the descriptor at path.
func Load(path string) (*Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	return &Manifest{Path: path, fields: fields}, nil
}

// Version returns the descriptor's version field, or "" when absent.
func (m *Manifest) Version() string {
	raw, ok := m.fields["version"]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// Name returns the descriptor's name field, or "" when absent.
func (m *Manifest) Name() string {
	raw, ok := m.fields["name"]
	if !ok {
		return ""
	}
	var v string
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	return v
}

// SetVersion replaces the descriptor's version field.
func (m *Manifest) SetVersion(version string) {
	raw, _ := json.Marshal(version)
	m.fields["version"] = raw
}

// Save writes the descriptor back to its path, indented with two spaces
// and ending with a newline.
func (m *Manifest) Save() error {
	raw, err := json.MarshalIndent(m.fields, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	raw = append(raw, '\n')

	if err := os.WriteFile(m.Path, raw, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", m.Path, err)
	}
	return nil
}
