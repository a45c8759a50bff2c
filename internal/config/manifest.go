package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML form of a generation request.
type Manifest struct {
	// Namespace is the C++ namespace wrapping the resource table.
	Namespace string `yaml:"namespace"`
	// Name is the symbol name of the resource table.
	Name string `yaml:"name"`
	// Output is the path of the generated header.
	Output string `yaml:"output"`
	// Guards is the include guard style ("define" or "pragma").
	Guards string `yaml:"guards"`
	// Resources are embedded before any resources given on the command line.
	Resources []ResourceEntry `yaml:"resources"`
}

// LoadManifest reads and parses a manifest file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Field: "config", Value: path, Err: err}
	}
	m, err := ParseManifest(data)
	if err != nil {
		return nil, &Error{Field: "config", Value: path, Err: err}
	}
	return m, nil
}

// ParseManifest decodes a manifest. Unknown keys are rejected.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if m.Guards != "" {
		if _, err := ParseGuardStyle(m.Guards); err != nil {
			return nil, err
		}
	}
	for i, entry := range m.Resources {
		if err := ValidateEntry(entry); err != nil {
			return nil, fmt.Errorf("resource #%d: %w", i+1, err)
		}
	}
	return &m, nil
}

// Apply copies manifest values into cfg for every option the caller did not set explicitly.
// isSet reports whether the option with the given flag name was set on the command line.
func (m *Manifest) Apply(cfg *Config, isSet func(name string) bool) error {
	if m.Namespace != "" && !isSet("namespace") {
		cfg.Namespace = m.Namespace
	}
	if m.Name != "" && !isSet("name") {
		cfg.Name = m.Name
	}
	if m.Output != "" && !isSet("output") {
		cfg.Output = m.Output
	}
	if m.Guards != "" && !isSet("guards") {
		g, err := ParseGuardStyle(m.Guards)
		if err != nil {
			return err
		}
		cfg.Guards = g
	}
	return nil
}
