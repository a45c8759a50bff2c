package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"
)

// Default values applied when an option is absent or empty.
const (
	DefaultNamespace = "resources"
	DefaultName      = "resources"
	DefaultOutput    = "resources.hpp"
)

var (
	ErrInvalidGuards    = errors.New("must be one of define, pragma")
	ErrMissingSeparator = errors.New("expected file:alias")
	ErrEmptyPath        = errors.New("file path is empty")
	ErrEmptyAlias       = errors.New("alias is empty")
	ErrNotIdentifier    = errors.New("must be a C++ identifier")
)

// Error is a configuration error. It is raised before any output is written.
type Error struct {
	// Field names the offending option or argument (e.g. "guards", "resource").
	Field string
	// Value is the rejected input.
	Value string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

var _ pflag.Value = (*GuardStyle)(nil)

// GuardStyle selects how the generated header protects against double inclusion.
type GuardStyle int

const (
	// GuardDefine emits an #ifndef/#define/#endif triple.
	GuardDefine GuardStyle = iota
	// GuardPragma emits a single #pragma once.
	GuardPragma
)

// ParseGuardStyle converts "define" or "pragma" into a GuardStyle.
func ParseGuardStyle(s string) (GuardStyle, error) {
	switch s {
	case "define":
		return GuardDefine, nil
	case "pragma":
		return GuardPragma, nil
	default:
		return GuardDefine, &Error{Field: "guards", Value: s, Err: ErrInvalidGuards}
	}
}

func (g GuardStyle) String() string {
	if g == GuardPragma {
		return "pragma"
	}
	return "define"
}

// Set implements pflag.Value.
func (g *GuardStyle) Set(s string) error {
	v, err := ParseGuardStyle(s)
	if err != nil {
		return ErrInvalidGuards
	}
	*g = v
	return nil
}

// Type implements pflag.Value.
func (g *GuardStyle) Type() string {
	return "define|pragma"
}

// Config is the resolved generation configuration.
type Config struct {
	// Namespace is the C++ namespace wrapping the resource table.
	Namespace string
	// Name is the symbol name of the resource table.
	Name string
	// Output is the path of the generated header.
	Output string
	// Guards is the include guard style.
	Guards GuardStyle
}

// ResourceEntry is one file requested for embedding under an alias.
type ResourceEntry struct {
	Path  string `yaml:"path"`
	Alias string `yaml:"alias"`
}

// ParseEntry splits a "path:alias" token on its first colon.
// Paths that themselves contain a colon cannot be expressed.
func ParseEntry(s string) (ResourceEntry, error) {
	path, alias, ok := strings.Cut(s, ":")
	if !ok {
		return ResourceEntry{}, &Error{Field: "resource", Value: s, Err: ErrMissingSeparator}
	}
	entry := ResourceEntry{Path: path, Alias: alias}
	if err := ValidateEntry(entry); err != nil {
		return ResourceEntry{}, &Error{Field: "resource", Value: s, Err: err}
	}
	return entry, nil
}

// ParseEntries parses every positional argument, preserving order.
func ParseEntries(args []string) ([]ResourceEntry, error) {
	entries := make([]ResourceEntry, 0, len(args))
	for _, arg := range args {
		entry, err := ParseEntry(arg)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// ValidateEntry checks that both halves of an entry are present.
func ValidateEntry(entry ResourceEntry) error {
	if entry.Path == "" {
		return ErrEmptyPath
	}
	if entry.Alias == "" {
		return ErrEmptyAlias
	}
	return nil
}

// NormalizeOutput appends ".hpp" unless the path already ends in ".h" or ".hpp".
func NormalizeOutput(path string) string {
	if strings.HasSuffix(path, ".h") || strings.HasSuffix(path, ".hpp") {
		return path
	}
	return path + ".hpp"
}

// ApplyDefaults replaces empty fields with their defaults and normalizes the output path.
func ApplyDefaults(cfg *Config) {
	if cfg.Namespace == "" {
		cfg.Namespace = DefaultNamespace
	}
	if cfg.Name == "" {
		cfg.Name = DefaultName
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	cfg.Output = NormalizeOutput(cfg.Output)
}

// Validate checks the resolved configuration and entries.
func Validate(cfg *Config, entries []ResourceEntry) error {
	switch cfg.Guards {
	case GuardDefine, GuardPragma:
		// ok
	default:
		return &Error{Field: "guards", Value: strconv.Itoa(int(cfg.Guards)), Err: ErrInvalidGuards}
	}
	if !isIdentifier(cfg.Namespace) {
		return &Error{Field: "namespace", Value: cfg.Namespace, Err: ErrNotIdentifier}
	}
	if !isIdentifier(cfg.Name) {
		return &Error{Field: "name", Value: cfg.Name, Err: ErrNotIdentifier}
	}

	for _, entry := range entries {
		if err := ValidateEntry(entry); err != nil {
			return &Error{Field: "resource", Value: entry.Path + ":" + entry.Alias, Err: err}
		}
	}
	return nil
}

// isIdentifier reports whether s is an ASCII C++ identifier.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_', 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// DuplicateAliases returns every alias used by more than one entry, in order of first repeat.
func DuplicateAliases(entries []ResourceEntry) []string {
	seen := make(map[string]int)
	var dups []string
	for _, entry := range entries {
		seen[entry.Alias]++
		if seen[entry.Alias] == 2 {
			dups = append(dups, entry.Alias)
		}
	}
	return dups
}
