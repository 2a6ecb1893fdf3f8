// Package config loads CLI configuration from YAML files, including
// user-defined chroma styles.
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"

	pygments "github.com/alexanderstephan/pygments"
	"github.com/alexanderstephan/pygments/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrUnknownTokenType = errors.New("unknown token type in style definition")
)

// Config holds all configuration for RTF generation.
type Config struct {
	Style       string                       `yaml:"style"`       // Style name, built-in or defined below
	Font        FontConfig                   `yaml:"font"`        // Document font
	LineNumbers LineNumbersConfig            `yaml:"lineNumbers"` // Line number column
	Styles      map[string]map[string]string `yaml:"styles"`      // Custom styles: name -> token type -> entry
}

// FontConfig defines the document font.
type FontConfig struct {
	Family string `yaml:"family"` // Font family name (empty = generic fixed-pitch)
	Size   int    `yaml:"size"`   // Half-points (0 = viewer default)
}

// LineNumbersConfig defines the line number column.
type LineNumbersConfig struct {
	Enabled  bool `yaml:"enabled"`
	FontSize int  `yaml:"fontSize"` // Half-points (0 = library default)
	Start    int  `yaml:"start"`    // First line number (0 = 1)
	Step     int  `yaml:"step"`     // Print every nth number (0 = 1)
}

// Load reads and parses a config file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return &cfg, nil
}

// RegisterStyles validates and registers every custom style from the
// config with chroma's style registry, so cfg.Style can name them.
// Registration order is sorted by style name for determinism.
func (c *Config) RegisterStyles() error {
	names := make([]string, 0, len(c.Styles))
	for name := range c.Styles {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		style, err := buildStyle(name, c.Styles[name])
		if err != nil {
			return fmt.Errorf("style %q: %w", name, err)
		}
		styles.Register(style)
	}
	return nil
}

// buildStyle turns a token-type -> entry-string mapping into a chroma
// style. Colours are validated up front so malformed values surface as
// ErrInvalidColorFormat instead of silently rendering black.
func buildStyle(name string, entries map[string]string) (*chroma.Style, error) {
	builder := chroma.NewStyleBuilder(name)

	typeNames := make([]string, 0, len(entries))
	for tname := range entries {
		typeNames = append(typeNames, tname)
	}
	sort.Strings(typeNames)

	for _, tname := range typeNames {
		entry := entries[tname]
		tt, err := chroma.TokenTypeString(tname)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownTokenType, tname)
		}
		if err := validateEntryColors(entry); err != nil {
			return nil, err
		}
		builder.Add(tt, entry)
	}
	return builder.Build()
}

// validateEntryColors checks every colour fragment of a chroma entry
// string ("bold #ff0000 bg:#00ff00 border:#112233") for a well-formed
// 6-hex-digit value.
func validateEntryColors(entry string) error {
	for _, field := range strings.Fields(entry) {
		field = strings.TrimPrefix(field, "bg:")
		field = strings.TrimPrefix(field, "border:")
		if !strings.HasPrefix(field, "#") {
			continue
		}
		if _, err := pygments.ParseColor(field); err != nil {
			return err
		}
	}
	return nil
}
