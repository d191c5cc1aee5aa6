// Package tourfile loads tour definitions authored as TOML or YAML files.
package tourfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// StepDef is one step of an authored tour.
type StepDef struct {
	Target string `toml:"target" yaml:"target"`
	Text   string `toml:"text" yaml:"text"`
	Image  string `toml:"image" yaml:"image"`
}

// OptionsDef carries optional overrides for the tour options. Pointer fields
// distinguish "absent" from zero values.
type OptionsDef struct {
	DisableScroll    *bool  `toml:"disable_scroll" yaml:"disable_scroll"`
	UseSpotlight     *bool  `toml:"use_spotlight" yaml:"use_spotlight"`
	Language         string `toml:"language" yaml:"language"`
	ScrollMargin     *int   `toml:"scroll_margin" yaml:"scroll_margin"`
	SpotlightPadding *int   `toml:"spotlight_padding" yaml:"spotlight_padding"`
}

// File is a complete tour definition.
type File struct {
	Name    string            `toml:"name" yaml:"name"`
	Steps   []StepDef         `toml:"steps" yaml:"steps"`
	Options *OptionsDef       `toml:"options" yaml:"options"`
	Vars    map[string]string `toml:"vars" yaml:"vars"`
}

// Load parses a tour definition, choosing the format by file extension
// (.toml, .yaml or .yml).
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tour file: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// Parse decodes a tour definition in the format named by ext.
func Parse(data []byte, ext string) (*File, error) {
	var f File
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse tour file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse tour file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported tour file format %q", ext)
	}

	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("tour file defines no steps")
	}
	if f.Name == "" {
		f.Name = "tour"
	}
	return &f, nil
}
