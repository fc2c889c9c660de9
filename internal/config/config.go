// Package config loads YAML style files and applies them over a base style.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	latex2png "github.com/alnah/go-latex2png"
	"github.com/alnah/go-latex2png/internal/fileutil"
	"github.com/alnah/go-latex2png/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrNestedPreset    = errors.New("preset cannot reference another preset")
	ErrInvalidField    = errors.New("invalid field value")
)

// Field length limits.
const (
	MaxPresetLength = 64   // matches asset name limit
	MaxColorLength  = 16   // "#rrggbb" with room for whitespace
	MaxFontLength   = 4096 // font file path (PATH_MAX)
	MaxAssetsLength = 4096 // preset directory path
)

// DirName is the directory under the user config dir searched for named configs.
const DirName = "go-latex2png"

// Config is a style file. Every field is optional; a zero value keeps
// whatever the base style holds.
type Config struct {
	Preset     string   `yaml:"preset,omitempty"`     // Preset applied before the fields below
	Assets     string   `yaml:"assets,omitempty"`     // Directory of custom presets
	Background string   `yaml:"background,omitempty"` // "#rgb" or "#rrggbb"
	Text       string   `yaml:"text,omitempty"`
	Font       string   `yaml:"font,omitempty"` // Built-in family or font file path
	FontSize   float64  `yaml:"fontSize,omitempty"`
	DPI        float64  `yaml:"dpi,omitempty"`
	Width      float64  `yaml:"width,omitempty"`     // inches
	RowHeight  float64  `yaml:"rowHeight,omitempty"` // inches
	MinHeight  float64  `yaml:"minHeight,omitempty"` // inches
	Padding    *float64 `yaml:"padding,omitempty"`   // inches; 0 is meaningful
}

// PresetLoader returns the YAML of a named preset.
type PresetLoader interface {
	LoadStyle(name string) ([]byte, error)
}

// Validate checks field lengths, colors and signs. Range checks that depend
// on the merged result are left to latex2png.Style.Validate.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"preset", c.Preset, MaxPresetLength},
		{"assets", c.Assets, MaxAssetsLength},
		{"background", c.Background, MaxColorLength},
		{"text", c.Text, MaxColorLength},
		{"font", c.Font, MaxFontLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	for _, f := range fields[2:4] {
		if f.value == "" {
			continue
		}
		if _, err := latex2png.ParseColor(f.value); err != nil {
			return fmt.Errorf("%s: %w", f.name, err)
		}
	}

	numbers := []struct {
		name  string
		value float64
	}{
		{"fontSize", c.FontSize},
		{"dpi", c.DPI},
		{"width", c.Width},
		{"rowHeight", c.RowHeight},
		{"minHeight", c.MinHeight},
	}
	for _, n := range numbers {
		if n.value < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %.2f", ErrInvalidField, n.name, n.value)
		}
	}
	if c.Padding != nil && *c.Padding < 0 {
		return fmt.Errorf("%w: padding must not be negative, got %.2f", ErrInvalidField, *c.Padding)
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Parse decodes a style file strictly and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yamlutil.Decode(data, &cfg, true); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Apply overlays the non-zero fields of c onto base. The preset is not
// consulted; see Resolve.
func (c *Config) Apply(base latex2png.Style) (latex2png.Style, error) {
	s := base
	if c.Background != "" {
		bg, err := latex2png.ParseColor(c.Background)
		if err != nil {
			return base, fmt.Errorf("background: %w", err)
		}
		s.Background = bg
	}
	if c.Text != "" {
		fg, err := latex2png.ParseColor(c.Text)
		if err != nil {
			return base, fmt.Errorf("text: %w", err)
		}
		s.Text = fg
	}
	if c.Font != "" {
		s.FontFamily = c.Font
	}
	setIfPositive(&s.FontSize, c.FontSize)
	setIfPositive(&s.DPI, c.DPI)
	setIfPositive(&s.CanvasWidth, c.Width)
	setIfPositive(&s.RowHeight, c.RowHeight)
	setIfPositive(&s.MinCanvasHeight, c.MinHeight)
	if c.Padding != nil {
		s.Padding = *c.Padding
	}
	return s, nil
}

func setIfPositive(dst *float64, v float64) {
	if v > 0 {
		*dst = v
	}
}

// Resolve builds the final style: base, then the named preset if any, then
// the fields of c. The result is validated.
func (c *Config) Resolve(presets PresetLoader, base latex2png.Style) (latex2png.Style, error) {
	s := base
	if c.Preset != "" {
		data, err := presets.LoadStyle(c.Preset)
		if err != nil {
			return base, err
		}
		preset, err := Parse(data)
		if err != nil {
			return base, fmt.Errorf("preset %q: %w", c.Preset, err)
		}
		if preset.Preset != "" || preset.Assets != "" {
			return base, fmt.Errorf("%w: %q", ErrNestedPreset, c.Preset)
		}
		if s, err = preset.Apply(s); err != nil {
			return base, err
		}
	}

	s, err := c.Apply(s)
	if err != nil {
		return base, err
	}
	if err := s.Validate(); err != nil {
		return base, err
	}
	return s, nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return Parse(data)
}

// SearchPaths returns the files LoadConfig tries for a config name, in order:
// ./name.yaml, ./name.yml, then the same two under the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, DirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file among SearchPaths(name).
func resolveConfigPath(name string) (string, error) {
	triedPaths := SearchPaths(name)
	for _, p := range triedPaths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// FromStyle returns the config that reproduces s when applied to any base.
func FromStyle(s latex2png.Style) Config {
	padding := s.Padding
	return Config{
		Background: latex2png.FormatColor(s.Background),
		Text:       latex2png.FormatColor(s.Text),
		Font:       s.FontFamily,
		FontSize:   s.FontSize,
		DPI:        s.DPI,
		Width:      s.CanvasWidth,
		RowHeight:  s.RowHeight,
		MinHeight:  s.MinCanvasHeight,
		Padding:    &padding,
	}
}
