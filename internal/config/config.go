// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// DefaultOutput is the file written in the working directory when no other path is configured
const DefaultOutput = "Your_Resume1.docx"

// Environment variables consulted by ApplyEnv
const (
	EnvOutput     = "RESUME_OUTPUT"
	EnvFontFamily = "RESUME_FONT_FAMILY"
)

// Config represents the CLI configuration that can be loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or come from CLI flags.
type Config struct {
	Output string `json:"output,omitempty" yaml:"output,omitempty" validate:"omitempty,endswith=.docx"` // Path of the generated document

	// Document styling
	FontFamily      string  `json:"font_family,omitempty" yaml:"font_family,omitempty" validate:"omitempty,max=64"`
	FontSize        float64 `json:"font_size,omitempty" yaml:"font_size,omitempty" validate:"gte=0,lte=72"`                       // Body text, points
	NameFontSize    float64 `json:"name_font_size,omitempty" yaml:"name_font_size,omitempty" validate:"gte=0,lte=96"`             // Candidate name, points
	HeadingFontSize float64 `json:"heading_font_size,omitempty" yaml:"heading_font_size,omitempty" validate:"gte=0,lte=72"`       // Section headings, points
	PictureWidth    float64 `json:"picture_width_inches,omitempty" yaml:"picture_width_inches,omitempty" validate:"gte=0,lte=6"` // Profile picture width

	Verbose bool `json:"verbose,omitempty" yaml:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Output:          DefaultOutput,
		FontFamily:      "Calibri",
		FontSize:        11,
		NameFontSize:    24,
		HeadingFontSize: 14,
		PictureWidth:    1.5,
	}
}

// LoadConfig loads configuration from a JSON file, or a YAML file when the
// extension is .yaml or .yml.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.Output != "" {
		dir := filepath.Dir(c.Output)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return fmt.Errorf("config error: output directory not found: %s", dir)
		}
	}

	return nil
}

// ApplyEnv overrides fields from the environment, read through getenv
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvOutput); v != "" {
		c.Output = v
	}
	if v := getenv(EnvFontFamily); v != "" {
		c.FontFamily = v
	}
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.FontFamily == "" {
		result.FontFamily = defaults.FontFamily
	}
	if result.FontSize == 0 {
		result.FontSize = defaults.FontSize
	}
	if result.NameFontSize == 0 {
		result.NameFontSize = defaults.NameFontSize
	}
	if result.HeadingFontSize == 0 {
		result.HeadingFontSize = defaults.HeadingFontSize
	}
	if result.PictureWidth == 0 {
		result.PictureWidth = defaults.PictureWidth
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
