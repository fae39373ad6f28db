// Package config loads optional report settings from an HCL file.
//
// Example file:
//
//	compressed = true
//	linefeed   = true
//	wrap_every = 8
//	parser     = "line"
//	format     = "tsv"
//
//	log {
//	  level  = "debug"
//	  format = "json"
//	}
package config

import (
	"fmt"
	"slices"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Supported values for the enumerated settings.
var (
	Parsers    = []string{"line", "tree"}
	Formats    = []string{"tsv", "json", "cyclonedx"}
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
)

// Config holds every setting a report run needs. Pointer fields are nil when
// the file does not set them.
type Config struct {
	Compressed *bool   `hcl:"compressed,optional"`
	LineFeed   *bool   `hcl:"linefeed,optional"`
	WrapEvery  *int    `hcl:"wrap_every,optional"`
	Parser     *string `hcl:"parser,optional"`
	Format     *string `hcl:"format,optional"`
	Total      *bool   `hcl:"total,optional"`
	Capacity   *int    `hcl:"capacity,optional"`
	Log        *Log    `hcl:"log,block"`
}

// Log configures diagnostics.
type Log struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Settings is the resolved configuration with defaults applied.
type Settings struct {
	Compressed bool
	LineFeed   bool
	WrapEvery  int
	Parser     string
	Format     string
	Total      bool
	Capacity   int
	LogLevel   string
	LogFormat  string
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Settings {
	return Settings{
		WrapEvery: 5,
		Parser:    "line",
		Format:    "tsv",
		Total:     true,
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// LoadFile parses and decodes the HCL file at path.
func LoadFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, diags)
	}
	return decode(file)
}

// Parse decodes HCL source held in memory. filename is used in diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, diags)
	}
	return decode(file)
}

func decode(file *hcl.File) (*Config, error) {
	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %w", diags)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated and numeric settings.
func (c *Config) Validate() error {
	if err := oneOf("parser", c.Parser, Parsers); err != nil {
		return err
	}
	if err := oneOf("format", c.Format, Formats); err != nil {
		return err
	}
	if c.WrapEvery != nil && *c.WrapEvery <= 0 {
		return fmt.Errorf("wrap_every must be positive, got %d", *c.WrapEvery)
	}
	if c.Capacity != nil && *c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", *c.Capacity)
	}
	if c.Log != nil {
		if err := oneOf("log.level", c.Log.Level, LogLevels); err != nil {
			return err
		}
		if err := oneOf("log.format", c.Log.Format, LogFormats); err != nil {
			return err
		}
	}
	return nil
}

// Apply overlays the values set in c onto s.
func (c *Config) Apply(s Settings) Settings {
	if c == nil {
		return s
	}
	setBool(&s.Compressed, c.Compressed)
	setBool(&s.LineFeed, c.LineFeed)
	setBool(&s.Total, c.Total)
	setInt(&s.WrapEvery, c.WrapEvery)
	setInt(&s.Capacity, c.Capacity)
	setString(&s.Parser, c.Parser)
	setString(&s.Format, c.Format)
	if c.Log != nil {
		setString(&s.LogLevel, c.Log.Level)
		setString(&s.LogFormat, c.Log.Format)
	}
	return s
}

func oneOf(name string, v *string, allowed []string) error {
	if v == nil || slices.Contains(allowed, *v) {
		return nil
	}
	return fmt.Errorf("invalid %s %q (supported: %v)", name, *v, allowed)
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
