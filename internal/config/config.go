// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jonathan/resume-builder/internal/compositor"
	"github.com/jonathan/resume-builder/internal/types"
	"gopkg.in/yaml.v3"
)

// DefaultResumeID keys the single resume a server instance edits when
// no id is configured
const DefaultResumeID = "00000000-0000-4000-8000-000000000001"

// DefaultPort is the HTTP port used when nothing is configured
const DefaultPort = 8080

// Config represents configuration loaded from a JSON or YAML file.
// All fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty" yaml:"port,omitempty"`
	DataFile    string `json:"data_file,omitempty" yaml:"data_file,omitempty"`       // JSON snapshot file
	DatabaseURL string `json:"database_url,omitempty" yaml:"database_url,omitempty"` // PostgreSQL connection URL
	ResumeID    string `json:"resume_id,omitempty" yaml:"resume_id,omitempty"`       // UUID the snapshot is stored under

	// Rendering
	Variant   string            `json:"variant,omitempty" yaml:"variant,omitempty"`
	Theme     types.ThemeConfig `json:"theme,omitempty" yaml:"theme,omitempty"`
	Template  string            `json:"template,omitempty" yaml:"template,omitempty"` // custom HTML body template
	OutputDir string            `json:"output_dir,omitempty" yaml:"output_dir,omitempty"`

	// Behavior
	EnablePDF         bool `json:"enable_pdf,omitempty" yaml:"enable_pdf,omitempty"`
	PDFTimeoutSeconds int  `json:"pdf_timeout_seconds,omitempty" yaml:"pdf_timeout_seconds,omitempty"`
	Verbose           bool `json:"verbose,omitempty" yaml:"verbose,omitempty"`
}

// Defaults returns the built-in configuration
func Defaults() Config {
	return Config{
		Port:              DefaultPort,
		ResumeID:          DefaultResumeID,
		Variant:           compositor.DefaultVariant,
		Theme:             types.DefaultTheme(),
		OutputDir:         "out",
		PDFTimeoutSeconds: 30,
	}
}

// LoadConfig loads configuration from a JSON or YAML file, chosen by
// extension (.yaml and .yml are YAML, anything else JSON).
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

// ApplyEnv overrides fields from environment variables (PORT,
// RESUME_DATA_FILE, DATABASE_URL, RESUME_ID, RESUME_VARIANT,
// RESUME_ENABLE_PDF). Unparsable numeric values are ignored.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			c.Port = port
		}
	}
	if v := os.Getenv("RESUME_DATA_FILE"); v != "" {
		c.DataFile = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("RESUME_ID"); v != "" {
		c.ResumeID = v
	}
	if v := os.Getenv("RESUME_VARIANT"); v != "" {
		c.Variant = v
	}
	if v := os.Getenv("RESUME_ENABLE_PDF"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.EnablePDF = enabled
		}
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.DataFile != "" && c.DatabaseURL != "" {
		return fmt.Errorf("config error: 'data_file' and 'database_url' are mutually exclusive")
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.PDFTimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'pdf_timeout_seconds' must be non-negative")
	}

	if c.ResumeID != "" {
		if _, err := uuid.Parse(c.ResumeID); err != nil {
			return fmt.Errorf("config error: 'resume_id' is not a valid UUID: %w", err)
		}
	}

	if c.Variant != "" {
		if _, ok := compositor.Lookup(c.Variant); !ok {
			return fmt.Errorf("config error: unknown variant %q (available: %s)",
				c.Variant, strings.Join(compositor.Variants(), ", "))
		}
	}

	if err := c.Theme.Validate(); err != nil {
		return fmt.Errorf("config error: invalid theme: %w", err)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataFile == "" && result.DatabaseURL == "" {
		result.DataFile = defaults.DataFile
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.ResumeID == "" {
		result.ResumeID = defaults.ResumeID
	}
	if result.Variant == "" {
		result.Variant = defaults.Variant
	}
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.PDFTimeoutSeconds == 0 {
		result.PDFTimeoutSeconds = defaults.PDFTimeoutSeconds
	}

	// Theme fields merge individually so a file may set just one color
	result.Theme = defaults.Theme.Merge(result.Theme)

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ResumeUUID returns the configured resume id, falling back to the default
func (c *Config) ResumeUUID() uuid.UUID {
	if id, err := uuid.Parse(c.ResumeID); err == nil {
		return id
	}
	return uuid.MustParse(DefaultResumeID)
}
