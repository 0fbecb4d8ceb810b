// Package config provides configuration loading and validation for the
// server and CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-playground/validator/v10"
)

// Config holds every tunable of the application. All fields are optional;
// missing values are filled from defaults or environment variables.
type Config struct {
	// Server
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`

	// External services
	JoobleAPIKey string `json:"jooble_api_key,omitempty"`
	GeminiAPIKey string `json:"gemini_api_key,omitempty"`
	GeminiModel  string `json:"gemini_model,omitempty"`
	DatabaseURL  string `json:"database_url,omitempty"`

	// Behavior
	UseBrowser bool `json:"use_browser,omitempty"` // headless browser fallback for scraped boards
	Verbose    bool `json:"verbose,omitempty"`

	// Job ranking fallback floor: keep at least MinKept listings, or the
	// given fraction of the fetched pool, whichever is larger.
	FallbackMinKept  int     `json:"fallback_min_kept,omitempty" validate:"omitempty,min=1"`
	FallbackFraction float64 `json:"fallback_fraction,omitempty" validate:"omitempty,gte=0,lte=1"`
}

// Defaults returns the baseline configuration.
func Defaults() Config {
	return Config{
		Port:             8080,
		GeminiModel:      "gemini-2.5-flash",
		FallbackMinKept:  3,
		FallbackFraction: 0.2,
	}
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	return &cfg, nil
}

// FromEnv fills unset fields from environment variables. Call after loading
// any file-based config so explicit file values win.
func (c *Config) FromEnv() {
	if c.JoobleAPIKey == "" {
		c.JoobleAPIKey = os.Getenv("JOOBLE_API_KEY")
	}
	if c.GeminiAPIKey == "" {
		c.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.GeminiModel == "" {
		c.GeminiModel = os.Getenv("GEMINI_MODEL")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.Port == 0 {
		if p, err := strconv.Atoi(os.Getenv("PORT")); err == nil {
			c.Port = p
		}
	}
}

// MergeWithDefaults returns a copy with zero-valued fields filled from
// defaults. Booleans are sticky: a true default stays true.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.JoobleAPIKey == "" {
		result.JoobleAPIKey = defaults.JoobleAPIKey
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.FallbackMinKept == 0 {
		result.FallbackMinKept = defaults.FallbackMinKept
	}
	if result.FallbackFraction == 0 {
		result.FallbackFraction = defaults.FallbackFraction
	}
	result.UseBrowser = result.UseBrowser || defaults.UseBrowser
	result.Verbose = result.Verbose || defaults.Verbose

	return result
}

var validate = validator.New()

// Validate checks field ranges. API keys and the database URL stay optional;
// the features they power degrade when absent.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			e := errs[0]
			return fmt.Errorf("config error: field %s failed %s validation", e.Field(), e.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}
