// Package config loads application configuration. Values are layered:
// built-in defaults, then the JSON config file, then a .env file in the
// working directory, then process environment variables.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// Environment variable names recognized by Load.
const (
	EnvAPIKey       = "ANTHROPIC_API_KEY"
	EnvModel        = "CVFILL_MODEL"
	EnvMaxTokens    = "CVFILL_MAX_TOKENS"
	EnvTemplatePath = "CVFILL_TEMPLATE"
	EnvOutputDir    = "CVFILL_OUTPUT_DIR"
	EnvLogLevel     = "CVFILL_LOG_LEVEL"
)

// Config represents the application configuration.
type Config struct {
	AnthropicAPIKey string `json:"anthropic_api_key"`
	Model           string `json:"model,omitempty"`
	MaxTokens       int    `json:"max_tokens,omitempty"`
	TemplatePath    string `json:"template_path"`
	OutputDir       string `json:"output_dir,omitempty"`
	LogLevel        string `json:"log_level,omitempty"`
	EmployerCompany string `json:"employer_company,omitempty"`
}

// Default returns the built-in defaults.
func Default() Config {
	return Config{
		Model:           "claude-sonnet-4-20250514",
		MaxTokens:       4096,
		OutputDir:       "output",
		LogLevel:        "info",
		EmployerCompany: "Formation Bio",
	}
}

// DefaultPath returns the default config file location,
// ~/.cvfill/config.json.
func DefaultPath() (path string, err error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		err = errors.Wrap(err, "failed to get user home directory")
		return path, err
	}
	path = filepath.Join(homeDir, ".cvfill", "config.json")
	return path, err
}

// Load reads configuration from configPath with .env and environment
// variable overrides. An empty configPath uses the default location; a
// missing file there is not an error, the defaults simply apply.
func Load(configPath string) (cfg Config, err error) {
	cfg = Default()

	path := configPath
	explicit := path != ""
	if !explicit {
		path, err = DefaultPath()
		if err != nil {
			return cfg, err
		}
	}

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = json.Unmarshal(data, &cfg); err != nil {
			err = errors.Wrapf(err, "failed to parse config file: %s", path)
			return cfg, err
		}
	case os.IsNotExist(err) && !explicit:
		err = nil
	default:
		err = errors.Wrapf(err, "failed to read config file: %s", path)
		return cfg, err
	}

	// A .env next to the working directory feeds the environment without
	// clobbering variables the user already exported.
	_ = godotenv.Load()

	applyEnv(&cfg)
	return cfg, err
}

func applyEnv(cfg *Config) {
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := os.Getenv(EnvModel); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv(EnvMaxTokens); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv(EnvTemplatePath); v != "" {
		cfg.TemplatePath = v
	}
	if v := os.Getenv(EnvOutputDir); v != "" {
		cfg.OutputDir = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks that the configuration can drive a conversion.
func (c *Config) Validate() (err error) {
	if c.AnthropicAPIKey == "" {
		err = errors.Errorf("anthropic_api_key is required (set in config or %s env var)", EnvAPIKey)
		return err
	}

	if c.TemplatePath == "" {
		err = errors.New("template_path is required in config")
		return err
	}
	if _, err = os.Stat(c.TemplatePath); os.IsNotExist(err) {
		err = errors.Errorf("template file not found: %s", c.TemplatePath)
		return err
	} else if err != nil {
		err = errors.Wrapf(err, "checking template file: %s", c.TemplatePath)
		return err
	}

	return err
}
