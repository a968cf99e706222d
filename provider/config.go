package provider

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DefaultBaseURL is the relay endpoint used when no base URL is configured.
const DefaultBaseURL = "https://api.tu-zi.com/v1"

// Config holds configuration for creating an authoritative counting backend.
// Common fields apply to all backends; use Options for backend-specific settings.
type Config struct {
	// Backend is the name of the registered backend to use.
	// Empty disables authoritative counting. Values: "openai", "relay", "tiktoken"
	Backend string `json:"backend" yaml:"backend" toml:"backend" mapstructure:"backend" jsonschema:"enum=,enum=openai,enum=relay,enum=tiktoken"`

	// APIKey authenticates against remote backends.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty" toml:"api_key,omitempty" mapstructure:"api_key"`

	// BaseURL is the API root including the version segment.
	// Default: DefaultBaseURL.
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty" toml:"base_url,omitempty" mapstructure:"base_url"`

	// Timeout bounds a single count request. 0 uses the backend default.
	Timeout time.Duration `json:"timeout" yaml:"timeout" toml:"timeout" mapstructure:"timeout"`

	// MaxRetries is the number of extra attempts for transient failures.
	MaxRetries int `json:"max_retries" yaml:"max_retries" toml:"max_retries" mapstructure:"max_retries"`

	// Options holds backend-specific configuration.
	//
	// OpenAI / relay:
	//   - "temperature": float (sent with the probe request; relay default 0.7)
	//   - "count_tokens": bool (relay only; ask the relay for a count-only reply, default true)
	//
	// Tiktoken:
	//   - "encoding": string (force an encoding such as "cl100k_base")
	Options map[string]any `json:"options,omitempty" yaml:"options,omitempty" toml:"options,omitempty" mapstructure:"options"`
}

// DefaultConfig returns a Config with sensible defaults.
// Backend is left empty, which disables authoritative counting.
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Timeout:    10 * time.Second,
		MaxRetries: 1,
	}
}

// LoadFromEnv populates config fields from environment variables.
// Environment variables take precedence over existing values.
//
// Supported variables:
//   - TOKENMASTER_BACKEND: Backend name
//   - TOKENMASTER_API_KEY: API key
//   - TOKENMASTER_BASE_URL: API root
//   - TOKENMASTER_TIMEOUT: Timeout duration (e.g., "10s")
//   - TOKENMASTER_MAX_RETRIES: Retry count
//
// The legacy variables API_KEY, GEMINI_API_KEY and API_BASE are honoured when
// the TOKENMASTER_ equivalents are unset. A legacy key with no backend
// selects the "relay" backend; a legacy base gets "/v1" appended.
func (c *Config) LoadFromEnv() {
	legacyKey := firstEnv("API_KEY", "GEMINI_API_KEY")
	if v := os.Getenv("TOKENMASTER_API_KEY"); v != "" {
		c.APIKey = v
	} else if legacyKey != "" {
		c.APIKey = legacyKey
		if c.Backend == "" {
			c.Backend = "relay"
		}
	}
	if v := os.Getenv("TOKENMASTER_BACKEND"); v != "" {
		c.Backend = v
	}
	if v := os.Getenv("TOKENMASTER_BASE_URL"); v != "" {
		c.BaseURL = v
	} else if v := os.Getenv("API_BASE"); v != "" {
		c.BaseURL = strings.TrimRight(v, "/") + "/v1"
	}
	if v := os.Getenv("TOKENMASTER_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Timeout = d
		}
	}
	if v := os.Getenv("TOKENMASTER_MAX_RETRIES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxRetries = n
		}
	}
}

func firstEnv(keys ...string) string {
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return ""
}

// FromEnv creates a Config from environment variables with defaults.
func FromEnv() Config {
	cfg := DefaultConfig()
	cfg.LoadFromEnv()
	return cfg
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must be >= 0, got %v", c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0, got %d", c.MaxRetries)
	}
	if c.BaseURL != "" && !strings.HasPrefix(c.BaseURL, "http://") && !strings.HasPrefix(c.BaseURL, "https://") {
		return fmt.Errorf("base_url must be an http(s) URL, got %q", c.BaseURL)
	}
	return nil
}

// RequireAPIKey returns ErrCredentialsNotFound when no API key is set.
func (c *Config) RequireAPIKey() error {
	if c.APIKey == "" {
		return NewError(c.Backend, "configure", ErrCredentialsNotFound, false)
	}
	return nil
}

// WithBackend returns a copy of the config with the specified backend.
func (c Config) WithBackend(backend string) Config {
	c.Backend = backend
	return c
}

// WithAPIKey returns a copy of the config with the specified API key.
func (c Config) WithAPIKey(key string) Config {
	c.APIKey = key
	return c
}

// WithBaseURL returns a copy of the config with the specified base URL.
func (c Config) WithBaseURL(url string) Config {
	c.BaseURL = url
	return c
}

// WithTimeout returns a copy of the config with the specified timeout.
func (c Config) WithTimeout(d time.Duration) Config {
	c.Timeout = d
	return c
}

// WithOption returns a copy of the config with the specified option set.
func (c Config) WithOption(key string, value any) Config {
	opts := make(map[string]any, len(c.Options)+1)
	for k, v := range c.Options {
		opts[k] = v
	}
	opts[key] = value
	c.Options = opts
	return c
}

// GetStringOption retrieves a string option, returning defaultVal if not set.
func (c Config) GetStringOption(key, defaultVal string) string {
	if v, ok := c.Options[key].(string); ok {
		return v
	}
	return defaultVal
}

// GetBoolOption retrieves a bool option, returning defaultVal if not set.
func (c Config) GetBoolOption(key string, defaultVal bool) bool {
	if v, ok := c.Options[key].(bool); ok {
		return v
	}
	return defaultVal
}

// GetFloatOption retrieves a numeric option as float64, returning
// defaultVal if not set. Integer values from YAML or TOML are accepted.
func (c Config) GetFloatOption(key string, defaultVal float64) float64 {
	switch v := c.Options[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return defaultVal
	}
}
