// Package config loads tokenmaster settings from disk and the environment.
//
// A config file may be YAML (.yaml, .yml), TOML (.toml) or JSON (.json).
// Environment variables are applied on top of the file, so a key exported
// in the shell or a .env file always wins.
//
// Example YAML:
//
//	remote:
//	  backend: relay
//	  base_url: https://api.tu-zi.com/v1
//	  timeout: 10s
//	cache_size: 512
//	selected: gemini-2.5-flash
//	models: [gemini-2.5-flash, gpt-4o, deepseek-v3]
//	strategy: middle
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/randalmurphal/tokenmaster/model"
	"github.com/randalmurphal/tokenmaster/provider"
)

// DefaultDebounce is the quiet period before a changed file is re-read.
const DefaultDebounce = 600 * time.Millisecond

// ErrUnsupportedFormat is returned for config files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// File is the on-disk configuration.
type File struct {
	// Remote configures the authoritative counting backend.
	Remote provider.Config `json:"remote" yaml:"remote" toml:"remote"`

	// CacheSize is how many authoritative counts to keep. 0 disables caching.
	CacheSize int `json:"cache_size" yaml:"cache_size" toml:"cache_size" jsonschema:"minimum=0"`

	// Models lists the models shown by compare. Empty means the whole catalog.
	Models []model.ID `json:"models,omitempty" yaml:"models,omitempty" toml:"models,omitempty"`

	// Selected is the model used when a command is given none.
	Selected model.ID `json:"selected,omitempty" yaml:"selected,omitempty" toml:"selected,omitempty"`

	// Strategy is the default truncation strategy.
	Strategy string `json:"strategy,omitempty" yaml:"strategy,omitempty" toml:"strategy,omitempty" jsonschema:"enum=end,enum=middle,enum=start"`

	// Debounce is the delay before re-counting a watched file.
	Debounce time.Duration `json:"debounce,omitempty" yaml:"debounce,omitempty" toml:"debounce,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() File {
	return File{
		Remote:    provider.DefaultConfig(),
		CacheSize: 512,
		Selected:  model.DefaultModel,
		Strategy:  "end",
		Debounce:  DefaultDebounce,
	}
}

// Load reads path over the defaults, then applies environment overrides.
// An empty path loads only defaults and environment.
func Load(path string) (File, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return File{}, fmt.Errorf("read config: %w", err)
		}
		if err := decode(path, data, &cfg); err != nil {
			return File{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	cfg.Remote.LoadFromEnv()
	if err := cfg.Validate(); err != nil {
		return File{}, err
	}
	return cfg, nil
}

// decode picks a decoder by extension. JSON goes through the YAML decoder,
// which accepts it and reads durations written as strings like "10s".
func decode(path string, data []byte, cfg *File) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".toml":
		md, err := toml.Decode(string(data), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys: %v", undecoded)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Validate checks the configuration.
func (f File) Validate() error {
	if err := f.Remote.Validate(); err != nil {
		return fmt.Errorf("remote: %w", err)
	}
	if f.CacheSize < 0 {
		return fmt.Errorf("cache_size must be >= 0, got %d", f.CacheSize)
	}
	if f.Debounce < 0 {
		return fmt.Errorf("debounce must be >= 0, got %v", f.Debounce)
	}
	switch f.Strategy {
	case "", "end", "middle", "start":
	default:
		return fmt.Errorf("strategy must be end, middle or start, got %q", f.Strategy)
	}
	return nil
}

// CompareModels returns the models to compare, defaulting to the catalog.
func (f File) CompareModels() []model.ID {
	if len(f.Models) == 0 {
		return model.IDs()
	}
	return append([]model.ID(nil), f.Models...)
}

// SelectedModel returns Selected, or the default model when unset.
func (f File) SelectedModel() model.ID {
	if f.Selected == "" {
		return model.DefaultModel
	}
	return f.Selected
}
