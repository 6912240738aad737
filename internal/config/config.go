// Package config loads tokenaudit settings.
//
// Settings come from built-in defaults, optionally overlaid by a TOML file
// (by default $XDG_CONFIG_HOME/tokenaudit/config.toml). A missing default
// file is not an error.
package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/raphaelgruber/tokenaudit/internal/detect"
	"github.com/raphaelgruber/tokenaudit/internal/tokenizer"
	"github.com/raphaelgruber/tokenaudit/internal/usage"
)

// Rate prices models whose name contains Match (case-insensitive).
type Rate struct {
	Match      string  `toml:"match"`
	PerMillion float64 `toml:"per_million"` // USD per 1M tokens
}

// Config represents the complete tokenaudit configuration.
type Config struct {
	// Models assumed when the export names none.
	DefaultModels []string `toml:"default_models"`

	// Encoding used for models tiktoken does not recognise.
	FallbackEncoding string `toml:"fallback_encoding"`

	// Number of conversations listed per model.
	TopN int `toml:"top_n"`

	// Titles longer than this many characters are cut.
	TitleWidth int `toml:"title_width"`

	// Ordered rate rules, first match wins.
	Rates []Rate `toml:"rates"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DefaultModels:    slices.Clone(detect.DefaultModels),
		FallbackEncoding: tokenizer.DefaultFallback,
		TopN:             usage.DefaultTopN,
		TitleWidth:       60,
		Rates: []Rate{
			{Match: "gpt-4", PerMillion: 5.0},
			{Match: "3.5", PerMillion: 0.002},
			{Match: "gpt-3", PerMillion: 0.002},
		},
	}
}

// Load returns the configuration at path layered over the defaults. An empty
// path selects the default location, which may be absent.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := GetConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	var errs []error

	if len(c.DefaultModels) == 0 {
		errs = append(errs, errors.New("default_models must not be empty"))
	}
	if strings.TrimSpace(c.FallbackEncoding) == "" {
		errs = append(errs, errors.New("fallback_encoding must not be empty"))
	}
	if c.TopN <= 0 {
		errs = append(errs, fmt.Errorf("top_n must be positive, got %d", c.TopN))
	}
	if c.TitleWidth <= 0 {
		errs = append(errs, fmt.Errorf("title_width must be positive, got %d", c.TitleWidth))
	}
	for i, r := range c.Rates {
		if r.Match == "" {
			errs = append(errs, fmt.Errorf("rates[%d].match must not be empty", i))
		}
		if r.PerMillion < 0 {
			errs = append(errs, fmt.Errorf("rates[%d].per_million must not be negative", i))
		}
	}

	return errors.Join(errs...)
}

// RateFor returns the USD price per million tokens for model, or 0 when no
// rule matches.
func (c *Config) RateFor(model string) float64 {
	name := strings.ToLower(model)
	for _, r := range c.Rates {
		if strings.Contains(name, strings.ToLower(r.Match)) {
			return r.PerMillion
		}
	}
	return 0
}
