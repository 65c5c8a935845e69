package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/kilianp07/zoa/core/metrics"
)

// EnvPrefix prefixes environment overrides; "__" separates nested keys,
// e.g. ZOA_PACING__SCALE=0.
const EnvPrefix = "ZOA_"

type Config struct {
	Log       LogConfig       `json:"log"`
	Pacing    PacingConfig    `json:"pacing"`
	Indicator IndicatorConfig `json:"indicator"`
	Metrics   metrics.Config  `json:"metrics"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{Pacing: PacingConfig{Scale: 1}}
	cfg.SetDefaults()
	return cfg
}

// SetDefaults applies defaults to every section.
func (c *Config) SetDefaults() {
	c.Log.SetDefaults()
	c.Indicator.SetDefaults()
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Pacing.Validate(); err != nil {
		return fmt.Errorf("pacing: %w", err)
	}
	if err := c.Indicator.Validate(); err != nil {
		return fmt.Errorf("indicator: %w", err)
	}
	for i, s := range c.Metrics.Sinks {
		if s.Type == "" {
			return fmt.Errorf("metrics: sink %d has no type", i)
		}
	}
	return nil
}

// Load reads the configuration file at path and applies environment
// overrides on top of the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	return unmarshal(k)
}

// LoadOptional behaves like Load but falls back to defaults plus
// environment overrides when path does not exist.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return unmarshal(koanf.New("."))
	}
	return Load(path)
}

func unmarshal(k *koanf.Koanf) (*Config, error) {
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), strings.ToLower(EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if !k.Exists("pacing.scale") {
		cfg.Pacing.Scale = 1
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
