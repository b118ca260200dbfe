package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"osmbox/internal/geom"
)

const (
	envPrefix     = "OSMBOX"
	envConfigPath = "OSMBOX_CONFIG"
)

var (
	// ErrInvalidConfig is returned when loaded values fail validation.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrUnknownPreset is returned for an "@name" that matches no preset.
	ErrUnknownPreset = errors.New("unknown preset")
)

// Config holds all application configuration.
type Config struct {
	Log     LogConfig    `mapstructure:"log"`
	Output  OutputConfig `mapstructure:"output"`
	Presets Presets      `mapstructure:"presets"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// Preset is a named place that can stand in for a "lat,lon" argument.
type Preset struct {
	Name      string  `mapstructure:"name"`
	Latitude  float64 `mapstructure:"latitude"`
	Longitude float64 `mapstructure:"longitude"`
}

func (p Preset) Coordinate() geom.Coordinate {
	return geom.NewCoordinate(p.Latitude, p.Longitude)
}

// Load reads .env, an optional osmbox.yaml and OSMBOX_* environment variables.
func Load() (*Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")
	v.SetDefault("output.format", "table")

	v.SetConfigType("yaml")
	if path := os.Getenv(envConfigPath); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %q: %w", path, err)
		}
	} else {
		v.SetConfigName("osmbox")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "osmbox"))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// OSMBOX_LOG_LEVEL -> log.level
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	var errs []string

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("log.level must be debug|info|warn|error, got %q", c.Log.Level))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text|json, got %q", c.Log.Format))
	}
	switch strings.ToLower(c.Output.Format) {
	case "table", "json", "yaml":
	default:
		errs = append(errs, fmt.Sprintf("output.format must be table|json|yaml, got %q", c.Output.Format))
	}

	seen := make(map[string]bool, len(c.Presets))
	for i, p := range c.Presets {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			errs = append(errs, fmt.Sprintf("presets[%d].name is required", i))
			continue
		}
		if seen[name] {
			errs = append(errs, fmt.Sprintf("presets[%d].name %q is duplicated", i, name))
		}
		seen[name] = true
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w:\n  - %s", ErrInvalidConfig, strings.Join(errs, "\n  - "))
	}
	return nil
}

// Presets is the configured list of named places.
type Presets []Preset

// Find looks up a preset by name.
func (ps Presets) Find(name string) (Preset, bool) {
	for _, p := range ps {
		if p.Name == name {
			return p, true
		}
	}
	return Preset{}, false
}

// Resolve accepts "lat,lon" or "@name" for a configured preset.
func (ps Presets) Resolve(raw string) (geom.Coordinate, error) {
	raw = strings.TrimSpace(raw)
	if name, ok := strings.CutPrefix(raw, "@"); ok {
		p, found := ps.Find(name)
		if !found {
			return geom.Coordinate{}, fmt.Errorf("%w %q", ErrUnknownPreset, name)
		}
		return p.Coordinate(), nil
	}
	return geom.ParseCoordinate(raw)
}
