package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"
)

// EnvPrefix prefixes every environment override (RELATO_LOCALE -> locale)
const EnvPrefix = "RELATO_"

// Config holds the runtime settings shared by every binary
type Config struct {
	Locale          string        `yaml:"locale" koanf:"locale"`
	FrameInterval   time.Duration `yaml:"frame_interval" koanf:"frame_interval"`
	ScrollDuration  time.Duration `yaml:"scroll_duration" koanf:"scroll_duration"`
	ActiveThreshold float64       `yaml:"active_threshold" koanf:"active_threshold"`
	ViewportMargin  float64       `yaml:"viewport_margin" koanf:"viewport_margin"`
	ContentFile     string        `yaml:"content_file" koanf:"content_file"`
	ContentDB       string        `yaml:"content_db" koanf:"content_db"`
	SiteURL         string        `yaml:"site_url" koanf:"site_url"`
	LogFile         string        `yaml:"log_file" koanf:"log_file"`
	LogLevel        string        `yaml:"log_level" koanf:"log_level"`
}

// Default returns the built-in settings. An empty ContentFile selects the
// embedded page.
func Default() *Config {
	return &Config{
		Locale:          "es-CO",
		FrameInterval:   33 * time.Millisecond,
		ScrollDuration:  400 * time.Millisecond,
		ActiveThreshold: 0.3,
		ViewportMargin:  0.1,
		LogLevel:        "info",
	}
}

// Path returns the config file location from RELATO_CONFIG, falling back to
// relato/config.yaml under the user config dir.
func Path() string {
	if p := os.Getenv(EnvPrefix + "CONFIG"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "relato.yaml"
	}
	return filepath.Join(dir, "relato", "config.yaml")
}

// Load reads defaults, then the YAML file at path if it exists, then
// RELATO_* environment overrides.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration contains usable values
func (c *Config) Validate() error {
	if _, err := language.Parse(c.Locale); err != nil {
		return fmt.Errorf("invalid locale %q: %w", c.Locale, err)
	}
	if c.FrameInterval <= 0 {
		return fmt.Errorf("frame_interval must be positive")
	}
	if c.ScrollDuration < 0 {
		return fmt.Errorf("scroll_duration must be non-negative")
	}
	if c.ActiveThreshold <= 0 || c.ActiveThreshold > 1 {
		return fmt.Errorf("active_threshold must be in (0, 1]")
	}
	if c.ViewportMargin < 0 || c.ViewportMargin >= 0.5 {
		return fmt.Errorf("viewport_margin must be in [0, 0.5)")
	}
	return nil
}

// Tag returns the parsed locale
func (c *Config) Tag() language.Tag {
	tag, err := language.Parse(c.Locale)
	if err != nil {
		return language.MustParse("es-CO")
	}
	return tag
}
