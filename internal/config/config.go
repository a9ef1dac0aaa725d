package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/mlorentedev/translink/internal/lang"
)

// DefaultEndpointURL is where requests go when nothing else is configured.
const DefaultEndpointURL = "http://localhost:8000/translate"

// Config holds all application configuration.
type Config struct {
	Port        int           `yaml:"port"`
	EndpointURL string        `yaml:"endpoint_url"`
	Timeout     time.Duration `yaml:"timeout"`
	Locale      string        `yaml:"locale"`
	Languages   []string      `yaml:"languages"`
	LogLevel    string        `yaml:"log_level"`
	RateLimit   int           `yaml:"rate_limit"`
}

func defaults() Config {
	return Config{
		Port:        8090,
		EndpointURL: DefaultEndpointURL,
		Locale:      "en",
		Languages:   append([]string(nil), lang.DefaultCodes...),
		LogLevel:    "info",
		RateLimit:   30,
	}
}

// Load loads configuration from a YAML file (if path is non-empty),
// then applies environment variable overrides. An empty path returns defaults + env overrides.
// A zero Timeout means the client waits until the transport gives up.
func Load(path string) (Config, error) {
	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse yaml: %w", err)
		}
	}

	if v := os.Getenv("TRANSLINK_PORT"); v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid TRANSLINK_PORT %q: %w", v, err)
		}
		cfg.Port = p
	}
	if v := os.Getenv("TRANSLINK_ENDPOINT_URL"); v != "" {
		cfg.EndpointURL = v
	}
	if v := os.Getenv("TRANSLINK_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid TRANSLINK_TIMEOUT %q: %w", v, err)
		}
		cfg.Timeout = d
	}
	if v := os.Getenv("TRANSLINK_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("TRANSLINK_LANGUAGES"); v != "" {
		cfg.Languages = strings.Split(v, ",")
	}
	if v := os.Getenv("TRANSLINK_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TRANSLINK_RATE_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return Config{}, fmt.Errorf("config: invalid TRANSLINK_RATE_LIMIT %q: %w", v, err)
		}
		cfg.RateLimit = n
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if strings.TrimSpace(c.EndpointURL) == "" {
		return fmt.Errorf("config: endpoint_url is required")
	}
	if c.Timeout < 0 {
		return fmt.Errorf("config: timeout must not be negative, got %s", c.Timeout)
	}
	if c.RateLimit <= 0 {
		return fmt.Errorf("config: rate_limit must be positive, got %d", c.RateLimit)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
