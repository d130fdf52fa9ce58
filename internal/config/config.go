package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is stripped from environment variables before they are mapped
// onto koanf paths: BREWHAUS_BACKEND__BASE_URL -> backend.base_url.
const EnvPrefix = "BREWHAUS_"

type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Backend BackendConfig `koanf:"backend"`
	Flash   FlashConfig   `koanf:"flash"`
	Logging LoggingConfig `koanf:"logging"`
}

type ServerConfig struct {
	Addr        string `koanf:"addr"`
	Environment string `koanf:"environment"`
}

type BackendConfig struct {
	// BaseURL is the root of the commerce REST API, e.g. "https://api.brewhaus.com/api".
	BaseURL string        `koanf:"base_url"`
	Timeout time.Duration `koanf:"timeout"`
}

type FlashConfig struct {
	Secret     string `koanf:"secret"`
	CookieName string `koanf:"cookie_name"`
	Secure     bool   `koanf:"secure"`
}

type LoggingConfig struct {
	Level string `koanf:"level"`
}

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:        ":8080",
			Environment: "development",
		},
		Backend: BackendConfig{
			BaseURL: "",
			Timeout: 30 * time.Second,
		},
		Flash: FlashConfig{
			Secret:     "",
			CookieName: "bh_flash",
			Secure:     false,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load builds the configuration from struct defaults overridden by
// BREWHAUS_* environment variables.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// envTransform maps BREWHAUS_BACKEND__BASE_URL -> backend.base_url.
// Double underscore separates nesting levels so single underscores survive
// inside key names.
func envTransform(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.BaseURL) == "" {
		return fmt.Errorf("backend.base_url is required (BREWHAUS_BACKEND__BASE_URL)")
	}
	u, err := url.Parse(c.Backend.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("backend.base_url is not a valid absolute URL: %q", c.Backend.BaseURL)
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("backend.timeout must be positive")
	}
	if strings.TrimSpace(c.Flash.Secret) == "" {
		return fmt.Errorf("flash.secret is required (BREWHAUS_FLASH__SECRET)")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Server.Environment, "production")
}
