package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/twstock/tracker/internal/core"
)

type Config struct {
	Proxy   ProxyConfig   `mapstructure:"proxy"`
	Series  SeriesConfig  `mapstructure:"series"`
	Server  ServerConfig  `mapstructure:"server"`
	Metrics MetricsConfig `mapstructure:"metrics"`
}

// ProxyConfig holds the backend proxy settings.
type ProxyConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// Manual skips the connection probe and marks the session usable
	// immediately, for environments where health endpoints are blocked.
	Manual bool `mapstructure:"manual"`
}

// SeriesConfig holds series assembly tuning.
type SeriesConfig struct {
	CandidateDays int           `mapstructure:"candidate_days"`
	ResolveDays   int           `mapstructure:"resolve_days"`
	FetchInterval time.Duration `mapstructure:"fetch_interval"`
}

type ServerConfig struct {
	Host   string `mapstructure:"host"`
	Port   int    `mapstructure:"port"`
	APIKey string `mapstructure:"api_key"`
}

// MetricsConfig holds metrics configuration.
type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// Load reads configuration from file
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	// Support environment variable overrides
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	// Expand environment variables in string values
	for _, key := range v.AllKeys() {
		val := v.GetString(key)
		if strings.HasPrefix(val, "${") && strings.HasSuffix(val, "}") {
			envKey := strings.TrimSuffix(strings.TrimPrefix(val, "${"), "}")
			v.Set(key, os.Getenv(envKey))
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Defaults returns a config with sensible defaults
func Defaults() *Config {
	return &Config{
		Series: SeriesConfig{
			CandidateDays: 21,
			ResolveDays:   5,
			FetchInterval: time.Second,
		},
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("port must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.Series.CandidateDays < 1 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("candidate_days must be positive, got %d", c.Series.CandidateDays))
	}
	if c.Series.ResolveDays < 1 || c.Series.ResolveDays > c.Series.CandidateDays {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("resolve_days must be between 1 and candidate_days, got %d", c.Series.ResolveDays))
	}
	if c.Series.FetchInterval < 0 {
		return core.WrapError(core.ErrConfigInvalid,
			fmt.Errorf("fetch_interval cannot be negative, got %s", c.Series.FetchInterval))
	}

	return nil
}
