// Package config loads the service settings from the environment.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// Config holds runtime settings for the employee portal.
//
// Fields:
//   - Port: TCP port the HTTP server binds to (PORT).
//   - Version: version string reported by /health (APP_VERSION).
//   - LogLevel: zap level name (LOG_LEVEL).
//   - ShutdownTimeout: grace period for in-flight requests on exit (SHUTDOWN_TIMEOUT).
//   - RateLimitRPS / RateLimitBurst: per-client token bucket; RPS 0 disables it.
//   - SwaggerEnabled: mounts the API docs under /swagger/ (SWAGGER_ENABLED).
type Config struct {
	Port            int           `mapstructure:"port"`
	Version         string        `mapstructure:"app_version"`
	LogLevel        string        `mapstructure:"log_level"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
	RateLimitRPS    float64       `mapstructure:"rate_limit_rps"`
	RateLimitBurst  int           `mapstructure:"rate_limit_burst"`
	SwaggerEnabled  bool          `mapstructure:"swagger_enabled"`
}

const (
	DefaultPort    = 8080
	DefaultVersion = "3.0.0"
)

var ErrInvalidConfig = errors.New("invalid configuration")

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", DefaultPort)
	v.SetDefault("app_version", DefaultVersion)
	v.SetDefault("log_level", "info")
	v.SetDefault("shutdown_timeout", 5*time.Second)
	v.SetDefault("rate_limit_rps", 0)
	v.SetDefault("rate_limit_burst", 3)
	v.SetDefault("swagger_enabled", false)
}

// Load reads the configuration from environment variables, falling back to
// defaults for anything unset.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidConfig)
	}
	if c.RateLimitRPS < 0 {
		return fmt.Errorf("%w: negative rate limit", ErrInvalidConfig)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst <= 0 {
		return fmt.Errorf("%w: rate limit burst must be positive", ErrInvalidConfig)
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}
