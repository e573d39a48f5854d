package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultModel     = "gemini-3-flash-preview"
	DefaultAPIKeyEnv = "API_KEY"
	DefaultLogLevel  = "info"
	DefaultAddr      = ":8080"
)

// Config represents application configuration
type Config struct {
	Insight  InsightConfig  `mapstructure:"insight"`
	Holidays HolidaysConfig `mapstructure:"holidays"`
	Log      LogConfig      `mapstructure:"log"`
	Server   ServerConfig   `mapstructure:"server"`
}

// InsightConfig represents the generative-text service configuration
type InsightConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Model     string `mapstructure:"model"`
	APIKeyEnv string `mapstructure:"api_key_env"` // Name of the env var holding the API key
	Timeout   string `mapstructure:"timeout"`     // Empty: transport default only
}

// HolidaysConfig represents holiday table configuration
type HolidaysConfig struct {
	File string `mapstructure:"file"` // Optional override table (YYYY-MM-DD name per line)
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// ServerConfig represents HTTP API configuration
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// Load loads configuration from file. A missing config file is not an error.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.calendario")
		v.AddConfigPath("/etc/calendario")
	}

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !(configPath != "" && errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("insight.enabled", true)
	v.SetDefault("insight.model", DefaultModel)
	v.SetDefault("insight.api_key_env", DefaultAPIKeyEnv)
	v.SetDefault("insight.timeout", "")
	v.SetDefault("holidays.file", "")
	v.SetDefault("log.file", "logs/calendario.log")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("server.addr", DefaultAddr)
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Insight.Enabled {
		if strings.TrimSpace(c.Insight.Model) == "" {
			return fmt.Errorf("insight.model is required when insight is enabled")
		}
		if strings.TrimSpace(c.Insight.APIKeyEnv) == "" {
			return fmt.Errorf("insight.api_key_env is required when insight is enabled")
		}
	}
	if c.Insight.Timeout != "" {
		if _, err := time.ParseDuration(c.Insight.Timeout); err != nil {
			return fmt.Errorf("insight.timeout must be a duration, got '%s'", c.Insight.Timeout)
		}
	}

	switch strings.ToLower(c.Log.Level) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got '%s'", c.Log.Level)
	}

	if c.Server.Addr == "" {
		return fmt.Errorf("server.addr is required")
	}

	return nil
}

// GetTimeout returns the insight request timeout; zero means no explicit timeout
func (c *InsightConfig) GetTimeout() time.Duration {
	if c.Timeout == "" {
		return 0
	}
	duration, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0
	}
	return duration
}

// APIKey reads the API key from the configured environment variable
func (c *InsightConfig) APIKey() string {
	return strings.TrimSpace(os.Getenv(c.APIKeyEnv))
}

// GetLevel returns the log level, defaulting to info
func (c *LogConfig) GetLevel() string {
	if c.Level == "" {
		return DefaultLogLevel
	}
	return strings.ToLower(c.Level)
}

// ExpandEnvVars expands environment variables in config paths
func (c *Config) ExpandEnvVars() {
	c.Holidays.File = os.ExpandEnv(c.Holidays.File)
	c.Log.File = os.ExpandEnv(c.Log.File)
}
