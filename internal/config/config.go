package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config represents application configuration
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Calendar CalendarConfig `mapstructure:"calendar"`
}

// ServerConfig represents the HTTP API configuration
type ServerConfig struct {
	ListenAddr      string   `mapstructure:"listen_addr"`
	CORSOrigins     []string `mapstructure:"cors_origins"`
	RequestTimeout  string   `mapstructure:"request_timeout"`
	ShutdownTimeout string   `mapstructure:"shutdown_timeout"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"` // Empty = console logging only
}

// CalendarConfig carries fiscal calendar overrides. Extra years extend the
// built-in alignment table, so widening the supported range is a
// configuration change rather than a code change.
type CalendarConfig struct {
	ExtraYears []YearOverride `mapstructure:"extra_years"`
}

// YearOverride adds one fiscal year to the alignment table
type YearOverride struct {
	Year   int `mapstructure:"year"`
	Offset int `mapstructure:"offset"`
	Weeks  int `mapstructure:"weeks"` // 52 or 53; 0 means 52
}

// Load loads configuration from file. An explicit path must exist; with no
// path the default locations are searched and built-in defaults apply when
// nothing is found.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.fiscal-calendar")
		v.AddConfigPath("/etc/fiscal-calendar")
	}

	// Read environment variables
	v.AutomaticEnv()

	// Defaults keep the tool usable with no config file at all
	v.SetDefault("server.listen_addr", ":8080")
	v.SetDefault("server.cors_origins", []string{"*"})
	v.SetDefault("server.request_timeout", "60s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("log.level", "info")

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
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

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.ListenAddr == "" {
		return fmt.Errorf("server.listen_addr is required")
	}

	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level %q is not a zap level", c.Log.Level)
	}

	seen := make(map[int]bool, len(c.Calendar.ExtraYears))
	for _, y := range c.Calendar.ExtraYears {
		if y.Year <= 0 {
			return fmt.Errorf("calendar.extra_years has non-positive year %d", y.Year)
		}
		if seen[y.Year] {
			return fmt.Errorf("calendar.extra_years lists year %d twice", y.Year)
		}
		seen[y.Year] = true

		if y.Weeks != 0 && y.Weeks != 52 && y.Weeks != 53 {
			return fmt.Errorf("calendar.extra_years year %d has %d weeks, want 52 or 53", y.Year, y.Weeks)
		}
	}

	return nil
}

// TableData splits the override entries into the offset map and 53-week
// year list the alignment table builder consumes.
func (c *CalendarConfig) TableData() (map[int]int, []int) {
	offsets := make(map[int]int, len(c.ExtraYears))
	var weeks53 []int
	for _, y := range c.ExtraYears {
		offsets[y.Year] = y.Offset
		if y.Weeks == 53 {
			weeks53 = append(weeks53, y.Year)
		}
	}
	return offsets, weeks53
}

// ZapLevel returns the configured log level
func (c *LogConfig) ZapLevel() zapcore.Level {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// GetRequestTimeout returns the per-request timeout for the HTTP API
func (c *ServerConfig) GetRequestTimeout() time.Duration {
	return parseDurationOr(c.RequestTimeout, 60*time.Second)
}

// GetShutdownTimeout returns how long a stopping server may wait for
// in-flight requests
func (c *ServerConfig) GetShutdownTimeout() time.Duration {
	return parseDurationOr(c.ShutdownTimeout, 10*time.Second)
}

func parseDurationOr(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	duration, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return duration
}
