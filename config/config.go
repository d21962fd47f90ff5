// Package config loads the command configuration from flags and
// FORMPRESS_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ModeHTTP  = "http"
	ModeStdio = "stdio"

	DefaultHost      = "127.0.0.1"
	DefaultPort      = 8080
	DefaultLogLevel  = "info"
	DefaultMaxUpload = 32 * 1024 * 1024
)

// Config holds the settings for one formpress process.
type Config struct {
	Mode      string // "http" or "stdio"
	Host      string
	Port      int
	LogLevel  string
	MaxUpload int64 // HTTP upload cap in bytes
}

// ErrVersionRequested is returned by Load when --version was passed.
var ErrVersionRequested = errors.New("version requested")

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Mode:      ModeHTTP,
		Host:      DefaultHost,
		Port:      DefaultPort,
		LogLevel:  DefaultLogLevel,
		MaxUpload: DefaultMaxUpload,
	}
}

// Load parses command line flags, overlays FORMPRESS_* environment
// variables, and validates the result. Flags take precedence over the
// environment.
func Load() (*Config, error) {
	cfg := Default()

	viper.SetEnvPrefix("FORMPRESS")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("host", cfg.Host)
	viper.SetDefault("port", cfg.Port)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxupload", cfg.MaxUpload)

	pflag.String("mode", cfg.Mode, "Run mode: 'http' for the fill service, 'stdio' for the MCP server")
	pflag.String("host", cfg.Host, "Listen address (http mode only)")
	pflag.Int("port", cfg.Port, "Listen port (http mode only)")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxupload", cfg.MaxUpload, "Maximum fill request size in bytes (http mode only)")

	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("host", pflag.Lookup("host"))
	_ = viper.BindPFlag("port", pflag.Lookup("port"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxupload", pflag.Lookup("maxupload"))

	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return nil, ErrVersionRequested
		}
	}

	pflag.Parse()

	cfg.Mode = viper.GetString("mode")
	cfg.Host = viper.GetString("host")
	cfg.Port = viper.GetInt("port")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxUpload = viper.GetInt64("maxupload")

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Mode != ModeHTTP && c.Mode != ModeStdio {
		return errors.New("mode must be either 'http' or 'stdio'")
	}
	if c.Mode == ModeHTTP && (c.Port < 1 || c.Port > 65535) {
		return errors.New("port must be between 1 and 65535")
	}
	if c.MaxUpload <= 0 {
		return errors.New("maximum upload size must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}
	return nil
}

// Address returns the HTTP listen address as host:port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// SlogLevel maps the configured log level onto slog's levels.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
