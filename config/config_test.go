package config

import (
	"errors"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func resetFlags() {
	pflag.CommandLine = pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	viper.Reset()
}

func clearEnv() {
	for _, key := range []string{"FORMPRESS_MODE", "FORMPRESS_HOST", "FORMPRESS_PORT",
		"FORMPRESS_LOGLEVEL", "FORMPRESS_MAXUPLOAD"} {
		os.Unsetenv(key)
	}
}

func load(t *testing.T, args []string, env map[string]string) (*Config, error) {
	t.Helper()
	originalArgs := os.Args
	t.Cleanup(func() {
		os.Args = originalArgs
		resetFlags()
		clearEnv()
	})

	os.Args = append([]string{"formpress"}, args...)
	resetFlags()
	clearEnv()
	for k, v := range env {
		os.Setenv(k, v)
	}
	return Load()
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(t, nil, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeHTTP {
		t.Errorf("Mode = %q, want http", cfg.Mode)
	}
	if cfg.Address() != "127.0.0.1:8080" {
		t.Errorf("Address = %q", cfg.Address())
	}
	if cfg.LogLevel != "info" || cfg.MaxUpload != DefaultMaxUpload {
		t.Errorf("LogLevel=%q MaxUpload=%d", cfg.LogLevel, cfg.MaxUpload)
	}
}

func TestLoadFlags(t *testing.T) {
	cfg, err := load(t, []string{
		"--mode=stdio", "--host=0.0.0.0", "--port=9090",
		"--loglevel=debug", "--maxupload=1048576",
	}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeStdio || cfg.Host != "0.0.0.0" || cfg.Port != 9090 {
		t.Errorf("cfg = %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.MaxUpload != 1048576 {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadEnvironment(t *testing.T) {
	cfg, err := load(t, nil, map[string]string{
		"FORMPRESS_MODE":     "stdio",
		"FORMPRESS_LOGLEVEL": "warn",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Mode != ModeStdio || cfg.LogLevel != "warn" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadFlagOverridesEnvironment(t *testing.T) {
	cfg, err := load(t, []string{"--port=9999"}, map[string]string{
		"FORMPRESS_PORT": "3000",
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want flag to win over env", cfg.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad mode", []string{"--mode=ftp"}, "mode must be either"},
		{"bad port", []string{"--port=99999"}, "port must be between"},
		{"bad loglevel", []string{"--loglevel=loud"}, "invalid log level"},
		{"bad maxupload", []string{"--maxupload=0"}, "must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(t, tt.args, nil)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadVersionFlag(t *testing.T) {
	_, err := load(t, []string{"--version"}, nil)
	if !errors.Is(err, ErrVersionRequested) {
		t.Fatalf("err = %v, want ErrVersionRequested", err)
	}
}

func TestSlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}
	for _, tt := range tests {
		c := &Config{LogLevel: tt.level}
		if got := c.SlogLevel(); got != tt.want {
			t.Errorf("%s: got %v", tt.level, got)
		}
	}
}
