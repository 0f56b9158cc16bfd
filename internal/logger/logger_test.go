package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		in   string
		want slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"WARNING", slog.LevelWarn},
		{"WARN", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"garbage", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, c := range cases {
		if got := parseLogLevel(c.in); got != c.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	config := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))

	if config.Level != "INFO" {
		t.Errorf("level = %q, want INFO", config.Level)
	}
	if !config.ConsoleEnabled {
		t.Error("console should be enabled by default")
	}
	if config.FileEnabled {
		t.Error("file logging should be disabled by default")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `logging:
  level: DEBUG
  console_enabled: true
  file_enabled: true
  file_path: out/test.log
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config := LoadConfig(path)
	if config.Level != "DEBUG" {
		t.Errorf("level = %q, want DEBUG", config.Level)
	}
	if !config.FileEnabled {
		t.Error("file logging should be enabled")
	}
	if config.FilePath != "out/test.log" {
		t.Errorf("file path = %q, want out/test.log", config.FilePath)
	}
	// Unset numeric fields keep their defaults.
	if config.FileMaxSizeMB != 10 {
		t.Errorf("file max size = %d, want default 10", config.FileMaxSizeMB)
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "ERROR")

	config := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if config.Level != "ERROR" {
		t.Errorf("level = %q, want env override ERROR", config.Level)
	}
}

func TestInitializeAndLog(t *testing.T) {
	Initialize(DefaultConfig())

	// Logging with a configured logger must not panic.
	Debug("debug message", "k", 1)
	Info("info message", "k", 2)
	Warn("warn message")
	Error("error message")
}
