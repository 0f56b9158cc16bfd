package logger

import (
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds logging configuration.
type Config struct {
	Level          string `yaml:"level"`
	ConsoleEnabled bool   `yaml:"console_enabled"`
	ConsoleFormat  string `yaml:"console_format"`
	FileEnabled    bool   `yaml:"file_enabled"`
	FilePath       string `yaml:"file_path"`
	FileFormat     string `yaml:"file_format"`
	FileMaxSizeMB  int    `yaml:"file_max_size_mb"`
	FileMaxBackups int    `yaml:"file_max_backups"`
	FileMaxAgeDays int    `yaml:"file_max_age_days"`
}

// loggingConfig wraps Config so logging lives under its own key in the
// shared config file.
type loggingConfig struct {
	Logging Config `yaml:"logging"`
}

// DefaultConfig returns the logging defaults: INFO text output on the
// console, no log file.
func DefaultConfig() Config {
	return Config{
		Level:          "INFO",
		ConsoleEnabled: true,
		ConsoleFormat:  "text",
		FileEnabled:    false,
		FilePath:       "logs/mapforge.log",
		FileFormat:     "text",
		FileMaxSizeMB:  10,
		FileMaxBackups: 5,
		FileMaxAgeDays: 30,
	}
}

// LoadConfig loads logging configuration from a YAML file and applies
// environment variable overrides. A missing or unparseable file
// silently yields the defaults.
func LoadConfig(configPath string) Config {
	config := DefaultConfig()

	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			var wrapped loggingConfig
			if err := yaml.Unmarshal(data, &wrapped); err == nil {
				if wrapped.Logging.Level != "" {
					config.Level = wrapped.Logging.Level
				}
				config.ConsoleEnabled = wrapped.Logging.ConsoleEnabled
				if wrapped.Logging.ConsoleFormat != "" {
					config.ConsoleFormat = wrapped.Logging.ConsoleFormat
				}
				config.FileEnabled = wrapped.Logging.FileEnabled
				if wrapped.Logging.FilePath != "" {
					config.FilePath = wrapped.Logging.FilePath
				}
				if wrapped.Logging.FileFormat != "" {
					config.FileFormat = wrapped.Logging.FileFormat
				}
				if wrapped.Logging.FileMaxSizeMB > 0 {
					config.FileMaxSizeMB = wrapped.Logging.FileMaxSizeMB
				}
				if wrapped.Logging.FileMaxBackups > 0 {
					config.FileMaxBackups = wrapped.Logging.FileMaxBackups
				}
				if wrapped.Logging.FileMaxAgeDays > 0 {
					config.FileMaxAgeDays = wrapped.Logging.FileMaxAgeDays
				}
			}
		}
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		config.Level = logLevel
	}
	if fileEnabled := os.Getenv("LOG_FILE_ENABLED"); fileEnabled != "" {
		if enabled, err := strconv.ParseBool(fileEnabled); err == nil {
			config.FileEnabled = enabled
		}
	}
	if filePath := os.Getenv("LOG_FILE_PATH"); filePath != "" {
		config.FilePath = filePath
	}

	return config
}
