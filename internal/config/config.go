package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds the run settings. It is built once at startup and
// passed by value; nothing mutates it afterwards.
type Config struct {
	ReportSize     int     `json:"REPORT_SIZE"     validate:"gt=0"`
	ReportDir      string  `json:"REPORT_DIR"      validate:"required"`
	LogDir         string  `json:"LOG_DIR"         validate:"required"`
	DataDir        string  `json:"DATA_DIR"        validate:"required"`
	StructLogFile  string  `json:"STRUCT_LOG_FILE"`
	ErrorThreshold float64 `json:"ERROR_THRESHOLD" validate:"gte=0,lte=1"`
}

// Default returns the built-in settings used when the config file
// does not override them.
func Default() Config {
	return Config{
		ReportSize:     10,
		ReportDir:      "./reports",
		LogDir:         "./log",
		DataDir:        "./data",
		StructLogFile:  "./app.log",
		ErrorThreshold: 0.5,
	}
}

// Load reads the JSON config at path and merges it over the defaults.
// The file must exist; an empty file means "all defaults". Any
// malformed content or invalid value is a fatal configuration error.
func Load(path string) (Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config file %q: %w", path, err)
	}

	cfg := Default()

	if trimmed := strings.TrimSpace(string(content)); trimmed != "" {
		if err := json.Unmarshal([]byte(trimmed), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config from %q: %w", path, err)
	}

	return cfg, nil
}
