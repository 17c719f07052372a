package config

import (
	"encoding/json"
	"os"
	"strconv"
)

type Config struct {
	// Server
	Transport string `json:"transport"` // "stdio" or "sse"
	Host      string `json:"host"`
	Port      int    `json:"port"`
	LogLevel  string `json:"log_level"`

	// Automation
	OsascriptPath string `json:"osascript_path"`

	// FolderName scopes every note operation. It is deliberately excluded
	// from the JSON file and the environment: the folder boundary is a
	// safety guarantee, not a deployment option. Tests substitute it
	// through the notes.Service constructor instead.
	FolderName string `json:"-"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Transport:     DefaultTransport,
		Host:          DefaultHost,
		Port:          DefaultPort,
		LogLevel:      DefaultLogLevel,
		OsascriptPath: DefaultOsascriptPath,
		FolderName:    NotesFolder,
	}

	// Load from JSON config file if specified
	if path := getEnv("INOTES_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("INOTES_TRANSPORT", ""); v != "" {
		cfg.Transport = v
	}
	if v := getEnv("INOTES_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("INOTES_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("INOTES_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("INOTES_OSASCRIPT", ""); v != "" {
		cfg.OsascriptPath = v
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
