package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/inotes/inotes/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Transport != config.DefaultTransport {
		t.Errorf("transport = %q, want %q", cfg.Transport, config.DefaultTransport)
	}
	if cfg.Port != config.DefaultPort {
		t.Errorf("port = %d, want %d", cfg.Port, config.DefaultPort)
	}
	if cfg.FolderName != config.NotesFolder {
		t.Errorf("folder = %q, want %q", cfg.FolderName, config.NotesFolder)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("INOTES_TRANSPORT", "sse")
	t.Setenv("INOTES_PORT", "9001")
	t.Setenv("INOTES_LOG_LEVEL", "debug")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Transport != "sse" {
		t.Errorf("transport = %q, want sse", cfg.Transport)
	}
	if cfg.Port != 9001 {
		t.Errorf("port = %d, want 9001", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("log level = %q, want debug", cfg.LogLevel)
	}
}

func TestFolderNotConfigurable(t *testing.T) {
	// The folder boundary has no environment or file override; a config
	// file attempting to set it must not take effect.
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"transport":"sse","FolderName":"Other"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("INOTES_CONFIG", path)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Transport != "sse" {
		t.Errorf("transport = %q, want sse from config file", cfg.Transport)
	}
	if cfg.FolderName != config.NotesFolder {
		t.Errorf("folder = %q, config files must not change it", cfg.FolderName)
	}
}

func TestLoadMissingConfigFile(t *testing.T) {
	t.Setenv("INOTES_CONFIG", filepath.Join(t.TempDir(), "nope.json"))

	if _, err := config.Load(); err == nil {
		t.Error("missing config file should be an error, not silently ignored")
	}
}
