package shared

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.API.BaseURL == "" {
		t.Error("expected default base URL to be set")
	}
	if config.Lists.WordPageSize != 6 {
		t.Errorf("expected word page size 6, got %d", config.Lists.WordPageSize)
	}
	if config.Lists.TrackPageSize != 6 {
		t.Errorf("expected track page size 6, got %d", config.Lists.TrackPageSize)
	}
	if config.Lists.WordInitialCount != 3 {
		t.Errorf("expected word initial count 3, got %d", config.Lists.WordInitialCount)
	}
	if config.Lists.TrackInitialCount != 4 {
		t.Errorf("expected track initial count 4, got %d", config.Lists.TrackInitialCount)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[api]
base_url = "https://api.example.com"
timeout_seconds = 30

[database]
path = ":memory:"

[lists]
word_page_size = 10
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}

	if config.API.BaseURL != "https://api.example.com" {
		t.Errorf("unexpected base URL: %v", config.API.BaseURL)
	}
	if config.Database.Path != ":memory:" {
		t.Errorf("unexpected database path: %v", config.Database.Path)
	}
	if config.Lists.WordPageSize != 10 {
		t.Errorf("unexpected word page size: %v", config.Lists.WordPageSize)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestCreateConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := CreateConfigFile(path); err != nil {
		t.Fatalf("CreateConfigFile() error = %v", err)
	}

	if _, err := LoadConfig(path); err != nil {
		t.Errorf("created config should be loadable: %v", err)
	}

	if err := CreateConfigFile(path); err == nil {
		t.Error("expected error when config file already exists")
	}
}
