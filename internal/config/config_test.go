package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Avinashricky211/Ytapp/internal/config"
)

type testConfig struct {
	Server struct {
		Addr    string `yaml:"addr"`
		BaseURL string `yaml:"base_url"`
	}
}

const testDefaults = `
server:
  addr: "127.0.0.1:8080"
  base_url: "http://127.0.0.1:8080"
`

func TestDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	var cfg testConfig
	reader := config.New("ytapp.yaml", config.WithDefaults(testDefaults))
	if err := reader.Read(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:8080" {
		t.Fatalf("unexpected addr: %q", cfg.Server.Addr)
	}
}

func TestExplicitPathOverridesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "custom.yaml")
	content := []byte("server:\n  addr: \"0.0.0.0:9090\"\n")
	if err := os.WriteFile(path, content, 0600); err != nil {
		t.Fatal(err)
	}

	var cfg testConfig
	reader := config.New(
		"ytapp.yaml",
		config.WithDefaults(testDefaults),
		config.WithExplicitPath(path),
	)
	if err := reader.Read(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Addr != "0.0.0.0:9090" {
		t.Fatalf("explicit config should win: %q", cfg.Server.Addr)
	}
	if cfg.Server.BaseURL != "http://127.0.0.1:8080" {
		t.Fatalf("defaults should fill missing keys: %q", cfg.Server.BaseURL)
	}
}

func TestXDGConfigDir(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	content := []byte("server:\n  base_url: \"https://ytapp.example.com\"\n")
	if err := os.WriteFile(filepath.Join(dir, "ytapp.yaml"), content, 0600); err != nil {
		t.Fatal(err)
	}

	var cfg testConfig
	reader := config.New("ytapp.yaml", config.WithDefaults(testDefaults))
	if err := reader.Read(&cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.BaseURL != "https://ytapp.example.com" {
		t.Fatalf("XDG config should override defaults: %q", cfg.Server.BaseURL)
	}
}
