package config

import (
	"os"
	"path/filepath"
	"testing"
)

const validYAML = `
server:
  host: "0.0.0.0"
  port: 8080
database:
  path: "data/liftkit.db"
`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// TestLoadValid verifies that a well-formed YAML config loads with all fields populated.
func TestLoadValid(t *testing.T) {
	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("server.port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Database.Path != "data/liftkit.db" {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, "data/liftkit.db")
	}
	if cfg.Tailscale.Enabled {
		t.Error("tailscale should default to disabled")
	}
}

// TestEnvOverride verifies that LIFTKIT_ env vars take precedence over YAML values.
// This ensures deployments can override config via environment.
func TestEnvOverride(t *testing.T) {
	t.Setenv("LIFTKIT_SERVER_PORT", "9999")
	t.Setenv("LIFTKIT_DB_PATH", "/tmp/override.db")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Database.Path != "/tmp/override.db" {
		t.Errorf("database.path = %q, want %q", cfg.Database.Path, "/tmp/override.db")
	}
	// Unchanged fields should keep YAML values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
}

// TestValidationMissingPort verifies that missing required fields produce a clear error.
// Prevents starting the server with incomplete configuration.
func TestValidationMissingPort(t *testing.T) {
	yaml := `
server:
  host: "0.0.0.0"
database:
  path: "data/liftkit.db"
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing port")
	}
}

// TestValidationMissingDBPath verifies that a missing database path is rejected.
func TestValidationMissingDBPath(t *testing.T) {
	yaml := `
server:
  port: 8080
database: {}
`
	_, err := Load(writeTemp(t, yaml))
	if err == nil {
		t.Fatal("expected validation error for missing database.path")
	}
}

// TestTailscaleMode verifies that tailscale serving drops the port
// requirement but demands a hostname.
func TestTailscaleMode(t *testing.T) {
	yaml := `
database:
  path: "data/liftkit.db"
tailscale:
  enabled: true
  hostname: "liftkit"
  state_dir: "data/tsnet"
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !cfg.Tailscale.Enabled || cfg.Tailscale.Hostname != "liftkit" {
		t.Errorf("tailscale = %+v", cfg.Tailscale)
	}

	missingHostname := `
database:
  path: "data/liftkit.db"
tailscale:
  enabled: true
`
	if _, err := Load(writeTemp(t, missingHostname)); err == nil {
		t.Fatal("expected validation error for missing tailscale.hostname")
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
