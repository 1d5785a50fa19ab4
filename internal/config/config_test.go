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
data:
  dir: "/var/lib/fittrack"
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
	if cfg.Data.Dir != "/var/lib/fittrack" {
		t.Errorf("data.dir = %q, want %q", cfg.Data.Dir, "/var/lib/fittrack")
	}
	if cfg.Tailscale.Enabled {
		t.Error("tailscale enabled without config")
	}
}

// TestEnvOverride verifies that FITTRACK_ env vars take precedence over YAML values.
func TestEnvOverride(t *testing.T) {
	t.Setenv("FITTRACK_SERVER_PORT", "9999")
	t.Setenv("FITTRACK_DATA_DIR", "/tmp/override")

	cfg, err := Load(writeTemp(t, validYAML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("server.port = %d, want 9999", cfg.Server.Port)
	}
	if cfg.Data.Dir != "/tmp/override" {
		t.Errorf("data.dir = %q, want %q", cfg.Data.Dir, "/tmp/override")
	}
	// Unchanged fields should keep YAML values
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("server.host = %q, want %q", cfg.Server.Host, "0.0.0.0")
	}
}

// TestDataDirDefault verifies the data directory defaults when unset.
func TestDataDirDefault(t *testing.T) {
	yaml := `
server:
  port: 8080
`
	cfg, err := Load(writeTemp(t, yaml))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Data.Dir != "data" {
		t.Errorf("data.dir = %q, want %q", cfg.Data.Dir, "data")
	}
}

// TestValidationMissingPort verifies a plain-HTTP config without a port is rejected.
func TestValidationMissingPort(t *testing.T) {
	yaml := `
server:
  host: "0.0.0.0"
`
	if _, err := Load(writeTemp(t, yaml)); err == nil {
		t.Fatal("expected validation error for missing port")
	}
}

// TestTailscaleValidation verifies tsnet mode requires a hostname but no port.
func TestTailscaleValidation(t *testing.T) {
	missingHostname := `
tailscale:
  enabled: true
`
	if _, err := Load(writeTemp(t, missingHostname)); err == nil {
		t.Fatal("expected validation error for missing tailscale hostname")
	}

	noPortNeeded := `
tailscale:
  enabled: true
  hostname: "fittrack"
  state_dir: "/var/lib/fittrack/ts"
`
	cfg, err := Load(writeTemp(t, noPortNeeded))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Tailscale.Hostname != "fittrack" {
		t.Errorf("tailscale.hostname = %q", cfg.Tailscale.Hostname)
	}
}

// TestLoadMissingFile verifies that a missing config file returns a clear error.
func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/config.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
