//nolint:testpackage // Tests require internal access for thorough testing
package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFromMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(t.TempDir())
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.APIURL != defaultAPIURL {
		t.Errorf("APIURL = %q, want default", cfg.APIURL)
	}
	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}
	if cfg.Calendar.ID != "primary" {
		t.Errorf("Calendar.ID = %q, want primary", cfg.Calendar.ID)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("api_url: https://tasks.example.com\nlog_level: debug\ncalendar:\n  id: work@example.com\n")
	if err := os.WriteFile(filepath.Join(dir, configFile), content, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(dir)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if cfg.APIURL != "https://tasks.example.com" {
		t.Errorf("APIURL = %q", cfg.APIURL)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.Calendar.ID != "work@example.com" {
		t.Errorf("Calendar.ID = %q", cfg.Calendar.ID)
	}
	// Relative credential paths resolve under the config dir
	if cfg.Calendar.CredentialsFile != filepath.Join(dir, "credentials.json") {
		t.Errorf("CredentialsFile = %q, want it anchored to the config dir", cfg.Calendar.CredentialsFile)
	}
}

func TestLoadFromMalformedFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, configFile), []byte("api_url: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(dir); err == nil {
		t.Error("LoadFrom should reject malformed YAML")
	}
}
