// Package config loads taskdash settings from
// ~/.config/taskdash/config.yaml. A missing file yields defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	xdgAppName = "taskdash"
	configFile = "config.yaml"

	defaultAPIURL = "http://localhost:5000"
)

// Calendar holds the Google Calendar push settings.
type Calendar struct {
	// ID of the target calendar; "primary" targets the account default.
	ID string `yaml:"id"`
	// CredentialsFile and TokenFile are resolved relative to the config
	// directory when not absolute.
	CredentialsFile string `yaml:"credentials_file"`
	TokenFile       string `yaml:"token_file"`
}

// Config is the file's full schema.
type Config struct {
	APIURL   string   `yaml:"api_url"`
	LogLevel string   `yaml:"log_level"`
	Calendar Calendar `yaml:"calendar"`
}

// Dir returns the taskdash config directory.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", xdgAppName), nil
}

// Load reads the config file from the default directory.
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.yaml from the given directory, applying defaults
// for anything absent. A missing file is not an error.
func LoadFrom(dir string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(filepath.Join(dir, configFile))
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyDefaults(dir)
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cfg.applyDefaults(dir)
	return cfg, nil
}

func (c *Config) applyDefaults(dir string) {
	if c.APIURL == "" {
		c.APIURL = defaultAPIURL
	}
	if c.LogLevel == "" {
		c.LogLevel = "warn"
	}
	if c.Calendar.ID == "" {
		c.Calendar.ID = "primary"
	}
	if c.Calendar.CredentialsFile == "" {
		c.Calendar.CredentialsFile = "credentials.json"
	}
	if c.Calendar.TokenFile == "" {
		c.Calendar.TokenFile = "token.json"
	}
	if !filepath.IsAbs(c.Calendar.CredentialsFile) {
		c.Calendar.CredentialsFile = filepath.Join(dir, c.Calendar.CredentialsFile)
	}
	if !filepath.IsAbs(c.Calendar.TokenFile) {
		c.Calendar.TokenFile = filepath.Join(dir, c.Calendar.TokenFile)
	}
}
