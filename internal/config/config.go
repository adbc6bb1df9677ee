package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Client is one billable client as configured.
type Client struct {
	// ID is the numeric client ID in the reporting workspace.
	ID string `yaml:"id"`
	// HourlyRate is the amount billed per hour (single currency).
	HourlyRate float64 `yaml:"hourly_rate"`
	// LastBilledDate is a "YYYY-MM-DD" date; days up to and including it
	// have already been invoiced.
	LastBilledDate string `yaml:"last_billed_date"`
}

// Config is the root configuration for togglbill, stored in
// ~/.togglbill/config.yaml.
type Config struct {
	// WorkspaceID is the Toggl workspace the reports are pulled from.
	WorkspaceID string `yaml:"workspace_id"`
	// StartOfTime is the first year with relevant time entries; the report
	// fetches one calendar year at a time from this year onwards.
	StartOfTime int `yaml:"start_of_time"`
	// Clients maps a short client name (the CLI argument) to its billing
	// settings.
	Clients map[string]Client `yaml:"clients"`
}

// DefaultStartOfTime is used when start_of_time is missing from the config.
const DefaultStartOfTime = 2022

// configTemplate is the annotated config written on first run.
const configTemplate = `# togglbill configuration – ~/.togglbill/config.yaml
#
# The Toggl workspace the detailed reports are pulled from.
workspace_id: ""

# First year with relevant time entries. The report fetches one calendar
# year at a time from this year through the current year.
start_of_time: 2022

# Clients maps a short name (the argument to "togglbill report") to its
# billing settings, e.g.:
#
# clients:
#   acme:
#     id: "12345678"                  # Toggl client ID
#     hourly_rate: 30.0               # billed per hour
#     last_billed_date: "2022-01-01"  # days up to and including this are already invoiced
clients: {}
`

// DefaultPath returns the path to ~/.togglbill/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".togglbill", "config.yaml"), nil
}

// Load reads the config file at path, creating it with an annotated template
// on first run. Zero-value fields are filled with built-in defaults so
// callers always get a usable Config.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return Config{StartOfTime: DefaultStartOfTime}, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if cfg.StartOfTime == 0 {
		cfg.StartOfTime = DefaultStartOfTime
	}

	return cfg, nil
}

// writeDefault creates the config directory and writes the annotated default
// config template.
func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}

// ClientByName looks up a configured client. An unknown name is reported
// together with the configured names so typos are easy to spot.
func (c Config) ClientByName(name string) (Client, error) {
	client, ok := c.Clients[name]
	if !ok {
		names := c.ClientNames()
		if len(names) == 0 {
			return Client{}, fmt.Errorf("unknown client %q: no clients configured", name)
		}
		return Client{}, fmt.Errorf("unknown client %q (configured: %s)", name, strings.Join(names, ", "))
	}
	return client, nil
}

// ClientNames returns the configured client names in sorted order.
func (c Config) ClientNames() []string {
	names := make([]string, 0, len(c.Clients))
	for name := range c.Clients {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
