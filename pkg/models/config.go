package models

import "strings"

// Storage backends
const (
	BackendPreferences = "preferences"
	BackendBolt        = "bolt"
	BackendMemory      = "memory"
)

// Schedule views
const (
	ViewAgenda = "agenda"
	ViewHourly = "hourly"
)

const DefaultNamespace = "tradeshow-assistant-v1"

// Config holds application configuration
type Config struct {
	Storage        StorageConfig `yaml:"storage" json:"storage"`
	LogLevel       string        `yaml:"log_level" json:"log_level"`               // debug, info, warn, error
	DefaultView    string        `yaml:"default_view" json:"default_view"`         // agenda or hourly
	SeedSampleData bool          `yaml:"seed_sample_data" json:"seed_sample_data"` // seed the sample show on first run
	AutoStart      bool          `yaml:"auto_start" json:"auto_start"`             // launch at login
}

// StorageConfig selects where the planner slices are kept
type StorageConfig struct {
	Backend   string `yaml:"backend" json:"backend"`     // preferences, bolt or memory
	BoltPath  string `yaml:"bolt_path" json:"bolt_path"` // used by the bolt backend
	Namespace string `yaml:"namespace" json:"namespace"` // key prefix for every slice
}

// DefaultConfig returns the configuration written on first run
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend:   BackendPreferences,
			Namespace: DefaultNamespace,
		},
		LogLevel:       "info",
		DefaultView:    ViewAgenda,
		SeedSampleData: true,
	}
}

// Normalize replaces unknown or empty values with defaults
func (c *Config) Normalize() {
	switch c.Storage.Backend {
	case BackendPreferences, BackendBolt, BackendMemory:
	default:
		c.Storage.Backend = BackendPreferences
	}
	if strings.TrimSpace(c.Storage.Namespace) == "" {
		c.Storage.Namespace = DefaultNamespace
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
		c.LogLevel = strings.ToLower(c.LogLevel)
	default:
		c.LogLevel = "info"
	}

	if c.DefaultView != ViewAgenda && c.DefaultView != ViewHourly {
		c.DefaultView = ViewAgenda
	}
}
