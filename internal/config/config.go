package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/ztolley/combobox/internal/domain"
	"github.com/ztolley/combobox/internal/eventbus"
)

// Config represents the application configuration
type Config struct {
	Version    int              `toml:"version"`
	Catalog    CatalogSettings  `toml:"catalog"`
	Selector   SelectorSettings `toml:"selector"`
	UISettings UISettings       `toml:"ui"`
}

// CatalogSettings describes where candidates come from
type CatalogSettings struct {
	Path       string             `toml:"path,omitempty"`       // external catalog file
	Candidates []domain.Candidate `toml:"candidates,omitempty"` // inline catalog, used when Path is empty
	DefaultID  *int               `toml:"default_id,omitempty"` // candidate selected at start
}

// SelectorSettings tunes filtering behaviour
type SelectorSettings struct {
	MatchMode      string `toml:"match_mode"`       // "substring" or "fuzzy"
	MinQueryLength int    `toml:"min_query_length"` // shorter queries show the whole catalog
	Freeze         string `toml:"freeze"`           // "until-cleared" or "until-edited"
}

// UISettings represents UI-related configuration
type UISettings struct {
	Prompt         string `toml:"prompt"`
	Placeholder    string `toml:"placeholder"`
	Width          int    `toml:"width"`           // input width in cells, 0 = fit terminal
	MaxSuggestions int    `toml:"max_suggestions"` // rows shown in the overlay, 0 = unlimited
	Mouse          bool   `toml:"mouse"`
	ShowHelp       bool   `toml:"show_help"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service using the user config directory
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	return &configService{
		filePath: filepath.Join(configDir, "combobox", "config.toml"),
	}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(bus eventbus.EventBus) ConfigService {
	cs := NewConfigService().(*configService)
	cs.bus = bus
	return cs
}

// NewConfigServiceAt creates a config service bound to a specific file
func NewConfigServiceAt(path string, bus eventbus.EventBus) ConfigService {
	return &configService{bus: bus, filePath: path}
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from file, returning defaults when it does not exist
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}

	cfg, err := cs.LoadFromPath(cs.filePath)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: cs.filePath})
	}

	return cfg, nil
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}

	return nil
}

// LoadFromPath loads configuration from a specific path.
// Missing keys keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Selector: SelectorSettings{
			MatchMode:      "substring",
			MinQueryLength: 0,
			Freeze:         "until-cleared",
		},
		UISettings: UISettings{
			Prompt:         "› ",
			Placeholder:    "Type to search…",
			MaxSuggestions: 8,
			Mouse:          true,
			ShowHelp:       true,
		},
	}
}
