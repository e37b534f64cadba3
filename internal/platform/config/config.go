package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	apperrors "ancare/internal/platform/errors"
)

const (
	StorageFile    = "file"
	StorageSQLite  = "sqlite"
	StorageMemory  = "memory"
	StorageBlocked = "blocked"
)

type Config struct {
	Dir          string
	StateDir     string
	KVDir        string
	DBPath       string
	SettingsPath string
	Settings     Settings
}

// Settings is the optional ancare.yaml inside the state directory.
type Settings struct {
	Storage  string          `yaml:"storage"`
	LogLevel string          `yaml:"log_level"`
	Presets  []PresetSetting `yaml:"presets"`
}

// PresetSetting maps a keyword found in a product name to a canonical item.
type PresetSetting struct {
	Keyword string  `yaml:"keyword"`
	ID      string  `yaml:"id"`
	Name    string  `yaml:"name"`
	Note    string  `yaml:"note"`
	Price   float64 `yaml:"price"`
}

func New(dir string) (Config, error) {
	if strings.TrimSpace(dir) == "" {
		return Config{}, fmt.Errorf("state directory is required")
	}
	stateDir := filepath.Join(dir, ".ancare")
	cfg := Config{
		Dir:          dir,
		StateDir:     stateDir,
		KVDir:        filepath.Join(stateDir, "kv"),
		DBPath:       filepath.Join(stateDir, "ancare.db"),
		SettingsPath: filepath.Join(stateDir, "ancare.yaml"),
		Settings:     Settings{Storage: StorageFile, LogLevel: "warn"},
	}
	if err := cfg.loadSettings(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) loadSettings() error {
	raw, err := os.ReadFile(c.SettingsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read settings: %w", err)
	}
	settings := Settings{}
	if err := yaml.Unmarshal(raw, &settings); err != nil {
		return fmt.Errorf("decode settings: %w", err)
	}
	if settings.Storage != "" {
		c.Settings.Storage = settings.Storage
	}
	if settings.LogLevel != "" {
		c.Settings.LogLevel = settings.LogLevel
	}
	c.Settings.Presets = settings.Presets
	return c.OverrideStorage("")
}

// OverrideStorage replaces the configured backend when kind is non-empty and
// validates the result.
func (c *Config) OverrideStorage(kind string) error {
	if kind = strings.ToLower(strings.TrimSpace(kind)); kind != "" {
		c.Settings.Storage = kind
	}
	switch c.Settings.Storage {
	case StorageFile, StorageSQLite, StorageMemory, StorageBlocked:
		return nil
	default:
		return fmt.Errorf("%w: %q", apperrors.ErrUnknownBackend, c.Settings.Storage)
	}
}
