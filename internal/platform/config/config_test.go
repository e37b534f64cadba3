package config_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"ancare/internal/platform/config"
	apperrors "ancare/internal/platform/errors"
)

func TestNewDefaults(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Settings.Storage != config.StorageFile || cfg.Settings.LogLevel != "warn" {
		t.Fatalf("unexpected defaults: %+v", cfg.Settings)
	}
	if cfg.DBPath != filepath.Join(dir, ".ancare", "ancare.db") {
		t.Fatalf("unexpected db path %s", cfg.DBPath)
	}
	if _, err := config.New(" "); err == nil {
		t.Fatalf("blank dir should fail")
	}
}

func TestNewReadsSettingsFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	stateDir := filepath.Join(dir, ".ancare")
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	raw := `storage: sqlite
log_level: debug
presets:
  - keyword: energy
    id: ancare_stick_energy
    name: an:care Stick Energy
    note: Zitrone Minze
    price: 14.49
`
	if err := os.WriteFile(filepath.Join(stateDir, "ancare.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Settings.Storage != config.StorageSQLite || cfg.Settings.LogLevel != "debug" {
		t.Fatalf("settings not applied: %+v", cfg.Settings)
	}
	if len(cfg.Settings.Presets) != 1 || cfg.Settings.Presets[0].Price != 14.49 {
		t.Fatalf("presets not decoded: %+v", cfg.Settings.Presets)
	}
}

func TestOverrideStorageRejectsUnknownBackend(t *testing.T) {
	t.Parallel()
	cfg, err := config.New(t.TempDir())
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if err := cfg.OverrideStorage("Memory"); err != nil || cfg.Settings.Storage != config.StorageMemory {
		t.Fatalf("memory override should be accepted: %v", err)
	}
	if err := cfg.OverrideStorage("floppy"); !errors.Is(err, apperrors.ErrUnknownBackend) {
		t.Fatalf("expected unknown backend error, got %v", err)
	}
}
