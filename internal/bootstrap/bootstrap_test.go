package bootstrap_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"ancare/internal/bootstrap"
	"ancare/internal/platform/config"
)

func TestNewWiresEveryStorageBackend(t *testing.T) {
	t.Parallel()
	for _, storage := range []string{config.StorageFile, config.StorageSQLite, config.StorageMemory, config.StorageBlocked} {
		storage := storage
		t.Run(storage, func(t *testing.T) {
			t.Parallel()
			cfg, err := config.New(t.TempDir())
			if err != nil {
				t.Fatalf("config: %v", err)
			}
			if err := cfg.OverrideStorage(storage); err != nil {
				t.Fatalf("override storage: %v", err)
			}
			app, err := bootstrap.New(cfg)
			if err != nil {
				t.Fatalf("bootstrap: %v", err)
			}
			defer func() { _ = app.Close() }()

			ctx := context.Background()
			if _, err := app.CartCLI.AddByName(ctx, "an:care Stick Calm"); err != nil {
				t.Fatalf("add: %v", err)
			}
			summary, err := app.CheckoutCLI.Show(ctx)
			if err != nil {
				t.Fatalf("checkout: %v", err)
			}
			if summary.ItemCount != 1 || summary.Subtotal != 13.99 {
				t.Fatalf("unexpected summary %+v", summary)
			}
			memoryOnly := len(app.Store.MemoryOnly()) > 0
			if memoryOnly != (storage == config.StorageBlocked) {
				t.Fatalf("memory-only keys %v for %s", app.Store.MemoryOnly(), storage)
			}
		})
	}
}

func TestSettingsPresetOverridesDefault(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	stateDir := filepath.Join(dir, ".ancare")
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	raw := "storage: memory\npresets:\n  - keyword: calm\n    id: ancare_calm_xl\n    name: Calm XL\n    price: 19.5\n"
	if err := os.WriteFile(filepath.Join(stateDir, "ancare.yaml"), []byte(raw), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	app, err := bootstrap.New(cfg)
	if err != nil {
		t.Fatalf("bootstrap: %v", err)
	}
	defer func() { _ = app.Close() }()

	item, err := app.CartCLI.AddByName(context.Background(), "Stick Calm")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.ID != "ancare_calm_xl" || item.Price != 19.5 {
		t.Fatalf("configured preset must win, got %+v", item)
	}
}
