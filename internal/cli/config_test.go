package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigDir(t *testing.T) {
	originalXDG := os.Getenv("XDG_CONFIG_HOME")
	defer os.Setenv("XDG_CONFIG_HOME", originalXDG)

	os.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if dir := defaultConfigDir(); dir != "/custom/config/darklock" {
		t.Errorf("expected /custom/config/darklock, got %s", dir)
	}

	os.Unsetenv("XDG_CONFIG_HOME")
	homeDir, _ := os.UserHomeDir()
	expected := filepath.Join(homeDir, ".config", "darklock")
	if dir := defaultConfigDir(); dir != expected {
		t.Errorf("expected %s, got %s", expected, dir)
	}
}

func TestLoadCatalogFallsBackToBuiltin(t *testing.T) {
	original := appConfig
	defer func() { appConfig = original }()

	appConfig = &Config{}
	cat, err := loadCatalog()
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat.Source != "builtin" {
		t.Errorf("expected builtin catalog, got %q", cat.Source)
	}
}

func TestLoadCatalogUsesConfiguredPath(t *testing.T) {
	original := appConfig
	defer func() { appConfig = original }()

	dir := t.TempDir()
	path := filepath.Join(dir, "steps.yaml")
	yaml := "name: configured\nsteps:\n  - id: only\n    title: Only step\n    duration_ms: 10\n"
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatalf("write catalog: %v", err)
	}

	appConfig = &Config{}
	appConfig.Catalog.Path = path

	cat, err := loadCatalog()
	if err != nil {
		t.Fatalf("loadCatalog: %v", err)
	}
	if cat.Name != "configured" || cat.Len() != 1 {
		t.Errorf("unexpected catalog: %+v", cat)
	}
}
