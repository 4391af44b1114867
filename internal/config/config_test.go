package config

import (
	"os"
	"path/filepath"
	"testing"
)

// isolate points every lookup at a temp dir so the developer's real config
// and .env never leak into tests.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, k := range []string{EnvConfig, EnvBackend, EnvDir, EnvKey, EnvTheme, EnvLog, EnvDebug} {
		t.Setenv(k, "")
	}
	wd, _ := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })
	return dir
}

func TestLoad_DefaultsWhenNothingConfigured(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "json" || cfg.Key != "packingListTrips" || cfg.Theme != "classic" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Source != "" {
		t.Fatalf("expected no config source, got %q", cfg.Source)
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "packlist.yaml")
	if err := os.WriteFile(path, []byte("backend: sqlite\ntheme: neon\nkey: fromfile\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvConfig, path)
	t.Setenv(EnvTheme, "mono")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "sqlite" || cfg.Key != "fromfile" {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Theme != "mono" {
		t.Fatalf("env must win over file, got theme %q", cfg.Theme)
	}
	if cfg.Source != path {
		t.Fatalf("expected source %q, got %q", path, cfg.Source)
	}
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte("PACKLIST_BACKEND=badger\n"), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	// godotenv never overrides variables that are already set, even to "".
	os.Unsetenv(EnvBackend)
	t.Cleanup(func() { os.Unsetenv(EnvBackend) })

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Backend != "badger" {
		t.Fatalf("expected .env backend, got %q", cfg.Backend)
	}
}

func TestLoad_ExplicitMissingFileIsAnError(t *testing.T) {
	dir := isolate(t)
	t.Setenv(EnvConfig, filepath.Join(dir, "nope.yaml"))
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for explicit missing config")
	}
}

func TestSave_RoundTrip(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "nested", "config.yaml")
	want := Config{Backend: "badger", Dir: "/tmp/x", Key: "k", Theme: "neon"}
	if err := want.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	t.Setenv(EnvConfig, path)
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Backend != want.Backend || got.Dir != want.Dir || got.Key != want.Key || got.Theme != want.Theme {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}
