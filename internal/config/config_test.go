package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.DataDir != ".studytracker" {
		t.Errorf("expected default data_dir %q, got %q", ".studytracker", cfg.DataDir)
	}
	if cfg.Search.MinQueryLength != 3 {
		t.Errorf("expected default min_query_length 3, got %d", cfg.Search.MinQueryLength)
	}
	if cfg.Notifications.HideAfter != 3*time.Second || cfg.Notifications.RemoveAfter != 300*time.Millisecond {
		t.Errorf("unexpected notification delays %+v", cfg.Notifications)
	}
	if got := strings.Join(cfg.Search.Categories, ","); got != "basic,intermediate,advanced,rust" {
		t.Errorf("default search categories = %s", got)
	}
	if cfg.DBPath() != filepath.Join(".studytracker", "studytracker.db") {
		t.Errorf("DBPath() = %q", cfg.DBPath())
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.studytracker.yml")

	original := DefaultConfig()
	original.Catalog = []string{"content/**/*.yaml", "extra/*.json"}
	original.DefaultView = "rust"
	original.Categories = []string{"rust", "basic"}
	original.Notifications.HideAfter = 5 * time.Second
	original.Server.Port = 9000

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "hide_after: 5s") {
		t.Errorf("durations should be saved readably:\n%s", data)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.DefaultView != original.DefaultView {
		t.Errorf("default_view: got %q, want %q", loaded.DefaultView, original.DefaultView)
	}
	if loaded.Server.Port != 9000 {
		t.Errorf("server.port: got %d, want 9000", loaded.Server.Port)
	}
	if loaded.Notifications.HideAfter != 5*time.Second {
		t.Errorf("hide_after: got %v", loaded.Notifications.HideAfter)
	}
	if loaded.Notifications.RemoveAfter != 300*time.Millisecond {
		t.Errorf("remove_after: got %v", loaded.Notifications.RemoveAfter)
	}
	if len(loaded.Catalog) != len(original.Catalog) {
		t.Errorf("catalog length: got %d, want %d", len(loaded.Catalog), len(original.Catalog))
	}
	for i, v := range loaded.Catalog {
		if v != original.Catalog[i] {
			t.Errorf("catalog[%d]: got %q, want %q", i, v, original.Catalog[i])
		}
	}
	if strings.Join(loaded.Categories, ",") != "rust,basic" {
		t.Errorf("categories: got %v", loaded.Categories)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("STUDYTRACKER_DATA_DIR", "/var/lib/studytracker")
	t.Setenv("STUDYTRACKER_SERVER__PORT", "9191")
	t.Setenv("STUDYTRACKER_NOTIFICATIONS__HIDE_AFTER", "1500ms")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.DataDir != "/var/lib/studytracker" {
		t.Errorf("env override failed: got %q", loaded.DataDir)
	}
	if loaded.Server.Port != 9191 {
		t.Errorf("nested env override failed: got %d", loaded.Server.Port)
	}
	if loaded.Notifications.HideAfter != 1500*time.Millisecond {
		t.Errorf("duration env override failed: got %v", loaded.Notifications.HideAfter)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yml")
	if err := os.WriteFile(path, []byte("catalog: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(c *Config) {}, ""},
		{"no catalog", func(c *Config) { c.Catalog = nil }, "catalog"},
		{"blank pattern", func(c *Config) { c.Catalog = []string{" "} }, "catalog"},
		{"no data dir", func(c *Config) { c.DataDir = "" }, "data_dir"},
		{"default view not listed", func(c *Config) {
			c.Categories = []string{"basic"}
			c.DefaultView = "rust"
		}, "default_view"},
		{"default view listed", func(c *Config) {
			c.Categories = []string{"basic", "rust"}
			c.DefaultView = "rust"
		}, ""},
		{"min query", func(c *Config) { c.Search.MinQueryLength = 0 }, "min_query_length"},
		{"hide delay", func(c *Config) { c.Notifications.HideAfter = 0 }, "delays"},
		{"remove delay", func(c *Config) { c.Notifications.RemoveAfter = -time.Second }, "delays"},
		{"port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSplitAndTrim(t *testing.T) {
	got := splitAndTrim(" a/*.yaml, ,b/**/*.json ")
	if strings.Join(got, "|") != "a/*.yaml|b/**/*.json" {
		t.Errorf("splitAndTrim = %q", got)
	}
}

func TestParsePort(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"8080", 8080, false},
		{" 9000 ", 9000, false},
		{"80a", 0, true},
		{"0", 0, true},
		{"70000", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		got, err := parsePort(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePort(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePort(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}
