package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing config should not error: %v", err)
	}
	if cfg.TabWidth != 4 {
		t.Errorf("default tab_width = %d, want 4", cfg.TabWidth)
	}
	if cfg.BackupSuffix != "~" {
		t.Errorf("default backup_suffix = %q, want ~", cfg.BackupSuffix)
	}
	if cfg.RecentFiles == "" {
		t.Error("default recent_files path should be set")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stet.toml")
	os.WriteFile(path, []byte("tab_width = 8\nrecent_files = \"/tmp/recent\"\nbackup_suffix = \".bak\"\n"), 0644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TabWidth != 8 {
		t.Errorf("tab_width = %d", cfg.TabWidth)
	}
	if cfg.RecentFiles != "/tmp/recent" {
		t.Errorf("recent_files = %q", cfg.RecentFiles)
	}
	if cfg.BackupSuffix != ".bak" {
		t.Errorf("backup_suffix = %q", cfg.BackupSuffix)
	}
}

func TestLoadConfigPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stet.toml")
	os.WriteFile(path, []byte("tab_width = 2\n"), 0644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TabWidth != 2 {
		t.Errorf("tab_width = %d", cfg.TabWidth)
	}
	if cfg.BackupSuffix != "~" {
		t.Errorf("unset keys should keep defaults, backup_suffix = %q", cfg.BackupSuffix)
	}
}

func TestLoadConfigMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stet.toml")
	os.WriteFile(path, []byte("tab_width = = broken"), 0644)

	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatal("malformed config should surface a parse error")
	}
	if cfg.TabWidth != 4 {
		t.Errorf("malformed config should fall back to defaults, tab_width = %d", cfg.TabWidth)
	}
}

func TestLoadConfigClampsTabWidth(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stet.toml")
	os.WriteFile(path, []byte("tab_width = 0\n"), 0644)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.TabWidth < 1 {
		t.Errorf("tab_width should clamp to at least 1, got %d", cfg.TabWidth)
	}
}
