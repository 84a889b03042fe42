package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("missing file: %v", err)
	}
	if cfg.SessionLimit() != DefaultSessionLimit {
		t.Errorf("SessionLimit = %d, want default %d", cfg.SessionLimit(), DefaultSessionLimit)
	}
	if cfg.DBPath() != "" {
		t.Errorf("DBPath = %q, want empty", cfg.DBPath())
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	data := []byte("[database]\npath = \"/tmp/ink.db\"\n\n[review]\nsession-limit = 5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBPath() != "/tmp/ink.db" {
		t.Errorf("DBPath = %q, want /tmp/ink.db", cfg.DBPath())
	}
	if cfg.SessionLimit() != 5 {
		t.Errorf("SessionLimit = %d, want 5", cfg.SessionLimit())
	}
}

func TestLoad_EmptyPath(t *testing.T) {
	if _, err := Load(""); err == nil {
		t.Error("empty path should fail")
	}
}
