package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte(`
app_name: demo
server:
  host: 127.0.0.1
  port: 9090
response:
  language: zh
logger:
  level: 5
  format: text
`)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.AppName != "demo" || cfg.RunMode != "release" {
		t.Errorf("unexpected app settings: %q %q", cfg.AppName, cfg.RunMode)
	}
	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("Addr = %q", cfg.Server.Addr())
	}
	if cfg.Response.Language != "zh" {
		t.Errorf("language = %q", cfg.Response.Language)
	}
	if cfg.Logger.Level != 5 || cfg.Logger.Format != "text" {
		t.Errorf("logger = %+v", cfg.Logger)
	}
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestLoadConfigDefaultsAndEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("STELLRESP_SERVER_PORT", "7070")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.AppName != "stellresp" || cfg.Response.Language != "en" {
		t.Errorf("defaults not applied: %+v %+v", cfg, cfg.Response)
	}
	if cfg.Logger.Format != "json" {
		t.Errorf("logger format = %q", cfg.Logger.Format)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore wd: %v", err)
		}
	})
}
