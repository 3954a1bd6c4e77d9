package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
)

// useTempXDG points the xdg package at a fresh directory for the duration of the test.
func useTempXDG(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	// registered first so it runs after the env vars are restored
	t.Cleanup(xdg.Reload)
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", filepath.Join(dir, "system"))
	xdg.Reload()
	return dir
}

func TestInitConfigDefaults(t *testing.T) {
	useTempXDG(t)
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig error: %v", err)
	}
	if *cfg != DefaultConfig {
		t.Fatalf("expected defaults, got %+v", *cfg)
	}
}

func TestSaveAndReload(t *testing.T) {
	dir := useTempXDG(t)
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig error: %v", err)
	}
	cfg.ShowHints = false
	cfg.Language = "ja"
	cfg.Theme.Symbols.BlackDisc = 'X'
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "reversi", "config.json")); err != nil {
		t.Fatalf("expected config file written: %v", err)
	}

	got, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig after save: %v", err)
	}
	if got.ShowHints || got.Language != "ja" || got.Theme.Symbols.BlackDisc != 'X' {
		t.Fatalf("saved settings not loaded: %+v", *got)
	}
}

func TestInitConfigPartialFileKeepsDefaults(t *testing.T) {
	dir := useTempXDG(t)
	path := filepath.Join(dir, "reversi", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(`{"log_level": "debug"}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := InitConfig()
	if err != nil {
		t.Fatalf("InitConfig error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug level, got %q", cfg.LogLevel)
	}
	if cfg.Theme != DefaultTheme || !cfg.ShowHints {
		t.Fatalf("expected untouched fields to keep defaults, got %+v", *cfg)
	}
}

func TestInitConfigRejectsBadFile(t *testing.T) {
	cases := map[string]string{
		"malformed": `{"language": `,
		"language":  `{"language": "fr"}`,
		"symbol":    `{"theme": {"symbols": {"black": 7, "white": 79, "empty": 46, "hint": 42}}}`,
		"colour":    `{"theme": {"colors": {"board": 300}}}`,
		"log level": `{"log_level": "loud"}`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			dir := useTempXDG(t)
			path := filepath.Join(dir, "reversi", "config.json")
			if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
				t.Fatal(err)
			}
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
			_, err := InitConfig()
			var invalid *InvalidConfig
			if !errors.As(err, &invalid) {
				t.Fatalf("expected InvalidConfig, got %v", err)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"REVERSI_LANG":      "JA",
		"REVERSI_LOG_LEVEL": "warn",
		"REVERSI_HINTS":     "false",
	}
	cfg := DefaultConfig
	if err := cfg.ApplyEnv(func(k string) string { return env[k] }); err != nil {
		t.Fatalf("ApplyEnv error: %v", err)
	}
	if cfg.Language != "ja" || cfg.LogLevel != "warn" || cfg.ShowHints {
		t.Fatalf("env not applied: %+v", cfg)
	}

	cfg = DefaultConfig
	if err := cfg.ApplyEnv(func(string) string { return "" }); err != nil || cfg != DefaultConfig {
		t.Fatalf("empty env should change nothing, err=%v cfg=%+v", err, cfg)
	}

	cfg = DefaultConfig
	err := cfg.ApplyEnv(func(k string) string {
		if k == "REVERSI_HINTS" {
			return "maybe"
		}
		return ""
	})
	var invalid *InvalidConfig
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidConfig for bad REVERSI_HINTS, got %v", err)
	}
}
