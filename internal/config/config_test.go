// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.URL != "http://127.0.0.1:8000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 30 {
		t.Errorf("Server.TimeoutSecs = %d, want 30", cfg.Server.TimeoutSecs)
	}
	if cfg.Defaults.Model != "qwen-7b-chat-gguf" {
		t.Errorf("Defaults.Model = %q", cfg.Defaults.Model)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoadFromPath_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
version = "1.0.0"

[server]
url = "http://10.0.0.5:9000"
timeout_secs = 5

[defaults]
model = "mistral-7b-instruct-gguf"
temperature = 0.4

[ui]
theme = "dark"
`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Server.URL != "http://10.0.0.5:9000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 5 {
		t.Errorf("Server.TimeoutSecs = %d", cfg.Server.TimeoutSecs)
	}
	if cfg.Defaults.Model != "mistral-7b-instruct-gguf" {
		t.Errorf("Defaults.Model = %q", cfg.Defaults.Model)
	}
	if cfg.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q", cfg.UI.Theme)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	content := `{"server": {"url": "http://10.0.0.5:9000", "timeout_secs": 10}}`
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.Server.URL != "http://10.0.0.5:9000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	// Missing fields take defaults.
	if cfg.Defaults.Model != "qwen-7b-chat-gguf" {
		t.Errorf("Defaults.Model = %q, want default", cfg.Defaults.Model)
	}
}

func TestLoadFromPath_PartialTakesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("[ui]\ntheme = \"light\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if cfg.UI.Theme != "light" {
		t.Errorf("UI.Theme = %q", cfg.UI.Theme)
	}
	if cfg.Server.URL != "http://127.0.0.1:8000" {
		t.Errorf("Server.URL = %q, want default", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 30 {
		t.Errorf("Server.TimeoutSecs = %d, want default", cfg.Server.TimeoutSecs)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("MINIS_SERVER_URL", "http://env-host:8000")
	t.Setenv("MINIS_TIMEOUT_SECS", "7")
	t.Setenv("MINIS_MODEL", "llama2-7b-chat-hf")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.URL != "http://env-host:8000" {
		t.Errorf("Server.URL = %q", cfg.Server.URL)
	}
	if cfg.Server.TimeoutSecs != 7 {
		t.Errorf("Server.TimeoutSecs = %d", cfg.Server.TimeoutSecs)
	}
	if cfg.Defaults.Model != "llama2-7b-chat-hf" {
		t.Errorf("Defaults.Model = %q", cfg.Defaults.Model)
	}
}

func TestApplyEnvOverrides_BadTimeoutIgnored(t *testing.T) {
	t.Setenv("MINIS_TIMEOUT_SECS", "not-a-number")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Server.TimeoutSecs != 30 {
		t.Errorf("Server.TimeoutSecs = %d, want 30", cfg.Server.TimeoutSecs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults valid", func(c *Config) {}, false},
		{"bad scheme", func(c *Config) { c.Server.URL = "ftp://host" }, true},
		{"no host", func(c *Config) { c.Server.URL = "http://" }, true},
		{"bad theme", func(c *Config) { c.UI.Theme = "neon" }, true},
		{"temperature too high", func(c *Config) { c.Defaults.Temperature = 3.5 }, true},
		{"negative max tokens", func(c *Config) { c.Defaults.MaxTokens = -1 }, true},
		{"https ok", func(c *Config) { c.Server.URL = "https://minis.example.com" }, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := Default()
	cfg.Server.URL = "http://10.1.2.3:8000"
	cfg.UI.Theme = "dark"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("perm = %o, want 0600", perm)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath: %v", err)
	}
	if loaded.Server.URL != cfg.Server.URL {
		t.Errorf("Server.URL = %q, want %q", loaded.Server.URL, cfg.Server.URL)
	}
	if loaded.UI.Theme != "dark" {
		t.Errorf("UI.Theme = %q", loaded.UI.Theme)
	}
}

func TestServerTimeout(t *testing.T) {
	cfg := Default()
	if cfg.Server.Timeout().Seconds() != 30 {
		t.Errorf("Timeout = %v", cfg.Server.Timeout())
	}
}
