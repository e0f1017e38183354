package config

import (
	"os"
	"testing"
)

func TestLoadConfig_Valid(t *testing.T) {
	ResetConfigForTest()
	tmp := "test_config.json"
	raw := []byte(`{
		"server": {
			"host": "localhost",
			"port": 8080,
			"subpath": "/debate"
		},
		"redis": {
			"enabled": true,
			"addr": "localhost:6379",
			"password": "",
			"db": 0
		},
		"backend": {
			"url": "http://localhost:11434/api/chat",
			"model": "llama3",
			"max_tokens": 256,
			"timeout_seconds": 10
		},
		"debate": {
			"ttl_hours": 2
		}
	}`)
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		t.Fatalf("write tmp config: %v", err)
	}
	defer os.Remove(tmp)

	cfg, err := LoadConfig(tmp)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Server.Host != "localhost" || cfg.Server.Port != 8080 {
		t.Errorf("unexpected server config: %+v", cfg.Server)
	}
	if cfg.Backend.Model != "llama3" || cfg.Backend.MaxTokens != 256 {
		t.Errorf("backend config not loaded: %+v", cfg.Backend)
	}
	if !cfg.Redis.Enabled {
		t.Errorf("redis config not loaded")
	}
	if GetConfig() != cfg {
		t.Errorf("GetConfig did not return the loaded config")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	ResetConfigForTest()
	tmp := "test_config_defaults.json"
	raw := []byte(`{"backend": {"url": "http://localhost:11434/api/chat", "model": "llama3"}}`)
	if err := os.WriteFile(tmp, raw, 0644); err != nil {
		t.Fatalf("write tmp config: %v", err)
	}
	defer os.Remove(tmp)

	cfg, err := LoadConfig(tmp)
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.Backend.MaxTokens != 512 || cfg.Backend.TimeoutSeconds != 25 {
		t.Errorf("backend defaults not applied: %+v", cfg.Backend)
	}
	if cfg.Backend.Breaker.FailureThreshold != 3 || cfg.Backend.Breaker.CooldownSeconds != 60 {
		t.Errorf("breaker defaults not applied: %+v", cfg.Backend.Breaker)
	}
	if cfg.Debate.TTLHours != 2 || cfg.Debate.SweepMinutes != 15 {
		t.Errorf("debate defaults not applied: %+v", cfg.Debate)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	ResetConfigForTest()
	if _, err := LoadConfig("does_not_exist.json"); err == nil {
		t.Errorf("expected error for missing file")
	}
}

func TestLoadConfig_MissingBackendURL(t *testing.T) {
	ResetConfigForTest()
	tmp := "test_config_nobackend.json"
	if err := os.WriteFile(tmp, []byte(`{"server": {"port": 8000}}`), 0644); err != nil {
		t.Fatalf("write tmp config: %v", err)
	}
	defer os.Remove(tmp)

	if _, err := LoadConfig(tmp); err == nil {
		t.Errorf("expected error when backend url is missing")
	}
}
