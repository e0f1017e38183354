package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

type BreakerConfig struct {
	FailureThreshold int `json:"failure_threshold"`
	CooldownSeconds  int `json:"cooldown_seconds"`
}

type BackendConfig struct {
	URL            string        `json:"url"`
	Model          string        `json:"model"`
	MaxTokens      int           `json:"max_tokens"`
	TimeoutSeconds int           `json:"timeout_seconds"`
	Breaker        BreakerConfig `json:"breaker"`
}

type Config struct {
	Server struct {
		Host    string `json:"host"`
		Port    int    `json:"port"`
		Subpath string `json:"subpath"`
	} `json:"server"`
	Redis struct {
		Enabled  bool   `json:"enabled"`
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis"`
	Backend BackendConfig `json:"backend"`
	Debate  struct {
		TTLHours     int `json:"ttl_hours"`
		SweepMinutes int `json:"sweep_minutes"`
	} `json:"debate"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		// Minimal validation
		if c.Backend.URL == "" {
			cfgErr = errors.New("backend url must be set in config")
			return
		}
		applyDefaults(&c)
		cfg = &c
	})
	return cfg, cfgErr
}

func applyDefaults(c *Config) {
	if c.Server.Port == 0 {
		c.Server.Port = 8000
	}
	if c.Backend.MaxTokens == 0 {
		c.Backend.MaxTokens = 512
	}
	if c.Backend.TimeoutSeconds == 0 {
		c.Backend.TimeoutSeconds = 25
	}
	if c.Backend.Breaker.FailureThreshold == 0 {
		c.Backend.Breaker.FailureThreshold = 3
	}
	if c.Backend.Breaker.CooldownSeconds == 0 {
		c.Backend.Breaker.CooldownSeconds = 60
	}
	if c.Debate.TTLHours == 0 {
		c.Debate.TTLHours = 2
	}
	if c.Debate.SweepMinutes == 0 {
		c.Debate.SweepMinutes = 15
	}
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}
