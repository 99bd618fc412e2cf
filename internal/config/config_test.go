package config

import (
	"testing"
)

func TestSet(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	cfg.Set("tabwidth", "8")
	if cfg.Get("tabwidth") != "8" {
		t.Errorf("Expected '8', got '%s'", cfg.Get("tabwidth"))
	}
}

func TestGet(t *testing.T) {
	cfg := &Config{
		sessionSettings: make(map[string]string),
	}

	// Test getting a value that doesn't exist
	if cfg.Get("nonexistent") != "" {
		t.Errorf("Expected empty string for nonexistent key, got '%s'", cfg.Get("nonexistent"))
	}

	// Set and then get
	cfg.Set("test", "value")
	if cfg.Get("test") != "value" {
		t.Errorf("Expected 'value', got '%s'", cfg.Get("test"))
	}
}

func TestSessionOverridesPersisted(t *testing.T) {
	cfg := &Config{
		Settings:        map[string]string{"tabwidth": "4"},
		sessionSettings: make(map[string]string),
	}

	if cfg.Get("tabwidth") != "4" {
		t.Errorf("Expected persisted '4', got '%s'", cfg.Get("tabwidth"))
	}

	cfg.Set("tabwidth", "2")
	if cfg.Get("tabwidth") != "2" {
		t.Errorf("Session setting should override persisted, got '%s'", cfg.Get("tabwidth"))
	}
}

func TestNilSessionSettings(t *testing.T) {
	cfg := &Config{}
	// sessionSettings is nil

	// Set should initialize it
	cfg.Set("key", "value")
	if cfg.Get("key") != "value" {
		t.Errorf("Set should initialize nil sessionSettings")
	}

	// Get should handle nil gracefully
	cfg2 := &Config{}
	if cfg2.Get("key") != "" {
		t.Errorf("Get should return empty string for nil sessionSettings")
	}
}

func TestTabWidth(t *testing.T) {
	cfg := defaultConfig()
	if cfg.TabWidth() != 4 {
		t.Errorf("Expected default tab width 4, got %d", cfg.TabWidth())
	}

	cfg.Set("tabwidth", "8")
	if cfg.TabWidth() != 8 {
		t.Errorf("Expected tab width 8, got %d", cfg.TabWidth())
	}

	cfg.Set("tabwidth", "notanumber")
	if cfg.TabWidth() != 4 {
		t.Errorf("Invalid tab width should fall back to 4, got %d", cfg.TabWidth())
	}

	cfg.Set("tabwidth", "0")
	if cfg.TabWidth() != 4 {
		t.Errorf("Out-of-range tab width should fall back to 4, got %d", cfg.TabWidth())
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	if cfg.Theme != "tokyo-night" {
		t.Errorf("Expected default theme 'tokyo-night', got '%s'", cfg.Theme)
	}

	if cfg.sessionSettings == nil {
		t.Errorf("defaultConfig should initialize sessionSettings")
	}
}
