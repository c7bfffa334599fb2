package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestInitConfig(t *testing.T) {
	// Create temp directory for test config
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	err := InitConfig(configPath)
	if err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	// Verify config file was created
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		t.Error("Config file was not created")
	}
}

func TestGetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	// Test getting a default value
	value := GetString("server.http_port")
	if value != "5050" {
		t.Errorf("Expected default http_port to be 5050, got %s", value)
	}

	if GetFloat64("pricing.two_tone") != 150 {
		t.Errorf("Expected default two_tone price 150, got %v", GetFloat64("pricing.two_tone"))
	}

	if GetDuration("ratelimit.interval") != time.Minute {
		t.Errorf("Expected rate limit interval 1m, got %v", GetDuration("ratelimit.interval"))
	}

	if GetInt("design.width") != 300 || GetInt("design.height") != 400 {
		t.Error("Expected default canvas 300x400")
	}
}

func TestSetConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	InitConfig(configPath)

	err := Set("server.http_port", "8080")
	if err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	value := GetString("server.http_port")
	if value != "8080" {
		t.Errorf("Expected http_port to be 8080, got %s", value)
	}

	// Reload from disk
	if err := InitConfig(configPath); err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if GetString("server.http_port") != "8080" {
		t.Error("Set value was not persisted")
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("CHROMA_UI_PALETTE", "oceano")

	tmpDir := t.TempDir()
	if err := InitConfig(filepath.Join(tmpDir, "config.yaml")); err != nil {
		t.Fatalf("InitConfig failed: %v", err)
	}

	if GetString("ui.palette") != "oceano" {
		t.Errorf("Expected env override oceano, got %s", GetString("ui.palette"))
	}
}
