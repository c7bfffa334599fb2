// SPDX-License-Identifier: MIT
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var v *viper.Viper

var envReplacer = strings.NewReplacer(".", "_")

// InitConfig initializes the configuration system
func InitConfig(configPath string) error {
	v = viper.New()

	// Set defaults
	setDefaults()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// CHROMA_SERVER_HTTP_PORT overrides server.http_port, and so on
	v.SetEnvPrefix("chroma")
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Try to read existing config
	if err := v.ReadInConfig(); err != nil {
		// If config doesn't exist, create it with defaults
		if os.IsNotExist(err) {
			if err := v.WriteConfigAs(configPath); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}
		} else {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	// Server defaults
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.http_port", "5050")

	// Database defaults
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.path", defaultDataDir()+"/chromabags.db")
	v.SetDefault("database.log_sql", false)

	// Backup defaults
	v.SetDefault("backups.path", defaultDataDir()+"/backups")
	v.SetDefault("backups.interval", "24h")
	v.SetDefault("backups.retention", 10)
	v.SetDefault("backups.enable_auto_backup", true)

	// Design canvas
	v.SetDefault("design.width", 300)
	v.SetDefault("design.height", 400)
	v.SetDefault("design.default_scheme", "harmonic")

	// UI theme
	v.SetDefault("ui.palette", "basica")
	v.SetDefault("ui.dark_mode", false)

	// Unit prices per archetype
	v.SetDefault("pricing.single", 120.0)
	v.SetDefault("pricing.two_tone", 150.0)
	v.SetDefault("pricing.freeform", 220.0)

	// Quotations, orders and inventory
	v.SetDefault("quotes.tax_rate", 0.16)
	v.SetDefault("orders.delivery_days", 7)
	v.SetDefault("inventory.low_stock_threshold", 100.0)

	// Design API rate limit
	v.SetDefault("ratelimit.requests", 60)
	v.SetDefault("ratelimit.interval", "1m")
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".chromabags"
	}
	return filepath.Join(home, ".chromabags")
}

// GetString returns a config value as string
func GetString(key string) string {
	if v == nil {
		return ""
	}
	return v.GetString(key)
}

// GetInt returns a config value as int
func GetInt(key string) int {
	if v == nil {
		return 0
	}
	return v.GetInt(key)
}

// GetFloat64 returns a config value as float64
func GetFloat64(key string) float64 {
	if v == nil {
		return 0
	}
	return v.GetFloat64(key)
}

// GetBool returns a config value as bool
func GetBool(key string) bool {
	if v == nil {
		return false
	}
	return v.GetBool(key)
}

// GetDuration returns a config value as time.Duration
func GetDuration(key string) time.Duration {
	if v == nil {
		return 0
	}
	return v.GetDuration(key)
}

// IsSet reports whether key has a value, including defaults
func IsSet(key string) bool {
	if v == nil {
		return false
	}
	return v.IsSet(key)
}

// Set sets a config value and saves to file
func Set(key string, value interface{}) error {
	if v == nil {
		return fmt.Errorf("config not initialized")
	}

	v.Set(key, value)

	if err := v.WriteConfig(); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetAll returns all config values as a map
func GetAll() map[string]interface{} {
	if v == nil {
		return nil
	}
	return v.AllSettings()
}
