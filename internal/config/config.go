// Package config loads application settings through viper.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// FileName is the config file looked up in the config directory.
const FileName = "pixelrealm.cfg.json"

// Load sets defaults and reads the config file from configDir if it exists.
// A missing file is not an error; the defaults stand.
func Load(configDir string) error {
	SetDefaults(viper.GetViper())

	viper.SetConfigName(FileName)
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// SetDefaults registers every default on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFormat", "console")

	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 800)
	v.SetDefault("window.title", "Pixel Realm")

	v.SetDefault("save.backend", "file")
	v.SetDefault("save.dir", "./saves")
	v.SetDefault("save.sqlitePath", "./saves/pixelrealm.db")
	v.SetDefault("save.slot", "slot1")

	v.SetDefault("world.seed", 0)
	v.SetDefault("content.itemsFile", "")

	v.SetDefault("telemetry.enabled", false)
	v.SetDefault("telemetry.meterName", "pixelrealm")
}

// Viper returns the process-wide viper instance.
func Viper() *viper.Viper {
	return viper.GetViper()
}

// GetString returns a string config value.
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt returns an int config value.
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetInt64 returns an int64 config value.
func GetInt64(key string) int64 {
	return viper.GetInt64(key)
}

// GetBool returns a bool config value.
func GetBool(key string) bool {
	return viper.GetBool(key)
}
