// Package config loads runtime settings (viper) and run-length policy sets
// (TOML files) for the heatpath command.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings is a typed view of the runtime configuration.
type Settings struct {
	LogLevel    string
	CacheSize   int
	CacheFile   string
	Parallelism int
	Policies    string
}

// Load reads heatpath.toml from configDir (if present), applies HEATPATH_*
// environment overrides and sets default values. A missing file is not an
// error; a malformed one is.
func Load(configDir string) error {
	// Set default values
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("cache.size", 1024)
	viper.SetDefault("cache.file", "")
	viper.SetDefault("solver.parallelism", 4)
	viper.SetDefault("solver.policies", "")

	viper.SetEnvPrefix("HEATPATH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("heatpath")
	viper.SetConfigType("toml")
	if configDir != "" {
		viper.AddConfigPath(configDir)
	}

	err := viper.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err != nil && !errors.As(err, &notFound) {
		return fmt.Errorf("error reading config file: %v", err)
	}

	return nil
}

// Current returns the settings as currently resolved by viper.
func Current() Settings {
	return Settings{
		LogLevel:    viper.GetString("logLevel"),
		CacheSize:   viper.GetInt("cache.size"),
		CacheFile:   viper.GetString("cache.file"),
		Parallelism: viper.GetInt("solver.parallelism"),
		Policies:    viper.GetString("solver.policies"),
	}
}
