// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"log"

	"github.com/spf13/viper"
)

// ORIConfig is settings for ORI detection.
type ORIConfig struct {
	// the sliding window length in bp for the GC-content scan
	Window int `mapstructure:"window"`
}

// Config is the root-level settings struct and is a mix of settings
// available in settings.yaml and those available from the command line.
type Config struct {
	// ORI detection settings
	ORI ORIConfig `mapstructure:"ori"`
}

// New returns a new Config struct populated by Viper settings (either
// from the local settings.yaml) and/or command line arguments.
func New() *Config {
	viper.SetDefault("ori.window", 100)

	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		log.Fatalf("unable to decode settings into struct, %v", err)
	}

	return &c
}
