package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// LoadFile overlays values from a config file onto cfg. The format follows
// the file extension (yaml, json, toml). Keys missing from the file keep
// their current values.
func LoadFile(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}
