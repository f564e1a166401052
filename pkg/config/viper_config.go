package config

import (
	"github.com/spf13/viper"
)

// ViperConfig reads keys from a YAML, TOML or JSON config file. Environment variables with
// the same name override values in the file.
type ViperConfig struct {
	keyReader
	v    *viper.Viper
	path string
}

func NewViperConfig(path string) *ViperConfig {
	v := viper.New()
	v.AutomaticEnv()
	c := &ViperConfig{v: v, path: path}
	c.keyReader = keyReader{get: c.GetKey}
	return c
}

func (c *ViperConfig) LoadFromPath(path string) error {
	c.path = path
	return c.Load()
}

func (c *ViperConfig) Load() error {
	if c.path == "" {
		return nil
	}

	c.v.SetConfigFile(c.path)
	return c.v.ReadInConfig()
}

// GetKey looks up key in the environment first, then in the file. Viper lower cases keys,
// so DB_HOST in the environment and db_host in the file are the same key.
func (c *ViperConfig) GetKey(key string) string {
	return c.v.GetString(key)
}
