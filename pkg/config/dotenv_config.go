package config

import (
	"os"

	"github.com/subosito/gotenv"
)

// DotenvConfig loads a .env file into the process environment and reads keys from the
// environment. Keys already set in the environment win over the file.
type DotenvConfig struct {
	keyReader
	DotenvPath string
}

func NewDotenvConfig(path string) *DotenvConfig {
	return &DotenvConfig{DotenvPath: path, keyReader: keyReader{get: os.Getenv}}
}

func (c *DotenvConfig) LoadFromPath(path string) error {
	c.DotenvPath = path
	return c.Load()
}

func (c *DotenvConfig) Load() error {
	if c.DotenvPath == "" {
		return nil
	}

	return gotenv.Load(c.DotenvPath)
}

func (c *DotenvConfig) GetKey(key string) string {
	return os.Getenv(key)
}
