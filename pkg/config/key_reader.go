package config

import (
	"strconv"

	"github.com/apex/log"
	"github.com/mitchellh/go-homedir"
)

// keyReader implements the typed and defaulted lookups of Configer on top of a single
// raw lookup function. Each Configer implementation embeds one.
type keyReader struct {
	get func(key string) string
}

func (r keyReader) MustGetKey(key string) string {
	val := r.get(key)
	if val == "" {
		log.Fatalf("No such required config key: '%s'", key)
	}

	return val
}

func (r keyReader) GetKeyWithDefault(key, defaultValue string) string {
	val := r.get(key)
	if val == "" {
		return defaultValue
	}

	return val
}

func (r keyReader) GetIntKey(key string) int {
	return r.GetIntKeyWithDefault(key, 0)
}

func (r keyReader) MustGetIntKey(key string) int {
	val := r.get(key)
	intVal, err := strconv.Atoi(val)
	if err != nil {
		log.Fatalf("Required config key either doesn't exist or isn't an int: '%s': %s", key, err)
	}

	return intVal
}

func (r keyReader) GetIntKeyWithDefault(key string, defaultValue int) int {
	intVal, err := strconv.Atoi(r.get(key))
	if err != nil {
		return defaultValue
	}

	return intVal
}

// GetPathKeyWithDefault is GetKeyWithDefault with a leading ~ expanded to the user's
// home directory. If expansion fails the path is returned as is.
func (r keyReader) GetPathKeyWithDefault(key, defaultValue string) string {
	p := r.GetKeyWithDefault(key, defaultValue)
	expanded, err := homedir.Expand(p)
	if err != nil {
		log.Warnf("Unable to expand path for config key %s (%s): %s", key, p, err)
		return p
	}

	return expanded
}
