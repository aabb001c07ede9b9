package config

import "os"

// Environment variables consulted during resolution.
const (
	EnvHome           = "HOME"
	EnvConfigHome     = "XDG_CONFIG_HOME"
	EnvCurrentDesktop = "XDG_CURRENT_DESKTOP"
)

// Env looks up an environment variable, returning "" when it is unset.
type Env func(key string) string

// OSEnv reads the real process environment.
var OSEnv Env = os.Getenv

// MapEnv returns an Env backed by a fixed map.
func MapEnv(values map[string]string) Env {
	return func(key string) string {
		return values[key]
	}
}

func (e Env) get(key string) string {
	if e == nil {
		return os.Getenv(key)
	}
	return e(key)
}

// home returns $HOME, or "" when it is unset or empty.
func (e Env) home() string {
	return e.get(EnvHome)
}
