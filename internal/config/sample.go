package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
)

//go:embed sample_config.ini
var sampleConfig string

// SampleConfig returns the commented sample configuration.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the generic user config file path, or "" when
// neither XDG_CONFIG_HOME nor HOME is set.
func DefaultConfigPath(env Env) string {
	return CandidatePath(ConfigHome(env), FallbackName)
}

// CreateSample writes the sample configuration to path, creating parent
// directories as needed.
func CreateSample(path string) error {
	if path == "" {
		return fmt.Errorf("sample config path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
