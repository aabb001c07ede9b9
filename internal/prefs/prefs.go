// Package prefs persists inspector preferences.
// Preferences are stored in $XDG_CONFIG_HOME/pikeru-config/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pikeru-portal/internal/config"
)

// Prefs holds user preferences for the inspector.
type Prefs struct {
	Theme string `toml:"theme"`
	// ReloadSeconds is the inspector reload interval; zero uses the default.
	ReloadSeconds int `toml:"reload_seconds"`
}

const (
	prefsDir     = "pikeru-config"
	prefsFile    = "prefs.toml"
	defaultTheme = "Nightfox"
)

// DefaultPath returns the default preferences file path, or "" when no
// config home can be determined.
func DefaultPath(env config.Env) string {
	home := config.ConfigHome(env)
	if home == "" {
		return ""
	}
	return filepath.Join(home, prefsDir, prefsFile)
}

// Load reads preferences from path, falling back to defaults when the file
// is missing or unreadable. Only a malformed file is reported.
func Load(path string) (Prefs, error) {
	p := Prefs{Theme: defaultTheme}
	if strings.TrimSpace(path) == "" {
		return p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p, nil // missing or unreadable: defaults
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return Prefs{Theme: defaultTheme}, fmt.Errorf("parse prefs: %w", err)
	}
	if strings.TrimSpace(p.Theme) == "" {
		p.Theme = defaultTheme
	}
	if p.ReloadSeconds < 0 {
		p.ReloadSeconds = 0
	}
	return p, nil
}

// Save writes preferences to path, creating directories as needed.
func Save(path string, p Prefs) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("prefs path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}
