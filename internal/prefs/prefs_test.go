package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/five82/pikeru-portal/internal/config"
)

func TestDefaultPath(t *testing.T) {
	env := config.MapEnv(map[string]string{config.EnvConfigHome: "/xdg"})
	if got := DefaultPath(env); got != "/xdg/pikeru-config/prefs.toml" {
		t.Fatalf("DefaultPath = %q, want /xdg/pikeru-config/prefs.toml", got)
	}
	if got := DefaultPath(config.MapEnv(nil)); got != "" {
		t.Fatalf("DefaultPath without home = %q, want empty", got)
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	p, err := Load(filepath.Join(t.TempDir(), "prefs.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	p, err := Load("  ")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = \"Slate\"\nreload_seconds = 5\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Slate" || p.ReloadSeconds != 5 {
		t.Fatalf("Prefs = %#v, want Slate/5", p)
	}
}

func TestLoad_InvalidTOMLFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(path, []byte("theme = ["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	p, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if p.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", p.Theme, defaultTheme)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "prefs.toml")

	if err := Save(path, Prefs{Theme: "Kanagawa", ReloadSeconds: 3}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if p.Theme != "Kanagawa" || p.ReloadSeconds != 3 {
		t.Fatalf("Prefs = %#v, want Kanagawa/3", p)
	}
}

func TestSave_EmptyPath(t *testing.T) {
	if err := Save("", Prefs{}); err == nil {
		t.Fatalf("Save returned nil error for empty path")
	}
}
