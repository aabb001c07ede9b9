package config

import (
	"os"
	"path/filepath"
	"testing"
)

// testOptions isolates resolution from the host: an empty system root and no
// installed chooser unless the caller adds one.
func testOptions(t *testing.T, env map[string]string) Options {
	t.Helper()
	return Options{
		Env:          MapEnv(env),
		SysConfDir:   t.TempDir(),
		ChooserPaths: []string{filepath.Join(t.TempDir(), "missing-wrapper.sh")},
	}
}

func writeFile(t *testing.T, path, content string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// writeConfig creates <prefix>/xdg-desktop-portal-pikeru/<name>.
func writeConfig(t *testing.T, prefix, name, content string) string {
	t.Helper()
	return writeFile(t, filepath.Join(prefix, ConfigFolder, name), content)
}
