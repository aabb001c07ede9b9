package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/pikeru-portal/internal/config"
)

type cliTestEnv struct {
	home       string
	configHome string
	sysConfDir string
	chooser    string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	base := t.TempDir()
	env := &cliTestEnv{
		home:       filepath.Join(base, "home"),
		configHome: filepath.Join(base, "home", ".config"),
		sysConfDir: filepath.Join(base, "etc"),
		chooser:    filepath.Join(base, "bin", "pikeru-wrapper.sh"),
	}
	if err := os.MkdirAll(env.home, 0o755); err != nil {
		t.Fatalf("mkdir home: %v", err)
	}
	writeTestFile(t, env.chooser, "#!/bin/sh\n")

	t.Setenv("HOME", env.home)
	t.Setenv("XDG_CONFIG_HOME", env.configHome)
	t.Setenv("XDG_CURRENT_DESKTOP", "")
	return env
}

// args prefixes the flags that isolate resolution from the host.
func (e *cliTestEnv) args(extra ...string) []string {
	return append([]string{"--sysconfdir", e.sysConfDir, "--chooser", e.chooser}, extra...)
}

func (e *cliTestEnv) userConfig() string {
	return filepath.Join(e.configHome, config.ConfigFolder, config.FallbackName)
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", filepath.Dir(path), err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func runCLI(t *testing.T, args []string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func TestShowDefaultsOnly(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.args("show"))
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Config file: none (defaults only)")
	requireContains(t, out, "cmd: "+env.chooser)
	requireContains(t, out, "default_dir: "+config.FallbackDirectory)
}

func TestShowMergesUserConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestFile(t, env.userConfig(), "[filechooser]\ncmd = /custom/chooser\ndefault_dir = ~/Pictures\n")

	out, _, err := runCLI(t, env.args("show"))
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Config file: "+env.userConfig())
	requireContains(t, out, "cmd: /custom/chooser")
	requireContains(t, out, "default_dir: "+env.home+"/Pictures")
}

func TestShowDownloadsDefault(t *testing.T) {
	env := setupCLITestEnv(t)
	if err := os.MkdirAll(filepath.Join(env.home, "Downloads"), 0o755); err != nil {
		t.Fatalf("mkdir Downloads: %v", err)
	}

	out, _, err := runCLI(t, env.args("show"))
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "default_dir: "+env.home+"/Downloads")
}

func TestShowExplicitConfigFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestFile(t, env.userConfig(), "[filechooser]\ncmd = /from/search\n")
	explicit := filepath.Join(env.home, "other.ini")
	writeTestFile(t, explicit, "[filechooser]\ncmd = /from/flag\n")

	out, _, err := runCLI(t, env.args("--config", explicit, "show"))
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "cmd: /from/flag")
}

func TestShowNoChooserIsDegraded(t *testing.T) {
	env := setupCLITestEnv(t)
	missing := filepath.Join(env.home, "missing.sh")

	out, _, err := runCLI(t, []string{"--sysconfdir", env.sysConfDir, "--chooser", missing, "show"})
	if err == nil {
		t.Fatalf("show returned nil error without a chooser")
	}
	if !errors.Is(err, config.ErrNoChooser) {
		t.Fatalf("error = %v, want ErrNoChooser", err)
	}
	requireContains(t, out, "default_dir: "+config.FallbackDirectory)
	requireContains(t, out, "no file chooser command found")
}

func TestShowParseFailureKeepsDefaults(t *testing.T) {
	env := setupCLITestEnv(t)
	writeTestFile(t, env.userConfig(), "[filechooser\ncmd = /never\n")

	out, _, err := runCLI(t, env.args("show"))
	if !errors.Is(err, config.ErrParse) {
		t.Fatalf("error = %v, want ErrParse", err)
	}
	if errors.Is(err, config.ErrNoChooser) {
		t.Fatalf("error = %v, should not include ErrNoChooser", err)
	}
	requireContains(t, out, "cmd: "+env.chooser)
	requireContains(t, out, "could not be parsed")
}

func TestShowTOMLFormat(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.args("show", "--format", "toml"))
	if err != nil {
		t.Fatalf("show --format toml: %v", err)
	}
	requireContains(t, out, "# resolved from defaults")
	requireContains(t, out, "[filechooser]")
	requireContains(t, out, env.chooser)
}

func TestShowRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, env.args("show", "--format", "yaml")); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestInvalidLogLevel(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, env.args("--log-level", "loud", "show")); err == nil {
		t.Fatalf("expected error for invalid log level")
	}
}

func TestDebugLogLevelTracesResolution(t *testing.T) {
	env := setupCLITestEnv(t)

	_, stderr, err := runCLI(t, env.args("--log-level", "debug", "show"))
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, stderr, "default_dir")
}

func TestPathsListsProbeOrder(t *testing.T) {
	env := setupCLITestEnv(t)
	t.Setenv("XDG_CURRENT_DESKTOP", "sway")
	writeTestFile(t, env.userConfig(), "[filechooser]\n")

	out, _, err := runCLI(t, env.args("paths"))
	if err != nil {
		t.Fatalf("paths: %v", err)
	}

	desktop := filepath.Join(env.configHome, config.ConfigFolder, "sway")
	requireContains(t, out, desktop)
	requireContains(t, out, env.userConfig())
	requireContains(t, out, env.chooser)
	requireContains(t, out, "selected")
	requireContains(t, out, "missing")

	if strings.Index(out, desktop) > strings.Index(out, env.userConfig()) {
		t.Fatalf("desktop candidate listed after generic config:\n%s", out)
	}
}

func TestPathsExplicitConfig(t *testing.T) {
	env := setupCLITestEnv(t)
	explicit := filepath.Join(env.home, "explicit.ini")
	writeTestFile(t, explicit, "[filechooser]\n")

	out, _, err := runCLI(t, env.args("-c", explicit, "paths"))
	if err != nil {
		t.Fatalf("paths: %v", err)
	}
	requireContains(t, out, "explicit")
	if strings.Contains(out, env.userConfig()) {
		t.Fatalf("explicit config should skip the search:\n%s", out)
	}
}

func TestInitWritesSample(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.args("init"))
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration to "+env.userConfig())

	data, err := os.ReadFile(env.userConfig())
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if string(data) != config.SampleConfig() {
		t.Fatalf("sample content mismatch")
	}

	// The sample only carries commented keys, so defaults stand.
	out, _, err = runCLI(t, env.args("show"))
	if err != nil {
		t.Fatalf("show after init: %v", err)
	}
	requireContains(t, out, "cmd: "+env.chooser)
}

func TestInitRefusesOverwrite(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.home, "custom", "config")
	writeTestFile(t, target, "keep me\n")

	_, _, err := runCLI(t, env.args("init", "--path", target))
	if err == nil {
		t.Fatalf("init overwrote an existing file without --overwrite")
	}
	requireContains(t, err.Error(), "already exists")

	if _, _, err := runCLI(t, env.args("init", "--path", target, "--overwrite")); err != nil {
		t.Fatalf("init --overwrite: %v", err)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != config.SampleConfig() {
		t.Fatalf("overwrite did not write the sample")
	}
}

func TestInspectRequiresTerminal(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, env.args("inspect"))
	if !errors.Is(err, errNotTerminal) {
		t.Fatalf("inspect error = %v, want errNotTerminal", err)
	}
}

func TestInitExpandsTildePath(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.args("init", "--path", "~/sample/config"))
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	target := filepath.Join(env.home, "sample", "config")
	requireContains(t, out, "Wrote sample configuration to "+target)
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected config file at %s: %v", target, err)
	}
}

func TestInitFallsBackToConfigFlag(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, env.args("--config", "~/from-flag.ini", "init"))
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	target := filepath.Join(env.home, "from-flag.ini")
	requireContains(t, out, "Wrote sample configuration to "+target)
}
