package config

import "strings"

// SysConfDir is the system configuration root, set at build time with
// -ldflags "-X github.com/five82/pikeru-portal/internal/config.SysConfDir=...".
var SysConfDir = "/etc"

const (
	// ConfigFolder is the per-application directory under each prefix.
	ConfigFolder = "xdg-desktop-portal-pikeru"
	// FallbackName is the desktop-independent config file name.
	FallbackName = "config"

	configHomeSuffix = "/.config"
	desktopSeparator = ":"
)

// ConfigHome returns $XDG_CONFIG_HOME, falling back to $HOME/.config, or ""
// when neither is available.
func ConfigHome(env Env) string {
	if dir := env.get(EnvConfigHome); dir != "" {
		return dir
	}
	if home := env.home(); home != "" {
		return home + configHomeSuffix
	}
	return ""
}

// SearchPrefixes returns the two search roots in priority order: the user
// config home, then <sysconfdir>/xdg. The first entry may be empty.
func SearchPrefixes(opts Options) []string {
	return []string{
		ConfigHome(opts.Env),
		opts.sysConfDir() + "/xdg",
	}
}

// Desktops splits $XDG_CURRENT_DESKTOP into its identifiers, most preferred
// first. Empty identifiers are dropped.
func Desktops(env Env) []string {
	raw := env.get(EnvCurrentDesktop)
	if raw == "" {
		return nil
	}
	var out []string
	for _, name := range strings.Split(raw, desktopSeparator) {
		if name != "" {
			out = append(out, name)
		}
	}
	return out
}

// CandidatePath joins prefix, ConfigFolder and name. It returns "" when prefix
// or name is empty.
func CandidatePath(prefix, name string) string {
	if prefix == "" || name == "" {
		return ""
	}
	return prefix + "/" + ConfigFolder + "/" + name
}

// CandidatePaths lists every path LocateFile would probe, in order.
func CandidatePaths(opts Options) []string {
	names := append(Desktops(opts.Env), FallbackName)
	var out []string
	for _, prefix := range SearchPrefixes(opts) {
		for _, name := range names {
			if path := CandidatePath(prefix, name); path != "" {
				out = append(out, path)
			}
		}
	}
	return out
}

// LocateFile returns the first readable config file, or "" when none exists,
// together with the candidates probed up to and including the match.
//
// For each prefix every desktop-specific file is tried before the generic
// "config", and the user prefix is exhausted before the system one.
func LocateFile(opts Options) (string, []Candidate) {
	logger := opts.logger()
	var tried []Candidate
	for _, path := range CandidatePaths(opts) {
		logger.Debug("config: trying config file", "path", path)
		found := opts.readable(path)
		tried = append(tried, Candidate{Path: path, Found: found})
		if found {
			return path, tried
		}
	}
	return "", tried
}
