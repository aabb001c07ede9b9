// Package config resolves the runtime configuration of the pikeru file
// chooser portal.
//
// # Overview
//
// The portal reads an INI file with a single [filechooser] section. This
// package finds that file, seeds built-in defaults, and merges whatever the
// file overrides. Load never fails outright: every outcome leaves a usable
// Config, and the returned error only says what degraded.
//
// # Configuration Discovery
//
// When no explicit path is given, LocateFile probes these paths in order and
// returns the first readable one:
//
//  1. $XDG_CONFIG_HOME/xdg-desktop-portal-pikeru/<desktop> for each entry of
//     $XDG_CURRENT_DESKTOP (colon separated, most preferred first)
//  2. $XDG_CONFIG_HOME/xdg-desktop-portal-pikeru/config
//  3. <sysconfdir>/xdg/xdg-desktop-portal-pikeru/<desktop> for each entry
//  4. <sysconfdir>/xdg/xdg-desktop-portal-pikeru/config
//
// $XDG_CONFIG_HOME falls back to $HOME/.config. If neither is set the user
// prefix is skipped. The generic "config" of the user prefix always wins over
// any system file.
//
// # Default Values
//
//   - cmd: first readable entry of DefaultChooserPaths
//   - default_dir: $HOME/Downloads if it is a directory, else /tmp
//
// Both defaults are resolved every time, before the file is read, so a file
// only needs the keys it wants to change.
//
// # INI Format
//
//	[filechooser]
//	cmd = /usr/share/xdg-desktop-portal-pikeru/pikeru-wrapper.sh
//	default_dir = ~/Pictures
//
// "command" and "default_directory" are accepted as aliases. A leading "~"
// expands to $HOME. Empty values keep the default. When a key repeats, the
// last non-empty value wins. Other sections and keys are ignored, and so are
// lines that are not a section, comment or key.
//
// # Error Handling
//
//   - ErrParse: the file could not be read or has an unclosed section header;
//     defaults stand
//   - ErrNoChooser: no chooser executable is installed and the file sets no cmd
//
// Both may be joined in one error. Check them with errors.Is.
//
// # Testing Considerations
//
// Options replaces the environment (MapEnv), the system root, the chooser
// path list and the readability probe, so tests never touch the real
// /etc/xdg or process environment.
package config
