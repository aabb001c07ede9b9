package config

import "os"

// FallbackDirectory is the default browse location when $HOME/Downloads is
// unavailable.
const FallbackDirectory = "/tmp"

const downloadsDir = "/Downloads"

// DefaultChooserPaths lists known install locations of the chooser wrapper,
// most preferred first.
var DefaultChooserPaths = []string{
	"/usr/share/xdg-desktop-portal-pikeru/pikeru-wrapper.sh",
	"/usr/local/share/xdg-desktop-portal-pikeru/pikeru-wrapper.sh",
	"/opt/pikeru/xdg_portal/contrib/pikeru-wrapper.sh",
}

// ResolveDefaults computes the built-in file chooser settings. The command
// and the directory are resolved independently: a missing chooser still
// yields a directory, and ErrNoChooser is returned alongside it.
func ResolveDefaults(opts Options) (FileChooser, []Candidate, error) {
	var fc FileChooser
	var err error

	paths := opts.chooserPaths()
	probes := make([]Candidate, 0, len(paths))
	for _, path := range paths {
		found := opts.readable(path)
		probes = append(probes, Candidate{Path: path, Found: found})
		if found {
			fc.Command = path
			break
		}
	}
	if fc.Command == "" {
		err = ErrNoChooser
	}

	fc.DefaultDirectory = defaultDirectory(opts)
	return fc, probes, err
}

func defaultDirectory(opts Options) string {
	home := opts.Env.home()
	if home == "" {
		return FallbackDirectory
	}
	downloads := home + downloadsDir
	info, err := os.Stat(downloads)
	if err != nil {
		opts.logger().Debug("config: stat default directory", "path", downloads, "err", err)
		return FallbackDirectory
	}
	if !info.IsDir() {
		opts.logger().Debug("config: default directory is not a directory", "path", downloads)
		return FallbackDirectory
	}
	return downloads
}
