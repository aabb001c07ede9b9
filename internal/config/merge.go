package config

// SectionFileChooser is the only section the portal reads.
const SectionFileChooser = "filechooser"

// Apply merges one key from the config file. Keys outside [filechooser] and
// unknown keys inside it are reported as unhandled and leave c unchanged.
// An empty value is handled but does not override the default.
func (c *Config) Apply(section, key, value, home string) bool {
	if section != SectionFileChooser {
		return false
	}
	return c.FileChooser.apply(key, value, home)
}

func (fc *FileChooser) apply(key, value, home string) bool {
	switch key {
	case "cmd", "command":
		setPath(&fc.Command, value, home)
	case "default_dir", "default_directory":
		setPath(&fc.DefaultDirectory, value, home)
	default:
		return false
	}
	return true
}
