package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/five82/pikeru-portal/internal/ini"
)

var (
	// ErrNoChooser reports that no chooser executable was found on disk and
	// the config file did not name one.
	ErrNoChooser = errors.New("no file chooser command found")
	// ErrParse reports that a config file existed but could not be parsed.
	ErrParse = errors.New("unable to load config file")
)

// FileChooser holds the [filechooser] section.
type FileChooser struct {
	// Command is the chooser executable the portal runs.
	Command string `toml:"cmd"`
	// DefaultDirectory is offered as the initial browse location.
	DefaultDirectory string `toml:"default_dir"`
}

// Config is the portal runtime configuration.
type Config struct {
	FileChooser FileChooser `toml:"filechooser"`
}

// LogValues writes the resolved values at the given level.
func (c *Config) LogValues(logger *log.Logger, level log.Level) {
	if c == nil || logger == nil {
		return
	}
	logger.Log(level, "config", "cmd", c.FileChooser.Command)
	logger.Log(level, "config", "default_dir", c.FileChooser.DefaultDirectory)
}

// Options control where and how configuration is resolved. The zero value
// reads the real environment and filesystem.
type Options struct {
	// Env replaces the process environment.
	Env Env
	// SysConfDir replaces the build-time SysConfDir.
	SysConfDir string
	// ChooserPaths replaces DefaultChooserPaths. Order is preserved.
	ChooserPaths []string
	// Readable replaces the access(2) R_OK probe.
	Readable func(path string) bool
	// Logger receives resolution traces. Nil discards them.
	Logger *log.Logger
}

func (o Options) logger() *log.Logger {
	if o.Logger == nil {
		return log.New(io.Discard)
	}
	return o.Logger
}

func (o Options) readable(path string) bool {
	if path == "" {
		return false
	}
	if o.Readable != nil {
		return o.Readable(path)
	}
	return readable(path)
}

func (o Options) chooserPaths() []string {
	if o.ChooserPaths == nil {
		return DefaultChooserPaths
	}
	return o.ChooserPaths
}

func (o Options) sysConfDir() string {
	if o.SysConfDir == "" {
		return SysConfDir
	}
	return o.SysConfDir
}

// Candidate is one probed filesystem path.
type Candidate struct {
	Path  string
	Found bool
}

// Entry is one key seen in the config file and whether it was applied.
type Entry struct {
	Section string
	Key     string
	Value   string
	Handled bool
}

// Result describes a single resolution pass.
type Result struct {
	Config *Config
	// Path is the merged config file, "" when none was given or found.
	Path     string
	Explicit bool
	// Search lists located candidates in probe order. Empty when Explicit.
	Search []Candidate
	// Chooser lists the chooser executable probes in order.
	Chooser []Candidate
	Entries []Entry
	Err     error
}

// Load resolves the configuration. An empty path searches the XDG config
// directories. The returned config is never nil and always carries defaults;
// a non-nil error (ErrParse, ErrNoChooser, or both joined) describes what
// degraded, not a failed load.
func Load(path string, opts Options) (*Config, error) {
	res := Resolve(path, opts)
	return res.Config, res.Err
}

// Resolve is Load with the full diagnostic trace.
func Resolve(path string, opts Options) Result {
	logger := opts.logger()
	res := Result{Config: &Config{}, Path: path, Explicit: path != ""}

	if !res.Explicit {
		res.Path, res.Search = LocateFile(opts)
	}

	fc, probes, defaultsErr := ResolveDefaults(opts)
	res.Config.FileChooser = fc
	res.Chooser = probes

	var errs []error
	if res.Path == "" {
		logger.Debug("no config file found, using defaults")
	} else if err := res.merge(opts); err != nil {
		errs = append(errs, err)
	}

	if defaultsErr != nil && res.Config.FileChooser.Command == "" {
		logger.Warn("no file chooser command available", "tried", len(probes))
		errs = append(errs, defaultsErr)
	}
	res.Err = errors.Join(errs...)
	res.Config.LogValues(logger, log.DebugLevel)
	return res
}

func (r *Result) merge(opts Options) error {
	logger := opts.logger()
	home := opts.Env.home()

	err := ini.ParseFile(r.Path, func(section, key, value string) bool {
		logger.Debug("config: parsing", "section", section, "key", key, "value", value)
		handled := r.Config.Apply(section, key, value, home)
		if !handled {
			logger.Debug("config: skipping invalid key", "section", section, "key", key)
		}
		r.Entries = append(r.Entries, Entry{Section: section, Key: key, Value: value, Handled: handled})
		return handled
	})
	if err != nil {
		logger.Error("config: unable to load config file", "path", r.Path, "err", err)
		return fmt.Errorf("%w %s: %w", ErrParse, r.Path, err)
	}
	return nil
}
