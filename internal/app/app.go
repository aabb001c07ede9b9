package app

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/five82/pikeru-portal/internal/config"
	"github.com/five82/pikeru-portal/internal/prefs"
	"github.com/five82/pikeru-portal/internal/state"
	"github.com/five82/pikeru-portal/internal/ui"
)

// Options configure the inspector.
type Options struct {
	// ConfigPath is an explicit config file; empty searches the XDG dirs.
	ConfigPath string
	// PrefsPath is the inspector preferences file; empty disables persistence.
	PrefsPath string
	// ReloadEvery is in seconds; zero uses prefs, then the default.
	ReloadEvery int
	Resolve     config.Options
	Logger      *log.Logger
}

// Run boots the inspector TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil && opts.Logger != nil {
		opts.Logger.Warn("ignoring inspector prefs", "path", opts.PrefsPath, "err", err)
	}

	store := &state.Store{}
	loader := NewLoader(opts.ConfigPath, opts.Resolve)

	// Populate the store before the UI starts
	loader.Reload(store)

	interval := reloadInterval(opts.ReloadEvery, userPrefs.ReloadSeconds)
	StartReloader(ctx, store, loader, interval)

	uiOpts := ui.Options{
		Context:   ctx,
		Store:     store,
		Reload:    func() { loader.Reload(store) },
		PollTick:  time.Second,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		Prefs:     userPrefs,
	}
	if err := ui.Run(uiOpts); err != nil {
		return fmt.Errorf("run inspector: %w", err)
	}
	return nil
}

func reloadInterval(flagSeconds, prefSeconds int) time.Duration {
	switch {
	case flagSeconds > 0:
		return time.Duration(flagSeconds) * time.Second
	case prefSeconds > 0:
		return time.Duration(prefSeconds) * time.Second
	default:
		return defaultReloadInterval
	}
}
