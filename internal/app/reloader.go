package app

import (
	"context"
	"time"

	"github.com/five82/pikeru-portal/internal/config"
	"github.com/five82/pikeru-portal/internal/state"
)

const defaultReloadInterval = 2 * time.Second

// Loader runs independent resolutions with fixed inputs.
type Loader struct {
	path string
	opts config.Options
}

// NewLoader returns a loader for path (empty searches) and opts.
func NewLoader(path string, opts config.Options) *Loader {
	return &Loader{path: path, opts: opts}
}

// Reload resolves from scratch and publishes the result.
func (l *Loader) Reload(store *state.Store) {
	store.Update(config.Resolve(l.path, l.opts))
}

// StartReloader launches a background goroutine that re-resolves the
// configuration at a fixed cadence. It returns immediately.
func StartReloader(ctx context.Context, store *state.Store, loader *Loader, interval time.Duration) {
	if interval <= 0 {
		interval = defaultReloadInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				loader.Reload(store)
			}
		}
	}()
}
