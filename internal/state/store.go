package state

import (
	"slices"
	"sync"
	"time"

	"github.com/five82/pikeru-portal/internal/config"
)

// Snapshot represents the latest resolution available to the UI.
type Snapshot struct {
	Result     config.Result
	HasResult  bool
	LastLoaded time.Time
	// Loads counts resolutions since start.
	Loads int
	// ChangedAt is when the resolved file or values last differed from the
	// previous resolution.
	ChangedAt time.Time
}

// Degraded reports whether the last resolution returned an error.
func (s Snapshot) Degraded() bool {
	return s.HasResult && s.Result.Err != nil
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored resolution.
func (s *Store) Update(res config.Result) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if !s.snapshot.HasResult || changed(s.snapshot.Result, res) {
		s.snapshot.ChangedAt = now
	}
	s.snapshot.Result = cloneResult(res)
	s.snapshot.HasResult = true
	s.snapshot.LastLoaded = now
	s.snapshot.Loads++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Result = cloneResult(s.snapshot.Result)
	return snap
}

func changed(prev, next config.Result) bool {
	if prev.Path != next.Path {
		return true
	}
	if (prev.Config == nil) != (next.Config == nil) {
		return true
	}
	if prev.Config != nil && *prev.Config != *next.Config {
		return true
	}
	return (prev.Err == nil) != (next.Err == nil)
}

func cloneResult(res config.Result) config.Result {
	dup := res
	if res.Config != nil {
		cfg := *res.Config
		dup.Config = &cfg
	}
	dup.Search = slices.Clone(res.Search)
	dup.Chooser = slices.Clone(res.Chooser)
	dup.Entries = slices.Clone(res.Entries)
	return dup
}
