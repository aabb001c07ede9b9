// Package state shares the latest configuration resolution between the
// inspector's reloader goroutine and its UI.
//
// # Architecture
//
//	Producer (reloader):          Consumer (UI):
//	┌─────────────────┐          ┌──────────────────┐
//	│ config.Resolve()│          │                  │
//	│       ↓         │          │                  │
//	│ store.Update()  │─────────→│ store.Snapshot() │
//	│       ↓         │ (mutex)  │       ↓          │
//	│   repeat...     │          │   render view    │
//	└─────────────────┘          └──────────────────┘
//
// Each reload is a complete, independent config.Resolve call with a freshly
// allocated config.Config. The store never merges resolutions.
//
// # Core Types
//
// Store:
//   - Guards the latest Snapshot with a sync.RWMutex
//   - Single writer (reloader), any number of readers
//
// Snapshot:
//   - The last config.Result plus load counters and timestamps
//   - Returned by value with the config and trace slices copied
//
// # Change Tracking
//
// ChangedAt moves only when the winning file path, the resolved values, or
// the presence of an error differ from the previous resolution. The UI uses
// it to highlight a config that changed on disk while the inspector ran.
package state
