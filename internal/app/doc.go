// Package app wires the configuration inspector together.
//
// # Overview
//
// Run loads inspector preferences, resolves the portal configuration once,
// starts a background reloader and hands a shared state.Store to the TUI.
// It is the composition root for the `pikeru-config inspect` command.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> prefs.Load()       Theme and reload interval
//	       ├─────> Loader.Reload()    First config.Resolve into the store
//	       ├─────> StartReloader()    Re-resolve every interval
//	       └─────> ui.Run()           Start TUI (blocks)
//
// # Reload Behavior
//
// Each tick runs a complete config.Resolve with the same inputs. Nothing is
// carried over between passes, so a config file created, edited or deleted
// while the inspector runs shows up on the next tick. The UI can also ask
// for an immediate reload.
//
// The interval comes from the --reload flag, then reload_seconds in the
// prefs file, then a 2 second default.
package app
