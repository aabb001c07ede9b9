// Package ui implements the bubbletea inspector for the resolved portal
// configuration.
//
// The inspector has four views:
//
//   - Summary: config file in use, resolved values, and degradation reasons
//   - Search: every probed config file and chooser command, marking the
//     one selected
//   - Entries: each key read from the file and whether it was applied
//   - File: the head of the config file with INI highlighting
//
// The model polls a state.Store on a fixed tick; resolution itself runs
// elsewhere (see internal/app). Theme changes persist through internal/prefs.
package ui
