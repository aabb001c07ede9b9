// Package main hosts the pikeru-config CLI.
//
// The command tree resolves the xdg-desktop-portal-pikeru configuration the
// same way the portal does and reports on it: the values in effect, every
// path that was probed, a sample file to start from, and a live inspector
// that re-resolves while the file is edited.
//
// Resolution itself lives in internal/config; commands here only wire flags
// to config.Options and render results.
package main
