//go:build unix

package config

import "golang.org/x/sys/unix"

// readable mirrors access(path, R_OK).
func readable(path string) bool {
	return unix.Access(path, unix.R_OK) == nil
}
