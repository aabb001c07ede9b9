// Package logging builds the leveled logger shared by the CLI and inspector.
package logging

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// DefaultLevel keeps resolution traces quiet unless asked for.
const DefaultLevel = "warn"

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error"). An empty level uses DefaultLevel.
func New(w io.Writer, level string) (*log.Logger, error) {
	name := strings.ToLower(strings.TrimSpace(level))
	if name == "" {
		name = DefaultLevel
	}
	lvl, err := log.ParseLevel(name)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "pikeru",
		Level:  lvl,
	}), nil
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
