// Package preview reads the head of a config file for display.
package preview

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// LineKind classifies an INI line for highlighting.
type LineKind int

const (
	KindBlank LineKind = iota
	KindComment
	KindSection
	KindKey
	KindOther
)

// Head returns at most maxLines from the start of the file at path and
// whether the file had more. A missing file yields no lines and no error.
func Head(path string, maxLines int) ([]string, bool, error) {
	if maxLines <= 0 || path == "" {
		return nil, false, nil
	}
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lines := make([]string, 0, min(maxLines, 64))
	for scanner.Scan() {
		if len(lines) == maxLines {
			return lines, true, nil
		}
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, false, fmt.Errorf("read config: %w", err)
	}
	return lines, false, nil
}

// Classify reports what an INI line holds.
func Classify(line string) LineKind {
	trimmed := strings.TrimSpace(line)
	switch {
	case trimmed == "":
		return KindBlank
	case strings.HasPrefix(trimmed, "#"), strings.HasPrefix(trimmed, ";"):
		return KindComment
	case strings.HasPrefix(trimmed, "["):
		return KindSection
	case strings.ContainsAny(trimmed, "=:"):
		return KindKey
	default:
		return KindOther
	}
}
