// Package ini streams INI files as (section, key, value) triples.
//
// Parsing is delegated to gopkg.in/ini.v1, configured to read files the way
// the portal always has:
//
//   - lines that are not a section, comment or key=value are skipped
//   - a repeated section is delivered again, in file order
//   - every value of a repeated key is delivered, duplicates included
//   - values keep their quotes and a trailing backslash
//   - only ";" preceded by whitespace starts an inline comment
//
// Sections come out in file order. Within one section, keys come out in order
// of first appearance with all values of a repeated key grouped together.
// Keys outside any section are reported with an empty section name. A
// handler rejecting a key does not stop the stream.
package ini

import (
	"errors"
	"fmt"
	"os"
	"strings"

	goini "gopkg.in/ini.v1"
)

// ErrSyntax wraps structural failures, such as an unclosed section header.
var ErrSyntax = errors.New("ini syntax error")

// Handler receives one key and reports whether it was used.
type Handler func(section, key, value string) bool

var loadOptions = goini.LoadOptions{
	SkipUnrecognizableLines:    true,
	AllowNonUniqueSections:     true,
	AllowShadows:               true,
	AllowDuplicateShadowValues: true,
	PreserveSurroundedQuote:    true,
	IgnoreContinuation:         true,
	// Inline comments are cut by stripInlineComment.
	IgnoreInlineComment: true,
}

// ParseFile reads path and streams its keys to h.
func ParseFile(path string, h Handler) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read: %w", err)
	}
	return Parse(data, h)
}

// Parse streams keys from an in-memory document. Nothing is delivered to h
// when the document is structurally broken.
func Parse(src []byte, h Handler) error {
	f, err := goini.LoadSources(loadOptions, src)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	for _, sec := range f.Sections() {
		name := sec.Name()
		if name == goini.DefaultSection {
			name = ""
		}
		for _, key := range sec.Keys() {
			for _, value := range values(key) {
				h(name, key.Name(), stripInlineComment(value))
			}
		}
	}
	return nil
}

// values returns every non-empty value of key in file order. A key that
// only ever had empty values yields a single "".
func values(key *goini.Key) []string {
	vals := key.ValueWithShadows()
	if len(vals) == 0 {
		return []string{""}
	}
	return vals
}

// stripInlineComment cuts value at the first ";" that follows a space or tab.
func stripInlineComment(value string) string {
	for i := 1; i < len(value); i++ {
		if value[i] == ';' && (value[i-1] == ' ' || value[i-1] == '\t') {
			return strings.TrimRight(value[:i], " \t")
		}
	}
	return value
}
