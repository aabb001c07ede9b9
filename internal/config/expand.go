package config

import "strings"

const homeShorthand = "~"

// ExpandHome replaces a leading "~" with home. Values without the shorthand,
// a bare "~", and any value when home is empty are returned unchanged.
// "~user/x" is not a user lookup: it expands to home+"user/x".
func ExpandHome(value, home string) string {
	if home == "" || len(value) <= 1 || !strings.HasPrefix(value, homeShorthand) {
		return value
	}
	return home + value[len(homeShorthand):]
}

// setPath overrides *dst with value after home expansion. An empty value is
// not an override and leaves *dst untouched; malformed shorthand is copied
// verbatim. Neither case is an error. Reports whether *dst was assigned.
func setPath(dst *string, value, home string) bool {
	if value == "" {
		return false
	}
	*dst = ExpandHome(value, home)
	return true
}
