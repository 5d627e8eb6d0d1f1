// Package strings holds small string and slice helpers shared by modules
package strings

import (
	std "strings"
	"unicode"
)

// IsSpace is unicode.IsSpace plus the ASCII file, group, record and unit
// separators U+001C..U+001F, which text pasted from other tools can carry
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// IsBlank reports whether s holds nothing but IsSpace runes
func IsBlank(s string) bool { return std.TrimFunc(s, IsSpace) == "" }

// IfEmpty returns def when in has no elements
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// Contains reports whether sub is within s
func Contains(s, sub string) bool { return std.Contains(s, sub) }

// MustString returns s, panicking with "<name> is required" when s is blank
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes a module mount path to "/name". The root path is
// rejected since modules always mount below it.
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}
