package domain

import "regexp"

// emailPattern requires a non-whitespace local part, an @, and a
// non-whitespace domain containing a dot. Deliberately simple: the goal is
// catching obvious typos, not full RFC 5322 compliance.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// hexColorPattern matches "#" followed by exactly six hex digits,
// case-insensitive.
var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// IsValidEmail reports whether s looks like an email address. The empty
// string is not valid: callers with optional email fields must check for
// absence themselves.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidHex reports whether s is a valid #RRGGBB color. The empty string is
// valid because color is optional everywhere it appears.
func IsValidHex(s string) bool {
	if s == "" {
		return true
	}
	return hexColorPattern.MatchString(s)
}
