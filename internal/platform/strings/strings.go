// Package strings provides small string and slice helpers
package strings

import std "strings"

// IfEmpty returns def if in is empty, otherwise returns in
func IfEmpty[T any](in []T, def []T) []T {
	if len(in) == 0 {
		return def
	}
	return in
}

// MustString returns s if it has non whitespace content otherwise panics
// name is used in the panic message so you can tell what was missing
func MustString(s string, name string) string {
	if std.TrimSpace(s) == "" {
		panic(name + " is required")
	}
	return s
}

// MustPrefix normalizes and asserts a root path like /convert or /meta
// ensures a single leading slash and no trailing slash
// panics if the input is empty after trimming
func MustPrefix(s string) string {
	s = "/" + std.Trim(std.TrimSpace(s), " /")
	if s == "/" {
		panic("root path is required")
	}
	return s
}

// FirstNonBlank returns the first value with non whitespace content, trimmed, or ""
func FirstNonBlank(vals ...string) string {
	for _, v := range vals {
		if t := std.TrimSpace(v); t != "" {
			return t
		}
	}
	return ""
}

// Blank reports whether s is empty or whitespace only
func Blank(s string) bool { return std.TrimSpace(s) == "" }
