package suggest

import "strings"

// =====================
// Регистр кандидатов
// =====================

func isTitle(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) == string(r[0]) && strings.ToLower(string(r[1:])) == string(r[1:])
}

func isUpper(s string) bool { return strings.ToUpper(s) == s && strings.ToLower(s) != s }

func title(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))
}

// restoreCase переносит регистр набранного текста на кандидата.
func restoreCase(typed, candidate string) string {
	switch {
	case isUpper(typed):
		return strings.ToUpper(candidate)
	case isTitle(typed):
		return title(candidate)
	default:
		return candidate
	}
}
