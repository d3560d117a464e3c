package oai

import "strings"

// MaskAPIKeyLast4 returns a redacted representation of a secret showing only the last 4 characters.
// Empty input returns an empty string. Inputs with length <= 4 return "****".
func MaskAPIKeyLast4(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return "****"
	}
	return strings.Repeat("*", len(s)-4) + s[len(s)-4:]
}
