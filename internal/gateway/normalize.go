package gateway

import "strings"

// Normalize turns free-form user text into a scheme-qualified URL string.
// Whitespace is trimmed; an empty result signals "no input" to the caller.
// Text without an explicit http:// or https:// scheme gets https:// prepended;
// text that already carries one is returned as typed, including a mixed-case
// scheme. Nothing about the host is validated here; the gateway deals with
// whatever the target actually is.
func Normalize(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	if hasHTTPScheme(trimmed) {
		return trimmed
	}
	return "https://" + trimmed
}

func hasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
