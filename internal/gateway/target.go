package gateway

import (
	"net/url"
	"strings"
)

// Target builds the gateway path for a normalized URL: the backend's prefix
// followed by the URL percent-encoded as a single path segment. Encoding the
// whole URL keeps its own path separators from surfacing as sub-paths on the
// gateway.
func Target(b Backend, normalizedURL string) string {
	return PrefixFor(b) + "/" + encodeSegment(normalizedURL)
}

// encodeSegment matches JavaScript's encodeURIComponent closely enough for
// URLs: QueryEscape escapes ':' and '/', and the '+' it produces for spaces
// is rewritten to %20 so the segment stays path-safe.
func encodeSegment(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Absolute joins a target path onto the gateway's base address.
func Absolute(gatewayAddr, target string) string {
	return strings.TrimSuffix(gatewayAddr, "/") + target
}
