package gateway

import "fmt"

// Backend identifies one of the proxy engines the gateway routes through.
// The set is closed: adding an engine means extending both the constants
// below and the prefix table in prefixes, together.
type Backend int

const (
	BackendScramJet Backend = iota
	BackendUltraviolet
)

// prefixes maps every Backend to the fixed path prefix the gateway serves it
// under. There is deliberately no fallback entry.
var prefixes = map[Backend]string{
	BackendScramJet:    "/scramjet",
	BackendUltraviolet: "/uv",
}

// PrefixFor returns the routing path prefix for b.
func PrefixFor(b Backend) string {
	return prefixes[b]
}

// Other returns the opposite backend, implementing the binary toggle.
func (b Backend) Other() Backend {
	if b == BackendScramJet {
		return BackendUltraviolet
	}
	return BackendScramJet
}

// String provides a human-readable name for display in the TUI and history.
func (b Backend) String() string {
	switch b {
	case BackendScramJet:
		return "scramjet"
	case BackendUltraviolet:
		return "ultraviolet"
	default:
		return "unknown"
	}
}

// ParseBackend converts a config/flag value into a Backend.
func ParseBackend(s string) (Backend, error) {
	switch s {
	case "scramjet":
		return BackendScramJet, nil
	case "ultraviolet", "uv":
		return BackendUltraviolet, nil
	default:
		return BackendScramJet, fmt.Errorf("unknown backend %q (expected \"scramjet\" or \"ultraviolet\")", s)
	}
}
