package nav

import "gatectl/pkg/logging"

const navSubsystem = "Nav"

// Navigator is the host capability the launcher drives. OpenNewContext tries
// to show target in a fresh browsing context that holds no handle back to
// gatectl; ReplaceCurrent hands target over to the context gatectl already
// occupies. Either call may fail, which is why both exist.
type Navigator interface {
	OpenNewContext(target string) error
	ReplaceCurrent(target string) error
}

// Launch opens target through n, falling back to replacing the current
// context when a new one cannot be created. A blocked new context is an
// expected condition, not a user-facing error, so callers never learn which
// path was taken.
func Launch(n Navigator, target string) {
	if err := n.OpenNewContext(target); err != nil {
		logging.Debug(navSubsystem, "new context unavailable, replacing current: %v", err)
		if rerr := n.ReplaceCurrent(target); rerr != nil {
			logging.Error(navSubsystem, rerr, "could not hand %s to the current context", target)
		}
		return
	}
	logging.Debug(navSubsystem, "opened %s in a new context", target)
}
