package submit

import (
	"time"

	"gatectl/internal/gateway"
	"gatectl/internal/nav"
	"gatectl/pkg/logging"
)

const submitSubsystem = "Submit"

// EmptyInputMessage is the one validation message this layer produces.
const EmptyInputMessage = "Enter a URL to load."

// DefaultDelay is the pause between accepting a submission and launching it.
// It exists for perceived feedback, not correctness.
const DefaultDelay = 450 * time.Millisecond

// Pending is a launch accepted by Submit but not yet performed. Everything
// needed for the launch is captured here at submit time; later edits or
// backend toggles cannot change it.
type Pending struct {
	seq     int
	Raw     string
	URL     string
	Backend gateway.Backend
	Target  string
	Delay   time.Duration
}

// Controller owns the submission state machine and the backend selection.
// It is not safe for concurrent use; drive it from a single event loop.
type Controller struct {
	navigator nav.Navigator
	backend   gateway.Backend
	status    Status
	delay     time.Duration
	seq       int
}

// Option configures a Controller.
type Option func(*Controller)

// WithDelay overrides the launch delay.
func WithDelay(d time.Duration) Option {
	return func(c *Controller) { c.delay = d }
}

// WithBackend sets the initially selected backend.
func WithBackend(b gateway.Backend) Option {
	return func(c *Controller) { c.backend = b }
}

// New returns a Controller in the Idle state.
func New(navigator nav.Navigator, opts ...Option) *Controller {
	c := &Controller{
		navigator: navigator,
		backend:   gateway.BackendScramJet,
		status:    Idle{},
		delay:     DefaultDelay,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Status returns the current submission state.
func (c *Controller) Status() Status {
	return c.status
}

// Backend returns the currently selected backend.
func (c *Controller) Backend() gateway.Backend {
	return c.backend
}

// ToggleBackend flips the binary backend selector and returns the new
// selection. Toggling never touches an in-flight launch.
func (c *Controller) ToggleBackend() gateway.Backend {
	c.backend = c.backend.Other()
	return c.backend
}

// Edit notes that the input text changed. A showing validation message
// clears immediately, whatever the new content is.
func (c *Controller) Edit() {
	if _, failed := c.status.(Failed); failed {
		c.status = Idle{}
	}
}

// Submit is the single entry point for both the explicit submit action and
// the Enter key. Empty input (after normalization) moves to Failed and
// reports false. Valid input moves to Loading and returns the Pending launch
// the caller must schedule after Pending.Delay. A submission arriving while
// another is Loading is ignored.
func (c *Controller) Submit(raw string) (Pending, bool) {
	if _, loading := c.status.(Loading); loading {
		logging.Debug(submitSubsystem, "ignoring submit while a launch is pending")
		return Pending{}, false
	}

	u := gateway.Normalize(raw)
	if u == "" {
		c.status = Failed{Message: EmptyInputMessage}
		return Pending{}, false
	}

	c.seq++
	c.status = Loading{RequestedURL: u}
	p := Pending{
		seq:     c.seq,
		Raw:     raw,
		URL:     u,
		Backend: c.backend,
		Target:  gateway.Target(c.backend, u),
		Delay:   c.delay,
	}
	logging.Info(submitSubsystem, "queued %s via %s", u, c.backend)
	return p, true
}

// Complete performs a pending launch once its delay has elapsed. A stale
// Pending, superseded by Teardown or a later submission, is a no-op. On a
// live Pending the navigator is invoked with the target captured at submit
// time and the state returns to Idle.
func (c *Controller) Complete(p Pending) bool {
	if p.seq != c.seq {
		logging.Debug(submitSubsystem, "dropping stale launch for %s", p.URL)
		return false
	}
	if _, loading := c.status.(Loading); !loading {
		return false
	}

	nav.Launch(c.navigator, p.Target)
	c.status = Idle{}
	return true
}

// Teardown invalidates any pending launch, for shutdown paths. Timers that
// fire afterwards find their Pending stale.
func (c *Controller) Teardown() {
	c.seq++
	c.status = Idle{}
}
