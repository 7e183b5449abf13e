package submit

import (
	"errors"
	"testing"
	"time"

	"gatectl/internal/gateway"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNavigator struct {
	openErr  error
	opened   []string
	replaced []string
}

func (f *fakeNavigator) OpenNewContext(target string) error {
	f.opened = append(f.opened, target)
	return f.openErr
}

func (f *fakeNavigator) ReplaceCurrent(target string) error {
	f.replaced = append(f.replaced, target)
	return nil
}

func TestControllerStartsIdle(t *testing.T) {
	c := New(&fakeNavigator{})
	assert.Equal(t, Idle{}, c.Status())
	assert.Equal(t, gateway.BackendScramJet, c.Backend())
}

func TestSubmitEmptyInputFails(t *testing.T) {
	fake := &fakeNavigator{}
	c := New(fake)

	for _, raw := range []string{"", "   ", "\t \n"} {
		_, ok := c.Submit(raw)
		assert.False(t, ok)
		assert.Equal(t, Failed{Message: "Enter a URL to load."}, c.Status())
		c.Edit() // reset for the next case
	}
	assert.Empty(t, fake.opened, "empty input must never reach the navigator")
}

func TestSubmitValidInputLoadsThenLaunches(t *testing.T) {
	fake := &fakeNavigator{}
	c := New(fake, WithDelay(5*time.Millisecond))

	p, ok := c.Submit("example.com")
	require.True(t, ok)
	assert.Equal(t, Loading{RequestedURL: "https://example.com"}, c.Status())
	assert.Equal(t, "https://example.com", p.URL)
	assert.Equal(t, "/scramjet/https%3A%2F%2Fexample.com", p.Target)
	assert.Equal(t, 5*time.Millisecond, p.Delay)

	require.True(t, c.Complete(p))
	assert.Equal(t, []string{"/scramjet/https%3A%2F%2Fexample.com"}, fake.opened)
	assert.Equal(t, Idle{}, c.Status())
}

func TestSubmitSecondBackend(t *testing.T) {
	c := New(&fakeNavigator{}, WithBackend(gateway.BackendUltraviolet))

	p, ok := c.Submit("https://example.com")
	require.True(t, ok)
	assert.Equal(t, "/uv/https%3A%2F%2Fexample.com", p.Target)
	assert.Equal(t, gateway.BackendUltraviolet, p.Backend)
}

func TestToggleDuringDelayDoesNotChangePendingTarget(t *testing.T) {
	fake := &fakeNavigator{}
	c := New(fake)

	p, ok := c.Submit("example.com")
	require.True(t, ok)

	c.ToggleBackend() // selection changes, the captured launch must not

	require.True(t, c.Complete(p))
	assert.Equal(t, []string{"/scramjet/https%3A%2F%2Fexample.com"}, fake.opened)
}

func TestSubmitWhileLoadingIsIgnored(t *testing.T) {
	fake := &fakeNavigator{}
	c := New(fake)

	p, ok := c.Submit("example.com")
	require.True(t, ok)

	_, ok = c.Submit("other.com")
	assert.False(t, ok, "second submit during a pending launch must be ignored")
	assert.Equal(t, Loading{RequestedURL: "https://example.com"}, c.Status())

	require.True(t, c.Complete(p))
	assert.Len(t, fake.opened, 1)
}

func TestEditClearsFailure(t *testing.T) {
	c := New(&fakeNavigator{})

	c.Submit("")
	require.IsType(t, Failed{}, c.Status())

	c.Edit()
	assert.Equal(t, Idle{}, c.Status())

	// Editing while idle stays idle.
	c.Edit()
	assert.Equal(t, Idle{}, c.Status())
}

func TestTeardownInvalidatesPendingLaunch(t *testing.T) {
	fake := &fakeNavigator{}
	c := New(fake)

	p, ok := c.Submit("example.com")
	require.True(t, ok)

	c.Teardown()

	assert.False(t, c.Complete(p), "a torn-down launch must not fire")
	assert.Empty(t, fake.opened)
	assert.Equal(t, Idle{}, c.Status())
}

func TestCompleteFallsBackWhenNewContextBlocked(t *testing.T) {
	fake := &fakeNavigator{openErr: errors.New("blocked")}
	c := New(fake)

	p, ok := c.Submit("example.com")
	require.True(t, ok)
	require.True(t, c.Complete(p))

	assert.Equal(t, fake.opened, fake.replaced, "fallback must use the identical target")
	assert.Equal(t, Idle{}, c.Status(), "a blocked context is not an error state")
}
