package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gatectl/internal/config"
	"gatectl/internal/gateway"
	"gatectl/internal/submit"
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

func newTestModel(t *testing.T, opts ...submit.Option) (model, *fakeNavigator) {
	t.Helper()
	fake := &fakeNavigator{}
	opts = append([]submit.Option{submit.WithDelay(time.Millisecond)}, opts...)
	ctrl := submit.New(fake, opts...)
	cfg := config.GetDefaultConfig()
	return InitialModel(cfg, ctrl, nil, nil), fake
}

func typeText(m model, text string) model {
	for _, r := range text {
		updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		m = updated.(model)
	}
	return m
}

func pressEnter(m model) (model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(model), cmd
}

func TestSubmitEmptyShowsError(t *testing.T) {
	m, fake := newTestModel(t)

	m, cmd := pressEnter(m)

	assert.Nil(t, cmd, "nothing to schedule on a rejected submission")
	assert.Equal(t, submit.Failed{Message: "Enter a URL to load."}, m.ctrl.Status())
	assert.Contains(t, m.View(), "Enter a URL to load.")
	assert.Empty(t, fake.opened)
}

func TestTypingClearsError(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = pressEnter(m)
	require.IsType(t, submit.Failed{}, m.ctrl.Status())

	m = typeText(m, "e")
	assert.Equal(t, submit.Idle{}, m.ctrl.Status())
}

func TestSubmitThenLaunchRoundTrip(t *testing.T) {
	m, fake := newTestModel(t)
	m = typeText(m, "example.com")

	m, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	assert.Equal(t, submit.Loading{RequestedURL: "https://example.com"}, m.ctrl.Status())

	// Run the scheduled tick; with a 1ms delay it resolves immediately.
	msg := cmd()
	due, ok := msg.(launchDueMsg)
	require.True(t, ok, "scheduled command should yield a launchDueMsg, got %T", msg)

	updated, _ := m.Update(due)
	m = updated.(model)

	assert.Equal(t, []string{"/scramjet/https%3A%2F%2Fexample.com"}, fake.opened)
	assert.Equal(t, submit.Idle{}, m.ctrl.Status())
	assert.Equal(t, "/scramjet/https%3A%2F%2Fexample.com", m.lastTarget)
}

func TestToggleBackendChangesTarget(t *testing.T) {
	m, fake := newTestModel(t)
	m = typeText(m, "example.com")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = updated.(model)
	assert.Equal(t, gateway.BackendUltraviolet, m.ctrl.Backend())

	m, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	due := cmd().(launchDueMsg)
	updated, _ = m.Update(due)
	m = updated.(model)

	assert.Equal(t, []string{"/uv/https%3A%2F%2Fexample.com"}, fake.opened)
}

func TestQuitInvalidatesPendingLaunch(t *testing.T) {
	m, fake := newTestModel(t)
	m = typeText(m, "example.com")

	m, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	due := cmd().(launchDueMsg)

	updated, quitCmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(model)
	assert.NotNil(t, quitCmd)
	assert.True(t, m.quitting)

	// The timer fires after teardown; the launch must be dropped.
	updated, _ = m.Update(due)
	m = updated.(model)
	assert.Empty(t, fake.opened)
	assert.Empty(t, m.lastTarget)
}

func TestFallbackUsesSameTarget(t *testing.T) {
	m, fake := newTestModel(t)
	fake.openErr = errors.New("blocked")
	m = typeText(m, "example.com")

	m, cmd := pressEnter(m)
	require.NotNil(t, cmd)
	due := cmd().(launchDueMsg)
	updated, _ := m.Update(due)
	m = updated.(model)

	assert.Equal(t, fake.opened, fake.replaced)
	assert.Equal(t, submit.Idle{}, m.ctrl.Status())
}

func TestViewShowsBackendToggle(t *testing.T) {
	m, _ := newTestModel(t)
	view := m.View()
	assert.Contains(t, view, "scramjet")
	assert.Contains(t, view, "ultraviolet")
}
