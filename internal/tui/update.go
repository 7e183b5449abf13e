package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"gatectl/pkg/logging"
)

const tuiSubsystem = "TUI"

// Update implements tea.Model. All state transitions funnel through here,
// on a single goroutine.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		inputWidth := msg.Width - appStyle.GetHorizontalFrameSize() - panelStyle.GetHorizontalFrameSize() - 4
		if inputWidth > 0 {
			m.input.Width = inputWidth
		}
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case launchDueMsg:
		// Complete drops stale launches on its own; only a live one is
		// recorded and shown as the last target.
		if m.ctrl.Complete(msg.pending) {
			m.lastTarget = msg.pending.Target
			return m, recordLaunchCmd(m.store, msg.pending)
		}
		return m, nil

	case launchRecordedMsg:
		if msg.err != nil {
			logging.Error(tuiSubsystem, msg.err, "could not record launch")
			return m, nil
		}
		if m.store != nil {
			return m, loadRecentCmd(m.store)
		}
		return m, nil

	case recentLoadedMsg:
		if msg.err != nil {
			logging.Error(tuiSubsystem, msg.err, "could not load recent launches")
			return m, nil
		}
		m.recent = msg.launches
		return m, nil

	case newLogEntryMsg:
		m.activityLog = append(m.activityLog, formatLogEntry(msg.entry))
		if len(m.activityLog) > maxActivityLogLines {
			m.activityLog = m.activityLog[len(m.activityLog)-maxActivityLogLines:]
		}
		return m, waitForLogEntryCmd(m.logChan)

	case logChannelClosedMsg:
		return m, nil
	}

	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		// Invalidate any pending launch before the loop goes away.
		m.ctrl.Teardown()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		p, ok := m.ctrl.Submit(m.input.Value())
		if !ok {
			return m, nil
		}
		return m, scheduleLaunchCmd(p)

	case key.Matches(msg, m.keys.ToggleBackend):
		b := m.ctrl.ToggleBackend()
		logging.Debug(tuiSubsystem, "backend switched to %s", b)
		return m, nil

	case key.Matches(msg, m.keys.CopyTarget):
		if m.lastTarget != "" {
			if err := clipboard.WriteAll(m.lastTarget); err != nil {
				logging.Warn(tuiSubsystem, "could not copy target: %v", err)
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	// Everything else is typing. A value change counts as an edit, which
	// clears a showing validation message.
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.ctrl.Edit()
	}
	return m, cmd
}
