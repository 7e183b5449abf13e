package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gatectl/internal/history"
	"gatectl/internal/submit"
	"gatectl/pkg/logging"
)

// scheduleLaunchCmd arms the launch delay for an accepted submission. The
// Pending rides along in the message so the eventual launch uses the target
// captured at submit time.
func scheduleLaunchCmd(p submit.Pending) tea.Cmd {
	return tea.Tick(p.Delay, func(time.Time) tea.Msg {
		return launchDueMsg{pending: p}
	})
}

// recordLaunchCmd writes a completed launch to the history store off the
// event loop.
func recordLaunchCmd(store *history.Store, p submit.Pending) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		_, err := store.Record(history.Launch{
			Backend:  p.Backend.String(),
			RawInput: p.Raw,
			URL:      p.URL,
			Target:   p.Target,
		})
		return launchRecordedMsg{err: err}
	}
}

// loadRecentCmd refreshes the recent-launches list.
func loadRecentCmd(store *history.Store) tea.Cmd {
	return func() tea.Msg {
		launches, err := store.Recent(maxRecentRows)
		return recentLoadedMsg{launches: launches, err: err}
	}
}

// waitForLogEntryCmd blocks on the logging channel and resolves with the
// next entry. The update loop re-arms it after each message.
func waitForLogEntryCmd(ch <-chan logging.LogEntry) tea.Cmd {
	return func() tea.Msg {
		entry, ok := <-ch
		if !ok {
			return logChannelClosedMsg{}
		}
		return newLogEntryMsg{entry: entry}
	}
}

// formatLogEntry renders a LogEntry the way the activity log shows it.
func formatLogEntry(entry logging.LogEntry) string {
	line := entry.Timestamp.Format("15:04:05") + " [" + entry.Level.String() + "] " + entry.Subsystem + ": " + entry.Message
	if entry.Err != nil {
		line += " (" + entry.Err.Error() + ")"
	}
	return line
}
