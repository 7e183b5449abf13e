package tui

import (
	"gatectl/internal/history"
	"gatectl/internal/submit"
	"gatectl/pkg/logging"
)

// launchDueMsg arrives when a pending launch's delay has elapsed. The
// Pending payload carries everything captured at submit time, so nothing is
// re-read from the model here.
type launchDueMsg struct {
	pending submit.Pending
}

// launchRecordedMsg reports the outcome of writing a launch to history.
type launchRecordedMsg struct {
	err error
}

// recentLoadedMsg delivers the refreshed recent-launches list.
type recentLoadedMsg struct {
	launches []history.Launch
	err      error
}

// newLogEntryMsg carries one entry from the logging channel.
type newLogEntryMsg struct {
	entry logging.LogEntry
}

// logChannelClosedMsg signals that logging shut down; stop re-arming the
// channel reader.
type logChannelClosedMsg struct{}
