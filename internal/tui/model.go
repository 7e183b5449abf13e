package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"gatectl/internal/config"
	"gatectl/internal/history"
	"gatectl/internal/submit"
	"gatectl/pkg/logging"
)

const maxActivityLogLines = 50

// model holds all TUI state. The submission state machine itself lives in
// the controller; the model only renders it and feeds it events.
type model struct {
	ctrl  *submit.Controller
	store *history.Store // nil when history is disabled

	input   textinput.Model
	spin    spinner.Model
	help    help.Model
	keys    KeyMap
	logChan <-chan logging.LogEntry

	gatewayAddr string
	recent      []history.Launch
	activityLog []string
	lastTarget  string

	width    int
	height   int
	quitting bool
}

// InitialModel assembles the launcher screen around an already-configured
// controller. store may be nil; logChan may be nil in tests.
func InitialModel(cfg config.GatectlConfig, ctrl *submit.Controller, store *history.Store, logChan <-chan logging.LogEntry) model {
	input := textinput.New()
	input.Placeholder = "example.com"
	input.Prompt = "❯ "
	input.CharLimit = 2048
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = spinnerStyle

	return model{
		ctrl:        ctrl,
		store:       store,
		input:       input,
		spin:        spin,
		help:        help.New(),
		keys:        DefaultKeyMap(),
		logChan:     logChan,
		gatewayAddr: cfg.Gateway.Address,
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, m.spin.Tick}
	if m.store != nil {
		cmds = append(cmds, loadRecentCmd(m.store))
	}
	if m.logChan != nil {
		cmds = append(cmds, waitForLogEntryCmd(m.logChan))
	}
	return tea.Batch(cmds...)
}
