package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"gatectl/internal/config"
	"gatectl/internal/history"
	"gatectl/internal/submit"
	"gatectl/pkg/logging"
)

// NewProgram wires the launcher screen into a Bubble Tea program.
func NewProgram(cfg config.GatectlConfig, ctrl *submit.Controller, store *history.Store, logChan <-chan logging.LogEntry) *tea.Program {
	m := InitialModel(cfg, ctrl, store, logChan)
	return tea.NewProgram(m, tea.WithAltScreen())
}
