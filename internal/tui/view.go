package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"gatectl/internal/gateway"
	"gatectl/internal/submit"
)

// View implements tea.Model.
func (m model) View() string {
	if m.quitting {
		return statusStyle.Render("Goodbye.") + "\n"
	}

	contentWidth := m.width - appStyle.GetHorizontalFrameSize()
	if contentWidth < 20 {
		contentWidth = 60
	}

	sections := []string{
		headerStyle.Render(fmt.Sprintf("gatectl — %s", m.gatewayAddr)),
		panelStyle.Render(m.input.View()),
		m.renderBackendLine(),
		m.renderStatusLine(contentWidth),
	}

	if recent := m.renderRecent(contentWidth); recent != "" {
		sections = append(sections, recent)
	}
	if log := m.renderActivityLog(contentWidth); log != "" {
		sections = append(sections, log)
	}
	sections = append(sections, m.help.View(m.keys))

	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (m model) renderBackendLine() string {
	render := func(b gateway.Backend) string {
		label := fmt.Sprintf("[%s] %s", checkbox(m.ctrl.Backend() == b), b)
		if m.ctrl.Backend() == b {
			return selectedBackendStyle.Render(label)
		}
		return mutedStyle.Render(label)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		statusStyle.Render("Backend: "),
		render(gateway.BackendScramJet),
		"  ",
		render(gateway.BackendUltraviolet),
	)
}

func checkbox(checked bool) string {
	if checked {
		return "•"
	}
	return " "
}

// renderStatusLine switches over every status shape; a new one would have to
// be handled here.
func (m model) renderStatusLine(width int) string {
	switch s := m.ctrl.Status().(type) {
	case submit.Idle:
		return mutedStyle.Render("Type a destination and press enter.")
	case submit.Loading:
		return loadingStyle.Render(m.spin.View() + " Opening " + truncate(s.RequestedURL, width-12) + " …")
	case submit.Failed:
		return errorStyle.Render(s.Message)
	default:
		return ""
	}
}

func (m model) renderRecent(width int) string {
	if len(m.recent) == 0 {
		return ""
	}
	lines := []string{panelTitleStyle.Render("Recent")}
	for _, l := range m.recent {
		line := fmt.Sprintf("%-11s %s", l.Backend, l.URL)
		lines = append(lines, statusStyle.Render(truncate(line, width-4)))
	}
	return panelStyle.Render(strings.Join(lines, "\n"))
}

func (m model) renderActivityLog(width int) string {
	if len(m.activityLog) == 0 {
		return ""
	}
	start := len(m.activityLog) - maxLogRows
	if start < 0 {
		start = 0
	}
	var lines []string
	for _, line := range m.activityLog[start:] {
		lines = append(lines, mutedStyle.Render(truncate(line, width-4)))
	}
	return strings.Join(lines, "\n")
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 || runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth-1, "…")
}
