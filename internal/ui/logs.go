package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/atlas/internal/logtail"
)

// logOverlayLines caps how much of the log file the overlay loads.
const logOverlayLines = 500

func readLogsCmd(path string) tea.Cmd {
	return func() tea.Msg {
		if strings.TrimSpace(path) == "" {
			return logLinesMsg{}
		}
		lines, err := logtail.Read(path, logOverlayLines)
		return logLinesMsg{lines: lines, err: err}
	}
}

func (m *Model) resizeLogViewport() {
	m.logViewport.Width = max(m.width-4, 10)
	m.logViewport.Height = max(m.height-4, 3)
}

// handleLogLines colors each record by level and scrolls to the newest.
func (m *Model) handleLogLines(msg logLinesMsg) {
	styles := m.theme.Styles()
	if msg.err != nil {
		m.logViewport.SetContent(styles.DangerText.Render("Could not read log: " + msg.err.Error()))
		return
	}
	if len(msg.lines) == 0 {
		m.logViewport.SetContent(styles.MutedText.Render("Log is empty."))
		return
	}

	out := make([]string, 0, len(msg.lines))
	for _, line := range msg.lines {
		out = append(out, m.colorizeEntry(logtail.Parse(line), styles))
	}
	m.logViewport.SetContent(strings.Join(out, "\n"))
	m.logViewport.GotoBottom()
}

func (m *Model) colorizeEntry(e logtail.Entry, styles Styles) string {
	parts := make([]string, 0, 4)
	if e.Time != "" {
		parts = append(parts, styles.FaintText.Render(e.Time))
	}
	if e.Level != "" {
		parts = append(parts, levelStyle(e.Level, styles).Render(e.Level))
	}
	parts = append(parts, styles.Text.Render(e.Msg))
	if len(e.Attrs) > 0 {
		parts = append(parts, styles.MutedText.Render(strings.Join(e.Attrs, " ")))
	}
	return strings.Join(parts, " ")
}

func levelStyle(level string, styles Styles) lipgloss.Style {
	switch level {
	case "ERROR":
		return styles.DangerText
	case "WARN":
		return styles.WarningText.Bold(true)
	case "DEBUG":
		return styles.InfoText
	default:
		return styles.SuccessText
	}
}

// renderLogs renders the log overlay.
func (m Model) renderLogs() string {
	title := "Log"
	if m.logPath != "" {
		title = "Log · " + m.logPath
	}
	return m.renderTitledBox(title, m.logViewport.View(), m.width, m.height, true)
}
