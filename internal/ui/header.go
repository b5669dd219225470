package ui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/atlas/internal/present"
)

// renderHeader renders the status line: app name, load state and any notice.
func (m Model) renderHeader() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)
	sep := bg.Spaces(2)

	parts := []string{bg.Render("atlas", styles.Logo)}

	snap := m.snapshot
	switch {
	case snap.Loading():
		parts = append(parts, bg.Render(m.spinner.View()+" "+present.LoadingMessage, styles.InfoText))
	case snap.Failed():
		parts = append(parts, bg.Render("FETCH FAILED", styles.DangerText))
	default:
		count := fmt.Sprintf("%d countries", len(snap.All))
		if snap.Query != "" {
			count = fmt.Sprintf("%d of %d countries", len(snap.Filtered), len(snap.All))
		}
		parts = append(parts, bg.Render(count, styles.SuccessText))
		if !snap.LoadedAt.IsZero() {
			parts = append(parts, bg.Render("loaded "+snap.LoadedAt.Format("15:04:05"), styles.FaintText))
		}
	}

	if m.notice != "" {
		parts = append(parts, bg.Render(truncate(m.notice, max(m.width/2, 10)), styles.WarningText))
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Foreground(lipgloss.Color(m.theme.Text)).
		Width(m.width).
		Render(bg.Space() + bg.Join(parts, sep))
}

// renderCommandBar renders the key hints for the focused widget.
func (m Model) renderCommandBar() string {
	styles := m.theme.Styles().WithBackground(m.theme.Surface)
	bg := NewBgStyle(m.theme.Surface)

	type cmd struct{ key, desc string }
	var commands []cmd
	if m.focus == focusSearch {
		commands = []cmd{
			{"type", "Filter"},
			{"Tab/Enter", "List"},
			{"ctrl+c", "Quit"},
		}
	} else {
		commands = []cmd{
			{"j/k", "Navigate"},
			{"Enter", "Show"},
			{"/", "Search"},
			{"x", "Export"},
			{"L", "Log"},
			{"?", "More"},
			{"q", "Quit"},
		}
	}

	colon := bg.Sep(":")
	segments := make([]string, 0, len(commands)+1)
	for _, c := range commands {
		segments = append(segments,
			bg.Render(c.key, styles.AccentText)+colon+bg.Render(c.desc, styles.MutedText))
	}
	segments = append(segments,
		bg.Render("T", styles.AccentText)+colon+bg.Render(m.theme.Name, styles.FaintText))

	return lipgloss.NewStyle().
		Background(lipgloss.Color(m.theme.Surface)).
		Width(m.width).
		Render(bg.Space() + bg.Join(segments, "  "))
}
