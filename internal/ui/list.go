package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/atlas/internal/present"
)

// listChromeRows is the search line plus the rule under it.
const listChromeRows = 2

func (m Model) listTitle() string {
	if m.snapshot.Loading() || m.snapshot.Failed() {
		return "Countries"
	}
	return fmt.Sprintf("Countries (%d)", len(m.snapshot.Filtered))
}

// listRows returns how many country rows fit in the list pane.
func (m Model) listRows() int {
	return max(m.contentHeight()-2-listChromeRows, 1)
}

// renderList renders the search box followed by the visible country rows.
func (m Model) renderList(width int) string {
	bgColor := m.theme.FocusBg
	styles := m.theme.Styles().WithBackground(bgColor)

	var lines []string
	lines = append(lines, m.search.View())
	lines = append(lines, styles.FaintText.Render(strings.Repeat("─", max(width, 0))))

	snap := m.snapshot
	switch {
	case snap.Loading():
		lines = append(lines, styles.InfoText.Render(m.spinner.View()+" "+present.LoadingMessage))
		return strings.Join(lines, "\n")
	case snap.Failed():
		lines = append(lines, styles.DangerText.Render(present.ErrorMessage))
		return strings.Join(lines, "\n")
	case len(snap.Filtered) == 0:
		lines = append(lines, styles.MutedText.Render(present.NoResults))
		return strings.Join(lines, "\n")
	}

	rows := present.Rows(snap.Filtered)
	end := min(m.offset+m.listRows(), len(rows))
	for i := m.offset; i < end; i++ {
		lines = append(lines, m.formatRow(rows[i], i, width, bgColor))
	}
	return strings.Join(lines, "\n")
}

// formatRow renders "flag Name · Region". The cursor row uses the selection
// colors; the selected country is marked with a bullet.
func (m Model) formatRow(row present.Row, index, width int, bgColor string) string {
	cursor := index == m.cursor && m.focus == focusList
	selected := m.snapshot.HasSelected && row.Name == m.snapshot.Selected.DisplayName()

	rowBg := bgColor
	if cursor {
		rowBg = m.theme.SelectionBg
	}
	bg := NewBgStyle(rowBg)

	var nameStyle, regionStyle lipgloss.Style
	if cursor {
		selText := lipgloss.NewStyle().Foreground(lipgloss.Color(m.theme.SelectionText))
		nameStyle = selText.Bold(true)
		regionStyle = selText
	} else {
		styles := m.theme.Styles()
		nameStyle = styles.Text
		regionStyle = styles.MutedText
		if selected {
			nameStyle = styles.AccentText.Bold(true)
		}
	}

	marker := " "
	if selected {
		marker = "•"
	}
	region := row.Region
	if region == "" {
		region = present.NotAvailable
	}

	// marker, flag and separators take 7 cells
	nameWidth := max(width-lipgloss.Width(region)-7, 6)
	content := bg.Render(marker, nameStyle) + bg.Space() +
		bg.Render(row.FlagGlyph, nameStyle) + bg.Space() +
		bg.Render(truncate(row.Name, nameWidth), nameStyle) +
		bg.Render(" · ", regionStyle) +
		bg.Render(region, regionStyle)

	return lipgloss.NewStyle().
		Background(lipgloss.Color(rowBg)).
		Width(width).
		Render(content)
}
