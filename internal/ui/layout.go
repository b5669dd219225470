package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal width thresholds for responsive layouts.
const (
	// LayoutExtraWideWidth is the threshold above which the list pane narrows.
	LayoutExtraWideWidth = 160

	// chromeHeight covers the header and command bar.
	chromeHeight = 2
)

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	return b.String()
}

// paneWidths splits the terminal between the list and the right column.
func (m Model) paneWidths() (list, right int) {
	if m.width >= LayoutExtraWideWidth {
		list = m.width * 30 / 100
	} else {
		list = m.width * 40 / 100
	}
	return list, m.width - list
}

func (m Model) contentHeight() int {
	return max(m.height-chromeHeight, 4)
}

// renderContent lays out the list on the left with detail above chart on the
// right.
func (m Model) renderContent() string {
	listWidth, rightWidth := m.paneWidths()
	height := m.contentHeight()
	detailHeight := height / 2
	chartHeight := height - detailHeight

	listPane := m.renderTitledBox(m.listTitle(), m.renderList(listWidth-2), listWidth, height, true)
	detailPane := m.renderTitledBox("Details", m.renderDetail(rightWidth-4), rightWidth, detailHeight, false)
	chartPane := m.renderTitledBox(m.chartTitle(), m.renderChart(rightWidth-4), rightWidth, chartHeight, false)

	right := lipgloss.JoinVertical(lipgloss.Left, detailPane, chartPane)
	return lipgloss.JoinHorizontal(lipgloss.Top, listPane, right)
}

// renderTitledBox renders content in a box with the title embedded in the top
// border: ┌─── Title ───┐
func (m Model) renderTitledBox(title, content string, width, height int, focused bool) string {
	var borderColorStr, bgColorStr string
	if focused {
		borderColorStr = m.theme.BorderFocus
		bgColorStr = m.theme.FocusBg
	} else {
		borderColorStr = m.theme.Border
		bgColorStr = m.theme.SurfaceAlt
	}
	bg := NewBgStyle(bgColorStr)
	borderStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(borderColorStr))
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(m.theme.Text))

	innerWidth := max(width-2, 0)
	title = truncate(title, max(innerWidth-4, 0))
	titleLen := lipgloss.Width(title)
	leftPad := max((innerWidth-titleLen-2)/2, 0)
	rightPad := max(innerWidth-titleLen-2-leftPad, 0)

	topBorder := bg.Render("┌", borderStyle) +
		bg.Render(strings.Repeat("─", leftPad), borderStyle) +
		bg.Render(" "+title+" ", titleStyle) +
		bg.Render(strings.Repeat("─", rightPad), borderStyle) +
		bg.Render("┐", borderStyle)

	bottomBorder := bg.Render("└", borderStyle) +
		bg.Render(strings.Repeat("─", innerWidth), borderStyle) +
		bg.Render("┘", borderStyle)

	contentStyle := lipgloss.NewStyle().Width(innerWidth).MaxWidth(innerWidth).Background(lipgloss.Color(bgColorStr))
	contentLines := strings.Split(content, "\n")
	boxHeight := max(height-2, 0)

	lines := make([]string, 0, boxHeight)
	for i := 0; i < boxHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		lines = append(lines,
			bg.Render("│", borderStyle)+
				contentStyle.Render(line)+
				bg.Render("│", borderStyle))
	}

	return topBorder + "\n" + strings.Join(lines, "\n") + "\n" + bottomBorder
}
