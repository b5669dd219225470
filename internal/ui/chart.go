package ui

import (
	"strings"

	"github.com/five82/atlas/internal/present"
)

// Bar glyphs for the terminal chart.
const (
	barFilled = "█"
	barTrack  = "░"
)

func (m Model) currentChart() present.Chart {
	if !m.snapshot.HasSelected {
		return present.Chart{}
	}
	return present.NewChart(m.snapshot.Selected, m.snapshot.Peers)
}

func (m Model) chartTitle() string {
	ch := m.currentChart()
	if ch.Empty() {
		return present.SeriesLabel
	}
	return ch.Title
}

// renderChart draws the selection's region peers as horizontal bars scaled
// to the largest population in the chart.
func (m Model) renderChart(width int) string {
	bgColor := m.theme.SurfaceAlt
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	ch := m.currentChart()
	if ch.Empty() {
		return styles.MutedText.Render("Select a country to chart its region.")
	}

	labelWidth := 0
	valueWidth := 0
	for _, bar := range ch.Bars {
		labelWidth = max(labelWidth, len([]rune(bar.Label)))
		valueWidth = max(valueWidth, len(bar.Display))
	}
	labelWidth = min(labelWidth, max(width/3, 8))
	barWidth := max(width-labelWidth-valueWidth-2, 4)

	lines := make([]string, 0, len(ch.Bars))
	for _, bar := range ch.Bars {
		filled := scaledWidth(bar.Value, ch.Max, barWidth)

		labelStyle, fillStyle := styles.Text, styles.Bar
		if bar.Selected {
			labelStyle, fillStyle = styles.BarSelected, styles.BarSelected
		}

		line := bg.Render(padRight(truncate(bar.Label, labelWidth), labelWidth), labelStyle) + bg.Space() +
			bg.Render(strings.Repeat(barFilled, filled), fillStyle) +
			bg.Render(strings.Repeat(barTrack, barWidth-filled), styles.BarTrack) + bg.Space() +
			bg.Render(padLeft(bar.Display, valueWidth), styles.MutedText)
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// scaledWidth maps value onto [0, width]. Any positive value gets at least
// one cell so small countries stay visible.
func scaledWidth(value, maxValue int64, width int) int {
	if value <= 0 || maxValue <= 0 || width <= 0 {
		return 0
	}
	n := int(float64(value) / float64(maxValue) * float64(width))
	return max(1, min(n, width))
}
