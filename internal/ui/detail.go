package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/five82/atlas/internal/present"
)

const detailLabelWidth = 12

// renderDetail renders the selected country's record.
func (m Model) renderDetail(width int) string {
	bgColor := m.theme.SurfaceAlt
	styles := m.theme.Styles().WithBackground(bgColor)
	bg := NewBgStyle(bgColor)

	if !m.snapshot.HasSelected {
		return styles.MutedText.Render("Select a country to see its details.")
	}

	d := present.NewDetail(m.snapshot.Selected)

	var b strings.Builder
	b.WriteString(bg.Render(d.FlagGlyph, styles.Text) + bg.Space() + bg.Render(d.Name, styles.Text.Bold(true)))
	b.WriteString("\n")
	if d.FlagURL != "" {
		b.WriteString(bg.Render(truncate(d.FlagURL, width), styles.FaintText))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	valueWidth := max(width-detailLabelWidth, 10)
	for _, f := range d.Fields() {
		label := styles.MutedText.Width(detailLabelWidth).Render(f.Label)
		value := styles.Text.Width(valueWidth).Render(f.Value)
		if f.Value == present.NotAvailable {
			value = styles.FaintText.Width(valueWidth).Render(f.Value)
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, label, value))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
