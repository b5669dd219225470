package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

const helpModalWidth = 40

// renderHelp renders the key bindings as a centered modal.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	k := m.keys
	sections := []helpSection{
		{title: "Search", items: bindingItems(k.Search, k.Focus)},
		{title: "List", items: bindingItems(k.Down, k.Up, k.Top, k.Bottom, k.PageDown, k.PageUp, k.Select)},
		{title: "General", items: bindingItems(k.Export, k.Logs, k.CycleTheme, k.Help, k.Escape, k.Quit)},
	}

	var b strings.Builder

	title := styles.Text.Bold(true).Render("Keyboard Shortcuts")
	b.WriteString(title)
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")

		keyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color(m.theme.Warning)).
			Width(12)
		for _, item := range section.items {
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(styles.Text.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(m.theme.Accent)).
		Padding(1, 2).
		Width(helpModalWidth)
	modalContent := modal.Render(b.String())

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		modalContent,
		lipgloss.WithWhitespaceChars(" "),
		lipgloss.WithWhitespaceForeground(lipgloss.Color(m.theme.Background)),
	)
}

type helpSection struct {
	title string
	items []helpItem
}

type helpItem struct {
	key  string
	desc string
}

func bindingItems(bindings ...key.Binding) []helpItem {
	items := make([]helpItem, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		items = append(items, helpItem{key: h.Key, desc: h.Desc})
	}
	return items
}
