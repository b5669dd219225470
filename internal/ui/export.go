package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/atlas/internal/chart"
	"github.com/five82/atlas/internal/present"
	"github.com/five82/atlas/internal/restcountries"
)

// exportCmd writes the selection's chart as a standalone HTML page.
func exportCmd(dir string, selected restcountries.Country, peers []restcountries.Country) tea.Cmd {
	ch := present.NewChart(selected, peers)
	return func() tea.Msg {
		path, err := chart.WriteFile(dir, ch)
		return exportedMsg{path: path, err: err}
	}
}
