package present

import (
	"fmt"

	"github.com/five82/atlas/internal/restcountries"
)

// Bar is one country in a region chart.
type Bar struct {
	Label    string `json:"name"`
	Value    int64  `json:"population"`
	Display  string `json:"-"`
	Selected bool   `json:"selected"`
}

// Chart is the population comparison for a selection.
type Chart struct {
	Region string `json:"region"`
	Title  string `json:"title"`
	Bars   []Bar  `json:"bars"`
	Max    int64  `json:"-"`
}

// NewChart builds the chart for selected from its region peers. The peers
// come from state.RegionPeers and are charted in the order given.
func NewChart(selected restcountries.Country, peers []restcountries.Country) Chart {
	ch := Chart{
		Region: selected.Region,
		Title:  chartTitle(selected.Region),
		Bars:   make([]Bar, 0, len(peers)),
	}
	for _, p := range peers {
		ch.Bars = append(ch.Bars, Bar{
			Label:    p.DisplayName(),
			Value:    p.Population,
			Display:  FormatPopulation(p.Population),
			Selected: p.DisplayName() == selected.DisplayName(),
		})
		ch.Max = max(ch.Max, p.Population)
	}
	return ch
}

// Labels returns the bar labels in chart order.
func (c Chart) Labels() []string {
	out := make([]string, len(c.Bars))
	for i, b := range c.Bars {
		out[i] = b.Label
	}
	return out
}

// Values returns the bar values in chart order.
func (c Chart) Values() []int64 {
	out := make([]int64, len(c.Bars))
	for i, b := range c.Bars {
		out[i] = b.Value
	}
	return out
}

// Empty reports whether there is nothing to draw.
func (c Chart) Empty() bool {
	return len(c.Bars) == 0
}

func chartTitle(region string) string {
	if region == "" {
		return SeriesLabel
	}
	return fmt.Sprintf("%s · %s", SeriesLabel, region)
}
