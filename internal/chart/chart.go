// Package chart renders region population charts as standalone HTML using
// go-echarts.
package chart

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/five82/atlas/internal/present"
)

// Build converts a chart view into a go-echarts bar chart. Each call returns
// a fresh instance; callers never reuse one across selections.
func Build(ch present.Chart) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: ch.Title,
			Width:     "900px",
			Height:    "480px",
		}),
		charts.WithTitleOpts(opts.Title{Title: ch.Title}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: present.SeriesLabel, Min: 0}),
	)

	data := make([]opts.BarData, 0, len(ch.Bars))
	for _, b := range ch.Bars {
		data = append(data, opts.BarData{Name: b.Label, Value: b.Value})
	}
	bar.SetXAxis(ch.Labels()).AddSeries(present.SeriesLabel, data)
	return bar
}

// Render writes the chart page HTML to w.
func Render(w io.Writer, ch present.Chart) error {
	if ch.Empty() {
		return fmt.Errorf("render chart: no data")
	}
	if err := Build(ch).Render(w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// WriteFile renders the chart into dir and returns the written path. The file
// name is derived from the region, so a newer export replaces an older one.
func WriteFile(dir string, ch present.Chart) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", fmt.Errorf("export chart: directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, FileName(ch.Region))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create chart file: %w", err)
	}
	if err := Render(file, ch); err != nil {
		_ = file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close chart file: %w", err)
	}
	return path, nil
}

// FileName returns the export file name for region.
func FileName(region string) string {
	slug := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return '-'
		}
	}, strings.TrimSpace(region))
	slug = strings.Trim(slug, "-")
	if slug == "" {
		slug = "unknown"
	}
	return slug + "-population.html"
}
