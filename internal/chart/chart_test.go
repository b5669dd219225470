package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/five82/atlas/internal/present"
	"github.com/five82/atlas/internal/restcountries"
)

func sampleChart() present.Chart {
	selected := restcountries.Country{Name: restcountries.CountryName{Common: "Kenya"}, Region: "Africa", Population: 53771300}
	peers := []restcountries.Country{
		{Name: restcountries.CountryName{Common: "Algeria"}, Region: "Africa", Population: 44700000},
		selected,
	}
	return present.NewChart(selected, peers)
}

func TestBuild_SeriesMatchesBars(t *testing.T) {
	bar := Build(sampleChart())
	if len(bar.MultiSeries) != 1 {
		t.Fatalf("series count = %d, want 1", len(bar.MultiSeries))
	}
	if bar.MultiSeries[0].Name != present.SeriesLabel {
		t.Fatalf("series name = %q, want %q", bar.MultiSeries[0].Name, present.SeriesLabel)
	}
}

func TestRender_WritesHTML(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, sampleChart()); err != nil {
		t.Fatalf("Render returned error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"<html", "echarts", "Algeria", "Kenya"} {
		if !strings.Contains(out, want) {
			t.Fatalf("rendered chart missing %q", want)
		}
	}
}

func TestRender_EmptyChartFails(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, present.Chart{}); err == nil {
		t.Fatalf("Render returned nil error for empty chart")
	}
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	path, err := WriteFile(dir, sampleChart())
	if err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}
	if filepath.Base(path) != "africa-population.html" {
		t.Fatalf("path = %q, want africa-population.html", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), "Kenya") {
		t.Fatalf("exported chart missing selection")
	}

	if _, err := WriteFile("  ", sampleChart()); err == nil {
		t.Fatalf("WriteFile with blank dir returned nil error")
	}
}

func TestFileName(t *testing.T) {
	cases := map[string]string{
		"Europe":    "europe-population.html",
		"Americas ": "americas-population.html",
		"":          "unknown-population.html",
		"Asia/Pac":  "asia-pac-population.html",
	}
	for in, want := range cases {
		if got := FileName(in); got != want {
			t.Fatalf("FileName(%q) = %q, want %q", in, got, want)
		}
	}
}
