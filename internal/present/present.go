// Package present builds frontend-neutral view models for countries.
// The TUI styles them with lipgloss and the web frontend feeds them to
// html/template; neither builds markup from raw API records.
package present

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/five82/atlas/internal/restcountries"
)

// User-facing texts shared by every frontend.
const (
	NotAvailable   = "N/A"
	NoResults      = "No countries found."
	LoadingMessage = "Loading countries..."
	ErrorMessage   = "Could not load countries. Please try again later."
	SeriesLabel    = "Population"
)

// fallbackFlag is shown when no ISO code can be derived from the flag URL.
const fallbackFlag = "⚑"

// Row is one list entry.
type Row struct {
	Name      string `json:"name"`
	Region    string `json:"region"`
	FlagURL   string `json:"flag"`
	FlagGlyph string `json:"-"`
}

// Rows converts the filtered subsequence into list entries, keeping order.
func Rows(countries []restcountries.Country) []Row {
	rows := make([]Row, 0, len(countries))
	for _, c := range countries {
		rows = append(rows, Row{
			Name:      c.DisplayName(),
			Region:    c.Region,
			FlagURL:   c.FlagURL(),
			FlagGlyph: FlagGlyph(c.FlagCode()),
		})
	}
	return rows
}

// Field is a labelled detail value.
type Field struct {
	Label string
	Value string
}

// Detail is the detail panel for one country.
type Detail struct {
	Name       string `json:"name"`
	FlagURL    string `json:"flag"`
	FlagGlyph  string `json:"-"`
	Capital    string `json:"capital"`
	Population string `json:"population"`
	Region     string `json:"region"`
	Languages  string `json:"languages"`
	Currencies string `json:"currencies"`
}

// NewDetail builds the detail panel, substituting N/A for absent values.
func NewDetail(c restcountries.Country) Detail {
	return Detail{
		Name:       c.DisplayName(),
		FlagURL:    c.FlagURL(),
		FlagGlyph:  FlagGlyph(c.FlagCode()),
		Capital:    orNA(c.CapitalName()),
		Population: FormatPopulation(c.Population),
		Region:     c.Region,
		Languages:  joinOrNA(c.LanguageNames()),
		Currencies: joinOrNA(c.CurrencyNames()),
	}
}

// Fields returns the labelled rows below the flag and name, in display order.
func (d Detail) Fields() []Field {
	return []Field{
		{Label: "Capital", Value: d.Capital},
		{Label: "Population", Value: d.Population},
		{Label: "Region", Value: d.Region},
		{Label: "Languages", Value: d.Languages},
		{Label: "Currencies", Value: d.Currencies},
	}
}

// FormatPopulation groups digits the way an English locale does (1,234,567).
func FormatPopulation(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// FlagGlyph turns an ISO 3166-1 alpha-2 code into its regional-indicator
// emoji pair. Anything else yields a generic flag.
func FlagGlyph(code string) string {
	if len(code) != 2 {
		return fallbackFlag
	}
	var b strings.Builder
	for _, r := range strings.ToUpper(code) {
		if r < 'A' || r > 'Z' {
			return fallbackFlag
		}
		b.WriteRune(0x1F1E6 + (r - 'A'))
	}
	return b.String()
}

func orNA(value string) string {
	if strings.TrimSpace(value) == "" {
		return NotAvailable
	}
	return value
}

func joinOrNA(values []string) string {
	if len(values) == 0 {
		return NotAvailable
	}
	return strings.Join(values, ", ")
}
