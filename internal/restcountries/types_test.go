package restcountries

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestCountry_DecodeProjectedPayload(t *testing.T) {
	raw := `{
		"name": {"common": "Germany", "official": "Federal Republic of Germany"},
		"region": "Europe",
		"capital": ["Berlin"],
		"population": 83240525,
		"flags": {"svg": "https://flagcdn.com/de.svg", "png": "https://flagcdn.com/w320/de.png"},
		"languages": {"deu": "German"},
		"currencies": {"EUR": {"name": "Euro", "symbol": "€"}}
	}`
	var c Country
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if c.DisplayName() != "Germany" {
		t.Fatalf("DisplayName = %q, want Germany", c.DisplayName())
	}
	if c.CapitalName() != "Berlin" {
		t.Fatalf("CapitalName = %q, want Berlin", c.CapitalName())
	}
	if c.FlagURL() != "https://flagcdn.com/de.svg" {
		t.Fatalf("FlagURL = %q, want svg reference", c.FlagURL())
	}
	if c.FlagCode() != "DE" {
		t.Fatalf("FlagCode = %q, want DE", c.FlagCode())
	}
	if got := c.CurrencyNames(); !reflect.DeepEqual(got, []string{"Euro"}) {
		t.Fatalf("CurrencyNames = %v, want [Euro]", got)
	}
}

func TestCountry_OptionalFieldsAbsent(t *testing.T) {
	var c Country
	if err := json.Unmarshal([]byte(`{"name":{"common":"Antarctica"},"region":"Antarctic","population":1000}`), &c); err != nil {
		t.Fatalf("Unmarshal returned error: %v", err)
	}
	if c.CapitalName() != "" {
		t.Fatalf("CapitalName = %q, want empty", c.CapitalName())
	}
	if len(c.LanguageNames()) != 0 || len(c.CurrencyNames()) != 0 {
		t.Fatalf("expected no languages or currencies, got %v / %v", c.LanguageNames(), c.CurrencyNames())
	}
	if c.FlagCode() != "" {
		t.Fatalf("FlagCode = %q, want empty", c.FlagCode())
	}
}

func TestCountry_LanguageNamesOrderedByCode(t *testing.T) {
	c := Country{Languages: map[string]string{"nld": "Dutch", "fra": "French", "deu": "German", "xxx": " "}}
	want := []string{"German", "French", "Dutch"}
	if got := c.LanguageNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("LanguageNames = %v, want %v", got, want)
	}
}

func TestCountry_CapitalSkipsBlankEntries(t *testing.T) {
	c := Country{Capital: []string{"  ", "Pretoria", "Cape Town"}}
	if got := c.CapitalName(); got != "Pretoria" {
		t.Fatalf("CapitalName = %q, want Pretoria", got)
	}
}

func TestCountry_FlagCodeRejectsOddNames(t *testing.T) {
	cases := map[string]string{
		"https://flagcdn.com/gb-eng.svg": "",
		"https://flagcdn.com/w320/fr.png": "FR",
		"https://example.com/1x.svg":      "",
	}
	for ref, want := range cases {
		c := Country{Flags: Flags{SVG: ref}}
		if got := c.FlagCode(); got != want {
			t.Fatalf("FlagCode(%q) = %q, want %q", ref, got, want)
		}
	}
}

func TestSortByName_LocaleAwareAndStable(t *testing.T) {
	countries := []Country{
		{Name: CountryName{Common: "Zimbabwe"}},
		{Name: CountryName{Common: "Åland Islands"}},
		{Name: CountryName{Common: "Albania"}, Region: "first"},
		{Name: CountryName{Common: "Albania"}, Region: "second"},
		{Name: CountryName{Common: "Aruba"}},
	}
	SortByName(countries)

	var names []string
	for _, c := range countries {
		names = append(names, c.DisplayName())
	}
	want := []string{"Åland Islands", "Albania", "Albania", "Aruba", "Zimbabwe"}
	if !reflect.DeepEqual(names, want) {
		t.Fatalf("SortByName order = %v, want %v", names, want)
	}
	if countries[1].Region != "first" || countries[2].Region != "second" {
		t.Fatalf("equal names reordered: %q then %q", countries[1].Region, countries[2].Region)
	}
}
