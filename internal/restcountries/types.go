package restcountries

import (
	"path"
	"sort"
	"strings"
)

// Country mirrors one record of the projected /v3.1/all payload.
type Country struct {
	Name       CountryName         `json:"name"`
	Region     string              `json:"region"`
	Capital    []string            `json:"capital"`
	Population int64               `json:"population"`
	Flags      Flags               `json:"flags"`
	Languages  map[string]string   `json:"languages"`
	Currencies map[string]Currency `json:"currencies"`
}

// CountryName holds the naming variants returned by the API.
type CountryName struct {
	Common   string `json:"common"`
	Official string `json:"official"`
}

// Flags holds flag image references.
type Flags struct {
	SVG string `json:"svg"`
	PNG string `json:"png"`
	Alt string `json:"alt"`
}

// Currency describes one currency entry.
type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// DisplayName returns the common name used for display, sorting and identity.
func (c Country) DisplayName() string {
	return strings.TrimSpace(c.Name.Common)
}

// CapitalName returns the first listed capital, or "" when there is none.
func (c Country) CapitalName() string {
	for _, capital := range c.Capital {
		if trimmed := strings.TrimSpace(capital); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// FlagURL returns the SVG flag reference, falling back to the PNG one.
func (c Country) FlagURL() string {
	if svg := strings.TrimSpace(c.Flags.SVG); svg != "" {
		return svg
	}
	return strings.TrimSpace(c.Flags.PNG)
}

// FlagCode derives the ISO 3166-1 alpha-2 code from the flag file name
// (for example "https://flagcdn.com/de.svg" yields "DE"). It returns "" when
// the file name is not a two-letter code.
func (c Country) FlagCode() string {
	ref := c.FlagURL()
	if ref == "" {
		return ""
	}
	base := path.Base(ref)
	if dot := strings.IndexByte(base, '.'); dot >= 0 {
		base = base[:dot]
	}
	if len(base) != 2 {
		return ""
	}
	code := strings.ToUpper(base)
	for _, r := range code {
		if r < 'A' || r > 'Z' {
			return ""
		}
	}
	return code
}

// LanguageNames returns language display names ordered by language code.
func (c Country) LanguageNames() []string {
	codes := sortedKeys(c.Languages)
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if name := strings.TrimSpace(c.Languages[code]); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// CurrencyNames returns currency names ordered by currency code.
func (c Country) CurrencyNames() []string {
	codes := sortedKeys(c.Currencies)
	out := make([]string, 0, len(codes))
	for _, code := range codes {
		if name := strings.TrimSpace(c.Currencies[code].Name); name != "" {
			out = append(out, name)
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
