package state

import (
	"strings"

	"github.com/five82/atlas/internal/restcountries"
)

// ChartLimit is the maximum number of countries compared in a region chart.
const ChartLimit = 5

// FilterByName returns the countries whose display name contains query as a
// case-insensitive substring, in their original order. An empty query returns
// a copy of the full list.
func FilterByName(all []restcountries.Country, query string) []restcountries.Country {
	if query == "" {
		return cloneCountries(all)
	}
	needle := strings.ToLower(query)
	out := make([]restcountries.Country, 0, len(all))
	for _, c := range all {
		if strings.Contains(strings.ToLower(c.DisplayName()), needle) {
			out = append(out, c)
		}
	}
	return out
}

// RegionPeers picks up to limit countries sharing the selected country's
// region, in list order. The selected country always takes one of the slots;
// the others go to the first same-region countries in the list.
func RegionPeers(all []restcountries.Country, selected restcountries.Country, limit int) []restcountries.Country {
	if limit <= 0 {
		return nil
	}
	name := selected.DisplayName()
	found := false
	for _, c := range all {
		if c.DisplayName() == name && c.Region == selected.Region {
			found = true
			break
		}
	}

	others := limit - 1
	if !found {
		// Not part of the list; it is still charted, ahead of its peers.
		out := []restcountries.Country{selected}
		for _, c := range all {
			if others == 0 {
				break
			}
			if c.Region == selected.Region {
				out = append(out, c)
				others--
			}
		}
		return out
	}

	out := make([]restcountries.Country, 0, limit)
	seenSelected := false
	for _, c := range all {
		if c.Region != selected.Region {
			continue
		}
		if !seenSelected && c.DisplayName() == name {
			out = append(out, c)
			seenSelected = true
		} else if others > 0 {
			out = append(out, c)
			others--
		}
		if seenSelected && others == 0 {
			break
		}
	}
	return out
}

// FindByName returns the first country whose display name equals name.
func FindByName(all []restcountries.Country, name string) (restcountries.Country, bool) {
	for _, c := range all {
		if c.DisplayName() == name {
			return c, true
		}
	}
	return restcountries.Country{}, false
}

func cloneCountries(items []restcountries.Country) []restcountries.Country {
	if len(items) == 0 {
		return nil
	}
	dup := make([]restcountries.Country, len(items))
	copy(dup, items)
	return dup
}
