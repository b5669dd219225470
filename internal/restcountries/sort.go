package restcountries

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName orders countries by display name using English collation, so
// "Åland Islands" sorts with the A's instead of after "Zimbabwe". The sort is
// stable: countries with equal names keep their payload order.
func SortByName(countries []Country) {
	// Collators keep internal buffers and are not safe for concurrent use.
	col := collate.New(language.English)
	sort.SliceStable(countries, func(i, j int) bool {
		return col.CompareString(countries[i].DisplayName(), countries[j].DisplayName()) < 0
	})
}
