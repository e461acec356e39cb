// Package geodata provides static province/district lookups for delivery
// addresses. The tables are built once at init and are read-only afterwards.
package geodata

import "sort"

var cityNames []string

func init() {
	cityNames = make([]string, 0, len(districtsByCity))
	for city := range districtsByCity {
		cityNames = append(cityNames, city)
	}
	sort.Strings(cityNames)

	for _, districts := range districtsByCity {
		sort.Strings(districts)
	}
}

// Cities returns all known city names in alphabetical order.
func Cities() []string {
	out := make([]string, len(cityNames))
	copy(out, cityNames)
	return out
}

// Districts returns the districts of a city in alphabetical order.
// The second return value is false when the city is unknown.
func Districts(city string) ([]string, bool) {
	districts, ok := districtsByCity[city]
	if !ok {
		return nil, false
	}
	out := make([]string, len(districts))
	copy(out, districts)
	return out, true
}
