package geodata

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCitiesSorted(t *testing.T) {
	cities := Cities()
	require.NotEmpty(t, cities)
	assert.True(t, sort.StringsAreSorted(cities))
	assert.Contains(t, cities, "İstanbul")
	assert.Contains(t, cities, "Ankara")
}

func TestDistricts(t *testing.T) {
	districts, ok := Districts("İzmir")
	require.True(t, ok)
	assert.True(t, sort.StringsAreSorted(districts))
	assert.Contains(t, districts, "Bornova")

	_, ok = Districts("Atlantis")
	assert.False(t, ok)
}

func TestLookupsReturnCopies(t *testing.T) {
	first, ok := Districts("Ankara")
	require.True(t, ok)
	first[0] = "mutated"

	second, ok := Districts("Ankara")
	require.True(t, ok)
	assert.NotEqual(t, "mutated", second[0])
}
