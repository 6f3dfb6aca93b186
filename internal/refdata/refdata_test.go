package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateForCity(t *testing.T) {
	assert.Equal(t, "Maharashtra", StateForCity("Mumbai"))
	assert.Equal(t, "Tamil Nadu", StateForCity("Chennai"))
	assert.Equal(t, "", StateForCity("Atlantis"))
}

func TestCitiesIn(t *testing.T) {
	cities := CitiesIn("Kerala")
	assert.Contains(t, cities, "Kochi")
	assert.Nil(t, CitiesIn("Narnia"))
}

func TestStates_SortedAndComplete(t *testing.T) {
	states := States()
	require.Len(t, states, len(StatesCities))
	for i := 1; i < len(states); i++ {
		assert.Less(t, states[i-1], states[i])
	}
}

func TestBusinessTypeNames_MatchTables(t *testing.T) {
	names := BusinessTypeNames()
	require.Len(t, names, len(BusinessTypes))
	for _, name := range names {
		assert.NotEmpty(t, Subcategories(name), name)
		// every type that generates leads has supporting tables
		if _, ok := CompanyNameTemplates[name]; ok {
			assert.NotEmpty(t, CompanyNameTemplates[name])
		}
	}
	assert.Nil(t, Subcategories("Unknown"))
}

func TestBudgetRanges_Sane(t *testing.T) {
	for typ, r := range BudgetRanges {
		assert.Greater(t, r.Max, r.Min, typ)
		assert.Greater(t, r.Min, 0, typ)
	}
	assert.Greater(t, DefaultBudgetRange.Max, DefaultBudgetRange.Min)
}
