package curated

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Local-Flavor-Backend/domain"
)

func TestForCity(t *testing.T) {
	naples := ForCity("naples")
	require.Len(t, naples, 3)

	names := []string{naples[0].Name, naples[1].Name, naples[2].Name}
	assert.ElementsMatch(t, []string{"Pizza Margherita", "Pasta alla Genovese", "Sfogliatella"}, names)

	for _, r := range naples {
		assert.Equal(t, domain.SourceCurated, r.SourceType)
		assert.True(t, r.IsApproved)
		assert.Equal(t, ID(r.Name).String(), r.ID)
	}

	assert.Empty(t, ForCity("Atlantis"))
}

func TestAll_ReturnsCopies(t *testing.T) {
	first := All()
	first[0].Name = "changed"

	assert.NotEqual(t, "changed", All()[0].Name)
	assert.Len(t, All(), len(entries))
}

func TestRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	picked := Random(3, rng)
	require.Len(t, picked, 3)

	seen := map[string]bool{}
	for _, r := range picked {
		assert.False(t, seen[r.ID], "duplicate pick %s", r.Name)
		seen[r.ID] = true
	}

	assert.Len(t, Random(1000, rng), len(entries))
}
