package blend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meltmix/catalog"
)

// seedCatalog builds a three-material catalog for seeding tests.
func seedCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	mk := func(id string) catalog.Material {
		return catalog.Material{
			ID: id, UnitCost: 1, StockCap: 1e6, FractionMax: 1,
			ChemistryLow:  map[string]float64{"C": 0.001},
			ChemistryHigh: map[string]float64{"C": 0.002},
		}
	}
	cat, err := catalog.New([]catalog.Material{mk("iron"), mk("returns"), mk("scrap")})
	require.NoError(t, err)

	return cat
}

// TestSeed_RescalesToExactWeight verifies the nominal recipe is scaled so
// the seed total equals the target weight exactly, even when the recipe
// fractions do not sum to one.
func TestSeed_RescalesToExactWeight(t *testing.T) {
	cat := seedCatalog(t)
	// 0.20 + 0.35 + 0.44 = 0.99: the classic shop recipe, deliberately shy
	// of one. Rescaling must absorb the gap.
	recipe := Recipe{"iron": 0.20, "returns": 0.35, "scrap": 0.44}

	seed, err := Seed(recipe, cat, 20000)
	require.NoError(t, err)
	require.Len(t, seed, 3)

	var total float64
	for _, v := range seed {
		total += v
	}
	assert.InDelta(t, 20000, total, 1e-9)

	// Proportions survive the rescale.
	assert.InDelta(t, 20.0/99.0*20000, seed[0], 1e-6)
	assert.InDelta(t, 35.0/99.0*20000, seed[1], 1e-6)
	assert.InDelta(t, 44.0/99.0*20000, seed[2], 1e-6)
}

// TestSeed_PartialCoverage verifies that materials absent from the recipe
// seed at zero while the covered ones absorb the whole weight.
func TestSeed_PartialCoverage(t *testing.T) {
	cat := seedCatalog(t)

	seed, err := Seed(Recipe{"iron": 0.5}, cat, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 1000, seed[0], 1e-9, "sole covered material carries everything")
	assert.Zero(t, seed[1])
	assert.Zero(t, seed[2])
}

// TestSeed_Empty verifies the fatal configuration error: a recipe naming
// nothing in the catalog would make the rescale divide by zero.
func TestSeed_Empty(t *testing.T) {
	cat := seedCatalog(t)

	_, err := Seed(Recipe{"unobtanium": 1}, cat, 1000)
	assert.ErrorIs(t, err, ErrEmptySeed)

	_, err = Seed(nil, cat, 1000)
	assert.ErrorIs(t, err, ErrEmptySeed)

	_, err = Seed(Recipe{"iron": 1}, cat, -5)
	assert.ErrorIs(t, err, ErrBadWeight)
}

// TestSeed_NegativeFraction verifies a negative recipe fraction is fatal
// even when the remaining fractions keep the total positive: the seed must
// never carry a negative mass into the solver's start point.
func TestSeed_NegativeFraction(t *testing.T) {
	cat := seedCatalog(t)

	_, err := Seed(Recipe{"iron": 0.9, "returns": -0.1}, cat, 1000)
	require.ErrorIs(t, err, ErrBadRecipe)
	assert.Contains(t, err.Error(), "returns")

	// Negative fractions for materials outside the catalog contribute no
	// mass and stay harmless.
	seed, err := Seed(Recipe{"iron": 1, "unobtanium": -0.5}, cat, 1000)
	require.NoError(t, err)
	assert.InDelta(t, 1000, seed[0], 1e-9)
}

// TestSeedViolations_Diagnostic white-boxes the informational chemistry
// check: it reports out-of-band elements but must not invent violations for
// a compliant seed.
func TestSeedViolations_Diagnostic(t *testing.T) {
	cat := seedCatalog(t)
	seed, err := Seed(Recipe{"iron": 1}, cat, 1000)
	require.NoError(t, err)

	inBand := catalog.ChargeSpec{ElementBounds: map[string]catalog.Range{
		"C": {Min: 0.001, Max: 0.002},
	}}
	assert.Empty(t, seedViolations(cat, inBand, seed))

	outOfBand := catalog.ChargeSpec{ElementBounds: map[string]catalog.Range{
		"C": {Min: 0.005, Max: 0.006},
	}}
	v := seedViolations(cat, outOfBand, seed)
	require.Len(t, v, 1)
	assert.Contains(t, v[0], "C:")
}
