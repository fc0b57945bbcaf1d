package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meltmix/catalog"
)

// validMaterial returns a well-formed material for mutation in tests.
func validMaterial(id string) catalog.Material {
	return catalog.Material{
		ID:            id,
		UnitCost:      100,
		StockCap:      5000,
		FractionMin:   0,
		FractionMax:   1,
		ChemistryLow:  map[string]float64{"C": 0.001},
		ChemistryHigh: map[string]float64{"C": 0.002},
		Category:      "steel",
	}
}

// TestNew_Valid verifies construction, ordering and lookup on a good catalog.
func TestNew_Valid(t *testing.T) {
	cat, err := catalog.New([]catalog.Material{validMaterial("a"), validMaterial("b")})
	require.NoError(t, err)

	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, []string{"a", "b"}, cat.IDs(), "insertion order must be preserved")

	m, err := cat.Material("b")
	require.NoError(t, err)
	assert.Equal(t, "b", m.ID)

	_, err = cat.Material("zzz")
	assert.ErrorIs(t, err, catalog.ErrMaterialNotFound)
}

// TestNew_Invalid exercises every validation failure and checks that each
// wraps both its detail sentinel and the umbrella ErrInvalidEntry.
func TestNew_Invalid(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*catalog.Material)
		wantErr error
	}{
		{"empty id", func(m *catalog.Material) { m.ID = "" }, catalog.ErrEmptyID},
		{"negative cost", func(m *catalog.Material) { m.UnitCost = -1 }, catalog.ErrBadCost},
		{"negative stock", func(m *catalog.Material) { m.StockCap = -5 }, catalog.ErrBadStock},
		{"no chemistry", func(m *catalog.Material) { m.ChemistryLow, m.ChemistryHigh = nil, nil }, catalog.ErrMissingChemistry},
		{"fraction min>max", func(m *catalog.Material) { m.FractionMin, m.FractionMax = 0.8, 0.2 }, catalog.ErrBadFraction},
		{"fraction above one", func(m *catalog.Material) { m.FractionMax = 1.5 }, catalog.ErrBadFraction},
		{"negative fraction", func(m *catalog.Material) { m.FractionMin = -0.1 }, catalog.ErrBadFraction},
		{"inverted chemistry", func(m *catalog.Material) { m.ChemistryLow["C"] = 0.01 }, catalog.ErrBadChemistry},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMaterial("m")
			tc.mutate(&m)

			_, err := catalog.New([]catalog.Material{m})
			assert.ErrorIs(t, err, tc.wantErr, "detail sentinel")
			assert.ErrorIs(t, err, catalog.ErrInvalidEntry, "umbrella sentinel")
		})
	}
}

// TestNew_DuplicateID verifies duplicate detection across entries.
func TestNew_DuplicateID(t *testing.T) {
	_, err := catalog.New([]catalog.Material{validMaterial("x"), validMaterial("x")})
	assert.ErrorIs(t, err, catalog.ErrDuplicateID)
	assert.ErrorIs(t, err, catalog.ErrInvalidEntry)
}

// TestCategoryMembers verifies tag matching, including the untagged case.
func TestCategoryMembers(t *testing.T) {
	a := validMaterial("a") // steel
	b := validMaterial("b")
	b.Category = "returns"
	c := validMaterial("c")
	c.Category = ""

	cat, err := catalog.New([]catalog.Material{a, b, c})
	require.NoError(t, err)

	assert.Equal(t, []int{0}, cat.CategoryMembers("steel"))
	assert.Equal(t, []int{1}, cat.CategoryMembers("returns"))
	assert.Nil(t, cat.CategoryMembers("slag"), "unknown tag matches nothing")
	assert.Nil(t, cat.CategoryMembers(""), "empty tag matches nothing")
}

// TestChemRange verifies interval lookup with absent elements defaulting to zero.
func TestChemRange(t *testing.T) {
	m := validMaterial("m")

	assert.Equal(t, catalog.Range{Min: 0.001, Max: 0.002}, m.ChemRange("C"))
	assert.Equal(t, catalog.Range{}, m.ChemRange("Mn"), "absent element is the zero interval")
}

// TestRangeContains verifies inclusive containment with tolerance widening.
func TestRangeContains(t *testing.T) {
	r := catalog.Range{Min: 0.003, Max: 0.004}

	assert.True(t, r.Contains(0.003, 0))
	assert.True(t, r.Contains(0.004, 0))
	assert.False(t, r.Contains(0.0040001, 0))
	assert.True(t, r.Contains(0.0040001, 1e-3), "tolerance widens both sides")
	assert.True(t, r.Contains(0.0029999, 1e-3))
}

// TestChargeSpecValidate verifies band ordering checks and element ordering.
func TestChargeSpecValidate(t *testing.T) {
	spec := catalog.ChargeSpec{ElementBounds: map[string]catalog.Range{
		"Mn": {Min: 0.001, Max: 0.002},
		"C":  {Min: 0.003, Max: 0.004},
	}}
	require.NoError(t, spec.Validate())
	assert.Equal(t, []string{"C", "Mn"}, spec.Elements(), "elements sorted")

	spec.ElementBounds["C"] = catalog.Range{Min: 0.005, Max: 0.004}
	assert.ErrorIs(t, spec.Validate(), catalog.ErrBadBounds)
}

// TestCurrentHeatValidate verifies weight and measured-value checks.
func TestCurrentHeatValidate(t *testing.T) {
	h := catalog.CurrentHeat{Weight: 12000, Measured: map[string]float64{"C": 0.003}}
	require.NoError(t, h.Validate())

	assert.ErrorIs(t, catalog.CurrentHeat{Weight: 0}.Validate(), catalog.ErrBadHeat)

	h.Measured["C"] = -0.1
	assert.ErrorIs(t, h.Validate(), catalog.ErrBadBounds)
}
