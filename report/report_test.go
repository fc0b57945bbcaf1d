package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/meltmix/blend"
	"github.com/katalvlaran/meltmix/catalog"
	"github.com/katalvlaran/meltmix/lp"
	"github.com/katalvlaran/meltmix/report"
)

const delta = 1e-9

func fixtureCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New([]catalog.Material{
		{
			ID: "steel-A", UnitCost: 2, StockCap: 100, FractionMax: 1,
			ChemistryLow:  map[string]float64{"C": 0.005},
			ChemistryHigh: map[string]float64{"C": 0.006},
			Category:      "steel",
		},
		{
			ID: "returns-B", UnitCost: 1, StockCap: 100, FractionMin: 0.1, FractionMax: 0.8,
			ChemistryLow:  map[string]float64{"C": 0.001},
			ChemistryHigh: map[string]float64{"C": 0.002},
			Category:      "returns",
		},
	})
	require.NoError(t, err)

	return cat
}

func fixtureSpec() catalog.ChargeSpec {
	return catalog.ChargeSpec{
		ElementBounds: map[string]catalog.Range{"C": {Min: 0.003, Max: 0.004}},
	}
}

// TestEvaluateCharge_Compliant checks verdicts, totals and per-material rows
// on the known 50/50 optimum.
func TestEvaluateCharge_Compliant(t *testing.T) {
	cat := fixtureCatalog(t)
	res := blend.Result{
		Status:     lp.StatusOptimal,
		Assignment: map[string]float64{"steel-A": 50, "returns-B": 50},
		Cost:       150,
	}

	r := report.EvaluateCharge(cat, fixtureSpec(), 100, res)

	require.Len(t, r.Elements, 1)
	e := r.Elements[0]
	assert.Equal(t, "C", e.Element)
	assert.InDelta(t, 0.003, e.EstMin, delta)
	assert.InDelta(t, 0.004, e.EstMax, delta)
	assert.Equal(t, report.VerdictOK, e.Verdict, "band edges are inside, inclusive")
	assert.True(t, r.AllOK())

	assert.InDelta(t, 100, r.Totals.Mass, delta)
	assert.InDelta(t, 150, r.Totals.Cost, delta)
	assert.InDelta(t, 1.5, r.Totals.CostPerUnit, delta)

	require.Len(t, r.Materials, 2)
	b := r.Materials[1]
	assert.Equal(t, "returns-B", b.ID)
	assert.InDelta(t, 10, b.MinMass, delta, "FractionMin × weight")
	assert.InDelta(t, 80, b.MaxMass, delta, "FractionMax × weight below stock")
	assert.InDelta(t, 50, b.Cost, delta)
	assert.InDelta(t, 0.5, b.Share, delta)
}

// TestEvaluateCharge_OutVerdict checks that escaping endpoints flip the
// verdict while totals still aggregate.
func TestEvaluateCharge_OutVerdict(t *testing.T) {
	cat := fixtureCatalog(t)
	res := blend.Result{
		Status:     lp.StatusInfeasible,
		Assignment: map[string]float64{"steel-A": 100, "returns-B": 0},
		Cost:       200,
	}

	r := report.EvaluateCharge(cat, fixtureSpec(), 100, res)

	require.Len(t, r.Elements, 1)
	assert.Equal(t, report.VerdictOut, r.Elements[0].Verdict)
	assert.False(t, r.AllOK())
	assert.InDelta(t, 0.005, r.Elements[0].EstMin, delta, "pure steel-A low endpoint")
}

// TestEvaluateCharge_ToleranceEdge verifies the 1e-6 slack: an endpoint
// just past the band is forgiven, one clearly past is not.
func TestEvaluateCharge_ToleranceEdge(t *testing.T) {
	cat, err := catalog.New([]catalog.Material{{
		ID: "m", UnitCost: 1, StockCap: 1000, FractionMax: 1,
		ChemistryLow:  map[string]float64{"C": 0.0040000005},
		ChemistryHigh: map[string]float64{"C": 0.0040000005},
	}})
	require.NoError(t, err)
	spec := fixtureSpec()

	res := blend.Result{Status: lp.StatusOptimal, Assignment: map[string]float64{"m": 100}}
	r := report.EvaluateCharge(cat, spec, 100, res)
	assert.Equal(t, report.VerdictOK, r.Elements[0].Verdict, "5e-10 over the band is inside tolerance")

	cat2, err := catalog.New([]catalog.Material{{
		ID: "m", UnitCost: 1, StockCap: 1000, FractionMax: 1,
		ChemistryLow:  map[string]float64{"C": 0.00401},
		ChemistryHigh: map[string]float64{"C": 0.00401},
	}})
	require.NoError(t, err)
	r = report.EvaluateCharge(cat2, spec, 100, res)
	assert.Equal(t, report.VerdictOut, r.Elements[0].Verdict)
}

// TestEvaluate_ZeroMass verifies the division guards on an all-zero
// assignment: zero cost-per-unit and zero shares, no panic.
func TestEvaluate_ZeroMass(t *testing.T) {
	cat := fixtureCatalog(t)
	res := blend.Result{
		Status:     lp.StatusOptimal,
		Assignment: map[string]float64{"steel-A": 0, "returns-B": 0},
	}

	r := report.EvaluateCharge(cat, fixtureSpec(), 100, res)
	assert.Zero(t, r.Totals.CostPerUnit)
	assert.Zero(t, r.Totals.Mass)

	heat := catalog.CurrentHeat{Weight: 12000, Measured: map[string]float64{"C": 0.003}}
	ra := report.EvaluateAddition(cat, fixtureSpec(), heat, res)
	assert.Zero(t, ra.Totals.CostPerUnit)
	assert.Equal(t, report.VerdictOK, ra.Elements[0].Verdict, "measured 0.30% sits inside the band untouched")
}

// TestEvaluateAddition_BlendsBase verifies the realized-total denominator:
// heat plus addition, not the target weight.
func TestEvaluateAddition_BlendsBase(t *testing.T) {
	cat, err := catalog.New([]catalog.Material{{
		ID: "carbon", UnitCost: 5, StockCap: 1e9, FractionMax: 1,
		ChemistryLow:  map[string]float64{"C": 1.0},
		ChemistryHigh: map[string]float64{"C": 1.0},
	}})
	require.NoError(t, err)

	spec := catalog.ChargeSpec{ElementBounds: map[string]catalog.Range{"C": {Min: 0, Max: 1}}}
	heat := catalog.CurrentHeat{Weight: 900, Measured: map[string]float64{"C": 0.01}}
	res := blend.Result{Status: lp.StatusOptimal, Assignment: map[string]float64{"carbon": 100}, Cost: 500}

	r := report.EvaluateAddition(cat, spec, heat, res)

	// (0.01·900 + 100·1.0) / 1000 = 0.109
	assert.InDelta(t, 0.109, r.Elements[0].EstMin, delta)
	assert.InDelta(t, 0.109, r.Elements[0].EstMax, delta)
	assert.InDelta(t, 0.1, r.Materials[0].Share, delta, "share of the final weight")
	assert.InDelta(t, 500, r.Totals.Cost, delta, "totals cover the addition only")
}

// TestRender_Smoke pins the table surfaces: headers, a data value and the
// verdict text must survive rendering.
func TestRender_Smoke(t *testing.T) {
	cat := fixtureCatalog(t)
	res := blend.Result{
		Status:     lp.StatusOptimal,
		Assignment: map[string]float64{"steel-A": 50, "returns-B": 50},
		Cost:       150,
	}
	r := report.EvaluateCharge(cat, fixtureSpec(), 100, res)

	mats := report.RenderMaterials(r)
	assert.Contains(t, mats, "Material")
	assert.Contains(t, mats, "steel-A")
	assert.Contains(t, mats, "50")

	chem := report.RenderChemistry(r)
	assert.Contains(t, chem, "Element")
	assert.Contains(t, chem, "0.300")
	assert.Contains(t, chem, "OK")

	tot := report.RenderTotals(r)
	assert.Contains(t, tot, "$150.00")
	assert.Contains(t, tot, "$1500.00/t")
}

// TestHints pins the three remediation classes.
func TestHints(t *testing.T) {
	h := report.Hints()
	require.Len(t, h, 3)
	assert.Contains(t, h[0], "chemistry")
	assert.Contains(t, h[1], "stock")
	assert.Contains(t, h[2], "share")
}
