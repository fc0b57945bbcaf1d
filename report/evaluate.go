package report

import (
	"math"

	"github.com/katalvlaran/meltmix/blend"
	"github.com/katalvlaran/meltmix/catalog"
)

// EvaluateCharge builds the compliance report for a charge-design result.
//
// Chemistry estimates divide by the target weight — the same constant
// denominator the charge builder uses — so the report matches the
// formulation even on a best-effort point that misses the target mass.
// Per-material min/max columns are the formulation's effective limits:
// share bounds scaled by the target weight, capped by stock.
func EvaluateCharge(cat *catalog.Catalog, spec catalog.ChargeSpec, weight float64, res blend.Result) Report {
	r := Report{Status: res.Status}

	for _, e := range spec.Elements() {
		band := spec.ElementBounds[e]
		low, high := blend.ChemIntervalOver(cat, res.Assignment, e, blend.Base{}, weight)
		r.Elements = append(r.Elements, classify(e, band, low, high))
	}

	var totalMass float64
	for i := 0; i < cat.Len(); i++ {
		totalMass += res.Assignment[cat.At(i).ID]
	}
	for i := 0; i < cat.Len(); i++ {
		m := cat.At(i)
		mass := res.Assignment[m.ID]
		r.Materials = append(r.Materials, MaterialUsage{
			ID:       m.ID,
			MinMass:  m.FractionMin * weight,
			Mass:     mass,
			MaxMass:  math.Min(m.StockCap, m.FractionMax*weight),
			UnitCost: m.UnitCost,
			Cost:     mass * m.UnitCost,
			Share:    share(mass, weight),
		})
	}
	r.Totals = totals(cat, res.Assignment)

	return r
}

// EvaluateAddition builds the compliance report for a correction-addition
// result. Chemistry estimates blend the measured heat with the additions
// and divide by the realized final weight, as the addition builder defines.
// Shares are relative to that final weight; totals cover the additions only
// (the heat is already paid for).
func EvaluateAddition(cat *catalog.Catalog, spec catalog.ChargeSpec, heat catalog.CurrentHeat, res blend.Result) Report {
	r := Report{Status: res.Status}
	base := blend.Base{Mass: heat.Weight, Fractions: heat.Measured}

	for _, e := range spec.Elements() {
		band := spec.ElementBounds[e]
		low, high := blend.ChemInterval(cat, res.Assignment, e, base)
		r.Elements = append(r.Elements, classify(e, band, low, high))
	}

	finalWeight := heat.Weight
	for i := 0; i < cat.Len(); i++ {
		finalWeight += res.Assignment[cat.At(i).ID]
	}
	for i := 0; i < cat.Len(); i++ {
		m := cat.At(i)
		mass := res.Assignment[m.ID]
		r.Materials = append(r.Materials, MaterialUsage{
			ID:       m.ID,
			MinMass:  0,
			Mass:     mass,
			MaxMass:  m.StockCap,
			UnitCost: m.UnitCost,
			Cost:     mass * m.UnitCost,
			Share:    share(mass, finalWeight),
		})
	}
	r.Totals = totals(cat, res.Assignment)

	return r
}

// classify applies the fixed tolerance to both estimated endpoints.
func classify(e string, band catalog.Range, low, high float64) ElementCompliance {
	verdict := VerdictOut
	if band.Contains(low, Tolerance) && band.Contains(high, Tolerance) {
		verdict = VerdictOK
	}

	return ElementCompliance{
		Element: e,
		SpecMin: band.Min,
		SpecMax: band.Max,
		EstMin:  low,
		EstMax:  high,
		Verdict: verdict,
	}
}

// totals sums mass and cost over the assignment. Zero mass yields a zero
// cost-per-unit, never a division failure.
func totals(cat *catalog.Catalog, assignment map[string]float64) Totals {
	var t Totals
	for i := 0; i < cat.Len(); i++ {
		m := cat.At(i)
		t.Mass += assignment[m.ID]
		t.Cost += assignment[m.ID] * m.UnitCost
	}
	if t.Mass > 0 {
		t.CostPerUnit = t.Cost / t.Mass
	}

	return t
}

// share guards the zero-denominator case.
func share(mass, total float64) float64 {
	if total == 0 {
		return 0
	}

	return mass / total
}
