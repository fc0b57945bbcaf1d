package blend

import "github.com/katalvlaran/meltmix/catalog"

// intervalEnd selects which endpoint of each material's chemistry interval
// a mixture row propagates.
type intervalEnd int

const (
	lowEnd intervalEnd = iota
	highEnd
)

// mixtureRow is the single parametrized mixture-constraint capability shared
// by both formulations: it returns one coefficient per catalog material for
// element e, using the chosen interval endpoint, with shift subtracted from
// every coefficient.
//
// Charge design uses shift = 0 and puts the target band on the row bounds.
// The addition formulation linearizes over the unknown final weight by
// multiplying through, which turns the band bound into a per-coefficient
// shift (endpoint − bound) and moves the fixed heat term to the row bound.
func mixtureRow(cat *catalog.Catalog, e string, end intervalEnd, shift float64) []float64 {
	coeffs := make([]float64, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		r := cat.At(i).ChemRange(e)
		v := r.Min
		if end == highEnd {
			v = r.Max
		}
		coeffs[i] = v - shift
	}

	return coeffs
}

// Base is the fixed, already-molten part of a mixture: zero for charge
// design, the current heat for correction additions.
type Base struct {
	// Mass of the base, 0 when there is none.
	Mass float64

	// Fractions maps element → measured weight fraction of the base.
	Fractions map[string]float64
}

// ChemInterval computes the realized conservative chemistry interval of a
// mixture for element e: both interval endpoints of every material's
// chemistry, weighted by assigned mass, blended with the base, divided by
// the realized total mass. Exactly the quantity the addition builder
// constrains, so compliance evaluation and formulation can never drift
// apart.
//
// A zero total mass yields (0, 0) rather than a division failure.
func ChemInterval(cat *catalog.Catalog, assignment map[string]float64, e string, base Base) (low, high float64) {
	total := base.Mass
	for _, mass := range assignment {
		total += mass
	}

	return ChemIntervalOver(cat, assignment, e, base, total)
}

// ChemIntervalOver is ChemInterval with an explicit denominator. The charge
// formulation divides by the target weight (a constant, since the weight row
// is an equality), so its compliance report must divide by the same constant
// even when evaluating a best-effort point that misses the target.
func ChemIntervalOver(cat *catalog.Catalog, assignment map[string]float64, e string, base Base, total float64) (low, high float64) {
	if total == 0 {
		return 0, 0
	}

	low = base.Fractions[e] * base.Mass
	high = low
	for i := 0; i < cat.Len(); i++ {
		m := cat.At(i)
		mass := assignment[m.ID]
		r := m.ChemRange(e)
		low += mass * r.Min
		high += mass * r.Max
	}

	return low / total, high / total
}
