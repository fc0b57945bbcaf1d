package blend

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/meltmix/catalog"
	"github.com/katalvlaran/meltmix/lp"
)

// BuildAddition formulates the correction-addition program: minimal-cost
// additions that bring the final chemistry of an in-process heat inside the
// target bands.
//
// The final mixture for element e is
//
//	(measured(e)·W + Σ x_i·chem_i(e)) / (W + Σ x_i)
//
// whose denominator contains the decision variables. Multiplying both sides
// of each band inequality by the (positive) total weight linearizes it:
//
//	Σ x_i·(chemLow_i(e)  − band.Min) ≥ (band.Min − measured(e))·W
//	Σ x_i·(chemHigh_i(e) − band.Max) ≤ (band.Max − measured(e))·W
//
// Only the tightening direction is enforced: the heat's measurement is a
// fixed point, not an interval, so the redundant opposite-direction rows of
// the charge formulation have nothing to guard against here. No fraction or
// category rows apply either — additions are bounded by stock alone.
//
// An all-zero optimum is a normal outcome, not a degenerate one: it simply
// means the measured chemistry already satisfies every band.
func BuildAddition(cat *catalog.Catalog, spec catalog.ChargeSpec, heat catalog.CurrentHeat, opts *Options) (*lp.Model, error) {
	o := opts.normalized()

	if err := validateInputs(cat, spec, heat.Weight); err != nil {
		return nil, err
	}
	if err := heat.Validate(); err != nil {
		return nil, err
	}

	m := lp.NewModel()
	n := cat.Len()
	for i := 0; i < n; i++ {
		mat := cat.At(i)
		m.AddCol(mat.UnitCost, 0, mat.StockCap)
	}

	for _, e := range spec.Elements() {
		band := spec.ElementBounds[e]
		measured := heat.Measured[e]

		// Raise the floor: propagate each material's low endpoint.
		low := mixtureRow(cat, e, lowEnd, band.Min)
		if err := m.AddDenseRow((band.Min-measured)*heat.Weight, low, posInf); err != nil {
			return nil, err
		}

		// Hold the ceiling: propagate each material's high endpoint.
		high := mixtureRow(cat, e, highEnd, band.Max)
		if err := m.AddDenseRow(negInf, high, (band.Max-measured)*heat.Weight); err != nil {
			return nil, err
		}
	}

	o.Logger.Debug("addition model built",
		zap.Int("materials", n),
		zap.Int("rows", m.NumRows()),
		zap.Float64("heat_weight", heat.Weight))

	return m, nil
}

// Addition builds and solves the correction-addition program. Semantics
// mirror Charge: infeasibility is a status with a best-effort assignment,
// never an error.
func Addition(cat *catalog.Catalog, spec catalog.ChargeSpec, heat catalog.CurrentHeat, opts *Options) (Result, error) {
	o := opts.normalized()

	m, err := BuildAddition(cat, spec, heat, &o)
	if err != nil {
		return Result{}, err
	}

	sol, err := m.Solve(o.solverOptions())
	if err != nil {
		return Result{}, err
	}

	return toResult(cat, sol), nil
}
