package blend

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/meltmix/catalog"
	"github.com/katalvlaran/meltmix/lp"
)

// BuildCharge formulates the from-scratch charge-design program:
//
//	min  Σ x_i · cost_i
//	s.t. Σ x_i == weight                           (exact batch weight)
//	     Σ_{i∈floor.Category} x_i ≥ floor.Fraction·weight     (when set and populated)
//	     Σ_{i∈ceil.Category}  x_i ≤ ceil.Fraction·weight      (when set and populated)
//	     band.Min·weight ≤ Σ x_i·chemLow_i(e)  ≤ band.Max·weight   per element e
//	     band.Min·weight ≤ Σ x_i·chemHigh_i(e) ≤ band.Max·weight   per element e
//	     fmin_i·weight ≤ x_i ≤ fmax_i·weight                  per material i
//	     0 ≤ x_i ≤ stock_i                                    (column bounds)
//
// Both endpoints of each material's chemistry interval are propagated and
// both resulting mixture endpoints must land inside the band — see the
// package doc for why this stays deliberately conservative.
//
// The returned model carries the rescaled nominal-recipe seed as its warm
// start. Construction errors (nil/empty catalog, bad weight, malformed
// spec, empty seed) are fatal and occur before any solve.
func BuildCharge(cat *catalog.Catalog, spec catalog.ChargeSpec, weight float64, recipe Recipe, opts *Options) (*lp.Model, error) {
	o := opts.normalized()

	if err := validateInputs(cat, spec, weight); err != nil {
		return nil, err
	}

	seed, err := Seed(recipe, cat, weight)
	if err != nil {
		return nil, err
	}
	logSeed(o.Logger, cat, spec, seed)

	m := lp.NewModel()
	n := cat.Len()
	for i := 0; i < n; i++ {
		mat := cat.At(i)
		m.AddCol(mat.UnitCost, 0, mat.StockCap)
	}

	// Total mass: the charge must hit the target weight exactly, no slack.
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	if err = m.AddDenseRow(weight, ones, weight); err != nil {
		return nil, err
	}

	// Category floor and ceiling, each applied only when the bound is set
	// and at least one material carries the tag.
	if err = addCategoryRow(m, cat, spec.Floor, weight, true, o.Logger); err != nil {
		return nil, err
	}
	if err = addCategoryRow(m, cat, spec.Ceiling, weight, false, o.Logger); err != nil {
		return nil, err
	}

	// Chemistry: both interval endpoints inside the band, per element.
	for _, e := range spec.Elements() {
		band := spec.ElementBounds[e]
		for _, end := range []intervalEnd{lowEnd, highEnd} {
			coeffs := mixtureRow(cat, e, end, 0)
			if err = m.AddDenseRow(band.Min*weight, coeffs, band.Max*weight); err != nil {
				return nil, err
			}
		}
	}

	// Per-material share of the batch.
	for i := 0; i < n; i++ {
		mat := cat.At(i)
		unit := make([]float64, n)
		unit[i] = 1
		if err = m.AddDenseRow(mat.FractionMin*weight, unit, mat.FractionMax*weight); err != nil {
			return nil, err
		}
	}

	if err = m.SetStart(seed); err != nil {
		return nil, err
	}
	o.Logger.Debug("charge model built",
		zap.Int("materials", n),
		zap.Int("rows", m.NumRows()),
		zap.Float64("target_weight", weight))

	return m, nil
}

// Charge builds and solves the charge-design program, mapping the solution
// back onto material IDs. Infeasibility is reported via Result.Status with
// the best-effort assignment attached, never as an error.
func Charge(cat *catalog.Catalog, spec catalog.ChargeSpec, weight float64, recipe Recipe, opts *Options) (Result, error) {
	o := opts.normalized()

	m, err := BuildCharge(cat, spec, weight, recipe, &o)
	if err != nil {
		return Result{}, err
	}

	sol, err := m.Solve(o.solverOptions())
	if err != nil {
		return Result{}, err
	}

	return toResult(cat, sol), nil
}

// addCategoryRow appends one aggregate share row. floor selects ≥ (floor)
// vs ≤ (ceiling). Unset bounds and bounds matching no material are skipped,
// mirroring how a shop config without returns simply has no returns cap.
func addCategoryRow(m *lp.Model, cat *catalog.Catalog, bound *catalog.CategoryBound, weight float64, floor bool, logger *zap.Logger) error {
	if bound == nil {
		return nil
	}
	members := cat.CategoryMembers(bound.Category)
	if len(members) == 0 {
		logger.Debug("category bound matches no material, skipped",
			zap.String("category", bound.Category))

		return nil
	}

	coeffs := make([]float64, cat.Len())
	for _, i := range members {
		coeffs[i] = 1
	}
	limit := bound.Fraction * weight
	if floor {
		return m.AddDenseRow(limit, coeffs, posInf)
	}

	return m.AddDenseRow(negInf, coeffs, limit)
}

// toResult maps solver column values back onto material IDs.
func toResult(cat *catalog.Catalog, sol lp.Solution) Result {
	assignment := make(map[string]float64, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		assignment[cat.At(i).ID] = sol.ColValues[i]
	}

	return Result{Status: sol.Status, Assignment: assignment, Cost: sol.Objective}
}

// validateInputs applies the shared fatal checks of both builders.
func validateInputs(cat *catalog.Catalog, spec catalog.ChargeSpec, weight float64) error {
	if cat == nil {
		return ErrNilCatalog
	}
	if cat.Len() == 0 {
		return ErrEmptyCatalog
	}
	if weight <= 0 {
		return ErrBadWeight
	}

	return spec.Validate()
}
