package blend

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/meltmix/catalog"
)

// Seed builds the warm-start assignment that primes a charge-design solve.
//
// For each catalog material (canonical order): initial = nominal fraction ×
// weight when the recipe names it, 0 otherwise. The whole vector is then
// rescaled by weight/Σ so the seed's total mass equals weight exactly, no
// matter how sloppily the recipe fractions sum.
//
// A negative fraction for a catalog material is rejected with ErrBadRecipe:
// a start point with negative mass is worse than none. A recipe covering
// none of the catalog's materials leaves nothing to rescale (the scale
// factor would divide by zero) and returns ErrEmptySeed.
// Complexity: O(M).
func Seed(recipe Recipe, cat *catalog.Catalog, weight float64) ([]float64, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}
	if weight <= 0 {
		return nil, fmt.Errorf("%w: %g", ErrBadWeight, weight)
	}

	seed := make([]float64, cat.Len())
	var sum float64
	for i := 0; i < cat.Len(); i++ {
		id := cat.At(i).ID
		if recipe[id] < 0 {
			return nil, fmt.Errorf("%w: %s=%g", ErrBadRecipe, id, recipe[id])
		}
		seed[i] = recipe[id] * weight
		sum += seed[i]
	}
	if sum <= 0 {
		return nil, ErrEmptySeed
	}

	scale := weight / sum
	for i := range seed {
		seed[i] *= scale
	}

	return seed, nil
}

// seedViolations evaluates, for diagnostics only, whether the seed already
// satisfies every element band of the spec. It returns one description per
// violated element. The result never gates solving: the seed exists to give
// the solver a sensible starting point, not to be feasible.
func seedViolations(cat *catalog.Catalog, spec catalog.ChargeSpec, seed []float64) []string {
	assignment := make(map[string]float64, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		assignment[cat.At(i).ID] = seed[i]
	}

	var out []string
	for _, e := range spec.Elements() {
		band := spec.ElementBounds[e]
		low, high := ChemInterval(cat, assignment, e, Base{})
		if low < band.Min || high > band.Max {
			out = append(out, fmt.Sprintf("%s: %.4f-%.4f%% vs %.4f-%.4f%%",
				e, low*100, high*100, band.Min*100, band.Max*100))
		}
	}

	return out
}

// logSeed reports the seed composition and its diagnostic chemistry check.
func logSeed(logger *zap.Logger, cat *catalog.Catalog, spec catalog.ChargeSpec, seed []float64) {
	fields := make([]zap.Field, 0, cat.Len())
	for i := 0; i < cat.Len(); i++ {
		if seed[i] > 0 {
			fields = append(fields, zap.Float64(cat.At(i).ID, seed[i]))
		}
	}
	logger.Debug("charge seed", fields...)

	if violations := seedViolations(cat, spec, seed); len(violations) > 0 {
		logger.Debug("seed chemistry out of band (informational)",
			zap.Strings("violations", violations))
	} else {
		logger.Debug("seed chemistry within every band")
	}
}
