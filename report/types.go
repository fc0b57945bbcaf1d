// Package report declares the compliance verdict types.
package report

import "github.com/katalvlaran/meltmix/lp"

// Tolerance is the absolute slack, on the weight-fraction scale, granted
// when classifying an estimated endpoint against its spec band. It absorbs
// solver round-off, nothing more.
const Tolerance = 1e-6

// Verdict classifies one element of the finished mixture.
type Verdict string

const (
	// VerdictOK means both estimated endpoints lie inside the band.
	VerdictOK Verdict = "OK"

	// VerdictOut means at least one estimated endpoint escapes the band.
	VerdictOut Verdict = "Out"
)

// ElementCompliance is the verdict for one element. All values are weight
// fractions in [0,1]; rendering converts to percent.
type ElementCompliance struct {
	Element string
	SpecMin float64
	SpecMax float64
	EstMin  float64
	EstMax  float64
	Verdict Verdict
}

// MaterialUsage is one material's row of the usage breakdown.
type MaterialUsage struct {
	ID       string
	MinMass  float64 // smallest mass the formulation allows
	Mass     float64 // assigned mass
	MaxMass  float64 // largest mass the formulation allows
	UnitCost float64
	Cost     float64 // Mass × UnitCost
	Share    float64 // fraction of the batch, in [0,1]
}

// Totals aggregates the whole mixture.
type Totals struct {
	Mass        float64
	Cost        float64
	CostPerUnit float64 // 0 when Mass is 0
}

// Report is the full compliance picture of one solved blend.
type Report struct {
	// Status is carried over from the solve: when StatusInfeasible, the
	// rows below describe the best-effort point, not a feasible charge.
	Status lp.Status

	// Elements, ordered by element symbol.
	Elements []ElementCompliance

	// Materials, in catalog order.
	Materials []MaterialUsage

	Totals Totals
}

// AllOK reports whether every element verdict is VerdictOK.
func (r Report) AllOK() bool {
	for _, e := range r.Elements {
		if e.Verdict != VerdictOK {
			return false
		}
	}

	return true
}

// Hints returns the three remediation classes to suggest when a formulation
// is infeasible. The order carries no ranking.
func Hints() []string {
	return []string{
		"loosen the chemistry bounds of the target specification",
		"increase the available stock of constraining materials",
		"relax the per-material minimum/maximum share limits",
	}
}
