package lp

import (
	"fmt"
	"math"
)

// col is one decision variable: cost coefficient and [lower, upper] bounds.
type col struct {
	cost  float64
	lower float64
	upper float64 // may be +Inf
}

// row is one constraint: lower ≤ coeffs·x ≤ upper.
type row struct {
	coeffs []float64
	lower  float64 // may be -Inf
	upper  float64 // may be +Inf
}

// Model is a dense minimization LP:
//
//	min  Σ cost_j · x_j
//	s.t. lower_i ≤ a_i·x ≤ upper_i   for every row i
//	     lower_j ≤ x_j ≤ upper_j     for every column j
//
// Columns are added first; every row must then supply one coefficient per
// column. A Model is not safe for concurrent mutation, but distinct models
// may be built and solved concurrently.
type Model struct {
	cols  []col
	rows  []row
	start []float64 // optional warm-start point, len == len(cols)
}

// NewModel returns an empty model.
func NewModel() *Model { return &Model{} }

// AddCol appends a decision variable and returns its column index.
// lower must be finite; upper may be +Inf for an uncapped variable.
func (m *Model) AddCol(cost, lower, upper float64) int {
	m.cols = append(m.cols, col{cost: cost, lower: lower, upper: upper})

	return len(m.cols) - 1
}

// AddDenseRow appends the constraint lower ≤ coeffs·x ≤ upper.
// Use math.Inf(-1) / math.Inf(1) for one-sided rows and lower == upper for
// an equality. Rows with both bounds infinite are rejected as malformed
// rather than silently dropped.
func (m *Model) AddDenseRow(lower float64, coeffs []float64, upper float64) error {
	if len(coeffs) != len(m.cols) {
		return fmt.Errorf("%w: row has %d coefficients, model has %d columns",
			ErrBadModel, len(coeffs), len(m.cols))
	}
	if math.IsInf(lower, -1) && math.IsInf(upper, 1) {
		return fmt.Errorf("%w: row with no finite bound", ErrBadModel)
	}
	if lower > upper {
		return fmt.Errorf("%w: row bounds inverted [%g,%g]", ErrBadModel, lower, upper)
	}
	for _, a := range coeffs {
		if math.IsNaN(a) || math.IsInf(a, 0) {
			return fmt.Errorf("%w: non-finite row coefficient %g", ErrBadModel, a)
		}
	}
	stored := make([]float64, len(coeffs))
	copy(stored, coeffs)
	m.rows = append(m.rows, row{coeffs: stored, lower: lower, upper: upper})

	return nil
}

// SetStart records a warm-start point, one value per column in AddCol order.
// The point is advisory: the simplex does not consume it, but it becomes the
// captured best-effort assignment when the solver itself fails.
func (m *Model) SetStart(vals []float64) error {
	if len(vals) != len(m.cols) {
		return fmt.Errorf("%w: start has %d values, model has %d columns",
			ErrBadModel, len(vals), len(m.cols))
	}
	m.start = make([]float64, len(vals))
	copy(m.start, vals)

	return nil
}

// NumCols returns the number of decision variables.
func (m *Model) NumCols() int { return len(m.cols) }

// NumRows returns the number of constraint rows.
func (m *Model) NumRows() int { return len(m.rows) }

// validate checks column bounds before solving.
func (m *Model) validate() error {
	for j, c := range m.cols {
		if math.IsNaN(c.cost) || math.IsInf(c.cost, 0) {
			return fmt.Errorf("%w: column %d has non-finite cost %g", ErrBadModel, j, c.cost)
		}
		if math.IsInf(c.lower, 0) || math.IsNaN(c.lower) {
			return fmt.Errorf("%w: column %d lower bound must be finite", ErrBadModel, j)
		}
		if c.upper < c.lower {
			return fmt.Errorf("%w: column %d bounds inverted [%g,%g]", ErrBadModel, j, c.lower, c.upper)
		}
	}

	return nil
}

// objectiveAt returns c·x over the model's true columns.
func (m *Model) objectiveAt(x []float64) float64 {
	var obj float64
	for j, c := range m.cols {
		obj += c.cost * x[j]
	}

	return obj
}

// startOrZero returns the warm-start point if set, else the lower bounds.
func (m *Model) startOrZero() []float64 {
	out := make([]float64, len(m.cols))
	if m.start != nil {
		copy(out, m.start)

		return out
	}
	for j, c := range m.cols {
		out[j] = c.lower
	}

	return out
}
