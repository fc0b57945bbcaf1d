package lp

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solve minimizes the model's objective subject to all rows and bounds.
//
// Pipeline:
//  1. Validate the model (ErrBadModel on malformed input).
//  2. Convert to standard form  min c·y  s.t.  A·y = b, y ≥ 0:
//     a. shift every column by its finite lower bound (y = x − lower);
//     b. constant rows (all-zero coefficients) are checked directly and
//     dropped — a violated constant row forces StatusInfeasible;
//     c. equality rows pass through; one-sided rows gain a slack column;
//     ranged rows split into a ≤ and a ≥ row, each with its own slack;
//     d. finite column upper bounds become slacked rows;
//     e. columns referenced by no row are fixed at their cheapest bound.
//  3. Run the simplex. On lp.ErrInfeasible, solve the elastic relaxation
//     (violation columns p,q on every row, penalty elasticPenaltyFactor ×
//     the largest cost magnitude) and return its point with
//     StatusInfeasible.
//  4. Any other simplex condition wraps ErrSolverFailure; the returned
//     Solution then carries the model's warm-start point (or the lower
//     bounds) so callers can still render diagnostics.
//
// opts may be nil; see DefaultOptions.
func (m *Model) Solve(opts *Options) (Solution, error) {
	o := opts
	if o == nil {
		o = DefaultOptions()
	}
	o.normalize()

	if err := m.validate(); err != nil {
		return Solution{}, err
	}

	sf, err := m.toStandardForm(o)
	if err != nil {
		return m.failureSolution(), err
	}
	o.Logger.Debug("standard form built",
		zap.Int("cols", m.NumCols()),
		zap.Int("rows", m.NumRows()),
		zap.Int("std_cols", sf.numCols()),
		zap.Int("std_rows", len(sf.rhs)),
		zap.Bool("constant_row_violated", sf.constViolated))

	// Bounds-only model: the minimum is attained column by column.
	if len(sf.rhs) == 0 {
		x, bErr := m.boundsOnlyOptimum()
		if bErr != nil {
			return m.failureSolution(), bErr
		}

		return m.finish(x, sf.constViolated), nil
	}

	y, err := sf.run(o.Tolerance)
	switch {
	case err == nil:
		return m.finish(sf.expand(y), sf.constViolated), nil
	case errors.Is(err, lp.ErrInfeasible):
		o.Logger.Debug("primary solve infeasible, running elastic relaxation")
		y, err = sf.runElastic(o.Tolerance)
		if err != nil {
			return m.failureSolution(), fmt.Errorf("%w: elastic relaxation: %w", ErrSolverFailure, err)
		}

		return m.infeasible(sf.expand(y)), nil
	default:
		return m.failureSolution(), fmt.Errorf("%w: %w", ErrSolverFailure, err)
	}
}

// finish assembles an optimal (or constant-row-infeasible) solution from a
// shifted standard-form point.
func (m *Model) finish(x []float64, constViolated bool) Solution {
	s := Solution{Status: StatusOptimal, ColValues: x, Objective: m.objectiveAt(x)}
	if constViolated {
		s.Status = StatusInfeasible
	}

	return s
}

// infeasible assembles the best-effort solution of an elastic relaxation.
func (m *Model) infeasible(x []float64) Solution {
	return Solution{Status: StatusInfeasible, ColValues: x, Objective: m.objectiveAt(x)}
}

// failureSolution captures the warm-start point so SolverFailure callers can
// still report something concrete.
func (m *Model) failureSolution() Solution {
	x := m.startOrZero()

	return Solution{Status: StatusInfeasible, ColValues: x, Objective: m.objectiveAt(x)}
}

// boundsOnlyOptimum solves a model with no effective rows analytically.
func (m *Model) boundsOnlyOptimum() ([]float64, error) {
	x := make([]float64, len(m.cols))
	for j, c := range m.cols {
		switch {
		case c.cost >= 0:
			x[j] = c.lower
		case math.IsInf(c.upper, 1):
			return nil, fmt.Errorf("%w: column %d is unbounded below in cost", ErrSolverFailure, j)
		default:
			x[j] = c.upper
		}
	}

	return x, nil
}

// stdRow is one standard-form equality a·y (+ slack) = rhs, expressed over
// the original (shifted) columns plus at most one dedicated slack column.
type stdRow struct {
	coeffs []float64 // length nOrig, shared y-space
	rhs    float64
	slack  bool // row owns one +1 slack column
}

// standardForm is the equality-form program handed to the simplex.
type standardForm struct {
	model         *Model
	rows          []stdRow
	rhs           []float64
	fixed         []float64 // per original column: NaN if solved, else fixed y value
	keep          []int     // kept original columns, in order
	constViolated bool
}

// toStandardForm performs steps 2a–2e of Solve.
func (m *Model) toStandardForm(o *Options) (*standardForm, error) {
	n := len(m.cols)
	sf := &standardForm{model: m}

	// 2a) shift row bounds by a·lower.
	lowers := make([]float64, n)
	for j, c := range m.cols {
		lowers[j] = c.lower
	}

	for _, r := range m.rows {
		var shift float64
		allZero := true
		for j, a := range r.coeffs {
			shift += a * lowers[j]
			if a != 0 {
				allZero = false
			}
		}
		lo, hi := r.lower-shift, r.upper-shift

		// 2b) constant row: nothing to optimize, only to check.
		if allZero {
			if 0 < lo-o.Tolerance || 0 > hi+o.Tolerance {
				sf.constViolated = true
			}
			continue
		}

		// 2c) equality, one-sided, or ranged.
		switch {
		case r.lower == r.upper:
			sf.appendRow(r.coeffs, lo, false, false)
		default:
			if !math.IsInf(hi, 1) {
				sf.appendRow(r.coeffs, hi, true, false)
			}
			if !math.IsInf(lo, -1) {
				sf.appendRow(r.coeffs, -lo, true, true)
			}
		}
	}

	// 2d) finite column upper bounds.
	for j, c := range m.cols {
		if math.IsInf(c.upper, 1) {
			continue
		}
		unit := make([]float64, n)
		unit[j] = 1
		sf.appendRow(unit, c.upper-c.lower, true, false)
	}

	// 2e) fix columns referenced by no row.
	sf.fixed = make([]float64, n)
	for j := range sf.fixed {
		sf.fixed[j] = math.NaN()
	}
	for j, c := range m.cols {
		if sf.columnUsed(j) {
			sf.keep = append(sf.keep, j)
			continue
		}
		switch {
		case c.cost >= 0:
			sf.fixed[j] = 0
		case math.IsInf(c.upper, 1):
			return nil, fmt.Errorf("%w: column %d is unbounded below in cost", ErrSolverFailure, j)
		default:
			sf.fixed[j] = c.upper - c.lower
		}
	}

	return sf, nil
}

// appendRow records one standard row. negate flips the coefficient signs
// (used to turn a ≥ row into a ≤ row before slacking).
func (sf *standardForm) appendRow(coeffs []float64, rhs float64, slack, negate bool) {
	stored := make([]float64, len(coeffs))
	for j, a := range coeffs {
		if negate {
			a = -a
		}
		stored[j] = a
	}
	sf.rows = append(sf.rows, stdRow{coeffs: stored, rhs: rhs, slack: slack})
	sf.rhs = append(sf.rhs, rhs)
}

// columnUsed reports whether original column j appears in any standard row.
func (sf *standardForm) columnUsed(j int) bool {
	for _, r := range sf.rows {
		if r.coeffs[j] != 0 {
			return true
		}
	}

	return false
}

// numCols is the standard-form column count: kept originals plus slacks.
func (sf *standardForm) numCols() int {
	nSlack := 0
	for _, r := range sf.rows {
		if r.slack {
			nSlack++
		}
	}

	return len(sf.keep) + nSlack
}

// matrices materializes (c, A, b) with an extra block of extraCols appended
// after the slack columns (used by the elastic relaxation).
func (sf *standardForm) matrices(extraCols int) (c []float64, a *mat.Dense, b []float64) {
	nKeep := len(sf.keep)
	total := sf.numCols() + extraCols
	mRows := len(sf.rows)

	c = make([]float64, total)
	for k, j := range sf.keep {
		c[k] = sf.model.cols[j].cost
	}

	a = mat.NewDense(mRows, total, nil)
	b = make([]float64, mRows)
	slackAt := nKeep
	for i, r := range sf.rows {
		for k, j := range sf.keep {
			a.Set(i, k, r.coeffs[j])
		}
		if r.slack {
			a.Set(i, slackAt, 1)
			slackAt++
		}
		b[i] = r.rhs
	}

	return c, a, b
}

// run solves the standard form and returns the y values of kept columns.
func (sf *standardForm) run(tol float64) ([]float64, error) {
	c, a, b := sf.matrices(0)
	_, x, err := lp.Simplex(c, a, b, tol, nil)
	if err != nil {
		return nil, err
	}

	return x[:len(sf.keep)], nil
}

// runElastic solves  A·y + p − q = b  with p,q ≥ 0 penalized far above any
// real cost, so the optimum is the least-violating point of the original
// program. Always feasible; unboundedness can only come from the original
// columns and is surfaced as an error.
func (sf *standardForm) runElastic(tol float64) ([]float64, error) {
	mRows := len(sf.rows)
	c, a, b := sf.matrices(2 * mRows)

	var maxCost float64
	for _, cc := range sf.model.cols {
		maxCost = math.Max(maxCost, math.Abs(cc.cost))
	}
	penalty := elasticPenaltyFactor * (1 + maxCost)

	base := sf.numCols()
	for i := 0; i < mRows; i++ {
		a.Set(i, base+i, 1)        // p_i
		a.Set(i, base+mRows+i, -1) // q_i
		c[base+i] = penalty
		c[base+mRows+i] = penalty
	}

	_, x, err := lp.Simplex(c, a, b, tol, nil)
	if err != nil {
		return nil, err
	}

	return x[:len(sf.keep)], nil
}

// expand maps kept-column y values back into full x-space, applying fixed
// columns and undoing the lower-bound shift.
func (sf *standardForm) expand(y []float64) []float64 {
	x := make([]float64, len(sf.model.cols))
	for k, j := range sf.keep {
		x[j] = sf.model.cols[j].lower + y[k]
	}
	for j, f := range sf.fixed {
		if !math.IsNaN(f) {
			x[j] = sf.model.cols[j].lower + f
		}
	}

	return x
}
