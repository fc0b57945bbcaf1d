// Package lp declares the model/solution types, sentinel errors and options
// shared by the solve implementation.
package lp

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for model construction and solving.
var (
	// ErrBadModel indicates a malformed model: dimension mismatches,
	// NaN coefficients, inverted row bounds or non-finite column lower bounds.
	ErrBadModel = errors.New("lp: malformed model")

	// ErrSolverFailure indicates the underlying simplex raised an unexpected
	// condition (unbounded, singular basis, …) distinct from infeasibility.
	// The cause is wrapped and can be inspected with errors.Unwrap.
	ErrSolverFailure = errors.New("lp: solver failure")
)

// Status classifies the outcome of a solve. It is a result state carried by
// Solution, never an error: infeasible problems still produce a best-effort
// point callers can report on.
type Status int

const (
	// StatusOptimal means every constraint is satisfied at minimum cost.
	StatusOptimal Status = iota

	// StatusInfeasible means no assignment satisfies all constraints; the
	// accompanying column values are the elastic-relaxation optimum (the
	// least-violating point), not a feasible solution.
	StatusInfeasible
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "Optimal"
	case StatusInfeasible:
		return "Infeasible"
	default:
		return "Unknown"
	}
}

// Solution is the outcome of Model.Solve.
type Solution struct {
	// Status classifies the outcome; see Status.
	Status Status

	// ColValues holds one value per model column, in AddCol order.
	// When Status is StatusInfeasible these are best-effort, not feasible.
	ColValues []float64

	// Objective is the cost c·x of ColValues. For infeasible results it is
	// the cost of the best-effort point, without any violation penalty.
	Objective float64
}

// IsOptimal reports whether the solution satisfies every constraint.
func (s Solution) IsOptimal() bool { return s.Status == StatusOptimal }

// Options configures a solve.
//   - Tolerance: numeric tolerance handed to the simplex and used when
//     checking constant rows (default 1e-10).
//   - MaxIterations: iteration-budget pass-through for backends that bound
//     their pivot count. The dense simplex used here runs to completion;
//     the field is carried so callers can set a budget once and keep it
//     when the backend changes. 0 means no budget.
//   - Logger: structured trace target; nil means no tracing.
type Options struct {
	Tolerance     float64
	MaxIterations int
	Logger        *zap.Logger
}

// DefaultOptions returns the options used when nil is passed to Solve.
func DefaultOptions() *Options {
	return &Options{Tolerance: defaultTolerance}
}

// normalize fills zero values so the solve code never branches on nil.
func (o *Options) normalize() {
	if o.Tolerance <= 0 {
		o.Tolerance = defaultTolerance
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
}

// defaultTolerance matches the simplex's own default working precision.
const defaultTolerance = 1e-10

// elasticPenaltyFactor scales the violation penalty of the elastic
// relaxation relative to the largest column cost. Large enough that the
// relaxation never trades real cost for constraint violation on the
// magnitudes this package sees (masses ≤ 1e6, costs ≤ 1e4).
const elasticPenaltyFactor = 1e6
