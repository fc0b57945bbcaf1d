// Package blend declares the formulation types, sentinel errors and options
// shared by the charge and addition builders.
package blend

import (
	"errors"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/meltmix/lp"
)

// One-sided row bounds, named for readability at call sites.
var (
	posInf = math.Inf(1)
	negInf = math.Inf(-1)
)

// Sentinel errors for formulation construction. Solve-time infeasibility is
// never an error; it is Result.Status.
var (
	// ErrNilCatalog indicates a nil catalog was passed to a builder.
	ErrNilCatalog = errors.New("blend: catalog is nil")

	// ErrEmptyCatalog indicates a catalog with no materials.
	ErrEmptyCatalog = errors.New("blend: catalog has no materials")

	// ErrBadWeight indicates a non-positive target weight.
	ErrBadWeight = errors.New("blend: target weight must be positive")

	// ErrEmptySeed indicates the nominal recipe covers none of the catalog's
	// materials, so no non-zero starting point can be constructed. Fatal for
	// the charge-design path; the addition path never seeds.
	ErrEmptySeed = errors.New("blend: nominal recipe covers no catalog material")

	// ErrBadRecipe indicates a nominal recipe with a negative fraction; a
	// seed must never carry negative masses.
	ErrBadRecipe = errors.New("blend: recipe fractions must be non-negative")
)

// Recipe is a nominal shop composition: material ID → target fraction of the
// batch. Fractions need not sum to one; Seed rescales.
type Recipe map[string]float64

// Result is the outcome of a solved formulation.
type Result struct {
	// Status is lp.StatusOptimal or lp.StatusInfeasible. When infeasible,
	// Assignment holds the solver's best-effort point: report it, but do
	// not trust it to satisfy any constraint.
	Status lp.Status

	// Assignment maps material ID → assigned mass (≥ 0 when optimal).
	Assignment map[string]float64

	// Cost is the total purchase cost of the assignment.
	Cost float64
}

// Options configures a formulation build and solve.
//   - Logger: structured trace target, passed through to the solver; nil
//     means silent. There is deliberately no process-wide debug switch.
//   - Tolerance / MaxIterations: forwarded to lp.Options.
type Options struct {
	Logger        *zap.Logger
	Tolerance     float64
	MaxIterations int
}

// DefaultOptions returns the options used when nil is passed to a builder.
func DefaultOptions() *Options { return &Options{} }

// normalized returns a filled-in copy; the caller's Options value is never
// written to, so one Options can safely be shared across solves. nil yields
// the defaults.
func (o *Options) normalized() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.Logger == nil {
		out.Logger = zap.NewNop()
	}

	return out
}

// solverOptions projects the blend options onto the solver's.
func (o Options) solverOptions() *lp.Options {
	return &lp.Options{
		Tolerance:     o.Tolerance,
		MaxIterations: o.MaxIterations,
		Logger:        o.Logger,
	}
}
