// Package lp provides a small dense linear-programming model and a solve
// capability with first-class infeasibility handling.
//
// 🚀 What is lp?
//
//	The solving backend behind every meltmix formulation:
//	  • Model – columns with costs and [lower,upper] bounds, dense rows of
//	    the form  lower ≤ a·x ≤ upper  (±Inf one-sided, lower==upper for
//	    equalities, genuinely ranged rows allowed)
//	  • Solve – converts the model to standard form (shift finite column
//	    lower bounds, one slack per inequality, ranged rows split in two,
//	    column upper bounds as rows) and runs gonum's simplex
//	  • Elastic fallback – when the problem is infeasible, a relaxation with
//	    penalized violation columns is solved instead, so callers always
//	    receive a concrete best-effort point alongside StatusInfeasible
//
// ✨ Design rules:
//
//   - Infeasibility is a result state, never an error: branch on
//     Solution.Status, not on err.
//   - Unexpected solver conditions (unbounded, singular bases, …) surface
//     as errors wrapping ErrSolverFailure, with the model's warm-start
//     point captured in the returned Solution when one was provided.
//   - No global state: tracing goes through the *zap.Logger carried by
//     Options.
//
// ⚙️ Usage:
//
//	m := lp.NewModel()
//	x := m.AddCol(2.0, 0, 100) // cost 2, bounds [0,100]
//	y := m.AddCol(1.0, 0, 100)
//	_ = m.AddDenseRow(60, []float64{1, 1}, 60) // x + y == 60
//	sol, err := m.Solve(lp.DefaultOptions())
//	if err != nil { ... }
//	if !sol.IsOptimal() { /* inspect best-effort sol.ColValues */ }
//	_ = sol.ColValues[x] + sol.ColValues[y]
//
// Complexity: standard-form construction is O(rows·cols); the simplex
// itself is exponential worst-case but fast on the small dense blends this
// package exists for.
package lp
