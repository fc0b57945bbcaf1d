// Package blend formulates melt-shop blending problems as linear programs:
// from-scratch charge design and minimal-cost correction additions.
//
// 🚀 The two formulations:
//
//	• Charge design (BuildCharge / Charge) – choose one mass per catalog
//	  material so that the batch hits an exact target weight, respects
//	  category floors/ceilings and per-material share limits, and lands
//	  BOTH endpoints of every element's propagated chemistry interval
//	  inside the target band. Objective: minimum purchase cost.
//	• Correction addition (BuildAddition / Addition) – given an in-process
//	  heat with measured point chemistry, choose addition masses so the
//	  final mixture (heat + additions) satisfies the target bands, only in
//	  the tightening direction. An all-zero addition is a perfectly normal
//	  optimum: it means the heat is already on target.
//
// ✨ Interval propagation:
//
//	Each material's chemistry is a [low, high] interval, not a point. Both
//	formulations push both interval endpoints linearly through the mix and
//	constrain the resulting endpoints. This is a deliberately conservative
//	linearization — it ignores correlation between materials' true values
//	and can over-constrain — preserved as-is because melt shops prefer a
//	charge that is certainly in band over one that is probably in band.
//
// ⚙️ Seeding:
//
//	Charge design is primed with a nominal shop recipe (material → target
//	fraction) rescaled so the seed total equals the target weight exactly.
//	A recipe that covers none of the catalog is a configuration error
//	(ErrEmptySeed). The seed's own chemistry compliance is evaluated and
//	logged for diagnostics only — it never gates the solve.
//
// Usage:
//
//	res, err := blend.Charge(cat, spec, 20000, blend.Recipe{
//	    "primary-iron": 0.20, "returns": 0.35, "scrap": 0.44,
//	}, nil)
//	if err != nil { ... }
//	if res.Status == lp.StatusInfeasible { /* report best effort */ }
//
// Errors: see types.go. Infeasibility is NOT among them — it is a status on
// Result, and the accompanying assignment is the least-violating mixture.
package blend
