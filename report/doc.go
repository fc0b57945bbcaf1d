// Package report turns a solved (or best-effort) blend into a compliance
// verdict and renders it for the console.
//
// 🚀 What lives here?
//
//	• EvaluateCharge / EvaluateAddition – recompute every element's
//	  propagated chemistry interval exactly as the corresponding builder
//	  defined it, classify each element OK/Out within a fixed 1e-6
//	  tolerance, and aggregate totals: mass, cost, cost per unit mass and
//	  per-material share of the batch
//	• RenderMaterials / RenderChemistry / RenderTotals – console tables in
//	  the shape melt-shop operators expect (material usage with min/max
//	  allowed mass; chemistry with spec band vs. estimated band)
//	• Hints – the three remediation classes to print alongside an
//	  infeasible result: loosen chemistry bounds, increase stock, relax
//	  per-material share limits. Deliberately unranked: guessing which one
//	  applies is the metallurgist's call, not ours.
//
// Evaluation performs no mutation and has no failure modes: a zero total
// mass reports zero cost-per-unit instead of dividing by zero, and an
// infeasible input simply produces Out verdicts on the violated elements.
package report
