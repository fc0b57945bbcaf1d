// Package meltmix turns a raw-material catalog and a chemistry target into
// the cheapest furnace charge: from-scratch charge design and in-process
// correction additions for metal-melting operations.
//
// 🚀 What is meltmix?
//
//	A library that formulates melt-shop blending as linear programs and
//	solves them, end to end:
//		• Catalog model: materials with costs, stock caps, share limits and
//		  chemistry ranges (interval chemistry, not point values)
//		• Charge design: pick masses that hit an exact batch weight, honor
//		  category floors/ceilings and land every element inside its band
//		• Correction addition: given a measured in-furnace heat, pick the
//		  minimal-cost additions that bring the final chemistry on target
//		• Compliance reporting: per-element OK/Out verdicts, per-material
//		  usage and cost breakdowns, console tables included
//
// ✨ Why choose meltmix?
//
//   - Infeasibility is an answer, not a crash – you always get the
//     best-effort mixture plus the violated elements, so operators can see
//     what to relax
//   - Conservative by construction – both endpoints of every material's
//     chemistry interval are propagated through the blend
//   - Deterministic – stable material ordering, stable element ordering,
//     reproducible solves
//
// Everything is organized under flat subpackages:
//
//	catalog/ — materials, charge specifications, heats & validation
//	lp/      — dense LP model + simplex solve with elastic fallback
//	blend/   — charge & addition formulations, seeding heuristic
//	report/  — compliance evaluation and table rendering
//	config/  — YAML loaders with percent normalization
//
// Quick taste:
//
//	cat, _ := config.LoadMaterials("materials.yaml")
//	spec, recipe, _ := config.LoadCharge("cm1.yaml")
//	res, _ := blend.Charge(cat, spec, 20000, recipe, nil)
//	rep := report.EvaluateCharge(cat, spec, 20000, res)
//	fmt.Println(report.RenderChemistry(rep))
//
//	go get github.com/katalvlaran/meltmix
package meltmix
