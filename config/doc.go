// Package config is the YAML boundary of meltmix: it reads material
// catalogs, charge specifications and heat snapshots from disk and hands
// back validated domain values.
//
// What this package delivers:
//
//	🚀 One-call loaders
//	  - LoadMaterials(path) → *catalog.Catalog
//	  - LoadCharge(path)    → catalog.ChargeSpec + blend.Recipe
//	  - LoadHeat(path)      → catalog.CurrentHeat
//	  Parse* variants accept raw bytes for embedding and tests.
//
//	✨ Percent normalization
//	  Chemistry and share values in the files are PERCENT (0–100), written
//	  either as bare numbers (0.35) or as strings ("0.35%", "35 %").
//	  The Percent scalar converts them all to 0–1 weight fractions during
//	  unmarshal, so nothing downstream ever sees a percent again.
//
//	⚙️ Validation on load
//	  Every loader runs the domain validation (catalog.New, Validate) before
//	  returning, wrapping failures in ErrParse. A value that made it out of
//	  this package is safe to formulate with.
//
// File shapes are documented on the schema types in types.go.
package config
