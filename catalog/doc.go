// Package catalog models the purchasable raw materials of a melt shop and
// the chemistry targets a finished charge must satisfy.
//
// 🚀 What lives here?
//
//	• Material  – one purchasable input: unit cost, stock cap, allowed share
//	  of the batch, and an interval chemistry (low/high weight fraction per
//	  element) that captures compositional uncertainty
//	• Catalog   – validated, ordered, immutable collection of materials with
//	  lookup by ID; the material order is the canonical column order used by
//	  every downstream formulation
//	• ChargeSpec – per-element target bands plus optional category
//	  floor/ceiling aggregate limits
//	• CurrentHeat – weight and measured point chemistry of an in-process heat
//
// ✨ Conventions:
//
//   - All stored chemistry and share values are weight fractions in [0,1].
//     Percent-to-fraction normalization happens at the configuration
//     boundary, never here.
//   - Validation is strict and up-front: a malformed material fails catalog
//     construction with ErrInvalidEntry before any solve is attempted.
//   - Everything is an immutable value after construction; independent
//     solves may share a Catalog freely across goroutines.
//
// ⚙️ Usage:
//
//	cat, err := catalog.New([]catalog.Material{{
//	    ID:       "scrap",
//	    UnitCost: 180,
//	    StockCap: 40000,
//	    FractionMax: 1,
//	    ChemistryLow:  map[string]float64{"C": 0.001},
//	    ChemistryHigh: map[string]float64{"C": 0.002},
//	    Category: "returns",
//	}})
//
// Errors: see types.go — all wrap ErrInvalidEntry so callers can branch on
// a single sentinel.
package catalog
