// Package catalog defines the material, specification and heat value types
// shared by every blend formulation, together with their validation errors.
//
// This file declares Range, Material, ChargeSpec, CategoryBound, CurrentHeat
// and the sentinel errors raised during catalog construction.
package catalog

import "errors"

// Sentinel errors for catalog construction. Every validation failure wraps
// ErrInvalidEntry, so callers only need errors.Is(err, ErrInvalidEntry) to
// recognize the whole family.
var (
	// ErrInvalidEntry is the umbrella error for any malformed material.
	ErrInvalidEntry = errors.New("catalog: invalid material entry")

	// ErrEmptyID indicates a material with an empty ID string.
	ErrEmptyID = errors.New("catalog: material ID is empty")

	// ErrDuplicateID indicates two materials sharing the same ID.
	ErrDuplicateID = errors.New("catalog: duplicate material ID")

	// ErrBadCost indicates a missing or negative unit cost.
	ErrBadCost = errors.New("catalog: unit cost must be non-negative")

	// ErrBadStock indicates a missing or negative stock cap.
	ErrBadStock = errors.New("catalog: stock cap must be non-negative")

	// ErrMissingChemistry indicates a material without any chemistry range.
	ErrMissingChemistry = errors.New("catalog: material has no chemistry data")

	// ErrBadFraction indicates share limits outside [0,1] or min > max.
	ErrBadFraction = errors.New("catalog: material share limits must satisfy 0 ≤ min ≤ max ≤ 1")

	// ErrBadChemistry indicates a chemistry interval with low > high or a
	// negative endpoint.
	ErrBadChemistry = errors.New("catalog: chemistry interval must satisfy 0 ≤ low ≤ high")

	// ErrMaterialNotFound indicates a lookup for an ID absent from the catalog.
	ErrMaterialNotFound = errors.New("catalog: material not found")

	// ErrBadBounds indicates a ChargeSpec element band with min > max or a
	// negative endpoint.
	ErrBadBounds = errors.New("catalog: element bounds must satisfy 0 ≤ min ≤ max")

	// ErrBadHeat indicates a CurrentHeat with non-positive weight.
	ErrBadHeat = errors.New("catalog: heat weight must be positive")

	// ErrBadCategoryBound indicates a category floor/ceiling with an empty
	// category name or a fraction outside [0,1].
	ErrBadCategoryBound = errors.New("catalog: category bound needs a name and a fraction in [0,1]")
)

// Range is a closed interval of weight fractions [Min, Max].
type Range struct {
	Min float64
	Max float64
}

// Contains reports whether v lies inside the range, inclusive, widened by
// the absolute tolerance tol on both sides.
func (r Range) Contains(v, tol float64) bool {
	return v >= r.Min-tol && v <= r.Max+tol
}

// Material is one purchasable input to a charge.
//
// ChemistryLow and ChemistryHigh map element symbols (e.g. "C", "Mn") to the
// low and high endpoint of the material's composition interval, expressed as
// weight fractions in [0,1]. Elements absent from both maps contribute zero.
type Material struct {
	// ID uniquely identifies the material within its Catalog.
	ID string

	// UnitCost is the purchase cost per unit mass.
	UnitCost float64

	// StockCap is the maximum available mass (hard upper bound on usage).
	StockCap float64

	// FractionMin and FractionMax bound the material's share of the total
	// batch mass, as fractions in [0,1].
	FractionMin float64
	FractionMax float64

	// ChemistryLow / ChemistryHigh are the interval endpoints of the
	// material's composition per element, weight fractions in [0,1].
	ChemistryLow  map[string]float64
	ChemistryHigh map[string]float64

	// Category is an optional tag (e.g. "steel", "returns") referenced by
	// aggregate floor/ceiling constraints. Empty means untagged.
	Category string
}

// ChemRange returns the material's composition interval for element e.
// Elements absent from the chemistry maps yield the zero interval.
func (m Material) ChemRange(e string) Range {
	return Range{Min: m.ChemistryLow[e], Max: m.ChemistryHigh[e]}
}

// CategoryBound is an aggregate limit on the combined share of all materials
// carrying a category tag.
type CategoryBound struct {
	// Category is the tag the bound applies to.
	Category string

	// Fraction is the share of total batch mass, in [0,1].
	Fraction float64
}

// ChargeSpec is the chemistry target for a finished charge.
type ChargeSpec struct {
	// ElementBounds maps element symbols to the target band each element of
	// the finished batch must land in, as weight fractions.
	ElementBounds map[string]Range

	// Floor, when non-nil, requires the named category to make up at least
	// Fraction of the batch (e.g. at least 50% steel-like material).
	Floor *CategoryBound

	// Ceiling, when non-nil, caps the named category's share of the batch
	// (e.g. at most 35% recycled returns).
	Ceiling *CategoryBound
}

// Elements returns the element symbols of the spec in sorted order.
// The sorted order is the canonical row/report order everywhere downstream.
func (s ChargeSpec) Elements() []string { return sortedKeys(s.ElementBounds) }

// Validate checks every element band and category bound of the spec.
func (s ChargeSpec) Validate() error {
	for _, e := range s.Elements() {
		b := s.ElementBounds[e]
		if b.Min < 0 || b.Min > b.Max {
			return wrapElem(ErrBadBounds, e, b)
		}
	}
	for _, cb := range []*CategoryBound{s.Floor, s.Ceiling} {
		if cb == nil {
			continue
		}
		if cb.Category == "" || cb.Fraction < 0 || cb.Fraction > 1 {
			return wrapf(ErrBadCategoryBound, "category=%q fraction=%g", cb.Category, cb.Fraction)
		}
	}

	return nil
}

// CurrentHeat is the state of an in-progress batch awaiting correction.
type CurrentHeat struct {
	// Weight is the current mass of the heat.
	Weight float64

	// Measured maps element symbols to the single measured weight fraction
	// of the heat. A point value, not an interval: the lab gave one number.
	Measured map[string]float64
}

// Validate checks the heat's weight and measured fractions.
func (h CurrentHeat) Validate() error {
	if h.Weight <= 0 {
		return wrapf(ErrBadHeat, "weight=%g", h.Weight)
	}
	for _, e := range sortedKeys(h.Measured) {
		if h.Measured[e] < 0 {
			return wrapf(ErrBadBounds, "measured %s=%g", e, h.Measured[e])
		}
	}

	return nil
}
