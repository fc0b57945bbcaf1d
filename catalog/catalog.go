package catalog

import (
	"fmt"
	"sort"
)

// Catalog is a validated, ordered collection of materials.
//
// The insertion order of materials is preserved and used as the canonical
// column order by every formulation built on top of the catalog, so a given
// catalog always produces the same variable layout. A Catalog is immutable
// after construction and safe to share across concurrent solves.
type Catalog struct {
	materials []Material
	index     map[string]int // ID → position in materials
}

// New validates every material and assembles a Catalog.
//
// Validation (fail fast, in order, per material):
//  1. ID must be non-empty and unique (ErrEmptyID, ErrDuplicateID).
//  2. UnitCost ≥ 0 (ErrBadCost).
//  3. StockCap ≥ 0 (ErrBadStock).
//  4. At least one chemistry endpoint present (ErrMissingChemistry).
//  5. 0 ≤ FractionMin ≤ FractionMax ≤ 1 (ErrBadFraction).
//  6. 0 ≤ ChemistryLow[e] ≤ ChemistryHigh[e] for every element (ErrBadChemistry).
//
// Every returned error wraps both the detail sentinel and ErrInvalidEntry.
// Complexity: O(M·E) for M materials over E elements.
func New(materials []Material) (*Catalog, error) {
	c := &Catalog{
		materials: make([]Material, 0, len(materials)),
		index:     make(map[string]int, len(materials)),
	}
	for _, m := range materials {
		if err := validateMaterial(m); err != nil {
			return nil, err
		}
		if _, dup := c.index[m.ID]; dup {
			return nil, wrapMat(ErrDuplicateID, m.ID)
		}
		c.index[m.ID] = len(c.materials)
		c.materials = append(c.materials, m)
	}

	return c, nil
}

// Len returns the number of materials in the catalog.
func (c *Catalog) Len() int { return len(c.materials) }

// Materials returns the materials in canonical (insertion) order.
// The returned slice is a copy; mutating it does not affect the catalog.
func (c *Catalog) Materials() []Material {
	out := make([]Material, len(c.materials))
	copy(out, c.materials)

	return out
}

// At returns the material at canonical position i.
func (c *Catalog) At(i int) Material { return c.materials[i] }

// Material looks a material up by ID.
func (c *Catalog) Material(id string) (Material, error) {
	i, ok := c.index[id]
	if !ok {
		return Material{}, wrapMat(ErrMaterialNotFound, id)
	}

	return c.materials[i], nil
}

// IDs returns the material IDs in canonical order.
func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.materials))
	for i, m := range c.materials {
		ids[i] = m.ID
	}

	return ids
}

// CategoryMembers returns the canonical indices of all materials tagged with
// the given category. Empty category matches nothing.
func (c *Catalog) CategoryMembers(category string) []int {
	if category == "" {
		return nil
	}
	var members []int
	for i, m := range c.materials {
		if m.Category == category {
			members = append(members, i)
		}
	}

	return members
}

// validateMaterial applies the per-material invariants listed on New.
func validateMaterial(m Material) error {
	if m.ID == "" {
		return fmt.Errorf("%w (%w)", ErrEmptyID, ErrInvalidEntry)
	}
	if m.UnitCost < 0 {
		return wrapMat(ErrBadCost, m.ID)
	}
	if m.StockCap < 0 {
		return wrapMat(ErrBadStock, m.ID)
	}
	if len(m.ChemistryLow) == 0 && len(m.ChemistryHigh) == 0 {
		return wrapMat(ErrMissingChemistry, m.ID)
	}
	if m.FractionMin < 0 || m.FractionMin > m.FractionMax || m.FractionMax > 1 {
		return wrapMat(ErrBadFraction, m.ID)
	}
	// Each element's interval must be ordered and non-negative. Elements
	// present in only one endpoint map default the other endpoint to zero,
	// so a lone high endpoint is fine but a lone low endpoint inverts.
	for _, e := range unionKeys(m.ChemistryLow, m.ChemistryHigh) {
		r := m.ChemRange(e)
		if r.Min < 0 || r.Min > r.Max {
			return fmt.Errorf("%w: material %q element %q [%g,%g] (%w)",
				ErrBadChemistry, m.ID, e, r.Min, r.Max, ErrInvalidEntry)
		}
	}

	return nil
}

// wrapMat decorates a detail sentinel with the material ID and the umbrella
// ErrInvalidEntry sentinel.
func wrapMat(sentinel error, id string) error {
	return fmt.Errorf("%w: material %q (%w)", sentinel, id, ErrInvalidEntry)
}

// wrapElem decorates a detail sentinel with element context.
func wrapElem(sentinel error, e string, r Range) error {
	return fmt.Errorf("%w: element %q [%g,%g]", sentinel, e, r.Min, r.Max)
}

// wrapf decorates a detail sentinel with free-form context.
func wrapf(sentinel error, format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{sentinel}, args...)...)
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// unionKeys returns the sorted union of the key sets of a and b.
func unionKeys(a, b map[string]float64) []string {
	seen := make(map[string]struct{}, len(a)+len(b))
	for k := range a {
		seen[k] = struct{}{}
	}
	for k := range b {
		seen[k] = struct{}{}
	}

	return sortedKeys(seen)
}
