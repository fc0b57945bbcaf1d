package config

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/meltmix/blend"
	"github.com/katalvlaran/meltmix/catalog"
)

// LoadMaterials reads a materials file and builds the validated catalog.
// Materials enter the catalog sorted by ID, which fixes the column order of
// every formulation built from it.
func LoadMaterials(path string) (*catalog.Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	return ParseMaterials(raw)
}

// ParseMaterials is LoadMaterials over raw bytes.
func ParseMaterials(raw []byte) (*catalog.Catalog, error) {
	var file map[string]materialEntry
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	ids := make([]string, 0, len(file))
	for id := range file {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	materials := make([]catalog.Material, 0, len(ids))
	for _, id := range ids {
		e := file[id]
		// Absent keys must fail loudly: 0 would mean a free material or an
		// empty shelf, never what the file's author intended.
		if e.Cost == nil {
			return nil, fmt.Errorf("%w: missing cost: %w: material %q (%w)", ErrParse, catalog.ErrBadCost, id, catalog.ErrInvalidEntry)
		}
		if e.Stock == nil {
			return nil, fmt.Errorf("%w: missing stock: %w: material %q (%w)", ErrParse, catalog.ErrBadStock, id, catalog.ErrInvalidEntry)
		}
		fmax := 1.0
		if e.Max != nil {
			fmax = float64(*e.Max)
		}
		materials = append(materials, catalog.Material{
			ID:            id,
			UnitCost:      *e.Cost,
			StockCap:      *e.Stock,
			FractionMin:   float64(e.Min),
			FractionMax:   fmax,
			ChemistryLow:  fractions(e.Chemistry.Min),
			ChemistryHigh: fractions(e.Chemistry.Max),
			Category:      e.Category,
		})
	}

	cat, err := catalog.New(materials)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return cat, nil
}

// LoadCharge reads a charge-specification file: the element bands with
// optional category bounds, plus the nominal recipe used to seed the solve.
func LoadCharge(path string) (catalog.ChargeSpec, blend.Recipe, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return catalog.ChargeSpec{}, nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	return ParseCharge(raw)
}

// ParseCharge is LoadCharge over raw bytes.
func ParseCharge(raw []byte) (catalog.ChargeSpec, blend.Recipe, error) {
	var file chargeFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return catalog.ChargeSpec{}, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	// One-sided bands are completed: missing floors default to 0, missing
	// ceilings to 1 (the whole batch).
	spec := catalog.ChargeSpec{ElementBounds: make(map[string]catalog.Range)}
	for e, lo := range file.Min {
		hi := 1.0
		if v, ok := file.Max[e]; ok {
			hi = float64(v)
		}
		spec.ElementBounds[e] = catalog.Range{Min: float64(lo), Max: hi}
	}
	for e, hi := range file.Max {
		if _, ok := spec.ElementBounds[e]; !ok {
			spec.ElementBounds[e] = catalog.Range{Max: float64(hi)}
		}
	}
	if file.MinCategory != nil {
		spec.Floor = &catalog.CategoryBound{
			Category: file.MinCategory.Category,
			Fraction: float64(file.MinCategory.Fraction),
		}
	}
	if file.MaxCategory != nil {
		spec.Ceiling = &catalog.CategoryBound{
			Category: file.MaxCategory.Category,
			Fraction: float64(file.MaxCategory.Fraction),
		}
	}
	if err := spec.Validate(); err != nil {
		return catalog.ChargeSpec{}, nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	recipe := make(blend.Recipe, len(file.Seed))
	for id, f := range file.Seed {
		recipe[id] = float64(f)
	}

	return spec, recipe, nil
}

// LoadHeat reads an in-progress heat snapshot.
func LoadHeat(path string) (catalog.CurrentHeat, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return catalog.CurrentHeat{}, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}

	return ParseHeat(raw)
}

// ParseHeat is LoadHeat over raw bytes.
func ParseHeat(raw []byte) (catalog.CurrentHeat, error) {
	var file heatFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return catalog.CurrentHeat{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	heat := catalog.CurrentHeat{Weight: file.Weight, Measured: fractions(file.Chemistry)}
	if err := heat.Validate(); err != nil {
		return catalog.CurrentHeat{}, fmt.Errorf("%w: %v", ErrParse, err)
	}

	return heat, nil
}

// fractions converts a parsed percent map to the plain fraction map the
// domain types carry. A nil input stays nil.
func fractions(in map[string]Percent) map[string]float64 {
	if in == nil {
		return nil
	}
	out := make(map[string]float64, len(in))
	for k, v := range in {
		out[k] = float64(v)
	}

	return out
}
