// Package config: the Percent scalar, the file schema types and the
// sentinel errors of the YAML boundary.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrRead indicates the configuration file could not be read.
	ErrRead = errors.New("config: cannot read file")

	// ErrParse indicates the file was read but its content is not a valid
	// configuration (YAML syntax, percent syntax or domain validation).
	ErrParse = errors.New("config: cannot parse file")

	// ErrBadPercent indicates a percent value outside [0,100] or one that
	// is not a number at all.
	ErrBadPercent = errors.New("config: percent must be a number in [0,100]")
)

// Percent is a weight fraction that reads as a percent. YAML sources write
// 0.35 or "0.35%" or "35 %"; after unmarshal the Go value is the fraction
// 0.0035 (or 0.35). float64(p) is always in [0,1].
type Percent float64

// UnmarshalYAML implements yaml.Unmarshaler. Accepted forms:
//
//   - bare number:    0.35   → 0.0035
//   - percent string: "35%"  → 0.35 (whitespace before the sign is fine)
//   - null / absent:  0
func (p *Percent) UnmarshalYAML(value *yaml.Node) error {
	if value.Tag == "!!null" {
		*p = 0

		return nil
	}

	s := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(value.Value), "%"))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("%w: %q at line %d", ErrBadPercent, value.Value, value.Line)
	}
	if v < 0 || v > 100 {
		return fmt.Errorf("%w: got %g at line %d", ErrBadPercent, v, value.Line)
	}
	*p = Percent(v / 100)

	return nil
}

// materialEntry is one value of the materials file: a map from material ID
// to this shape. cost and stock are required: a material with a forgotten
// cost key must not silently become free to the optimizer.
//
//	steel-scrap-A:
//	  cost: 2.0     # required
//	  stock: 100000 # required
//	  min: 0%       # optional share floor
//	  max: 100%     # optional share ceiling, defaults to 100%
//	  category: steel
//	  chemistry:
//	    min: {C: 0.05%, Mn: 0.30%}
//	    max: {C: 0.06%, Mn: 0.40%}
type materialEntry struct {
	Cost      *float64 `yaml:"cost"`
	Stock     *float64 `yaml:"stock"`
	Min       Percent  `yaml:"min"`
	Max       *Percent `yaml:"max"`
	Category  string   `yaml:"category"`
	Chemistry struct {
		Min map[string]Percent `yaml:"min"`
		Max map[string]Percent `yaml:"max"`
	} `yaml:"chemistry"`
}

// chargeFile is the charge-specification file.
//
//	min: {C: 0.30%, Mn: 1.20%}
//	max: {C: 0.40%, Mn: 1.60%}
//	min_category: {category: steel, fraction: 50%}
//	max_category: {category: returns, fraction: 35%}
//	seed: {steel-scrap-A: 60%, returns-B: 40%}
type chargeFile struct {
	Min         map[string]Percent `yaml:"min"`
	Max         map[string]Percent `yaml:"max"`
	MinCategory *categoryEntry     `yaml:"min_category"`
	MaxCategory *categoryEntry     `yaml:"max_category"`
	Seed        map[string]Percent `yaml:"seed"`
}

type categoryEntry struct {
	Category string  `yaml:"category"`
	Fraction Percent `yaml:"fraction"`
}

// heatFile is the in-progress heat snapshot.
//
//	weight: 11850
//	chemistry: {C: 0.25%, Mn: 1.05%}
type heatFile struct {
	Weight    float64            `yaml:"weight"`
	Chemistry map[string]Percent `yaml:"chemistry"`
}
