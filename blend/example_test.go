// Package blend_test provides runnable examples for the two formulation
// entry points. Each is executable via "go test -run Example", showing both
// code and expected output.
package blend_test

import (
	"fmt"

	"github.com/katalvlaran/meltmix/blend"
	"github.com/katalvlaran/meltmix/catalog"
)

// ExampleCharge demonstrates designing a 100 kg batch from two materials.
// The carbon band [0.30%, 0.40%] together with the 50% steel floor pins the
// unique cost optimum at an even split.
func ExampleCharge() {
	// 1) Build the catalog: an expensive high-carbon steel and a cheap
	//    low-carbon return stream. Chemistry values are weight fractions.
	cat, err := catalog.New([]catalog.Material{
		{
			ID: "steel-A", UnitCost: 2, StockCap: 100, FractionMax: 1,
			ChemistryLow:  map[string]float64{"C": 0.005},
			ChemistryHigh: map[string]float64{"C": 0.006},
			Category:      "steel",
		},
		{
			ID: "returns-B", UnitCost: 1, StockCap: 100, FractionMax: 1,
			ChemistryLow:  map[string]float64{"C": 0.001},
			ChemistryHigh: map[string]float64{"C": 0.002},
			Category:      "returns",
		},
	})
	if err != nil {
		fmt.Println("catalog:", err)
		return
	}

	// 2) State the target: carbon inside [0.3%, 0.4%], at least half steel.
	spec := catalog.ChargeSpec{
		ElementBounds: map[string]catalog.Range{"C": {Min: 0.003, Max: 0.004}},
		Floor:         &catalog.CategoryBound{Category: "steel", Fraction: 0.5},
	}

	// 3) Solve for 100 kg, seeding from the shop's nominal 50/50 recipe.
	res, err := blend.Charge(cat, spec, 100, blend.Recipe{"steel-A": 0.5, "returns-B": 0.5}, nil)
	if err != nil {
		fmt.Println("charge:", err)
		return
	}

	// 4) Print the design. Status is Optimal: a compliant charge exists.
	fmt.Printf("status=%s\n", res.Status)
	fmt.Printf("steel-A=%.1f kg, returns-B=%.1f kg, cost=%.2f\n",
		res.Assignment["steel-A"], res.Assignment["returns-B"], res.Cost)
	// Output:
	// status=Optimal
	// steel-A=50.0 kg, returns-B=50.0 kg, cost=150.00
}

// ExampleAddition demonstrates the correction path on a heat that is
// already inside its band: the cheapest fix is to add nothing.
func ExampleAddition() {
	// 1) One additive on the shelf: nearly pure carbon.
	cat, err := catalog.New([]catalog.Material{{
		ID: "carbon", UnitCost: 5, StockCap: 500, FractionMax: 1,
		ChemistryLow:  map[string]float64{"C": 0.99},
		ChemistryHigh: map[string]float64{"C": 0.99},
	}})
	if err != nil {
		fmt.Println("catalog:", err)
		return
	}

	// 2) The lab measured 0.30% carbon; the spec wants [0.28%, 0.32%].
	spec := catalog.ChargeSpec{
		ElementBounds: map[string]catalog.Range{"C": {Min: 0.0028, Max: 0.0032}},
	}
	heat := catalog.CurrentHeat{Weight: 12000, Measured: map[string]float64{"C": 0.003}}

	// 3) Solve. An in-spec heat needs the all-zero addition at zero cost.
	res, err := blend.Addition(cat, spec, heat, nil)
	if err != nil {
		fmt.Println("addition:", err)
		return
	}
	fmt.Printf("status=%s, carbon=%.1f kg, cost=%.2f\n",
		res.Status, res.Assignment["carbon"], res.Cost)
	// Output: status=Optimal, carbon=0.0 kg, cost=0.00
}
