package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/meltmix/blend"
	"github.com/katalvlaran/meltmix/config"
	"github.com/katalvlaran/meltmix/lp"
	"github.com/katalvlaran/meltmix/report"
)

var (
	chargeSpecPath string
	chargeWeight   float64
)

var chargeCmd = &cobra.Command{
	Use:   "charge",
	Short: "Design a minimum-cost charge for a target weight",
	Example: `  meltmix charge --materials materials.yaml --charge spec.yaml --weight 20000`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := config.LoadMaterials(materialsPath)
		if err != nil {
			return err
		}
		spec, recipe, err := config.LoadCharge(chargeSpecPath)
		if err != nil {
			return err
		}

		res, err := blend.Charge(cat, spec, chargeWeight, recipe, solveOptions())
		if err != nil {
			return err
		}
		logger.Debug("charge solved",
			zap.Stringer("status", res.Status),
			zap.Float64("cost", res.Cost))

		return printReport(cmd, report.EvaluateCharge(cat, spec, chargeWeight, res))
	},
}

func init() {
	chargeCmd.Flags().StringVarP(&chargeSpecPath, "charge", "c", "charge.yaml", "charge specification YAML file")
	chargeCmd.Flags().Float64VarP(&chargeWeight, "weight", "w", 0, "target batch weight (required)")
	_ = chargeCmd.MarkFlagRequired("weight")
}

// printReport renders the three tables and translates an infeasible status
// into the dedicated exit path, remediation hints attached.
func printReport(cmd *cobra.Command, r report.Report) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, report.RenderMaterials(r))
	fmt.Fprintln(out, report.RenderChemistry(r))
	fmt.Fprintln(out, report.RenderTotals(r))

	if r.Status == lp.StatusInfeasible {
		fmt.Fprintln(out, "\nNo compliant blend exists; the closest achievable one is shown above.")
		fmt.Fprintln(out, "To make the problem solvable you can:")
		for _, h := range report.Hints() {
			fmt.Fprintf(out, "  - %s\n", h)
		}

		return errInfeasible
	}

	return nil
}
