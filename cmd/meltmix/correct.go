package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/meltmix/blend"
	"github.com/katalvlaran/meltmix/config"
	"github.com/katalvlaran/meltmix/report"
)

var (
	correctSpecPath string
	heatPath        string
)

var correctCmd = &cobra.Command{
	Use:   "correct",
	Short: "Compute the cheapest additions that fix an in-progress heat",
	Example: `  meltmix correct --materials materials.yaml --charge spec.yaml --heat heat.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := config.LoadMaterials(materialsPath)
		if err != nil {
			return err
		}
		spec, _, err := config.LoadCharge(correctSpecPath)
		if err != nil {
			return err
		}
		heat, err := config.LoadHeat(heatPath)
		if err != nil {
			return err
		}

		res, err := blend.Addition(cat, spec, heat, solveOptions())
		if err != nil {
			return err
		}
		logger.Debug("correction solved",
			zap.Stringer("status", res.Status),
			zap.Float64("cost", res.Cost))

		return printReport(cmd, report.EvaluateAddition(cat, spec, heat, res))
	},
}

func init() {
	correctCmd.Flags().StringVarP(&correctSpecPath, "charge", "c", "charge.yaml", "charge specification YAML file")
	correctCmd.Flags().StringVar(&heatPath, "heat", "heat.yaml", "current heat snapshot YAML file")
}
