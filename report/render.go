package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Console styling. Verdicts get the treatment operators scan for; the rest
// stays plain so the tables survive log files and narrow terminals.
var (
	cellStyle  = lipgloss.NewStyle().Padding(0, 1)
	headStyle  = lipgloss.NewStyle().Padding(0, 1).Bold(true)
	okStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#4CAF50")).Bold(true)
	outStyle   = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	titleStyle = lipgloss.NewStyle().Bold(true)
)

// RenderMaterials renders the per-material usage table.
func RenderMaterials(r Report) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}

			return cellStyle
		}).
		Headers("Material", "Min (kg)", "Value (kg)", "Max (kg)", "Cost", "% Charge")

	for _, m := range r.Materials {
		t.Row(
			m.ID,
			fmt.Sprintf("%.0f", m.MinMass),
			fmt.Sprintf("%.0f", m.Mass),
			fmt.Sprintf("%.0f", m.MaxMass),
			fmt.Sprintf("%.2f", m.UnitCost),
			fmt.Sprintf("%.1f%%", m.Share*100),
		)
	}

	return t.String()
}

// RenderChemistry renders the per-element compliance table, values in
// percent to match how melt-shop specs are written.
func RenderChemistry(r Report) string {
	verdictCol := len(chemHeaders) - 1
	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headStyle
			}
			if col == verdictCol {
				if r.Elements[row].Verdict == VerdictOK {
					return okStyle
				}

				return outStyle
			}

			return cellStyle
		}).
		Headers(chemHeaders...)

	for _, e := range r.Elements {
		t.Row(
			e.Element,
			fmt.Sprintf("%.3f", e.SpecMin*100),
			fmt.Sprintf("%.3f", e.EstMin*100),
			fmt.Sprintf("%.3f", e.EstMax*100),
			fmt.Sprintf("%.3f", e.SpecMax*100),
			string(e.Verdict),
		)
	}

	return t.String()
}

var chemHeaders = []string{"Element", "Min Spec", "Est. Min", "Est. Max", "Max Spec", "Status"}

// RenderTotals renders the aggregate block: mass, cost and cost per ton.
func RenderTotals(r Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Charge totals"))
	b.WriteString(fmt.Sprintf("\n  Total weight: %.0f kg (%.3f t)", r.Totals.Mass, r.Totals.Mass/1000))
	b.WriteString(fmt.Sprintf("\n  Total cost:   $%.2f", r.Totals.Cost))
	b.WriteString(fmt.Sprintf("\n  Cost per ton: $%.2f/t", r.Totals.CostPerUnit*1000))

	return b.String()
}
