package cmd

import (
	"fmt"
	"strconv"

	"github.com/theirongolddev/riskdash/internal/cli"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Portfolio metric cards and monthly performance",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	result := loadDataset()
	d := result.Dataset

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("LOAN PORTFOLIO  %s", d.Name)))
	fmt.Println()

	rows := make([][]string, 0, 4)
	for _, c := range d.Cards() {
		rows = append(rows, []string{c.Label, c.Value})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Summary",
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	fmt.Println()

	perf := make([][]string, 0, len(d.Records))
	for _, r := range d.Records {
		perf = append(perf, []string{
			r.Month,
			cli.FormatPercent(r.DefaultRate),
			cli.FormatPercent(r.ApprovalRate),
			strconv.Itoa(r.AvgRiskScore),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Portfolio Performance Trends",
		Headers: []string{"Month", "Default Rate", "Approval Rate", "Avg Risk Score"},
		Rows:    perf,
	}))

	return nil
}
