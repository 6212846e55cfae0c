package cmd

import (
	"fmt"

	"github.com/theirongolddev/riskdash/internal/cli"
	"github.com/theirongolddev/riskdash/internal/portfolio"

	"github.com/spf13/cobra"
)

var trendsCmd = &cobra.Command{
	Use:   "trends",
	Short: "Performance series with sparklines and statistics",
	RunE:  runTrends,
}

func init() {
	rootCmd.AddCommand(trendsCmd)
}

func runTrends(_ *cobra.Command, _ []string) error {
	d := loadDataset().Dataset

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("PERFORMANCE TRENDS  %s", d.Name)))
	fmt.Println()

	months := portfolio.Months(d.Records)
	fmt.Printf("  %d months: %s to %s\n\n", len(months), months[0], months[len(months)-1])

	defaults, approvals, scores := portfolio.Values(d.Records)
	sparks := []string{
		cli.RenderSparkline(defaults),
		cli.RenderSparkline(approvals),
		cli.RenderSparkline(scores),
	}
	decimals := []int{1, 1, 0}

	rows := make([][]string, 0, 3)
	for i, s := range portfolio.Analyze(d.Records).Series() {
		dec := decimals[i]
		rows = append(rows, []string{
			s.Name,
			fmt.Sprintf("%.*f", dec, s.Min),
			fmt.Sprintf("%.*f", dec, s.Max),
			fmt.Sprintf("%.1f", s.Mean),
			fmt.Sprintf("%.*f", dec, s.Last),
			cli.FormatDelta(s.Delta, dec),
			sparks[i],
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Series", "Min", "Max", "Mean", "Last", "Δ", "Trend"},
		Rows:    rows,
	}))

	return nil
}
