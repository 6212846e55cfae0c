package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/theirongolddev/riskdash/internal/cli"
	"github.com/theirongolddev/riskdash/internal/pipeline"
	"github.com/theirongolddev/riskdash/internal/risk"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	flagFieldValues  = make(map[risk.Field]*string)
	flagApplicantsIn string
	flagJSON         bool
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one applicant from flags or many from a TOML file",
	Example: `  riskdash score --credit-score 650 --income 40000 --employment-years 2 \
    --debt-to-income 0.5 --asset-value 50000 --payment-history 1
  riskdash score --file applicants.toml --json`,
	RunE: runScore,
}

func init() {
	for _, f := range risk.Fields() {
		var v string
		flagFieldValues[f] = &v
		scoreCmd.Flags().StringVar(&v, flagName(f), "", f.Label())
	}
	scoreCmd.Flags().StringVar(&flagApplicantsIn, "file", "", "TOML file of [[applicant]] tables")
	scoreCmd.Flags().BoolVar(&flagJSON, "json", false, "Print results as JSON")
	rootCmd.AddCommand(scoreCmd)
}

// flagName turns a field into its flag name, e.g. "debt-to-income".
func flagName(f risk.Field) string {
	return strings.ReplaceAll(f.SnakeKey(), "_", "-")
}

// scoreOutput is the JSON form of one assessment.
type scoreOutput struct {
	ID                  string   `json:"id"`
	Name                string   `json:"name,omitempty"`
	Score               *int     `json:"score"`
	Level               string   `json:"level"`
	ApprovalProbability *int     `json:"approval_probability"`
	InterestRate        *string  `json:"interest_rate"`
	Errors              []string `json:"errors,omitempty"`
}

func newScoreOutput(name string, r risk.Result) scoreOutput {
	out := scoreOutput{ID: uuid.NewString(), Name: name, Level: r.Level.String()}
	if v, ok := r.Score.Value(); ok {
		approval := r.ApprovalProbability
		rate := r.RateText()
		out.Score = &v
		out.ApprovalProbability = &approval
		out.InterestRate = &rate
	}
	var pe *risk.ParseError
	if errors.As(r.Err, &pe) {
		for _, f := range pe.Fields {
			out.Errors = append(out.Errors, f.Key())
		}
	}
	return out
}

func runScore(cmd *cobra.Command, _ []string) error {
	if flagApplicantsIn != "" {
		for _, f := range risk.Fields() {
			if cmd.Flags().Changed(flagName(f)) {
				return errors.New("--file cannot be combined with field flags")
			}
		}
		return runScoreBatch()
	}

	var in risk.Input
	for _, f := range risk.Fields() {
		in = in.With(f, *flagFieldValues[f])
	}
	if in.IsBlank() {
		return errors.New("no applicant data: set field flags or --file (see --help)")
	}

	r := risk.Evaluate(in)
	if flagJSON {
		return printJSON(newScoreOutput("", r))
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("RISK ASSESSMENT"))
	fmt.Println()

	inputRows := make([][]string, 0, risk.FieldCount+2)
	for _, f := range risk.Fields() {
		v := in.Value(f)
		if v == "" {
			v = "—"
		}
		inputRows = append(inputRows, []string{f.Label(), v, pointsFor(r.Breakdown, f)})
	}
	if r.Score.IsSet() {
		inputRows = append(inputRows,
			[]string{"---"},
			[]string{"Base + total", fmt.Sprintf("%.0f", r.Breakdown.Base), fmt.Sprintf("%.1f", r.Breakdown.Total)},
		)
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "Applicant",
		Headers: []string{"Field", "Value", "Points"},
		Rows:    inputRows,
	}))
	fmt.Println()

	if !r.Score.IsSet() {
		fmt.Println("  Risk Score:  " + r.Score.String() + "  " + cli.RenderLevel(r.Level))
		if r.Err != nil {
			fmt.Println(cli.RenderWarning(r.Err.Error()))
		}
		fmt.Println()
		return nil
	}

	fmt.Printf("  Risk Score:     %s  %s\n", r.Score.String(), cli.RenderLevel(r.Level))
	fmt.Printf("  Approval:       %d%%\n", r.ApprovalProbability)
	fmt.Println(cli.RenderHorizontalBar("               ", float64(r.ApprovalProbability), 100, 30))
	fmt.Printf("  Interest Rate:  %s\n", r.RateText())
	fmt.Println()

	return nil
}

func pointsFor(b risk.Breakdown, f risk.Field) string {
	for _, c := range b.Contributions {
		if c.Field == f {
			return cli.FormatPoints(c.Points)
		}
	}
	return ""
}

func runScoreBatch() error {
	entries, err := pipeline.LoadApplicants(flagApplicantsIn)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return fmt.Errorf("%s: no [[applicant]] tables", flagApplicantsIn)
	}

	progressFn := func(current, total int) {
		if flagQuiet || flagJSON {
			return
		}
		if current%100 == 0 || current == total {
			fmt.Fprintf(os.Stderr, "\r  Scoring %s", cli.RenderProgressBar(current, total, 20))
		}
	}
	scored := pipeline.ScoreBatch(entries, progressFn)
	if !flagQuiet && !flagJSON {
		fmt.Fprintln(os.Stderr)
	}

	if flagJSON {
		out := make([]scoreOutput, len(scored))
		for i, s := range scored {
			out[i] = newScoreOutput(s.Name, s.Result)
		}
		return printJSON(out)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("RISK ASSESSMENTS  %s applicants", cli.FormatNumber(int64(len(scored))))))
	fmt.Println()

	rows := make([][]string, 0, len(scored))
	for _, s := range scored {
		approval := "—"
		if s.Result.Score.IsSet() {
			approval = fmt.Sprintf("%d%%", s.Result.ApprovalProbability)
		}
		rows = append(rows, []string{
			s.Name,
			s.Result.Score.String(),
			s.Result.Level.String(),
			approval,
			s.Result.RateText(),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Applicant", "Score", "Level", "Approval", "Rate"},
		Rows:    rows,
	}))
	fmt.Println()

	sum := pipeline.Summarize(scored)
	for _, l := range []risk.Level{risk.LowRisk, risk.ModerateRisk, risk.HighRisk, risk.NotCalculated} {
		if n := sum.Levels[l]; n > 0 {
			fmt.Printf("  %s  %s\n", cli.RenderLevel(l), cli.FormatNumber(int64(n)))
		}
	}
	fmt.Println()

	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
