package cmd

import (
	"fmt"

	"github.com/theirongolddev/riskdash/internal/cli"
	"github.com/theirongolddev/riskdash/internal/config"
	"github.com/theirongolddev/riskdash/internal/portfolio"
	"github.com/theirongolddev/riskdash/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagInitFrom string
	flagInitName string
)

var datasetCmd = &cobra.Command{
	Use:   "dataset",
	Short: "Manage the portfolio dataset store",
}

var datasetInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the store with the sample dataset or a TOML file",
	Args:  cobra.NoArgs,
	RunE:  runDatasetInit,
}

var datasetListCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored datasets",
	Args:  cobra.NoArgs,
	RunE:  runDatasetList,
}

var datasetShowCmd = &cobra.Command{
	Use:   "show [name]",
	Short: "Print a stored dataset as TOML",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDatasetShow,
}

var datasetDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Remove a stored dataset",
	Args:  cobra.ExactArgs(1),
	RunE:  runDatasetDelete,
}

func init() {
	datasetInitCmd.Flags().StringVar(&flagInitFrom, "from", "", "TOML dataset to import instead of the sample")
	datasetInitCmd.Flags().StringVar(&flagInitName, "name", "", "Name to store the dataset under")

	datasetCmd.AddCommand(datasetInitCmd, datasetListCmd, datasetShowCmd, datasetDeleteCmd)
	rootCmd.AddCommand(datasetCmd)
}

// storePath returns the configured store, or the default location.
func storePath() string {
	if cfg.General.DatasetDB != "" {
		return cfg.General.DatasetDB
	}
	return config.DefaultStorePath()
}

func openStore() (*store.Store, error) {
	s, err := store.Open(storePath())
	if err != nil {
		return nil, fmt.Errorf("opening dataset store: %w", err)
	}
	return s, nil
}

func runDatasetInit(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	d := portfolio.Sample()
	if flagInitFrom != "" {
		var err error
		d, err = portfolio.LoadFile(flagInitFrom)
		if err != nil {
			return err
		}
	}
	if flagInitName != "" {
		d.Name = flagInitName
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.SaveDataset(d); err != nil {
		return err
	}

	fmt.Fprintf(out, "  Stored %q (%d records) in %s\n", d.Name, len(d.Records), storePath())
	if cfg.General.DatasetDB == "" {
		fmt.Fprintf(out, "  Use it with: riskdash --dataset-db %s --dataset %s\n", storePath(), d.Name)
	}
	return nil
}

func runDatasetList(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	infos, err := s.ListDatasets()
	if err != nil {
		return err
	}
	if len(infos) == 0 {
		fmt.Fprintln(out, "\n  No datasets stored. Run `riskdash dataset init` to add the sample.")
		return nil
	}

	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{
			info.Name,
			cli.FormatNumber(int64(info.Records)),
			info.SavedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	fmt.Fprintln(out)
	fmt.Fprint(out, cli.RenderTable(cli.Table{
		Title:   storePath(),
		Headers: []string{"Dataset", "Records", "Saved"},
		Rows:    rows,
	}))
	return nil
}

func runDatasetShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	name := cfg.General.DatasetName
	if len(args) == 1 {
		name = args[0]
	}
	if name == "" {
		name = portfolio.SampleName
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	d, err := s.LoadDataset(name)
	if err != nil {
		return err
	}
	return portfolio.Encode(out, d)
}

func runDatasetDelete(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.DeleteDataset(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(out, "  Deleted %q\n", args[0])
	return nil
}
