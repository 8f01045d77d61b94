package cmd

import (
	"fmt"

	"github.com/KaramelBytes/legends-cli/internal/analysis"
	"github.com/KaramelBytes/legends-cli/internal/dataset"
	"github.com/KaramelBytes/legends-cli/internal/utils"
	"github.com/spf13/cobra"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats [file]",
	Short: "Print summary statistics for the data file",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dc, err := dashboardConfig(currentConfig(), args)
		if err != nil {
			return err
		}
		ds, err := dataset.Load(dc.Path, dc.Dataset)
		if err != nil {
			return err
		}
		sum := analysis.Summarize(ds, dc.Stats)
		out := cmd.OutOrStdout()
		if statsJSON {
			b, err := prettySummary(ds.Source, sum)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(b))
			return nil
		}
		fmt.Fprint(out, sum.Markdown(ds.Source))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print the summary as JSON")
}

func prettySummary(source string, s analysis.Summary) ([]byte, error) {
	return utils.PrettyJSON(struct {
		Source  string           `json:"source"`
		Summary analysis.Summary `json:"summary"`
	}{source, s})
}
