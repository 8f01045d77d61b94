package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/legends-cli/internal/dashboard"
	"github.com/KaramelBytes/legends-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	renderOutput string
	renderFormat string
)

var renderCmd = &cobra.Command{
	Use:   "render [file]",
	Short: "Render the dashboard as static HTML, or the chart figure as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := strings.ToLower(strings.TrimSpace(renderFormat))
		if format == "" {
			format = formatFromPath(renderOutput)
		}
		if format != "html" && format != "json" {
			return fmt.Errorf("unsupported --format: %s (use html or json)", renderFormat)
		}
		dc, err := dashboardConfig(currentConfig(), args)
		if err != nil {
			return err
		}
		v, err := dashboard.BuildView(dc)
		if err != nil {
			return err
		}

		var out []byte
		switch format {
		case "json":
			out, err = utils.PrettyJSON(v.Figure)
		default:
			out, err = dashboard.RenderPage(v)
		}
		if err != nil {
			return err
		}

		if renderOutput == "" || renderOutput == "-" {
			_, err := cmd.OutOrStdout().Write(out)
			return err
		}
		if err := utils.SafeWriteFile(renderOutput, out); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s (%d players, run %s)\n", renderOutput, v.Summary.Count, v.RunID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "output file (default stdout)")
	renderCmd.Flags().StringVar(&renderFormat, "format", "", "output format: html or json (default from -o extension, else html)")
}

func formatFromPath(path string) string {
	if strings.HasSuffix(strings.ToLower(path), ".json") {
		return "json"
	}
	return "html"
}
