package cmd

import (
	"fmt"

	"github.com/KaramelBytes/legends-cli/internal/analysis"
	"github.com/KaramelBytes/legends-cli/internal/chart"
	cfgpkg "github.com/KaramelBytes/legends-cli/internal/config"
	"github.com/KaramelBytes/legends-cli/internal/dashboard"
	"github.com/KaramelBytes/legends-cli/internal/dataset"
)

// dashboardConfig resolves the data file and the per-stage options from the
// effective config. args holds the optional positional file argument.
func dashboardConfig(c *cfgpkg.Global, args []string) (dashboard.Config, error) {
	path := c.DataPath
	if len(args) > 0 && args[0] != "" {
		path = args[0]
	}
	if path == "" {
		return dashboard.Config{}, fmt.Errorf("no data file given (pass one or set data_path)")
	}

	dopt := dataset.DefaultOptions()
	delim, err := parseDelimiter(c.Delimiter)
	if err != nil {
		return dashboard.Config{}, err
	}
	dopt.Delimiter = delim
	if c.Encoding != "" {
		dopt.Encoding = c.Encoding
	}
	dopt.Sheet = c.SheetName
	if c.SheetIndex > 0 {
		dopt.SheetIndex = c.SheetIndex
	}

	mode, err := chart.ParseColorBy(c.ColorBy)
	if err != nil {
		return dashboard.Config{}, err
	}
	copt := chart.DefaultOptions()
	copt.ColorBy = mode
	if c.MaxDiameter > 0 {
		copt.Scale.MaxDiameter = c.MaxDiameter
	}
	if c.MinDiameter > 0 {
		copt.Scale.MinDiameter = c.MinDiameter
	}
	if copt.Scale.MinDiameter > copt.Scale.MaxDiameter {
		return dashboard.Config{}, fmt.Errorf("min_diameter %.1f exceeds max_diameter %.1f", copt.Scale.MinDiameter, copt.Scale.MaxDiameter)
	}

	return dashboard.Config{
		Path:      path,
		Dataset:   dopt,
		Stats:     analysis.Options{MedianDecimals: c.MedianDecimals},
		Chart:     copt,
		ShowTable: c.ShowRawTable,
	}, nil
}
