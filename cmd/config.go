package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/legends-cli/internal/chart"
	cfgpkg "github.com/KaramelBytes/legends-cli/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set Legends configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := currentConfig()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "data_path: %s\n", c.DataPath)
		fmt.Fprintf(out, "encoding: %s\n", c.Encoding)
		if c.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %q\n", c.Delimiter)
		}
		if c.SheetName != "" {
			fmt.Fprintf(out, "sheet_name: %s\n", c.SheetName)
		}
		fmt.Fprintf(out, "sheet_index: %d\n", c.SheetIndex)
		fmt.Fprintf(out, "color_by: %s\n", c.ColorBy)
		fmt.Fprintf(out, "median_decimals: %d\n", c.MedianDecimals)
		fmt.Fprintf(out, "max_diameter: %.1f\n", c.MaxDiameter)
		fmt.Fprintf(out, "min_diameter: %.1f\n", c.MinDiameter)
		fmt.Fprintf(out, "show_raw_table: %t\n", c.ShowRawTable)
		fmt.Fprintf(out, "listen_addr: %s\n", c.ListenAddr)
		fmt.Fprintf(out, "cors_origins: %s\n", strings.Join(c.CORSOrigins, ","))
		fmt.Fprintf(out, "read_timeout_sec: %d\n", c.ReadTimeoutSec)
		fmt.Fprintf(out, "write_timeout_sec: %d\n", c.WriteTimeoutSec)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfgLoadErr != nil {
			return fmt.Errorf("refusing to overwrite unreadable config (fix or remove it first): %w", cfgLoadErr)
		}
		c := currentConfig()
		if err := setKey(c, key, val); err != nil {
			return err
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func setKey(c *cfgpkg.Global, key, val string) error {
	switch key {
	case "data_path":
		c.DataPath = val
	case "encoding":
		switch strings.ToLower(val) {
		case "latin-1", "latin1", "iso-8859-1":
			c.Encoding = "latin-1"
		case "cp1252", "windows-1252":
			c.Encoding = "cp1252"
		case "utf-8", "utf8":
			c.Encoding = "utf-8"
		default:
			return fmt.Errorf("invalid encoding: %s (use latin-1, cp1252 or utf-8)", val)
		}
	case "delimiter":
		if _, err := parseDelimiter(val); err != nil {
			return err
		}
		c.Delimiter = val
	case "sheet_name":
		c.SheetName = val
	case "sheet_index":
		i, err := strconv.Atoi(val)
		if err != nil || i < 1 {
			return fmt.Errorf("invalid int for sheet_index: %v", val)
		}
		c.SheetIndex = i
	case "color_by":
		mode, err := chart.ParseColorBy(val)
		if err != nil {
			return err
		}
		c.ColorBy = mode
	case "median_decimals":
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid int for median_decimals: %w", err)
		}
		c.MedianDecimals = i
	case "max_diameter", "min_diameter":
		f, err := strconv.ParseFloat(val, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("invalid float for %s: %v", key, val)
		}
		if key == "max_diameter" {
			c.MaxDiameter = f
		} else {
			c.MinDiameter = f
		}
	case "show_raw_table":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("invalid bool for show_raw_table: %w", err)
		}
		c.ShowRawTable = b
	case "listen_addr":
		c.ListenAddr = val
	case "cors_origins":
		var origins []string
		for _, o := range strings.Split(val, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.CORSOrigins = origins
	case "read_timeout_sec", "write_timeout_sec":
		i, err := strconv.Atoi(val)
		if err != nil || i < 0 {
			return fmt.Errorf("invalid int for %s: %v", key, val)
		}
		if key == "read_timeout_sec" {
			c.ReadTimeoutSec = i
		} else {
			c.WriteTimeoutSec = i
		}
	default:
		return fmt.Errorf("unknown key: %s", key)
	}
	return nil
}
