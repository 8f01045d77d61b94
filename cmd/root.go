package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	cfgpkg "github.com/KaramelBytes/legends-cli/internal/config"
	"github.com/spf13/cobra"
)

var (
	// Global flags (override config when set)
	cfgFile      string
	debug        bool
	flagColorBy  string
	flagNoTable  bool
	flagEncoding string
	flagDelim    string

	// Loaded configuration, and the error if the config file did not parse
	cfg        *cfgpkg.Global
	cfgLoadErr error
)

var rootCmd = &cobra.Command{
	Use:   "legends",
	Short: "Legends CLI: goals vs assists dashboard for football player stats",
	Long: `Legends loads a CSV, TSV or XLSX file of player statistics, computes summary
medians and means, and renders an interactive bubble chart of goals against
assists sized by matches played. Serve it, render it to a file, or print the
summary in the terminal.`,
	SilenceUsage: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Initialize configuration before executing commands
	cobra.OnInitialize(loadConfig)
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.legends/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&flagColorBy, "color-by", "", "bubble colour: era or size (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagNoTable, "no-table", false, "hide the raw data table")
	rootCmd.PersistentFlags().StringVar(&flagEncoding, "encoding", "", "text encoding of CSV/TSV input: latin-1, cp1252, utf-8 (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDelim, "delimiter", "", "CSV delimiter: ',', ';', 'tab' (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	cfgLoadErr = err
	if err != nil {
		// Non-fatal: fall back to built-in defaults, flags still apply
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = cfgpkg.Defaults()
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("color-by") && flagColorBy != "" {
		cfg.ColorBy = flagColorBy
	}
	if f.Changed("no-table") && flagNoTable {
		cfg.ShowRawTable = false
	}
	if f.Changed("encoding") && flagEncoding != "" {
		cfg.Encoding = flagEncoding
	}
	if f.Changed("delimiter") && flagDelim != "" {
		cfg.Delimiter = flagDelim
	}
}

// currentConfig returns the effective config, or the built-in defaults when
// no command initializer has run.
func currentConfig() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return cfgpkg.Defaults()
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func parseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	case "|", "pipe":
		return '|', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}
