package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	DataPath   string `mapstructure:"data_path" yaml:"data_path"`
	Encoding   string `mapstructure:"encoding" yaml:"encoding"`
	Delimiter  string `mapstructure:"delimiter" yaml:"delimiter"`
	SheetName  string `mapstructure:"sheet_name" yaml:"sheet_name"`
	SheetIndex int    `mapstructure:"sheet_index" yaml:"sheet_index"`

	// Chart and summary
	ColorBy        string  `mapstructure:"color_by" yaml:"color_by"`
	MedianDecimals int     `mapstructure:"median_decimals" yaml:"median_decimals"`
	MaxDiameter    float64 `mapstructure:"max_diameter" yaml:"max_diameter"`
	MinDiameter    float64 `mapstructure:"min_diameter" yaml:"min_diameter"`
	ShowRawTable   bool    `mapstructure:"show_raw_table" yaml:"show_raw_table"`

	// HTTP server
	ListenAddr      string   `mapstructure:"listen_addr" yaml:"listen_addr"`
	CORSOrigins     []string `mapstructure:"cors_origins" yaml:"cors_origins"`
	ReadTimeoutSec  int      `mapstructure:"read_timeout_sec" yaml:"read_timeout_sec"`
	WriteTimeoutSec int      `mapstructure:"write_timeout_sec" yaml:"write_timeout_sec"`
}

// Dir returns ~/.legends.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".legends"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.legends/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		dir, err := Dir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("LEGENDS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("data_path", "african_football_legends.csv")
	v.SetDefault("encoding", "latin-1")
	v.SetDefault("delimiter", "")
	v.SetDefault("sheet_name", "")
	v.SetDefault("sheet_index", 1)
	v.SetDefault("color_by", "era")
	v.SetDefault("median_decimals", 3)
	v.SetDefault("max_diameter", 40.0)
	v.SetDefault("min_diameter", 6.0)
	v.SetDefault("show_raw_table", true)
	// HTTP defaults
	v.SetDefault("listen_addr", ":8501")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("read_timeout_sec", 15)
	v.SetDefault("write_timeout_sec", 30)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := Dir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read; a missing file is fine, a malformed one is not
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}

// Defaults returns the built-in configuration without reading file or env.
func Defaults() *Global {
	return &Global{
		DataPath:        "african_football_legends.csv",
		Encoding:        "latin-1",
		SheetIndex:      1,
		ColorBy:         "era",
		MedianDecimals:  3,
		MaxDiameter:     40,
		MinDiameter:     6,
		ShowRawTable:    true,
		ListenAddr:      ":8501",
		CORSOrigins:     []string{"*"},
		ReadTimeoutSec:  15,
		WriteTimeoutSec: 30,
	}
}
