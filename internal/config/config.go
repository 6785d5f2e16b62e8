package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Settings holds user configuration for processing and output.
type Settings struct {
	// OutputFile is the default filename for the deduplicated table; its
	// extension selects the encoding.
	OutputFile string `mapstructure:"output_file" yaml:"output_file"`
	// SheetName is the sheet name used for spreadsheet output.
	SheetName string `mapstructure:"sheet_name" yaml:"sheet_name"`
	// StrictRows makes processing fail when rows are too short for the
	// selected column, instead of silently excluding them.
	StrictRows bool `mapstructure:"strict_rows" yaml:"strict_rows"`
}

// Load reads configuration from env and the optional config file.
// Precedence: env > config file > defaults.
func Load(cfgFile string) (*Settings, error) {
	v := viper.New()
	v.SetEnvPrefix("DUPLESS")
	v.AutomaticEnv()

	v.SetDefault("output_file", "data_without_duplicates.xlsx")
	v.SetDefault("sheet_name", "Sheet1")
	v.SetDefault("strict_rows", false)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		dir, err := configDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &s, nil
}

// Save writes the settings to cfgFile, or to ~/.dupless/config.yaml when
// cfgFile is empty, creating the directory if necessary.
func Save(s *Settings, cfgFile string) error {
	path := cfgFile
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return err
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func configDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".dupless"), nil
}
