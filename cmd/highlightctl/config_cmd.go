package main

import (
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	highlight "github.com/wizenheimer/highlight"
)

// loadConfig reads the TOML config at path, or returns engine defaults
// when path is empty.
func loadConfig(path string) (highlight.EngineConfig, error) {
	if path == "" {
		return highlight.DefaultEngineConfig(), nil
	}
	return highlight.LoadEngineConfig(path)
}

func newConfigCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			out, err := toml.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Print(string(out))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a TOML config file")
	return cmd
}
