package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagSave     bool
	flagSavePath string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Write the effective configuration as YAML",
	Long: `Prints the configuration after defaults, config file and flags have been
merged. With --save it is written to the user config directory instead,
or to --path when given.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagSave, "save", false, "Save instead of printing")
	configCmd.Flags().StringVar(&flagSavePath, "path", "", "Save to this file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if !flagSave {
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	if flagSavePath != "" {
		if err := cfg.SaveTo(flagSavePath); err != nil {
			return fmt.Errorf("saving config: %w", err)
		}
		return nil
	}
	if err := cfg.Save(); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}
	return nil
}
