/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/nakachan-ing/nihref/internal/model"
	"github.com/nakachan-ing/nihref/internal/store"
	"github.com/spf13/cobra"
)

var initForce bool

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize config.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		configPath, err := store.GetConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}

		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists at %s (use --force to overwrite)", configPath)
		}

		if err := store.SaveConfig(model.DefaultConfig()); err != nil {
			return fmt.Errorf("❌ Failed to create config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "✅ nihref initialized successfully!")
		fmt.Fprintln(cmd.OutOrStdout(), "📄 Config file created at:", configPath)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
}
