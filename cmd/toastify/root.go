package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toastify/internal/config"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "toastify",
		Short: "Rewrite blocking alert() calls into toast notifications",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Show help when run without subcommands
			return cmd.Help()
		},
	}

	// Add persistent config flag
	rootCmd.PersistentFlags().StringP("config", "c", "toastify.yml", "Path to config file")

	// Add subcommands
	rootCmd.AddCommand(
		createRunCommand(),
		createTargetsCommand(),
		createHistoryCommand(),
		createVersionCommand(),
	)

	return rootCmd
}

// loadConfigFromCommand extracts the config path and loads the batch config,
// falling back to the compiled-in defaults when no config file exists.
func loadConfigFromCommand(cmd *cobra.Command) (*config.Config, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.LoadOrDefault(configPath)
}
