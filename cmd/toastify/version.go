package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toastify/internal/version"
)

// createVersionCommand creates the version command.
func createVersionCommand() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of toastify",
		RunE: func(cmd *cobra.Command, _ []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()

			if short {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), v.Version)
			} else {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), v.String())
			}

			return nil
		},
	}

	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")

	return versionCmd
}
