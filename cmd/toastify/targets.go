package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// createTargetsCommand creates the targets command, which lists the
// configured files and whether each currently exists on disk.
func createTargetsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "targets",
		Short: "List the configured target files",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fs := afero.NewOsFs()
			out := cmd.OutOrStdout()

			_, _ = fmt.Fprintf(out, "Import path: %s\n\n", cfg.ImportPath)

			for _, path := range cfg.Files {
				exists, err := afero.Exists(fs, path)
				if err != nil || !exists {
					_, _ = fmt.Fprintf(out, "%s %s\n", color.RedString("missing"), path)
					continue
				}
				_, _ = fmt.Fprintf(out, "%s  %s\n", color.GreenString("exists"), path)
			}

			_, _ = fmt.Fprintf(out, "\n%d files configured\n", len(cfg.Files))
			return nil
		},
	}
}
