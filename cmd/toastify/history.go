package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"toastify/internal/database"
	"toastify/internal/storage"
)

const defaultHistoryLimit = 10

// createHistoryCommand creates the history command. Without arguments it
// lists recent runs; with a run id it lists that run's per-file outcomes.
func createHistoryCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := afero.NewOsFs()

			historyPath, err := storage.New(fs).GetHistoryPath()
			if err != nil {
				return fmt.Errorf("failed to resolve history path: %w", err)
			}

			manager, err := database.NewManager(cmd.Context(), historyPath)
			if err != nil {
				return fmt.Errorf("failed to open history database: %w", err)
			}
			defer func() { _ = manager.Close() }()

			out := cmd.OutOrStdout()

			if len(args) == 1 {
				runID, err := strconv.ParseInt(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid run id %q: %w", args[0], err)
				}

				files, err := manager.RunFiles(cmd.Context(), runID)
				if err != nil {
					return fmt.Errorf("failed to load run files: %w", err)
				}

				for _, file := range files {
					if file.Error != "" {
						_, _ = fmt.Fprintf(out, "%-9s %s (%s)\n", file.Outcome, file.Path, file.Error)
						continue
					}
					_, _ = fmt.Fprintf(out, "%-9s %s\n", file.Outcome, file.Path)
				}
				return nil
			}

			runs, err := manager.RecentRuns(cmd.Context(), defaultHistoryLimit)
			if err != nil {
				return fmt.Errorf("failed to load runs: %w", err)
			}

			if len(runs) == 0 {
				_, _ = fmt.Fprintln(out, "No runs recorded yet")
				return nil
			}

			for _, run := range runs {
				_, _ = fmt.Fprintf(out, "#%d  %s  processed %d/%d\n",
					run.ID, run.StartedAt.Format("2006-01-02 15:04:05"), run.Processed, run.Total)
			}
			return nil
		},
	}
}
