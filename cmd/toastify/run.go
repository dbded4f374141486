package main

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"toastify/internal/database"
	"toastify/internal/logging"
	"toastify/internal/rewrite"
	"toastify/internal/storage"
)

// createRunCommand creates the run command, the tool's main operation.
func createRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Rewrite alert() calls in the configured files",
		Long: "Rewrite every single-line alert() call in the configured files to the " +
			"matching toast call, inserting the toast import where missing. Files are " +
			"overwritten in place.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigFromCommand(cmd)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			fs := afero.NewOsFs()
			ctx, err := logging.New(cmd.Context(), fs, logging.Config{Level: logging.InfoLevel})
			if err != nil {
				return fmt.Errorf("failed to initialize logging: %w", err)
			}

			rewriter := rewrite.New(cfg, fs, cmd.OutOrStdout())
			summary := rewriter.Run(ctx)

			// History is best-effort telemetry; a failure here never fails the run.
			recordRun(ctx, fs, summary)

			return nil
		},
	}
}

func recordRun(ctx context.Context, fs afero.Fs, summary rewrite.Summary) {
	logger := logging.Get(ctx)

	historyPath, err := storage.New(fs).GetHistoryPath()
	if err != nil {
		logger.Warn().Err(err).Msg("failed to resolve history path")
		return
	}

	manager, err := database.NewManager(ctx, historyPath)
	if err != nil {
		logger.Warn().Err(err).Msg("failed to open history database")
		return
	}
	defer func() { _ = manager.Close() }()

	files := make([]database.FileOutcome, 0, len(summary.Results))
	for _, result := range summary.Results {
		files = append(files, database.FileOutcome{
			Path:    result.Path,
			Outcome: string(result.Outcome),
			Error:   result.Error,
		})
	}

	if _, err := manager.RecordRun(ctx, summary.Processed, summary.Total, files); err != nil {
		logger.Warn().Err(err).Msg("failed to record run history")
	}
}
