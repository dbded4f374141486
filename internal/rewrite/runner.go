package rewrite

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/afero"

	"toastify/internal/config"
	"toastify/internal/logging"
)

// Outcome records what happened to one target file during a run.
type Outcome string

const (
	OutcomeProcessed Outcome = "processed"
	OutcomeMissing   Outcome = "missing"
	OutcomeFailed    Outcome = "failed"
)

// FileResult is the per-file record of a run.
type FileResult struct {
	Path    string
	Outcome Outcome
	Error   string
}

// Summary is the result of one batch run.
type Summary struct {
	Results   []FileResult
	Processed int
	Total     int
}

// Rewriter applies the alert-to-toast transform to a configured file list.
// The filesystem is injected so tests can run against an in-memory fs.
type Rewriter struct {
	fs  afero.Fs
	out io.Writer
	cfg *config.Config
}

// New creates a Rewriter. A nil fs defaults to the OS filesystem and a nil
// out defaults to stdout.
func New(cfg *config.Config, fs afero.Fs, out io.Writer) *Rewriter {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Rewriter{cfg: cfg, fs: fs, out: out}
}

// ProcessFile reads one file, applies both transforms in memory and writes
// the result back over the original. The write happens only after the full
// pipeline succeeds, so a read failure leaves the file untouched.
func (r *Rewriter) ProcessFile(ctx context.Context, path string) error {
	logger := logging.Get(ctx)

	info, err := r.fs.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat file: %w", err)
	}

	data, err := afero.ReadFile(r.fs, path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	content := string(data)
	content = EnsureImport(content, r.cfg.ImportPath)
	content = ReplaceCalls(content)

	if err := afero.WriteFile(r.fs, path, []byte(content), info.Mode()); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	logger.Debug().Str("path", path).Int("bytes", len(content)).Msg("rewrote file")
	return nil
}

// Run iterates the configured file list in order. Missing files are logged
// and skipped; per-file errors are logged and never abort the batch. The
// returned summary counts fully processed files against the list length.
func (r *Rewriter) Run(ctx context.Context) Summary {
	logger := logging.Get(ctx)

	summary := Summary{Total: len(r.cfg.Files)}

	_, _ = fmt.Fprintln(r.out, "Starting alert to toast replacement...")

	for _, path := range r.cfg.Files {
		if exists, err := afero.Exists(r.fs, path); err != nil || !exists {
			_, _ = fmt.Fprintf(r.out, "%s File not found: %s\n", color.RedString("✗"), path)
			logger.Warn().Str("path", path).Msg("target file not found")
			summary.Results = append(summary.Results, FileResult{Path: path, Outcome: OutcomeMissing})
			continue
		}

		if err := r.ProcessFile(ctx, path); err != nil {
			_, _ = fmt.Fprintf(r.out, "%s Error processing %s: %v\n", color.RedString("✗"), path, err)
			logger.Error().Str("path", path).Err(err).Msg("failed to process file")
			summary.Results = append(summary.Results, FileResult{
				Path: path, Outcome: OutcomeFailed, Error: err.Error(),
			})
			continue
		}

		_, _ = fmt.Fprintf(r.out, "%s Processed: %s\n", color.GreenString("✓"), path)
		summary.Results = append(summary.Results, FileResult{Path: path, Outcome: OutcomeProcessed})
		summary.Processed++
	}

	_, _ = fmt.Fprintf(r.out, "\nCompleted! Processed %d/%d files\n", summary.Processed, summary.Total)
	logger.Info().Int("processed", summary.Processed).Int("total", summary.Total).Msg("run completed")

	return summary
}
