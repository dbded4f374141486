package database

import (
	"context"
	"fmt"
	"time"
)

// FileOutcome is one target file's result within a recorded run.
type FileOutcome struct {
	Path    string
	Outcome string
	Error   string
}

// RunRecord is one recorded batch run.
type RunRecord struct {
	StartedAt time.Time
	ID        int64
	Processed int
	Total     int
}

// RecordRun persists a run summary and its per-file outcomes in a single
// transaction, returning the new run id.
func (m *Manager) RecordRun(ctx context.Context, processed, total int, files []FileOutcome) (int64, error) {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO runs (processed, total) VALUES (?, ?)", processed, total)
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}

	runID, err := result.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	for _, file := range files {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO run_files (run_id, path, outcome, error) VALUES (?, ?, ?, ?)",
			runID, file.Path, file.Outcome, file.Error)
		if err != nil {
			_ = tx.Rollback()
			return 0, fmt.Errorf("failed to insert run file: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}

	return runID, nil
}

// RecentRuns returns the most recent runs, newest first.
func (m *Manager) RecentRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	rows, err := m.db.QueryContext(ctx,
		"SELECT id, started_at, processed, total FROM runs ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []RunRecord
	for rows.Next() {
		var run RunRecord
		var startedAt int64
		if err := rows.Scan(&run.ID, &startedAt, &run.Processed, &run.Total); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		run.StartedAt = time.Unix(startedAt, 0)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

// RunFiles returns the per-file outcomes of one run in insertion order.
func (m *Manager) RunFiles(ctx context.Context, runID int64) ([]FileOutcome, error) {
	rows, err := m.db.QueryContext(ctx,
		"SELECT path, outcome, error FROM run_files WHERE run_id = ? ORDER BY rowid", runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query run files: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var files []FileOutcome
	for rows.Next() {
		var file FileOutcome
		if err := rows.Scan(&file.Path, &file.Outcome, &file.Error); err != nil {
			return nil, fmt.Errorf("failed to scan run file: %w", err)
		}
		files = append(files, file)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate run files: %w", err)
	}

	return files, nil
}
