// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/typewright/typewright/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for run data.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			started_at TEXT NOT NULL,
			label TEXT NOT NULL,
			speed REAL NOT NULL,
			mistake_rate REAL NOT NULL,
			fatigue INTEGER NOT NULL,
			chars INTEGER NOT NULL,
			chars_typed INTEGER NOT NULL,
			mistakes INTEGER NOT NULL,
			corrected INTEGER NOT NULL,
			backspaces INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL,
			completed INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS run_letters (
			run_id TEXT NOT NULL,
			letter TEXT NOT NULL,
			count INTEGER NOT NULL,
			PRIMARY KEY (run_id, letter)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);`,
		`CREATE INDEX IF NOT EXISTS idx_run_letters_letter ON run_letters(letter);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRun stores a completed run and the letter counts of its source text.
func (s *Store) InsertRun(ctx context.Context, rec model.RunRecord, letters []model.LetterCount) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, label, speed, mistake_rate, fatigue, chars, chars_typed, mistakes, corrected, backspaces, duration_ms, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.Format(time.RFC3339Nano),
		rec.Label,
		rec.Speed,
		rec.MistakeRate,
		boolToInt(rec.Fatigue),
		rec.Chars,
		rec.CharsTyped,
		rec.Mistakes,
		rec.Corrected,
		rec.Backspaces,
		rec.DurationMs,
		boolToInt(rec.Completed),
	)
	if err != nil {
		return err
	}

	if len(letters) > 0 {
		stmt, err := tx.PrepareContext(ctx,
			`INSERT INTO run_letters (run_id, letter, count) VALUES (?, ?, ?)`)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := stmt.Close(); cerr != nil {
				// Best-effort statement close.
				_ = cerr
			}
		}()
		for _, lc := range letters {
			if _, err := stmt.ExecContext(ctx, rec.ID, string(lc.Letter), lc.Count); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}

// ListRuns returns stored runs filtered by history config, oldest first.
func (s *Store) ListRuns(ctx context.Context, cfg model.HistoryConfig) ([]model.RunRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Since != nil {
		clauses = append(clauses, "started_at >= ?")
		args = append(args, cfg.Since.Format(time.RFC3339Nano))
	}
	query := fmt.Sprintf(`SELECT id, started_at, label, speed, mistake_rate, fatigue, chars, chars_typed, mistakes, corrected, backspaces, duration_ms, completed
		FROM runs
		WHERE %s
		ORDER BY started_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var runs []model.RunRecord
	for rows.Next() {
		var rec model.RunRecord
		var startedAt string
		var fatigue, completed int
		if err := rows.Scan(&rec.ID, &startedAt, &rec.Label, &rec.Speed, &rec.MistakeRate, &fatigue,
			&rec.Chars, &rec.CharsTyped, &rec.Mistakes, &rec.Corrected, &rec.Backspaces,
			&rec.DurationMs, &completed); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, startedAt)
		if err != nil {
			return nil, err
		}
		rec.StartedAt = parsed
		rec.Fatigue = fatigue != 0
		rec.Completed = completed != 0
		runs = append(runs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetLetterCounts aggregates source-text letter counts over the most
// recent runs.
func (s *Store) GetLetterCounts(ctx context.Context, window int) ([]model.LetterCount, error) {
	if window <= 0 {
		return nil, nil
	}
	query := `WITH recent_runs AS (
		SELECT id FROM runs
		ORDER BY started_at DESC
		LIMIT ?
	)
	SELECT rl.letter, SUM(rl.count) AS count
	FROM run_letters rl
	JOIN recent_runs r ON r.id = rl.run_id
	GROUP BY rl.letter`

	rows, err := s.db.QueryContext(ctx, query, window)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var result []model.LetterCount
	for rows.Next() {
		var letter string
		var count int
		if err := rows.Scan(&letter, &count); err != nil {
			return nil, err
		}
		var lc model.LetterCount
		for _, r := range letter {
			lc.Letter = r
			break
		}
		lc.Count = count
		result = append(result, lc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
