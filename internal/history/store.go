package history

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"elementquiz/internal/quiz"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS quiz_runs (
  run_id       VARCHAR NOT NULL,
  started_at   TIMESTAMP NOT NULL,
  finished_at  TIMESTAMP,
  status       VARCHAR NOT NULL,
  correct      INTEGER NOT NULL DEFAULT 0,
  total        INTEGER NOT NULL
)`,
	`CREATE SEQUENCE IF NOT EXISTS attempt_id_seq`,
	`CREATE TABLE IF NOT EXISTS attempts (
  attempt_id   BIGINT NOT NULL DEFAULT nextval('attempt_id_seq'),
  run_id       VARCHAR NOT NULL,
  position     INTEGER NOT NULL,
  element      VARCHAR NOT NULL,
  answer       VARCHAR NOT NULL,
  correct      BOOLEAN NOT NULL,
  answered_at  TIMESTAMP NOT NULL
)`,
}

// Run statuses.
const (
	StatusActive    = "active"
	StatusFinished  = "finished"
	StatusAbandoned = "abandoned"
)

// RunSummary is a finished quiz run.
type RunSummary struct {
	RunID      string    `json:"run_id"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Correct    int       `json:"correct"`
	Total      int       `json:"total"`
}

// Percent is the run's score as a percentage.
func (r RunSummary) Percent() float64 {
	if r.Total == 0 {
		return 0
	}
	return 100 * float64(r.Correct) / float64(r.Total)
}

// ElementAccuracy aggregates every answer given for one element.
type ElementAccuracy struct {
	Element  string `json:"element"`
	Attempts int    `json:"attempts"`
	Correct  int    `json:"correct"`
}

// Percent is the share of correct answers as a percentage.
func (a ElementAccuracy) Percent() float64 {
	if a.Attempts == 0 {
		return 0
	}
	return 100 * float64(a.Correct) / float64(a.Attempts)
}

// Store records quiz events. It tracks the run currently in progress so
// answers can be attributed to it.
type Store struct {
	db  *sql.DB
	now func() time.Time

	mu     sync.Mutex
	active string // run_id of the quiz in progress, "" if none
}

// NewStore wraps an open database. Call Migrate before recording.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

// Open creates an in-memory database with the schema applied.
func Open(ctx context.Context, opts ...DuckDBOption) (*Store, *DuckDBClient, error) {
	client, err := NewInMemoryDB(opts...)
	if err != nil {
		return nil, nil, err
	}
	store := NewStore(client.DB())
	if err := store.Migrate(ctx); err != nil {
		_ = client.Close()
		return nil, nil, err
	}
	return store, client, nil
}

// Migrate creates the schema if needed.
func (s *Store) Migrate(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// ActiveRun returns the id of the quiz in progress, if any.
func (s *Store) ActiveRun() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active, s.active != ""
}

// Record applies one controller event to the log.
func (s *Store) Record(ctx context.Context, ev quiz.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch ev.Op {
	case quiz.OpSetMode:
		if err := s.abandonLocked(ctx); err != nil {
			return err
		}
		if ev.Directive.Mode == quiz.ModeQuiz {
			return s.startLocked(ctx, ev.Directive.Total)
		}

	case quiz.OpSubmit:
		if s.active == "" {
			if err := s.startLocked(ctx, ev.Directive.Total); err != nil {
				return err
			}
		}
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO attempts (run_id, position, element, answer, correct, answered_at) VALUES (?, ?, ?, ?, ?, ?)`,
			s.active, ev.Directive.Position, ev.Item.Name, ev.Answer, ev.Correct, s.now())
		if err != nil {
			return fmt.Errorf("insert attempt: %w", err)
		}

	case quiz.OpAdvance:
		if ev.Directive.Score == nil || s.active == "" {
			return nil
		}
		_, err := s.db.ExecContext(ctx,
			`UPDATE quiz_runs SET status = ?, correct = ?, total = ?, finished_at = ? WHERE run_id = ?`,
			StatusFinished, ev.Directive.Score.Correct, ev.Directive.Score.Total, s.now(), s.active)
		if err != nil {
			return fmt.Errorf("finish run: %w", err)
		}
		s.active = ""
	}

	return nil
}

// Abandon marks the run in progress, if any, as abandoned.
func (s *Store) Abandon(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.abandonLocked(ctx)
}

func (s *Store) startLocked(ctx context.Context, total int) error {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO quiz_runs (run_id, started_at, status, total) VALUES (?, ?, ?, ?)`,
		id, s.now(), StatusActive, total)
	if err != nil {
		return fmt.Errorf("start run: %w", err)
	}
	s.active = id
	return nil
}

func (s *Store) abandonLocked(ctx context.Context) error {
	if s.active == "" {
		return nil
	}
	_, err := s.db.ExecContext(ctx,
		`UPDATE quiz_runs SET status = ?, finished_at = ? WHERE run_id = ?`,
		StatusAbandoned, s.now(), s.active)
	if err != nil {
		return fmt.Errorf("abandon run: %w", err)
	}
	s.active = ""
	return nil
}

// Runs returns finished runs, newest first.
func (s *Store) Runs(ctx context.Context, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, started_at, finished_at, correct, total
		FROM quiz_runs
		WHERE status = ?
		ORDER BY finished_at DESC
		LIMIT ?`, StatusFinished, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs failed: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var r RunSummary
		var finished sql.NullTime
		if err := rows.Scan(&r.RunID, &r.StartedAt, &finished, &r.Correct, &r.Total); err != nil {
			return nil, fmt.Errorf("scan run failed: %w", err)
		}
		if finished.Valid {
			r.FinishedAt = finished.Time
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return runs, nil
}

// ElementAccuracy aggregates all answers per element, by element name.
func (s *Store) ElementAccuracy(ctx context.Context) ([]ElementAccuracy, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT element, COUNT(*) AS attempts, COUNT(*) FILTER (WHERE correct) AS correct
		FROM attempts
		GROUP BY element
		ORDER BY element`)
	if err != nil {
		return nil, fmt.Errorf("query accuracy failed: %w", err)
	}
	defer rows.Close()

	out := []ElementAccuracy{}
	for rows.Next() {
		var a ElementAccuracy
		if err := rows.Scan(&a.Element, &a.Attempts, &a.Correct); err != nil {
			return nil, fmt.Errorf("scan accuracy failed: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

// CountRuns returns how many runs have the given status.
func (s *Store) CountRuns(ctx context.Context, status string) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM quiz_runs WHERE status = ?`, status).Scan(&n); err != nil {
		return 0, fmt.Errorf("count runs: %w", err)
	}
	return n, nil
}
