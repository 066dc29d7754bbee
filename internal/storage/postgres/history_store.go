package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/grafo-social/social-graph-backend/internal/loader"
)

// HistoryStore keeps the audit trail of adjacency-list load runs.
type HistoryStore struct {
	pool *pgxpool.Pool
}

func NewHistoryStore(pool *pgxpool.Pool) *HistoryStore {
	return &HistoryStore{pool: pool}
}

// EnsureSchema creates the load_runs table when it does not exist yet.
func (s *HistoryStore) EnsureSchema(ctx context.Context) error {
	if s.pool == nil {
		return fmt.Errorf("pgx pool is nil")
	}
	_, err := s.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS load_runs (
	id          UUID PRIMARY KEY,
	source      TEXT NOT NULL,
	pairs       INT NOT NULL,
	people      INT NOT NULL,
	status      TEXT NOT NULL,
	error       TEXT NOT NULL DEFAULT '',
	started_at  TIMESTAMPTZ NOT NULL,
	duration_ms BIGINT NOT NULL
);
`)
	if err != nil {
		return fmt.Errorf("ensure load_runs schema: %w", err)
	}
	return nil
}

// SaveLoadRun implements loader.History.
func (s *HistoryStore) SaveLoadRun(ctx context.Context, report loader.Report) error {
	if s.pool == nil {
		return fmt.Errorf("pgx pool is nil")
	}

	sql := `
INSERT INTO load_runs (id, source, pairs, people, status, error, started_at, duration_ms)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`
	_, err := s.pool.Exec(ctx, sql,
		report.ID,
		report.Source,
		report.Pairs,
		report.People,
		report.Status,
		report.Error,
		report.StartedAt,
		report.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("insert load run: %w", err)
	}
	return nil
}

// RecentLoadRuns returns up to limit runs, newest first.
func (s *HistoryStore) RecentLoadRuns(ctx context.Context, limit int) ([]loader.Report, error) {
	if s.pool == nil {
		return nil, fmt.Errorf("pgx pool is nil")
	}
	if limit < 1 {
		limit = 20
	}

	rows, err := s.pool.Query(ctx, `
SELECT id, source, pairs, people, status, error, started_at, duration_ms
FROM load_runs
ORDER BY started_at DESC
LIMIT $1;
`, limit)
	if err != nil {
		return nil, fmt.Errorf("query load runs: %w", err)
	}
	defer rows.Close()

	var reports []loader.Report
	for rows.Next() {
		var r loader.Report
		var durationMS int64
		if err := rows.Scan(&r.ID, &r.Source, &r.Pairs, &r.People, &r.Status, &r.Error, &r.StartedAt, &durationMS); err != nil {
			return nil, fmt.Errorf("scan load run: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond
		reports = append(reports, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate load runs: %w", err)
	}

	return reports, nil
}
