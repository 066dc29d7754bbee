// Package loader drives the one-shot batch load: read an adjacency file,
// upsert its pairs into the graph store, record the run. There is no retry
// and no rollback beyond what the store's own transaction gives; a failed
// run is surfaced to the caller with the file or connection step that broke.
package loader

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/grafo-social/social-graph-backend/internal/adjacency"
)

// GraphStore is the slice of the Neo4j store the loader needs.
type GraphStore interface {
	LoadPairs(ctx context.Context, pairs adjacency.PairList) error
}

// History records finished load runs. Implemented by the Postgres history
// store; nil disables recording.
type History interface {
	SaveLoadRun(ctx context.Context, report Report) error
}

// Invalidator drops any cached snapshot after a successful load. Implemented
// by the Redis snapshot cache; nil disables invalidation.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// Report describes one load run.
type Report struct {
	ID        string        `json:"id"`
	Source    string        `json:"source"`
	Pairs     int           `json:"pairs"`
	People    int           `json:"people"`
	Status    string        `json:"status"`
	Error     string        `json:"error,omitempty"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
}

const (
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
)

type Loader struct {
	store   GraphStore
	history History
	cache   Invalidator
	log     *zap.Logger
}

func New(store GraphStore, history History, cache Invalidator, log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{store: store, history: history, cache: cache, log: log}
}

// LoadFile reads the pair file at path and loads it. Reader failures
// (missing file, malformed line, self-loop) abort before the store is
// touched and are not recorded in history, since no run happened.
func (l *Loader) LoadFile(ctx context.Context, path string) (Report, error) {
	pairs, err := adjacency.ReadPairsFile(path)
	if err != nil {
		return Report{}, err
	}
	return l.LoadPairs(ctx, path, pairs)
}

// LoadPairs loads an already-parsed adjacency list. The source label is only
// for the report. Every attempt that reaches the store is recorded. Pairs
// are validated against the same invariants the readers enforce, so callers
// that build their own PairList (the API's inline load, the Builder) cannot
// slip a self-loop or an empty name past the store.
func (l *Loader) LoadPairs(ctx context.Context, source string, pairs adjacency.PairList) (Report, error) {
	if err := validatePairs(pairs); err != nil {
		return Report{}, err
	}

	report := Report{
		ID:        uuid.New().String(),
		Source:    source,
		Pairs:     len(pairs),
		People:    countPeople(pairs),
		StartedAt: time.Now().UTC(),
	}

	err := l.store.LoadPairs(ctx, pairs)
	report.Duration = time.Since(report.StartedAt)

	if err != nil {
		report.Status = StatusFailed
		report.Error = err.Error()
		l.record(ctx, report)
		return report, fmt.Errorf("load %s: %w", source, err)
	}

	report.Status = StatusSucceeded
	l.record(ctx, report)

	if l.cache != nil {
		if err := l.cache.Invalidate(ctx); err != nil {
			l.log.Warn("snapshot cache invalidation failed", zap.Error(err))
		}
	}

	l.log.Info("load finished",
		zap.String("id", report.ID),
		zap.String("source", source),
		zap.Int("pairs", report.Pairs),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

// record writes the run to history. History is an audit trail, not part of
// the load contract, so failures are logged and swallowed.
func (l *Loader) record(ctx context.Context, report Report) {
	if l.history == nil {
		return
	}
	if err := l.history.SaveLoadRun(ctx, report); err != nil {
		l.log.Warn("load history write failed", zap.String("id", report.ID), zap.Error(err))
	}
}

func validatePairs(pairs adjacency.PairList) error {
	for _, p := range pairs {
		if strings.TrimSpace(p.A) == "" || strings.TrimSpace(p.B) == "" {
			return fmt.Errorf("%w: pair %q-%q", adjacency.ErrMalformedLine, p.A, p.B)
		}
		if p.A == p.B {
			return fmt.Errorf("%w: %s", adjacency.ErrSelfLoop, p.A)
		}
	}
	return nil
}

func countPeople(pairs adjacency.PairList) int {
	names := map[string]bool{}
	for _, p := range pairs {
		names[p.A] = true
		names[p.B] = true
	}
	return len(names)
}
