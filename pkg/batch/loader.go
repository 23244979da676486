package batch

import (
	"context"

	"github.com/AmitShokeen001/pokestats/pkg/pokemon"
)

// Source builds a batch; *Fetcher implements it.
type Source interface {
	FetchBatch(ctx context.Context, limit int) ([]pokemon.Record, error)
}

// Loader memoizes one batch for the lifetime of its owner. A failed or empty
// build is not kept, so the next Load tries again. Not safe for concurrent use.
type Loader struct {
	source  Source
	limit   int
	records []pokemon.Record
}

// NewLoader creates a loader for batches of up to limit records.
func NewLoader(source Source, limit int) *Loader {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Loader{source: source, limit: limit}
}

// Load returns the memoized batch, building it on first use.
func (l *Loader) Load(ctx context.Context) ([]pokemon.Record, error) {
	if len(l.records) > 0 {
		return l.records, nil
	}

	records, err := l.source.FetchBatch(ctx, l.limit)
	if err != nil {
		return nil, err
	}
	l.records = records
	return records, nil
}

// Loaded reports whether a batch is held.
func (l *Loader) Loaded() bool {
	return len(l.records) > 0
}
