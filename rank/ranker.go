package rank

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/kensaku/core"
	"github.com/poiesic/kensaku/matcher"
)

const defaultBatchSize = 64

// Hit is one entry that matched the query.
type Hit struct {
	Index     int // position in the input batch
	Text      string
	Relevance core.Relevance
	Spans     []core.Span
}

// Ranker scores entries concurrently.
type Ranker struct {
	pool         *ants.Pool
	batchSize    int
	minRelevance core.Relevance
	logger       *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU(), with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(r *Ranker) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if r.pool != nil {
			r.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		r.pool = pool
		return nil
	}
}

// WithBatchSize sets how many entries one worker task scores.
// Default is 64.
func WithBatchSize(size int) Option {
	return func(r *Ranker) error {
		if size < 1 {
			return ErrInvalidBatchSize
		}
		r.batchSize = size
		return nil
	}
}

// WithMinRelevance drops hits below the given relevance.
// Default is core.RelevanceLow, which drops non-matching entries.
func WithMinRelevance(min core.Relevance) Option {
	return func(r *Ranker) error {
		r.minRelevance = min
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// NewRanker creates a ranker with its own worker pool.
func NewRanker(opts ...Option) (*Ranker, error) {
	pool, err := ants.NewPool(max(runtime.NumCPU(), 1))
	if err != nil {
		return nil, err
	}

	r := &Ranker{
		pool:         pool,
		batchSize:    defaultBatchSize,
		minRelevance: core.RelevanceLow,
		logger:       slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(r); optErr != nil {
			r.Release()
			return nil, optErr
		}
	}

	return r, nil
}

// Rank scores every entry against table and returns the hits at or above
// the minimum relevance, best first. Entries of equal relevance keep their
// input order. Cancelling ctx stops the remaining work and returns its error.
func (r *Ranker) Rank(ctx context.Context, table *matcher.Table, entries []string) ([]Hit, error) {
	if table == nil {
		return nil, ErrTableRequired
	}
	if len(entries) == 0 {
		return nil, nil
	}

	results := make([]Hit, len(entries))
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(entries); start += r.batchSize {
		end := min(start+r.batchSize, len(entries))
		wg.Add(1)
		err := r.pool.Submit(func() {
			defer wg.Done()
			for i := start; i < end; i++ {
				if ctx.Err() != nil {
					return
				}
				results[i] = r.score(table, i, entries[i])
			}
		})
		if err != nil {
			wg.Done()
			mu.Lock()
			firstErr = cmp.Or(firstErr, fmt.Errorf("submitting batch at %d: %w", start, err))
			mu.Unlock()
			break
		}
	}
	wg.Wait()

	if err := errors.Join(firstErr, ctx.Err()); err != nil {
		r.logger.Warn("ranking incomplete", "entries", len(entries), "err", err)
		return nil, err
	}

	hits := make([]Hit, 0, len(results))
	for _, h := range results {
		if h.Relevance >= r.minRelevance && h.Relevance > core.RelevanceNone {
			hits = append(hits, h)
		}
	}
	slices.SortStableFunc(hits, func(a, b Hit) int {
		return cmp.Compare(b.Relevance, a.Relevance)
	})

	r.logger.Debug("ranked entries", "entries", len(entries), "hits", len(hits))
	return hits, nil
}

func (r *Ranker) score(table *matcher.Table, index int, text string) Hit {
	hit := Hit{Index: index, Text: text, Relevance: table.Relevance(text)}
	if hit.Relevance > core.RelevanceNone {
		hit.Spans = table.Highlight(text)
	}
	return hit
}

// Release releases the worker pool.
// The ranker should not be used after calling Release.
func (r *Ranker) Release() {
	if r.pool != nil {
		r.pool.Release()
	}
}
