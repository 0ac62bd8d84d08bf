package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/strand/core"
	"github.com/poiesic/strand/storage"
)

// Pipeline ingests batches of string values: each value is analyzed
// and stored under its content identifier, with the work spread over a
// bounded worker pool.
type Pipeline struct {
	records storage.RecordRepository
	pool    *ants.Pool
	logger  *slog.Logger
}

// Result is the per-value outcome of a batch ingest. Exactly one of
// Record and Err is set; a duplicate value carries an error wrapping
// storage.ErrDuplicateKey.
type Result struct {
	Value  string
	Record *core.AnalyzedRecord
	Err    error
}

// Conflict reports whether the value was rejected as already stored.
func (r Result) Conflict() bool {
	return errors.Is(r.Err, storage.ErrDuplicateKey)
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(records storage.RecordRepository, opts ...Option) (*Pipeline, error) {
	if records == nil {
		return nil, ErrRecordRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		records: records,
		pool:    pool,
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Release shuts down the worker pool. The repository is owned by the
// caller and is not closed.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}

// Ingest analyzes and stores every value of the batch, returning one
// Result per value in input order. Conflicts and per-value storage
// failures are reported in the results, not as the batch error; the
// returned error covers only pool submission failures.
func (p *Pipeline) Ingest(ctx context.Context, values []string) ([]Result, error) {
	results := make([]Result, len(values))

	var wg sync.WaitGroup
	for i, value := range values {
		results[i].Value = value

		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()

			record, addErr := p.records.AddRecord(ctx, value)
			if addErr != nil {
				results[i].Err = addErr
				return
			}
			results[i].Record = record
		})
		if err != nil {
			wg.Done()
			results[i].Err = err
			wg.Wait()
			return results, err
		}
	}
	wg.Wait()

	stored, conflicts, failed := 0, 0, 0
	for _, r := range results {
		switch {
		case r.Record != nil:
			stored++
		case r.Conflict():
			conflicts++
		case r.Err != nil:
			failed++
		}
	}
	p.logger.Debug("batch ingested",
		"total", len(values), "stored", stored, "conflicts", conflicts, "failed", failed)

	return results, nil
}
