// Package pipeline drives record evaluation over an input stream.
package pipeline

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/mariofajardo/chopper/internal/fastq"
	"github.com/mariofajardo/chopper/internal/filter"
)

// Config controls the evaluation pipeline.
type Config struct {
	Threads int           // worker goroutines in unscreened mode (>=1)
	Filter  filter.Config // per-record thresholds
}

// Source is a lazy, finite, single-pass stream of records. Read returns
// io.EOF at end of stream; any other error aborts the run.
type Source interface {
	Read() (fastq.Record, error)
}

// Run pulls records from src, evaluates each, and hands kept decisions
// to emit. It returns the number of kept records and the first error.
//
// With a screener the stream is processed sequentially in input order:
// the aligner behind the shared index is treated as not proven safe for
// concurrent queries. Without one, records fan out across a worker pool
// and emit sees decisions in completion order; emit itself is always
// called from a single goroutine.
func Run(ctx context.Context, cfg Config, src Source, scr filter.Screener, emit func(filter.Decision) error) (int, error) {
	if scr != nil {
		return runSequential(ctx, cfg, src, scr, emit)
	}
	return runParallel(ctx, cfg, src, emit)
}

func runSequential(ctx context.Context, cfg Config, src Source, scr filter.Screener, emit func(filter.Decision) error) (int, error) {
	kept := 0
	for {
		if err := ctx.Err(); err != nil {
			return kept, err
		}
		rec, err := src.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return kept, nil
			}
			return kept, err
		}
		d, err := filter.Evaluate(rec, cfg.Filter, scr)
		if err != nil {
			return kept, err
		}
		if !d.Keep {
			continue
		}
		if err := emit(d); err != nil {
			return kept, err
		}
		kept++
	}
}

func runParallel(ctx context.Context, cfg Config, src Source, emit func(filter.Decision) error) (int, error) {
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}

	jobs := make(chan fastq.Record, threads*2)
	results := make(chan filter.Decision, threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case rec, ok := <-jobs:
					if !ok {
						return
					}
					// Evaluate cannot fail without a screener.
					d, _ := filter.Evaluate(rec, cfg.Filter, nil)
					if !d.Keep {
						continue
					}
					select {
					case results <- d:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: the single goroutine that calls emit.
	var (
		kept int
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		for d := range results {
			if cerr != nil {
				continue
			}
			if err := emit(d); err != nil {
				cerr = err
				continue
			}
			kept++
		}
	}()

	// Feed work
	var rerr error
feed:
	for {
		rec, err := src.Read()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				rerr = err
			}
			break
		}
		select {
		case <-ctx.Done():
			break feed
		case jobs <- rec:
		}
	}

	close(jobs)
	wg.Wait()
	close(results)
	cwg.Wait()

	if ctx.Err() != nil {
		return kept, ctx.Err()
	}
	if rerr != nil {
		return kept, rerr
	}
	return kept, cerr
}
