// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"

	"rtd-core/fasta"
	"rtd-core/rtd"
)

// Config controls the per-sequence fan-out.
type Config struct {
	Threads int // worker goroutines (0 = all CPUs)
	K       int
}

// Output is one computed sequence ready for serialization.
type Output struct {
	ID     string
	Length int
	Result *rtd.Result
}

// ForEachResult streams FASTA records from path, computes each one's
// RTD on a worker pool, and hands outputs to visit from a single
// goroutine. Sequences are independent, so outputs arrive in completion
// order, not input order. The first error (reader, compute, visit, or
// ctx) stops the run and is returned.
func ForEachResult(
	ctx context.Context,
	cfg Config,
	path string,
	eng *rtd.Engine,
	visit func(Output) error,
) error {
	threads := cfg.Threads
	if threads < 1 {
		threads = runtime.NumCPU()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan fasta.Record, threads)
	outs := make(chan Output, threads)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer close(jobs)
		return fasta.StreamCtx(gctx, path, func(rec fasta.Record) error {
			select {
			case jobs <- rec:
				return nil
			case <-gctx.Done():
				return gctx.Err()
			}
		})
	})

	var wg sync.WaitGroup
	for w := 0; w < threads; w++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			for rec := range jobs {
				res, err := eng.Compute(rec.Seq, cfg.K)
				if err != nil {
					return fmt.Errorf("sequence %s: %w", rec.ID, err)
				}
				select {
				case outs <- Output{ID: rec.ID, Length: len(rec.Seq), Result: res}:
				case <-gctx.Done():
					return gctx.Err()
				}
			}
			return nil
		})
	}
	go func() {
		wg.Wait()
		close(outs)
	}()

	var verr error
	for o := range outs {
		if verr != nil {
			continue // drain so workers can finish
		}
		if err := visit(o); err != nil {
			verr = err
			cancel()
		}
	}

	err := g.Wait()
	if verr != nil {
		// The group error is just the cancellation triggered above.
		return verr
	}
	return err
}
