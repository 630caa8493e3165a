package documents

import (
	"context"
	"sync"

	"github.com/reusee/tedn/ednconfigs"
	"github.com/reusee/tedn/logs"
	"github.com/reusee/tedn/syncs"
)

type Result struct {
	Location string
	Text     string
	Err      error
}

// Batch runs fn for every location with bounded concurrency. Results keep input order.
type Batch func(
	ctx context.Context,
	locations []string,
	fn func(ctx context.Context, location string) (string, error),
) []Result

func (Module) Batch(
	concurrency ednconfigs.Concurrency,
	newSpan logs.NewSpan,
	logger logs.Logger,
) Batch {
	return func(
		ctx context.Context,
		locations []string,
		fn func(ctx context.Context, location string) (string, error),
	) []Result {
		ctx, _ = newSpan(ctx, "batch")
		results := make([]Result, len(locations))
		sem := syncs.NewSemaphore(int(concurrency))
		var wg sync.WaitGroup
		for i, location := range locations {
			results[i].Location = location
			if err := sem.AcquireContext(ctx); err != nil {
				results[i].Err = err
				continue
			}
			wg.Go(func() {
				defer sem.Release()
				results[i].Text, results[i].Err = fn(ctx, location)
			})
		}
		wg.Wait()

		var failed int
		for _, result := range results {
			if result.Err != nil {
				failed++
			}
		}
		logger.DebugContext(ctx, "batch done",
			"documents", len(results),
			"failed", failed,
		)
		return results
	}
}

type FormatAll func(ctx context.Context, locations []string) []Result

func (Module) FormatAll(
	batch Batch,
	format Format,
) FormatAll {
	return func(ctx context.Context, locations []string) []Result {
		return batch(ctx, locations, format)
	}
}

type CheckAll func(ctx context.Context, locations []string) []Result

func (Module) CheckAll(
	batch Batch,
	check Check,
) CheckAll {
	return func(ctx context.Context, locations []string) []Result {
		return batch(ctx, locations, func(ctx context.Context, location string) (string, error) {
			return "", check(ctx, location)
		})
	}
}

type RewriteAll func(ctx context.Context, locations []string) []Result

func (Module) RewriteAll(
	batch Batch,
	rewrite Rewrite,
) RewriteAll {
	return func(ctx context.Context, locations []string) []Result {
		return batch(ctx, locations, func(ctx context.Context, location string) (string, error) {
			changed, err := rewrite(ctx, location)
			if changed {
				return location, err
			}
			return "", err
		})
	}
}
