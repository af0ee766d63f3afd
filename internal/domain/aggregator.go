package domain

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"countroo.dev/pkg/countroo/internal/adapter"
	m "countroo.dev/pkg/countroo/internal/model"
)

// Aggregator counts files on a bounded worker pool and folds the results.
type Aggregator struct {
	fsAdapter adapter.SourceFSAdapter
	threads   int
}

// NewAggregator creates an Aggregator. threads <= 0 uses one worker per CPU.
func NewAggregator(fsAdapter adapter.SourceFSAdapter, threads int) *Aggregator {
	if threads <= 0 {
		threads = runtime.NumCPU()
	}

	return &Aggregator{fsAdapter: fsAdapter, threads: threads}
}

// Threads returns the worker pool size.
func (a *Aggregator) Threads() int {
	return a.threads
}

// Aggregate drains paths and returns the total and per-extension counts.
// Files that fail to count contribute zero and are tallied in Skipped.
// Extensions are grouped by their on-disk spelling, so "rs" and "RS" are
// separate keys even though both matched the same filter.
func (a *Aggregator) Aggregate(ctx context.Context, paths <-chan m.Path, countEmptyLines bool) (m.Aggregate, error) {
	results := make(chan m.FileCount, a.threads)

	var group errgroup.Group
	group.SetLimit(a.threads)

	go func() {
		for path := range paths {
			currentPath := path

			group.Go(func() error {
				results <- a.countFile(currentPath, countEmptyLines)
				return nil
			})
		}

		_ = group.Wait()

		close(results)
	}()

	aggregate := m.NewAggregate()
	for result := range results {
		aggregate.Add(result)
	}

	if err := ctx.Err(); err != nil {
		return aggregate, err
	}

	return aggregate, nil
}

func (a *Aggregator) countFile(path m.Path, countEmptyLines bool) m.FileCount {
	ext, _ := m.ExtensionOf(path)
	slog.Debug("Processing file", "path", path)

	lines, err := CountLines(a.fsAdapter, path, countEmptyLines)
	if err != nil {
		slog.Debug("Counting failed, contributing zero", "path", path, "error", err)
		return m.FileCount{Path: path, Extension: ext, Err: err}
	}

	return m.FileCount{Path: path, Extension: ext, Lines: lines}
}
