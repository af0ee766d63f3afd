package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"countroo.dev/pkg/countroo/internal/adapter"
	"countroo.dev/pkg/countroo/internal/config"
	m "countroo.dev/pkg/countroo/internal/model"
)

// CertainTypes is the curated set of general-purpose language extensions.
var CertainTypes = []string{
	"py", "js", "rs", "dart", "cpp", "c", "rb", "sh", "swift", "ts", "html",
	"css", "sql", "cs", "vb", "go", "php", "java", "kt", "tsx", "jsx", "vue",
}

// CertainTypesCounter counts the curated extension set.
type CertainTypesCounter interface {
	CountCertainTypes(ctx context.Context) (int, error)
}

// AllTypesCounter counts every extension of the active configuration.
type AllTypesCounter interface {
	CountAllTypes(ctx context.Context) (int, error)
}

// LineCounter is the full counter facade.
type LineCounter interface {
	CertainTypesCounter
	AllTypesCounter
	ExtensionCounts(ctx context.Context) (map[string]int, error)
	LastAggregate() m.Aggregate
	Total() int
	Reset()
	Config() config.Config
}

// Counter owns one configuration and a running total. Every count call adds
// to the total; use Reset or a new Counter for a clean count.
type Counter struct {
	fsAdapter  adapter.SourceFSAdapter
	aggregator *Aggregator

	mu     sync.Mutex
	config config.Config
	total  int
	last   m.Aggregate
}

// NewCounter creates a Counter for cfg using threads workers (<= 0 means one per CPU).
func NewCounter(fsAdapter adapter.SourceFSAdapter, cfg config.Config, threads int) *Counter {
	return &Counter{
		fsAdapter:  fsAdapter,
		aggregator: NewAggregator(fsAdapter, threads),
		config:     cfg,
		last:       m.NewAggregate(),
	}
}

// CountCertainTypes replaces the configured extensions with CertainTypes and counts.
func (c *Counter) CountCertainTypes(ctx context.Context) (int, error) {
	c.mu.Lock()
	c.config = c.config.WithExtensions(CertainTypes)
	c.mu.Unlock()

	return c.count(ctx)
}

// CountAllTypes counts using the configured extensions.
func (c *Counter) CountAllTypes(ctx context.Context) (int, error) {
	return c.count(ctx)
}

// ExtensionCounts re-walks the tree and returns lines per extension without
// touching the running total.
func (c *Counter) ExtensionCounts(ctx context.Context) (map[string]int, error) {
	aggregate, err := c.run(ctx, c.Config())
	if err != nil {
		return nil, err
	}

	return aggregate.PerExtension, nil
}

// Total returns the running total.
func (c *Counter) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.total
}

// Reset zeroes the running total and forgets the last aggregate.
func (c *Counter) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.total = 0
	c.last = m.NewAggregate()
}

// LastAggregate returns the aggregate of the most recent count call.
func (c *Counter) LastAggregate() m.Aggregate {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.last
}

// Config returns the active configuration.
func (c *Counter) Config() config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.config
}

func (c *Counter) count(ctx context.Context) (int, error) {
	aggregate, err := c.run(ctx, c.Config())
	if err != nil {
		return c.Total(), err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.total += aggregate.Total
	c.last = aggregate

	return c.total, nil
}

func (c *Counter) run(ctx context.Context, cfg config.Config) (m.Aggregate, error) {
	if err := cfg.Validate(); err != nil {
		return m.Aggregate{}, err
	}

	if _, err := c.fsAdapter.FileInfo(cfg.ProjectPath); err != nil {
		return m.Aggregate{}, fmt.Errorf("%w: project path %s: %w", m.ErrIO, cfg.ProjectPath, err)
	}

	slog.Info("Counting lines", "root", cfg.ProjectPath, "extensions", len(cfg.Extensions),
		"count_empty_lines", cfg.CountEmptyLines, "threads", c.aggregator.Threads())

	paths := Traverse(ctx, c.fsAdapter, cfg.ProjectPath, cfg.ExtensionSet(), c.aggregator.Threads())

	aggregate, err := c.aggregator.Aggregate(ctx, paths, cfg.CountEmptyLines)
	if err != nil {
		return m.Aggregate{}, err
	}

	if aggregate.Skipped > 0 {
		slog.Warn("Some files could not be counted", "skipped", aggregate.Skipped)
	}

	slog.Info("Counted lines", "root", cfg.ProjectPath, "files", aggregate.Files, "total", aggregate.Total)

	return aggregate, nil
}
