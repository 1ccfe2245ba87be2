package tabview

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/hupe1980/tabview/sorter"
)

// DefaultPageSizes is the allowed page size set used when none is configured.
var DefaultPageSizes = []int{2, 5, 10, 25}

type options struct {
	pageSizes              []int
	defaultPageSize        int
	resetPageOnQueryChange bool
	comparators            map[string]sorter.Comparator
	metricsCollector       MetricsCollector
	logger                 *Logger
}

// Option configures a Pipeline or View.
type Option func(*options)

// WithPageSizes sets the allowed page sizes. The first size becomes the
// default unless WithDefaultPageSize is also given.
func WithPageSizes(sizes ...int) Option {
	return func(o *options) {
		o.pageSizes = slices.Clone(sizes)
	}
}

// WithDefaultPageSize sets the page size of a fresh query state.
// It must be one of the allowed page sizes.
func WithDefaultPageSize(size int) Option {
	return func(o *options) {
		o.defaultPageSize = size
	}
}

// WithResetPageOnQueryChange controls whether changing the search text or a
// filter jumps back to the first page (default true).
//
// When disabled the page index is kept and only clamped into range, which can
// leave the view on a later page of a narrower result.
func WithResetPageOnQueryChange(reset bool) Option {
	return func(o *options) {
		o.resetPageOnQueryChange = reset
	}
}

// WithComparator overrides the ordering of one field.
//
// A comparator that panics does not break the view: the pass falls back to
// the unsorted order and reports the failure in Result.Err.
func WithComparator(field string, c sorter.Comparator) Option {
	return func(o *options) {
		if o.comparators == nil {
			o.comparators = make(map[string]sorter.Comparator)
		}
		o.comparators[field] = c
	}
}

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &tabview.BasicMetricsCollector{}
//	v, _ := tabview.NewView(st, tabview.WithMetricsCollector(metrics))
//	// ... use v ...
//	stats := metrics.GetStats()
//	fmt.Printf("Renders: %d, Avg latency: %dns\n", stats.RenderCount, stats.RenderAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := tabview.NewJSONLogger(slog.LevelInfo)
//	v, _ := tabview.NewView(st, tabview.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) (options, error) {
	o := options{
		pageSizes:              slices.Clone(DefaultPageSizes),
		resetPageOnQueryChange: true,
		metricsCollector:       NoopMetricsCollector{},
		logger:                 NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}

	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}

	if len(o.pageSizes) == 0 {
		return o, ErrEmptyPageSizes
	}
	for _, s := range o.pageSizes {
		if s <= 0 {
			return o, invalidPageSize(s)
		}
	}
	if o.defaultPageSize == 0 {
		o.defaultPageSize = o.pageSizes[0]
	}
	if !slices.Contains(o.pageSizes, o.defaultPageSize) {
		return o, invalidPageSize(o.defaultPageSize)
	}
	o.comparators = maps.Clone(o.comparators)

	return o, nil
}
