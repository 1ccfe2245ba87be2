package reload

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/hupe1980/tabview"
	"github.com/hupe1980/tabview/source"
	"github.com/hupe1980/tabview/store"
	"github.com/robfig/cron/v3"
)

// ErrClosed is returned when a closed Reloader is used.
var ErrClosed = errors.New("reloader closed")

// Target receives freshly loaded stores. *tabview.View implements it.
type Target interface {
	ReplaceStore(st *store.Store) error
}

var _ Target = (*tabview.View)(nil)

type options struct {
	storeOpts []store.Option
	logger    *tabview.Logger
	debounce  time.Duration
	onReload  func(st *store.Store, err error)
}

// Option configures a Reloader.
type Option func(*options)

// WithStoreOptions sets the options used to build each store.
func WithStoreOptions(opts ...store.Option) Option {
	return func(o *options) {
		o.storeOpts = opts
	}
}

// WithLogger configures logging of background reloads.
func WithLogger(logger *tabview.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithDebounce sets how long file events are coalesced before a reload
// (default 500ms).
func WithDebounce(d time.Duration) Option {
	return func(o *options) {
		o.debounce = d
	}
}

// WithOnReload registers a callback invoked after every reload attempt.
func WithOnReload(fn func(st *store.Store, err error)) Option {
	return func(o *options) {
		o.onReload = fn
	}
}

// Reloader re-loads a source into a target.
type Reloader struct {
	src    source.Source
	target Target
	opts   options

	ctx    context.Context
	cancel context.CancelFunc

	// reloadMu serializes loads so stores reach the target in trigger order.
	reloadMu sync.Mutex

	mu      sync.Mutex
	closed  bool
	sched   *cron.Cron
	watcher *fsnotify.Watcher
	wg      sync.WaitGroup
}

// New creates a Reloader. Nothing runs until Reload, Schedule or Watch is called.
func New(src source.Source, target Target, optFns ...Option) *Reloader {
	opts := options{
		logger:   tabview.NoopLogger(),
		debounce: 500 * time.Millisecond,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.logger == nil {
		opts.logger = tabview.NoopLogger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Reloader{
		src:    src,
		target: target,
		opts:   opts,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Reload loads the source and replaces the target's store.
// On error the target keeps its current store.
func (r *Reloader) Reload(ctx context.Context) (*store.Store, error) {
	r.reloadMu.Lock()
	defer r.reloadMu.Unlock()

	st, err := r.reload(ctx)
	if r.opts.onReload != nil {
		r.opts.onReload(st, err)
	}
	return st, err
}

func (r *Reloader) reload(ctx context.Context) (*store.Store, error) {
	st, err := source.Open(ctx, r.src, r.opts.storeOpts...)
	if err != nil {
		return nil, fmt.Errorf("reload: %w", err)
	}
	// A loader may ignore ctx; never publish a store once it is done.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("reload: %w", err)
	}
	if err := r.target.ReplaceStore(st); err != nil {
		return nil, fmt.Errorf("reload: replace store: %w", err)
	}
	return st, nil
}

// trigger runs a background reload and logs the outcome.
func (r *Reloader) trigger(reason string) {
	if r.ctx.Err() != nil {
		return
	}
	st, err := r.Reload(r.ctx)
	if err != nil {
		r.opts.logger.Error("reload failed", "trigger", reason, "error", err)
		return
	}
	r.opts.logger.Info("reloaded", "trigger", reason, "records", st.Len())
}

// Close stops all schedules and watchers and waits for background work.
func (r *Reloader) Close() error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil
	}
	r.closed = true
	r.cancel()

	var err error
	if r.watcher != nil {
		err = r.watcher.Close()
		r.watcher = nil
	}
	sched := r.sched
	r.sched = nil
	r.mu.Unlock()

	if sched != nil {
		<-sched.Stop().Done()
	}
	r.wg.Wait()
	return err
}
