// Package resource limits the resources spent loading record stores.
package resource

import (
	"context"

	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"
)

// Config holds resource limits.
type Config struct {
	// MaxConcurrentLoads is the maximum number of sources loading at once.
	// If 0, defaults to 1.
	MaxConcurrentLoads int64

	// BufferLimitBytes bounds the raw (decompressed) bytes held in memory
	// across loads. If 0, no limit is enforced.
	BufferLimitBytes int64

	// ReadLimitBytesPerSec is the maximum read throughput from blob stores.
	// If 0, unlimited.
	ReadLimitBytesPerSec int64
}

// Controller manages load concurrency, buffer memory and read throughput.
// A nil *Controller imposes no limits.
type Controller struct {
	cfg Config

	loadSem *semaphore.Weighted

	bufSem *semaphore.Weighted // nil if unlimited

	readLimiter *rate.Limiter // nil if unlimited
}

// NewController creates a new resource controller.
func NewController(cfg Config) *Controller {
	if cfg.MaxConcurrentLoads <= 0 {
		cfg.MaxConcurrentLoads = 1
	}

	c := &Controller{
		cfg:     cfg,
		loadSem: semaphore.NewWeighted(cfg.MaxConcurrentLoads),
	}

	if cfg.BufferLimitBytes > 0 {
		c.bufSem = semaphore.NewWeighted(cfg.BufferLimitBytes)
	}

	if cfg.ReadLimitBytesPerSec > 0 {
		c.readLimiter = rate.NewLimiter(rate.Limit(cfg.ReadLimitBytesPerSec), int(cfg.ReadLimitBytesPerSec))
	}

	return c
}

// AcquireLoad reserves a load slot, blocking until one is free or ctx is canceled.
func (c *Controller) AcquireLoad(ctx context.Context) error {
	if c == nil {
		return nil
	}
	return c.loadSem.Acquire(ctx, 1)
}

// ReleaseLoad releases a load slot.
func (c *Controller) ReleaseLoad() {
	if c == nil {
		return
	}
	c.loadSem.Release(1)
}

// ReserveBuffer reserves n bytes of buffer memory.
// If a hard limit is configured and usage would exceed it,
// this blocks until memory is available or ctx is canceled.
// Requests larger than the limit are clamped to the limit.
func (c *Controller) ReserveBuffer(ctx context.Context, n int64) (int64, error) {
	if c == nil || n <= 0 {
		return 0, nil
	}

	if c.bufSem != nil {
		n = min(n, c.cfg.BufferLimitBytes)
		if err := c.bufSem.Acquire(ctx, n); err != nil {
			return 0, err
		}
	}

	return n, nil
}

// ReleaseBuffer releases n bytes previously returned by ReserveBuffer.
func (c *Controller) ReleaseBuffer(n int64) {
	if c == nil || n <= 0 {
		return
	}

	if c.bufSem != nil {
		c.bufSem.Release(n)
	}
}

// WaitRead waits until the read limit allows n bytes.
func (c *Controller) WaitRead(ctx context.Context, n int) error {
	if c == nil || c.readLimiter == nil || n <= 0 {
		return nil
	}
	return c.readLimiter.WaitN(ctx, n)
}

// readChunk returns the largest read the limiter can admit at once.
func (c *Controller) readChunk(n int) int {
	if c == nil || c.readLimiter == nil {
		return n
	}
	return min(n, c.readLimiter.Burst())
}
