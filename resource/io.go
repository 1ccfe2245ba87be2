package resource

import (
	"context"
	"io"
)

// RateLimitedReader wraps an io.Reader with the controller's read limit.
type RateLimitedReader struct {
	ctx context.Context
	r   io.Reader
	rc  *Controller
}

// NewRateLimitedReader creates a new RateLimitedReader.
func NewRateLimitedReader(ctx context.Context, r io.Reader, rc *Controller) *RateLimitedReader {
	return &RateLimitedReader{
		ctx: ctx,
		r:   r,
		rc:  rc,
	}
}

// Read reads at most one limiter burst and accounts for the bytes actually read.
func (r *RateLimitedReader) Read(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	if err := r.ctx.Err(); err != nil {
		return 0, err
	}

	n, err := r.r.Read(p[:r.rc.readChunk(len(p))])
	if n > 0 {
		if werr := r.rc.WaitRead(r.ctx, n); werr != nil {
			return n, werr
		}
	}
	return n, err
}
