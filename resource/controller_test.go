package resource

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// tryReserve reports whether n bytes can be reserved right now.
func tryReserve(t *testing.T, c *Controller, n int64) bool {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	got, err := c.ReserveBuffer(ctx, n)
	if err != nil {
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		return false
	}
	c.ReleaseBuffer(got)
	return true
}

func TestController_Buffer(t *testing.T) {
	c := NewController(Config{BufferLimitBytes: 100})

	n, err := c.ReserveBuffer(context.Background(), 50)
	require.NoError(t, err)
	assert.Equal(t, int64(50), n)

	_, err = c.ReserveBuffer(context.Background(), 40)
	require.NoError(t, err)

	assert.True(t, tryReserve(t, c, 10))
	assert.False(t, tryReserve(t, c, 20))

	c.ReleaseBuffer(50)
	assert.True(t, tryReserve(t, c, 60))
	assert.False(t, tryReserve(t, c, 61))
}

func TestController_BufferClamp(t *testing.T) {
	c := NewController(Config{BufferLimitBytes: 10})

	n, err := c.ReserveBuffer(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(10), n)
	assert.False(t, tryReserve(t, c, 1))

	c.ReleaseBuffer(n)
	assert.True(t, tryReserve(t, c, 10))
}

func TestController_UnlimitedBuffer(t *testing.T) {
	c := NewController(Config{})

	n, err := c.ReserveBuffer(context.Background(), 1000)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), n)
	assert.True(t, tryReserve(t, c, 1<<40))
	c.ReleaseBuffer(n)
}

func TestController_Loads(t *testing.T) {
	c := NewController(Config{MaxConcurrentLoads: 2})

	require.NoError(t, c.AcquireLoad(context.Background()))
	require.NoError(t, c.AcquireLoad(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireLoad(ctx), context.DeadlineExceeded)

	c.ReleaseLoad()
	require.NoError(t, c.AcquireLoad(context.Background()))
}

func TestController_DefaultSingleLoad(t *testing.T) {
	c := NewController(Config{})
	require.NoError(t, c.AcquireLoad(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, c.AcquireLoad(ctx), context.DeadlineExceeded)
}

func TestController_Nil(t *testing.T) {
	var c *Controller

	require.NoError(t, c.AcquireLoad(context.Background()))
	c.ReleaseLoad()

	n, err := c.ReserveBuffer(context.Background(), 10)
	require.NoError(t, err)
	assert.Zero(t, n)
	c.ReleaseBuffer(n)
	require.NoError(t, c.WaitRead(context.Background(), 10))
}

func TestRateLimitedReader(t *testing.T) {
	data := strings.Repeat("x", 64)

	t.Run("chunks to burst", func(t *testing.T) {
		c := NewController(Config{ReadLimitBytesPerSec: 1 << 20})
		r := NewRateLimitedReader(context.Background(), strings.NewReader(data), c)

		var buf bytes.Buffer
		_, err := io.Copy(&buf, r)
		require.NoError(t, err)
		assert.Equal(t, data, buf.String())
	})

	t.Run("small burst", func(t *testing.T) {
		c := NewController(Config{ReadLimitBytesPerSec: 16})
		r := NewRateLimitedReader(context.Background(), strings.NewReader(data[:16]), c)

		p := make([]byte, 64)
		n, err := r.Read(p)
		require.NoError(t, err)
		assert.Equal(t, 16, n)
	})

	t.Run("canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		r := NewRateLimitedReader(ctx, strings.NewReader(data), NewController(Config{}))
		_, err := r.Read(make([]byte, 8))
		assert.ErrorIs(t, err, context.Canceled)
	})
}
