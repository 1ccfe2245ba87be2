package tabview

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordRender is called after each pipeline pass.
	// rows is the number of records on the rendered page, err is non-nil
	// if the pass degraded.
	RecordRender(duration time.Duration, rows int, err error)

	// RecordControl is called after each control operation on a view.
	// applied is false for rejected no-ops such as out-of-range navigation.
	RecordControl(op string, applied bool)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRender(time.Duration, int, error) {}
func (NoopMetricsCollector) RecordControl(string, bool)             {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RenderCount      atomic.Int64
	RenderErrors     atomic.Int64
	RenderTotalNanos atomic.Int64
	RowsRendered     atomic.Int64
	ControlCount     atomic.Int64
	ControlRejected  atomic.Int64
}

// RecordRender implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRender(duration time.Duration, rows int, err error) {
	b.RenderCount.Add(1)
	b.RenderTotalNanos.Add(duration.Nanoseconds())
	b.RowsRendered.Add(int64(rows))
	if err != nil {
		b.RenderErrors.Add(1)
	}
}

// RecordControl implements MetricsCollector.
func (b *BasicMetricsCollector) RecordControl(_ string, applied bool) {
	b.ControlCount.Add(1)
	if !applied {
		b.ControlRejected.Add(1)
	}
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	RenderCount     int64
	RenderErrors    int64
	RenderAvgNanos  int64
	RowsRendered    int64
	ControlCount    int64
	ControlRejected int64
}

// GetStats returns a snapshot of the collected metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		RenderCount:     b.RenderCount.Load(),
		RenderErrors:    b.RenderErrors.Load(),
		RowsRendered:    b.RowsRendered.Load(),
		ControlCount:    b.ControlCount.Load(),
		ControlRejected: b.ControlRejected.Load(),
	}
	if s.RenderCount > 0 {
		s.RenderAvgNanos = b.RenderTotalNanos.Load() / s.RenderCount
	}
	return s
}
