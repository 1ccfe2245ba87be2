package reload

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// Schedule reloads on a cron schedule, e.g. "*/5 * * * *" or "@every 10m".
// Schedule may be called several times; all schedules share one scheduler.
func (r *Reloader) Schedule(expr string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}

	sched := r.sched
	if sched == nil {
		sched = cron.New()
	}

	if _, err := sched.AddFunc(expr, func() { r.trigger("schedule") }); err != nil {
		return fmt.Errorf("reload: invalid schedule %q: %w", expr, err)
	}

	if r.sched == nil {
		sched.Start()
		r.sched = sched
	}
	return nil
}
