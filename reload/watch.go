package reload

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads whenever one of paths is written or re-created.
//
// Parent directories are watched rather than the files themselves, so
// editors and tools that replace files atomically are handled. Bursts of
// events are coalesced by the debounce interval.
func (r *Reloader) Watch(paths ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	if r.watcher != nil {
		return fmt.Errorf("reload: already watching")
	}

	watched := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("reload: bad path %q: %w", p, err)
		}
		watched[abs] = true
		dirs[filepath.Dir(abs)] = true
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("reload: create watcher: %w", err)
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return fmt.Errorf("reload: watch dir %q: %w", dir, err)
		}
	}
	r.watcher = w

	r.wg.Add(1)
	go r.watchLoop(w, watched)
	return nil
}

// watchLoop runs debounced reloads itself, so Close waits for them.
func (r *Reloader) watchLoop(w *fsnotify.Watcher, watched map[string]bool) {
	defer r.wg.Done()

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-r.ctx.Done():
			return
		case <-fire:
			fire = nil
			r.trigger("file_watch")
		case event, ok := <-w.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			abs, _ := filepath.Abs(event.Name)
			if !watched[abs] {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(r.opts.debounce)
			} else {
				timer.Reset(r.opts.debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			r.opts.logger.Warn("watch error", "error", err)
		}
	}
}
