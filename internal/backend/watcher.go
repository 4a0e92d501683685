package backend

import (
	"context"
	"os"
	"sync"
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/menu"
)

// Event conveys reloaded entries or an error from a poll.
type Event struct {
	Path    string
	Entries []menu.Entry
	Err     error
}

// Loader reads the entries stored at path.
type Loader func(path string) ([]menu.Entry, error)

type fileStamp struct {
	modTime time.Time
	size    int64
}

// Watcher polls an items file at a fixed interval and publishes an event
// whenever its contents may have changed.
type Watcher struct {
	path     string
	interval time.Duration
	gap      time.Duration
	load     Loader

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// DefaultReloadGap is the minimum time between two reloads.
const DefaultReloadGap = 250 * time.Millisecond

// NewWatcher starts polling path every interval. The file's state at
// construction is the baseline, so no event is sent until it changes.
// Reloads are at least gap apart; writes landing inside the gap are folded
// into the next load.
func NewWatcher(path string, interval, gap time.Duration, load Loader) *Watcher {
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     path,
		interval: interval,
		gap:      gap,
		load:     load,
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}

	w.wg.Add(1)
	go w.poll(stat(path))

	go func() {
		w.wg.Wait()
		close(w.events)
	}()

	return w
}

// Events returns a channel of reload events.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Stop cancels the watcher. The poller exits after its current load
// completes; use Wait if a clean drain is required (e.g. in tests).
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the poller has exited and the events channel is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) poll(last fileStamp) {
	defer w.wg.Done()

	throttle := newThrottle(w.gap)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
		}
		current := stat(w.path)
		if current == last {
			continue
		}
		if !throttle.wait(w.ctx) {
			return
		}
		last = stat(w.path)
		entries, err := w.load(w.path)
		evt := Event{Path: w.path, Entries: entries, Err: err}
		select {
		case <-w.ctx.Done():
			return
		case w.events <- evt:
		}
	}
}

func stat(path string) fileStamp {
	info, err := os.Stat(path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size()}
}
