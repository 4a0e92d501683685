package events

import (
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/logging"
)

type SelectTracer struct{}

type PopoverTracer struct{}

type BackendTracer struct{}

var (
	Select  = SelectTracer{}
	Popover = PopoverTracer{}
	Backend = BackendTracer{}
)

func (SelectTracer) Change(value string, index int) {
	logging.Trace("select.change", map[string]interface{}{"value": value, "index": index})
}

func (SelectTracer) Recompute(changed bool, value, displayText string) {
	logging.Trace("select.recompute", map[string]interface{}{"changed": changed, "value": value, "display": displayText})
}

func (SelectTracer) Retry(pending bool) {
	logging.Trace("select.retry", map[string]interface{}{"pending": pending})
}

func (SelectTracer) Reset(value string) {
	logging.Trace("select.reset", map[string]interface{}{"value": value})
}

func (PopoverTracer) Animate(id string, opening bool, d time.Duration) {
	logging.Trace("popover.animate", map[string]interface{}{"id": id, "opening": opening, "duration_ms": d.Milliseconds()})
}

func (PopoverTracer) Settled(id string, opening, stale bool) {
	logging.Trace("popover.settled", map[string]interface{}{"id": id, "opening": opening, "stale": stale})
}

func (BackendTracer) Reload(path string, entries int) {
	logging.Trace("backend.reload", map[string]interface{}{"path": path, "entries": entries})
}

func (BackendTracer) Error(path string, err error) {
	if err == nil {
		return
	}
	logging.Trace("backend.error", map[string]interface{}{"path": path, "error": err.Error()})
}
