package dispatcher

import (
	"github.com/atomicstack/tmux-popup-select/internal/backend"
	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/atomicstack/tmux-popup-select/internal/state"
)

type Result struct {
	OptionsUpdated bool
	// Structural is set when options were added, removed or reordered.
	Structural bool
	Count      int
}

type Dispatcher struct {
	options state.OptionStore
	prepare func([]menu.Entry) []menu.Entry
}

// New returns a dispatcher feeding options. prepare, when set, rewrites
// reloaded entries before they reach the store.
func New(options state.OptionStore, prepare func([]menu.Entry) []menu.Entry) *Dispatcher {
	return &Dispatcher{options: options, prepare: prepare}
}

func (d *Dispatcher) Handle(evt backend.Event) Result {
	var res Result
	if evt.Err != nil {
		events.Backend.Error(evt.Path, evt.Err)
		return res
	}
	entries := evt.Entries
	if d.prepare != nil {
		entries = d.prepare(entries)
	}
	res.Structural = d.options.SetEntries(entries)
	res.OptionsUpdated = true
	res.Count = len(d.options.Items())
	events.Backend.Reload(evt.Path, res.Count)
	return res
}
