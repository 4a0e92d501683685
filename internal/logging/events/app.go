package events

import "github.com/atomicstack/tmux-popup-select/internal/logging"

type AppTracer struct{}

var App = AppTracer{}

func (AppTracer) Start(payload map[string]interface{}) {
	logging.Trace("app.start", payload)
}

func (AppTracer) Exit(value string, committed bool) {
	logging.Trace("app.exit", map[string]interface{}{"value": value, "committed": committed})
}
