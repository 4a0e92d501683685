package events

import "github.com/atomicstack/tmux-popup-select/internal/logging"

type MenuTracer struct{}

type NavTracer struct{}

type TypeaheadTracer struct{}

type CommandTracer struct{}

type CloseReason string

const (
	CloseReasonClose    CloseReason = "close"
	CloseReasonEscape   CloseReason = "escape"
	CloseReasonSelect   CloseReason = "select"
	CloseReasonToggle   CloseReason = "toggle"
	CloseReasonBlur     CloseReason = "blur"
	CloseReasonClickOut CloseReason = "click-away"
)

var (
	Menu      = MenuTracer{}
	Nav       = NavTracer{}
	Typeahead = TypeaheadTracer{}
	Command   = CommandTracer{}
)

func (MenuTracer) Open(menuID string, items int) {
	logging.Trace("menu.open", map[string]interface{}{"menu": menuID, "items": items})
}

func (MenuTracer) Close(menuID string, reason CloseReason) {
	logging.Trace("menu.close", map[string]interface{}{"menu": menuID, "reason": string(reason)})
}

func (MenuTracer) Select(menuID, itemID string, index int) {
	logging.Trace("menu.select", map[string]interface{}{"menu": menuID, "item": itemID, "index": index})
}

func (MenuTracer) ItemFocus(menuID, itemID string, index int) {
	logging.Trace("menu.item-focus", map[string]interface{}{"menu": menuID, "item": itemID, "index": index})
}

func (NavTracer) Action(key, action string, open bool) {
	logging.Trace("nav.action", map[string]interface{}{"key": key, "action": action, "open": open})
}

func (NavTracer) Move(action string, from, to int) {
	logging.Trace("nav.move", map[string]interface{}{"action": action, "from": from, "to": to})
}

func (TypeaheadTracer) Search(buffer string, index int) {
	logging.Trace("typeahead.search", map[string]interface{}{"buffer": buffer, "index": index})
}

func (TypeaheadTracer) Clear() {
	logging.Trace("typeahead.clear", nil)
}

func (CommandTracer) Emit(kind, source string, listeners int) {
	logging.Trace("command.emit", map[string]interface{}{"kind": kind, "source": source, "listeners": listeners})
}
