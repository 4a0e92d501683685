package ui

import (
	"errors"
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/backend"
	"github.com/atomicstack/tmux-popup-select/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/atomicstack/tmux-popup-select/internal/popover"
	"github.com/atomicstack/tmux-popup-select/internal/state"
	"github.com/atomicstack/tmux-popup-select/internal/ui/popup"
	"github.com/atomicstack/tmux-popup-select/internal/ui/selector"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fruit() []menu.Entry {
	return []menu.Entry{
		{Value: "apple", Label: "Apple"},
		{Value: "banana", Label: "Banana"},
		{Value: "cherry", Label: "Cherry", Disabled: true},
		{Value: "damson", Label: "Damson"},
	}
}

func quickOptions() selector.Options {
	return selector.Options{
		Name: "fruit",
		Menu: popup.Options{Popover: popover.Config{Quick: true}},
	}
}

func newTestModel(t *testing.T, opts Options) *Harness {
	t.Helper()
	if opts.Store == nil {
		opts.Store = state.NewOptionStore(fruit())
	}
	if opts.Select.Menu.Popover == (popover.Config{}) {
		name, required := opts.Select.Name, opts.Select.Required
		opts.Select = quickOptions()
		if name != "" {
			opts.Select.Name = name
		}
		opts.Select.Required = required
	}
	if opts.Index == 0 && opts.Value == "" {
		opts.Index = -1
	}
	m := NewModel(opts)
	t.Cleanup(m.Close)
	h := NewHarness(m)
	h.Start()
	return h
}

func keyMsg(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyboardCommitSubmits(t *testing.T) {
	h := newTestModel(t, Options{})

	h.Send(keyMsg(tea.KeyDown))
	require.True(t, h.Model().Select().IsOpen())
	assert.Equal(t, "apple", h.Model().Select().Menu().CurrentItem().Value())

	h.Send(keyMsg(tea.KeyDown))
	h.Send(keyMsg(tea.KeyDown))
	assert.Equal(t, "damson", h.Model().Select().Menu().CurrentItem().Value(), "disabled option is skipped")

	h.Send(keyMsg(tea.KeyEnter))
	require.True(t, h.Quit())
	res := h.Model().Result()
	assert.True(t, res.Committed)
	assert.Equal(t, "fruit", res.Name)
	assert.Equal(t, "damson", res.Value)
	assert.Equal(t, 3, res.Index)
}

func TestStayOnSelectKeepsRunning(t *testing.T) {
	h := newTestModel(t, Options{StayOnSelect: true})

	h.Send(keyMsg(tea.KeyDown))
	h.Send(keyMsg(tea.KeyEnter))
	assert.False(t, h.Quit())
	assert.Equal(t, "apple", h.Model().Select().Value())
	assert.False(t, h.Model().Select().IsOpen())

	h.Send(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.True(t, h.Quit())
	assert.Equal(t, "apple", h.Model().Result().Value)
}

func TestTypeaheadOpensAndFocuses(t *testing.T) {
	h := newTestModel(t, Options{})

	h.Send(runes("b"))
	require.True(t, h.Model().Select().IsOpen())
	assert.Equal(t, "banana", h.Model().Select().Menu().CurrentItem().Value())
	assert.Equal(t, h.Model().Select().Menu().CurrentItem().ID(), h.Model().Select().ActiveDescendant())
}

func TestEscapeClosesMenuThenCancels(t *testing.T) {
	h := newTestModel(t, Options{})

	h.Send(keyMsg(tea.KeyDown))
	require.True(t, h.Model().Select().IsOpen())

	h.Send(keyMsg(tea.KeyEsc))
	assert.False(t, h.Model().Select().IsOpen())
	assert.False(t, h.Quit())

	h.Send(keyMsg(tea.KeyEsc))
	require.True(t, h.Quit())
	assert.False(t, h.Model().Result().Committed)
	assert.Equal(t, -1, h.Model().Result().Index)
}

func TestCtrlCQuits(t *testing.T) {
	h := newTestModel(t, Options{})
	h.Send(keyMsg(tea.KeyDown))
	h.Send(keyMsg(tea.KeyCtrlC))
	require.True(t, h.Quit())
	assert.False(t, h.Model().Result().Committed)
}

func TestTabToDoneSubmitsInitialValue(t *testing.T) {
	h := newTestModel(t, Options{Value: "banana"})

	h.Send(keyMsg(tea.KeyDown))
	require.True(t, h.Model().Select().IsOpen())
	assert.Equal(t, "banana", h.Model().Select().Menu().CurrentItem().Value(), "open focuses the selection")

	h.Send(keyMsg(tea.KeyTab))
	assert.Equal(t, doneID, h.Model().focus.Active())
	assert.False(t, h.Model().Select().IsOpen(), "leaving the field closes the menu")

	h.Send(keyMsg(tea.KeyEnter))
	require.True(t, h.Quit())
	assert.Equal(t, "banana", h.Model().Result().Value)
	assert.Equal(t, 1, h.Model().Result().Index)
}

func TestInitialIndex(t *testing.T) {
	h := newTestModel(t, Options{Index: 2})
	assert.Equal(t, "cherry", h.Model().Select().Value(), "index selection reaches disabled options")
}

func TestShiftTabWraps(t *testing.T) {
	h := newTestModel(t, Options{})
	h.Send(keyMsg(tea.KeyShiftTab))
	assert.Equal(t, doneID, h.Model().focus.Active())
	h.Send(keyMsg(tea.KeyShiftTab))
	assert.Equal(t, fieldID, h.Model().focus.Active())
}

func TestRequiredBlocksSubmit(t *testing.T) {
	h := newTestModel(t, Options{Select: selector.Options{Name: "fruit", Required: true}})

	h.Send(keyMsg(tea.KeyTab))
	h.Send(keyMsg(tea.KeyEnter))
	assert.False(t, h.Quit())
	assert.NotEmpty(t, h.Model().errMsg)
	assert.Contains(t, h.View(), "Error:")

	h.Send(keyMsg(tea.KeyShiftTab))
	h.Send(keyMsg(tea.KeyDown))
	h.Send(keyMsg(tea.KeyEnter))
	require.True(t, h.Quit())
	assert.Equal(t, "apple", h.Model().Result().Value)
}

func TestBackendReloadAppliesPendingValue(t *testing.T) {
	store := state.NewOptionStore(fruit())
	disp := dispatcher.New(store, nil)
	h := newTestModel(t, Options{Store: store, Dispatcher: disp, Value: "elder"})
	assert.Empty(t, h.Model().Select().Value())

	entries := append(fruit(), menu.Entry{Value: "elder", Label: "Elderberry"})
	h.Send(backendEventMsg{event: backend.Event{Path: "items.txt", Entries: entries}})

	assert.Equal(t, "elder", h.Model().Select().Value())
	assert.Equal(t, "Elderberry", h.Model().Select().DisplayText())
	assert.Equal(t, "reloaded 5 options", h.Model().infoMsg)
}

func TestBackendErrorShown(t *testing.T) {
	store := state.NewOptionStore(fruit())
	h := newTestModel(t, Options{Store: store, Dispatcher: dispatcher.New(store, nil)})

	h.Send(backendEventMsg{event: backend.Event{Path: "items.txt", Err: errors.New("boom")}})
	assert.Equal(t, "boom", h.Model().errMsg)
	assert.Len(t, store.Items(), 4)
}

func TestBackendDoneStopsWaiting(t *testing.T) {
	h := newTestModel(t, Options{})
	h.Send(backendDoneMsg{})
	assert.Nil(t, h.Model().backend)
}

func TestEmptyStoreRetriesOnce(t *testing.T) {
	h := newTestModel(t, Options{Store: state.NewOptionStore(nil)})
	assert.False(t, h.Quit())
	assert.Empty(t, h.Model().Select().Value())
	assert.Contains(t, h.View(), placeholderText)
}

// clickOn runs a click the way handleMouseMsg does once the zone is known.
func clickOn(h *Harness, target string) {
	m := h.Model()
	h.processCmd(m.finishUpdate([]tea.Cmd{m.click(target)}))
}

func TestMouseClicks(t *testing.T) {
	h := newTestModel(t, Options{})
	m := h.Model()

	clickOn(h, fieldID)
	require.True(t, m.Select().IsOpen())

	clickOn(h, "")
	assert.False(t, m.Select().IsOpen(), "click away closes")

	clickOn(h, fieldID)
	banana := m.Select().Menu().Rows()[1]
	m.hover(itemZoneID(banana))
	assert.Equal(t, banana, m.Select().Menu().CurrentItem())
	assert.False(t, m.Select().Menu().FocusVisible())

	cherry := m.Select().Menu().Rows()[2]
	clickOn(h, itemZoneID(cherry))
	assert.False(t, h.Quit(), "disabled option ignores clicks")

	clickOn(h, itemZoneID(banana))
	require.True(t, h.Quit())
	assert.Equal(t, "banana", m.Result().Value)
}

func TestWheelMovesWhenOpen(t *testing.T) {
	h := newTestModel(t, Options{})
	m := h.Model()
	assert.Nil(t, m.wheel("ArrowDown"))

	h.Send(keyMsg(tea.KeyDown))
	h.processCmd(m.wheel("ArrowDown"))
	assert.Equal(t, "banana", m.Select().Menu().CurrentItem().Value())
}

func TestWindowSizeRespectsFixedSize(t *testing.T) {
	h := newTestModel(t, Options{Width: 40})
	h.Send(tea.WindowSizeMsg{Width: 100, Height: 30})
	assert.Equal(t, 40, h.Model().width)
	assert.Equal(t, 30, h.Model().height)
}
