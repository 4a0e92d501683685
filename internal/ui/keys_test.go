package ui

import (
	"testing"

	"github.com/atomicstack/tmux-popup-select/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestToStateKey(t *testing.T) {
	tests := []struct {
		msg  tea.KeyMsg
		want state.Key
	}{
		{tea.KeyMsg{Type: tea.KeyDown}, state.Key{Name: state.KeyArrowDown}},
		{tea.KeyMsg{Type: tea.KeyUp, Alt: true}, state.Key{Name: state.KeyArrowUp, Alt: true}},
		{tea.KeyMsg{Type: tea.KeyEnter}, state.Key{Name: state.KeyEnter}},
		{tea.KeyMsg{Type: tea.KeySpace}, state.Key{Name: state.KeySpace}},
		{tea.KeyMsg{Type: tea.KeyHome}, state.Key{Name: state.KeyHome}},
		{tea.KeyMsg{Type: tea.KeyEnd}, state.Key{Name: state.KeyEnd}},
		{tea.KeyMsg{Type: tea.KeyPgDown}, state.Key{Name: state.KeyPageDown}},
		{tea.KeyMsg{Type: tea.KeyEsc}, state.Key{Name: state.KeyEscape}},
		{tea.KeyMsg{Type: tea.KeyBackspace}, state.Key{Name: state.KeyBackspace}},
		{tea.KeyMsg{Type: tea.KeyCtrlU}, state.Key{Name: state.KeyClear}},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")}, state.Key{Name: "x"}},
		{tea.KeyMsg{Type: tea.KeyCtrlA}, state.Key{Name: "ctrl+a", Ctrl: true}},
	}
	for _, tt := range tests {
		t.Run(tt.msg.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, toStateKey(tt.msg))
		})
	}
}

func TestFocusRingNext(t *testing.T) {
	ring := newFocusRing("a", "b", "c")
	assert.Equal(t, "a", ring.Active())
	assert.Equal(t, "b", ring.next(1))
	assert.Equal(t, "c", ring.next(-1))
	ring.Focus("c")
	assert.Equal(t, "a", ring.next(1))
	ring.Focus("elsewhere")
	assert.Equal(t, "b", ring.next(1))
}
