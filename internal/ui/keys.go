package ui

import (
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/ui/state"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// keyMap holds the host-level bindings. Navigation keys are resolved by the
// menu and never reach these.
type keyMap struct {
	Quit   key.Binding
	Cancel key.Binding
	Submit key.Binding
	Press  key.Binding
	Next   key.Binding
	Prev   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "submit")),
		Press:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous")),
	}
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.Press, k.Next, k.Submit, k.Cancel}
}

// toStateKey translates a terminal key event into the key names the menu
// resolves actions from.
func toStateKey(msg tea.KeyMsg) state.Key {
	k := state.Key{Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyDown:
		k.Name = state.KeyArrowDown
	case tea.KeyUp:
		k.Name = state.KeyArrowUp
	case tea.KeyEnter:
		k.Name = state.KeyEnter
	case tea.KeySpace:
		k.Name = state.KeySpace
	case tea.KeyHome:
		k.Name = state.KeyHome
	case tea.KeyEnd:
		k.Name = state.KeyEnd
	case tea.KeyPgUp:
		k.Name = state.KeyPageUp
	case tea.KeyPgDown:
		k.Name = state.KeyPageDown
	case tea.KeyEsc:
		k.Name = state.KeyEscape
	case tea.KeyBackspace:
		k.Name = state.KeyBackspace
	case tea.KeyCtrlU:
		k.Name = state.KeyClear
	case tea.KeyRunes:
		k.Name = string(msg.Runes)
	default:
		k.Name = msg.String()
		k.Ctrl = strings.HasPrefix(k.Name, "ctrl+")
	}
	return k
}

func (m *Model) handleKeyMsg(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		return m.cancel()
	case key.Matches(keyMsg, m.keys.Submit):
		return m.submit()
	case key.Matches(keyMsg, m.keys.Next):
		return m.moveFocus(1)
	case key.Matches(keyMsg, m.keys.Prev):
		return m.moveFocus(-1)
	}

	if m.focus.Active() == doneID {
		switch {
		case key.Matches(keyMsg, m.keys.Press):
			return m.submit()
		case key.Matches(keyMsg, m.keys.Cancel):
			return m.cancel()
		}
		return nil
	}

	handled, cmd := m.sel.HandleFieldKey(toStateKey(keyMsg))
	if handled {
		return cmd
	}
	if key.Matches(keyMsg, m.keys.Cancel) {
		return m.cancel()
	}
	return nil
}

// moveFocus moves keyboard focus around the ring; leaving the field closes
// its menu.
func (m *Model) moveFocus(delta int) tea.Cmd {
	from := m.focus.Active()
	to := m.focus.next(delta)
	m.focus.Focus(to)
	if from == fieldID && to != fieldID {
		return m.sel.FocusOut(to)
	}
	return nil
}
