package ui

import (
	"fmt"

	"github.com/atomicstack/tmux-popup-select/internal/backend"
	tea "github.com/charmbracelet/bubbletea"
)

func waitForBackendEvent(w *backend.Watcher) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-w.Events()
		if !ok {
			return backendDoneMsg{}
		}
		return backendEventMsg{event: evt}
	}
}

type backendEventMsg struct {
	event backend.Event
}

type backendDoneMsg struct{}

func (m *Model) handleBackendEventMsg(msg tea.Msg) tea.Cmd {
	eventMsg, ok := msg.(backendEventMsg)
	if !ok {
		return nil
	}
	m.applyBackendEvent(eventMsg.event)
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

func (m *Model) handleBackendDoneMsg(msg tea.Msg) tea.Cmd {
	m.backend = nil
	return nil
}

// applyBackendEvent merges reloaded entries and lets the select pick up a
// selection from options that were added or moved.
func (m *Model) applyBackendEvent(evt backend.Event) {
	if evt.Err != nil {
		m.errMsg = evt.Err.Error()
		return
	}
	if m.dispatcher == nil {
		return
	}
	res := m.dispatcher.Handle(evt)
	if !res.OptionsUpdated {
		return
	}
	if res.Structural {
		m.sel.HandleSlotChange()
	}
	m.infoMsg = fmt.Sprintf("reloaded %d options", res.Count)
}
