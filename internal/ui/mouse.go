package ui

import (
	"strings"

	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/atomicstack/tmux-popup-select/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

const itemZonePrefix = "item:"

func itemZoneID(item menu.Item) string {
	return itemZonePrefix + item.ID()
}

// handleMouseMsg hit-tests the event against the zones marked by View.
func (m *Model) handleMouseMsg(msg tea.Msg) tea.Cmd {
	ev, ok := msg.(tea.MouseMsg)
	if !ok {
		return nil
	}
	target := m.zoneAt(ev)
	switch {
	case ev.Action == tea.MouseActionMotion:
		m.hover(target)
		return nil
	case ev.Action != tea.MouseActionPress:
		return nil
	case ev.Button == tea.MouseButtonWheelUp:
		return m.wheel(state.KeyArrowUp)
	case ev.Button == tea.MouseButtonWheelDown:
		return m.wheel(state.KeyArrowDown)
	case ev.Button == tea.MouseButtonLeft:
		return m.click(target)
	}
	return nil
}

func (m *Model) zoneAt(ev tea.MouseMsg) string {
	ids := []string{fieldID, doneID}
	if m.sel.Menu().Phase().Visible() {
		for _, item := range m.sel.Menu().Rows() {
			ids = append(ids, itemZoneID(item))
		}
	}
	for _, id := range ids {
		if z := m.zones.Get(id); z != nil && z.InBounds(ev) {
			return id
		}
	}
	return ""
}

func (m *Model) itemForZone(target string) menu.Item {
	id, ok := strings.CutPrefix(target, itemZonePrefix)
	if !ok {
		return nil
	}
	rows := m.sel.Menu().Rows()
	if idx := rows.IndexOfID(id); idx >= 0 {
		return rows[idx]
	}
	return nil
}

func (m *Model) hover(target string) {
	if item := m.itemForZone(target); item != nil {
		m.sel.HoverItem(item)
	}
}

func (m *Model) click(target string) tea.Cmd {
	switch {
	case target == fieldID:
		m.focus.Focus(fieldID)
		return m.sel.Toggle()
	case target == doneID:
		m.focus.Focus(doneID)
		closeCmd := m.sel.FocusOut(doneID)
		return tea.Batch(closeCmd, m.submit())
	case strings.HasPrefix(target, itemZonePrefix):
		if item := m.itemForZone(target); item != nil {
			return m.sel.ClickItem(item)
		}
		return nil
	}
	return m.sel.ClickAway()
}

func (m *Model) wheel(name string) tea.Cmd {
	if !m.sel.IsOpen() {
		return nil
	}
	_, cmd := m.sel.HandleFieldKey(state.Key{Name: name})
	return cmd
}
