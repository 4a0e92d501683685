// Package popup implements the menu orchestrator: the open/closed state
// machine that turns key and pointer input into roving focus, select and
// close transitions, and delegates the popup's visual lifecycle.
package popup

import (
	"time"

	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/atomicstack/tmux-popup-select/internal/popover"
	"github.com/atomicstack/tmux-popup-select/internal/ui/command"
	"github.com/atomicstack/tmux-popup-select/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// Options are the recognised menu flags.
type Options struct {
	KeepOpenOnBlur      bool
	KeepOpenOnItemClick bool
	KeepOpenOnClickAway bool
	// NoListControl leaves key handling to the owner.
	NoListControl bool
	// NoFocusControl stops the menu from moving host focus on open and close.
	NoFocusControl bool
	Wrap           bool
	Popover        popover.Config

	Height           int
	ScrollPadding    int
	TypeaheadWindow  time.Duration
	SingleCharSearch bool
}

// FocusManager tracks which host element holds keyboard focus.
type FocusManager interface {
	Active() string
	Focus(id string)
}

// Control is the trigger element that owns the menu.
type Control interface {
	ID() string
	SetExpanded(bool)
}

// Config wires a menu to its host.
type Config struct {
	ID      string
	Items   menu.Source
	Options Options
	Bus     *command.Bus
	Focus   FocusManager
	Control Control
	// IsItem, when set, limits which rows take part in navigation.
	IsItem func(menu.Item) bool
	// Lifecycle defaults to a popover.Controller reading Options.Popover.
	Lifecycle popover.Lifecycle
}

// Menu is the open/closed state machine over a list of items.
type Menu struct {
	id        string
	items     menu.Source
	opts      Options
	bus       *command.Bus
	focus     FocusManager
	control   Control
	lifecycle popover.Lifecycle
	list      *state.ListController
	viewport  *Viewport

	open             bool
	lastFocused      string
	focusVisible     bool
	activeDescendant string
	// movedWhileOpening is set when Home, End or typeahead moved focus
	// before the current open animation settled.
	movedWhileOpening bool
}

// New builds a closed menu.
func New(cfg Config) *Menu {
	m := &Menu{
		id:           cfg.ID,
		items:        cfg.Items,
		opts:         cfg.Options,
		bus:          cfg.Bus,
		focus:        cfg.Focus,
		control:      cfg.Control,
		lifecycle:    cfg.Lifecycle,
		focusVisible: true,
	}
	if m.items == nil {
		m.items = func() []menu.Item { return nil }
	}
	if m.bus == nil {
		m.bus = command.New()
	}
	if m.lifecycle == nil {
		m.lifecycle = popover.New(m.id, func() popover.Config { return m.opts.Popover })
	}
	m.viewport = NewViewport(m.opts.Height, func() int { return len(menu.Snapshot(m.items)) })
	search := state.NewTypeahead(m.opts.TypeaheadWindow)
	search.SingleChar = m.opts.SingleCharSearch
	m.list = state.NewListController(state.ListConfig{
		Items:               m.items,
		IsItem:              cfg.IsItem,
		Container:           m.viewport,
		ItemBounds:          m.itemBounds,
		ScrollPadding:       m.opts.ScrollPadding,
		SetActiveDescendant: m.setActiveDescendant,
		OnFocus:             m.itemFocused,
		Wrap:                func() bool { return m.opts.Wrap },
		Typeahead:           search,
	})
	return m
}

func (m *Menu) ID() string {
	return m.id
}

// ContainerID is the focus target of the open menu.
func (m *Menu) ContainerID() string {
	return m.id + ":menu"
}

func (m *Menu) Bus() *command.Bus {
	return m.bus
}

func (m *Menu) Options() Options {
	return m.opts
}

// SetOptions replaces the flags. Popover settings apply to the next
// animation.
func (m *Menu) SetOptions(opts Options) {
	m.opts = opts
	m.viewport.SetHeight(opts.Height)
	search := m.list.Search()
	search.SingleChar = opts.SingleCharSearch
	if opts.TypeaheadWindow > 0 {
		search.Window = opts.TypeaheadWindow
	}
}

func (m *Menu) IsOpen() bool {
	return m.open
}

func (m *Menu) Phase() popover.Phase {
	return m.lifecycle.Phase()
}

func (m *Menu) Viewport() *Viewport {
	return m.viewport
}

// Rows returns every item in display order, disabled ones included.
func (m *Menu) Rows() menu.Collection {
	return menu.Snapshot(m.items)
}

// Items returns the navigable items.
func (m *Menu) Items() menu.Collection {
	return m.list.Items()
}

func (m *Menu) CurrentIndex() int {
	return m.list.CurrentIndex()
}

func (m *Menu) CurrentItem() menu.Item {
	return m.list.CurrentItem()
}

// ActiveDescendant is the id of the focused item, empty when focus control
// is off or nothing has been focused.
func (m *Menu) ActiveDescendant() string {
	return m.activeDescendant
}

// FocusVisible reports whether the keyboard focus indicator should be drawn.
func (m *Menu) FocusVisible() bool {
	return m.focusVisible
}

func (m *Menu) FocusFirstItem() bool {
	return m.list.FocusFirstItem()
}

func (m *Menu) FocusLastItem() bool {
	return m.list.FocusLastItem()
}

func (m *Menu) FocusItem(item menu.Item) bool {
	return m.list.FocusItem(item)
}

// Show opens the menu.
func (m *Menu) Show() tea.Cmd {
	if m.open {
		return nil
	}
	m.open = true
	m.movedWhileOpening = false
	events.Menu.Open(m.id, len(m.list.Items()))
	m.emit(command.KindOpen, nil, -1)
	if m.focus != nil {
		m.lastFocused = m.focus.Active()
	}
	if m.control != nil {
		m.control.SetExpanded(true)
	}
	return m.lifecycle.AnimateOpen()
}

// Close closes the menu.
func (m *Menu) Close() tea.Cmd {
	return m.closeWith(events.CloseReasonClose)
}

// Toggle flips the open state.
func (m *Menu) Toggle() tea.Cmd {
	if m.open {
		return m.closeWith(events.CloseReasonToggle)
	}
	return m.Show()
}

func (m *Menu) closeWith(reason events.CloseReason) tea.Cmd {
	if !m.open {
		return nil
	}
	m.open = false
	events.Menu.Close(m.id, reason)
	m.emit(command.KindClose, nil, -1)
	m.list.ClearSearch()
	if m.control != nil {
		m.control.SetExpanded(false)
	}
	return m.lifecycle.AnimateClose()
}

// Update applies the end of an open or close animation. Effects queued by a
// transition that has since been reversed are dropped.
func (m *Menu) Update(msg tea.Msg) tea.Cmd {
	settled, ok := msg.(popover.SettledMsg)
	if !ok || settled.ID != m.id {
		return nil
	}
	if !m.lifecycle.Settle(settled) {
		return nil
	}
	if settled.Opening {
		if !m.open || m.opts.NoFocusControl {
			return nil
		}
		moved := m.movedWhileOpening
		m.movedWhileOpening = false
		if m.focus != nil {
			m.focus.Focus(m.ContainerID())
		}
		if !moved {
			m.list.FocusFirstItem()
		}
		return nil
	}
	if m.open || m.lastFocused == "" {
		return nil
	}
	if !m.opts.NoFocusControl && m.focus != nil {
		m.focus.Focus(m.lastFocused)
	}
	m.lastFocused = ""
	return nil
}

// HandleKey resolves key against the open state and applies the resulting
// action. It reports whether the key was consumed.
func (m *Menu) HandleKey(key state.Key) (bool, tea.Cmd) {
	if m.opts.NoListControl {
		return false, nil
	}
	action := state.ActionFromKey(key, m.open)
	events.Nav.Action(key.Name, action.String(), m.open)
	m.focusVisible = true

	switch action {
	case state.ActionFirst, state.ActionLast:
		cmd := m.Show()
		m.list.Move(action)
		m.noteOpeningMove()
		return true, cmd
	case state.ActionNext, state.ActionPrevious, state.ActionPageUp, state.ActionPageDown:
		m.list.Move(action)
		return true, nil
	case state.ActionCloseSelect:
		item, index := m.list.CurrentItem(), m.list.CurrentIndex()
		if item == nil {
			return true, nil
		}
		return true, m.selectItem(item, index)
	case state.ActionClose:
		return true, m.closeWith(events.CloseReasonEscape)
	case state.ActionType:
		cmd := m.Show()
		if m.list.HandleType(key.Name) {
			m.noteOpeningMove()
		}
		return true, cmd
	case state.ActionOpen:
		return true, m.Show()
	}
	return false, nil
}

func (m *Menu) noteOpeningMove() {
	if m.lifecycle.Phase() == popover.PhaseOpening {
		m.movedWhileOpening = true
	}
}

// HoverItem moves focus to item under the pointer and hides the keyboard
// focus indicator.
func (m *Menu) HoverItem(item menu.Item) {
	m.focusVisible = false
	m.list.FocusItem(item)
}

// ClickItem selects item regardless of the keyboard position.
func (m *Menu) ClickItem(item menu.Item) tea.Cmd {
	index := m.list.Items().IndexOf(item)
	if index < 0 {
		return nil
	}
	return m.selectItem(item, index)
}

// FocusOut closes the menu when focus moves to a target outside the menu,
// its items and its control.
func (m *Menu) FocusOut(target string) tea.Cmd {
	if m.opts.KeepOpenOnBlur || m.Contains(target) {
		return nil
	}
	return m.closeWith(events.CloseReasonBlur)
}

// ClickAway closes the menu after a pointer press outside it.
func (m *Menu) ClickAway() tea.Cmd {
	if m.opts.KeepOpenOnClickAway {
		return nil
	}
	return m.closeWith(events.CloseReasonClickOut)
}

func (m *Menu) selectItem(item menu.Item, index int) tea.Cmd {
	item.SetFocused(false)
	events.Menu.Select(m.id, item.ID(), index)
	m.emit(command.KindSelect, item, index)
	if m.opts.KeepOpenOnItemClick {
		return nil
	}
	return m.closeWith(events.CloseReasonSelect)
}

// Contains reports whether target is the menu, one of its items or its control.
func (m *Menu) Contains(target string) bool {
	if target == "" {
		return false
	}
	if target == m.id || target == m.ContainerID() {
		return true
	}
	if m.control != nil && target == m.control.ID() {
		return true
	}
	return menu.Snapshot(m.items).IndexOfID(target) >= 0
}

// itemBounds maps a navigable index to its display row; disabled items
// still occupy a row.
func (m *Menu) itemBounds(index int) (state.Rect, bool) {
	items := m.list.Items()
	if index < 0 || index >= len(items) {
		return state.Rect{}, false
	}
	return m.viewport.ItemBounds(m.Rows().IndexOf(items[index]))
}

func (m *Menu) setActiveDescendant(id string) {
	if m.opts.NoFocusControl {
		return
	}
	m.activeDescendant = id
}

func (m *Menu) itemFocused(item menu.Item, index int) {
	events.Menu.ItemFocus(m.id, item.ID(), index)
	m.emit(command.KindItemFocus, item, index)
}

func (m *Menu) emit(kind command.Kind, item menu.Item, index int) {
	m.bus.Emit(command.Notification{Kind: kind, Source: m.id, Item: item, Index: index})
}
