// Package selector implements a single-value select field: a reconciled
// selection projection driven by a popup menu of options.
package selector

import (
	"errors"

	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
	"github.com/atomicstack/tmux-popup-select/internal/ui/command"
	"github.com/atomicstack/tmux-popup-select/internal/ui/popup"
	"github.com/atomicstack/tmux-popup-select/internal/ui/state"
	tea "github.com/charmbracelet/bubbletea"
)

// ErrValueMissing is reported by Validate for a required field without a value.
var ErrValueMissing = errors.New("please select an item in the list")

// Options configure the field and the menu it opens.
type Options struct {
	Name     string
	Required bool
	Disabled bool
	// DisplayText is shown until the first items arrive.
	DisplayText string
	Menu        popup.Options
}

// Config wires a select to its host.
type Config struct {
	ID      string
	Items   menu.Source
	Options Options
	Bus     *command.Bus
	Focus   popup.FocusManager
}

// RetryMsg asks the select to recompute once more after a first render that
// found no items.
type RetryMsg struct {
	ID string
}

// Select keeps value, selected index and display text consistent with the
// selected flags of its options.
type Select struct {
	id         string
	opts       Options
	items      menu.Source
	bus        *command.Bus
	reconciler *state.Reconciler
	menu       *popup.Menu

	expanded         bool
	activeDescendant string
	initialised      bool
	retryPending     bool
	unsubscribe      []func()
}

// New builds a closed select. Call Init once the host is ready.
func New(cfg Config) *Select {
	s := &Select{
		id:    cfg.ID,
		opts:  cfg.Options,
		items: cfg.Items,
		bus:   cfg.Bus,
	}
	if s.items == nil {
		s.items = func() []menu.Item { return nil }
	}
	if s.bus == nil {
		s.bus = command.New()
	}
	s.reconciler = state.NewReconciler(s.items)
	s.reconciler.SetDisplayText(cfg.Options.DisplayText)
	s.menu = popup.New(popup.Config{
		ID:      s.id + "-menu",
		Items:   s.items,
		Options: menuOptions(cfg.Options.Menu),
		Bus:     s.bus,
		Focus:   cfg.Focus,
		Control: s,
	})
	s.unsubscribe = []func(){
		s.bus.Subscribe(command.KindSelect, s.fromMenu(s.handleMenuSelect)),
		s.bus.Subscribe(command.KindItemFocus, s.fromMenu(s.handleMenuItemFocus)),
		s.bus.Subscribe(command.KindOpen, s.fromMenu(s.handleMenuOpen)),
		s.bus.Subscribe(command.KindClose, s.fromMenu(s.handleMenuClose)),
	}
	return s
}

// The field keeps focus while the menu is open and closes it on its own
// blur, so the menu never moves focus or closes on blur itself.
func menuOptions(opts popup.Options) popup.Options {
	opts.KeepOpenOnBlur = true
	opts.NoFocusControl = true
	opts.KeepOpenOnItemClick = false
	return opts
}

func (s *Select) fromMenu(fn command.Listener) command.Listener {
	return func(n command.Notification) {
		if n.Source == s.menu.ID() {
			fn(n)
		}
	}
}

// Detach removes the select's listeners from the bus.
func (s *Select) Detach() {
	for _, stop := range s.unsubscribe {
		stop()
	}
	s.unsubscribe = nil
}

func (s *Select) ID() string {
	return s.id
}

// SetExpanded is called by the menu as it opens and closes.
func (s *Select) SetExpanded(v bool) {
	s.expanded = v
}

func (s *Select) Expanded() bool {
	return s.expanded
}

func (s *Select) Menu() *popup.Menu {
	return s.menu
}

func (s *Select) Bus() *command.Bus {
	return s.bus
}

func (s *Select) Options() Options {
	return s.opts
}

// SetOptions replaces the field and menu options.
func (s *Select) SetOptions(opts Options) {
	s.opts = opts
	s.menu.SetOptions(menuOptions(opts.Menu))
}

func (s *Select) IsOpen() bool {
	return s.menu.IsOpen()
}

// ActiveDescendant is the id of the option focused in the open menu.
func (s *Select) ActiveDescendant() string {
	return s.activeDescendant
}

// Init applies any value or index set before the first render. When the
// first render finds no items and nothing selected it returns a command that
// retries once on the next tick.
func (s *Select) Init() tea.Cmd {
	if s.initialised {
		return nil
	}
	s.initialised = true
	s.recompute(s.reconciler.InitUserSelection())
	if s.reconciler.HasRecords() || len(menu.Snapshot(s.items)) > 0 {
		return nil
	}
	s.retryPending = true
	id := s.id
	return func() tea.Msg { return RetryMsg{ID: id} }
}

// Update handles the deferred retry and forwards animation results to the
// menu.
func (s *Select) Update(msg tea.Msg) tea.Cmd {
	if retry, ok := msg.(RetryMsg); ok {
		if retry.ID != s.id || !s.retryPending {
			return nil
		}
		s.retryPending = false
		events.Select.Retry(len(menu.Snapshot(s.items)) == 0)
		s.recompute(s.reconciler.Recompute())
		return nil
	}
	return s.menu.Update(msg)
}

// Value returns the value of the selected option.
func (s *Select) Value() string {
	return s.reconciler.Value()
}

// SetValue selects the first option with value v. The value is remembered
// and applied when matching options appear later.
func (s *Select) SetValue(v string) {
	s.recompute(s.reconciler.SetValue(v))
}

// SelectedIndex returns the position of the selected option, or -1.
func (s *Select) SelectedIndex() int {
	return s.reconciler.SelectedIndex()
}

// SetSelectedIndex selects the option at index, disabled or not. The index
// is remembered and applied when the option appears later.
func (s *Select) SetSelectedIndex(index int) {
	s.recompute(s.reconciler.SetSelectedIndex(index))
}

// SelectedOptions returns every option flagged selected, in order.
func (s *Select) SelectedOptions() []menu.Item {
	return s.reconciler.SelectedItems()
}

func (s *Select) DisplayText() string {
	return s.reconciler.DisplayText()
}

// Select selects the first option with value v without remembering it.
func (s *Select) Select(v string) bool {
	return s.recompute(s.reconciler.SelectByValue(v))
}

// SelectIndex selects the option at index without remembering it.
func (s *Select) SelectIndex(index int) bool {
	return s.recompute(s.reconciler.SelectByIndex(index))
}

// Reset restores every option's default selected state.
func (s *Select) Reset() bool {
	changed := s.reconciler.Reset()
	events.Select.Reset(s.Value())
	return s.recompute(changed)
}

// HandleSlotChange re-evaluates the selection after the options changed.
// An existing value is left alone.
func (s *Select) HandleSlotChange() bool {
	if s.Value() != "" {
		return false
	}
	return s.recompute(s.reconciler.InitUserSelection())
}

// Show opens the menu.
func (s *Select) Show() tea.Cmd {
	if s.opts.Disabled {
		return nil
	}
	return s.menu.Show()
}

// Close closes the menu.
func (s *Select) Close() tea.Cmd {
	return s.menu.Close()
}

// Toggle opens or closes the menu unless the field is disabled.
func (s *Select) Toggle() tea.Cmd {
	if s.opts.Disabled {
		return nil
	}
	return s.menu.Toggle()
}

// HandleFieldKey forwards a key pressed on the field to the menu.
func (s *Select) HandleFieldKey(key state.Key) (bool, tea.Cmd) {
	if s.opts.Disabled {
		return false, nil
	}
	return s.menu.HandleKey(key)
}

// HoverItem forwards pointer movement over an option.
func (s *Select) HoverItem(item menu.Item) {
	s.menu.HoverItem(item)
}

// ClickItem commits item as if it had been chosen from the keyboard.
func (s *Select) ClickItem(item menu.Item) tea.Cmd {
	if s.opts.Disabled {
		return nil
	}
	return s.menu.ClickItem(item)
}

// FocusOut closes the menu when focus leaves both the field and the menu.
func (s *Select) FocusOut(target string) tea.Cmd {
	if target == s.id || s.menu.Contains(target) {
		return nil
	}
	return s.menu.Close()
}

// ClickAway closes the menu after a pointer press outside the field.
func (s *Select) ClickAway() tea.Cmd {
	return s.menu.ClickAway()
}

func (s *Select) recompute(changed bool) bool {
	events.Select.Recompute(changed, s.reconciler.Value(), s.reconciler.DisplayText())
	return changed
}

func (s *Select) handleMenuSelect(n command.Notification) {
	if n.Item == nil {
		return
	}
	if s.recompute(s.reconciler.SelectItem(n.Item)) {
		events.Select.Change(s.Value(), s.SelectedIndex())
		s.emit(command.KindInput)
		s.emit(command.KindChange)
	}
}

func (s *Select) handleMenuItemFocus(n command.Notification) {
	if n.Item != nil {
		s.activeDescendant = n.Item.ID()
	}
}

func (s *Select) handleMenuOpen(command.Notification) {
	if records := s.reconciler.Records(); len(records) > 0 {
		if s.menu.FocusItem(records[0].Item) {
			return
		}
	}
	s.menu.FocusFirstItem()
}

func (s *Select) handleMenuClose(command.Notification) {
	s.activeDescendant = ""
}

func (s *Select) emit(kind command.Kind) {
	s.bus.Emit(command.Notification{Kind: kind, Source: s.id, Index: s.SelectedIndex()})
}
