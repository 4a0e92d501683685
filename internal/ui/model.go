package ui

import (
	"reflect"

	"github.com/atomicstack/tmux-popup-select/internal/backend"
	"github.com/atomicstack/tmux-popup-select/internal/data/dispatcher"
	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/popover"
	"github.com/atomicstack/tmux-popup-select/internal/state"
	"github.com/atomicstack/tmux-popup-select/internal/theme"
	"github.com/atomicstack/tmux-popup-select/internal/ui/command"
	"github.com/atomicstack/tmux-popup-select/internal/ui/selector"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const (
	fieldID = "field"
	doneID  = "done"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configure a Model.
type Options struct {
	Store  state.OptionStore
	Select selector.Options
	Label  string
	// Value and Index are the initial user selection; Index < 0 is unset.
	Value      string
	Index      int
	Width      int
	Height     int
	ShowFooter bool
	// StayOnSelect keeps the program running after an option is chosen.
	StayOnSelect bool
	Watcher      *backend.Watcher
	Dispatcher   *dispatcher.Dispatcher
}

// Result is what the program reports when it exits.
type Result struct {
	Name      string
	Value     string
	Index     int
	Committed bool
}

// Model implements the Bubble Tea model for the select popup.
type Model struct {
	sel          *selector.Select
	store        state.OptionStore
	focus        *focusRing
	zones        *zone.Manager
	keys         keyMap
	label        string
	width        int
	height       int
	fixedWidth   bool
	fixedHeight  bool
	showFooter   bool
	stayOnSelect bool

	backend    *backend.Watcher
	dispatcher *dispatcher.Dispatcher

	pendingSubmit bool
	errMsg        string
	infoMsg       string
	result        Result

	handlers map[reflect.Type]msgHandler
}

// NewModel builds the model and applies the initial selection.
func NewModel(opts Options) *Model {
	store := opts.Store
	if store == nil {
		store = state.NewOptionStore(nil)
	}
	m := &Model{
		store:        store,
		focus:        newFocusRing(fieldID, doneID),
		zones:        zone.New(),
		keys:         defaultKeyMap(),
		label:        opts.Label,
		showFooter:   opts.ShowFooter,
		stayOnSelect: opts.StayOnSelect,
		backend:      opts.Watcher,
		dispatcher:   opts.Dispatcher,
		result:       Result{Index: -1},
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.sel = selector.New(selector.Config{
		ID:      fieldID,
		Items:   store.Items,
		Options: opts.Select,
		Focus:   m.focus,
	})
	if opts.Select.Disabled {
		m.focus.Focus(doneID)
	}
	if opts.Value != "" {
		m.sel.SetValue(opts.Value)
	} else if opts.Index >= 0 {
		m.sel.SetSelectedIndex(opts.Index)
	}
	m.sel.Bus().Subscribe(command.KindSelect, func(n command.Notification) {
		if n.Source == m.sel.Menu().ID() && !m.stayOnSelect {
			m.pendingSubmit = true
		}
	})
	m.sel.Bus().Subscribe(command.KindChange, func(n command.Notification) {
		if n.Source == fieldID {
			m.errMsg = ""
		}
	})
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.sel.Init()}
	if m.backend != nil {
		cmds = append(cmds, waitForBackendEvent(m.backend))
	}
	return tea.Batch(cmds...)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 2)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):         m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):       m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):  m.handleWindowSizeMsg,
		reflect.TypeOf(popover.SettledMsg{}): m.forwardToSelect,
		reflect.TypeOf(selector.RetryMsg{}):  m.forwardToSelect,
		reflect.TypeOf(backendEventMsg{}):    m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):     m.handleBackendDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if m.pendingSubmit {
		m.pendingSubmit = false
		if cmd := m.submit(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) forwardToSelect(msg tea.Msg) tea.Cmd {
	return m.sel.Update(msg)
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	return nil
}

// submit validates the field and quits with a committed result.
func (m *Model) submit() tea.Cmd {
	if err := m.sel.Validate(); err != nil {
		m.errMsg = err.Error()
		return nil
	}
	m.result = Result{
		Name:      m.sel.Name(),
		Value:     m.sel.Value(),
		Index:     m.sel.SelectedIndex(),
		Committed: true,
	}
	events.App.Exit(m.result.Value, true)
	return tea.Quit
}

// cancel quits without a result.
func (m *Model) cancel() tea.Cmd {
	m.result = Result{Index: -1}
	events.App.Exit("", false)
	return tea.Quit
}

// Result reports how the program ended.
func (m *Model) Result() Result {
	return m.result
}

// Select exposes the field for tests and embedding.
func (m *Model) Select() *selector.Select {
	return m.sel
}

// Close releases the mouse zone worker and bus listeners.
func (m *Model) Close() {
	m.sel.Detach()
	m.zones.Close()
}
