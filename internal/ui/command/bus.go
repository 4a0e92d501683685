package command

import (
	"sync"

	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
	tea "github.com/charmbracelet/bubbletea"
)

// Kind names a notification emitted by a menu or select.
type Kind string

const (
	KindOpen      Kind = "open"
	KindClose     Kind = "close"
	KindSelect    Kind = "select"
	KindItemFocus Kind = "item-focus"
	KindInput     Kind = "input"
	KindChange    Kind = "change"
)

// Notification is delivered to every listener subscribed to its kind.
// Item and Index are set for select and item-focus.
type Notification struct {
	Kind   Kind
	Source string
	Item   menu.Item
	Index  int
}

// Listener receives notifications synchronously, in subscription order.
type Listener func(Notification)

// Msg carries a notification through the Bubble Tea runtime.
type Msg struct {
	Notification
}

type subscription struct {
	id int
	fn Listener
}

// Bus fans notifications out to explicitly registered listeners.
type Bus struct {
	mu        sync.Mutex
	next      int
	listeners map[Kind][]subscription
}

// New initialises a command bus instance.
func New() *Bus {
	return &Bus{listeners: make(map[Kind][]subscription)}
}

// Subscribe registers fn for kind and returns a function that removes it.
func (b *Bus) Subscribe(kind Kind, fn Listener) func() {
	if fn == nil {
		return func() {}
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.next++
	id := b.next
	b.listeners[kind] = append(b.listeners[kind], subscription{id: id, fn: fn})
	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.listeners[kind]
		for i, sub := range subs {
			if sub.id == id {
				b.listeners[kind] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers n to the current listeners of its kind. Listeners may
// subscribe or unsubscribe while being notified; the change applies to the
// next emission.
func (b *Bus) Emit(n Notification) {
	if b == nil {
		return
	}
	b.mu.Lock()
	subs := append([]subscription(nil), b.listeners[n.Kind]...)
	b.mu.Unlock()
	events.Command.Emit(string(n.Kind), n.Source, len(subs))
	for _, sub := range subs {
		sub.fn(n)
	}
}

// Execute wraps an emission into a Bubble Tea command. The notification is
// delivered when the command runs and is then forwarded to Update as a Msg.
func (b *Bus) Execute(n Notification) tea.Cmd {
	return func() tea.Msg {
		b.Emit(n)
		return Msg{Notification: n}
	}
}
