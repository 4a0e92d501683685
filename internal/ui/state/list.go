package state

import (
	"github.com/atomicstack/tmux-popup-select/internal/logging/events"
	"github.com/atomicstack/tmux-popup-select/internal/menu"
)

// ListConfig wires a ListController to its host.
type ListConfig struct {
	// Items returns the live children; called afresh on every operation.
	Items menu.Source
	// IsItem narrows the children that count as list items, for hosts that
	// mix items with headings or separators. Disabled items never navigate.
	IsItem func(menu.Item) bool
	// Container is scrolled so the current item stays visible. May be nil.
	Container Scroller
	// ItemBounds reports the rectangle of the navigable item at index.
	ItemBounds    func(index int) (Rect, bool)
	ScrollPadding int
	// SetActiveDescendant points the container at the current item's id.
	SetActiveDescendant func(id string)
	// OnFocus is notified after an item becomes current.
	OnFocus func(item menu.Item, index int)
	// Wrap enables wraparound for Next and Previous.
	Wrap func() bool
	// Typeahead overrides the default search session.
	Typeahead *Typeahead
}

// ListController owns the current item of a list and moves roving focus
// between items. Exactly one item holds focused=true at a time.
type ListController struct {
	cfg     ListConfig
	current menu.Item
	search  *Typeahead
}

// NewListController builds a controller for cfg.
func NewListController(cfg ListConfig) *ListController {
	search := cfg.Typeahead
	if search == nil {
		search = NewTypeahead(DefaultTypeaheadWindow)
	}
	return &ListController{cfg: cfg, search: search}
}

// SetContainer replaces the scroll container.
func (l *ListController) SetContainer(container Scroller) {
	l.cfg.Container = container
}

// Search exposes the typeahead session.
func (l *ListController) Search() *Typeahead {
	return l.search
}

// Items returns the navigable items in order.
func (l *ListController) Items() menu.Collection {
	all := menu.Snapshot(l.cfg.Items).Navigable()
	if l.cfg.IsItem == nil {
		return all
	}
	out := make(menu.Collection, 0, len(all))
	for _, item := range all {
		if l.cfg.IsItem(item) {
			out = append(out, item)
		}
	}
	return out
}

// CurrentIndex returns the index of the current item among the navigable
// items, or -1 when there is none.
func (l *ListController) CurrentIndex() int {
	return l.Items().IndexOf(l.current)
}

// CurrentItem returns the current item if it is still navigable.
func (l *ListController) CurrentItem() menu.Item {
	if l.CurrentIndex() < 0 {
		return nil
	}
	return l.current
}

// FocusFirstItem makes the first navigable item current.
func (l *ListController) FocusFirstItem() bool {
	items := l.Items()
	if len(items) == 0 {
		return false
	}
	return l.focus(items, 0)
}

// FocusLastItem makes the last navigable item current.
func (l *ListController) FocusLastItem() bool {
	items := l.Items()
	if len(items) == 0 {
		return false
	}
	return l.focus(items, len(items)-1)
}

// FocusItem makes item current. Items that are not navigable are ignored.
func (l *ListController) FocusItem(item menu.Item) bool {
	items := l.Items()
	idx := items.IndexOf(item)
	if idx < 0 {
		return false
	}
	return l.focus(items, idx)
}

// FocusIndex makes the navigable item at index current.
func (l *ListController) FocusIndex(index int) bool {
	items := l.Items()
	if index < 0 || index >= len(items) {
		return false
	}
	return l.focus(items, index)
}

// Move applies a movement action to the current index.
func (l *ListController) Move(action Action) bool {
	if !IsMovement(action) {
		return false
	}
	items := l.Items()
	if len(items) == 0 {
		return false
	}
	current := items.IndexOf(l.current)
	var next int
	if l.cfg.Wrap != nil && l.cfg.Wrap() {
		next = WrappedIndex(current, len(items)-1, action)
	} else {
		next = UpdatedIndex(current, len(items)-1, action)
	}
	events.Nav.Move(action.String(), current, next)
	return l.focus(items, next)
}

// HandleType feeds a typed key into the search session and focuses the
// matching item. It reports whether an item was focused.
func (l *ListController) HandleType(key string) bool {
	items := l.Items()
	if len(items) == 0 {
		return false
	}
	buffer := l.search.Feed(key)
	idx := l.search.Match(items.Labels(), items.IndexOf(l.current))
	events.Typeahead.Search(buffer, idx)
	if idx < 0 {
		return false
	}
	return l.focus(items, idx)
}

// ClearSearch ends the typeahead session.
func (l *ListController) ClearSearch() {
	if l.search.Buffer() != "" {
		events.Typeahead.Clear()
	}
	l.search.Clear()
}

// Blur clears the current item.
func (l *ListController) Blur() {
	if l.current != nil {
		l.current.SetFocused(false)
		l.current = nil
	}
}

func (l *ListController) focus(items menu.Collection, index int) bool {
	item := items[index]
	if l.current != nil && l.current != item {
		l.current.SetFocused(false)
	}
	item.SetFocused(true)
	l.current = item
	if l.cfg.SetActiveDescendant != nil {
		l.cfg.SetActiveDescendant(item.ID())
	}
	if l.cfg.Container != nil && l.cfg.ItemBounds != nil {
		if rect, ok := l.cfg.ItemBounds(index); ok {
			ScrollIntoView(l.cfg.Container, rect, l.cfg.ScrollPadding)
		}
	}
	if l.cfg.OnFocus != nil {
		l.cfg.OnFocus(item, index)
	}
	return true
}
