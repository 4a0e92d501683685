package state

import "github.com/atomicstack/tmux-popup-select/internal/menu"

// OptionStore holds the loaded options. Reloading entries keeps the same
// *menu.Option for every entry whose key survives, so selection and focus
// survive a reload.
type OptionStore interface {
	Entries() []menu.Entry
	SetEntries([]menu.Entry) bool
	Options() []*menu.Option
	// Items returns the options visible under the current filter, in order.
	Items() []menu.Item
	Filter() string
	SetFilter(string)
}

type optionStore struct {
	entries []menu.Entry
	options []*menu.Option
	byKey   map[string]*menu.Option
	filter  string
	visible []menu.Item
}

func NewOptionStore(entries []menu.Entry) OptionStore {
	s := &optionStore{byKey: map[string]*menu.Option{}}
	s.SetEntries(entries)
	return s
}

func (s *optionStore) Entries() []menu.Entry {
	return cloneEntries(s.entries)
}

// SetEntries merges entries into the store and reports whether the
// collection's membership or order changed.
func (s *optionStore) SetEntries(entries []menu.Entry) bool {
	next := make([]*menu.Option, 0, len(entries))
	byKey := make(map[string]*menu.Option, len(entries))
	for _, entry := range entries {
		key := entry.Key()
		if _, dup := byKey[key]; dup {
			continue
		}
		opt, ok := s.byKey[key]
		if ok {
			opt.Apply(entry)
		} else {
			opt = menu.NewOption(entry)
		}
		byKey[key] = opt
		next = append(next, opt)
	}
	changed := len(next) != len(s.options)
	for i := 0; !changed && i < len(next); i++ {
		changed = next[i] != s.options[i]
	}
	s.entries = cloneEntries(entries)
	s.options = next
	s.byKey = byKey
	s.refilter()
	return changed
}

func (s *optionStore) Options() []*menu.Option {
	return append([]*menu.Option(nil), s.options...)
}

func (s *optionStore) Items() []menu.Item {
	return append([]menu.Item(nil), s.visible...)
}

func (s *optionStore) Filter() string {
	return s.filter
}

func (s *optionStore) SetFilter(filter string) {
	s.filter = filter
	s.refilter()
}

func (s *optionStore) refilter() {
	if s.filter == "" {
		s.visible = menu.OptionsToItems(s.options)
		return
	}
	keep := make(map[string]struct{})
	for _, entry := range menu.FilterEntries(s.entries, s.filter) {
		keep[entry.Key()] = struct{}{}
	}
	visible := make([]menu.Item, 0, len(keep))
	for _, opt := range s.options {
		if _, ok := keep[opt.ID()]; ok {
			visible = append(visible, opt)
		}
	}
	s.visible = visible
}

func cloneEntries(entries []menu.Entry) []menu.Entry {
	if len(entries) == 0 {
		return nil
	}
	dup := make([]menu.Entry, len(entries))
	copy(dup, entries)
	return dup
}
