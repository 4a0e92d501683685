package menu

// Source returns the host's live items in document order. It is called again
// on every entry point so structural changes are always observed.
type Source func() []Item

// Collection is an ordered snapshot of items, valid for one synchronous
// operation.
type Collection []Item

// Snapshot copies the items returned by src, dropping nil entries.
func Snapshot(src Source) Collection {
	if src == nil {
		return nil
	}
	items := src()
	out := make(Collection, 0, len(items))
	for _, item := range items {
		if item == nil {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Navigable returns the items eligible for keyboard focus.
func (c Collection) Navigable() Collection {
	out := make(Collection, 0, len(c))
	for _, item := range c {
		if !item.Disabled() {
			out = append(out, item)
		}
	}
	return out
}

// IndexOf returns the position of item in the collection, or -1.
func (c Collection) IndexOf(item Item) int {
	if item == nil {
		return -1
	}
	for i, candidate := range c {
		if candidate == item {
			return i
		}
	}
	return -1
}

// IndexOfID returns the position of the first item with the given id, or -1.
func (c Collection) IndexOfID(id string) int {
	if id == "" {
		return -1
	}
	for i, item := range c {
		if item.ID() == id {
			return i
		}
	}
	return -1
}

// FindValue returns the first item whose value equals v.
func (c Collection) FindValue(v string) (Item, int) {
	for i, item := range c {
		if item.Value() == v {
			return item, i
		}
	}
	return nil, -1
}

// Labels returns the item labels in order.
func (c Collection) Labels() []string {
	labels := make([]string, len(c))
	for i, item := range c {
		labels[i] = item.Label()
	}
	return labels
}
