package state

import "github.com/atomicstack/tmux-popup-select/internal/menu"

// Record pairs a selected item with its position in the collection.
type Record struct {
	Item  menu.Item
	Index int
}

// Reconciler keeps a value / display text / selected index projection
// consistent with the items' own selected flags. When several items claim to
// be selected the lowest index wins; exclusivity is only enforced by the
// explicit select calls.
type Reconciler struct {
	items menu.Source

	last        menu.Item
	records     []Record
	value       string
	displayText string

	pendingValue *string
	pendingIndex *int
}

// NewReconciler builds a reconciler over the selectable items.
func NewReconciler(items menu.Source) *Reconciler {
	return &Reconciler{items: items}
}

// Records scans the collection for selected items in order.
func (r *Reconciler) Records() []Record {
	records := make([]Record, 0, 1)
	for i, item := range menu.Snapshot(r.items) {
		if item.Selected() {
			records = append(records, Record{Item: item, Index: i})
		}
	}
	r.records = records
	return records
}

// Recompute derives the projection from the selected flags and reports
// whether the authoritative item changed since the last computation.
func (r *Reconciler) Recompute() bool {
	records := r.Records()
	if len(records) > 0 {
		first := records[0].Item
		changed := r.last != first
		r.last = first
		r.value = first.Value()
		r.displayText = first.Label()
		return changed
	}
	changed := r.last != nil
	r.last = nil
	r.value = ""
	// Keep a pre-rendered display text until there are items to replace it.
	if r.displayText != "" && len(menu.Snapshot(r.items).Navigable()) == 0 {
		return changed
	}
	r.displayText = ""
	return changed
}

// SelectItem marks item selected, clears every other selected item and
// recomputes the projection.
func (r *Reconciler) SelectItem(item menu.Item) bool {
	if item == nil {
		return false
	}
	for _, rec := range r.Records() {
		if rec.Item != item {
			rec.Item.SetSelected(false)
		}
	}
	item.SetSelected(true)
	return r.Recompute()
}

// SelectByValue selects the first item whose value is v. Nothing changes when
// no item matches.
func (r *Reconciler) SelectByValue(v string) bool {
	item, idx := menu.Snapshot(r.items).FindValue(v)
	if idx < 0 {
		return false
	}
	return r.SelectItem(item)
}

// SelectByIndex selects the item at index regardless of its disabled state.
func (r *Reconciler) SelectByIndex(index int) bool {
	items := menu.Snapshot(r.items)
	if index < 0 || index >= len(items) {
		return false
	}
	return r.SelectItem(items[index])
}

// SetValue records v as the user's pending value and applies it if an item
// already matches.
func (r *Reconciler) SetValue(v string) bool {
	r.pendingValue = &v
	return r.SelectByValue(v)
}

// SetSelectedIndex records index as the user's pending index and applies it
// if the item exists.
func (r *Reconciler) SetSelectedIndex(index int) bool {
	r.pendingIndex = &index
	return r.SelectByIndex(index)
}

// InitUserSelection applies a pending user override when nothing has been
// selected yet; a pending value takes precedence over a pending index.
// Otherwise the projection is recomputed from the items.
func (r *Reconciler) InitUserSelection() bool {
	if len(r.records) == 0 {
		if r.pendingValue != nil && *r.pendingValue != "" {
			if r.SelectByValue(*r.pendingValue) {
				return true
			}
			return r.Recompute()
		}
		if r.pendingIndex != nil {
			if r.SelectByIndex(*r.pendingIndex) {
				return true
			}
			return r.Recompute()
		}
	}
	return r.Recompute()
}

// Reset restores every item's selected flag from its default marker. Pending
// user overrides are kept, so a later InitUserSelection can still apply them.
func (r *Reconciler) Reset() bool {
	for _, item := range menu.Snapshot(r.items) {
		item.SetSelected(item.DefaultSelected())
	}
	return r.Recompute()
}

// HasRecords reports whether the last scan found a selected item.
func (r *Reconciler) HasRecords() bool {
	return len(r.records) > 0
}

// Current returns the authoritative selected item, or nil.
func (r *Reconciler) Current() menu.Item {
	return r.last
}

// Value returns the projected value.
func (r *Reconciler) Value() string {
	return r.value
}

// DisplayText returns the projected display text.
func (r *Reconciler) DisplayText() string {
	return r.displayText
}

// SetDisplayText seeds the display text shown before items exist.
func (r *Reconciler) SetDisplayText(text string) {
	r.displayText = text
}

// SelectedIndex returns the index of the authoritative item, or -1.
func (r *Reconciler) SelectedIndex() int {
	records := r.Records()
	if len(records) == 0 {
		return -1
	}
	return records[0].Index
}

// SelectedItems returns every item currently flagged selected, in order.
func (r *Reconciler) SelectedItems() []menu.Item {
	records := r.Records()
	items := make([]menu.Item, len(records))
	for i, rec := range records {
		items[i] = rec.Item
	}
	return items
}
