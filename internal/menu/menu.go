package menu

// Item is the contract every list entry satisfies. The engine never creates or
// destroys items; it reads identity and labels and flips the selected and
// focused flags.
type Item interface {
	ID() string
	Label() string
	Value() string
	Disabled() bool
	// DefaultSelected reports the static selected marker restored by a form reset.
	DefaultSelected() bool
	Selected() bool
	SetSelected(bool)
	Focused() bool
	SetFocused(bool)
}

// Option is the concrete Item used by the select field.
type Option struct {
	id              string
	label           string
	value           string
	description     string
	disabled        bool
	defaultSelected bool
	selected        bool
	focused         bool
}

// NewOption builds an option from a loaded entry. The entry's selected flag
// becomes both the live state and the default restored by a reset.
func NewOption(entry Entry) *Option {
	o := &Option{}
	o.Apply(entry)
	o.selected = entry.Selected
	return o
}

// Apply refreshes the static fields from an entry without touching the live
// selected or focused flags.
func (o *Option) Apply(entry Entry) {
	o.id = entry.Key()
	o.label = entry.DisplayLabel()
	o.value = entry.Value
	o.description = entry.Description
	o.disabled = entry.Disabled
	o.defaultSelected = entry.Selected
}

func (o *Option) ID() string            { return o.id }
func (o *Option) Label() string         { return o.label }
func (o *Option) Value() string         { return o.value }
func (o *Option) Description() string   { return o.description }
func (o *Option) Disabled() bool        { return o.disabled }
func (o *Option) DefaultSelected() bool { return o.defaultSelected }
func (o *Option) Selected() bool        { return o.selected }
func (o *Option) SetSelected(v bool)    { o.selected = v }
func (o *Option) Focused() bool         { return o.focused }
func (o *Option) SetFocused(v bool)     { o.focused = v }

// SetLabel overrides the display label, used after column formatting.
func (o *Option) SetLabel(label string) { o.label = label }

// SetDisabled toggles whether the option takes part in navigation.
func (o *Option) SetDisabled(v bool) { o.disabled = v }

// OptionsToItems widens a slice of options to the Item contract.
func OptionsToItems(options []*Option) []Item {
	items := make([]Item, 0, len(options))
	for _, opt := range options {
		if opt == nil {
			continue
		}
		items = append(items, opt)
	}
	return items
}
