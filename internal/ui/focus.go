package ui

// focusRing tracks which element holds keyboard focus and cycles through
// the focusable elements in order.
type focusRing struct {
	order  []string
	active string
}

func newFocusRing(order ...string) *focusRing {
	f := &focusRing{order: order}
	if len(order) > 0 {
		f.active = order[0]
	}
	return f
}

func (f *focusRing) Active() string {
	return f.active
}

func (f *focusRing) Focus(id string) {
	f.active = id
}

// next returns the element delta steps from the active one. An active id
// outside the ring counts as the first element.
func (f *focusRing) next(delta int) string {
	n := len(f.order)
	if n == 0 {
		return f.active
	}
	pos := 0
	for i, id := range f.order {
		if id == f.active {
			pos = i
			break
		}
	}
	return f.order[((pos+delta)%n+n)%n]
}
