package popup

import "github.com/atomicstack/tmux-popup-select/internal/ui/state"

// Viewport is the scroll container of a menu, measured in rows. Item rows
// are one line high and reported relative to the visible window.
type Viewport struct {
	height int
	top    int
	total  func() int
}

// NewViewport returns a viewport showing height rows of total items. A
// height of zero shows every item.
func NewViewport(height int, total func() int) *Viewport {
	if total == nil {
		total = func() int { return 0 }
	}
	return &Viewport{height: max(height, 0), total: total}
}

// SetHeight changes the number of visible rows.
func (v *Viewport) SetHeight(height int) {
	v.height = max(height, 0)
	v.SetScrollTop(v.top)
}

func (v *Viewport) Height() int {
	if v.height == 0 {
		return v.total()
	}
	return v.height
}

func (v *Viewport) Bounds() state.Rect {
	return state.Rect{Top: 0, Bottom: v.Height()}
}

func (v *Viewport) ScrollTop() int {
	return v.top
}

func (v *Viewport) SetScrollTop(top int) {
	limit := max(v.total()-v.Height(), 0)
	v.top = min(max(top, 0), limit)
}

// ItemBounds reports the rectangle of the item at index.
func (v *Viewport) ItemBounds(index int) (state.Rect, bool) {
	if index < 0 || index >= v.total() {
		return state.Rect{}, false
	}
	top := index - v.top
	return state.Rect{Top: top, Bottom: top + 1}, true
}

// Visible returns the half-open range of item indices currently shown.
func (v *Viewport) Visible() (int, int) {
	total := v.total()
	start := min(v.top, total)
	end := min(start+v.Height(), total)
	return start, end
}
