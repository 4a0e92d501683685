package state

// Rect is a vertical extent in container coordinates. Bottom is exclusive.
type Rect struct {
	Top    int
	Bottom int
}

// Scroller is a scrollable container.
type Scroller interface {
	Bounds() Rect
	ScrollTop() int
	SetScrollTop(int)
}

// ScrollIntoView adjusts the container's scroll offset so item, expanded by
// padding rows on each side, is inside the container. Only vertical scrolling
// is performed. A nil container is ignored.
func ScrollIntoView(container Scroller, item Rect, padding int) {
	if container == nil {
		return
	}
	bounds := container.Bounds()
	if item.Bottom+padding > bounds.Bottom {
		container.SetScrollTop(container.ScrollTop() + item.Bottom - bounds.Bottom + padding)
	} else if item.Top-padding < bounds.Top {
		container.SetScrollTop(container.ScrollTop() - (bounds.Top - item.Top + padding))
	}
}
