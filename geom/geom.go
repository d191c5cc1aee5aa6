// Package geom holds the rectangle type and the popup-placement algorithm.
// Everything here is pure arithmetic so the layout logic can be tested
// without a terminal.
package geom

// Rect is a viewport-relative geometry snapshot of a zone or panel.
// It is recomputed on every layout pass and never persisted.
type Rect struct {
	Top    int
	Left   int
	Right  int
	Bottom int
	Width  int
	Height int
}

// NewRect builds a Rect from its top-left corner and dimensions.
func NewRect(left, top, width, height int) Rect {
	return Rect{
		Top:    top,
		Left:   left,
		Right:  left + width,
		Bottom: top + height,
		Width:  width,
		Height: height,
	}
}

// Contains reports whether the cell at (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x < r.Right && y >= r.Top && y < r.Bottom
}

// Empty reports whether the rectangle covers no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Expand grows the rectangle by pad cells on every side.
func (r Rect) Expand(pad int) Rect {
	return NewRect(r.Left-pad, r.Top-pad, r.Width+2*pad, r.Height+2*pad)
}

// Size is a width/height pair.
type Size struct {
	Width  int
	Height int
}

// Gap is the distance kept between a popup and its target.
const Gap = 2

// PlacePopup computes viewport coordinates for a popup of size popup anchored
// to the target rectangle. viewport is the visible area, doc the full document.
//
// Wide targets (taking up at least half the document width) get the popup
// above or below, center-aligned horizontally: below when the target's bottom
// edge sits in the upper half of the viewport, above otherwise. Narrow targets
// get the popup beside them, center-aligned vertically: on the right when the
// target sits in the left half of the document, on the left otherwise. When
// the chosen side leaves no room, the popup falls back to the below-placement
// and rescroll is true so the caller can bring the target back into view.
//
// Both coordinates are clamped to be non-negative.
func PlacePopup(target Rect, popup, viewport, doc Size, gap int) (x, y int, rescroll bool) {
	if doc.Width-target.Width <= doc.Width/2 {
		x = target.Left + (target.Width-popup.Width)/2
		if target.Bottom < viewport.Height/2 {
			y = target.Bottom + gap
		} else {
			y = target.Top - popup.Height - gap
		}
		return clampZero(x), clampZero(y), false
	}

	y = target.Top + (target.Height-popup.Height)/2
	if target.Right < doc.Width/2 {
		x = target.Right + gap
		if x+popup.Width > doc.Width {
			x, y = PlaceBelow(target, popup, gap)
			return x, y, true
		}
	} else {
		x = target.Left - popup.Width - gap
		if x < 0 {
			x, y = PlaceBelow(target, popup, gap)
			return x, y, true
		}
	}
	return clampZero(x), clampZero(y), false
}

// PlaceBelow centers the popup under the target. It is the fallback used
// when neither side has room, and again after the caller rescrolls the
// target into view.
func PlaceBelow(target Rect, popup Size, gap int) (x, y int) {
	x = target.Left + (target.Width-popup.Width)/2
	y = target.Bottom + gap
	return clampZero(x), clampZero(y)
}

// CenterIn returns coordinates that center the popup in the viewport.
func CenterIn(viewport, popup Size) (x, y int) {
	return (viewport.Width - popup.Width) / 2, (viewport.Height - popup.Height) / 2
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
