// Package spotlight owns the four mask panels that isolate the current tour
// target: everything around the padded target rectangle gets covered, the
// target itself stays clear.
package spotlight

import (
	"log"

	"tourguide/geom"
)

// Surface is the capability the host provides for showing the panels.
// The spotlight only ever talks to the surface; it holds no reference back
// to the tour driving it.
type Surface interface {
	CreatePanels()
	MovePanels(above, right, below, left geom.Rect)
	RemovePanels()
}

// Spotlight positions four panels {above, right, below, left} around a
// target rectangle. It is a pure function of the rectangle handed to Move.
type Spotlight struct {
	surface  Surface
	padding  int
	viewport func() (w, h int)
	alive    bool
}

// New allocates the four panels on the surface. padding is the visual margin
// kept clear around the target; negative values are treated as zero.
// viewport reports the current visible size on every move.
func New(surface Surface, padding int, viewport func() (w, h int)) *Spotlight {
	if padding < 0 {
		padding = 0
	}
	surface.CreatePanels()
	return &Spotlight{
		surface:  surface,
		padding:  padding,
		viewport: viewport,
		alive:    true,
	}
}

// Move recomputes panel geometry around the target rectangle and applies it.
func (s *Spotlight) Move(target geom.Rect) {
	if !s.alive {
		log.Printf("spotlight: move requested but panels do not exist")
		return
	}
	w, h := s.viewport()
	above, right, below, left := PanelRects(target, s.padding, w, h)
	s.surface.MovePanels(above, right, below, left)
}

// Blackout pulls all four panels fully outside the visible area so that
// nothing is masked. Used for steps without a target.
func (s *Spotlight) Blackout() {
	if !s.alive {
		log.Printf("spotlight: blackout requested but panels do not exist")
		return
	}
	w, h := s.viewport()
	off := geom.NewRect(-w, -h, 0, 0)
	s.surface.MovePanels(off, off, off, off)
}

// Kill removes the panels and releases the surface. Idempotent.
func (s *Spotlight) Kill() {
	if !s.alive {
		return
	}
	s.alive = false
	s.surface.RemovePanels()
}

// PanelRects computes the four panel rectangles for a target inside a
// viewport of vw by vh cells. The above and below panels span the full
// viewport width; the side panels carry the padding band, so the union
// covers everything except the target expanded by padding, with no overlap
// at the corners.
func PanelRects(target geom.Rect, padding, vw, vh int) (above, right, below, left geom.Rect) {
	bandTop := target.Top - padding
	bandHeight := target.Height + 2*padding
	belowTop := target.Bottom + padding

	above = geom.NewRect(0, 0, vw, clampZero(bandTop))
	below = geom.NewRect(0, belowTop, vw, clampZero(vh-belowTop))
	left = geom.NewRect(0, bandTop, clampZero(target.Left-padding), bandHeight)
	rightLeft := target.Right + padding
	right = geom.NewRect(rightLeft, bandTop, clampZero(vw-rightLeft), bandHeight)
	return above, right, below, left
}

func clampZero(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
