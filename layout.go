package tourguide

import "tourguide/geom"

// PopupContent is what the popup surface shows for one step.
type PopupContent struct {
	Text          string
	Image         string
	ShowPrevious  bool
	PreviousLabel string
	NextLabel     string
	StepIndex     int
	StepCount     int
}

// Layout is the rendering/layout capability a host provides to the tour:
// zone lookup, viewport geometry, scrolling, the popup surface and the
// spotlight panel surface. The tour never touches the host UI directly,
// which keeps the placement logic testable with a fake provider.
type Layout interface {
	// FindZone resolves a zone id to its viewport-relative rectangle.
	FindZone(id string) (geom.Rect, bool)
	ViewportSize() (w, h int)
	DocumentSize() (w, h int)
	ScrollOffset() (x, y int)
	SetScrollOffset(x, y int)
	// ScrollIntoView brings a zone into the viewport, keeping up to
	// margin cells of context around it.
	ScrollIntoView(id string, margin int)
	LockScroll()
	UnlockScroll()

	// Popup surface
	ShowPopup()
	SetPopupContent(p PopupContent)
	PopupSize() (w, h int)
	MovePopup(x, y int)
	RemovePopup()

	// Spotlight panel surface
	CreatePanels()
	MovePanels(above, right, below, left geom.Rect)
	RemovePanels()
}

// Store persists tour state between sessions. Last write wins.
type Store interface {
	Save(name string, data []byte) error
	Load(name string) ([]byte, error)
}
