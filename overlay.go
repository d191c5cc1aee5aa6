package tourguide

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tourguide/geom"
	"tourguide/internal/eventbus"
	"tourguide/internal/views"
)

// RelayoutMsg asks the host to refresh the tour on its UI loop. The
// overlay sends it through the program when a debounce interval elapses.
type RelayoutMsg struct{}

// Overlay is the Bubble Tea implementation of the Layout interface. The
// host registers named zones in document coordinates, forwards messages to
// Update, and wraps its view with View; the overlay scrolls the document
// through a viewport, dims the spotlight panels and splices the popup on
// top.
//
// The overlay is driven entirely on the program's UI loop.
type Overlay struct {
	tour    *Tour
	bus     eventbus.EventBus
	program *tea.Program

	keys     KeyMap
	styles   *views.Styles
	renderer *views.PopupRenderer

	vp            viewport.Model
	width, height int
	doc           string
	zones         map[string]geom.Rect

	scrollLocked bool

	popupVisible   bool
	popupView      string
	popupX, popupY int

	panelsActive bool
	panels       [4]geom.Rect

	observedZone string
	observedRect geom.Rect
	unsub        func()
}

// NewOverlay creates an overlay with default styles and key bindings.
func NewOverlay() *Overlay {
	styles := views.NewStyles()
	return &Overlay{
		keys:     DefaultKeyMap(),
		styles:   styles,
		renderer: views.NewPopupRenderer(styles),
		vp:       viewport.New(0, 0),
		zones:    make(map[string]geom.Rect),
	}
}

// Attach wires the overlay to a tour's event bus.
func (o *Overlay) Attach(t *Tour) {
	if o.unsub != nil {
		o.unsub()
	}
	o.tour = t
	o.bus = t.Events()
	o.unsub = o.bus.Subscribe(eventbus.EventRelayout, func(eventbus.Event) {
		if o.program != nil {
			o.program.Send(RelayoutMsg{})
		}
	})
}

// SetProgram sets the program reference used to deliver relayout messages.
func (o *Overlay) SetProgram(p *tea.Program) {
	o.program = p
}

// Keys returns the active key bindings, for help views.
func (o *Overlay) Keys() KeyMap { return o.keys }

// SetZone registers or updates a zone rectangle in document coordinates.
func (o *Overlay) SetZone(id string, r geom.Rect) {
	o.zones[id] = r
}

// RemoveZone unregisters a zone.
func (o *Overlay) RemoveZone(id string) {
	delete(o.zones, id)
}

// SetSize resizes the overlay viewport. Hosts reserving lines for their
// own chrome call this instead of forwarding the window size message.
func (o *Overlay) SetSize(w, h int) {
	o.width, o.height = w, h
	o.vp.Width = w
	o.vp.Height = h
	if o.bus != nil {
		o.bus.Publish(eventbus.ViewportResizedEvent{Width: w, Height: h})
	}
}

// Update handles messages: window sizes, tour key bindings, relayout
// requests and viewport scrolling.
func (o *Overlay) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.SetSize(msg.Width, msg.Height)

	case RelayoutMsg:
		if o.tour != nil {
			o.tour.Refresh()
		}

	case tea.KeyMsg:
		if o.tourActive() {
			switch {
			case key.Matches(msg, o.keys.Next):
				o.tour.Next()
			case key.Matches(msg, o.keys.Previous):
				o.tour.Previous()
			case key.Matches(msg, o.keys.Quit):
				o.tour.End()
			default:
				if !o.scrollLocked {
					var cmd tea.Cmd
					o.vp, cmd = o.vp.Update(msg)
					o.observeTarget()
					return cmd
				}
			}
			o.observeTarget()
			return nil
		}
		var cmd tea.Cmd
		o.vp, cmd = o.vp.Update(msg)
		return cmd
	}
	o.observeTarget()
	return nil
}

// View composes the final frame: the scrolled document, the dimmed
// spotlight panels and the popup.
func (o *Overlay) View(doc string) string {
	o.doc = doc
	o.vp.SetContent(doc)
	out := o.vp.View()
	if o.panelsActive {
		out = views.DimPanels(out, o.panels[:], o.styles.Dim)
	}
	if o.popupVisible && o.popupView != "" {
		out = views.SpliceOverlay(out, o.popupView, o.popupX, o.popupY)
	}
	return out
}

func (o *Overlay) tourActive() bool {
	return o.tour != nil && o.tour.State() == Started
}

// observeTarget re-arms observation when the tour's target changes and
// publishes a resize event when the observed zone's rectangle moves.
func (o *Overlay) observeTarget() {
	if !o.tourActive() || o.bus == nil {
		return
	}
	id := o.tour.ObservedTarget()
	if id == "" {
		o.observedZone = ""
		return
	}
	r, ok := o.FindZone(id)
	if !ok {
		return
	}
	if id != o.observedZone {
		o.observedZone = id
		o.observedRect = r
		return
	}
	if r != o.observedRect {
		o.observedRect = r
		o.bus.Publish(eventbus.TargetResizedEvent{Zone: id, Rect: r})
	}
}

// Layout implementation

// FindZone returns a zone's viewport-relative rectangle.
func (o *Overlay) FindZone(id string) (geom.Rect, bool) {
	r, ok := o.zones[id]
	if !ok {
		return geom.Rect{}, false
	}
	return geom.NewRect(r.Left, r.Top-o.vp.YOffset, r.Width, r.Height), true
}

func (o *Overlay) ViewportSize() (int, int) {
	return o.vp.Width, o.vp.Height
}

func (o *Overlay) DocumentSize() (int, int) {
	return lipgloss.Width(o.doc), lipgloss.Height(o.doc)
}

func (o *Overlay) ScrollOffset() (int, int) {
	return 0, o.vp.YOffset
}

func (o *Overlay) SetScrollOffset(_, y int) {
	o.vp.SetYOffset(y)
}

// ScrollIntoView brings a zone into the viewport. The margin hint shrinks
// to whatever context actually fits around the zone.
func (o *Overlay) ScrollIntoView(id string, margin int) {
	r, ok := o.zones[id]
	if !ok {
		return
	}
	if max := (o.vp.Height - r.Height) / 2; margin > max {
		margin = max
	}
	if margin < 0 {
		margin = 0
	}
	top := r.Top - margin
	bottom := r.Bottom + margin
	if o.vp.YOffset > top {
		o.vp.SetYOffset(top)
	} else if bottom > o.vp.YOffset+o.vp.Height {
		o.vp.SetYOffset(bottom - o.vp.Height)
	}
}

func (o *Overlay) LockScroll()   { o.scrollLocked = true }
func (o *Overlay) UnlockScroll() { o.scrollLocked = false }

func (o *Overlay) ShowPopup() {
	o.popupVisible = true
}

func (o *Overlay) SetPopupContent(p PopupContent) {
	o.popupView = o.renderer.Render(views.Popup{
		Text:          p.Text,
		Image:         p.Image,
		ShowPrevious:  p.ShowPrevious,
		PreviousLabel: p.PreviousLabel,
		NextLabel:     p.NextLabel,
		StepIndex:     p.StepIndex,
		StepCount:     p.StepCount,
	})
}

func (o *Overlay) PopupSize() (int, int) {
	return lipgloss.Width(o.popupView), lipgloss.Height(o.popupView)
}

func (o *Overlay) MovePopup(x, y int) {
	o.popupX, o.popupY = x, y
}

func (o *Overlay) RemovePopup() {
	o.popupVisible = false
	o.popupView = ""
}

func (o *Overlay) CreatePanels() {
	o.panelsActive = true
}

func (o *Overlay) MovePanels(above, right, below, left geom.Rect) {
	o.panels = [4]geom.Rect{above, right, below, left}
}

func (o *Overlay) RemovePanels() {
	o.panelsActive = false
}
