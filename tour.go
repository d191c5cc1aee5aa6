// Package tourguide implements step-by-step guided tours for terminal
// applications: a sequence of popups anchored to named zones of the host
// UI, optionally isolated by a four-panel spotlight mask.
package tourguide

import (
	"log"
	"sync"
	"time"

	"tourguide/geom"
	"tourguide/internal/debounce"
	"tourguide/internal/eventbus"
	"tourguide/internal/spotlight"
	"tourguide/internal/text"
)

// State is the tour lifecycle state.
type State int

const (
	Configuring State = iota
	Started
	Finished
)

func (s State) String() string {
	switch s {
	case Configuring:
		return "configuring"
	case Started:
		return "started"
	case Finished:
		return "finished"
	}
	return "unknown"
}

// Step is one stop in the tour. Steps are immutable once supplied.
type Step struct {
	// Target names the host zone the step is anchored to. Empty means
	// centered mode: the popup is centered in the viewport and the
	// spotlight masks nothing.
	Target string `json:"target,omitempty"`
	Text   string `json:"text"`
	Image  string `json:"image,omitempty"`
}

// Debounce intervals for viewport and target resize recalculation.
const (
	viewportResizeQuiet = 100 * time.Millisecond
	targetResizeQuiet   = 20 * time.Millisecond
)

// Tour owns the step sequence, the current index, the popup surface and
// the spotlight, and drives the Configuring → Started → Finished state
// machine. All navigation runs on the host's UI loop; the debounce timers
// re-enter through a RelayoutEvent the host delivers back to that loop.
//
// Lifecycle events are published after the tour's own lock is released,
// so subscribers may call back into the tour.
type Tour struct {
	mu     sync.Mutex
	name   string
	steps  []Step
	index  int
	state  State
	opts   Options
	vars   map[string]string
	layout Layout
	store  Store
	bus    eventbus.EventBus

	spot      *spotlight.Spotlight
	unsubs    []func()
	resizeDeb *debounce.Debouncer
	targetDeb *debounce.Debouncer
	observed  string // zone id currently under resize observation
}

// New creates a tour in the configuring state.
func New(name string, steps []Step, layout Layout) *Tour {
	return &Tour{
		name:   name,
		steps:  steps,
		layout: layout,
		opts:   DefaultOptions(),
		vars:   make(map[string]string),
		bus:    eventbus.New(),
	}
}

// Name returns the tour name used for persistence.
func (t *Tour) Name() string { return t.name }

// Events returns the tour's event bus. Hosts publish viewport and target
// resize events on it and may subscribe to lifecycle events.
func (t *Tour) Events() EventBus { return t.bus }

// State returns the current lifecycle state.
func (t *Tour) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// CurrentStep returns the current step index.
func (t *Tour) CurrentStep() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.index
}

// IsLastStep reports whether the current step is the final one.
func (t *Tour) IsLastStep() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.isLast()
}

// Options returns the current options.
func (t *Tour) Options() Options {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.opts
}

// SetOptions replaces the options. Takes effect on the next render, except
// UseSpotlight which is only read at Start.
func (t *Tour) SetOptions(opts Options) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.opts = opts
}

// SetTextVariables sets the variables substituted into step text.
func (t *Tour) SetTextVariables(vars map[string]string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.vars = make(map[string]string, len(vars))
	for k, v := range vars {
		t.vars[k] = v
	}
}

// SetStore sets the session store used by Save.
func (t *Tour) SetStore(store Store) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.store = store
}

// ObservedTarget returns the zone id of the current step, or "" for a
// centered step. The host watches this zone for size changes.
func (t *Tour) ObservedTarget() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.observed
}

// Start moves the tour from Configuring to Started: it registers the
// resize subscriptions, creates the popup surface and (if enabled) the
// spotlight, and renders the current step. Starting an already started or
// finished tour is a no-op.
func (t *Tour) Start() {
	t.mu.Lock()

	if t.state != Configuring {
		log.Printf("tourguide: start ignored, tour %q is already %s", t.name, t.state)
		t.mu.Unlock()
		return
	}
	if len(t.steps) == 0 {
		log.Printf("tourguide: start ignored, tour %q has no steps", t.name)
		t.mu.Unlock()
		return
	}
	t.state = Started

	t.resizeDeb = debounce.New(viewportResizeQuiet, t.requestRelayout)
	t.targetDeb = debounce.New(targetResizeQuiet, t.requestRelayout)
	t.unsubs = append(t.unsubs,
		t.bus.Subscribe(eventbus.EventViewportResized, func(eventbus.Event) {
			t.resizeDeb.Trigger()
		}),
		t.bus.Subscribe(eventbus.EventTargetResized, func(e eventbus.Event) {
			ev := e.(eventbus.TargetResizedEvent)
			if ev.Zone == t.ObservedTarget() {
				t.targetDeb.Trigger()
			}
		}),
	)

	t.layout.ShowPopup()
	if t.opts.UseSpotlight {
		// UseSpotlight is read once here; later toggles have no effect.
		t.spot = spotlight.New(t.layout, t.opts.SpotlightPadding, func() (int, int) {
			return t.layout.ViewportSize()
		})
	}

	shown := t.render()
	started := eventbus.TourStartedEvent{Name: t.name}
	t.mu.Unlock()

	t.bus.Publish(started)
	t.bus.Publish(shown)
}

// Next advances to the next step, ending the tour when the sequence is
// exhausted.
func (t *Tour) Next() {
	t.mu.Lock()

	if t.state != Started {
		log.Printf("tourguide: next ignored, tour %q is %s", t.name, t.state)
		t.mu.Unlock()
		return
	}
	t.index++
	if t.index >= len(t.steps) {
		finished := t.end()
		t.mu.Unlock()
		t.bus.Publish(finished)
		return
	}
	shown := t.render()
	t.mu.Unlock()
	t.bus.Publish(shown)
}

// Previous steps back, clamped at the first step.
func (t *Tour) Previous() {
	t.mu.Lock()

	if t.state != Started {
		log.Printf("tourguide: previous ignored, tour %q is %s", t.name, t.state)
		t.mu.Unlock()
		return
	}
	if t.index > 0 {
		t.index--
	}
	shown := t.render()
	t.mu.Unlock()
	t.bus.Publish(shown)
}

// End finishes the tour: the popup is removed, subscriptions and debounce
// timers are disposed, the spotlight is killed and scrolling is re-enabled.
func (t *Tour) End() {
	t.mu.Lock()

	if t.state != Started {
		log.Printf("tourguide: end ignored, tour %q is %s", t.name, t.state)
		t.mu.Unlock()
		return
	}
	finished := t.end()
	t.mu.Unlock()
	t.bus.Publish(finished)
}

// Refresh re-renders the current step. The host calls this from its UI
// loop after receiving a RelayoutEvent.
func (t *Tour) Refresh() {
	t.mu.Lock()
	if t.state != Started {
		t.mu.Unlock()
		return
	}
	shown := t.render()
	t.mu.Unlock()
	t.bus.Publish(shown)
}

func (t *Tour) isLast() bool {
	return t.index == len(t.steps)-1
}

// requestRelayout runs on a debounce timer goroutine; it only publishes,
// the host brings the refresh back onto its UI loop.
func (t *Tour) requestRelayout() {
	t.bus.Publish(eventbus.RelayoutEvent{Name: t.name})
}

// end tears the tour down. Callers hold t.mu and publish the returned
// event after unlocking.
func (t *Tour) end() eventbus.TourFinishedEvent {
	t.state = Finished
	for _, unsub := range t.unsubs {
		unsub()
	}
	t.unsubs = nil
	t.resizeDeb.Cancel()
	t.targetDeb.Cancel()

	t.layout.RemovePopup()
	if t.spot != nil {
		t.spot.Kill()
		t.spot = nil
	}
	t.layout.UnlockScroll()
	t.observed = ""
	return eventbus.TourFinishedEvent{Name: t.name}
}

// render shows the current step: popup content and placement, spotlight
// position, scroll handling. Callers hold t.mu and publish the returned
// event after unlocking.
func (t *Tour) render() eventbus.StepShownEvent {
	step := t.steps[t.index]

	labels := text.LabelsFor(t.opts.Language)
	content := PopupContent{
		Text:          text.Substitute(step.Text, t.vars),
		Image:         step.Image,
		ShowPrevious:  t.index > 0,
		PreviousLabel: labels.Previous,
		NextLabel:     labels.Next,
		StepIndex:     t.index,
		StepCount:     len(t.steps),
	}
	if t.isLast() {
		content.NextLabel = labels.End
	}
	t.layout.SetPopupContent(content)

	pw, ph := t.layout.PopupSize()
	vw, vh := t.layout.ViewportSize()
	popup := geom.Size{Width: pw, Height: ph}
	viewport := geom.Size{Width: vw, Height: vh}

	var target geom.Rect
	found := false
	if step.Target != "" {
		target, found = t.layout.FindZone(step.Target)
		if !found {
			log.Printf("tourguide: zone %q not found, centering step %d", step.Target, t.index)
		}
	}

	var x, y int
	if found {
		t.layout.ScrollIntoView(step.Target, t.opts.ScrollMargin)
		target, _ = t.layout.FindZone(step.Target)

		dw, dh := t.layout.DocumentSize()
		doc := geom.Size{Width: dw, Height: dh}
		var rescroll bool
		x, y, rescroll = geom.PlacePopup(target, popup, viewport, doc, geom.Gap)
		if rescroll {
			t.layout.ScrollIntoView(step.Target, t.opts.ScrollMargin)
			target, _ = t.layout.FindZone(step.Target)
			x, y = geom.PlaceBelow(target, popup, geom.Gap)
		}
		if t.spot != nil {
			t.spot.Move(target)
		}
	} else {
		x, y = geom.CenterIn(viewport, popup)
		if t.spot != nil {
			t.spot.Blackout()
		}
	}
	t.layout.MovePopup(x, y)

	if t.opts.DisableScroll {
		t.layout.LockScroll()
	} else {
		t.layout.UnlockScroll()
	}

	if found {
		t.observed = step.Target
	} else {
		t.observed = ""
	}
	return eventbus.StepShownEvent{Name: t.name, Index: t.index, Target: t.observed}
}
