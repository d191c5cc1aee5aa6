// Package eventbus carries tour lifecycle and viewport events between the
// tour and its host adapter.
package eventbus

import (
	"log"
	"sync"

	"tourguide/geom"
)

// EventType identifies a kind of event.
type EventType string

// Event type constants
const (
	EventTourStarted     EventType = "tour_started"
	EventStepShown       EventType = "step_shown"
	EventTourFinished    EventType = "tour_finished"
	EventViewportResized EventType = "viewport_resized"
	EventTargetResized   EventType = "target_resized"
	EventRelayout        EventType = "relayout_requested"
)

// TourStartedEvent fires when a tour leaves the configuring state.
type TourStartedEvent struct {
	Name string
}

// StepShownEvent fires after a step has been rendered.
type StepShownEvent struct {
	Name   string
	Index  int
	Target string // empty for centered steps
}

// TourFinishedEvent fires once, when the tour ends.
type TourFinishedEvent struct {
	Name string
}

// ViewportResizedEvent is published by the host when the window changes size.
type ViewportResizedEvent struct {
	Width  int
	Height int
}

// TargetResizedEvent is published by the host when an observed zone's
// rectangle changes.
type TargetResizedEvent struct {
	Zone string
	Rect geom.Rect
}

// RelayoutEvent is published after a debounce interval elapses; the host
// delivers it back to its UI loop and refreshes the tour there.
type RelayoutEvent struct {
	Name string
}

func (TourStartedEvent) Type() EventType     { return EventTourStarted }
func (RelayoutEvent) Type() EventType        { return EventRelayout }
func (StepShownEvent) Type() EventType       { return EventStepShown }
func (TourFinishedEvent) Type() EventType    { return EventTourFinished }
func (ViewportResizedEvent) Type() EventType { return EventViewportResized }
func (TargetResizedEvent) Type() EventType   { return EventTargetResized }

// Event is implemented by everything published on the bus.
type Event interface {
	Type() EventType
}

// Handler is a function that handles events.
type Handler func(Event)

// EventBus is the interface for the event bus.
type EventBus interface {
	Publish(event Event)
	Subscribe(eventType EventType, handler Handler) func()
}

type subscription struct {
	id      int
	handler Handler
}

// bus is the concrete implementation of EventBus. Dispatch is synchronous:
// all tour work runs on the host's UI loop, so handlers run inline in
// publish order.
type bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[EventType][]subscription
}

// New creates a new event bus.
func New() EventBus {
	return &bus{handlers: make(map[EventType][]subscription)}
}

// Publish delivers the event to every subscriber of its type.
func (b *bus) Publish(event Event) {
	b.mu.Lock()
	subs := make([]subscription, len(b.handlers[event.Type()]))
	copy(subs, b.handlers[event.Type()])
	b.mu.Unlock()

	for _, s := range subs {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("eventbus: handler panic for %s: %v", event.Type(), r)
				}
			}()
			s.handler(event)
		}()
	}
}

// Subscribe registers a handler for an event type and returns an
// unsubscribe function.
func (b *bus) Subscribe(eventType EventType, handler Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}
