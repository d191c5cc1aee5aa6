package tourguide

import "tourguide/internal/eventbus"

// Re-export event types for hosts subscribing to tour lifecycle events.
type EventBus = eventbus.EventBus
type Event = eventbus.Event
type EventType = eventbus.EventType
type EventHandler = eventbus.Handler

// Event type constants
const (
	EventTourStarted     = eventbus.EventTourStarted
	EventStepShown       = eventbus.EventStepShown
	EventTourFinished    = eventbus.EventTourFinished
	EventViewportResized = eventbus.EventViewportResized
	EventTargetResized   = eventbus.EventTargetResized
	EventRelayout        = eventbus.EventRelayout
)

// Re-export event payload types
type TourStartedEvent = eventbus.TourStartedEvent
type StepShownEvent = eventbus.StepShownEvent
type TourFinishedEvent = eventbus.TourFinishedEvent
type ViewportResizedEvent = eventbus.ViewportResizedEvent
type TargetResizedEvent = eventbus.TargetResizedEvent
type RelayoutEvent = eventbus.RelayoutEvent
