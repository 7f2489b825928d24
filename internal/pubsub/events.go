// Package pubsub provides a generic publish/subscribe event system used to
// fan tab-bar outcomes and log entries out to Bubble Tea listeners.
package pubsub

import (
	"context"
	"time"
)

// EventType identifies what happened.
type EventType string

const (
	// SelectedEvent is published when a tab was picked by the user.
	SelectedEvent EventType = "selected"
	// ClosedEvent is published when a tab's close affordance was pressed.
	ClosedEvent EventType = "closed"
	// LoggedEvent carries a formatted log line.
	LoggedEvent EventType = "logged"
	// ChangedEvent is published when a watched file changed on disk.
	ChangedEvent EventType = "changed"
	// ErrorEvent carries a failure from a background worker.
	ErrorEvent EventType = "error"
)

// Event is a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber hands out subscription channels.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher publishes typed payloads.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
