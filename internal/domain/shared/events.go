// Package shared holds types used by more than one household aggregate.
package shared

import "time"

// DomainEvent represents an event that has occurred in the domain
type DomainEvent interface {
	EventName() string
	OccurredAt() time.Time
}

// EventSink receives drained domain events
type EventSink interface {
	Publish(events ...DomainEvent)
}

// EventSinkFunc adapts a function to EventSink
type EventSinkFunc func(events ...DomainEvent)

// Publish calls f
func (f EventSinkFunc) Publish(events ...DomainEvent) {
	f(events...)
}

// NextID returns one more than the largest id, starting at 1. Lists in the
// household use it to assign identifiers.
func NextID(ids []int) int {
	max := 0
	for _, id := range ids {
		if id > max {
			max = id
		}
	}
	return max + 1
}
