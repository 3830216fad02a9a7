package core

import "context"

// EventTypeRef is the classification attached to an event record.
type EventTypeRef struct {
	Code  string
	Label string
}

// EventRecord is the read-only slice of an event that the pricing
// calculator consumes.
type EventRecord struct {
	ID                   int
	GuestCount           int
	StartTime            string // local "HH:MM", empty when unset
	EndTime              string
	EventType            *EventTypeRef
	TravelDistanceMeters float64
	TravelDurationSec    float64
	Price                float64
}

// EventReader defines the data-access contract.
// Pricing depends ONLY on this interface.
type EventReader interface {
	GetEventRecord(ctx context.Context, eventID int) (*EventRecord, error)
}
