package events

import "time"

// Event is the domain entity the dashboard edits and prices.
type Event struct {
	ID                   int       `json:"id"`
	Name                 string    `json:"name"`
	EventDate            time.Time `json:"event_date"`
	GuestCount           int       `json:"guest_count"`
	StartTime            string    `json:"start_time"` // local "HH:MM", empty when unset
	EndTime              string    `json:"end_time"`
	EventTypeCode        string    `json:"event_type_code"`
	EventTypeLabel       string    `json:"event_type_label"`
	TravelDistanceMeters float64   `json:"travel_distance"`
	TravelDurationSec    float64   `json:"travel_duration"`
	Price                float64   `json:"price"`
	Status               string    `json:"status"`
	CreatedAt            time.Time `json:"created_at"`
}
