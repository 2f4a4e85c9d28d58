package notifications

import (
	"encoding/json"
	"time"
)

// ReservationEvent is the lifecycle message published for every booking
// mutation. Consumers (confirmation emails, dashboards) hang off the topic.
type ReservationEvent struct {
	EventID         string    `json:"event_id"`
	EventType       string    `json:"event_type"`
	ReservationID   string    `json:"reservation_id"`
	ReservationDate string    `json:"reservation_date"`
	ReservationTime string    `json:"reservation_time"`
	NumberOfGuests  int       `json:"number_of_guests"`
	ReservationType string    `json:"reservation_type"`
	Status          string    `json:"status"`
	OccurredAt      time.Time `json:"occurred_at"`
}

// ToJSON serializes the event for the wire
func (e *ReservationEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// GetPartitionKey routes events for one date to the same partition so
// per-date ordering is preserved.
func (e *ReservationEvent) GetPartitionKey() string {
	return e.ReservationDate
}
