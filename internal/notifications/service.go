package notifications

import (
	"context"
	"time"

	"ravenshade/internal/reservations"

	"github.com/google/uuid"
)

// Service adapts the event producer to the reservation service's publisher
// contract.
type Service struct {
	producer EventProducer
}

func NewService(producer EventProducer) *Service {
	return &Service{producer: producer}
}

// PublishReservationEvent builds and publishes a lifecycle event for a
// reservation mutation.
func (s *Service) PublishReservationEvent(ctx context.Context, eventType string, res *reservations.Reservation) error {
	event := &ReservationEvent{
		EventID:         uuid.NewString(),
		EventType:       eventType,
		ReservationID:   res.ID.String(),
		ReservationDate: res.ReservationDate,
		ReservationTime: res.ReservationTime,
		NumberOfGuests:  res.NumberOfGuests,
		ReservationType: res.ReservationType.String(),
		Status:          res.Status.String(),
		OccurredAt:      time.Now(),
	}

	return s.producer.Publish(ctx, event)
}

// Close shuts down the producer
func (s *Service) Close() error {
	if s.producer == nil {
		return nil
	}
	return s.producer.Close()
}
