package reservations

import (
	"context"
	"errors"
	"time"

	"ravenshade/pkg/logger"

	"github.com/google/uuid"
)

// AvailabilityInvalidator drops cached availability views after a capacity
// mutation (to avoid a hard dependency on the availability service)
type AvailabilityInvalidator interface {
	InvalidateDate(ctx context.Context, date string)
}

// EventPublisher publishes reservation lifecycle events (to avoid a hard
// dependency on the broker)
type EventPublisher interface {
	PublishReservationEvent(ctx context.Context, eventType string, res *Reservation) error
}

// Lifecycle event types
const (
	EventReservationCreated       = "reservation.created"
	EventReservationCancelled     = "reservation.cancelled"
	EventReservationStatusUpdated = "reservation.status_updated"
)

// Service interface defines the contract for reservation business logic
type Service interface {
	CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error)
	GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error)
	CancelReservation(ctx context.Context, id uuid.UUID) error
	UpdateReservationStatus(ctx context.Context, id uuid.UUID, status string) (*Reservation, error)
	ListReservations(ctx context.Context, query ReservationListQuery) ([]Reservation, error)

	// Optional dependency injection
	SetAvailabilityInvalidator(invalidator AvailabilityInvalidator)
	SetEventPublisher(publisher EventPublisher)
}

type service struct {
	repo            Repository
	defaultCapacity int
	invalidator     AvailabilityInvalidator
	publisher       EventPublisher
	logger          *logger.Logger
}

// NewService creates a new reservation service instance
func NewService(repo Repository, defaultCapacity int) Service {
	return &service{
		repo:            repo,
		defaultCapacity: defaultCapacity,
		logger:          logger.GetDefault(),
	}
}

func (s *service) SetAvailabilityInvalidator(invalidator AvailabilityInvalidator) {
	s.invalidator = invalidator
}

func (s *service) SetEventPublisher(publisher EventPublisher) {
	s.publisher = publisher
}

// CreateReservation validates the payload and runs the booking
// reconciliation. Any rule failure leaves the store untouched.
func (s *service) CreateReservation(ctx context.Context, req CreateReservationRequest) (*Reservation, error) {
	if verr := ValidateCreateRequest(&req); verr != nil {
		return nil, verr
	}

	res := &Reservation{
		Name:            req.Name,
		Phone:           req.Phone,
		Email:           req.Email,
		ReservationDate: req.ReservationDate,
		ReservationTime: req.ReservationTime,
		NumberOfGuests:  req.NumberOfGuests,
		ReservationType: Type(req.ReservationType),
		SpecialRequests: req.SpecialRequests,
	}

	if err := s.repo.CreateWithReconciliation(ctx, res, s.defaultCapacity); err != nil {
		if isBookingRejection(err) {
			s.logger.LogBookingRejected(ctx, res.ReservationDate, err.Error())
		}
		return nil, err
	}

	s.logger.LogReservationCreated(ctx, res.ID.String(), res.ReservationDate, res.NumberOfGuests)
	s.afterCapacityChange(res.ReservationDate)
	s.publish(EventReservationCreated, res)

	return res, nil
}

func (s *service) GetReservation(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	return s.repo.GetByID(ctx, id)
}

// CancelReservation transitions the reservation to cancelled and restores
// its seats to the date's availability.
func (s *service) CancelReservation(ctx context.Context, id uuid.UUID) error {
	res, err := s.repo.CancelWithRestore(ctx, id, s.defaultCapacity)
	if err != nil {
		return err
	}

	s.logger.LogReservationCancelled(ctx, res.ID.String(), res.ReservationDate, res.NumberOfGuests)
	s.afterCapacityChange(res.ReservationDate)
	s.publish(EventReservationCancelled, res)

	return nil
}

// UpdateReservationStatus applies an admin status transition.
func (s *service) UpdateReservationStatus(ctx context.Context, id uuid.UUID, status string) (*Reservation, error) {
	next := Status(status)
	if !next.IsValid() {
		return nil, ErrInvalidStatus
	}

	res, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}

	s.logger.LogReservationStatusUpdated(ctx, res.ID.String(), res.Status.String())
	s.publish(EventReservationStatusUpdated, res)

	return res, nil
}

func (s *service) ListReservations(ctx context.Context, query ReservationListQuery) ([]Reservation, error) {
	return s.repo.List(ctx, query)
}

func isBookingRejection(err error) bool {
	return errors.Is(err, ErrDateClosed) ||
		errors.Is(err, ErrDateExclusivelyBooked) ||
		errors.Is(err, ErrExclusivityViolation) ||
		errors.Is(err, ErrCapacityExceeded)
}

func (s *service) afterCapacityChange(date string) {
	if s.invalidator == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	s.invalidator.InvalidateDate(ctx, date)
}

// publish sends a lifecycle event without blocking the booking path.
func (s *service) publish(eventType string, res *Reservation) {
	if s.publisher == nil {
		return
	}

	snapshot := *res
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.publisher.PublishReservationEvent(ctx, eventType, &snapshot); err != nil {
			s.logger.ErrorWithContext(ctx, "Failed to publish reservation event", err, map[string]interface{}{
				"event_type":     eventType,
				"reservation_id": snapshot.ID.String(),
			})
		}
	}()
}
