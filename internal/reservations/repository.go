package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ravenshade/internal/availability"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	// Reconciling mutations. Both run as one atomic unit of work that
	// couples the ledger write with the availability adjustment.
	CreateWithReconciliation(ctx context.Context, res *Reservation, defaultCapacity int) error
	CancelWithRestore(ctx context.Context, id uuid.UUID, defaultCapacity int) (*Reservation, error)

	// Ledger operations
	GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Reservation, error)
	List(ctx context.Context, query ReservationListQuery) ([]Reservation, error)
}

type repository struct {
	db               *gorm.DB
	availabilityRepo availability.Repository
}

func NewRepository(db *gorm.DB, availabilityRepo availability.Repository) Repository {
	return &repository{db: db, availabilityRepo: availabilityRepo}
}

// CreateWithReconciliation inserts a reservation and decrements the date's
// capacity in one transaction. The availability row is locked first so two
// concurrent bookings for the same date serialize on it; any rule failure
// rolls back the whole unit of work.
func (r *repository) CreateWithReconciliation(ctx context.Context, res *Reservation, defaultCapacity int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. Lock the availability row (if any) and reject closed dates
		record, err := r.availabilityRepo.LockByDate(tx, res.ReservationDate)
		if err != nil {
			return err
		}
		if record != nil && record.IsClosed {
			return ErrDateClosed
		}

		// 2. Apply the exclusivity rule against the live reservations
		var existing []Reservation
		err = tx.Where("reservation_date = ? AND status <> ?", res.ReservationDate, StatusCancelled).
			Find(&existing).Error
		if err != nil {
			return fmt.Errorf("failed to load reservations for date: %w", err)
		}
		if err := CheckExclusivity(existing, res.ReservationType); err != nil {
			return err
		}

		// 3. Check the party fits the remaining capacity
		availableCapacity := defaultCapacity
		if record != nil {
			availableCapacity = record.AvailableCapacity
		}
		if err := CheckCapacity(availableCapacity, res.NumberOfGuests); err != nil {
			return err
		}

		// 4. Insert the reservation
		res.Status = StatusPending
		if err := tx.Create(res).Error; err != nil {
			return fmt.Errorf("failed to create reservation: %w", err)
		}

		// 5. Decrement availability for the date
		return r.availabilityRepo.AdjustCapacity(tx, res.ReservationDate, -res.NumberOfGuests, defaultCapacity)
	})
}

// CancelWithRestore transitions a reservation to cancelled and gives the
// seats back to the date's availability, atomically.
func (r *repository) CancelWithRestore(ctx context.Context, id uuid.UUID, defaultCapacity int) (*Reservation, error) {
	var res Reservation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ? AND status <> ?", id, StatusCancelled).First(&res).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load reservation: %w", err)
		}

		err = tx.Model(&Reservation{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     StatusCancelled,
				"updated_at": time.Now(),
			}).Error
		if err != nil {
			return fmt.Errorf("failed to cancel reservation: %w", err)
		}

		return r.availabilityRepo.AdjustCapacity(tx, res.ReservationDate, res.NumberOfGuests, defaultCapacity)
	})
	if err != nil {
		return nil, err
	}

	res.Status = StatusCancelled
	return &res, nil
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Reservation, error) {
	var res Reservation
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load reservation: %w", err)
	}
	return &res, nil
}

// UpdateStatus applies an admin status transition following the lifecycle
// graph. It does not touch availability; cancellations that should restore
// seats go through CancelWithRestore.
func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Reservation, error) {
	var res Reservation

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("id = ?", id).First(&res).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return fmt.Errorf("failed to load reservation: %w", err)
		}

		if !res.Status.CanTransitionTo(status) {
			return ErrInvalidTransition
		}

		now := time.Now()
		err = tx.Model(&Reservation{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{
				"status":     status,
				"updated_at": now,
			}).Error
		if err != nil {
			return fmt.Errorf("failed to update status: %w", err)
		}

		res.Status = status
		res.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &res, nil
}

func (r *repository) List(ctx context.Context, query ReservationListQuery) ([]Reservation, error) {
	// Set defaults
	if query.Limit <= 0 {
		query.Limit = 50
	}
	if query.Offset < 0 {
		query.Offset = 0
	}

	q := r.db.WithContext(ctx).Model(&Reservation{})

	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.Date != "" {
		q = q.Where("reservation_date = ?", query.Date)
	}

	var results []Reservation
	err := q.Order("reservation_date DESC, reservation_time DESC").
		Limit(query.Limit).
		Offset(query.Offset).
		Find(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return results, nil
}
