package availability

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when no availability row exists for a lookup.
var ErrNotFound = errors.New("availability record not found")

type Repository interface {
	// Read path
	GetByDate(ctx context.Context, date string) (*Availability, error)
	ListActiveTimeSlots(ctx context.Context) ([]TimeSlot, error)
	CountReservationsByTime(ctx context.Context, date string) (map[string]int, error)

	// Transactional accessors used by the booking reconciler. They operate
	// on the caller's transaction so the capacity write commits or rolls
	// back together with the ledger write.
	LockByDate(tx *gorm.DB, date string) (*Availability, error)
	AdjustCapacity(tx *gorm.DB, date string, delta, defaultTotal int) error

	// Administrative CRUD, unconstrained by reconciliation rules
	ListAll(ctx context.Context) ([]Availability, error)
	Upsert(ctx context.Context, record *Availability) error
	DeleteByID(ctx context.Context, id uint) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByDate(ctx context.Context, date string) (*Availability, error) {
	var record Availability
	err := r.db.WithContext(ctx).Where("date = ?", date).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to load availability: %w", err)
	}
	return &record, nil
}

func (r *repository) ListActiveTimeSlots(ctx context.Context) ([]TimeSlot, error) {
	var slots []TimeSlot
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("time_slot").
		Find(&slots).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load time slots: %w", err)
	}
	return slots, nil
}

// CountReservationsByTime counts non-cancelled reservations for a date,
// grouped by reservation time.
func (r *repository) CountReservationsByTime(ctx context.Context, date string) (map[string]int, error) {
	var rows []struct {
		ReservationTime string
		Count           int
	}

	err := r.db.WithContext(ctx).
		Table("reservations").
		Select("reservation_time, COUNT(*) as count").
		Where("reservation_date = ? AND status <> ?", date, "cancelled").
		Group("reservation_time").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count reservations: %w", err)
	}

	counts := make(map[string]int, len(rows))
	for _, row := range rows {
		counts[row.ReservationTime] = row.Count
	}
	return counts, nil
}

// LockByDate loads the availability row for update inside tx. Returns
// (nil, nil) when no row exists for the date.
func (r *repository) LockByDate(tx *gorm.DB, date string) (*Availability, error) {
	q := tx
	// sqlite has no row locks; the serialized writer makes them redundant there
	if tx.Dialector.Name() == "postgres" {
		q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var record Availability
	err := q.Where("date = ?", date).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to lock availability: %w", err)
	}
	return &record, nil
}

// AdjustCapacity applies a signed delta to the available capacity for a
// date, creating the row from the default-open baseline when absent. The
// restored value is capped at the row's total capacity.
func (r *repository) AdjustCapacity(tx *gorm.DB, date string, delta, defaultTotal int) error {
	record, err := r.LockByDate(tx, date)
	if err != nil {
		return err
	}

	if record == nil {
		next := defaultTotal + delta
		if next > defaultTotal {
			next = defaultTotal
		}
		row := Availability{
			Date:              date,
			TotalCapacity:     defaultTotal,
			AvailableCapacity: next,
		}
		if err := tx.Create(&row).Error; err != nil {
			return fmt.Errorf("failed to create availability: %w", err)
		}
		return nil
	}

	next := record.AvailableCapacity + delta
	if next > record.TotalCapacity {
		next = record.TotalCapacity
	}
	err = tx.Model(&Availability{}).
		Where("id = ?", record.ID).
		Update("available_capacity", next).Error
	if err != nil {
		return fmt.Errorf("failed to adjust availability: %w", err)
	}
	return nil
}

func (r *repository) ListAll(ctx context.Context) ([]Availability, error) {
	var records []Availability
	err := r.db.WithContext(ctx).Order("date").Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list availability: %w", err)
	}
	return records, nil
}

func (r *repository) Upsert(ctx context.Context, record *Availability) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"total_capacity", "available_capacity", "is_closed", "notes", "updated_at"}),
		}).
		Create(record).Error
	if err != nil {
		return fmt.Errorf("failed to upsert availability: %w", err)
	}
	return nil
}

func (r *repository) DeleteByID(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&Availability{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete availability: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
