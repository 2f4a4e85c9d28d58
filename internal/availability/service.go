package availability

import (
	"context"
	"time"

	"ravenshade/pkg/cache"
	"ravenshade/pkg/logger"
)

type Service interface {
	// Cache dependency injection
	SetCacheService(cacheService cache.Service, ttl time.Duration)

	// Public read path
	GetDateAvailability(ctx context.Context, date string) (*DateAvailability, error)
	GetTimeSlots(ctx context.Context, date string) (*TimeSlotsResponse, error)

	// Cache invalidation hook for the booking reconciler
	InvalidateDate(ctx context.Context, date string)

	// Admin operations
	ListAvailability(ctx context.Context) ([]Availability, error)
	UpsertAvailability(ctx context.Context, req UpsertAvailabilityRequest) (*Availability, error)
	DeleteAvailability(ctx context.Context, id uint) error
}

type service struct {
	repo            Repository
	defaultCapacity int
	cacheService    cache.Service
	cacheTTL        time.Duration
}

func NewService(repo Repository, defaultCapacity int) Service {
	return &service{
		repo:            repo,
		defaultCapacity: defaultCapacity,
	}
}

// SetCacheService injects the cache service dependency
func (s *service) SetCacheService(cacheService cache.Service, ttl time.Duration) {
	s.cacheService = cacheService
	s.cacheTTL = ttl
}

func cacheKey(date string) string {
	return "availability:date:" + date
}

// GetDateAvailability resolves the per-date record, falling back to the
// default-open state when no row exists.
func (s *service) GetDateAvailability(ctx context.Context, date string) (*DateAvailability, error) {
	if s.cacheService == nil {
		return s.fetchDateAvailability(ctx, date)
	}

	var result DateAvailability
	err := s.cacheService.GetOrSet(ctx, cacheKey(date), s.cacheTTL, func() (interface{}, error) {
		return s.fetchDateAvailability(ctx, date)
	}, &result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *service) fetchDateAvailability(ctx context.Context, date string) (*DateAvailability, error) {
	record, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		if err == ErrNotFound {
			// No record means the date is open at full default capacity
			return &DateAvailability{
				Date:              date,
				Available:         true,
				AvailableCapacity: s.defaultCapacity,
				TotalCapacity:     s.defaultCapacity,
				IsClosed:          false,
			}, nil
		}
		return nil, err
	}

	return &DateAvailability{
		Date:              date,
		Available:         !record.IsClosed && record.AvailableCapacity > 0,
		AvailableCapacity: record.AvailableCapacity,
		TotalCapacity:     record.TotalCapacity,
		IsClosed:          record.IsClosed,
		Notes:             record.Notes,
	}, nil
}

// GetTimeSlots joins the active slot configuration against the booking
// counts for the date. Slots without reservations report zero.
func (s *service) GetTimeSlots(ctx context.Context, date string) (*TimeSlotsResponse, error) {
	slots, err := s.repo.ListActiveTimeSlots(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.repo.CountReservationsByTime(ctx, date)
	if err != nil {
		return nil, err
	}

	occupancy := make([]TimeSlotOccupancy, 0, len(slots))
	for _, slot := range slots {
		current := counts[slot.TimeSlot]
		occupancy = append(occupancy, TimeSlotOccupancy{
			Time:                slot.TimeSlot,
			MaxReservations:     slot.MaxReservations,
			CurrentReservations: current,
			Available:           current < slot.MaxReservations,
		})
	}

	return &TimeSlotsResponse{Date: date, TimeSlots: occupancy}, nil
}

// InvalidateDate drops any cached availability view for the date. Called
// by the booking reconciler after every capacity mutation.
func (s *service) InvalidateDate(ctx context.Context, date string) {
	if s.cacheService == nil {
		return
	}
	if err := s.cacheService.Delete(ctx, cacheKey(date)); err != nil {
		logger.GetDefault().ErrorWithContext(ctx, "Availability cache invalidation failed", err, map[string]interface{}{
			"date": date,
		})
	}
}

func (s *service) ListAvailability(ctx context.Context) ([]Availability, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) UpsertAvailability(ctx context.Context, req UpsertAvailabilityRequest) (*Availability, error) {
	total := req.TotalCapacity
	if total == 0 {
		total = s.defaultCapacity
	}

	available := total
	if req.AvailableCapacity != nil {
		available = *req.AvailableCapacity
	}

	record := &Availability{
		Date:              req.Date,
		TotalCapacity:     total,
		AvailableCapacity: available,
		IsClosed:          req.IsClosed,
		Notes:             req.Notes,
	}

	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	s.InvalidateDate(ctx, req.Date)
	return record, nil
}

func (s *service) DeleteAvailability(ctx context.Context, id uint) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	// The deleted row's date is no longer known here, so drop every cached
	// date view rather than a single key.
	if s.cacheService != nil {
		if err := s.cacheService.DeletePattern(ctx, "availability:date:*"); err != nil {
			logger.GetDefault().ErrorWithContext(ctx, "Availability cache invalidation failed", err, nil)
		}
	}
	return nil
}
