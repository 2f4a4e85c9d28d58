package reservations

import "errors"

// Business rule and lookup errors surfaced by the ledger and the booking
// reconciler. Controllers translate these to response codes; anything else
// is treated as an unexpected store failure.
var (
	ErrDateClosed            = errors.New("date is closed for reservations")
	ErrDateExclusivelyBooked = errors.New("date is already booked for a private or group event")
	ErrExclusivityViolation  = errors.New("cannot book private/group event on a date with existing reservations")
	ErrCapacityExceeded      = errors.New("not enough capacity remaining for this date")
	ErrNotFound              = errors.New("reservation not found")
	ErrInvalidStatus         = errors.New("invalid status")
	ErrInvalidTransition     = errors.New("invalid status transition")
)

// ValidationError carries the full set of field-level violations from the
// schema validator.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
