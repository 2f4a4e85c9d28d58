package reservations

// Type classifies a reservation. Private and group bookings monopolize
// their date.
type Type string

const (
	TypeRegular Type = "regular"
	TypeGroup   Type = "group"
	TypePrivate Type = "private"
)

// IsValid checks if the reservation type is valid
func (t Type) IsValid() bool {
	switch t {
	case TypeRegular, TypeGroup, TypePrivate:
		return true
	}
	return false
}

// IsExclusive reports whether this type monopolizes its date
func (t Type) IsExclusive() bool {
	return t == TypePrivate || t == TypeGroup
}

// String returns the string representation of Type
func (t Type) String() string {
	return string(t)
}

// Status is the reservation lifecycle state
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
	StatusCompleted Status = "completed"
)

// IsValid checks if the reservation status is valid
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no further transitions are allowed
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

// CanTransitionTo checks the status transition graph:
// pending -> confirmed | cancelled, confirmed -> cancelled | completed.
func (s Status) CanTransitionTo(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCancelled || next == StatusCompleted
	}
	return false
}
