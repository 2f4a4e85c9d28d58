package reservations

// Invariant checks for the booking reconciler, kept free of any transport
// or storage dependency so they can be exercised directly.

// CheckExclusivity applies the per-date exclusivity rule against the
// non-cancelled reservations already on the date:
//
//   - an existing private or group booking blocks every new reservation;
//   - a new private or group booking is blocked by any existing
//     reservation, whatever its type.
//
// A date therefore holds either any number of regular reservations or
// exactly one private/group booking.
func CheckExclusivity(existing []Reservation, newType Type) error {
	for _, r := range existing {
		if r.ReservationType.IsExclusive() {
			return ErrDateExclusivelyBooked
		}
	}

	if newType.IsExclusive() && len(existing) > 0 {
		return ErrExclusivityViolation
	}

	return nil
}

// CheckCapacity rejects a party that does not fit in the remaining
// capacity for the date.
func CheckCapacity(availableCapacity, guests int) error {
	if guests > availableCapacity {
		return ErrCapacityExceeded
	}
	return nil
}
