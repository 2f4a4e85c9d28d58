package reservations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckExclusivityEmptyDate(t *testing.T) {
	assert.NoError(t, CheckExclusivity(nil, TypeRegular))
	assert.NoError(t, CheckExclusivity(nil, TypeGroup))
	assert.NoError(t, CheckExclusivity(nil, TypePrivate))
}

func TestCheckExclusivityRegularsCoexist(t *testing.T) {
	existing := []Reservation{
		{ReservationType: TypeRegular},
		{ReservationType: TypeRegular},
	}
	assert.NoError(t, CheckExclusivity(existing, TypeRegular))
}

func TestCheckExclusivityPrivateBlocksEverything(t *testing.T) {
	existing := []Reservation{{ReservationType: TypePrivate}}

	assert.ErrorIs(t, CheckExclusivity(existing, TypeRegular), ErrDateExclusivelyBooked)
	assert.ErrorIs(t, CheckExclusivity(existing, TypeGroup), ErrDateExclusivelyBooked)
	assert.ErrorIs(t, CheckExclusivity(existing, TypePrivate), ErrDateExclusivelyBooked)
}

func TestCheckExclusivityGroupBlocksEverything(t *testing.T) {
	existing := []Reservation{{ReservationType: TypeGroup}}
	assert.ErrorIs(t, CheckExclusivity(existing, TypeRegular), ErrDateExclusivelyBooked)
}

func TestCheckExclusivityExclusiveNeedsEmptyDate(t *testing.T) {
	existing := []Reservation{{ReservationType: TypeRegular}}

	assert.ErrorIs(t, CheckExclusivity(existing, TypePrivate), ErrExclusivityViolation)
	assert.ErrorIs(t, CheckExclusivity(existing, TypeGroup), ErrExclusivityViolation)
}

func TestCheckCapacity(t *testing.T) {
	assert.NoError(t, CheckCapacity(60, 60))
	assert.NoError(t, CheckCapacity(60, 1))
	assert.ErrorIs(t, CheckCapacity(3, 4), ErrCapacityExceeded)
	assert.ErrorIs(t, CheckCapacity(0, 1), ErrCapacityExceeded)
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, StatusPending.CanTransitionTo(StatusConfirmed))
	assert.True(t, StatusPending.CanTransitionTo(StatusCancelled))
	assert.False(t, StatusPending.CanTransitionTo(StatusCompleted))

	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCancelled))
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCompleted))
	assert.False(t, StatusConfirmed.CanTransitionTo(StatusPending))

	// Terminal states have no way out
	for _, next := range []Status{StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted} {
		assert.False(t, StatusCancelled.CanTransitionTo(next))
		assert.False(t, StatusCompleted.CanTransitionTo(next))
	}
}

func TestTypeExclusivity(t *testing.T) {
	assert.False(t, TypeRegular.IsExclusive())
	assert.True(t, TypeGroup.IsExclusive())
	assert.True(t, TypePrivate.IsExclusive())
}

func TestStatusValidity(t *testing.T) {
	assert.True(t, StatusPending.IsValid())
	assert.True(t, StatusCompleted.IsValid())
	assert.False(t, Status("unknown").IsValid())
	assert.False(t, Type("walkin").IsValid())
}
