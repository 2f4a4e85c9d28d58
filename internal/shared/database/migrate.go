package database

import (
	"ravenshade/internal/availability"
	"ravenshade/internal/reservations"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&reservations.Reservation{},
		&availability.Availability{},
		&availability.TimeSlot{},
	)
}
