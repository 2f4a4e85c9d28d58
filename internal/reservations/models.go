package reservations

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Reservation is the ledger record for one booking. Guest count, date and
// time are immutable after creation; only the status may change.
type Reservation struct {
	ID              uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name            string    `json:"name" gorm:"not null;size:100"`
	Phone           string    `json:"phone" gorm:"not null;size:11"`
	Email           string    `json:"email" gorm:"size:255"`
	ReservationDate string    `json:"reservation_date" gorm:"not null;size:10;index"`
	ReservationTime string    `json:"reservation_time" gorm:"not null;size:8"`
	NumberOfGuests  int       `json:"number_of_guests" gorm:"not null;check:number_of_guests > 0"`
	ReservationType Type      `json:"reservation_type" gorm:"type:varchar(10);not null"`
	SpecialRequests string    `json:"special_requests" gorm:"size:500"`
	Status          Status    `json:"status" gorm:"type:varchar(10);default:'pending'"`
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Reservation) TableName() string {
	return "reservations"
}

// BeforeCreate assigns the server-side identifier
func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
