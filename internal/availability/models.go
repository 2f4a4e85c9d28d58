package availability

import "time"

// Availability is the per-date capacity record. A date without a row is
// treated as open with the default capacity; the fallback is resolved in
// the service layer, never by callers.
type Availability struct {
	ID                uint      `json:"id" gorm:"primaryKey"`
	Date              string    `json:"date" gorm:"not null;size:10;uniqueIndex"`
	TotalCapacity     int       `json:"total_capacity" gorm:"not null"`
	AvailableCapacity int       `json:"available_capacity" gorm:"not null"`
	IsClosed          bool      `json:"is_closed" gorm:"default:false"`
	Notes             string    `json:"notes" gorm:"size:500"`
	CreatedAt         time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Availability) TableName() string {
	return "availability"
}

// TimeSlot is static seating-window configuration, read-only from the
// booking path.
type TimeSlot struct {
	ID              uint   `json:"id" gorm:"primaryKey"`
	TimeSlot        string `json:"time_slot" gorm:"not null;size:8;uniqueIndex"`
	MaxReservations int    `json:"max_reservations" gorm:"not null"`
	IsActive        bool   `json:"is_active" gorm:"default:true"`
}

// TableName specifies the table name for GORM
func (TimeSlot) TableName() string {
	return "time_slots"
}
