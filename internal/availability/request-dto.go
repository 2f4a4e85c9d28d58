package availability

// UpsertAvailabilityRequest is the admin payload for forcing a date's
// capacity or closed state. It bypasses the reconciliation rules.
type UpsertAvailabilityRequest struct {
	Date              string `json:"date" binding:"required,datetime=2006-01-02"`
	TotalCapacity     int    `json:"total_capacity" binding:"omitempty,min=0"`
	AvailableCapacity *int   `json:"available_capacity" binding:"omitempty,min=0"`
	IsClosed          bool   `json:"is_closed"`
	Notes             string `json:"notes" binding:"max=500"`
}
