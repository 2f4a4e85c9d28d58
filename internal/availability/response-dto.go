package availability

// DateAvailability is the public availability view for one date.
type DateAvailability struct {
	Date              string `json:"date"`
	Available         bool   `json:"available"`
	AvailableCapacity int    `json:"available_capacity"`
	TotalCapacity     int    `json:"total_capacity"`
	IsClosed          bool   `json:"is_closed"`
	Notes             string `json:"notes,omitempty"`
}

// TimeSlotOccupancy is one seating window joined with its booking count.
type TimeSlotOccupancy struct {
	Time                string `json:"time"`
	MaxReservations     int    `json:"max_reservations"`
	CurrentReservations int    `json:"current_reservations"`
	Available           bool   `json:"available"`
}

// TimeSlotsResponse is the occupancy view for one date.
type TimeSlotsResponse struct {
	Date      string              `json:"date"`
	TimeSlots []TimeSlotOccupancy `json:"timeSlots"`
}
