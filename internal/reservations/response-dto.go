package reservations

// CreateReservationResponse wraps the persisted reservation on success.
type CreateReservationResponse struct {
	Message     string      `json:"message"`
	Reservation Reservation `json:"reservation"`
}

// ReservationListResponse is the admin listing page.
type ReservationListResponse struct {
	Reservations []Reservation `json:"reservations"`
	Count        int           `json:"count"`
}
