package reservations

// CreateReservationRequest is the booking payload. Validation runs through
// the schema validator so every violation is reported, not just the first;
// gin's binding layer only decodes the JSON.
type CreateReservationRequest struct {
	Name            string `json:"name" validate:"required,min=2,max=100"`
	Phone           string `json:"phone" validate:"required,phone"`
	Email           string `json:"email" validate:"omitempty,email"`
	ReservationDate string `json:"reservation_date" validate:"required,datetime=2006-01-02"`
	ReservationTime string `json:"reservation_time" validate:"required,restime"`
	NumberOfGuests  int    `json:"number_of_guests" validate:"required,gt=0"`
	ReservationType string `json:"reservation_type" validate:"required,oneof=regular group private"`
	SpecialRequests string `json:"special_requests" validate:"omitempty,max=500"`
}

// UpdateStatusRequest is the admin payload for a status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ReservationListQuery filters the admin listing. Filters are conjunctive
// and optional.
type ReservationListQuery struct {
	Status string `form:"status"`
	Date   string `form:"date"`
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}
