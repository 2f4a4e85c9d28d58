package reservations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() CreateReservationRequest {
	return CreateReservationRequest{
		Name:            "Jordan Blake",
		Phone:           "0123456789",
		Email:           "jordan@example.com",
		ReservationDate: "2099-01-01",
		ReservationTime: "19:00",
		NumberOfGuests:  4,
		ReservationType: "regular",
	}
}

func TestValidateCreateRequestAccepted(t *testing.T) {
	req := validRequest()
	assert.Nil(t, ValidateCreateRequest(&req))
}

func TestValidateCreateRequestEmptyEmailTreatedAsAbsent(t *testing.T) {
	req := validRequest()
	req.Email = ""
	assert.Nil(t, ValidateCreateRequest(&req))
}

func TestValidateCreateRequestPhoneFormat(t *testing.T) {
	req := validRequest()
	req.Phone = "abc"

	verr := ValidateCreateRequest(&req)
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid phone number format", verr.Fields["phone"])

	req.Phone = "12345678" // 8 digits, below minimum
	require.NotNil(t, ValidateCreateRequest(&req))

	req.Phone = "123456789012" // 12 digits, above maximum
	require.NotNil(t, ValidateCreateRequest(&req))
}

func TestValidateCreateRequestTimeFormats(t *testing.T) {
	req := validRequest()

	req.ReservationTime = "19:00:00"
	assert.Nil(t, ValidateCreateRequest(&req))

	req.ReservationTime = "7pm"
	verr := ValidateCreateRequest(&req)
	require.NotNil(t, verr)
	assert.Equal(t, "Invalid time format (HH:MM)", verr.Fields["reservation_time"])
}

func TestValidateCreateRequestCollectsAllViolations(t *testing.T) {
	req := CreateReservationRequest{
		Name:            "J",
		Phone:           "abc",
		Email:           "not-an-email",
		ReservationDate: "01/01/2099",
		ReservationTime: "7pm",
		NumberOfGuests:  0,
		ReservationType: "walkin",
		SpecialRequests: strings.Repeat("x", 501),
	}

	verr := ValidateCreateRequest(&req)
	require.NotNil(t, verr)

	for _, field := range []string{
		"name", "phone", "email", "reservation_date",
		"reservation_time", "number_of_guests", "reservation_type", "special_requests",
	} {
		assert.Contains(t, verr.Fields, field)
	}
}

func TestValidateCreateRequestNameBounds(t *testing.T) {
	req := validRequest()

	req.Name = "J"
	verr := ValidateCreateRequest(&req)
	require.NotNil(t, verr)
	assert.Equal(t, "Name must be at least 2 characters", verr.Fields["name"])

	req.Name = strings.Repeat("a", 101)
	verr = ValidateCreateRequest(&req)
	require.NotNil(t, verr)
	assert.Equal(t, "Name must be at most 100 characters", verr.Fields["name"])
}

func TestValidateCreateRequestNegativeGuests(t *testing.T) {
	req := validRequest()
	req.NumberOfGuests = -2

	verr := ValidateCreateRequest(&req)
	require.NotNil(t, verr)
	assert.Equal(t, "Number of guests must be positive", verr.Fields["number_of_guests"])
}
