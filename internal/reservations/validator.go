package reservations

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern = regexp.MustCompile(`^[0-9]{9,11}$`)
	timePattern  = regexp.MustCompile(`^\d{2}:\d{2}(:\d{2})?$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report violations under the JSON field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	_ = v.RegisterValidation("restime", func(fl validator.FieldLevel) bool {
		return timePattern.MatchString(fl.Field().String())
	})

	return v
}

// ValidateCreateRequest checks the booking payload against the schema
// rules and returns every violation keyed by field name, or nil when the
// payload is valid. Pure check, no state change.
func ValidateCreateRequest(req *CreateReservationRequest) *ValidationError {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			fields[fe.Field()] = violationMessage(fe)
		}
	} else {
		fields["payload"] = "invalid payload"
	}

	return &ValidationError{Fields: fields}
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "name":
		switch fe.Tag() {
		case "min":
			return "Name must be at least 2 characters"
		case "max":
			return "Name must be at most 100 characters"
		}
		return "Name is required"
	case "phone":
		return "Invalid phone number format"
	case "email":
		return "Invalid email"
	case "reservation_date":
		return "Invalid date format (YYYY-MM-DD)"
	case "reservation_time":
		return "Invalid time format (HH:MM)"
	case "number_of_guests":
		return "Number of guests must be positive"
	case "reservation_type":
		return "Reservation type must be one of regular, group or private"
	case "special_requests":
		return "Special requests must be at most 500 characters"
	}
	return "Invalid value"
}
