package reservations

import (
	"errors"
	"net/http"

	"ravenshade/internal/shared/utils/response"
	"ravenshade/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Controller interface {
	CreateReservation(c *gin.Context)
	GetReservation(c *gin.Context)
	CancelReservation(c *gin.Context)
	ListReservations(c *gin.Context)
	UpdateReservationStatus(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CreateReservation(c *gin.Context) {
	var req CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := ctrl.service.CreateReservation(c.Request.Context(), req)
	if err != nil {
		ctrl.respondCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, CreateReservationResponse{
		Message:     "Reservation created successfully",
		Reservation: *res,
	})
}

func (ctrl *controller) respondCreateError(c *gin.Context, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.RespondErrorDetails(c, http.StatusBadRequest, "Validation failed", verr.Fields)
	case errors.Is(err, ErrDateClosed):
		response.RespondError(c, http.StatusBadRequest, "This date is not available for reservations")
	case errors.Is(err, ErrDateExclusivelyBooked):
		response.RespondError(c, http.StatusBadRequest, "This date is already booked for a private or group event")
	case errors.Is(err, ErrExclusivityViolation):
		response.RespondError(c, http.StatusBadRequest, "Cannot book private/group event on a date with existing reservations")
	case errors.Is(err, ErrCapacityExceeded):
		response.RespondError(c, http.StatusBadRequest, "Not enough capacity remaining for this date")
	default:
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Failed to create reservation")
	}
}

func (ctrl *controller) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	res, err := ctrl.service.GetReservation(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "Reservation not found")
			return
		}
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Failed to get reservation")
		return
	}

	c.JSON(http.StatusOK, res)
}

func (ctrl *controller) CancelReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	if err := ctrl.service.CancelReservation(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "Reservation not found or already cancelled")
			return
		}
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Failed to cancel reservation")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reservation cancelled successfully"})
}

func (ctrl *controller) ListReservations(c *gin.Context) {
	var query ReservationListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	results, err := ctrl.service.ListReservations(c.Request.Context(), query)
	if err != nil {
		logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
		response.RespondError(c, http.StatusInternalServerError, "Failed to get reservations")
		return
	}

	c.JSON(http.StatusOK, ReservationListResponse{
		Reservations: results,
		Count:        len(results),
	})
}

func (ctrl *controller) UpdateReservationStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid reservation ID")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	res, err := ctrl.service.UpdateReservationStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidStatus):
			response.RespondError(c, http.StatusBadRequest, "Invalid status")
		case errors.Is(err, ErrInvalidTransition):
			response.RespondError(c, http.StatusBadRequest, "Invalid status transition")
		case errors.Is(err, ErrNotFound):
			response.RespondError(c, http.StatusNotFound, "Reservation not found")
		default:
			logger.GetDefault().LogHTTPError(c, err, http.StatusInternalServerError)
			response.RespondError(c, http.StatusInternalServerError, "Failed to update reservation status")
		}
		return
	}

	c.JSON(http.StatusOK, res)
}
