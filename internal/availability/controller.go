package availability

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"
	"time"

	"ravenshade/internal/shared/utils/response"

	"github.com/gin-gonic/gin"
)

var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

type Controller interface {
	CheckAvailability(c *gin.Context)
	GetTimeSlots(c *gin.Context)
	ListAvailability(c *gin.Context)
	UpsertAvailability(c *gin.Context)
	DeleteAvailability(c *gin.Context)
}

type controller struct {
	service Service
}

func NewController(service Service) Controller {
	return &controller{service: service}
}

func (ctrl *controller) CheckAvailability(c *gin.Context) {
	date := c.Param("date")

	if !dateFormat.MatchString(date) {
		response.RespondError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	selected, err := time.ParseInLocation("2006-01-02", date, time.Local)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if selected.Before(today) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Cannot check availability for past dates",
			"available": false,
		})
		return
	}

	result, err := ctrl.service.GetDateAvailability(c.Request.Context(), date)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "Failed to check availability")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *controller) GetTimeSlots(c *gin.Context) {
	date := c.Param("date")

	if !dateFormat.MatchString(date) {
		response.RespondError(c, http.StatusBadRequest, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	result, err := ctrl.service.GetTimeSlots(c.Request.Context(), date)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "Failed to get time slots")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (ctrl *controller) ListAvailability(c *gin.Context) {
	records, err := ctrl.service.ListAvailability(c.Request.Context())
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "Failed to list availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"availability": records,
		"count":        len(records),
	})
}

func (ctrl *controller) UpsertAvailability(c *gin.Context) {
	var req UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	record, err := ctrl.service.UpsertAvailability(c.Request.Context(), req)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "Failed to save availability")
		return
	}

	c.JSON(http.StatusOK, record)
}

func (ctrl *controller) DeleteAvailability(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.RespondError(c, http.StatusBadRequest, "Invalid availability ID")
		return
	}

	if err := ctrl.service.DeleteAvailability(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.RespondError(c, http.StatusNotFound, "Availability record not found")
			return
		}
		response.RespondError(c, http.StatusInternalServerError, "Failed to delete availability")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Availability record deleted successfully"})
}
