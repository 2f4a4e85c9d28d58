package availability_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ravenshade/internal/availability"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	ctrl := availability.NewController(newTestService(db))

	engine := gin.New()
	availability.SetupAvailabilityRoutes(engine.Group("/api/v1"), ctrl)
	return engine, db
}

func performJSON(engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestCheckAvailabilityEndpoint(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := performJSON(engine, http.MethodGet, "/api/v1/availability/2099-01-01", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result availability.DateAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "2099-01-01", result.Date)
	assert.True(t, result.Available)
	assert.Equal(t, 60, result.AvailableCapacity)
}

func TestCheckAvailabilityRejectsMalformedDate(t *testing.T) {
	engine, _ := setupTestRouter(t)

	for _, date := range []string{"notadate", "2099-1-1", "01-01-2099"} {
		w := performJSON(engine, http.MethodGet, "/api/v1/availability/"+date, nil)
		require.Equal(t, http.StatusBadRequest, w.Code, date)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "Invalid date format. Use YYYY-MM-DD", resp["error"])
	}
}

func TestCheckAvailabilityRejectsPastDate(t *testing.T) {
	engine, _ := setupTestRouter(t)

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	w := performJSON(engine, http.MethodGet, "/api/v1/availability/"+yesterday, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cannot check availability for past dates", resp["error"])
	assert.Equal(t, false, resp["available"])

	// Today itself is still bookable
	today := time.Now().Format("2006-01-02")
	w = performJSON(engine, http.MethodGet, "/api/v1/availability/"+today, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetTimeSlotsEndpoint(t *testing.T) {
	engine, db := setupTestRouter(t)

	require.NoError(t, db.Create(&availability.TimeSlot{TimeSlot: "19:00", MaxReservations: 5, IsActive: true}).Error)

	w := performJSON(engine, http.MethodGet, "/api/v1/availability/2099-01-01/timeslots", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var result availability.TimeSlotsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "2099-01-01", result.Date)
	require.Len(t, result.TimeSlots, 1)
	assert.Equal(t, "19:00", result.TimeSlots[0].Time)
	assert.Equal(t, 0, result.TimeSlots[0].CurrentReservations)

	// Occupancy is date scoped, past-date guard does not apply here
	w = performJSON(engine, http.MethodGet, "/api/v1/availability/notadate/timeslots", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminAvailabilityCRUD(t *testing.T) {
	engine, _ := setupTestRouter(t)

	// Create
	w := performJSON(engine, http.MethodPost, "/api/v1/admin/availability", map[string]any{
		"date":      "2099-01-01",
		"is_closed": true,
		"notes":     "private maintenance",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var record availability.Availability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
	assert.NotZero(t, record.ID)
	assert.True(t, record.IsClosed)

	// List
	w = performJSON(engine, http.MethodGet, "/api/v1/admin/availability", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Availability []availability.Availability `json:"availability"`
		Count        int                         `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Count)

	// Delete
	w = performJSON(engine, http.MethodDelete, fmt.Sprintf("/api/v1/admin/availability/%d", record.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = performJSON(engine, http.MethodDelete, fmt.Sprintf("/api/v1/admin/availability/%d", record.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(engine, http.MethodDelete, "/api/v1/admin/availability/abc", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminUpsertRejectsBadPayload(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := performJSON(engine, http.MethodPost, "/api/v1/admin/availability", map[string]any{
		"date": "January 1st",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
