package reservations

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	service := NewService(newTestRepository(db), testDefaultCapacity)
	ctrl := NewController(service)

	engine := gin.New()
	SetupReservationRoutes(engine.Group("/api/v1"), ctrl)
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

func validPayload() map[string]any {
	return map[string]any{
		"name":             "Jordan Blake",
		"phone":            "0123456789",
		"email":            "jordan@example.com",
		"reservation_date": "2099-01-01",
		"reservation_time": "19:00",
		"number_of_guests": 4,
		"reservation_type": "regular",
	}
}

func createReservation(t *testing.T, engine *gin.Engine, payload map[string]any) Reservation {
	t.Helper()
	w := performJSON(engine, http.MethodPost, "/api/v1/reservations", payload)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Reservation
}

func TestCreateReservationEndpoint(t *testing.T) {
	engine, _ := setupTestRouter(t)

	w := performJSON(engine, http.MethodPost, "/api/v1/reservations", validPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp CreateReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Reservation created successfully", resp.Message)
	assert.NotEqual(t, uuid.Nil, resp.Reservation.ID)
	assert.Equal(t, "Jordan Blake", resp.Reservation.Name)
	assert.Equal(t, StatusPending, resp.Reservation.Status)
}

func TestCreateReservationValidationDetails(t *testing.T) {
	engine, _ := setupTestRouter(t)

	payload := validPayload()
	payload["phone"] = "abc"
	w := performJSON(engine, http.MethodPost, "/api/v1/reservations", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error   string            `json:"error"`
		Details map[string]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed", resp.Error)
	assert.Equal(t, "Invalid phone number format", resp.Details["phone"])
	assert.Len(t, resp.Details, 1)
}

func TestCreateReservationExclusivityConflict(t *testing.T) {
	engine, _ := setupTestRouter(t)

	createReservation(t, engine, validPayload())

	exclusive := validPayload()
	exclusive["reservation_type"] = "private"
	exclusive["number_of_guests"] = 20
	w := performJSON(engine, http.MethodPost, "/api/v1/reservations", exclusive)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Cannot book private/group event on a date with existing reservations", resp["error"])
}

func TestCreateReservationInvalidBody(t *testing.T) {
	engine, _ := setupTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetReservationEndpoint(t *testing.T) {
	engine, _ := setupTestRouter(t)

	created := createReservation(t, engine, validPayload())

	w := performJSON(engine, http.MethodGet, "/api/v1/reservations/"+created.ID.String(), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)
	assert.Equal(t, "0123456789", fetched.Phone)

	w = performJSON(engine, http.MethodGet, "/api/v1/reservations/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = performJSON(engine, http.MethodGet, "/api/v1/reservations/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelReservationEndpoint(t *testing.T) {
	engine, _ := setupTestRouter(t)

	created := createReservation(t, engine, validPayload())

	w := performJSON(engine, http.MethodPut, "/api/v1/reservations/"+created.ID.String()+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Reservation cancelled successfully", resp["message"])

	// Repeating the cancellation reports not found
	w = performJSON(engine, http.MethodPut, "/api/v1/reservations/"+created.ID.String()+"/cancel", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Reservation not found or already cancelled", resp["error"])
}

func TestListReservationsEndpoint(t *testing.T) {
	engine, _ := setupTestRouter(t)

	first := validPayload()
	second := validPayload()
	second["reservation_date"] = "2099-02-01"
	createReservation(t, engine, first)
	created := createReservation(t, engine, second)

	w := performJSON(engine, http.MethodGet, "/api/v1/admin/reservations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp ReservationListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Reservations, 2)
	assert.Equal(t, created.ID, resp.Reservations[0].ID)

	w = performJSON(engine, http.MethodGet, "/api/v1/admin/reservations?date=2099-02-01&status=pending", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
}

func TestUpdateReservationStatusEndpoint(t *testing.T) {
	engine, _ := setupTestRouter(t)

	created := createReservation(t, engine, validPayload())
	path := fmt.Sprintf("/api/v1/admin/reservations/%s/status", created.ID)

	w := performJSON(engine, http.MethodPut, path, map[string]string{"status": "confirmed"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated Reservation
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, StatusConfirmed, updated.Status)

	// Unknown status value
	w = performJSON(engine, http.MethodPut, path, map[string]string{"status": "archived"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Transition not allowed by the lifecycle
	w = performJSON(engine, http.MethodPut, path, map[string]string{"status": "pending"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown reservation
	w = performJSON(engine, http.MethodPut, fmt.Sprintf("/api/v1/admin/reservations/%s/status", uuid.New()), map[string]string{"status": "confirmed"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
