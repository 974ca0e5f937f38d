package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trimly/models"
	"trimly/services/schedule"
)

type stubEngine struct {
	day   *models.DayAvailability
	dates []string
	err   error
}

func (e *stubEngine) ComputeDaySlots(ctx context.Context, date, barberID, branchID string) (*models.DayAvailability, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.day, nil
}

func (e *stubEngine) ResolveDates(ctx context.Context, barberID, branchID string) ([]string, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.dates, nil
}

func newTestRouter(engine *stubEngine) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/api/availability", GetAvailability(engine))
	r.GET("/api/available-dates", GetAvailableDates(engine))
	return r
}

func TestGetAvailability(t *testing.T) {
	engine := &stubEngine{day: &models.DayAvailability{
		Date:     "2026-09-12",
		BarberID: "b-1",
		BranchID: "br-1",
		TimeSlots: []models.TimeSlot{
			{Time: "10:00", Available: true},
			{Time: "10:30", Available: false},
		},
	}}
	router := newTestRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=2026-09-12&barberId=b-1&branchId=br-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool                   `json:"success"`
		Data    models.DayAvailability `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "2026-09-12", body.Data.Date)
	require.Len(t, body.Data.TimeSlots, 2)
	assert.True(t, body.Data.TimeSlots[0].Available)
	assert.False(t, body.Data.TimeSlots[1].Available)
}

func TestGetAvailabilityMissingDate(t *testing.T) {
	router := newTestRouter(&stubEngine{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?barberId=b-1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailabilityValidationError(t *testing.T) {
	engine := &stubEngine{err: schedule.NewValidationError("date", "expected YYYY-MM-DD")}
	router := newTestRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/availability?date=garbage", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetAvailableDates(t *testing.T) {
	engine := &stubEngine{dates: []string{"2026-09-12", "2026-09-14"}}
	router := newTestRouter(engine)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/available-dates?barberId=b-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Success bool `json:"success"`
		Data    struct {
			BarberID       string   `json:"barberId"`
			AvailableDates []string `json:"availableDates"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "b-1", body.Data.BarberID)
	assert.Equal(t, []string{"2026-09-12", "2026-09-14"}, body.Data.AvailableDates)
}

func TestGetAvailableDatesEmptyIsArray(t *testing.T) {
	router := newTestRouter(&stubEngine{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/available-dates?barberId=b-1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"availableDates":[]`, "empty result must be a JSON array, not null")
}

func TestGetAvailableDatesMissingBarber(t *testing.T) {
	router := newTestRouter(&stubEngine{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/available-dates", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
