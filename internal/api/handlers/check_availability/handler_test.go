package check_availability

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	checkAvailability "github.com/larespalmas/hotel-booking-service/internal/usecase/check_availability"
)

type fakeUseCase struct {
	resp *checkAvailability.Response
	err  error

	gotReq *checkAvailability.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *checkAvailability.Request) (*checkAvailability.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestRouter(uc *fakeUseCase) *mux.Router {
	h := NewHandler(uc, nopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/rooms/{roomId:[0-9]+}/availability", h.Handle).Methods(http.MethodGet)
	return r
}

func TestHandle_Available(t *testing.T) {
	uc := &fakeUseCase{resp: &checkAvailability.Response{
		Available:          true,
		Room:               &domain.Room{ID: 1, Name: "Deluxe Double"},
		RemainingInventory: 2,
		Nights:             3,
		TotalPrice:         360,
	}}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/rooms/1/availability?checkIn=2026-06-10&checkOut=2026-06-13", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
	assert.Equal(t, int64(1), resp.RoomID)
	assert.Equal(t, "Deluxe Double", resp.RoomName)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 360.0, resp.TotalPrice)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.RoomID)
}

func TestHandle_MissingDatesRejected(t *testing.T) {
	uc := &fakeUseCase{}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/rooms/1/availability", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.gotReq)
}

func TestHandle_MalformedDateRejected(t *testing.T) {
	uc := &fakeUseCase{}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/rooms/1/availability?checkIn=10.06.2026&checkOut=2026-06-13", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_RoomNotFound(t *testing.T) {
	uc := &fakeUseCase{err: checkAvailability.ErrRoomNotFound}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/rooms/42/availability?checkIn=2026-06-10&checkOut=2026-06-13", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

// Нарушение датовой политики - не ошибка клиента: 200 с available=false
func TestHandle_PolicyViolationsRespondOKUnavailable(t *testing.T) {
	tests := []struct {
		name  string
		ucErr error
	}{
		{name: "прошлое", ucErr: checkAvailability.ErrPastDate},
		{name: "пустой интервал", ucErr: checkAvailability.ErrInvalidRange},
		{name: "за окном", ucErr: checkAvailability.ErrAdvanceWindowExceeded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeUseCase{err: tt.ucErr}

			req := httptest.NewRequest(http.MethodGet,
				"/api/v1/rooms/1/availability?checkIn=2026-06-10&checkOut=2026-06-13", nil)
			rec := httptest.NewRecorder()

			newTestRouter(uc).ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)

			var resp AvailabilityResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Available)
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{err: checkAvailability.ErrInternal}

	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/rooms/1/availability?checkIn=2026-06-10&checkOut=2026-06-13", nil)
	rec := httptest.NewRecorder()

	newTestRouter(uc).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
