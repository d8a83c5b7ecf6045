package mailerservice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func confirmation() *BookingConfirmation {
	return &BookingConfirmation{
		To:           "anna.schmidt@example.com",
		GuestName:    "Anna Schmidt",
		RoomName:     "Deluxe Double",
		CheckInDate:  "2026-06-10",
		CheckOutDate: "2026-06-13",
		Nights:       3,
		TotalPrice:   420,
		Currency:     "EUR",
		BookingID:    11,
	}
}

func TestSendBookingConfirmation(t *testing.T) {
	var gotPath string
	var gotPayload BookingConfirmation

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	err := client.SendBookingConfirmation(context.Background(), confirmation())

	require.NoError(t, err)
	assert.Equal(t, "/internal/mail/booking-confirmation", gotPath)
	assert.Equal(t, "anna.schmidt@example.com", gotPayload.To)
	assert.Equal(t, int64(11), gotPayload.BookingID)
}

func TestSendBookingConfirmation_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "mail queue full", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	err := client.SendBookingConfirmation(context.Background(), confirmation())

	require.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGracefulDegradation_WrapsAnyFailure(t *testing.T) {
	// Сервер недоступен - соединение падает
	client := NewClient("http://127.0.0.1:1", 200*time.Millisecond, nopLogger{})

	err := client.SendBookingConfirmationWithGracefulDegradation(context.Background(), confirmation())

	require.ErrorIs(t, err, ErrServiceDegraded)
}

func TestGracefulDegradation_PassesThroughSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, nopLogger{})

	err := client.SendBookingConfirmationWithGracefulDegradation(context.Background(), confirmation())

	require.NoError(t, err)
}
