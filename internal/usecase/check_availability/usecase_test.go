package check_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	roomRepo "github.com/larespalmas/hotel-booking-service/internal/infra/storage/room"
)

// --- Фейки зависимостей ---

type fakeRoomRepo struct {
	room *domain.Room
	err  error
}

func (f *fakeRoomRepo) GetByID(_ context.Context, _ int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.room, nil
}

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByRoomWithFilter(_ context.Context, _ domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeSettingsRepo struct {
	maxAdvanceDays int
	err            error
}

func (f *fakeSettingsRepo) GetIntOrDefault(_ context.Context, _ string, def int) (int, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.maxAdvanceDays == 0 {
		return def, nil
	}
	return f.maxAdvanceDays, nil
}

type fixedTimeProvider struct {
	now time.Time
}

func (f *fixedTimeProvider) Now() time.Time {
	return f.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// --- Хелперы ---

var testNow = time.Date(2026, 6, 1, 10, 30, 0, 0, time.UTC)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 0, 0, 0, 0, time.UTC)
}

func liveBooking(checkIn, checkOut time.Time) *domain.Booking {
	return &domain.Booking{
		Status:       domain.StatusConfirmed,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
	}
}

func newTestUseCase(rooms *fakeRoomRepo, bookings *fakeBookingRepo, settings *fakeSettingsRepo) *UseCase {
	uc := NewUseCase(rooms, bookings, settings, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

func standardRoom(totalRooms int) *domain.Room {
	return &domain.Room{
		ID:            1,
		Name:          "Deluxe Double",
		Slug:          "deluxe-double",
		PricePerNight: 120,
		MaxGuests:     2,
		TotalRooms:    totalRooms,
		Active:        true,
	}
}

// --- Тесты ---

func TestExecute_AvailableWhenNoBookings(t *testing.T) {
	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(3)},
		&fakeBookingRepo{},
		&fakeSettingsRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 0, resp.ConflictingCount)
	assert.Equal(t, 3, resp.RemainingInventory)
	assert.Equal(t, 3, resp.Nights)
	assert.Equal(t, 360.0, resp.TotalPrice)
}

func TestExecute_UnavailableWhenAllUnitsTaken(t *testing.T) {
	bookings := []*domain.Booking{
		liveBooking(day(2026, 6, 9), day(2026, 6, 12)),
		liveBooking(day(2026, 6, 10), day(2026, 6, 14)),
		liveBooking(day(2026, 6, 11), day(2026, 6, 13)),
	}

	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(3)},
		&fakeBookingRepo{bookings: bookings},
		&fakeSettingsRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, 3, resp.ConflictingCount)
	assert.Equal(t, 0, resp.RemainingInventory)
}

// Частичная занятость: часть инвентаря занята, номер остаётся доступным
func TestExecute_PartiallyBookedStillAvailable(t *testing.T) {
	bookings := []*domain.Booking{
		liveBooking(day(2026, 6, 9), day(2026, 6, 12)),
		liveBooking(day(2026, 6, 11), day(2026, 6, 14)),
	}

	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(3)},
		&fakeBookingRepo{bookings: bookings},
		&fakeSettingsRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 2, resp.ConflictingCount)
	assert.Equal(t, 1, resp.RemainingInventory)
}

// Пересечений может оказаться больше физического инвентаря (овербукинг
// руками администратора) - остаток не должен уходить в минус
func TestExecute_RemainingClampedToZero(t *testing.T) {
	bookings := []*domain.Booking{
		liveBooking(day(2026, 6, 10), day(2026, 6, 13)),
		liveBooking(day(2026, 6, 10), day(2026, 6, 13)),
		liveBooking(day(2026, 6, 10), day(2026, 6, 13)),
		liveBooking(day(2026, 6, 10), day(2026, 6, 13)),
		liveBooking(day(2026, 6, 10), day(2026, 6, 13)),
	}

	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(3)},
		&fakeBookingRepo{bookings: bookings},
		&fakeSettingsRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, 5, resp.ConflictingCount)
	assert.Equal(t, 0, resp.RemainingInventory)
}

// Выезд и заезд в один день не конфликтуют: интервалы полуоткрытые
func TestExecute_BackToBackBookingsDoNotConflict(t *testing.T) {
	bookings := []*domain.Booking{
		liveBooking(day(2026, 6, 7), day(2026, 6, 10)),  // выезд в день заезда
		liveBooking(day(2026, 6, 13), day(2026, 6, 16)), // заезд в день выезда
	}

	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(1)},
		&fakeBookingRepo{bookings: bookings},
		&fakeSettingsRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 0, resp.ConflictingCount)
	assert.Equal(t, 1, resp.RemainingInventory)
}

// Отменённые и выехавшие бронирования инвентарь не держат
func TestExecute_ReleasedBookingsIgnored(t *testing.T) {
	cancelled := liveBooking(day(2026, 6, 10), day(2026, 6, 13))
	cancelled.Status = domain.StatusCancelled
	checkedOut := liveBooking(day(2026, 6, 10), day(2026, 6, 13))
	checkedOut.Status = domain.StatusCheckedOut

	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(1)},
		&fakeBookingRepo{bookings: []*domain.Booking{cancelled, checkedOut}},
		&fakeSettingsRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
	assert.Equal(t, 0, resp.ConflictingCount)
}

func TestExecute_RoomWithZeroInventoryNeverAvailable(t *testing.T) {
	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(0)},
		&fakeBookingRepo{},
		&fakeSettingsRepo{},
	)

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.NoError(t, err)
	assert.False(t, resp.Available)
	assert.Equal(t, 0, resp.RemainingInventory)
}

func TestExecute_DatePolicy(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		wantErr  error
	}{
		{
			name:     "заезд в прошлом",
			checkIn:  day(2026, 5, 20),
			checkOut: day(2026, 5, 25),
			wantErr:  ErrPastDate,
		},
		{
			name:     "заезд сегодня разрешён",
			checkIn:  day(2026, 6, 1),
			checkOut: day(2026, 6, 3),
			wantErr:  nil,
		},
		{
			name:     "выезд в день заезда",
			checkIn:  day(2026, 6, 10),
			checkOut: day(2026, 6, 10),
			wantErr:  ErrInvalidRange,
		},
		{
			name:     "выезд раньше заезда",
			checkIn:  day(2026, 6, 10),
			checkOut: day(2026, 6, 8),
			wantErr:  ErrInvalidRange,
		},
		{
			name:     "заезд за пределами окна",
			checkIn:  day(2027, 6, 10),
			checkOut: day(2027, 6, 13),
			wantErr:  ErrAdvanceWindowExceeded,
		},
		{
			name:     "заезд на границе окна разрешён",
			checkIn:  day(2027, 6, 1), // ровно 365 дней от testNow
			checkOut: day(2027, 6, 3),
			wantErr:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := newTestUseCase(
				&fakeRoomRepo{room: standardRoom(3)},
				&fakeBookingRepo{},
				&fakeSettingsRepo{},
			)

			_, err := uc.Execute(context.Background(), &Request{
				RoomID:   1,
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
			})

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

// Сервер в зоне западнее UTC: даты заезда приходят как UTC-полночь,
// и заезд "сегодня" не должен отклоняться как прошлое из-за разницы зон
func TestExecute_SameDayCheckInWestOfUTC(t *testing.T) {
	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(3)},
		&fakeBookingRepo{},
		&fakeSettingsRepo{},
	)
	uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2026, 6, 10, 8, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
	}

	resp, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 12),
	})

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

// Прошлое проверяется раньше пустого интервала: запрос целиком в прошлом
// с выездом раньше заезда отклоняется как прошлое
func TestExecute_PastDateCheckedBeforeRange(t *testing.T) {
	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(3)},
		&fakeBookingRepo{},
		&fakeSettingsRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 5, 20),
		CheckOut: day(2026, 5, 18),
	})

	require.ErrorIs(t, err, ErrPastDate)
}

func TestExecute_AdvanceWindowFromSettings(t *testing.T) {
	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(3)},
		&fakeBookingRepo{},
		&fakeSettingsRepo{maxAdvanceDays: 30},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 7, 15), // 44 дня от testNow
		CheckOut: day(2026, 7, 18),
	})

	require.ErrorIs(t, err, ErrAdvanceWindowExceeded)
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(
		&fakeRoomRepo{err: roomRepo.ErrRoomNotFound},
		&fakeBookingRepo{},
		&fakeSettingsRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   42,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(&fakeRoomRepo{room: standardRoom(3)}, &fakeBookingRepo{}, &fakeSettingsRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   0,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_StorageErrorWrappedAsInternal(t *testing.T) {
	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(3)},
		&fakeBookingRepo{err: errors.New("connection refused")},
		&fakeSettingsRepo{},
	)

	_, err := uc.Execute(context.Background(), &Request{
		RoomID:   1,
		CheckIn:  day(2026, 6, 10),
		CheckOut: day(2026, 6, 13),
	})

	require.ErrorIs(t, err, ErrInternal)
}

// Проверка доступности не имеет побочных эффектов: повторный запрос
// даёт тот же ответ
func TestExecute_Idempotent(t *testing.T) {
	uc := newTestUseCase(
		&fakeRoomRepo{room: standardRoom(2)},
		&fakeBookingRepo{bookings: []*domain.Booking{
			liveBooking(day(2026, 6, 10), day(2026, 6, 13)),
		}},
		&fakeSettingsRepo{},
	)

	req := &Request{RoomID: 1, CheckIn: day(2026, 6, 10), CheckOut: day(2026, 6, 13)}

	first, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
