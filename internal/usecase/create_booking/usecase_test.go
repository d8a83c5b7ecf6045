package create_booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	roomRepo "github.com/larespalmas/hotel-booking-service/internal/infra/storage/room"
	"github.com/larespalmas/hotel-booking-service/internal/integrations/mailerservice"
	"github.com/larespalmas/hotel-booking-service/pkg/ptr"
)

// --- Фейки зависимостей ---

// fakeBookingStore in-memory хранилище бронирований
// Используется и как BookingRepository: Create и GetByRoomWithFilter
// работают над общим срезом, что позволяет гонять конкурентные сценарии
type fakeBookingStore struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	nextID   int64

	createCalls int
	filterCalls int
}

func (f *fakeBookingStore) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.createCalls++
	f.nextID++
	created := *b
	created.ID = f.nextID
	created.CreatedAt = time.Now()
	created.UpdatedAt = created.CreatedAt
	f.bookings = append(f.bookings, &created)
	return &created, nil
}

func (f *fakeBookingStore) GetByRoomWithFilter(_ context.Context, filter domain.RoomBookingsFilter) ([]*domain.Booking, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.filterCalls++
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.RoomID != filter.RoomID {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeRoomRepo struct {
	room         *domain.Room
	err          error
	refreshCalls int
}

func (f *fakeRoomRepo) GetByIDForUpdate(_ context.Context, _ int64) (*domain.Room, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.room, nil
}

func (f *fakeRoomRepo) RefreshAvailability(_ context.Context, _ int64, _ time.Time) error {
	f.refreshCalls++
	return nil
}

type fakeSettingsRepo struct {
	maxAdvanceDays int
	defaultStatus  string
}

func (f *fakeSettingsRepo) GetIntOrDefault(_ context.Context, _ string, def int) (int, error) {
	if f.maxAdvanceDays == 0 {
		return def, nil
	}
	return f.maxAdvanceDays, nil
}

func (f *fakeSettingsRepo) GetStringOrDefault(_ context.Context, _, def string) (string, error) {
	if f.defaultStatus == "" {
		return def, nil
	}
	return f.defaultStatus, nil
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []*mailerservice.BookingConfirmation
	fail bool
}

func (f *fakeMailer) SendBookingConfirmationWithGracefulDegradation(_ context.Context, msg *mailerservice.BookingConfirmation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return mailerservice.ErrServiceDegraded
	}
	f.sent = append(f.sent, msg)
	return nil
}

// mutexTxManager сериализует транзакции глобальным мьютексом - модель
// сериализуемой изоляции для конкурентных тестов
type mutexTxManager struct {
	mu sync.Mutex
}

func (m *mutexTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
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

func standardRoom(totalRooms int) *domain.Room {
	return &domain.Room{
		ID:            1,
		Name:          "Deluxe Double",
		Slug:          "deluxe-double",
		PricePerNight: 120,
		PriceDouble:   ptr.Ptr(140.0),
		MaxGuests:     2,
		TotalRooms:    totalRooms,
		Active:        true,
	}
}

func validRequest() *Request {
	return &Request{
		RoomID:         1,
		GuestName:      "Anna Schmidt",
		GuestEmail:     "anna.schmidt@example.com",
		GuestPhone:     "+49 170 1234567",
		NumberOfGuests: 2,
		CheckIn:        day(2026, 6, 10),
		CheckOut:       day(2026, 6, 13),
	}
}

func newTestUseCase(store *fakeBookingStore, rooms *fakeRoomRepo, settings *fakeSettingsRepo, mailer MailerClient) *UseCase {
	uc := NewUseCase(store, rooms, settings, mailer, &mutexTxManager{}, nopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: testNow}
	return uc
}

// --- Тесты ---

func TestExecute_CreatesBooking(t *testing.T) {
	store := &fakeBookingStore{}
	rooms := &fakeRoomRepo{room: standardRoom(3)}
	mailer := &fakeMailer{}

	uc := newTestUseCase(store, rooms, &fakeSettingsRepo{}, mailer)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	assert.Equal(t, 3, resp.Nights)
	// 2 гостя - берётся цена двухместного размещения
	assert.Equal(t, 420.0, resp.TotalPrice)
	assert.Equal(t, "EUR", resp.Currency)

	// Счётчик свободных номеров пересчитан в той же транзакции
	assert.Equal(t, 1, rooms.refreshCalls)

	// Письмо-подтверждение ушло
	require.Len(t, mailer.sent, 1)
	assert.Equal(t, "anna.schmidt@example.com", mailer.sent[0].To)
	assert.Equal(t, "Deluxe Double", mailer.sent[0].RoomName)
}

func TestExecute_PendingStatusFromSettings(t *testing.T) {
	store := &fakeBookingStore{}
	uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(3)},
		&fakeSettingsRepo{defaultStatus: "pending"}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusPending), resp.Status)
}

func TestExecute_GarbageStatusSettingFallsBackToDefault(t *testing.T) {
	store := &fakeBookingStore{}
	uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(3)},
		&fakeSettingsRepo{defaultStatus: "checked_out"}, nil)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, string(domain.DefaultBookingStatus), resp.Status)
}

// Валидация формы выполняется до любых обращений к хранилищу
func TestExecute_ValidationRejectsBeforeStorage(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		field   string
	}{
		{
			name:   "без email",
			mutate: func(req *Request) { req.GuestEmail = "" },
			field:  "guest_email",
		},
		{
			name:   "кривой email",
			mutate: func(req *Request) { req.GuestEmail = "not-an-email" },
			field:  "guest_email",
		},
		{
			name:   "без имени",
			mutate: func(req *Request) { req.GuestName = "" },
			field:  "guest_name",
		},
		{
			name:   "без телефона",
			mutate: func(req *Request) { req.GuestPhone = "" },
			field:  "guest_phone",
		},
		{
			name:   "ноль гостей",
			mutate: func(req *Request) { req.NumberOfGuests = 0 },
			field:  "number_of_guests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeBookingStore{}
			rooms := &fakeRoomRepo{room: standardRoom(3)}
			uc := newTestUseCase(store, rooms, &fakeSettingsRepo{}, nil)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, ErrValidation)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Len(t, validationErr.Fields, 1)
			assert.Equal(t, tt.field, validationErr.Fields[0].Field)

			// До хранилища запрос не дошёл
			assert.Zero(t, store.createCalls)
			assert.Zero(t, store.filterCalls)
			assert.Zero(t, rooms.refreshCalls)
		})
	}
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
			name:     "выезд в день заезда",
			checkIn:  day(2026, 6, 10),
			checkOut: day(2026, 6, 10),
			wantErr:  ErrInvalidRange,
		},
		{
			name:     "заезд за пределами окна",
			checkIn:  day(2027, 7, 10),
			checkOut: day(2027, 7, 13),
			wantErr:  ErrAdvanceWindowExceeded,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &fakeBookingStore{}
			uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(3)}, &fakeSettingsRepo{}, nil)

			req := validRequest()
			req.CheckIn = tt.checkIn
			req.CheckOut = tt.checkOut

			_, err := uc.Execute(context.Background(), req)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, store.createCalls)
		})
	}
}

func TestExecute_RoomNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingStore{}, &fakeRoomRepo{err: roomRepo.ErrRoomNotFound},
		&fakeSettingsRepo{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrRoomNotFound)
}

func TestExecute_TooManyGuests(t *testing.T) {
	store := &fakeBookingStore{}
	uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(3)}, &fakeSettingsRepo{}, nil)

	req := validRequest()
	req.NumberOfGuests = 5

	_, err := uc.Execute(context.Background(), req)

	require.ErrorIs(t, err, ErrTooManyGuests)
	assert.Zero(t, store.createCalls)
}

func TestExecute_RoomUnavailable(t *testing.T) {
	store := &fakeBookingStore{}
	store.bookings = []*domain.Booking{
		{RoomID: 1, Status: domain.StatusConfirmed, CheckInDate: day(2026, 6, 9), CheckOutDate: day(2026, 6, 12)},
	}

	uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(1)}, &fakeSettingsRepo{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Zero(t, store.createCalls)
}

// Бронирование фиксируется и при недоступном mailer-е: письмо
// деградирует, запись не откатывается
func TestExecute_MailerDegradationDoesNotFailBooking(t *testing.T) {
	store := &fakeBookingStore{}
	mailer := &fakeMailer{fail: true}

	uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(3)}, &fakeSettingsRepo{}, mailer)

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, 1, store.createCalls)
	assert.NotZero(t, resp.ID)
}

func TestExecute_NilMailerSkipsConfirmation(t *testing.T) {
	store := &fakeBookingStore{}
	uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(3)}, &fakeSettingsRepo{}, nil)

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

// Сервер в зоне западнее UTC: заезд "сегодня" проходит датовую политику
func TestExecute_SameDayCheckInWestOfUTC(t *testing.T) {
	store := &fakeBookingStore{}
	uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(3)}, &fakeSettingsRepo{}, nil)
	uc.timeProvider = &fixedTimeProvider{
		now: time.Date(2026, 6, 10, 8, 0, 0, 0, time.FixedZone("UTC-5", -5*3600)),
	}

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.NotZero(t, resp.ID)
	assert.Equal(t, 1, store.createCalls)
}

// Инвентарь выбирается последовательно: при totalRooms=3 три бронирования
// на пересекающиеся даты проходят, четвёртое получает отказ
func TestExecute_SequentialBookingsExhaustInventory(t *testing.T) {
	store := &fakeBookingStore{}
	uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(3)}, &fakeSettingsRepo{}, nil)

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), validRequest())

	require.ErrorIs(t, err, ErrRoomUnavailable)
	assert.Equal(t, 3, store.createCalls)
	assert.Len(t, store.bookings, 3)
}

// Гонка за последний номер: при totalRooms=1 из N конкурентных запросов
// на пересекающиеся даты выигрывает ровно один
func TestExecute_ConcurrentBookingsExactlyOneWins(t *testing.T) {
	const attempts = 8

	store := &fakeBookingStore{}
	rooms := &fakeRoomRepo{room: standardRoom(1)}
	uc := newTestUseCase(store, rooms, &fakeSettingsRepo{}, nil)

	var wg sync.WaitGroup
	errs := make([]error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = uc.Execute(context.Background(), validRequest())
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			require.ErrorIs(t, err, ErrRoomUnavailable)
		}
	}

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, store.createCalls)
	assert.Len(t, store.bookings, 1)
}

// Back-to-back бронирования конкурентно не конфликтуют
func TestExecute_ConcurrentBackToBackBothWin(t *testing.T) {
	store := &fakeBookingStore{}
	uc := newTestUseCase(store, &fakeRoomRepo{room: standardRoom(1)}, &fakeSettingsRepo{}, nil)

	first := validRequest()
	first.CheckIn = day(2026, 6, 10)
	first.CheckOut = day(2026, 6, 13)

	second := validRequest()
	second.CheckIn = day(2026, 6, 13)
	second.CheckOut = day(2026, 6, 16)

	var wg sync.WaitGroup
	var err1, err2 error

	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err1 = uc.Execute(context.Background(), first)
	}()
	go func() {
		defer wg.Done()
		_, err2 = uc.Execute(context.Background(), second)
	}()
	wg.Wait()

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Len(t, store.bookings, 2)
}
