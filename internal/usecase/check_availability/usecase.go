package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	roomRepo "github.com/larespalmas/hotel-booking-service/internal/infra/storage/room"
)

// UseCase use case проверки доступности номера на интервал дат
// Чистое чтение без побочных эффектов; итоговое решение принимает
// Booking Writer, повторяя проверку внутри сериализуемой транзакции
type UseCase struct {
	roomRepo     RoomRepository
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	roomRepo RoomRepository,
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		roomRepo:     roomRepo,
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: room=%d, check_in=%s, check_out=%s",
		req.RoomID, req.CheckIn.Format(domain.DateFormat), req.CheckOut.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	rng := domain.DateRange{
		CheckIn:  domain.TruncateToDay(req.CheckIn),
		CheckOut: domain.TruncateToDay(req.CheckOut),
	}

	// 3. Читаем окно предварительного бронирования из настроек
	maxAdvanceDays, err := uc.settingsRepo.GetIntOrDefault(ctx,
		domain.SettingMaxAdvanceBookingDays, domain.DefaultMaxAdvanceBookingDays)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get advance booking window: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Датовая политика: прошлое, пустой интервал, окно бронирования
	if err := validateDates(rng, now, maxAdvanceDays); err != nil {
		uc.logger.Warn("CheckAvailability: date validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем номер (только активный)
	room, err := uc.roomRepo.GetByID(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			uc.logger.Warn("CheckAvailability: room id=%d not found", req.RoomID)
			return nil, ErrRoomNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	// 6. Получаем живые бронирования, пересекающие интервал
	filter := domain.RoomBookingsFilter{
		RoomID: req.RoomID,
		From:   &rng.CheckIn,
		To:     &rng.CheckOut,
	}

	bookings, err := uc.bookingRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Считаем доступность: бронируются целые номера, поэтому
	// доступно, если остаётся хотя бы одна единица инвентаря
	conflicting := countLiveOverlapping(rng, bookings)
	remaining := room.TotalRooms - conflicting
	if remaining < 0 {
		remaining = 0
	}

	nights := rng.Nights()

	uc.logger.Info("CheckAvailability: room=%d, conflicting=%d/%d, remaining=%d",
		req.RoomID, conflicting, room.TotalRooms, remaining)

	return &Response{
		Available:          remaining >= 1,
		Room:               room,
		ConflictingCount:   conflicting,
		RemainingInventory: remaining,
		Nights:             nights,
		TotalPrice:         room.PricePerNight * float64(nights),
	}, nil
}
