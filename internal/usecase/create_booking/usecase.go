package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	roomRepo "github.com/larespalmas/hotel-booking-service/internal/infra/storage/room"
	"github.com/larespalmas/hotel-booking-service/internal/integrations/mailerservice"
	"github.com/larespalmas/hotel-booking-service/pkg/txmanager"
)

// UseCase use case создания бронирования
// Проверка доступности и вставка выполняются в одной сериализуемой
// транзакции с блокировкой строки номера: проверенная доступность из
// предыдущего запроса никогда не принимается на веру при записи
type UseCase struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	settingsRepo SettingsRepository
	mailerClient MailerClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	settingsRepo SettingsRepository,
	mailerClient MailerClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		settingsRepo: settingsRepo,
		mailerClient: mailerClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: room=%d, guest=%s, check_in=%s, check_out=%s, guests=%d",
		req.RoomID, req.GuestEmail, req.CheckIn.Format(domain.DateFormat),
		req.CheckOut.Format(domain.DateFormat), req.NumberOfGuests)

	// 1. Валидация формы: обязательные поля и грамматика email
	// До хранилища запрос с некорректной формой не доходит
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()
	today := domain.TruncateToDay(now)

	rng := domain.DateRange{
		CheckIn:  domain.TruncateToDay(req.CheckIn),
		CheckOut: domain.TruncateToDay(req.CheckOut),
	}

	var result *domain.Booking
	var room *domain.Room

	// 3. Проверка доступности и вставка в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Окно предварительного бронирования и стартовый статус из настроек
		maxAdvanceDays, err := uc.settingsRepo.GetIntOrDefault(txCtx,
			domain.SettingMaxAdvanceBookingDays, domain.DefaultMaxAdvanceBookingDays)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get advance booking window: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		statusValue, err := uc.settingsRepo.GetStringOrDefault(txCtx,
			domain.SettingDefaultBookingStatus, string(domain.DefaultBookingStatus))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get default booking status: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}

		// 3.2. Датовая политика
		if err := validateDates(rng, now, maxAdvanceDays); err != nil {
			uc.logger.Warn("CreateBooking: date validation failed: %v", err)
			return err
		}

		// 3.3. Блокируем строку номера - конкурирующие бронирования этого
		// типа номера выстраиваются в очередь на время проверки и вставки
		room, err = uc.roomRepo.GetByIDForUpdate(txCtx, req.RoomID)
		if err != nil {
			if errors.Is(err, roomRepo.ErrRoomNotFound) {
				uc.logger.Warn("CreateBooking: room id=%d not found", req.RoomID)
				return ErrRoomNotFound
			}
			uc.logger.Error("CreateBooking: failed to get room id=%d: %v", req.RoomID, err)
			return fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
		}

		// 3.4. Вместимость номера
		if req.NumberOfGuests > room.MaxGuests {
			uc.logger.Warn("CreateBooking: %d guests exceed capacity %d of room id=%d",
				req.NumberOfGuests, room.MaxGuests, room.ID)
			return ErrTooManyGuests
		}

		// 3.5. Повторная проверка доступности ПОД транзакцией - закрывает
		// гонку между проверкой доступности и записью
		filter := domain.RoomBookingsFilter{
			RoomID: req.RoomID,
			From:   &rng.CheckIn,
			To:     &rng.CheckOut,
		}

		bookings, err := uc.bookingRepo.GetByRoomWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		conflicting := countLiveOverlapping(rng, bookings)
		if conflicting >= room.TotalRooms {
			uc.logger.Warn("CreateBooking: room id=%d unavailable, %d/%d units taken",
				room.ID, conflicting, room.TotalRooms)
			return ErrRoomUnavailable
		}

		uc.logger.Info("CreateBooking: room id=%d available, %d/%d units taken",
			room.ID, conflicting, room.TotalRooms)

		// 3.6. Создаем бронирование
		nights := rng.Nights()
		booking := &domain.Booking{
			RoomID:          room.ID,
			GuestName:       req.GuestName,
			GuestEmail:      req.GuestEmail,
			GuestPhone:      req.GuestPhone,
			GuestCountry:    req.GuestCountry,
			GuestAddress:    req.GuestAddress,
			SpecialRequests: req.SpecialRequests,
			NumberOfGuests:  req.NumberOfGuests,
			CheckInDate:     rng.CheckIn,
			CheckOutDate:    rng.CheckOut,
			Status:          initialStatus(statusValue),
			TotalPrice:      room.PriceForGuests(req.NumberOfGuests) * float64(nights),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		// 3.7. Обновляем денормализованный счётчик свободных номеров
		// в той же транзакции - кэш не расходится с источником истины
		if err := uc.roomRepo.RefreshAvailability(txCtx, room.ID, today); err != nil {
			uc.logger.Error("CreateBooking: failed to refresh room availability: %v", err)
			return fmt.Errorf("%w: failed to refresh room availability: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Конфликт сериализации после повтора трактуем как проигрыш гонки
		// за последний номер
		if txmanager.IsSerializationFailure(err) {
			uc.logger.Warn("CreateBooking: serialization conflict for room id=%d: %v", req.RoomID, err)
			return nil, ErrRoomUnavailable
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d, status=%s, total=%.2f",
		result.ID, result.Status, result.TotalPrice)

	// 4. Письмо-подтверждение с graceful degradation: бронирование уже
	// зафиксировано, недоступность mailer-а его не откатывает
	uc.sendConfirmation(ctx, result, room)

	return &Response{
		ID:              result.ID,
		RoomID:          result.RoomID,
		GuestName:       result.GuestName,
		GuestEmail:      result.GuestEmail,
		GuestPhone:      result.GuestPhone,
		GuestCountry:    result.GuestCountry,
		GuestAddress:    result.GuestAddress,
		SpecialRequests: result.SpecialRequests,
		NumberOfGuests:  result.NumberOfGuests,
		CheckIn:         result.CheckInDate,
		CheckOut:        result.CheckOutDate,
		Status:          string(result.Status),
		Nights:          result.Nights(),
		TotalPrice:      result.TotalPrice,
		Currency:        uc.currency(ctx),
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// sendConfirmation отправляет письмо-подтверждение; ошибки не влияют на результат
func (uc *UseCase) sendConfirmation(ctx context.Context, booking *domain.Booking, room *domain.Room) {
	if uc.mailerClient == nil {
		return
	}

	msg := &mailerservice.BookingConfirmation{
		To:           booking.GuestEmail,
		GuestName:    booking.GuestName,
		RoomName:     room.Name,
		CheckInDate:  booking.CheckInDate.Format(domain.DateFormat),
		CheckOutDate: booking.CheckOutDate.Format(domain.DateFormat),
		Nights:       booking.Nights(),
		TotalPrice:   booking.TotalPrice,
		Currency:     uc.currency(ctx),
		BookingID:    booking.ID,
	}

	if err := uc.mailerClient.SendBookingConfirmationWithGracefulDegradation(ctx, msg); err != nil {
		uc.logger.Warn("CreateBooking: confirmation email not sent for booking id=%d: %v", booking.ID, err)
	}
}

// currency возвращает валюту отеля из настроек
func (uc *UseCase) currency(ctx context.Context) string {
	currency, err := uc.settingsRepo.GetStringOrDefault(ctx, domain.SettingCurrency, domain.DefaultCurrency)
	if err != nil {
		return domain.DefaultCurrency
	}
	return currency
}
