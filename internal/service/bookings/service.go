package bookings

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	bookingRepo "github.com/larespalmas/hotel-booking-service/internal/infra/storage/booking"
	"github.com/larespalmas/hotel-booking-service/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований: чтение, отмена,
// смена статуса. Создание бронирований живёт в отдельном use case
type Service struct {
	bookingRepo  BookingRepository
	roomRepo     RoomRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый сервис бронирований
func NewService(
	bookingRepo BookingRepository,
	roomRepo RoomRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		roomRepo:     roomRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID возвращает бронирование по ID
// Гость видит только свои бронирования (совпадение email без учёта
// регистра); администратор - любые
func (s *Service) GetByID(ctx context.Context, id int64, requesterEmail string, isAdmin bool) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: booking id=%d, admin=%t", id, isAdmin)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !isAdmin && !s.ownedBy(booking, requesterEmail) {
		s.logger.Warn("GetByID: access to booking id=%d denied for %s", id, requesterEmail)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetRoomBookings возвращает бронирования номера по фильтру (административная операция)
func (s *Service) GetRoomBookings(ctx context.Context, req *models.GetRoomBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetRoomBookings: room id=%d, include_released=%t", req.RoomID, req.IncludeReleased)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetRoomBookings: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if filter.From != nil && filter.To != nil && !filter.From.Before(*filter.To) {
		s.logger.Warn("GetRoomBookings: empty window from=%s to=%s",
			filter.From.Format(domain.DateFormat), filter.To.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByRoomWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetRoomBookings: failed to get bookings for room id=%d: %v", req.RoomID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	s.logger.Info("GetRoomBookings: found %d bookings for room id=%d", len(bookings), req.RoomID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Отмена освобождает инвентарь: счётчик свободных номеров пересчитывается
// в той же транзакции
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	isAdmin := req.AdminID != nil
	s.logger.Info("Cancel: booking id=%d, admin=%t", id, isAdmin)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("Cancel: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !isAdmin && !s.ownedBy(booking, req.GuestEmail) {
		s.logger.Warn("Cancel: access to booking id=%d denied for %s", id, req.GuestEmail)
		return nil, ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d in status %s cannot be cancelled", id, booking.Status)
		return nil, fmt.Errorf("%w: status is %s", ErrCannotCancel, booking.Status)
	}

	today := domain.TruncateToDay(s.timeProvider.Now())

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.Cancel(txCtx, id, req.Reason); err != nil {
			return fmt.Errorf("%w: failed to cancel booking: %v", ErrInternal, err)
		}
		// Пересчёт свободных номеров в той же транзакции
		if err := s.roomRepo.RefreshAvailability(txCtx, booking.RoomID, today); err != nil {
			return fmt.Errorf("%w: failed to refresh room availability: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("Cancel: failed to cancel booking id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("Cancel: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return models.FromDomainBooking(updated), nil
}

// UpdateStatus переводит бронирование в новый статус (административная операция)
// Допустимость перехода проверяется машиной состояний domain.Booking
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d, new status=%s, admin id=%d", id, req.Status, req.AdminID)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status %q: %v", req.Status, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: failed to get booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s forbidden for booking id=%d",
			booking.Status, newStatus, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	today := domain.TruncateToDay(s.timeProvider.Now())

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.bookingRepo.UpdateStatus(txCtx, id, newStatus); err != nil {
			return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
		if err := s.roomRepo.RefreshAvailability(txCtx, booking.RoomID, today); err != nil {
			return fmt.Errorf("%w: failed to refresh room availability: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", id, err)
		return nil, err
	}

	updated, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d moved to status %s", id, updated.Status)
	return models.FromDomainBooking(updated), nil
}

// ownedBy проверяет владение бронированием по email без учёта регистра
func (s *Service) ownedBy(booking *domain.Booking, email string) bool {
	return email != "" && strings.EqualFold(booking.GuestEmail, email)
}
