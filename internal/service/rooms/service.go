package rooms

import (
	"context"
	"errors"
	"fmt"

	roomRepo "github.com/larespalmas/hotel-booking-service/internal/infra/storage/room"
	"github.com/larespalmas/hotel-booking-service/internal/service/rooms/models"
)

// Service сервис каталога номеров
type Service struct {
	roomRepo RoomRepository
	logger   Logger
}

// NewService создает новый сервис каталога номеров
func NewService(roomRepo RoomRepository, logger Logger) *Service {
	return &Service{
		roomRepo: roomRepo,
		logger:   logger,
	}
}

// List возвращает список номеров каталога
// Публичный доступ показывает только активные номера
func (s *Service) List(ctx context.Context, activeOnly bool) (*models.RoomListResponse, error) {
	s.logger.Info("List: active_only=%t", activeOnly)

	roomList, err := s.roomRepo.List(ctx, activeOnly)
	if err != nil {
		s.logger.Error("List: failed to list rooms: %v", err)
		return nil, fmt.Errorf("%w: failed to list rooms: %v", ErrInternal, err)
	}

	s.logger.Info("List: found %d rooms", len(roomList))
	return models.FromDomainRoomList(roomList), nil
}

// GetBySlug возвращает активный номер по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.RoomResponse, error) {
	s.logger.Info("GetBySlug: slug=%s", slug)

	room, err := s.roomRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetBySlug: room slug=%s not found", slug)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetBySlug: failed to get room slug=%s: %v", slug, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}

// GetByID возвращает активный номер по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.RoomResponse, error) {
	s.logger.Info("GetByID: room id=%d", id)

	room, err := s.roomRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomRepo.ErrRoomNotFound) {
			s.logger.Warn("GetByID: room id=%d not found", id)
			return nil, ErrRoomNotFound
		}
		s.logger.Error("GetByID: failed to get room id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to get room: %v", ErrInternal, err)
	}

	return models.FromDomainRoom(room), nil
}
