package settings

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
)

// Service сервис настроек отеля (административный доступ)
// Каждый известный ключ валидируется своим правилом: датовая политика
// бронирований зависит от этих значений, мусор сюда попадать не должен
type Service struct {
	settingsRepo SettingsRepository
	logger       Logger
}

// NewService создает новый сервис настроек
func NewService(settingsRepo SettingsRepository, logger Logger) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		logger:       logger,
	}
}

// List возвращает все настройки отеля
func (s *Service) List(ctx context.Context) (map[string]string, error) {
	s.logger.Info("List: listing hotel settings")

	values, err := s.settingsRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: failed to list settings: %v", err)
		return nil, fmt.Errorf("%w: failed to list settings: %v", ErrInternal, err)
	}

	return values, nil
}

// Update записывает значение настройки после валидации ключа
func (s *Service) Update(ctx context.Context, key, value string) error {
	s.logger.Info("Update: key=%s", key)

	normalized, err := validateSetting(key, value)
	if err != nil {
		s.logger.Warn("Update: validation failed for key=%s: %v", key, err)
		return err
	}

	if err := s.settingsRepo.Upsert(ctx, key, normalized); err != nil {
		s.logger.Error("Update: failed to upsert key=%s: %v", key, err)
		return fmt.Errorf("%w: failed to upsert setting: %v", ErrInternal, err)
	}

	s.logger.Info("Update: key=%s set to %s", key, normalized)
	return nil
}

// validateSetting проверяет значение по правилу ключа и нормализует его
func validateSetting(key, value string) (string, error) {
	value = strings.TrimSpace(value)

	switch key {
	case domain.SettingMaxAdvanceBookingDays:
		days, err := strconv.Atoi(value)
		if err != nil {
			return "", fmt.Errorf("%w: %s must be an integer", ErrInvalidValue, key)
		}
		if days < domain.MinAdvanceBookingDays || days > domain.MaxAdvanceBookingDays {
			return "", fmt.Errorf("%w: %s must be between %d and %d",
				ErrInvalidValue, key, domain.MinAdvanceBookingDays, domain.MaxAdvanceBookingDays)
		}
		return strconv.Itoa(days), nil

	case domain.SettingDefaultBookingStatus:
		status := domain.BookingStatus(value)
		// Стартовым статусом может быть только pending или confirmed
		if status != domain.StatusPending && status != domain.StatusConfirmed {
			return "", fmt.Errorf("%w: %s must be %q or %q",
				ErrInvalidValue, key, domain.StatusPending, domain.StatusConfirmed)
		}
		return value, nil

	case domain.SettingCurrency:
		currency := strings.ToUpper(value)
		if len(currency) != 3 || !isAlpha(currency) {
			return "", fmt.Errorf("%w: %s must be a 3-letter ISO code", ErrInvalidValue, key)
		}
		return currency, nil

	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSetting, key)
	}
}

func isAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
