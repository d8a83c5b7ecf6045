package settings

import "errors"

var (
	// ErrUnknownSetting возвращается при попытке записать неизвестный ключ
	ErrUnknownSetting = errors.New("settings.service: unknown setting key")

	// ErrInvalidValue возвращается, когда значение не проходит валидацию ключа
	ErrInvalidValue = errors.New("settings.service: invalid setting value")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("settings.service: internal error")
)
