package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/larespalmas/hotel-booking-service/internal/api/handlers"
)

// HeaderAdminID заголовок с идентификатором администратора
// Аутентификация живёт на API gateway; сервис доверяет заголовку
const HeaderAdminID = "X-Admin-ID"

type adminCtxKey struct{}

// AdminAuth middleware для административных маршрутов
// Запросы без корректного X-Admin-ID отклоняются с 403
func AdminAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(HeaderAdminID)
		if raw == "" {
			handlers.RespondForbidden(w, "требуется административный доступ")
			return
		}

		adminID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || adminID <= 0 {
			handlers.RespondForbidden(w, "некорректный идентификатор администратора")
			return
		}

		ctx := context.WithValue(r.Context(), adminCtxKey{}, adminID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminIDFromContext возвращает ID администратора, положенный AdminAuth
func AdminIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(adminCtxKey{}).(int64)
	return id, ok
}

// OptionalAdminID читает X-Admin-ID без требования его наличия
// Публичные маршруты используют его для расширенных прав (отмена любого
// бронирования администратором)
func OptionalAdminID(r *http.Request) *int64 {
	raw := r.Header.Get(HeaderAdminID)
	if raw == "" {
		return nil
	}
	adminID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || adminID <= 0 {
		return nil
	}
	return &adminID
}
