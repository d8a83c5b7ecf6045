package check_availability

import (
	"time"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
)

// Request модель запроса проверки доступности номера
type Request struct {
	RoomID   int64     // ID номера
	CheckIn  time.Time // Дата заезда (без времени)
	CheckOut time.Time // Дата выезда, не включается в проживание
}

// Response модель ответа с решением о доступности
// Решение точечное во времени: между проверкой и созданием бронирования
// инвентарь может разобрать конкурирующий запрос, поэтому Booking Writer
// повторяет проверку внутри транзакции
type Response struct {
	Available          bool         // Доступен ли хотя бы один номер
	Room               *domain.Room // Запрошенный номер (цены, вместимость)
	ConflictingCount   int          // Живые бронирования, пересекающие интервал
	RemainingInventory int          // Сколько номеров остаётся свободно
	Nights             int          // Количество ночей
	TotalPrice         float64      // Стоимость проживания по базовой цене
}
