package room

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/larespalmas/hotel-booking-service/internal/domain"
	"github.com/larespalmas/hotel-booking-service/pkg/dbmetrics"
	"github.com/larespalmas/hotel-booking-service/pkg/psqlbuilder"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

var roomColumns = []string{
	"id",
	"name",
	"slug",
	"description",
	"price_per_night",
	"price_single",
	"price_double",
	"price_triple",
	"max_guests",
	"size_sqm",
	"amenities",
	"image_url",
	"total_rooms",
	"rooms_available",
	"active",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с каталогом номеров
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория номеров
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByID получает активный номер по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, false)
}

// GetByIDForUpdate получает активный номер по ID с блокировкой строки
// Вызывается только внутри транзакции: блокировка строки номера
// сериализует конкурирующие попытки бронирования одного типа номера
func (r *Repository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, true)
}

// GetBySlug получает активный номер по slug (для страниц сайта)
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Room, error) {
	return r.getOne(ctx, squirrel.Eq{"slug": slug}, false)
}

func (r *Repository) getOne(ctx context.Context, pred squirrel.Eq, forUpdate bool) (*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		Where(pred).
		Where(squirrel.Eq{"active": true})

	if forUpdate && dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - build select query: %v", ErrBuildQuery, err)
	}

	room, err := scanRoom(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrRoomNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: getOne - scan room: %v", ErrScanRow, err)
	}

	return room, nil
}

// List получает список номеров каталога
// При activeOnly=false возвращаются и скрытые номера (административный доступ)
func (r *Repository) List(ctx context.Context, activeOnly bool) ([]*domain.Room, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(roomColumns...).
		From("rooms").
		OrderBy("price_per_night ASC, id ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"active": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	rooms := make([]*domain.Room, 0)
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		rooms = append(rooms, room)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return rooms, nil
}

// RefreshAvailability пересчитывает денормализованный счётчик rooms_available
// для номера: total_rooms минус живые бронирования, занимающие ночь today.
// Вызывается в той же транзакции, что и изменение бронирований, чтобы кэш
// никогда не расходился с источником истины
func (r *Repository) RefreshAvailability(ctx context.Context, roomID int64, today time.Time) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	liveStatusStrings := make([]string, len(domain.LiveStatuses))
	for i, s := range domain.LiveStatuses {
		liveStatusStrings[i] = string(s)
	}

	// Ночь [today, today+1): check_in <= today AND check_out > today
	// Подзапрос собирается с плейсхолдерами `?`: нумерацию $N всему
	// выражению целиком присваивает внешний Dollar-билдер
	sub := squirrel.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"room_id": roomID}).
		Where(squirrel.Eq{"status": liveStatusStrings}).
		Where(squirrel.LtOrEq{"check_in_date": today}).
		Where(squirrel.Gt{"check_out_date": today})

	subQuery, subArgs, err := sub.ToSql()
	if err != nil {
		return fmt.Errorf("%w: RefreshAvailability - build subquery: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Update("rooms").
		Set("rooms_available", squirrel.Expr("GREATEST(total_rooms - ("+subQuery+"), 0)", subArgs...)).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": roomID}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: RefreshAvailability - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: RefreshAvailability - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: RefreshAvailability - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrRoomNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRoom(row rowScanner) (*domain.Room, error) {
	var room domain.Room
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&room.ID,
		&room.Name,
		&room.Slug,
		&room.Description,
		&room.PricePerNight,
		&room.PriceSingle,
		&room.PriceDouble,
		&room.PriceTriple,
		&room.MaxGuests,
		&room.SizeSqm,
		pq.Array(&room.Amenities),
		&room.ImageURL,
		&room.TotalRooms,
		&room.RoomsAvailable,
		&room.Active,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	room.CreatedAt = createdAt.Time
	room.UpdatedAt = updatedAt.Time

	return &room, nil
}
