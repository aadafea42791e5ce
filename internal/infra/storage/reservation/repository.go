package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/dbmetrics"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/psqlbuilder"
)

const table = "reservas"

// Коды ошибок PostgreSQL, означающие гонку за слот
const (
	pqUniqueViolation = "23505"
)

var columns = []string{
	"id",
	"nombre",
	"apellido",
	"whatsapp",
	"deporte",
	"cancha",
	"fecha",
	"horario",
	"precio",
	"estado",
	"fecha_creacion",
}

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет бронирование и заполняет ID и дату создания
// Если слот уже занят (уникальный индекс или конфликт сериализации), возвращает ErrSlotNotAvailable
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns(
			"nombre",
			"apellido",
			"whatsapp",
			"deporte",
			"cancha",
			"fecha",
			"horario",
			"precio",
			"estado",
		).
		Values(
			res.Nombre,
			res.Apellido,
			res.Whatsapp,
			res.Deporte,
			res.Cancha,
			res.Fecha,
			res.Horario,
			res.Precio,
			string(res.Estado),
		).
		Suffix("RETURNING id, fecha_creacion").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&res.ID, &res.CreatedAt)
	if err != nil {
		if IsSlotConflict(err) {
			return nil, fmt.Errorf("%w: Create - %v", ErrSlotNotAvailable, err)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return res, nil
}

// GetActiveBySlot возвращает неотменённые бронирования слота
// Внутри транзакции строки блокируются (FOR UPDATE)
func (r *Repository) GetActiveBySlot(ctx context.Context, slot domain.Slot) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(columns...).
		From(table).
		Where(squirrel.Eq{
			"cancha":  slot.Cancha,
			"fecha":   slot.Fecha,
			"horario": slot.Horario,
		}).
		Where(squirrel.NotEq{"estado": string(domain.StatusCancelled)}).
		OrderBy("id ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlot - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveBySlot - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// GetOccupiedHorarios возвращает занятые времена поля на дату, без удаления дублей
func (r *Repository) GetOccupiedHorarios(ctx context.Context, cancha, fecha string) ([]string, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("horario").
		From(table).
		Where(squirrel.Eq{"cancha": cancha, "fecha": fecha}).
		Where(squirrel.NotEq{"estado": string(domain.StatusCancelled)}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedHorarios - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedHorarios - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	horarios := make([]string, 0)
	for rows.Next() {
		var horario string
		if err := rows.Scan(&horario); err != nil {
			return nil, fmt.Errorf("%w: GetOccupiedHorarios - scan horario: %v", ErrScanRow, err)
		}
		horarios = append(horarios, horario)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOccupiedHorarios - rows error: %v", ErrScanRow, err)
	}

	return horarios, nil
}

// ListRecent возвращает последние limit бронирований, новые первыми
func (r *Repository) ListRecent(ctx context.Context, limit uint64) ([]*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("fecha_creacion DESC", "id DESC").
		Limit(limit).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListRecent - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanReservations(rows)
}

// Cancel помечает бронирование отменённым
// Возвращает false, если строки с таким id нет
func (r *Repository) Cancel(ctx context.Context, id int64) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("estado", string(domain.StatusCancelled)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected > 0, nil
}

// scanReservations сканирует результаты запроса в слайс бронирований
func (r *Repository) scanReservations(rows *sql.Rows) ([]*domain.Reservation, error) {
	reservations := make([]*domain.Reservation, 0)

	for rows.Next() {
		var (
			res     domain.Reservation
			deporte sql.NullString
			estado  string
		)

		err := rows.Scan(
			&res.ID,
			&res.Nombre,
			&res.Apellido,
			&res.Whatsapp,
			&deporte,
			&res.Cancha,
			&res.Fecha,
			&res.Horario,
			&res.Precio,
			&estado,
			&res.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanReservations - scan row: %v", ErrScanRow, err)
		}

		if deporte.Valid {
			res.Deporte = &deporte.String
		}
		res.Estado = domain.ReservationStatus(estado)

		reservations = append(reservations, &res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanReservations - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// IsSlotConflict сообщает, что вставку отклонил уникальный индекс активного слота (unique violation)
func IsSlotConflict(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == pqUniqueViolation
}
