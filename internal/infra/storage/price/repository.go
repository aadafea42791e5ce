package price

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/dbmetrics"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/psqlbuilder"
)

const table = "precios"

// Repository репозиторий цен полей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория цен
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetAll возвращает все цены, отсортированные по названию поля
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Price, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("cancha", "precio", "actualizado").
		From(table).
		OrderBy("cancha ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	prices := make([]*domain.Price, 0)
	for rows.Next() {
		var p domain.Price
		if err := rows.Scan(&p.Cancha, &p.Precio, &p.Actualizado); err != nil {
			return nil, fmt.Errorf("%w: GetAll - scan row: %v", ErrScanRow, err)
		}
		prices = append(prices, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetAll - rows error: %v", ErrScanRow, err)
	}

	return prices, nil
}

// GetByCancha возвращает цену поля
func (r *Repository) GetByCancha(ctx context.Context, cancha string) (*domain.Price, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("cancha", "precio", "actualizado").
		From(table).
		Where(squirrel.Eq{"cancha": cancha}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCancha - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Price
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.Cancha, &p.Precio, &p.Actualizado)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPriceNotFound
		}
		return nil, fmt.Errorf("%w: GetByCancha - scan row: %v", ErrScanRow, err)
	}

	return &p, nil
}

// Update выставляет цену поля и обновляет отметку времени
// Если поля нет в таблице, возвращает ErrPriceNotFound
func (r *Repository) Update(ctx context.Context, cancha string, precio int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(table).
		Set("precio", precio).
		Set("actualizado", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"cancha": cancha}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrPriceNotFound
	}

	return nil
}
