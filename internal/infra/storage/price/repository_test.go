package price

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetAll(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery(`SELECT cancha, precio, actualizado FROM precios ORDER BY cancha ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"cancha", "precio", "actualizado"}).
			AddRow("Fútbol 5", 20000, now).
			AddRow("Pádel 1", 0, now))

	prices, err := NewRepository(db).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, prices, 2)
	assert.Equal(t, "Fútbol 5", prices[0].Cancha)
	assert.Equal(t, 20000, prices[0].Precio)
	assert.Equal(t, 0, prices[1].Precio)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByCancha_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT cancha, precio, actualizado FROM precios WHERE cancha = \$1`).
		WithArgs("Tenis").
		WillReturnError(sql.ErrNoRows)

	_, err = NewRepository(db).GetByCancha(context.Background(), "Tenis")
	assert.ErrorIs(t, err, ErrPriceNotFound)
}

func TestRepository_GetByCancha(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT cancha, precio, actualizado FROM precios WHERE cancha = \$1`).
		WithArgs("Pádel 1").
		WillReturnRows(sqlmock.NewRows([]string{"cancha", "precio", "actualizado"}).AddRow("Pádel 1", 15000, time.Now()))

	p, err := NewRepository(db).GetByCancha(context.Background(), "Pádel 1")
	require.NoError(t, err)
	assert.Equal(t, 15000, p.Precio)
}

func TestRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`UPDATE precios SET precio = \$1, actualizado = NOW\(\) WHERE cancha = \$2`).
		WithArgs(18000, "Pádel 1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, NewRepository(db).Update(context.Background(), "Pádel 1", 18000))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update_UnknownCancha(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("UPDATE precios").WillReturnResult(sqlmock.NewResult(0, 0))

	err = NewRepository(db).Update(context.Background(), "Tenis", 100)
	assert.ErrorIs(t, err, ErrPriceNotFound)
}
