package schema

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
)

func TestInit_AppliesAllStatements(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS reservas").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("ALTER TABLE reservas ADD COLUMN IF NOT EXISTS estado").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS precios").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE UNIQUE INDEX IF NOT EXISTS ux_reservas_slot_activo").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_reservas_fecha_creacion").WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, Init(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInit_StopsOnError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS reservas").WillReturnError(errors.New("permission denied"))

	err = Init(context.Background(), db)
	assert.ErrorIs(t, err, ErrMigration)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedPrices_InsertsWithoutOverwriting(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`INSERT INTO precios \(cancha,precio\) VALUES \(\$1,\$2\),\(\$3,\$4\) ON CONFLICT \(cancha\) DO NOTHING`).
		WithArgs("Pádel 1", 12000, "Fútbol 5", 20000).
		WillReturnResult(sqlmock.NewResult(0, 2))

	err = SeedPrices(context.Background(), db, []domain.Price{
		{Cancha: "Pádel 1", Precio: 12000},
		{Cancha: "Fútbol 5", Precio: 20000},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSeedPrices_EmptyListIsNoop(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, SeedPrices(context.Background(), db, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}
