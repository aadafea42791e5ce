package reservation

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/dbmetrics"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/ptr"
)

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows(columns)
}

func TestRepository_Create(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`INSERT INTO reservas \(nombre,apellido,whatsapp,deporte,cancha,fecha,horario,precio,estado\) VALUES (.+) RETURNING id, fecha_creacion`).
		WithArgs("Ana", "Pérez", "+5491100000000", "padel", "Pádel 1", "2025-06-01", "18:00", 12000, "confirmada").
		WillReturnRows(sqlmock.NewRows([]string{"id", "fecha_creacion"}).AddRow(7, createdAt))

	res, err := repo.Create(context.Background(), &domain.Reservation{
		Nombre:   "Ana",
		Apellido: "Pérez",
		Whatsapp: "+5491100000000",
		Deporte:  ptr.Ptr("padel"),
		Cancha:   "Pádel 1",
		Fecha:    "2025-06-01",
		Horario:  "18:00",
		Precio:   12000,
		Estado:   domain.StatusConfirmed,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.ID)
	assert.Equal(t, createdAt, res.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_UniqueViolationIsSlotConflict(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO reservas").
		WillReturnError(&pq.Error{Code: "23505", Message: "duplicate key value violates unique constraint"})

	_, err := repo.Create(context.Background(), &domain.Reservation{
		Nombre: "Ana", Apellido: "Pérez", Whatsapp: "1", Cancha: "Pádel 1", Fecha: "2025-06-01", Horario: "18:00",
		Estado: domain.StatusConfirmed,
	})

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_OtherErrorIsExecError(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery("INSERT INTO reservas").WillReturnError(errors.New("connection reset"))

	_, err := repo.Create(context.Background(), &domain.Reservation{Estado: domain.StatusConfirmed})

	assert.ErrorIs(t, err, ErrExecQuery)
	assert.NotErrorIs(t, err, ErrSlotNotAvailable)
}

func TestRepository_GetActiveBySlot_LocksInsideTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT (.+) FROM reservas WHERE cancha = \$1 AND fecha = \$2 AND horario = \$3 AND estado <> \$4 ORDER BY id ASC FOR UPDATE`).
		WithArgs("Pádel 1", "2025-06-01", "18:00", "cancelada").
		WillReturnRows(reservationRows().
			AddRow(3, "Ana", "Pérez", "1", nil, "Pádel 1", "2025-06-01", "18:00", 12000, "confirmada", now))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), &dbmetrics.SqlTxWrapper{Tx: tx})

	got, err := repo.GetActiveBySlot(ctx, domain.Slot{Cancha: "Pádel 1", Fecha: "2025-06-01", Horario: "18:00"})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	require.Len(t, got, 1)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Nil(t, got[0].Deporte)
	assert.Equal(t, domain.StatusConfirmed, got[0].Estado)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetActiveBySlot_NoLockOutsideTransaction(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT (.+) FROM reservas WHERE (.+) ORDER BY id ASC$`).
		WillReturnRows(reservationRows())

	got, err := repo.GetActiveBySlot(context.Background(), domain.Slot{Cancha: "Pádel 1", Fecha: "2025-06-01", Horario: "18:00"})
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOccupiedHorarios_KeepsDuplicatesInOrder(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery(`SELECT horario FROM reservas WHERE cancha = \$1 AND fecha = \$2 AND estado <> \$3 ORDER BY id ASC`).
		WithArgs("Fútbol 5", "2025-06-01", "cancelada").
		WillReturnRows(sqlmock.NewRows([]string{"horario"}).AddRow("20:00").AddRow("18:00").AddRow("20:00"))

	got, err := repo.GetOccupiedHorarios(context.Background(), "Fútbol 5", "2025-06-01")
	require.NoError(t, err)
	assert.Equal(t, []string{"20:00", "18:00", "20:00"}, got)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetOccupiedHorarios_EmptyIsNotNil(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectQuery("SELECT horario FROM reservas").WillReturnRows(sqlmock.NewRows([]string{"horario"}))

	got, err := repo.GetOccupiedHorarios(context.Background(), "Fútbol 5", "2025-06-01")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestRepository_ListRecent(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)
	now := time.Now()

	mock.ExpectQuery(`SELECT (.+) FROM reservas ORDER BY fecha_creacion DESC, id DESC LIMIT 500`).
		WillReturnRows(reservationRows().
			AddRow(2, "Luis", "Gómez", "2", "futbol", "Fútbol 5", "2025-06-02", "20:00", 20000, "cancelada", now).
			AddRow(1, "Ana", "Pérez", "1", nil, "Pádel 1", "2025-06-01", "18:00", 12000, "confirmada", now.Add(-time.Hour)))

	got, err := repo.ListRecent(context.Background(), 500)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(2), got[0].ID)
	assert.Equal(t, "futbol", *got[0].Deporte)
	assert.Equal(t, domain.StatusCancelled, got[0].Estado)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Cancel(t *testing.T) {
	db, mock := newMock(t)
	repo := NewRepository(db)

	mock.ExpectExec(`UPDATE reservas SET estado = \$1 WHERE id = \$2`).
		WithArgs("cancelada", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE reservas SET estado = \$1 WHERE id = \$2`).
		WithArgs("cancelada", int64(999)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	found, err := repo.Cancel(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Cancel(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, found)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsSlotConflict(t *testing.T) {
	assert.True(t, IsSlotConflict(&pq.Error{Code: "23505"}))
	assert.False(t, IsSlotConflict(&pq.Error{Code: "40001"}))
	assert.False(t, IsSlotConflict(&pq.Error{Code: "23503"}))
	assert.False(t, IsSlotConflict(errors.New("plain")))
}
