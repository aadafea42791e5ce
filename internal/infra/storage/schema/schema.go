package schema

import (
	"context"
	"errors"
	"fmt"

	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/internal/domain"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/dbmetrics"
	"github.com/Nexum-RAG/Reserva-tu-cancha-backend/pkg/psqlbuilder"
)

// ErrMigration возвращается, если не удалось применить схему
var ErrMigration = errors.New("schema: migration failed")

// statements применяются по порядку при каждом старте, все идемпотентны
var statements = []string{
	`CREATE TABLE IF NOT EXISTS reservas (
		id SERIAL PRIMARY KEY,
		nombre TEXT NOT NULL,
		apellido TEXT NOT NULL,
		whatsapp TEXT NOT NULL,
		deporte TEXT,
		cancha TEXT NOT NULL,
		fecha TEXT NOT NULL,
		horario VARCHAR(10) NOT NULL,
		precio INTEGER NOT NULL DEFAULT 0,
		fecha_creacion TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	`ALTER TABLE reservas ADD COLUMN IF NOT EXISTS estado VARCHAR(20) NOT NULL DEFAULT 'confirmada'`,
	`CREATE TABLE IF NOT EXISTS precios (
		cancha TEXT PRIMARY KEY,
		precio INTEGER NOT NULL DEFAULT 0,
		actualizado TIMESTAMP NOT NULL DEFAULT NOW()
	)`,
	// Не больше одного активного бронирования на слот
	// На базе с уже задвоенными активными слотами индекс не создастся, см. DESIGN.md (миграция)
	`CREATE UNIQUE INDEX IF NOT EXISTS ux_reservas_slot_activo
		ON reservas (cancha, fecha, horario) WHERE estado <> 'cancelada'`,
	`CREATE INDEX IF NOT EXISTS idx_reservas_fecha_creacion ON reservas (fecha_creacion DESC)`,
}

// Init создаёт таблицы и индексы, безопасно вызывать многократно
func Init(ctx context.Context, db dbmetrics.DBExecutor) error {
	for i, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: statement %d: %v", ErrMigration, i+1, err)
		}
	}
	return nil
}

// SeedPrices добавляет цены для полей, которых ещё нет в таблице precios
// Существующие строки не трогаются, поэтому цены, выставленные администратором, сохраняются
func SeedPrices(ctx context.Context, db dbmetrics.DBExecutor, prices []domain.Price) error {
	if len(prices) == 0 {
		return nil
	}

	builder := psqlbuilder.Insert("precios").Columns("cancha", "precio")
	for _, p := range prices {
		builder = builder.Values(p.Cancha, p.Precio)
	}

	query, args, err := builder.Suffix("ON CONFLICT (cancha) DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("%w: SeedPrices - build insert query: %v", ErrMigration, err)
	}

	if _, err := db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SeedPrices - execute insert: %v", ErrMigration, err)
	}
	return nil
}
