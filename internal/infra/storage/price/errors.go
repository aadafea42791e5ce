package price

import "errors"

var (
	// ErrPriceNotFound возвращается, когда для поля нет строки в таблице precios
	ErrPriceNotFound = errors.New("price.repository: price not found")

	ErrBuildQuery = errors.New("price.repository: failed to build query")
	ErrExecQuery  = errors.New("price.repository: failed to execute query")
	ErrScanRow    = errors.New("price.repository: failed to scan row")
)
