package booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("booking.repository: booking not found")

	// ErrStaleVersion возвращается, когда compare-and-write не прошел:
	// версия строки на сервере уже не совпадает с ожидаемой
	ErrStaleVersion = errors.New("booking.repository: stale version")

	// ErrDuplicateDedupKey возвращается, когда бронирование с таким
	// ключом идемпотентности уже существует
	ErrDuplicateDedupKey = errors.New("booking.repository: dedup key already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking.repository: failed to scan row")
)
