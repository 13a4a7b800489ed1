package conflict

import "errors"

var (
	// ErrConflictNotFound возвращается, когда запись о конфликте не найдена
	ErrConflictNotFound = errors.New("conflict.repository: conflict record not found")

	// ErrAlreadyResolved возвращается при попытке пометить решенной запись,
	// которая уже не в статусе pending
	ErrAlreadyResolved = errors.New("conflict.repository: conflict already resolved")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("conflict.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("conflict.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("conflict.repository: failed to scan row")
)
