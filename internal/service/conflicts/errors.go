package conflicts

import "errors"

var (
	// ErrConflictNotFound возвращается, когда запись о конфликте не найдена
	ErrConflictNotFound = errors.New("conflict record not found")

	// ErrStaleTarget возвращается из Resolve(Accept), когда целевое
	// бронирование исчезло между созданием конфликта и решением.
	// Запись остается pending для ручного разбора; автоповтор не имеет
	// смысла - цель удалена, а не временно недоступна
	ErrStaleTarget = errors.New("resolution target booking no longer exists")

	// ErrAccessDenied возвращается, когда у оператора нет прав разрешать конфликты
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidDecision возвращается при неизвестном решении
	ErrInvalidDecision = errors.New("invalid resolution decision")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("conflicts service: internal error")
)
