package submit_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	// Для вызывающего это retryable-ошибка: повторная отправка с тем же
	// dedup key безопасна
	ErrInternal = errors.New("submit_booking: internal error")
)
