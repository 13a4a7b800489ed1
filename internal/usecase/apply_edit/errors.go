package apply_edit

import "errors"

var (
	// ErrBookingNotFound возвращается, когда редактируемое бронирование не существует
	ErrBookingNotFound = errors.New("apply_edit: booking not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("apply_edit: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("apply_edit: internal error")
)
