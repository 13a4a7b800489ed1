package evaluate_booking

import (
	"time"

	"github.com/aldarwish/Studio-BookingService/internal/domain"
	"github.com/aldarwish/Studio-BookingService/pkg/types"
)

// Request модель запроса на проверку слота (первая фаза двухфазного flow)
type Request struct {
	Date        time.Time          // Дата бронирования (без времени)
	StartTime   types.TimeString   // Время начала, "HH:MM"
	EndTime     types.TimeString   // Время конца, "HH:MM"
	Exclusivity domain.Exclusivity // full | zone

	// ExcludeBookingID исключает редактируемое бронирование из проверки,
	// чтобы оно не конфликтовало само с собой
	ExcludeBookingID *int64
}

// Response вердикт детектора; ничего не персистится
type Response struct {
	Severity domain.Severity
	Message  string
}
