// Package scheduling детектор конфликтов расписания.
// Чистая функция над неизменяемым снимком бронирований одного дня;
// вызывается синхронно внутри submit/evaluate use case-ов.
package scheduling

import (
	"github.com/aldarwish/Studio-BookingService/internal/domain"
)

// Detect решает, конфликтует ли предложенный интервал с уже
// запланированными бронированиями того же дня.
//
// Правила:
//   - пересечение строгое: смежные интервалы (end == start) не конфликтуют;
//   - если в пересечении участвует full-бронирование (новое или существующее) -
//     Hard, дальнейший поиск прекращается (худший класс уже найден);
//   - пересечение zone/zone - Soft, поиск продолжается на случай Hard;
//   - Hard всегда важнее Soft независимо от порядка обнаружения.
//
// Вердикт содержит один репрезентативный message, а не полный список
// конфликтующих бронирований.
func Detect(proposed domain.TimeRange, exclusivity domain.Exclusivity, existing []domain.ScheduledBooking) domain.ConflictVerdict {
	verdict := domain.NoConflict()

	for _, booked := range existing {
		if !proposed.Overlaps(booked.Range) {
			continue
		}

		if exclusivity == domain.ExclusivityFull || booked.Exclusivity == domain.ExclusivityFull {
			return domain.HardConflict()
		}

		verdict = domain.SoftConflict()
	}

	return verdict
}
