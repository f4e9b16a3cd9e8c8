package availability

import (
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// HasConflict проверяет, пересекается ли [start, start+duration) хотя бы с одним бронированием дня.
// Интервалы полуоткрытые: бронирование, заканчивающееся ровно в start
// или начинающееся ровно в start+duration, пересечением не считается.
//
// Примеры для кандидата 09:00 на 120 минут:
// - бронирование 10:00-11:00 → пересечение
// - бронирование 11:00-13:00 → нет (граничат)
// - бронирование 07:00-09:00 → нет (граничат)
func HasConflict(start types.TimeString, durationMinutes int, dayBookings []domain.Booking) bool {
	candidateStart := start.Minutes()
	candidateEnd := candidateStart + durationMinutes

	for _, booking := range dayBookings {
		bookingStart, bookingEnd, ok := parseBooking(booking)
		if !ok {
			// Бронирование с некорректным временем не блокирует слоты
			continue
		}

		if bookingStart < candidateEnd && bookingEnd > candidateStart {
			return true
		}
	}

	return false
}

func parseBooking(b domain.Booking) (start, end int, ok bool) {
	s, err := parseTime(b.Start)
	if err != nil {
		return 0, 0, false
	}
	e, err := parseTime(b.End)
	if err != nil {
		return 0, 0, false
	}
	return s.Minutes(), e.Minutes(), true
}

func parseTime(s string) (types.TimeString, error) {
	return types.NewTimeStringFromString(s)
}
