package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// ResolveEffectiveDaySlots возвращает слоты расписания, действующие в дату date.
// День недели берется из фиксированной таблицы (domain.WeekdayOf), а не из локали.
// Исключение убирает слот только при точном совпадении start и end;
// частичные пересечения не обрезаются, добавлять слоты исключения не могут.
func ResolveEffectiveDaySlots(schedule domain.WeeklySchedule, exceptions []domain.Exception, date time.Time) []domain.TimeSlot {
	weekly := schedule[domain.WeekdayOf(date)]
	if len(weekly) == 0 {
		return []domain.TimeSlot{}
	}

	dateStr := domain.FormatDate(date)
	removed := make([]domain.TimeSlot, 0)
	for _, exc := range exceptions {
		if exc.Date == dateStr {
			removed = append(removed, exc.Slot())
		}
	}

	effective := make([]domain.TimeSlot, 0, len(weekly))
	for _, slot := range weekly {
		if isRemoved(slot, removed) {
			continue
		}
		effective = append(effective, slot)
	}

	return effective
}

func isRemoved(slot domain.TimeSlot, removed []domain.TimeSlot) bool {
	for _, r := range removed {
		if sameTime(slot.Start, r.Start) && sameTime(slot.End, r.End) {
			return true
		}
	}
	return false
}

// sameTime сравнивает время суток; "9:00" и "09:00" совпадают, неразбираемые значения сравниваются как строки
func sameTime(a, b string) bool {
	if a == b {
		return true
	}
	ta, errA := parseTime(a)
	tb, errB := parseTime(b)
	if errA != nil || errB != nil {
		return false
	}
	return ta.Equal(tb)
}
