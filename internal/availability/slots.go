package availability

import (
	"sort"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// EnumerateDaySlots возвращает кандидатов на начало бронирования для сырых слотов одного дня.
// Шаг фиксирован (60 минут) и не зависит от длительности услуги.
// Слоты обходятся в исходном порядке; пересекающиеся слоты могут дать повторы,
// дедупликация выполняется вызывающей стороной.
// Слоты без start/end или с неразбираемым временем пропускаются.
func EnumerateDaySlots(slots []domain.TimeSlot, durationMinutes int) []types.TimeString {
	candidates := make([]types.TimeString, 0)
	if durationMinutes <= 0 {
		return candidates
	}

	for _, slot := range slots {
		start, end, ok := parseSlot(slot)
		if !ok {
			continue
		}

		startMin, endMin := start.Minutes(), end.Minutes()
		if endMin-startMin < durationMinutes {
			continue
		}

		for current := startMin; current+durationMinutes <= endMin; current += domain.SlotStepMinutes {
			candidate, err := types.NewTimeStringFromMinutes(current)
			if err != nil {
				break
			}
			candidates = append(candidates, candidate)
		}
	}

	return candidates
}

// uniqueSorted убирает повторы и сортирует кандидатов по возрастанию
func uniqueSorted(candidates []types.TimeString) []types.TimeString {
	if len(candidates) == 0 {
		return candidates
	}

	seen := make(map[int]struct{}, len(candidates))
	out := make([]types.TimeString, 0, len(candidates))
	for _, c := range candidates {
		if _, ok := seen[c.Minutes()]; ok {
			continue
		}
		seen[c.Minutes()] = struct{}{}
		out = append(out, c)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].IsBefore(out[j]) })
	return out
}

// parseSlot разбирает границы слота; ok=false для пустых, неразбираемых или вырожденных слотов
func parseSlot(slot domain.TimeSlot) (start, end types.TimeString, ok bool) {
	if slot.Start == "" || slot.End == "" {
		return start, end, false
	}

	start, err := types.NewTimeStringFromString(slot.Start)
	if err != nil {
		return start, end, false
	}
	end, err = types.NewTimeStringFromString(slot.End)
	if err != nil {
		return start, end, false
	}
	if !start.IsBefore(end) {
		return start, end, false
	}

	return start, end, true
}
