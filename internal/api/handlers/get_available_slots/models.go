package get_available_slots

import (
	"strconv"

	getAvailableSlots "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	CleanerID       int64          `json:"cleanerId"`
	DurationMinutes int            `json:"durationMinutes"`
	Days            []AvailableDay `json:"days"`
	NextOffset      int            `json:"nextOffset"`
	HasMore         bool           `json:"hasMore"`
}

// AvailableDay доступные времена начала на одну дату
type AvailableDay struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	days := make([]AvailableDay, len(resp.Days))
	for i, day := range resp.Days {
		slots := make([]string, len(day.Slots))
		for j, slot := range day.Slots {
			slots[j] = slot.String()
		}
		days[i] = AvailableDay{Date: day.Date, Slots: slots}
	}

	return &AvailableSlotsResponse{
		CleanerID:       resp.CleanerID,
		DurationMinutes: resp.DurationMinutes,
		Days:            days,
		NextOffset:      resp.NextOffset,
		HasMore:         resp.HasMore,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров; offset необязателен
func ToUseCaseRequest(cleanerID int64, durationStr, offsetStr, mode string) (*getAvailableSlots.Request, error) {
	duration, err := strconv.Atoi(durationStr)
	if err != nil {
		return nil, err
	}

	offset := 0
	if offsetStr != "" {
		offset, err = strconv.Atoi(offsetStr)
		if err != nil {
			return nil, err
		}
	}

	return &getAvailableSlots.Request{
		CleanerID:       cleanerID,
		DurationMinutes: duration,
		Offset:          offset,
		Mode:            getAvailableSlots.Mode(mode),
	}, nil
}
