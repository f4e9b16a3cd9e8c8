package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// DaySlots доступные времена начала на одну календарную дату, по возрастанию
type DaySlots struct {
	Date  string // YYYY-MM-DD
	Slots []types.TimeString
}

// Page порция дней для постраничного просмотра ("показать еще")
type Page struct {
	Days []DaySlots
	// NextOffset смещение (в днях от from), с которого продолжать обход
	NextOffset int
	// HasMore false, если горизонт исчерпан
	HasMore bool
}

// Engine вычисляет доступность уборщика. Состояния между вызовами не хранит;
// "сейчас" всегда передается вызывающей стороной.
type Engine struct {
	horizonDays int
	pageSize    int
}

// Option настройка Engine
type Option func(*Engine)

// WithHorizonDays ограничивает поиск вперед заданным числом дней
func WithHorizonDays(days int) Option {
	return func(e *Engine) {
		if days > 0 {
			e.horizonDays = days
		}
	}
}

// WithPageSize задает число непустых дней на странице
func WithPageSize(size int) Option {
	return func(e *Engine) {
		if size > 0 {
			e.pageSize = size
		}
	}
}

// New создает движок; по умолчанию горизонт 90 дней и страница из 5 дней
func New(opts ...Option) *Engine {
	e := &Engine{
		horizonDays: domain.DefaultHorizonDays,
		pageSize:    domain.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HorizonDays возвращает горизонт поиска
func (e *Engine) HorizonDays() int {
	return e.horizonDays
}

// PageSize возвращает размер страницы
func (e *Engine) PageSize() int {
	return e.pageSize
}

// EnumerateAvailableSlots обходит все дни горизонта начиная с from и возвращает
// только дни, где после фильтрации остался хотя бы один слот.
func (e *Engine) EnumerateAvailableSlots(
	cleaner *domain.Cleaner,
	bookings []domain.Booking,
	durationMinutes int,
	from time.Time,
	now time.Time,
) []DaySlots {
	byDate := domain.BookingsByDate(bookings)
	days := make([]DaySlots, 0)

	for offset := 0; offset < e.horizonDays; offset++ {
		date := dayAt(from, offset)
		slots := e.daySlots(cleaner, byDate, durationMinutes, date, now)
		if len(slots) == 0 {
			continue
		}
		days = append(days, DaySlots{Date: domain.FormatDate(date), Slots: slots})
	}

	return days
}

// EnumeratePage обходит дни начиная с from+offset, пока не соберет pageSize
// непустых дней или не исчерпает горизонт (offset считается от from).
func (e *Engine) EnumeratePage(
	cleaner *domain.Cleaner,
	bookings []domain.Booking,
	durationMinutes int,
	from time.Time,
	offset int,
	now time.Time,
) Page {
	if offset < 0 {
		offset = 0
	}

	byDate := domain.BookingsByDate(bookings)
	page := Page{Days: make([]DaySlots, 0, e.pageSize)}

	current := offset
	for current < e.horizonDays && len(page.Days) < e.pageSize {
		date := dayAt(from, current)
		current++

		slots := e.daySlots(cleaner, byDate, durationMinutes, date, now)
		if len(slots) == 0 {
			continue
		}
		page.Days = append(page.Days, DaySlots{Date: domain.FormatDate(date), Slots: slots})
	}

	if current > e.horizonDays {
		current = e.horizonDays
	}
	page.NextOffset = current
	page.HasMore = current < e.horizonDays

	return page
}

// FindNextAvailable возвращает самый ранний момент начала, строго после now,
// не пересекающийся с бронированиями. Поиск идет по дням от даты now в пределах горизонта;
// ok=false означает отсутствие доступности в горизонте (это не ошибка).
func (e *Engine) FindNextAvailable(
	cleaner *domain.Cleaner,
	bookings []domain.Booking,
	durationMinutes int,
	now time.Time,
) (time.Time, bool) {
	if cleaner == nil {
		return time.Time{}, false
	}
	byDate := domain.BookingsByDate(bookings)

	for offset := 0; offset < e.horizonDays; offset++ {
		date := dayAt(now, offset)
		dayBookings := byDate[domain.FormatDate(date)]

		effective := ResolveEffectiveDaySlots(cleaner.Schedule, cleaner.Exceptions, date)
		if len(effective) == 0 {
			continue
		}

		for _, candidate := range uniqueSorted(EnumerateDaySlots(effective, durationMinutes)) {
			instant := candidate.On(inLocation(date, now.Location()))
			if !instant.After(now) {
				continue
			}
			if HasConflict(candidate, durationMinutes, dayBookings) {
				continue
			}
			return instant, true
		}
	}

	return time.Time{}, false
}

// daySlots применяет к одной дате все шаги: исключения, перебор, конфликты, отсечку по now
func (e *Engine) daySlots(
	cleaner *domain.Cleaner,
	byDate map[string][]domain.Booking,
	durationMinutes int,
	date time.Time,
	now time.Time,
) []types.TimeString {
	if cleaner == nil {
		return nil
	}

	dateStr := domain.FormatDate(date)
	today := domain.FormatDate(now)
	// Прошедшие дни не предлагаются вовсе
	if dateStr < today {
		return nil
	}

	effective := ResolveEffectiveDaySlots(cleaner.Schedule, cleaner.Exceptions, date)
	if len(effective) == 0 {
		return nil
	}

	candidates := uniqueSorted(EnumerateDaySlots(effective, durationMinutes))
	dayBookings := byDate[dateStr]
	nowMinutes := types.NewTimeString(now).Minutes()
	isToday := dateStr == today

	result := make([]types.TimeString, 0, len(candidates))
	for _, candidate := range candidates {
		if HasConflict(candidate, durationMinutes, dayBookings) {
			continue
		}
		if isToday && candidate.Minutes() < nowMinutes {
			continue
		}
		result = append(result, candidate)
	}

	return result
}

// dayAt возвращает календарную дату base+offset дней (полночь, UTC как "наивная" дата)
func dayAt(base time.Time, offset int) time.Time {
	y, m, d := base.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, time.UTC)
}

// inLocation переносит календарную дату в часовой пояс loc без сдвига дня
func inLocation(date time.Time, loc *time.Location) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
