package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// 2025-03-10 is a Monday
var monday = time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

func TestResolveEffectiveDaySlots(t *testing.T) {
	schedule := domain.WeeklySchedule{
		domain.Monday: {
			{Start: "09:00", End: "12:00"},
			{Start: "13:00", End: "17:00"},
		},
	}

	tests := []struct {
		name       string
		exceptions []domain.Exception
		date       time.Time
		want       []domain.TimeSlot
	}{
		{
			name: "no exceptions",
			date: monday,
			want: schedule[domain.Monday],
		},
		{
			name:       "exact match removes slot",
			exceptions: []domain.Exception{{Date: "2025-03-10", Start: "09:00", End: "12:00"}},
			date:       monday,
			want:       []domain.TimeSlot{{Start: "13:00", End: "17:00"}},
		},
		{
			name:       "zero padding does not matter",
			exceptions: []domain.Exception{{Date: "2025-03-10", Start: "9:00", End: "12:00"}},
			date:       monday,
			want:       []domain.TimeSlot{{Start: "13:00", End: "17:00"}},
		},
		{
			name:       "different end is a near miss",
			exceptions: []domain.Exception{{Date: "2025-03-10", Start: "09:00", End: "11:00"}},
			date:       monday,
			want:       schedule[domain.Monday],
		},
		{
			name:       "different start is a near miss",
			exceptions: []domain.Exception{{Date: "2025-03-10", Start: "10:00", End: "12:00"}},
			date:       monday,
			want:       schedule[domain.Monday],
		},
		{
			name:       "exception on another date",
			exceptions: []domain.Exception{{Date: "2025-03-17", Start: "09:00", End: "12:00"}},
			date:       monday,
			want:       schedule[domain.Monday],
		},
		{
			name:       "exception for a slot not in schedule does not add availability",
			exceptions: []domain.Exception{{Date: "2025-03-10", Start: "18:00", End: "20:00"}},
			date:       monday,
			want:       schedule[domain.Monday],
		},
		{
			name: "weekday without schedule",
			date: monday.AddDate(0, 0, 1),
			want: []domain.TimeSlot{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveEffectiveDaySlots(schedule, tt.exceptions, tt.date)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEffectiveDaySlots_NilSchedule(t *testing.T) {
	assert.Empty(t, ResolveEffectiveDaySlots(nil, nil, monday))
}

func TestResolveEffectiveDaySlots_DoesNotMutateSchedule(t *testing.T) {
	schedule := domain.WeeklySchedule{
		domain.Monday: {{Start: "09:00", End: "12:00"}, {Start: "13:00", End: "17:00"}},
	}
	exceptions := []domain.Exception{{Date: "2025-03-10", Start: "09:00", End: "12:00"}}

	_ = ResolveEffectiveDaySlots(schedule, exceptions, monday)

	assert.Len(t, schedule[domain.Monday], 2)
}

func TestHasConflict(t *testing.T) {
	bookings := []domain.Booking{{Date: "2025-03-10", Start: "10:00", End: "12:00"}}

	tests := []struct {
		name     string
		start    string
		duration int
		want     bool
	}{
		{name: "ends exactly at booking start", start: "08:00", duration: 120, want: false},
		{name: "starts exactly at booking end", start: "12:00", duration: 60, want: false},
		{name: "overlaps booking start", start: "09:00", duration: 120, want: true},
		{name: "overlaps booking end", start: "11:00", duration: 120, want: true},
		{name: "inside booking", start: "10:30", duration: 30, want: true},
		{name: "contains booking", start: "09:00", duration: 240, want: true},
		{name: "same interval", start: "10:00", duration: 120, want: true},
		{name: "far away", start: "14:00", duration: 120, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasConflict(types.MustTimeString(tt.start), tt.duration, bookings)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHasConflict_SkipsMalformedBookings(t *testing.T) {
	bookings := []domain.Booking{
		{Date: "2025-03-10", Start: "", End: "12:00"},
		{Date: "2025-03-10", Start: "10:00", End: "noon"},
	}

	assert.False(t, HasConflict(types.MustTimeString("10:00"), 120, bookings))
	assert.False(t, HasConflict(types.MustTimeString("10:00"), 120, nil))
}
