package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekdayOf_FixedTable(t *testing.T) {
	tests := map[string]Weekday{
		"2025-03-09": Sunday,
		"2025-03-10": Monday,
		"2025-03-11": Tuesday,
		"2025-03-12": Wednesday,
		"2025-03-13": Thursday,
		"2025-03-14": Friday,
		"2025-03-15": Saturday,
	}
	for date, want := range tests {
		d, err := time.Parse(DateFormat, date)
		assert.NoError(t, err)
		assert.Equal(t, want, WeekdayOf(d), date)
	}
}

func TestWeekday_IsValid(t *testing.T) {
	assert.True(t, Monday.IsValid())
	assert.False(t, Weekday("Monday").IsValid())
	assert.False(t, Weekday("").IsValid())
	assert.Len(t, AllWeekdays(), 7)
}

func TestBookingStatus_IsActive(t *testing.T) {
	for _, s := range ActiveStatuses {
		assert.True(t, s.IsActive(), s)
	}
	for _, s := range InactiveStatuses {
		assert.False(t, s.IsActive(), s)
	}
}

func TestBookingsByDate(t *testing.T) {
	byDate := BookingsByDate([]Booking{
		{ID: 1, Date: "2025-03-10"},
		{ID: 2, Date: "2025-03-11"},
		{ID: 3, Date: "2025-03-10"},
	})

	assert.Len(t, byDate["2025-03-10"], 2)
	assert.Len(t, byDate["2025-03-11"], 1)
	assert.Empty(t, byDate["2025-03-12"])
}

func TestNewBookingWindow(t *testing.T) {
	from := time.Date(2025, 3, 10, 16, 45, 0, 0, time.UTC)

	w := NewBookingWindow(from, 90)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), w.From)
	assert.Equal(t, time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC), w.To)

	single := NewBookingWindow(from, 0)
	assert.Equal(t, single.From, single.To)
}

func TestServiceTier(t *testing.T) {
	assert.Equal(t, 120, TierStandard.DurationMinutes())
	assert.Equal(t, 360, TierDeep.DurationMinutes())
	assert.Equal(t, "next_available_2h", TierStandard.Column())
	assert.Equal(t, "next_available_6h", TierDeep.Column())
	assert.False(t, ServiceTier("express").IsValid())

	var n NextAvailability
	at := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	n.Set(TierDeep, &at)
	assert.Nil(t, n.Get(TierStandard))
	assert.Equal(t, &at, n.Get(TierDeep))
}
