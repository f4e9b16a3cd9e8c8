package domain

import "time"

// Engine defaults
const (
	DefaultHorizonDays = 90
	DefaultPageSize    = 5
	SlotStepMinutes    = 60
	MaxHorizonDays     = 365
)

// Business validation constants
const (
	MinDurationMinutes = 30
	MaxDurationMinutes = 720 // 12 hours
	MaxRankingLimit    = 100
	DefaultRankLimit   = 10
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses bookings in these statuses block availability
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusInProgress,
}

// InactiveStatuses bookings in these statuses no longer block availability
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelledByCustomer,
	StatusCancelledByCleaner,
	StatusNoShow,
}

// DateOnly drops the time of day, keeping the calendar date in t's location
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// FormatDate formats the calendar date of t as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}
