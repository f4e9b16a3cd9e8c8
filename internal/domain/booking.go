package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending             BookingStatus = "pending"
	StatusConfirmed           BookingStatus = "confirmed"
	StatusInProgress          BookingStatus = "in_progress"
	StatusCompleted           BookingStatus = "completed"
	StatusCancelledByCustomer BookingStatus = "cancelled_by_customer"
	StatusCancelledByCleaner  BookingStatus = "cancelled_by_cleaner"
	StatusNoShow              BookingStatus = "no_show"
)

// IsActive returns true if a booking with this status still occupies the cleaner's time
func (s BookingStatus) IsActive() bool {
	for _, active := range ActiveStatuses {
		if s == active {
			return true
		}
	}
	return false
}

// Booking is a reservation as consumed by the availability engine.
// Every booking passed to the engine is treated as an unconditional conflict;
// status filtering happens in storage.
type Booking struct {
	ID        int64
	CleanerID int64
	Date      string // YYYY-MM-DD
	Start     string // HH:MM
	End       string // HH:MM
	Status    BookingStatus
}

// BookingsByDate indexes bookings by calendar date so a computation filters in memory
// instead of querying storage once per day.
func BookingsByDate(bookings []Booking) map[string][]Booking {
	byDate := make(map[string][]Booking)
	for _, b := range bookings {
		byDate[b.Date] = append(byDate[b.Date], b)
	}
	return byDate
}

// BookingWindow is the date range [From, To] of bookings needed for one computation
type BookingWindow struct {
	From time.Time
	To   time.Time
}

// NewBookingWindow covers horizonDays calendar days starting at the date of from
func NewBookingWindow(from time.Time, horizonDays int) BookingWindow {
	start := DateOnly(from)
	if horizonDays < 1 {
		horizonDays = 1
	}
	return BookingWindow{From: start, To: start.AddDate(0, 0, horizonDays-1)}
}
