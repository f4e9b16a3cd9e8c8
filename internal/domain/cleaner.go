package domain

import "time"

// Weekday canonical lowercase English weekday name used as a WeeklySchedule key
type Weekday string

const (
	Sunday    Weekday = "sunday"
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
)

// weekdayNames is indexed by time.Weekday, so lookups never depend on the process locale
var weekdayNames = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

// WeekdayOf returns the schedule key for the calendar date of t
func WeekdayOf(t time.Time) Weekday {
	return weekdayNames[t.Weekday()]
}

// AllWeekdays returns the seven weekday keys starting from Sunday
func AllWeekdays() []Weekday {
	out := make([]Weekday, len(weekdayNames))
	copy(out, weekdayNames[:])
	return out
}

// IsValid reports whether w is one of the seven canonical names
func (w Weekday) IsValid() bool {
	for _, name := range weekdayNames {
		if name == w {
			return true
		}
	}
	return false
}

// TimeSlot is a local time-of-day range, "HH:MM" strings without a time zone.
// Values are kept raw so malformed slots reach the engine and are skipped there.
type TimeSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// WeeklySchedule maps a weekday to its recurring slots
type WeeklySchedule map[Weekday][]TimeSlot

// Exception removes a weekly slot with the same start and end on one calendar date
type Exception struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Start string `json:"start"`
	End   string `json:"end"`
}

// Slot returns the time range of the exception
func (e Exception) Slot() TimeSlot {
	return TimeSlot{Start: e.Start, End: e.End}
}

// Cleaner is the engine input aggregate: one weekly schedule plus its exceptions
type Cleaner struct {
	ID         int64
	Name       string
	Schedule   WeeklySchedule
	Exceptions []Exception

	NextAvailability NextAvailability

	CreatedAt time.Time
	UpdatedAt time.Time
}
