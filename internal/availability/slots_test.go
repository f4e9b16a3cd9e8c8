package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func times(ts []types.TimeString) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = t.String()
	}
	return out
}

func TestEnumerateDaySlots(t *testing.T) {
	tests := []struct {
		name     string
		slots    []domain.TimeSlot
		duration int
		want     []string
	}{
		{
			name:     "hourly starts for two hour service",
			slots:    []domain.TimeSlot{{Start: "09:00", End: "13:00"}},
			duration: 120,
			want:     []string{"09:00", "10:00", "11:00"},
		},
		{
			name:     "six hour service keeps hourly granularity",
			slots:    []domain.TimeSlot{{Start: "08:00", End: "17:00"}},
			duration: 360,
			want:     []string{"08:00", "09:00", "10:00", "11:00"},
		},
		{
			name:     "slot exactly as long as the service",
			slots:    []domain.TimeSlot{{Start: "14:00", End: "16:00"}},
			duration: 120,
			want:     []string{"14:00"},
		},
		{
			name:     "slot too short",
			slots:    []domain.TimeSlot{{Start: "14:00", End: "15:30"}},
			duration: 120,
			want:     []string{},
		},
		{
			name:     "half hour start is kept",
			slots:    []domain.TimeSlot{{Start: "09:30", End: "12:30"}},
			duration: 120,
			want:     []string{"09:30", "10:30"},
		},
		{
			name: "malformed slots are skipped",
			slots: []domain.TimeSlot{
				{Start: "", End: "12:00"},
				{Start: "09:00"},
				{Start: "nine", End: "12:00"},
				{Start: "12:00", End: "10:00"},
				{Start: "15:00", End: "17:00"},
			},
			duration: 120,
			want:     []string{"15:00"},
		},
		{
			name: "input order is preserved without dedup",
			slots: []domain.TimeSlot{
				{Start: "13:00", End: "15:00"},
				{Start: "09:00", End: "11:00"},
				{Start: "09:00", End: "11:00"},
			},
			duration: 120,
			want:     []string{"13:00", "09:00", "09:00"},
		},
		{
			name:     "end of day",
			slots:    []domain.TimeSlot{{Start: "20:00", End: "24:00"}},
			duration: 120,
			want:     []string{"20:00", "21:00", "22:00"},
		},
		{
			name:     "non-positive duration",
			slots:    []domain.TimeSlot{{Start: "09:00", End: "17:00"}},
			duration: 0,
			want:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EnumerateDaySlots(tt.slots, tt.duration)
			assert.Equal(t, tt.want, times(got))
		})
	}
}

func TestEnumerateDaySlots_CandidatesStayInsideSlot(t *testing.T) {
	slots := []domain.TimeSlot{
		{Start: "06:15", End: "19:40"},
		{Start: "07:00", End: "08:59"},
		{Start: "10:00", End: "11:00"},
	}

	for _, duration := range []int{30, 60, 90, 120, 240, 360} {
		for _, slot := range slots {
			start := types.MustTimeString(slot.Start).Minutes()
			end := types.MustTimeString(slot.End).Minutes()

			got := EnumerateDaySlots([]domain.TimeSlot{slot}, duration)
			if end-start < duration {
				assert.Empty(t, got, "slot %v duration %d", slot, duration)
				continue
			}

			for i, c := range got {
				assert.GreaterOrEqual(t, c.Minutes(), start)
				assert.LessOrEqual(t, c.Minutes()+duration, end)
				if i > 0 {
					assert.Equal(t, domain.SlotStepMinutes, c.Minutes()-got[i-1].Minutes())
				}
			}
		}
	}
}

func TestUniqueSorted(t *testing.T) {
	in := []types.TimeString{
		types.MustTimeString("13:00"),
		types.MustTimeString("09:00"),
		types.MustTimeString("10:00"),
		types.MustTimeString("09:00"),
	}

	assert.Equal(t, []string{"09:00", "10:00", "13:00"}, times(uniqueSorted(in)))
	assert.Empty(t, uniqueSorted(nil))
}
