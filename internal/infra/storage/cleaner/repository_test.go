package cleaner

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

func TestDecodeSchedule(t *testing.T) {
	raw := []byte(`{
		"monday": [{"start": "09:00", "end": "17:00"}],
		"Tuesday": [{"start": "10:00", "end": "12:00"}],
		"funday": [{"start": "10:00", "end": "12:00"}],
		"friday": []
	}`)

	schedule, err := DecodeSchedule(raw)

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{{Start: "09:00", End: "17:00"}}, schedule[domain.Monday])
	assert.Equal(t, []domain.TimeSlot{{Start: "10:00", End: "12:00"}}, schedule[domain.Tuesday])
	assert.NotContains(t, schedule, domain.Weekday("funday"))
	assert.Empty(t, schedule[domain.Friday])
}

func TestDecodeSchedule_KeepsMalformedSlotsForEngine(t *testing.T) {
	schedule, err := DecodeSchedule([]byte(`{"monday": [{"start": "9am"}]}`))

	require.NoError(t, err)
	assert.Equal(t, []domain.TimeSlot{{Start: "9am"}}, schedule[domain.Monday])
}

func TestDecodeSchedule_EmptyAndInvalid(t *testing.T) {
	schedule, err := DecodeSchedule(nil)
	require.NoError(t, err)
	assert.Empty(t, schedule)

	_, err = DecodeSchedule([]byte(`[1, 2]`))
	assert.Error(t, err)
}

func TestNullTimePtr(t *testing.T) {
	assert.Nil(t, nullTimePtr(sql.NullTime{}))

	ts := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	got := nullTimePtr(sql.NullTime{Time: ts, Valid: true})
	require.NotNil(t, got)
	assert.Equal(t, ts, *got)
}
