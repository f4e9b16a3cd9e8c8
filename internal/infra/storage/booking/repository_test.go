package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

type fakeRow struct {
	values []interface{}
	err    error
}

func (r fakeRow) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *int64:
			*p = r.values[i].(int64)
		case *string:
			*p = r.values[i].(string)
		case *time.Time:
			*p = r.values[i].(time.Time)
		}
	}
	return nil
}

func TestScanBooking(t *testing.T) {
	row := fakeRow{values: []interface{}{
		int64(15), int64(7), time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC), "10:00", "12:00", "confirmed",
	}}

	booking, err := scanBooking(row)

	require.NoError(t, err)
	assert.Equal(t, &domain.Booking{
		ID:        15,
		CleanerID: 7,
		Date:      "2025-03-12",
		Start:     "10:00",
		End:       "12:00",
		Status:    domain.StatusConfirmed,
	}, booking)
}

func TestScanBooking_Error(t *testing.T) {
	_, err := scanBooking(fakeRow{err: errors.New("scan failed")})
	assert.Error(t, err)
}
