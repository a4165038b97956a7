//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"institut-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func TestNewBookingDate(t *testing.T) {
	t.Run("accepts today and future dates", func(t *testing.T) {
		for _, s := range []string{"2026-10-15", "2026-10-16", "2027-01-01"} {
			d, err := schedule.NewBookingDate(s, testNow)
			require.NoError(t, err, s)
			assert.Equal(t, s, d.String())
		}
	})

	t.Run("rejects past dates", func(t *testing.T) {
		_, err := schedule.NewBookingDate("2026-10-14", testNow)
		assert.ErrorIs(t, err, schedule.ErrDateInPast)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		for _, s := range []string{"", "20261015", "2026-13-01", "15/10/2026"} {
			_, err := schedule.NewBookingDate(s, testNow)
			assert.ErrorIs(t, err, schedule.ErrInvalidDate, s)
		}
	})

	t.Run("boundary follows the local calendar day", func(t *testing.T) {
		// Shortly after midnight east of UTC: 2026-10-15 is already over
		// locally even though it is still 2026-10-15 in UTC.
		eastNow := time.Date(2026, 10, 16, 0, 30, 0, 0, time.FixedZone("CEST", 2*60*60))
		_, err := schedule.NewBookingDate("2026-10-15", eastNow)
		assert.ErrorIs(t, err, schedule.ErrDateInPast)

		// Late evening west of UTC: 2026-10-15 is still today locally even
		// though UTC has rolled over to 2026-10-16.
		westNow := time.Date(2026, 10, 15, 20, 30, 0, 0, time.FixedZone("EST", -5*60*60))
		d, err := schedule.NewBookingDate("2026-10-15", westNow)
		require.NoError(t, err)
		assert.Equal(t, "2026-10-15", d.String())
	})
}

func TestNewSlotTime(t *testing.T) {
	t.Run("accepts HH:MM", func(t *testing.T) {
		st, err := schedule.NewSlotTime("14:30")
		require.NoError(t, err)
		assert.Equal(t, "14:30", st.String())
	})

	t.Run("rejects malformed times", func(t *testing.T) {
		for _, s := range []string{"", "25:00", "9h30", "14:30:00"} {
			_, err := schedule.NewSlotTime(s)
			assert.ErrorIs(t, err, schedule.ErrInvalidSlotTime, s)
		}
	})
}

func TestParseSlotTimes(t *testing.T) {
	times, err := schedule.ParseSlotTimes([]string{"09:00", "09:30", "14:00"})
	require.NoError(t, err)
	assert.Len(t, times, 3)

	_, err = schedule.ParseSlotTimes([]string{"09:00", "bad"})
	assert.ErrorIs(t, err, schedule.ErrInvalidSlotTime)
}
