//go:build unit

package schedule_test

import (
	"context"
	"testing"

	"institut-booking/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticProvider struct{ available bool }

func (p staticProvider) Available(context.Context, schedule.BookingDate, schedule.SlotTime) (bool, error) {
	return p.available, nil
}

var canonicalTimes = []string{
	"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
	"14:00", "14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30",
}

func TestGenerateSlots(t *testing.T) {
	times, err := schedule.ParseSlotTimes(canonicalTimes)
	require.NoError(t, err)

	date, err := schedule.NewBookingDate("2026-10-20", testNow)
	require.NoError(t, err)

	t.Run("one slot per canonical time, in order", func(t *testing.T) {
		gen := schedule.NewGenerator(times, staticProvider{available: true})
		slots, err := gen.GenerateSlots(context.Background(), date)
		require.NoError(t, err)
		require.Len(t, slots, len(canonicalTimes))

		for i, slot := range slots {
			assert.Equal(t, canonicalTimes[i], slot.Time.String())
			assert.Equal(t, "2026-10-20", slot.Date.String())
			assert.Equal(t, "2026-10-20-"+canonicalTimes[i], slot.ID)
			assert.True(t, slot.Available)
		}
	})

	t.Run("unavailable provider marks every slot unavailable but keeps the set", func(t *testing.T) {
		gen := schedule.NewGenerator(times, staticProvider{available: false})
		slots, err := gen.GenerateSlots(context.Background(), date)
		require.NoError(t, err)
		require.Len(t, slots, len(canonicalTimes))
		for _, slot := range slots {
			assert.False(t, slot.Available)
		}
	})

	t.Run("regeneration yields fresh slot values", func(t *testing.T) {
		gen := schedule.NewGenerator(times, staticProvider{available: true})
		first, err := gen.GenerateSlots(context.Background(), date)
		require.NoError(t, err)
		second, err := gen.GenerateSlots(context.Background(), date)
		require.NoError(t, err)

		// Same IDs, but independent slices: mutating one never leaks into
		// a later generation.
		first[0].Available = false
		assert.True(t, second[0].Available)
	})
}
