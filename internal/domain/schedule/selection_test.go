//go:build unit

package schedule_test

import (
	"context"
	"testing"

	"institut-booking/internal/domain/schedule"
	"institut-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReadySelection(t *testing.T) (*schedule.Selection, []schedule.TimeSlot) {
	t.Helper()

	svc, err := builder.NewServiceBuilder().BuildDomain()
	require.NoError(t, err)

	times, err := schedule.ParseSlotTimes([]string{"09:00", "14:30"})
	require.NoError(t, err)
	date, err := schedule.NewBookingDate("2026-10-20", testNow)
	require.NoError(t, err)

	gen := schedule.NewGenerator(times, staticProvider{available: true})
	slots, err := gen.GenerateSlots(context.Background(), date)
	require.NoError(t, err)

	sel := schedule.NewSelection()
	sel.SelectService(svc)
	require.NoError(t, sel.SelectDate(date, slots))
	return sel, slots
}

func TestSelectionOrdering(t *testing.T) {
	t.Run("happy path walks service, date, slot, confirm", func(t *testing.T) {
		sel, slots := newReadySelection(t)
		assert.Equal(t, schedule.StateSelectingSlot, sel.State())

		require.NoError(t, sel.SelectSlot(slots[1].ID))
		assert.Equal(t, schedule.StateReadyToConfirm, sel.State())
		assert.Equal(t, "14:30", sel.Slot().Time.String())
		assert.Equal(t, 7500, sel.TotalPriceCents())

		require.NoError(t, sel.BeginSubmit())
		sel.Confirm()
		assert.Equal(t, schedule.StateConfirmed, sel.State())
	})

	t.Run("selecting a slot before a date fails", func(t *testing.T) {
		svc, err := builder.NewServiceBuilder().BuildDomain()
		require.NoError(t, err)

		sel := schedule.NewSelection()
		sel.SelectService(svc)
		assert.ErrorIs(t, sel.SelectSlot("2026-10-20-09:00"), schedule.ErrNoDateSelected)
	})

	t.Run("selecting a date before a service fails", func(t *testing.T) {
		sel := schedule.NewSelection()
		date, err := schedule.NewBookingDate("2026-10-20", testNow)
		require.NoError(t, err)
		assert.ErrorIs(t, sel.SelectDate(date, nil), schedule.ErrNoServiceSelected)
	})
}

func TestSelectionResets(t *testing.T) {
	t.Run("re-selecting the service drops date and slot", func(t *testing.T) {
		sel, slots := newReadySelection(t)
		require.NoError(t, sel.SelectSlot(slots[0].ID))

		other, err := builder.NewServiceBuilder().WithName("Soin du visage").BuildDomain()
		require.NoError(t, err)
		sel.SelectService(other)

		assert.Equal(t, schedule.StateSelectingDate, sel.State())
		assert.True(t, sel.Date().IsZero())
		assert.Nil(t, sel.Slot())
		assert.Nil(t, sel.Slots())
	})

	t.Run("re-selecting the date drops the slot", func(t *testing.T) {
		sel, slots := newReadySelection(t)
		require.NoError(t, sel.SelectSlot(slots[0].ID))

		newDate, err := schedule.NewBookingDate("2026-10-21", testNow)
		require.NoError(t, err)
		require.NoError(t, sel.SelectDate(newDate, slots))

		assert.Equal(t, schedule.StateSelectingSlot, sel.State())
		assert.Nil(t, sel.Slot())
	})
}

func TestSelectionSlotRules(t *testing.T) {
	t.Run("unavailable slot is rejected", func(t *testing.T) {
		sel, slots := newReadySelection(t)
		slots[0].Available = false
		require.NoError(t, sel.SelectDate(sel.Date(), slots))

		assert.ErrorIs(t, sel.SelectSlot(slots[0].ID), schedule.ErrSlotUnavailable)
		assert.Equal(t, schedule.StateSelectingSlot, sel.State())
	})

	t.Run("slot outside the generated set is rejected", func(t *testing.T) {
		sel, _ := newReadySelection(t)
		assert.ErrorIs(t, sel.SelectSlot("2026-10-20-23:00"), schedule.ErrSlotNotGenerated)
	})
}

func TestSelectionSubmit(t *testing.T) {
	t.Run("double submit is rejected while in flight", func(t *testing.T) {
		sel, slots := newReadySelection(t)
		require.NoError(t, sel.SelectSlot(slots[0].ID))

		require.NoError(t, sel.BeginSubmit())
		assert.ErrorIs(t, sel.BeginSubmit(), schedule.ErrSubmissionInFlight)
	})

	t.Run("submit before ready is rejected", func(t *testing.T) {
		sel, _ := newReadySelection(t)
		assert.ErrorIs(t, sel.BeginSubmit(), schedule.ErrNotReadyToConfirm)
	})

	t.Run("failure keeps selections and allows retry", func(t *testing.T) {
		sel, slots := newReadySelection(t)
		require.NoError(t, sel.SelectSlot(slots[0].ID))
		require.NoError(t, sel.BeginSubmit())

		sel.Fail("insert failed")
		assert.Equal(t, schedule.StateFailed, sel.State())
		assert.Equal(t, "insert failed", sel.FailureMessage())
		assert.NotNil(t, sel.Slot())

		require.NoError(t, sel.Retry())
		assert.Equal(t, schedule.StateReadyToConfirm, sel.State())
		assert.Empty(t, sel.FailureMessage())

		require.NoError(t, sel.BeginSubmit())
		sel.Confirm()
		assert.Equal(t, schedule.StateConfirmed, sel.State())
	})
}
