//go:build unit

package appointment_test

import (
	"testing"
	"time"

	"institut-booking/internal/domain/appointment"
	"institut-booking/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 10, 0, 0, 0, time.UTC)

func validSlot(t *testing.T) (schedule.BookingDate, schedule.SlotTime) {
	t.Helper()
	date, err := schedule.NewBookingDate("2026-10-20", testNow)
	require.NoError(t, err)
	slotTime, err := schedule.NewSlotTime("14:30")
	require.NoError(t, err)
	return date, slotTime
}

func TestNewAppointment(t *testing.T) {
	date, slotTime := validSlot(t)
	price, err := appointment.NewMoney(7500)
	require.NoError(t, err)

	t.Run("basic success case", func(t *testing.T) {
		appt, err := appointment.NewAppointment(uuid.New(), uuid.New(), date, slotTime, price, testNow)
		require.NoError(t, err)
		require.NotNil(t, appt)

		assert.NotEqual(t, uuid.Nil, appt.ID())
		assert.Equal(t, appointment.StatusConfirmed, appt.Status())
		assert.True(t, appt.IsConfirmed())
		assert.Equal(t, 7500, appt.TotalPrice().Cents())
		assert.Equal(t, 75.0, appt.TotalPrice().Euros())
		assert.Equal(t, testNow, appt.CreatedAt())
		assert.Equal(t, testNow, appt.UpdatedAt())
	})

	t.Run("missing user", func(t *testing.T) {
		_, err := appointment.NewAppointment(uuid.Nil, uuid.New(), date, slotTime, price, testNow)
		assert.ErrorIs(t, err, appointment.ErrMissingUser)
	})

	t.Run("missing service", func(t *testing.T) {
		_, err := appointment.NewAppointment(uuid.New(), uuid.Nil, date, slotTime, price, testNow)
		assert.ErrorIs(t, err, appointment.ErrMissingService)
	})

	t.Run("missing slot", func(t *testing.T) {
		_, err := appointment.NewAppointment(uuid.New(), uuid.New(), schedule.BookingDate{}, slotTime, price, testNow)
		assert.ErrorIs(t, err, appointment.ErrMissingSlot)

		_, err = appointment.NewAppointment(uuid.New(), uuid.New(), date, schedule.SlotTime{}, price, testNow)
		assert.ErrorIs(t, err, appointment.ErrMissingSlot)
	})
}

func TestMoney(t *testing.T) {
	t.Run("negative amount rejected", func(t *testing.T) {
		_, err := appointment.NewMoney(-1)
		assert.ErrorIs(t, err, appointment.ErrNegativeAmount)
	})

	t.Run("euros conversion", func(t *testing.T) {
		m, err := appointment.NewMoney(9550)
		require.NoError(t, err)
		assert.Equal(t, 95.5, m.Euros())
	})
}
