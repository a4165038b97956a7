//go:build unit

package availability_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"institut-booking/internal/domain/schedule"
	"institut-booking/internal/infra/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 10, 15, 9, 0, 0, 0, time.UTC)

func mustDate(t *testing.T) schedule.BookingDate {
	t.Helper()
	d, err := schedule.NewBookingDate("2026-10-20", testNow)
	require.NoError(t, err)
	return d
}

func mustTime(t *testing.T) schedule.SlotTime {
	t.Helper()
	st, err := schedule.NewSlotTime("14:30")
	require.NoError(t, err)
	return st
}

func TestRandomProvider_RateBounds(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t)
	slot := mustTime(t)

	t.Run("rate 1 marks every slot available", func(t *testing.T) {
		p := availability.NewRandomProvider(1.0, 42)
		for range 50 {
			ok, err := p.Available(ctx, date, slot)
			require.NoError(t, err)
			assert.True(t, ok)
		}
	})

	t.Run("rate 0 marks every slot unavailable", func(t *testing.T) {
		p := availability.NewRandomProvider(0.0, 42)
		for range 50 {
			ok, err := p.Available(ctx, date, slot)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	})
}

func TestRandomProvider_DeterministicWithSeed(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t)
	slot := mustTime(t)

	draw := func(seed int64) []bool {
		p := availability.NewRandomProvider(0.7, seed)
		out := make([]bool, 20)
		for i := range out {
			ok, err := p.Available(ctx, date, slot)
			require.NoError(t, err)
			out[i] = ok
		}
		return out
	}

	assert.Equal(t, draw(42), draw(42))
}

func TestRandomProvider_RateIsApproximate(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t)
	slot := mustTime(t)

	p := availability.NewRandomProvider(0.7, 1)
	available := 0
	const draws = 2000
	for range draws {
		ok, err := p.Available(ctx, date, slot)
		require.NoError(t, err)
		if ok {
			available++
		}
	}

	ratio := float64(available) / float64(draws)
	assert.InDelta(t, 0.7, ratio, 0.05)
}

type stubChecker struct {
	occupied map[string]bool
	err      error
}

func (s *stubChecker) HasConfirmedAt(_ context.Context, date, slotTime string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	return s.occupied[date+"-"+slotTime], nil
}

func TestCalendarProvider(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t)
	slot := mustTime(t)

	t.Run("free slot is available", func(t *testing.T) {
		p := availability.NewCalendarProvider(&stubChecker{occupied: map[string]bool{}})
		ok, err := p.Available(ctx, date, slot)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("confirmed appointment blocks the slot", func(t *testing.T) {
		p := availability.NewCalendarProvider(&stubChecker{occupied: map[string]bool{"2026-10-20-14:30": true}})
		ok, err := p.Available(ctx, date, slot)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		p := availability.NewCalendarProvider(&stubChecker{err: errors.New("connection reset")})
		_, err := p.Available(ctx, date, slot)
		assert.Error(t, err)
	})
}

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()
	date := mustDate(t)
	slot := mustTime(t)

	ok, err := availability.NewAlwaysAvailableProvider().Available(ctx, date, slot)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = availability.NewNeverAvailableProvider().Available(ctx, date, slot)
	require.NoError(t, err)
	assert.False(t, ok)
}
