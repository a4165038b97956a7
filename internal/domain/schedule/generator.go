package schedule

import (
	"context"
)

// AvailabilityProvider decides whether a single slot can still be booked.
// Each slot is asked independently. The default implementation is random
// (a placeholder for a real availability query); a calendar-backed
// implementation can replace it without touching the workflow.
type AvailabilityProvider interface {
	Available(ctx context.Context, date BookingDate, t SlotTime) (bool, error)
}

// Generator produces the day's time slots over the canonical business-hours
// set. The set itself is configuration, not logic.
type Generator struct {
	times    []SlotTime
	provider AvailabilityProvider
}

func NewGenerator(times []SlotTime, provider AvailabilityProvider) *Generator {
	return &Generator{
		times:    times,
		provider: provider,
	}
}

// GenerateSlots returns one slot per canonical time, each independently
// marked available or not by the provider.
func (g *Generator) GenerateSlots(ctx context.Context, date BookingDate) ([]TimeSlot, error) {
	slots := make([]TimeSlot, 0, len(g.times))
	for _, t := range g.times {
		available, err := g.provider.Available(ctx, date, t)
		if err != nil {
			return nil, err
		}
		slots = append(slots, TimeSlot{
			ID:        slotID(date, t),
			Date:      date,
			Time:      t,
			Available: available,
		})
	}
	return slots, nil
}

func (g *Generator) Times() []SlotTime {
	out := make([]SlotTime, len(g.times))
	copy(out, g.times)
	return out
}

// ParseSlotTimes converts configured "HH:MM" strings into slot times.
func ParseSlotTimes(raw []string) ([]SlotTime, error) {
	times := make([]SlotTime, 0, len(raw))
	for _, s := range raw {
		t, err := NewSlotTime(s)
		if err != nil {
			return nil, err
		}
		times = append(times, t)
	}
	return times, nil
}
