package queries

import (
	"context"

	"institut-booking/internal/domain/schedule"
	"institut-booking/internal/pkg/clock"
	"institut-booking/internal/pkg/errs"
)

type SlotQueries interface {
	// ListSlots generates the day's slots for display. Availability is
	// advisory only; no lock is taken.
	ListSlots(ctx context.Context, date string) ([]*SlotView, error)
}

type slotQueriesImpl struct {
	generator *schedule.Generator
	clock     clock.Clock
}

func NewSlotQueries(generator *schedule.Generator, clk clock.Clock) SlotQueries {
	return &slotQueriesImpl{
		generator: generator,
		clock:     clk,
	}
}

func (q *slotQueriesImpl) ListSlots(ctx context.Context, date string) ([]*SlotView, error) {
	bookingDate, err := schedule.NewBookingDate(date, q.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidBookingDate)
	}

	slots, err := q.generator.GenerateSlots(ctx, bookingDate)
	if err != nil {
		return nil, errs.Wrap(err, "failed to generate slots")
	}

	views := make([]*SlotView, len(slots))
	for i, s := range slots {
		views[i] = &SlotView{
			ID:        s.ID,
			Date:      s.Date.String(),
			Time:      s.Time.String(),
			Available: s.Available,
		}
	}
	return views, nil
}
