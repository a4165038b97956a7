package availability

import (
	"context"

	"institut-booking/internal/domain/schedule"
)

// SlotOccupancyChecker reports whether a confirmed appointment already
// holds a slot. Implemented by the appointment read store.
type SlotOccupancyChecker interface {
	HasConfirmedAt(ctx context.Context, date, slotTime string) (bool, error)
}

// CalendarProvider marks a slot available only when no confirmed
// appointment occupies it. Used in "calendar" mode for both display and
// confirmation, making a booked slot actually unbookable.
type CalendarProvider struct {
	checker SlotOccupancyChecker
}

func NewCalendarProvider(checker SlotOccupancyChecker) *CalendarProvider {
	return &CalendarProvider{checker: checker}
}

func (p *CalendarProvider) Available(ctx context.Context, date schedule.BookingDate, t schedule.SlotTime) (bool, error) {
	occupied, err := p.checker.HasConfirmedAt(ctx, date.String(), t.String())
	if err != nil {
		return false, err
	}
	return !occupied, nil
}
