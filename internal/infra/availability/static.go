package availability

import (
	"context"

	"institut-booking/internal/domain/schedule"
)

// StaticProvider answers the same for every slot. The always-available
// variant backs confirm-time checks in random mode, where the displayed
// availability is advisory and a submission is never rejected for a value
// that was only ever a random draw.
type StaticProvider struct {
	available bool
}

func NewAlwaysAvailableProvider() *StaticProvider {
	return &StaticProvider{available: true}
}

func NewNeverAvailableProvider() *StaticProvider {
	return &StaticProvider{available: false}
}

func (p *StaticProvider) Available(_ context.Context, _ schedule.BookingDate, _ schedule.SlotTime) (bool, error) {
	return p.available, nil
}
