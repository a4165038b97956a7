package bootstrap

import (
	"fmt"
	"time"

	"institut-booking/internal/domain/schedule"
	"institut-booking/internal/infra/availability"
	"institut-booking/internal/infra/readstore"
	"institut-booking/internal/pkg/config"

	"go.uber.org/fx"
)

// BookingModule wires the two slot generators: the display generator backs
// GET /slots, the confirm generator backs the booking submission. In
// "random" mode displayed availability is advisory, so the confirm side is
// always-available; in "calendar" mode both sides consult the appointment
// calendar and a booked slot is actually unbookable.
var BookingModule = fx.Module("booking",
	fx.Provide(
		NewGenerators,
	),
)

type Generators struct {
	fx.Out

	Display *schedule.Generator `name:"display_slots"`
	Confirm *schedule.Generator `name:"confirm_slots"`
}

func NewGenerators(cfg config.Config, appointments *readstore.AppointmentReadStore) (Generators, error) {
	times, err := schedule.ParseSlotTimes(cfg.Booking.SlotTimes)
	if err != nil {
		return Generators{}, fmt.Errorf("invalid BOOKING_SLOT_TIMES: %w", err)
	}

	var display, confirm schedule.AvailabilityProvider
	switch cfg.Booking.AvailabilityMode {
	case "calendar":
		calendar := availability.NewCalendarProvider(appointments)
		display = calendar
		confirm = calendar
	case "random":
		display = availability.NewRandomProvider(cfg.Booking.AvailabilityRate, time.Now().UnixNano())
		confirm = availability.NewAlwaysAvailableProvider()
	default:
		return Generators{}, fmt.Errorf("unknown BOOKING_AVAILABILITY_MODE %q", cfg.Booking.AvailabilityMode)
	}

	return Generators{
		Display: schedule.NewGenerator(times, display),
		Confirm: schedule.NewGenerator(times, confirm),
	}, nil
}
