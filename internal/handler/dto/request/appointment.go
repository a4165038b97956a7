package request

import (
	"institut-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// CreateAppointmentRequest carries the client's confirmed selection. The
// total is what the client displayed to the user; the server recomputes it
// from the catalog and rejects a mismatch.
type CreateAppointmentRequest struct {
	ServiceID       uuid.UUID `json:"service_id" binding:"required"`
	AppointmentDate string    `json:"appointment_date" binding:"required"`
	AppointmentTime string    `json:"appointment_time" binding:"required"`
	TotalPriceCents int       `json:"total_price_cents" binding:"required,min=0"`
}

func (r CreateAppointmentRequest) ToInput() commands.SubmitBookingInput {
	return commands.SubmitBookingInput{
		ServiceID:       r.ServiceID,
		Date:            r.AppointmentDate,
		Time:            r.AppointmentTime,
		TotalPriceCents: r.TotalPriceCents,
	}
}
