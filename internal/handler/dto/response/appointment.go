package response

import (
	"time"

	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type AppointmentResponse struct {
	ID              uuid.UUID        `json:"id"`
	UserID          uuid.UUID        `json:"userId"`
	ServiceID       uuid.UUID        `json:"serviceId"`
	ServiceName     string           `json:"serviceName"`
	ServiceCategory string           `json:"serviceCategory"`
	Date            string           `json:"appointmentDate"`
	Time            string           `json:"appointmentTime"`
	Status          string           `json:"status"`
	TotalPriceCents int              `json:"totalPriceCents"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
	Service         *ServiceResponse `json:"service,omitempty"`
}

type AppointmentListResponse struct {
	ID              uuid.UUID `json:"id"`
	ServiceID       uuid.UUID `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	DurationMinutes int       `json:"durationMinutes"`
	Date            string    `json:"appointmentDate"`
	Time            string    `json:"appointmentTime"`
	Status          string    `json:"status"`
	TotalPriceCents int       `json:"totalPriceCents"`
	CreatedAt       time.Time `json:"createdAt"`
}

func FromAppointmentView(view *queries.AppointmentView, service *queries.ServiceView) *AppointmentResponse {
	var resp AppointmentResponse
	_ = copier.Copy(&resp, view)
	if service != nil {
		resp.Service = FromServiceView(service)
	}
	return &resp
}

func FromAppointmentListItems(items []*queries.AppointmentListItem) []*AppointmentListResponse {
	out := make([]*AppointmentListResponse, len(items))
	for i, item := range items {
		var resp AppointmentListResponse
		_ = copier.Copy(&resp, item)
		out[i] = &resp
	}
	return out
}
