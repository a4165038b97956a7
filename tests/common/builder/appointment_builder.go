//go:build unit || e2e

package builder

import (
	"time"

	reqdto "institut-booking/internal/handler/dto/request"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type AppointmentBuilder struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ServiceID       uuid.UUID
	ServiceName     string
	ServiceCategory string
	Date            string
	Time            string
	Status          string
	TotalPriceCents int
}

func NewAppointmentBuilder() *AppointmentBuilder {
	return &AppointmentBuilder{
		ID:              uuid.New(),
		UserID:          uuid.New(),
		ServiceID:       uuid.New(),
		ServiceName:     "Massage relaxant",
		ServiceCategory: "Massages",
		Date:            "2026-10-20",
		Time:            "14:30",
		Status:          "confirmed",
		TotalPriceCents: 7500,
	}
}

func (b *AppointmentBuilder) With(mutate func(*AppointmentBuilder)) *AppointmentBuilder {
	mutate(b)
	return b
}

func (b *AppointmentBuilder) BuildView() *queries.AppointmentView {
	now := time.Now()
	return &queries.AppointmentView{
		ID:              b.ID,
		UserID:          b.UserID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		ServiceCategory: b.ServiceCategory,
		Date:            b.Date,
		Time:            b.Time,
		Status:          b.Status,
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (b *AppointmentBuilder) BuildListItem() *queries.AppointmentListItem {
	return &queries.AppointmentListItem{
		ID:              b.ID,
		ServiceID:       b.ServiceID,
		ServiceName:     b.ServiceName,
		DurationMinutes: 60,
		Date:            b.Date,
		Time:            b.Time,
		Status:          b.Status,
		TotalPriceCents: b.TotalPriceCents,
		CreatedAt:       time.Now(),
	}
}

func (b *AppointmentBuilder) BuildCreateRequestDTO() reqdto.CreateAppointmentRequest {
	return reqdto.CreateAppointmentRequest{
		ServiceID:       b.ServiceID,
		AppointmentDate: b.Date,
		AppointmentTime: b.Time,
		TotalPriceCents: b.TotalPriceCents,
	}
}

// Fluent builder methods
func (b *AppointmentBuilder) WithUserID(id uuid.UUID) *AppointmentBuilder {
	b.UserID = id
	return b
}

func (b *AppointmentBuilder) WithServiceID(id uuid.UUID) *AppointmentBuilder {
	b.ServiceID = id
	return b
}

func (b *AppointmentBuilder) WithSlot(date, slotTime string) *AppointmentBuilder {
	b.Date = date
	b.Time = slotTime
	return b
}

func (b *AppointmentBuilder) WithTotalPriceCents(cents int) *AppointmentBuilder {
	b.TotalPriceCents = cents
	return b
}

func (b *AppointmentBuilder) WithStatus(status string) *AppointmentBuilder {
	b.Status = status
	return b
}

// OrphanedService clears the catalog join fields the way a deleted service
// row would.
func (b *AppointmentBuilder) OrphanedService() *AppointmentBuilder {
	b.ServiceName = queries.FallbackServiceName
	b.ServiceCategory = ""
	return b
}
