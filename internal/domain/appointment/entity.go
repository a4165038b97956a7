package appointment

import (
	"errors"
	"time"

	"institut-booking/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrMissingUser    = errors.New("appointment requires an authenticated user")
	ErrMissingService = errors.New("appointment requires a service")
	ErrMissingSlot    = errors.New("appointment requires a date and time")
)

// Appointment is the booked record. Status transitions after creation are
// external (staff back-office); this side only ever writes confirmed rows.
type Appointment struct {
	id         uuid.UUID
	userID     uuid.UUID
	serviceID  uuid.UUID
	date       schedule.BookingDate
	time       schedule.SlotTime
	status     Status
	totalPrice Money
	createdAt  time.Time
	updatedAt  time.Time
}

func NewAppointment(
	userID, serviceID uuid.UUID,
	date schedule.BookingDate,
	slotTime schedule.SlotTime,
	totalPrice Money,
	now time.Time,
) (*Appointment, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if serviceID == uuid.Nil {
		return nil, ErrMissingService
	}
	if date.IsZero() || slotTime.IsZero() {
		return nil, ErrMissingSlot
	}

	return &Appointment{
		id:         uuid.New(),
		userID:     userID,
		serviceID:  serviceID,
		date:       date,
		time:       slotTime,
		status:     StatusConfirmed,
		totalPrice: totalPrice,
		createdAt:  now,
		updatedAt:  now,
	}, nil
}

func ReconstructAppointment(
	id, userID, serviceID uuid.UUID,
	date schedule.BookingDate,
	slotTime schedule.SlotTime,
	status Status,
	totalPrice Money,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:         id,
		userID:     userID,
		serviceID:  serviceID,
		date:       date,
		time:       slotTime,
		status:     status,
		totalPrice: totalPrice,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID              { return a.id }
func (a *Appointment) UserID() uuid.UUID          { return a.userID }
func (a *Appointment) ServiceID() uuid.UUID       { return a.serviceID }
func (a *Appointment) Date() schedule.BookingDate { return a.date }
func (a *Appointment) Time() schedule.SlotTime    { return a.time }
func (a *Appointment) Status() Status             { return a.status }
func (a *Appointment) TotalPrice() Money          { return a.totalPrice }
func (a *Appointment) CreatedAt() time.Time       { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time       { return a.updatedAt }

func (a *Appointment) IsConfirmed() bool { return a.status == StatusConfirmed }
func (a *Appointment) IsCompleted() bool { return a.status == StatusCompleted }
