package repository

import (
	"context"

	"institut-booking/internal/domain/appointment"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AppointmentRepository struct{}

func NewAppointmentRepository() *AppointmentRepository {
	return &AppointmentRepository{}
}

// Create runs inside the caller's transaction so the appointment insert and
// the idempotency status update commit or roll back together.
func (r *AppointmentRepository) Create(ctx context.Context, tx pgx.Tx, appt *appointment.Appointment) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO appointments (id, user_id, service_id, appointment_date, appointment_time, status, total_price_cents, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`,
		appt.ID(),
		appt.UserID(),
		appt.ServiceID(),
		appt.Date().String(),
		appt.Time().String(),
		string(appt.Status()),
		appt.TotalPrice().Cents(),
		appt.CreatedAt(),
		appt.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert appointment", err)
	}
	return id, nil
}
