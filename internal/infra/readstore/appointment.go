package readstore

import (
	"context"
	"time"

	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/pgconv"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AppointmentReadStore struct {
	db *pgxpool.Pool
}

func NewAppointmentReadStore(db *pgxpool.Pool) *AppointmentReadStore {
	return &AppointmentReadStore{db: db}
}

// The services join is a LEFT JOIN on purpose: an appointment may outlive
// its service, in which case the display degrades to a fallback label.
func (r *AppointmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AppointmentView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT a.id, a.user_id, a.service_id, s.name, s.category,
			a.appointment_date, a.appointment_time, a.status, a.total_price_cents,
			a.created_at, a.updated_at
		FROM appointments a
		LEFT JOIN services s ON s.id = a.service_id
		WHERE a.id = $1
	`, id)

	var v queries.AppointmentView
	var date time.Time
	var serviceName, serviceCategory pgtype.Text

	err := row.Scan(
		&v.ID,
		&v.UserID,
		&v.ServiceID,
		&serviceName,
		&serviceCategory,
		&date,
		&v.Time,
		&v.Status,
		&v.TotalPriceCents,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("appointment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find appointment by ID", err)
	}

	v.Date = date.Format("2006-01-02")
	v.ServiceName = serviceNameOrFallback(serviceName)
	if serviceCategory.Valid {
		v.ServiceCategory = serviceCategory.String
	}

	return &v, nil
}

func (r *AppointmentReadStore) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*queries.AppointmentListItem, error) {
	rows, err := r.db.Query(ctx, `
		SELECT a.id, a.service_id, s.name, s.duration_minutes,
			a.appointment_date, a.appointment_time, a.status, a.total_price_cents,
			a.created_at
		FROM appointments a
		LEFT JOIN services s ON s.id = a.service_id
		WHERE a.user_id = $1
		ORDER BY a.appointment_date DESC, a.appointment_time DESC
	`, userID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list user appointments", err)
	}
	defer rows.Close()

	var items []*queries.AppointmentListItem
	for rows.Next() {
		var item queries.AppointmentListItem
		var date time.Time
		var serviceName pgtype.Text
		var durationMinutes pgtype.Int4

		err := rows.Scan(
			&item.ID,
			&item.ServiceID,
			&serviceName,
			&durationMinutes,
			&date,
			&item.Time,
			&item.Status,
			&item.TotalPriceCents,
			&item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan appointment row", err)
		}

		item.Date = date.Format("2006-01-02")
		item.ServiceName = serviceNameOrFallback(serviceName)
		if durationMinutes.Valid {
			item.DurationMinutes = int(durationMinutes.Int32)
		}
		items = append(items, &item)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate appointment rows", rows.Err())
	}

	return items, nil
}

// HasConfirmedAt reports whether a confirmed appointment already occupies
// the given date and time. Used by the calendar availability provider.
func (r *AppointmentReadStore) HasConfirmedAt(ctx context.Context, date, slotTime string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM appointments
			WHERE appointment_date = $1
				AND appointment_time = $2
				AND status = 'confirmed'
		)
	`, date, slotTime).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check slot occupancy", err)
	}
	return exists, nil
}

func serviceNameOrFallback(name pgtype.Text) string {
	if name.Valid {
		return name.String
	}
	return queries.FallbackServiceName
}
