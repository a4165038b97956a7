package readstore

import (
	"context"

	"institut-booking/internal/infra"

	"github.com/jackc/pgx/v5/pgxpool"
)

type StatsReadStore struct {
	db *pgxpool.Pool
}

func NewStatsReadStore(db *pgxpool.Pool) *StatsReadStore {
	return &StatsReadStore{db: db}
}

func (r *StatsReadStore) CountAppointmentsOn(ctx context.Context, date string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM appointments
		WHERE appointment_date = $1 AND status <> 'cancelled'
	`, date).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count appointments for date", err)
	}
	return count, nil
}

func (r *StatsReadStore) SumCompletedRevenueCents(ctx context.Context) (int, error) {
	var total int
	err := r.db.QueryRow(ctx, `
		SELECT COALESCE(SUM(total_price_cents), 0) FROM appointments
		WHERE status = 'completed'
	`).Scan(&total)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to sum completed revenue", err)
	}
	return total, nil
}

func (r *StatsReadStore) CountActiveServices(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM services WHERE active = true
	`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count active services", err)
	}
	return count, nil
}

func (r *StatsReadStore) CountClients(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM users WHERE is_admin = false
	`).Scan(&count)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to count clients", err)
	}
	return count, nil
}
