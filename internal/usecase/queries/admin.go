package queries

import (
	"context"

	"institut-booking/internal/pkg/clock"
	"institut-booking/internal/pkg/errs"
)

type StatsReadStore interface {
	CountAppointmentsOn(ctx context.Context, date string) (int, error)
	SumCompletedRevenueCents(ctx context.Context) (int, error)
	CountActiveServices(ctx context.Context) (int, error)
	CountClients(ctx context.Context) (int, error)
}

// AdminQueries backs the admin dashboard header figures.
type AdminQueries interface {
	GetStats(ctx context.Context) (*AdminStatsView, error)
}

type adminQueriesImpl struct {
	store StatsReadStore
	clock clock.Clock
}

func NewAdminQueries(store StatsReadStore, clk clock.Clock) AdminQueries {
	return &adminQueriesImpl{store: store, clock: clk}
}

func (q *adminQueriesImpl) GetStats(ctx context.Context) (*AdminStatsView, error) {
	today := q.clock.Now().Format("2006-01-02")

	todayCount, err := q.store.CountAppointmentsOn(ctx, today)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count today's appointments")
	}

	revenue, err := q.store.SumCompletedRevenueCents(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to sum completed revenue")
	}

	activeServices, err := q.store.CountActiveServices(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count active services")
	}

	clients, err := q.store.CountClients(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "failed to count clients")
	}

	return &AdminStatsView{
		TodayAppointments:     todayCount,
		CompletedRevenueCents: revenue,
		ActiveServices:        activeServices,
		Clients:               clients,
	}, nil
}
