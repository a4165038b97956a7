package queries

import (
	"context"

	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogReadStore interface {
	FindActive(ctx context.Context) ([]*ServiceView, error)
	FindByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindAll(ctx context.Context) ([]*ServiceView, error)
}

type CatalogQueries interface {
	// ListActiveServices returns the bookable catalog ordered by category
	// ascending, ties in fetch order.
	ListActiveServices(ctx context.Context) ([]*ServiceView, error)
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	// ListAllServices includes deactivated rows, for the admin panel.
	ListAllServices(ctx context.Context) ([]*ServiceView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) ListActiveServices(ctx context.Context) ([]*ServiceView, error) {
	services, err := q.store.FindActive(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCatalogUnavailable)
	}
	return services, nil
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	service, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotFound
		}
		return nil, errs.Mark(err, errs.ErrCatalogUnavailable)
	}
	return service, nil
}

func (q *catalogQueriesImpl) ListAllServices(ctx context.Context) ([]*ServiceView, error) {
	services, err := q.store.FindAll(ctx)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrCatalogUnavailable)
	}
	return services, nil
}
