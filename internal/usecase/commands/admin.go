package commands

import (
	"context"

	"institut-booking/internal/domain/catalog"
	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/clock"
	"institut-booking/internal/pkg/errs"
	"institut-booking/internal/pkg/patch"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ServiceRepository interface {
	Create(ctx context.Context, svc *catalog.Service) (uuid.UUID, error)
	Update(ctx context.Context, svc *catalog.Service) error
	// Delete removes the row entirely; history joins fall back to a
	// placeholder label for orphaned appointments.
	Delete(ctx context.Context, id uuid.UUID) error
}

// CatalogCache invalidation hook; a no-op when caching is disabled.
type CatalogCache interface {
	Invalidate(ctx context.Context) error
}

type CreateServiceInput struct {
	Name            string
	DurationMinutes int
	PriceCents      int
	Description     string
	Category        string
}

type UpdateServiceInput struct {
	Name            *string
	DurationMinutes *int
	PriceCents      *int
	Description     *string
	Category        *string
	Active          *bool
}

// AdminCommands is the admin panel's catalog CRUD. Every write returns the
// refreshed collection state instead of mutating any shared list in place.
type AdminCommands interface {
	CreateService(ctx context.Context, input CreateServiceInput) (*queries.ServiceView, []*queries.ServiceView, error)
	UpdateService(ctx context.Context, id uuid.UUID, input UpdateServiceInput) (*queries.ServiceView, []*queries.ServiceView, error)
	DeleteService(ctx context.Context, id uuid.UUID, hard bool) ([]*queries.ServiceView, error)
}

type adminCommandsImpl struct {
	serviceRepo    ServiceRepository
	catalogQueries queries.CatalogQueries
	cache          CatalogCache
	clock          clock.Clock
}

func NewAdminCommands(serviceRepo ServiceRepository, catalogQueries queries.CatalogQueries, cache CatalogCache, clk clock.Clock) AdminCommands {
	return &adminCommandsImpl{
		serviceRepo:    serviceRepo,
		catalogQueries: catalogQueries,
		cache:          cache,
		clock:          clk,
	}
}

func (a *adminCommandsImpl) CreateService(ctx context.Context, input CreateServiceInput) (*queries.ServiceView, []*queries.ServiceView, error) {
	svc, err := catalog.NewService(input.Name, input.DurationMinutes, input.PriceCents, input.Description, input.Category, a.clock.Now())
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	id, err := a.serviceRepo.Create(ctx, svc)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return a.readBack(ctx, id)
}

func (a *adminCommandsImpl) UpdateService(ctx context.Context, id uuid.UUID, input UpdateServiceInput) (*queries.ServiceView, []*queries.ServiceView, error) {
	current, err := a.catalogQueries.GetService(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	svc := catalog.ReconstructService(
		current.ID,
		current.Name,
		current.DurationMinutes,
		current.PriceCents,
		current.Description,
		current.Category,
		patch.Coalesce(input.Active, current.Active),
		current.CreatedAt,
		current.UpdatedAt,
	)

	err = svc.Update(
		patch.Coalesce(input.Name, current.Name),
		patch.Coalesce(input.DurationMinutes, current.DurationMinutes),
		patch.Coalesce(input.PriceCents, current.PriceCents),
		patch.Coalesce(input.Description, current.Description),
		patch.Coalesce(input.Category, current.Category),
	)
	if err != nil {
		return nil, nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	if err := a.serviceRepo.Update(ctx, svc); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, nil, errs.ErrServiceNotFound
		}
		return nil, nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return a.readBack(ctx, id)
}

func (a *adminCommandsImpl) DeleteService(ctx context.Context, id uuid.UUID, hard bool) ([]*queries.ServiceView, error) {
	if hard {
		if err := a.serviceRepo.Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrServiceNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	} else {
		// Soft delete keeps history joins intact.
		inactive := false
		if _, _, err := a.UpdateService(ctx, id, UpdateServiceInput{Active: &inactive}); err != nil {
			return nil, err
		}
	}

	if err := a.cache.Invalidate(ctx); err != nil {
		return nil, errs.Wrap(err, "failed to invalidate catalog cache")
	}

	return a.catalogQueries.ListAllServices(ctx)
}

func (a *adminCommandsImpl) readBack(ctx context.Context, id uuid.UUID) (*queries.ServiceView, []*queries.ServiceView, error) {
	if err := a.cache.Invalidate(ctx); err != nil {
		return nil, nil, errs.Wrap(err, "failed to invalidate catalog cache")
	}

	view, err := a.catalogQueries.GetService(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	all, err := a.catalogQueries.ListAllServices(ctx)
	if err != nil {
		return nil, nil, err
	}

	return view, all, nil
}
