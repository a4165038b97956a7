package repository

import (
	"context"

	"institut-booking/internal/domain/catalog"
	"institut-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ServiceRepository struct {
	db *pgxpool.Pool
}

func NewServiceRepository(db *pgxpool.Pool) *ServiceRepository {
	return &ServiceRepository{db: db}
}

func (r *ServiceRepository) Create(ctx context.Context, svc *catalog.Service) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO services (id, name, duration_minutes, price_cents, description, category, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`,
		svc.ID(),
		svc.Name(),
		svc.DurationMinutes(),
		svc.PriceCents(),
		svc.Description(),
		svc.Category(),
		svc.IsActive(),
		svc.CreatedAt(),
		svc.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert service", err)
	}
	return id, nil
}

func (r *ServiceRepository) Update(ctx context.Context, svc *catalog.Service) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE services
		SET name = $2, duration_minutes = $3, price_cents = $4,
			description = $5, category = $6, active = $7, updated_at = now()
		WHERE id = $1
	`,
		svc.ID(),
		svc.Name(),
		svc.DurationMinutes(),
		svc.PriceCents(),
		svc.Description(),
		svc.Category(),
		svc.IsActive(),
	)
	if err != nil {
		return wrapWriteErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", errRowNotFound, infra.KindNotFound)
	}
	return nil
}

func (r *ServiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", errRowNotFound, infra.KindNotFound)
	}
	return nil
}
