package readstore

import (
	"context"

	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/pgconv"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const serviceColumns = `id, name, duration_minutes, price_cents, description, category, active, created_at, updated_at`

type CatalogReadStore struct {
	db *pgxpool.Pool
}

func NewCatalogReadStore(db *pgxpool.Pool) *CatalogReadStore {
	return &CatalogReadStore{db: db}
}

func (r *CatalogReadStore) FindActive(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		WHERE active = true
		ORDER BY category ASC, created_at ASC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active services", err)
	}
	defer rows.Close()

	return scanServiceRows(rows)
}

func (r *CatalogReadStore) FindAll(ctx context.Context) ([]*queries.ServiceView, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		ORDER BY category ASC, created_at ASC
	`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	return scanServiceRows(rows)
}

func (r *CatalogReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT `+serviceColumns+`
		FROM services
		WHERE id = $1
	`, id)

	view, err := scanServiceRow(row)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return view, nil
}

func scanServiceRow(row pgx.Row) (*queries.ServiceView, error) {
	var v queries.ServiceView
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.DurationMinutes,
		&v.PriceCents,
		&v.Description,
		&v.Category,
		&v.Active,
		&v.CreatedAt,
		&v.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func scanServiceRows(rows pgx.Rows) ([]*queries.ServiceView, error) {
	var views []*queries.ServiceView
	for rows.Next() {
		v, err := scanServiceRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan service row", err)
		}
		views = append(views, v)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate service rows", rows.Err())
	}
	return views, nil
}
