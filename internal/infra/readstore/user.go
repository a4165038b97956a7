package readstore

import (
	"context"

	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/pgconv"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserReadStore struct {
	db *pgxpool.Pool
}

func NewUserReadStore(db *pgxpool.Pool) *UserReadStore {
	return &UserReadStore{db: db}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, first_name, last_name, phone, is_admin, loyalty_points, is_active
		FROM users
		WHERE id = $1
	`, id)

	var v queries.AuthorizedUserView
	err := row.Scan(
		&v.ID,
		&v.Email,
		&v.FirstName,
		&v.LastName,
		&v.Phone,
		&v.IsAdmin,
		&v.LoyaltyPoints,
		&v.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &v, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	row := r.db.QueryRow(ctx, `
		SELECT id, email, password_hash, first_name, last_name, phone, is_admin, loyalty_points, is_active
		FROM users
		WHERE email = $1
	`, email)

	var v queries.AuthorizedUserView
	var passwordHash string
	err := row.Scan(
		&v.ID,
		&v.Email,
		&passwordHash,
		&v.FirstName,
		&v.LastName,
		&v.Phone,
		&v.IsAdmin,
		&v.LoyaltyPoints,
		&v.IsActive,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}

	return &v, passwordHash, nil
}
