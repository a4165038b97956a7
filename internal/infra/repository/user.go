package repository

import (
	"context"

	"institut-booking/internal/domain/user"
	"institut-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepository struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := r.db.QueryRow(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, phone, is_admin, loyalty_points, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id
	`,
		u.ID(),
		u.Email().Value(),
		u.PasswordHash(),
		u.FirstName(),
		u.LastName(),
		u.Phone().Value(),
		u.IsAdmin(),
		u.LoyaltyPoints(),
		u.IsActive(),
		u.CreatedAt(),
		u.UpdatedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to insert user", err)
	}
	return id, nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE users SET last_login = now(), updated_at = now() WHERE id = $1
	`, userID)
	if err != nil {
		return wrapWriteErr("failed to update last login", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", errRowNotFound, infra.KindNotFound)
	}
	return nil
}
