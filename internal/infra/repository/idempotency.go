package repository

import (
	"context"
	"time"

	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/pgconv"
	"institut-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IdempotencyRepository struct {
	db *pgxpool.Pool
}

func NewIdempotencyRepository(db *pgxpool.Pool) *IdempotencyRepository {
	return &IdempotencyRepository{db: db}
}

// TryInsert claims the key in 'processing' state. A concurrent or repeated
// claim is not an error here; Get decides between replay and conflict.
func (r *IdempotencyRepository) TryInsert(ctx context.Context, key uuid.UUID, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO idempotency_keys (key, user_id, endpoint, request_hash, status, expires_at, created_at)
		VALUES ($1, $2, $3, $4, 'processing', $5, now())
		ON CONFLICT (key, user_id) DO NOTHING
	`, key, userID, endpoint, requestHash, expiresAt)
	if err != nil {
		return wrapWriteErr("failed to claim idempotency key", err)
	}
	return nil
}

func (r *IdempotencyRepository) Get(ctx context.Context, key uuid.UUID, userID uuid.UUID) (*queries.IdempotencyRecord, error) {
	row := r.db.QueryRow(ctx, `
		SELECT key, user_id, endpoint, request_hash, status, result_appointment_id, expires_at, created_at
		FROM idempotency_keys
		WHERE key = $1 AND user_id = $2
	`, key, userID)

	var rec queries.IdempotencyRecord
	var resultID *uuid.UUID
	err := row.Scan(
		&rec.Key,
		&rec.UserID,
		&rec.Endpoint,
		&rec.RequestHash,
		&rec.Status,
		&resultID,
		&rec.ExpiresAt,
		&rec.CreatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get idempotency key", err)
	}
	rec.ResultAppointmentID = resultID

	return &rec, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(ctx context.Context, tx pgx.Tx, key uuid.UUID, userID uuid.UUID, resultAppointmentID uuid.UUID) error {
	tag, err := tx.Exec(ctx, `
		UPDATE idempotency_keys
		SET status = 'completed', result_appointment_id = $3
		WHERE key = $1 AND user_id = $2 AND status = 'processing'
	`, key, userID, resultAppointmentID)
	if err != nil {
		return wrapWriteErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not in processing state", errRowNotFound, infra.KindConflict)
	}
	return nil
}
