//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"institut-booking/internal/pkg/password"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestUserPassword is the plaintext behind every fixture user.
const TestUserPassword = "password123"

var (
	hashOnce         sync.Once
	testPasswordHash string
)

func CreateTestUser(t *testing.T, db DB, email string, isAdmin bool) uuid.UUID {
	t.Helper()

	hashOnce.Do(func() {
		var err error
		testPasswordHash, err = password.HashPassword(TestUserPassword)
		require.NoError(t, err)
	})

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, first_name, last_name, phone, is_admin, is_active)
		VALUES ($1, $2, $3, 'Claire', 'Dupont', '0612345678', $4, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash, isAdmin)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

func CreateTestService(t *testing.T, db DB, name string, priceCents int) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `
		INSERT INTO services (id, name, duration_minutes, price_cents, description, category)
		VALUES ($1, $2, 60, $3, '', 'Massages')`,
		serviceID, name, priceCents)
	require.NoError(t, err)

	return serviceID
}

// inserts the catalog rows every booking test depends on
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO services (name, duration_minutes, price_cents, description, category) VALUES
		    ('Massage relaxant', 60, 7500, 'Massage du corps entier aux huiles essentielles', 'Massages'),
		    ('Soin du visage éclat', 45, 6000, 'Nettoyage, gommage et masque hydratant', 'Soins du visage'),
		    ('Manucure classique', 30, 3500, 'Mise en forme, cuticules et pose de vernis', 'Beauté des mains');
	`)
	return err
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables and reseeds reference data
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	return SeedReferenceData(pool)
}
