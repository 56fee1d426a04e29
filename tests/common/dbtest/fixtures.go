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

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// bcrypt hash of "password123"
const testPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, "INSERT INTO users (id, email, password_hash, role, is_active) VALUES ($1, $2, $3, $4, true) ON CONFLICT (email) DO NOTHING",
		userID, email, testPasswordHash, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		_ = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
	}

	return userID
}

// CreateTestMechanic creates a mechanic user with its profile row.
func CreateTestMechanic(t *testing.T, db DBLike, email, firstName, lastName string) uuid.UUID {
	t.Helper()

	mechanicID := CreateTestUser(t, db, email, "mechanic")
	ctx := context.Background()

	_, err := db.Exec(ctx, "INSERT INTO mechanics (id, first_name, last_name, specialization, is_active) VALUES ($1, $2, $3, 'general', true) ON CONFLICT (id) DO NOTHING",
		mechanicID, firstName, lastName)
	require.NoError(t, err)

	return mechanicID
}

func CreateTestVehicle(t *testing.T, db DBLike, vin string, ownerID uuid.UUID, mileage int32) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO vehicles (vin, owner_id, make, model, year, mileage) VALUES ($1, $2, 'Toyota', 'Corolla', 2020, $3) ON CONFLICT (vin) DO NOTHING",
		vin, ownerID, mileage)
	require.NoError(t, err)
}

func CreateTestService(t *testing.T, db DBLike, name, category string, price float64, durationMin int32) uuid.UUID {
	t.Helper()

	serviceID := uuid.New()
	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO services (id, name, category, price, duration_minutes, is_active) VALUES ($1, $2, $3, $4, $5, true)",
		serviceID, name, category, price, durationMin)
	require.NoError(t, err)

	return serviceID
}

// EnableOffering links a mechanic to a service in the catalog.
func EnableOffering(t *testing.T, db DBLike, mechanicID, serviceID uuid.UUID, enabled bool) {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, "INSERT INTO mechanic_services (mechanic_id, service_id, is_enabled) VALUES ($1, $2, $3) ON CONFLICT (mechanic_id, service_id) DO UPDATE SET is_enabled = $3",
		mechanicID, serviceID, enabled)
	require.NoError(t, err)
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between tests
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

	return nil
}
