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
	"golang.org/x/crypto/bcrypt"
)

// TestPassword is the plain-text password of every account created by CreateTestUser.
const TestPassword = "password123"

var (
	hashOnce     sync.Once
	passwordHash string
)

func testPasswordHash(t *testing.T) string {
	t.Helper()
	hashOnce.Do(func() {
		b, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
		require.NoError(t, err)
		passwordHash = string(b)
	})
	return passwordHash
}

func CreateTestUser(t *testing.T, db DBLike, email, role string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, email, password_hash, full_name, role, is_active)
		VALUES ($1, $2, $3, $4, $5, true) ON CONFLICT (email) DO NOTHING`,
		userID, email, testPasswordHash(t), "Test "+role, role)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		require.NoError(t, db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID))
	}

	return userID
}

// CreateTestLot inserts a lot with spots numbered <name>-001 upward, all available.
func CreateTestLot(t *testing.T, db DBLike, name string, price string, spots int) (uuid.UUID, []uuid.UUID) {
	t.Helper()

	lotID := uuid.New()
	ctx := context.Background()

	_, err := db.Exec(ctx, `INSERT INTO parking_lots (id, name, price, address, pin_code, number_of_spots)
		VALUES ($1, $2, $3::numeric, $4, $5, $6)`,
		lotID, name, price, "1 Test Street", "560001", spots)
	require.NoError(t, err)

	spotIDs := make([]uuid.UUID, 0, spots)
	for i := 1; i <= spots; i++ {
		id := uuid.New()
		_, err := db.Exec(ctx, `INSERT INTO parking_spots (id, lot_id, spot_number, status)
			VALUES ($1, $2, $3, 'available')`, id, lotID, fmt.Sprintf("%s-%03d", name, i))
		require.NoError(t, err)
		spotIDs = append(spotIDs, id)
	}
	return lotID, spotIDs
}

// CreateCompletedReservation inserts a finished reservation released at releasedAt.
func CreateCompletedReservation(t *testing.T, db DBLike, spotID, userID uuid.UUID, releasedAt time.Time, cost string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	reservedAt := releasedAt.Add(-2 * time.Hour)
	_, err := db.Exec(context.Background(), `INSERT INTO reservations
		(id, spot_id, user_id, vehicle_number, status, reserved_at, released_at, cost, created_at, updated_at)
		VALUES ($1, $2, $3, 'KA01AB1234', 'completed', $4, $5, $6::numeric, $4, $5)`,
		id, spotID, userID, reservedAt, releasedAt, cost)
	require.NoError(t, err)
	return id
}

// SpotStatus reads the stored status of a spot.
func SpotStatus(t *testing.T, db DBLike, spotID uuid.UUID) string {
	t.Helper()
	var status string
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT status FROM parking_spots WHERE id = $1", spotID).Scan(&status))
	return status
}

// CountActiveReservations counts active reservations on the given spot.
func CountActiveReservations(t *testing.T, db DBLike, spotID uuid.UUID) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(context.Background(),
		"SELECT count(*) FROM reservations WHERE spot_id = $1 AND status = 'active'", spotID).Scan(&n))
	return n
}

// ReservationIDs lists every stored reservation id, oldest first.
func ReservationIDs(t *testing.T, db DBLike) []uuid.UUID {
	t.Helper()
	rows, err := db.Query(context.Background(), "SELECT id FROM reservations ORDER BY created_at, id")
	require.NoError(t, err)
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		require.NoError(t, rows.Scan(&id))
		ids = append(ids, id)
	}
	require.NoError(t, rows.Err())
	return ids
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all application and job tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations', 'river_migration')`)
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
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
