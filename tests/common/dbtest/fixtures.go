//go:build unit || e2e

package dbtest

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by *pgxpool.Pool and pgx.Tx.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CountArchived returns how many confirmations were archived for a session.
func CountArchived(t *testing.T, db DBLike, sessionID string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COUNT(*) FROM booking_confirmations WHERE session_id = $1", sessionID).Scan(&n)
	require.NoError(t, err)
	return n
}

// ArchivedCardColumns reads back what was stored for the card, so tests can
// check that only the masked form reached the table.
func ArchivedCardColumns(t *testing.T, db DBLike, confirmationNumber string) (last4, fingerprint string) {
	t.Helper()

	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(card_last4, ''), COALESCE(card_fingerprint, '') FROM booking_confirmations WHERE confirmation_number = $1",
		confirmationNumber).Scan(&last4, &fingerprint)
	require.NoError(t, err)
	return last4, fingerprint
}

// truncates the archive between subtests
func ResetDB(db DBLike) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := db.Exec(ctx, "TRUNCATE booking_confirmations")
	return err
}
