package archive

import (
	"context"
	_ "embed"
	"encoding/hex"
	"log/slog"
	"strings"

	"wanderlust-booking/internal/domain/booking"
	"wanderlust-booking/internal/infra"
	"wanderlust-booking/internal/pkg/pgconv"
	"wanderlust-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"golang.org/x/crypto/blake2b"
)

//go:embed schema.sql
var Schema string

type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const insertConfirmation = `
INSERT INTO booking_confirmations (
    id, session_id, confirmation_number, item_type, item_id, item_name,
    check_in, check_out, guest_count, base_price_minor, total_minor, currency,
    guest_name, email, phone, card_last4, card_fingerprint, marketing_opt_in,
    status, booked_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)
ON CONFLICT (confirmation_number) DO NOTHING`

const listBySession = `
SELECT confirmation_number, item_type, item_id, item_name, check_in, check_out,
       guest_count, total_minor, currency, guest_name, email, card_last4, status, booked_at
FROM booking_confirmations
WHERE session_id = $1
ORDER BY booked_at DESC`

// PostgresArchive stores confirmations without the full card number:
// only the last four digits and a BLAKE2b fingerprint are kept.
type PostgresArchive struct {
	db     DBTX
	logger *slog.Logger
}

func NewPostgresArchive(db DBTX, logger *slog.Logger) *PostgresArchive {
	return &PostgresArchive{db: db, logger: logger}
}

// Migrate applies the embedded schema one statement at a time. Every
// statement is idempotent.
func (a *PostgresArchive) Migrate(ctx context.Context) error {
	for _, stmt := range strings.Split(Schema, ";") {
		if strings.TrimSpace(stmt) == "" {
			continue
		}
		if _, err := a.db.Exec(ctx, stmt); err != nil {
			return infra.WrapStoreErr(a.logger, infra.KindDBFailure, "failed to apply archive schema", err)
		}
	}
	return nil
}

func (a *PostgresArchive) Append(ctx context.Context, entry shared.ArchiveEntry) error {
	c := entry.Confirmation
	checkIn, err := booking.ParseOptionalDate(c.CheckIn)
	if err != nil {
		return err
	}
	checkOut, err := booking.ParseOptionalDate(c.CheckOut)
	if err != nil {
		return err
	}
	details := c.DetailsSnapshot.ToDomain()

	_, err = a.db.Exec(ctx, insertConfirmation,
		pgconv.UUIDToPgtype(uuid.New()),
		entry.SessionID,
		c.ConfirmationNumber,
		c.ItemType,
		c.ItemID,
		c.ItemName,
		pgconv.DatePtrToPgtype(checkIn),
		pgconv.DatePtrToPgtype(checkOut),
		c.GuestCount,
		c.BasePriceMinor,
		entry.TotalMinor,
		c.Currency,
		strings.TrimSpace(c.FirstName+" "+c.LastName),
		c.Email,
		c.Phone,
		pgconv.StringToPgtype(details.CardLast4()),
		pgconv.StringToPgtype(CardFingerprint(details.CardNumber)),
		c.AgreeToMarketing,
		c.Status,
		pgconv.TimeToPgtype(c.BookingDate),
	)
	if err != nil {
		return infra.WrapStoreErr(a.logger, infra.KindDBFailure, "failed to archive confirmation", err)
	}
	return nil
}

func (a *PostgresArchive) ListBySession(ctx context.Context, sessionID string) ([]shared.ArchivedBooking, error) {
	rows, err := a.db.Query(ctx, listBySession, sessionID)
	if err != nil {
		return nil, infra.WrapStoreErr(a.logger, infra.KindDBFailure, "failed to list archived bookings", err)
	}
	defer rows.Close()

	out := make([]shared.ArchivedBooking, 0)
	for rows.Next() {
		var (
			b         shared.ArchivedBooking
			checkIn   pgtype.Date
			checkOut  pgtype.Date
			cardLast4 pgtype.Text
			bookedAt  pgtype.Timestamptz
			guests    int32
		)
		if err := rows.Scan(
			&b.ConfirmationNumber, &b.ItemType, &b.ItemID, &b.ItemName, &checkIn, &checkOut,
			&guests, &b.TotalMinor, &b.Currency, &b.GuestName, &b.Email, &cardLast4, &b.Status, &bookedAt,
		); err != nil {
			return nil, infra.WrapStoreErr(a.logger, infra.KindDBFailure, "failed to scan archived booking", err)
		}
		b.CheckIn = pgconv.DatePtrFromPgtype(checkIn)
		b.CheckOut = pgconv.DatePtrFromPgtype(checkOut)
		b.CardLast4 = pgconv.StringFromPgtype(cardLast4)
		b.BookedAt = pgconv.TimeFromPgtype(bookedAt)
		b.GuestCount = int(guests)
		out = append(out, b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapStoreErr(a.logger, infra.KindDBFailure, "failed to iterate archived bookings", err)
	}
	return out, nil
}

// CardFingerprint identifies a card across bookings without storing it.
func CardFingerprint(cardNumber string) string {
	digits := booking.Details{CardNumber: cardNumber}.Normalized().CardNumber
	if digits == "" {
		return ""
	}
	sum := blake2b.Sum256([]byte(digits))
	return hex.EncodeToString(sum[:])
}

// Noop is used when no database is configured.
type Noop struct{}

func (Noop) Append(context.Context, shared.ArchiveEntry) error { return nil }

func (Noop) ListBySession(context.Context, string) ([]shared.ArchivedBooking, error) {
	return []shared.ArchivedBooking{}, nil
}
