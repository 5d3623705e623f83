package shared

import (
	"context"
	"time"
)

// SessionSlot is one typed key of the cross-request session store.
// Load returns session.ErrAbsent for missing or unreadable values.
type SessionSlot[T any] interface {
	Save(ctx context.Context, sessionID string, v T) error
	Load(ctx context.Context, sessionID string) (T, error)
	Clear(ctx context.Context, sessionID string) error
}

type IntentSlot = SessionSlot[IntentSnapshot]

type ConfirmationSlot = SessionSlot[ConfirmationSnapshot]

type ArchiveEntry struct {
	SessionID    string
	Confirmation ConfirmationSnapshot
	TotalMinor   int64
}

type ArchivedBooking struct {
	ConfirmationNumber string
	ItemType           string
	ItemID             string
	ItemName           string
	CheckIn            *time.Time
	CheckOut           *time.Time
	GuestCount         int
	TotalMinor         int64
	Currency           string
	GuestName          string
	Email              string
	CardLast4          string
	Status             string
	BookedAt           time.Time
}

// Archive keeps confirmations beyond the session, for the account bookings list.
type Archive interface {
	Append(ctx context.Context, entry ArchiveEntry) error
	ListBySession(ctx context.Context, sessionID string) ([]ArchivedBooking, error)
}

type ConfirmationNotice struct {
	To                 string
	GuestName          string
	ConfirmationNumber string
	ItemName           string
	CheckIn            string
	CheckOut           string
	GuestCount         int
	Total              string
}

type Notifier interface {
	NotifyConfirmed(ctx context.Context, notice ConfirmationNotice) error
}
