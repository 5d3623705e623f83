package queries

import (
	"context"
	"errors"

	"wanderlust-booking/internal/domain/booking"
	"wanderlust-booking/internal/infra/session"
	"wanderlust-booking/internal/pkg/errs"
	"wanderlust-booking/internal/usecase/shared"
)

type ConfirmationView struct {
	Confirmation *booking.Confirmation
	Pricing      booking.DerivedPricing
}

type BookingQueries interface {
	CurrentBooking(ctx context.Context, sessionID string) (*shared.PricedIntent, error)
	LoadConfirmation(ctx context.Context, sessionID string) (*ConfirmationView, error)
	ListArchived(ctx context.Context, sessionID string) ([]shared.ArchivedBooking, error)
}

type bookingQueriesImpl struct {
	intents       shared.IntentSlot
	confirmations shared.ConfirmationSlot
	calc          booking.PriceCalculator
	archive       shared.Archive
}

func NewBookingQueries(intents shared.IntentSlot, confirmations shared.ConfirmationSlot, calc booking.PriceCalculator, archive shared.Archive) BookingQueries {
	return &bookingQueriesImpl{
		intents:       intents,
		confirmations: confirmations,
		calc:          calc,
		archive:       archive,
	}
}

// CurrentBooking is the wizard page guard: no intent means nothing to book.
func (q *bookingQueriesImpl) CurrentBooking(ctx context.Context, sessionID string) (*shared.PricedIntent, error) {
	snap, err := q.intents.Load(ctx, sessionID)
	if errors.Is(err, session.ErrAbsent) {
		return nil, errs.ErrNoCurrentBooking
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionStoreFailed)
	}
	intent, err := snap.ToDomain()
	if err != nil {
		return nil, errs.ErrNoCurrentBooking
	}
	return &shared.PricedIntent{Intent: intent, Pricing: q.calc.Compute(intent)}, nil
}

// LoadConfirmation guards the confirmation page the same way. Pricing is
// recomputed from the stored intent fields.
func (q *bookingQueriesImpl) LoadConfirmation(ctx context.Context, sessionID string) (*ConfirmationView, error) {
	snap, err := q.confirmations.Load(ctx, sessionID)
	if errors.Is(err, session.ErrAbsent) {
		return nil, errs.ErrConfirmationNotFound
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionStoreFailed)
	}
	conf, err := snap.ToDomain()
	if err != nil {
		return nil, errs.ErrConfirmationNotFound
	}
	return &ConfirmationView{Confirmation: conf, Pricing: q.calc.Compute(conf.Intent())}, nil
}

func (q *bookingQueriesImpl) ListArchived(ctx context.Context, sessionID string) ([]shared.ArchivedBooking, error) {
	list, err := q.archive.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrArchiveFailed)
	}
	return list, nil
}
