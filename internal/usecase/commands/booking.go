package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"wanderlust-booking/internal/domain/booking"
	"wanderlust-booking/internal/domain/listing"
	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/infra/session"
	"wanderlust-booking/internal/pkg/clock"
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/internal/pkg/errs"
	"wanderlust-booking/internal/usecase/shared"
)

// SelectionInput is a widget selection. Price and currency are never part of
// it; they come from the catalog.
type SelectionInput struct {
	ItemType   string
	ItemID     string
	CheckIn    *time.Time
	CheckOut   *time.Time
	GuestCount int
}

type SelectionResult struct {
	shared.PricedIntent
	Next string
}

type WizardResult struct {
	Step  booking.Step
	Phase booking.Phase
	First bool
	Last  bool
}

type SubmitResult struct {
	Confirmation *booking.Confirmation
	Pricing      booking.DerivedPricing
	Next         string
}

type BookingCommands interface {
	Quote(ctx context.Context, in SelectionInput) (*shared.PricedIntent, error)
	SelectItem(ctx context.Context, sessionID string, in SelectionInput) (*SelectionResult, error)
	ClearSelection(ctx context.Context, sessionID string) error
	Advance(ctx context.Context, sessionID string, step booking.Step, details booking.Details) (*WizardResult, error)
	Retreat(ctx context.Context, sessionID string, step booking.Step) (*WizardResult, error)
	Submit(ctx context.Context, sessionID string, step booking.Step, details booking.Details) (*SubmitResult, error)
}

type BookingCommandDeps struct {
	Source        listing.Source
	Intents       shared.IntentSlot
	Confirmations shared.ConfirmationSlot
	Calculator    booking.PriceCalculator
	Finalizer     *booking.Finalizer
	Clock         clock.Clock
	Archive       shared.Archive
	Notifier      shared.Notifier
	Metrics       *observability.Metrics
	Logger        *slog.Logger
}

type bookingCommandsImpl struct {
	BookingCommandDeps
	cfg config.BookingConfig
}

func NewBookingCommands(deps BookingCommandDeps, cfg config.BookingConfig) BookingCommands {
	return &bookingCommandsImpl{BookingCommandDeps: deps, cfg: cfg}
}

func (uc *bookingCommandsImpl) Quote(ctx context.Context, in SelectionInput) (*shared.PricedIntent, error) {
	intent, err := uc.buildIntent(ctx, in)
	if err != nil {
		return nil, err
	}
	return &shared.PricedIntent{Intent: intent, Pricing: uc.Calculator.Compute(intent)}, nil
}

func (uc *bookingCommandsImpl) SelectItem(ctx context.Context, sessionID string, in SelectionInput) (*SelectionResult, error) {
	intent, err := uc.buildIntent(ctx, in)
	if err != nil {
		return nil, err
	}

	// A new selection supersedes whatever was stored before.
	if err := uc.Intents.Save(ctx, sessionID, shared.IntentSnapshotFrom(intent)); err != nil {
		return nil, errs.Mark(err, errs.ErrSessionStoreFailed)
	}
	uc.Metrics.ObserveBooking(intent.ItemType().String(), "selected")

	return &SelectionResult{
		PricedIntent: shared.PricedIntent{Intent: intent, Pricing: uc.Calculator.Compute(intent)},
		Next:         uc.cfg.WizardPath,
	}, nil
}

func (uc *bookingCommandsImpl) ClearSelection(ctx context.Context, sessionID string) error {
	if err := uc.Intents.Clear(ctx, sessionID); err != nil {
		return errs.Mark(err, errs.ErrSessionStoreFailed)
	}
	return nil
}

func (uc *bookingCommandsImpl) Advance(ctx context.Context, sessionID string, step booking.Step, details booking.Details) (*WizardResult, error) {
	if _, err := uc.loadIntent(ctx, sessionID); err != nil {
		return nil, err
	}
	w, err := booking.RestoreWizard(step, uc.cfg.StepValidation)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}
	if err := w.Next(details); err != nil {
		return nil, markWizardErr(err)
	}
	return wizardResult(w), nil
}

func (uc *bookingCommandsImpl) Retreat(ctx context.Context, sessionID string, step booking.Step) (*WizardResult, error) {
	if _, err := uc.loadIntent(ctx, sessionID); err != nil {
		return nil, err
	}
	w, err := booking.RestoreWizard(step, uc.cfg.StepValidation)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}
	if err := w.Back(); err != nil {
		return nil, markWizardErr(err)
	}
	return wizardResult(w), nil
}

func (uc *bookingCommandsImpl) Submit(ctx context.Context, sessionID string, step booking.Step, details booking.Details) (*SubmitResult, error) {
	intent, err := uc.loadIntent(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	w, err := booking.RestoreWizard(step, uc.cfg.StepValidation)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}
	if err := w.BeginSubmit(details); err != nil {
		if errors.Is(err, booking.ErrNotAtFinalStep) {
			return nil, errs.Mark(err, errs.ErrInvalidTransition)
		}
		uc.Metrics.ObserveBooking(intent.ItemType().String(), "rejected")
		return nil, markWizardErr(err)
	}

	if err := uc.Clock.Sleep(ctx, uc.cfg.ProcessingDelay); err != nil {
		w.Abort()
		uc.Metrics.ObserveBooking(intent.ItemType().String(), "interrupted")
		return nil, errs.Mark(errs.Wrap(err, "processing wait cancelled"), errs.ErrSubmitInterrupted)
	}

	conf, err := uc.Finalizer.Finalize(intent, details)
	if err != nil {
		w.Abort()
		return nil, markWizardErr(err)
	}
	if err := uc.Confirmations.Save(ctx, sessionID, shared.ConfirmationSnapshotFrom(conf)); err != nil {
		w.Abort()
		return nil, errs.Mark(err, errs.ErrSessionStoreFailed)
	}
	if err := w.Complete(); err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTransition)
	}

	pricing := uc.Calculator.Compute(conf.Intent())
	uc.Metrics.ObserveBooking(intent.ItemType().String(), "confirmed")
	uc.Logger.Info("Booking confirmed",
		slog.String("confirmation_number", conf.ConfirmationNumber()),
		slog.String("item_type", intent.ItemType().String()),
		slog.String("item_id", intent.ItemID()),
	)

	// The confirmation is saved; archiving and the notice run even if the client leaves.
	detached := context.WithoutCancel(ctx)
	uc.archive(detached, sessionID, conf, pricing)
	uc.notify(detached, conf, pricing)

	return &SubmitResult{
		Confirmation: conf,
		Pricing:      pricing,
		Next:         uc.cfg.ConfirmationPath,
	}, nil
}

func (uc *bookingCommandsImpl) loadIntent(ctx context.Context, sessionID string) (*booking.Intent, error) {
	snap, err := uc.Intents.Load(ctx, sessionID)
	if errors.Is(err, session.ErrAbsent) {
		return nil, errs.ErrNoCurrentBooking
	}
	if err != nil {
		return nil, errs.Mark(err, errs.ErrSessionStoreFailed)
	}
	intent, err := snap.ToDomain()
	if err != nil {
		// The slot validates on load, so this only happens if the rules changed underneath it.
		return nil, errs.ErrNoCurrentBooking
	}
	return intent, nil
}

func (uc *bookingCommandsImpl) buildIntent(ctx context.Context, in SelectionInput) (*booking.Intent, error) {
	itemType := booking.ItemType(in.ItemType)
	if !itemType.IsValid() {
		return nil, errs.Mark(booking.ErrInvalidItemType, errs.ErrInvalidSelection)
	}

	item, price, currency, err := uc.resolveItem(ctx, itemType, in.ItemID)
	if err != nil {
		return nil, err
	}

	intent, err := booking.NewIntent(item, in.CheckIn, in.CheckOut, in.GuestCount, price, currency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidSelection)
	}
	return intent, nil
}

// resolveItem snapshots the listing name and derives the base price from the catalog.
func (uc *bookingCommandsImpl) resolveItem(ctx context.Context, itemType booking.ItemType, id string) (booking.ItemRef, booking.Money, string, error) {
	ref := booking.ItemRef{Type: itemType, ID: id}

	var (
		minor    int64
		currency string
	)
	switch itemType {
	case booking.ItemTypeHotel:
		h, err := uc.Source.GetHotel(ctx, id)
		if err != nil {
			return ref, booking.Money{}, "", markListingErr(err)
		}
		ref.Name, minor, currency = h.Name, h.PricePerNight, h.Currency
	case booking.ItemTypeTour:
		t, err := uc.Source.GetTour(ctx, id)
		if err != nil {
			return ref, booking.Money{}, "", markListingErr(err)
		}
		ref.Name, minor, currency = t.Name, t.Price, t.Currency
	case booking.ItemTypeDestination:
		d, err := uc.Source.GetDestination(ctx, id)
		if err != nil {
			return ref, booking.Money{}, "", markListingErr(err)
		}
		ref.Name, minor, currency = d.Name, uc.cfg.PackagePriceMinor, uc.cfg.PackageCurrency
	}

	price, err := booking.NewMoney(minor)
	if err != nil {
		return ref, booking.Money{}, "", errs.Mark(err, errs.ErrInvalidSelection)
	}
	return ref, price, currency, nil
}

func (uc *bookingCommandsImpl) archive(ctx context.Context, sessionID string, conf *booking.Confirmation, pricing booking.DerivedPricing) {
	err := uc.Archive.Append(ctx, shared.ArchiveEntry{
		SessionID:    sessionID,
		Confirmation: shared.ConfirmationSnapshotFrom(conf),
		TotalMinor:   pricing.Total.Minor(),
	})
	if err != nil {
		uc.Metrics.ObserveArchive("failed")
		uc.Logger.Warn("Failed to archive confirmation",
			slog.String("confirmation_number", conf.ConfirmationNumber()),
			slog.String("error", errs.Mark(err, errs.ErrArchiveFailed).Error()),
		)
		return
	}
	uc.Metrics.ObserveArchive("stored")
}

func (uc *bookingCommandsImpl) notify(ctx context.Context, conf *booking.Confirmation, pricing booking.DerivedPricing) {
	d := conf.Details()
	intent := conf.Intent()
	notice := shared.ConfirmationNotice{
		To:                 d.Email,
		GuestName:          d.FirstName + " " + d.LastName,
		ConfirmationNumber: conf.ConfirmationNumber(),
		ItemName:           intent.ItemName(),
		CheckIn:            booking.FormatDate(intent.CheckIn()),
		CheckOut:           booking.FormatDate(intent.CheckOut()),
		GuestCount:         intent.GuestCount(),
		Total:              booking.FormatAmount(pricing.Total, pricing.Currency),
	}
	if err := uc.Notifier.NotifyConfirmed(ctx, notice); err != nil {
		uc.Logger.Warn("Failed to send confirmation notice",
			slog.String("confirmation_number", conf.ConfirmationNumber()),
			slog.String("error", err.Error()),
		)
	}
}

func wizardResult(w *booking.Wizard) *WizardResult {
	return &WizardResult{
		Step:  w.Step(),
		Phase: w.Phase(),
		First: w.IsFirst(),
		Last:  w.IsLast(),
	}
}

func markWizardErr(err error) error {
	var verrs booking.ValidationErrors
	if errs.As(err, &verrs) {
		return errs.Mark(err, errs.ErrValidationFailed)
	}
	return errs.Mark(err, errs.ErrInvalidTransition)
}

func markListingErr(err error) error {
	if errors.Is(err, listing.ErrNotFound) {
		return errs.Mark(err, errs.ErrListingNotFound)
	}
	return err
}
