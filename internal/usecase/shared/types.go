package shared

import (
	"time"

	"wanderlust-booking/internal/domain/booking"
)

// Session keys shared between the selection, wizard and confirmation endpoints.
const (
	KeyCurrentBooking      = "current-booking"
	KeyBookingConfirmation = "booking-confirmation"
)

// IntentSnapshot is the stored form of a booking.Intent.
type IntentSnapshot struct {
	ItemType       string `json:"type"`
	ItemID         string `json:"itemId"`
	ItemName       string `json:"itemName"`
	CheckIn        string `json:"checkIn,omitempty"`
	CheckOut       string `json:"checkOut,omitempty"`
	GuestCount     int    `json:"guests"`
	BasePriceMinor int64  `json:"basePriceMinor"`
	Currency       string `json:"currency"`
}

func IntentSnapshotFrom(i *booking.Intent) IntentSnapshot {
	return IntentSnapshot{
		ItemType:       i.ItemType().String(),
		ItemID:         i.ItemID(),
		ItemName:       i.ItemName(),
		CheckIn:        booking.FormatDate(i.CheckIn()),
		CheckOut:       booking.FormatDate(i.CheckOut()),
		GuestCount:     i.GuestCount(),
		BasePriceMinor: i.BasePrice().Minor(),
		Currency:       i.Currency(),
	}
}

// ToDomain re-runs every intent rule, so a tampered snapshot never reaches the wizard.
func (s IntentSnapshot) ToDomain() (*booking.Intent, error) {
	checkIn, err := booking.ParseOptionalDate(s.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := booking.ParseOptionalDate(s.CheckOut)
	if err != nil {
		return nil, err
	}
	price, err := booking.NewMoney(s.BasePriceMinor)
	if err != nil {
		return nil, err
	}
	return booking.NewIntent(
		booking.ItemRef{Type: booking.ItemType(s.ItemType), ID: s.ItemID, Name: s.ItemName},
		checkIn, checkOut,
		s.GuestCount,
		price,
		s.Currency,
	)
}

func ValidateIntentSnapshot(s IntentSnapshot) error {
	_, err := s.ToDomain()
	return err
}

type DetailsSnapshot struct {
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	Email            string `json:"email"`
	Phone            string `json:"phone"`
	CardholderName   string `json:"cardholderName"`
	CardNumber       string `json:"cardNumber"`
	Expiry           string `json:"expiry"`
	CVV              string `json:"cvv"`
	AgreeToTerms     bool   `json:"agreeToTerms"`
	AgreeToMarketing bool   `json:"agreeToMarketing"`
}

func DetailsSnapshotFrom(d booking.Details) DetailsSnapshot {
	return DetailsSnapshot{
		FirstName:        d.FirstName,
		LastName:         d.LastName,
		Email:            d.Email,
		Phone:            d.Phone,
		CardholderName:   d.CardholderName,
		CardNumber:       d.CardNumber,
		Expiry:           d.Expiry,
		CVV:              d.CVV,
		AgreeToTerms:     d.AgreeToTerms,
		AgreeToMarketing: d.AgreeToMarketing,
	}
}

func (s DetailsSnapshot) ToDomain() booking.Details {
	return booking.Details{
		FirstName:        s.FirstName,
		LastName:         s.LastName,
		Email:            s.Email,
		Phone:            s.Phone,
		CardholderName:   s.CardholderName,
		CardNumber:       s.CardNumber,
		Expiry:           s.Expiry,
		CVV:              s.CVV,
		AgreeToTerms:     s.AgreeToTerms,
		AgreeToMarketing: s.AgreeToMarketing,
	}
}

// ConfirmationSnapshot flattens intent and details into one record, the
// shape the confirmation page reads.
type ConfirmationSnapshot struct {
	IntentSnapshot
	DetailsSnapshot
	ConfirmationNumber string    `json:"confirmationNumber"`
	BookingDate        time.Time `json:"bookingDate"`
	Status             string    `json:"status"`
}

func ConfirmationSnapshotFrom(c *booking.Confirmation) ConfirmationSnapshot {
	return ConfirmationSnapshot{
		IntentSnapshot:     IntentSnapshotFrom(c.Intent()),
		DetailsSnapshot:    DetailsSnapshotFrom(c.Details()),
		ConfirmationNumber: c.ConfirmationNumber(),
		BookingDate:        c.BookingDate(),
		Status:             c.Status().String(),
	}
}

func (s ConfirmationSnapshot) ToDomain() (*booking.Confirmation, error) {
	intent, err := s.IntentSnapshot.ToDomain()
	if err != nil {
		return nil, err
	}
	return booking.ReconstructConfirmation(
		intent,
		s.DetailsSnapshot.ToDomain(),
		s.ConfirmationNumber,
		s.BookingDate,
		booking.Status(s.Status),
	)
}

func ValidateConfirmationSnapshot(s ConfirmationSnapshot) error {
	_, err := s.ToDomain()
	return err
}

// PricedIntent pairs an intent with the pricing derived from it. Pricing is
// always recomputed, never stored.
type PricedIntent struct {
	Intent  *booking.Intent
	Pricing booking.DerivedPricing
}
