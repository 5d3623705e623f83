//go:build unit || e2e

package builder

import (
	"time"

	"wanderlust-booking/internal/domain/booking"
	reqdto "wanderlust-booking/internal/handler/dto/request"
	"wanderlust-booking/internal/usecase/shared"
)

// IntentBuilder defaults to the reference hotel booking: three nights at
// Hotel Yashoda International for two guests.
type IntentBuilder struct {
	ItemType       booking.ItemType
	ItemID         string
	ItemName       string
	CheckIn        *time.Time
	CheckOut       *time.Time
	GuestCount     int
	BasePriceMinor int64
	Currency       string
}

func NewIntentBuilder() *IntentBuilder {
	b := &IntentBuilder{
		ItemType:       booking.ItemTypeHotel,
		ItemID:         "3",
		ItemName:       "Hotel Yashoda International",
		GuestCount:     2,
		BasePriceMinor: 280000,
		Currency:       "INR",
	}
	return b.WithDates("2024-03-15", "2024-03-18")
}

func (b *IntentBuilder) With(mutate func(*IntentBuilder)) *IntentBuilder {
	mutate(b)
	return b
}

func (b *IntentBuilder) WithDates(checkIn, checkOut string) *IntentBuilder {
	in := mustDate(checkIn)
	out := mustDate(checkOut)
	b.CheckIn, b.CheckOut = &in, &out
	return b
}

func (b *IntentBuilder) WithoutDates() *IntentBuilder {
	b.CheckIn, b.CheckOut = nil, nil
	return b
}

func (b *IntentBuilder) WithGuests(n int) *IntentBuilder {
	b.GuestCount = n
	return b
}

func (b *IntentBuilder) WithBasePriceMinor(minor int64) *IntentBuilder {
	b.BasePriceMinor = minor
	return b
}

func (b *IntentBuilder) WithCurrency(code string) *IntentBuilder {
	b.Currency = code
	return b
}

func (b *IntentBuilder) WithItem(t booking.ItemType, id, name string) *IntentBuilder {
	b.ItemType, b.ItemID, b.ItemName = t, id, name
	return b
}

// Build methods
func (b *IntentBuilder) BuildDomain() (*booking.Intent, error) {
	price, err := booking.NewMoney(b.BasePriceMinor)
	if err != nil {
		return nil, err
	}
	return booking.NewIntent(
		booking.ItemRef{Type: b.ItemType, ID: b.ItemID, Name: b.ItemName},
		b.CheckIn, b.CheckOut,
		b.GuestCount,
		price,
		b.Currency,
	)
}

func (b *IntentBuilder) BuildSnapshot() shared.IntentSnapshot {
	return shared.IntentSnapshot{
		ItemType:       b.ItemType.String(),
		ItemID:         b.ItemID,
		ItemName:       b.ItemName,
		CheckIn:        booking.FormatDate(b.CheckIn),
		CheckOut:       booking.FormatDate(b.CheckOut),
		GuestCount:     b.GuestCount,
		BasePriceMinor: b.BasePriceMinor,
		Currency:       b.Currency,
	}
}

// BuildSelectionRequest leaves price and currency out; the server derives them.
func (b *IntentBuilder) BuildSelectionRequest() reqdto.SelectionRequest {
	guests := b.GuestCount
	return reqdto.SelectionRequest{
		ItemType:   b.ItemType.String(),
		ItemID:     b.ItemID,
		CheckIn:    booking.FormatDate(b.CheckIn),
		CheckOut:   booking.FormatDate(b.CheckOut),
		GuestCount: &guests,
	}
}

// DetailsBuilder starts from a set that passes every step.
type DetailsBuilder struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	CardholderName   string
	CardNumber       string
	Expiry           string
	CVV              string
	AgreeToTerms     bool
	AgreeToMarketing bool
}

func NewDetailsBuilder() *DetailsBuilder {
	return &DetailsBuilder{
		FirstName:      "Priya",
		LastName:       "Sharma",
		Email:          "priya.sharma@example.com",
		Phone:          "9876543210",
		CardholderName: "Priya Sharma",
		CardNumber:     "4111 1111 1111 1111",
		Expiry:         "08/27",
		CVV:            "123",
		AgreeToTerms:   true,
	}
}

func (b *DetailsBuilder) With(mutate func(*DetailsBuilder)) *DetailsBuilder {
	mutate(b)
	return b
}

func (b *DetailsBuilder) BuildDomain() booking.Details {
	return booking.Details{
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Email:            b.Email,
		Phone:            b.Phone,
		CardholderName:   b.CardholderName,
		CardNumber:       b.CardNumber,
		Expiry:           b.Expiry,
		CVV:              b.CVV,
		AgreeToTerms:     b.AgreeToTerms,
		AgreeToMarketing: b.AgreeToMarketing,
	}
}

func (b *DetailsBuilder) BuildDTO() reqdto.BookingDetailsRequest {
	return reqdto.BookingDetailsRequest{
		FirstName:        b.FirstName,
		LastName:         b.LastName,
		Email:            b.Email,
		Phone:            b.Phone,
		CardholderName:   b.CardholderName,
		CardNumber:       b.CardNumber,
		Expiry:           b.Expiry,
		CVV:              b.CVV,
		AgreeToTerms:     b.AgreeToTerms,
		AgreeToMarketing: b.AgreeToMarketing,
	}
}

func (b *DetailsBuilder) BuildWizardRequest(step booking.Step) reqdto.WizardRequest {
	return reqdto.WizardRequest{Step: int(step), Details: b.BuildDTO()}
}

type ConfirmationBuilder struct {
	Intent             *IntentBuilder
	Details            *DetailsBuilder
	ConfirmationNumber string
	BookingDate        time.Time
	Status             booking.Status
}

func NewConfirmationBuilder() *ConfirmationBuilder {
	return &ConfirmationBuilder{
		Intent:             NewIntentBuilder(),
		Details:            NewDetailsBuilder(),
		ConfirmationNumber: "WL1710460800000-3F9A1C",
		BookingDate:        time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
		Status:             booking.StatusConfirmed,
	}
}

func (b *ConfirmationBuilder) With(mutate func(*ConfirmationBuilder)) *ConfirmationBuilder {
	mutate(b)
	return b
}

func (b *ConfirmationBuilder) BuildSnapshot() shared.ConfirmationSnapshot {
	return shared.ConfirmationSnapshot{
		IntentSnapshot:     b.Intent.BuildSnapshot(),
		DetailsSnapshot:    shared.DetailsSnapshotFrom(b.Details.BuildDomain()),
		ConfirmationNumber: b.ConfirmationNumber,
		BookingDate:        b.BookingDate,
		Status:             b.Status.String(),
	}
}

func (b *ConfirmationBuilder) BuildDomain() (*booking.Confirmation, error) {
	intent, err := b.Intent.BuildDomain()
	if err != nil {
		return nil, err
	}
	return booking.ReconstructConfirmation(intent, b.Details.BuildDomain(), b.ConfirmationNumber, b.BookingDate, b.Status)
}

func mustDate(s string) time.Time {
	t, err := booking.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
