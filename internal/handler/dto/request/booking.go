package request

import (
	"time"

	"wanderlust-booking/internal/domain/booking"
)

// SelectionRequest is what the booking widget sends. Price and currency are
// taken from the catalog, never from the client.
type SelectionRequest struct {
	ItemType   string `json:"itemType" binding:"required"`
	ItemID     string `json:"itemId" binding:"required"`
	CheckIn    string `json:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty"`
	GuestCount *int   `json:"guestCount,omitempty"`
}

// Guests defaults to one when the field is left out.
func (r SelectionRequest) Guests() int {
	if r.GuestCount == nil {
		return 1
	}
	return *r.GuestCount
}

// DateRange parses both dates; either may be empty.
func (r SelectionRequest) DateRange() (checkIn, checkOut *time.Time, err error) {
	in, err := booking.ParseOptionalDate(r.CheckIn)
	if err != nil {
		return nil, nil, err
	}
	out, err := booking.ParseOptionalDate(r.CheckOut)
	if err != nil {
		return nil, nil, err
	}
	return in, out, nil
}

type BookingDetailsRequest struct {
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

func (r BookingDetailsRequest) ToDomain() booking.Details {
	return booking.Details{
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Email:            r.Email,
		Phone:            r.Phone,
		CardholderName:   r.CardholderName,
		CardNumber:       r.CardNumber,
		Expiry:           r.Expiry,
		CVV:              r.CVV,
		AgreeToTerms:     r.AgreeToTerms,
		AgreeToMarketing: r.AgreeToMarketing,
	}
}

// WizardRequest carries the step the client is on plus everything entered so far.
type WizardRequest struct {
	Step    int                   `json:"step" binding:"required,min=1,max=3"`
	Details BookingDetailsRequest `json:"details"`
}
