package booking

import (
	"strings"
	"time"
)

// Confirmation is the finalized booking: the intent and the submitted
// details merged with a generated number and timestamp.
type Confirmation struct {
	intent             *Intent
	details            Details
	confirmationNumber string
	bookingDate        time.Time
	status             Status
}

func ReconstructConfirmation(
	intent *Intent,
	details Details,
	confirmationNumber string,
	bookingDate time.Time,
	status Status,
) (*Confirmation, error) {
	if intent == nil {
		return nil, ErrMissingIntent
	}
	if strings.TrimSpace(confirmationNumber) == "" || bookingDate.IsZero() || !status.IsValid() {
		return nil, ErrInvalidConfirmation
	}
	return &Confirmation{
		intent:             intent,
		details:            details,
		confirmationNumber: confirmationNumber,
		bookingDate:        bookingDate,
		status:             status,
	}, nil
}

func (c *Confirmation) Intent() *Intent            { return c.intent }
func (c *Confirmation) Details() Details           { return c.details }
func (c *Confirmation) ConfirmationNumber() string { return c.confirmationNumber }
func (c *Confirmation) BookingDate() time.Time     { return c.bookingDate }
func (c *Confirmation) Status() Status             { return c.status }
