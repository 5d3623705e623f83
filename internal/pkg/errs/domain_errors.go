package errs

import "errors"

// Sentinel errors shared by the command and query layers
var (
	// Listing errors
	ErrListingNotFound = errors.New("listing not found")

	// Session errors
	ErrNoCurrentBooking     = errors.New("no booking in progress")
	ErrConfirmationNotFound = errors.New("confirmation not found")

	// Booking errors
	ErrInvalidSelection  = errors.New("invalid selection")
	ErrValidationFailed  = errors.New("booking details validation failed")
	ErrInvalidTransition = errors.New("invalid wizard transition")
	ErrSubmitInterrupted = errors.New("booking submission interrupted")

	// Operation errors
	ErrSessionStoreFailed = errors.New("session store operation failed")
	ErrArchiveFailed      = errors.New("archive operation failed")
)
