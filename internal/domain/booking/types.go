package booking

import "errors"

var (
	ErrInvalidItemType     = errors.New("invalid item type")
	ErrMissingItem         = errors.New("item id and name are required")
	ErrInvalidGuestCount   = errors.New("guest count must be at least 1")
	ErrIncompleteDateRange = errors.New("check-in and check-out must be given together")
	ErrInvalidDateRange    = errors.New("check-out must be after check-in")
	ErrInvalidDate         = errors.New("invalid date")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrMissingCurrency     = errors.New("currency code is required")

	ErrNotAtFinalStep      = errors.New("submission is only possible from the review step")
	ErrAlreadySubmitting   = errors.New("booking is already being submitted")
	ErrWizardClosed        = errors.New("booking wizard is closed")
	ErrInvalidStep         = errors.New("invalid wizard step")
	ErrMissingIntent       = errors.New("booking intent is required")
	ErrInvalidConfirmation = errors.New("invalid booking confirmation")
)

type ItemType string

const (
	ItemTypeDestination ItemType = "destination"
	ItemTypeHotel       ItemType = "hotel"
	ItemTypeTour        ItemType = "tour"
)

func (t ItemType) String() string {
	return string(t)
}

func (t ItemType) IsValid() bool {
	switch t {
	case ItemTypeDestination, ItemTypeHotel, ItemTypeTour:
		return true
	default:
		return false
	}
}

type Status string

const (
	StatusConfirmed Status = "confirmed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusConfirmed
}

// ItemRef identifies the listing a booking was started from. Name is a
// snapshot taken at selection time.
type ItemRef struct {
	Type ItemType
	ID   string
	Name string
}
