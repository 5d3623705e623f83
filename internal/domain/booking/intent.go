package booking

import (
	"strings"
	"time"
)

const DateLayout = "2006-01-02"

// Intent is the captured selection. It is never mutated; a new selection
// replaces it.
type Intent struct {
	item       ItemRef
	checkIn    *time.Time
	checkOut   *time.Time
	guestCount int
	basePrice  Money
	currency   string
}

func NewIntent(
	item ItemRef,
	checkIn, checkOut *time.Time,
	guestCount int,
	basePrice Money,
	currency string,
) (*Intent, error) {
	if !item.Type.IsValid() {
		return nil, ErrInvalidItemType
	}
	if strings.TrimSpace(item.ID) == "" || strings.TrimSpace(item.Name) == "" {
		return nil, ErrMissingItem
	}
	if guestCount < 1 {
		return nil, ErrInvalidGuestCount
	}
	if (checkIn == nil) != (checkOut == nil) {
		return nil, ErrIncompleteDateRange
	}
	if checkIn != nil && !checkOut.After(*checkIn) {
		return nil, ErrInvalidDateRange
	}
	if basePrice.Minor() < 0 {
		return nil, ErrNegativePrice
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if currency == "" {
		return nil, ErrMissingCurrency
	}

	return &Intent{
		item:       item,
		checkIn:    copyTime(checkIn),
		checkOut:   copyTime(checkOut),
		guestCount: guestCount,
		basePrice:  basePrice,
		currency:   currency,
	}, nil
}

func (i *Intent) Item() ItemRef        { return i.item }
func (i *Intent) ItemType() ItemType   { return i.item.Type }
func (i *Intent) ItemID() string       { return i.item.ID }
func (i *Intent) ItemName() string     { return i.item.Name }
func (i *Intent) CheckIn() *time.Time  { return copyTime(i.checkIn) }
func (i *Intent) CheckOut() *time.Time { return copyTime(i.checkOut) }
func (i *Intent) GuestCount() int      { return i.guestCount }
func (i *Intent) BasePrice() Money     { return i.basePrice }
func (i *Intent) Currency() string     { return i.currency }

func (i *Intent) HasDates() bool {
	return i.checkIn != nil && i.checkOut != nil
}

// ParseDate accepts a calendar date (2024-03-15) or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(DateLayout, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidDate
}

// ParseOptionalDate returns nil for an empty string.
func ParseOptionalDate(s string) (*time.Time, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	t, err := ParseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// FormatDate renders UTC midnights as calendar dates and anything else as
// RFC 3339 with fractional seconds kept, so ParseDate reads back the same instant.
func FormatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	u := *t
	if u.Location() == time.UTC && u.Equal(u.Truncate(24*time.Hour)) {
		return u.Format(DateLayout)
	}
	return u.Format(time.RFC3339Nano)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
