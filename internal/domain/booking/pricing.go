package booking

import "time"

const (
	DefaultServiceFeeRate BasisPoints = 1200
	DefaultTaxRate        BasisPoints = 800
)

// DerivedPricing is recomputed from an Intent on every read and never stored.
type DerivedPricing struct {
	NightsOrUnits  int
	BasePrice      Money
	Subtotal       Money
	ServiceFeeRate BasisPoints
	ServiceFee     Money
	TaxRate        BasisPoints
	Taxes          Money
	Total          Money
	Currency       string
}

type PriceCalculator interface {
	Compute(intent *Intent) DerivedPricing
}

type DefaultPriceCalculator struct {
	ServiceFeeRate BasisPoints
	TaxRate        BasisPoints
}

func NewDefaultPriceCalculator() *DefaultPriceCalculator {
	return &DefaultPriceCalculator{
		ServiceFeeRate: DefaultServiceFeeRate,
		TaxRate:        DefaultTaxRate,
	}
}

// Compute charges per night (or per unit when no dates were chosen).
// Guest count does not scale the price.
func (pc *DefaultPriceCalculator) Compute(intent *Intent) DerivedPricing {
	units := 1
	if intent.HasDates() {
		units = NightsBetween(*intent.checkIn, *intent.checkOut)
	}

	subtotal := intent.BasePrice().Times(units)
	fee := subtotal.Percent(pc.ServiceFeeRate)
	taxes := subtotal.Percent(pc.TaxRate)

	return DerivedPricing{
		NightsOrUnits:  units,
		BasePrice:      intent.BasePrice(),
		Subtotal:       subtotal,
		ServiceFeeRate: pc.ServiceFeeRate,
		ServiceFee:     fee,
		TaxRate:        pc.TaxRate,
		Taxes:          taxes,
		Total:          subtotal.Add(fee).Add(taxes),
		Currency:       intent.Currency(),
	}
}

const secondsPerDay = 24 * 60 * 60

// NightsBetween rounds the span up to whole days, never below 1. Counted in
// Unix seconds: a time.Duration saturates at about 292 years.
func NightsBetween(checkIn, checkOut time.Time) int {
	secs := checkOut.Unix() - checkIn.Unix()
	nanos := checkOut.Nanosecond() - checkIn.Nanosecond()
	if nanos < 0 {
		secs--
		nanos += int(time.Second)
	}
	if secs < 0 || (secs == 0 && nanos == 0) {
		return 1
	}
	nights := secs / secondsPerDay
	if secs%secondsPerDay != 0 || nanos != 0 {
		nights++
	}
	return max(int(nights), 1)
}
