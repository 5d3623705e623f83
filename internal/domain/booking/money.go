package booking

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// BasisPoints expresses a rate in hundredths of a percent (1200 = 12%).
type BasisPoints int64

const basisPointsScale = 10000

// Money is an amount in minor units (cents, paise).
type Money struct {
	minor int64
}

func NewMoney(minor int64) (Money, error) {
	if minor < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{minor: minor}, nil
}

// MoneyFromMajor converts a decimal currency amount, rounding half-up to the minor unit.
func MoneyFromMajor(major float64) (Money, error) {
	if math.IsNaN(major) || math.IsInf(major, 0) {
		return Money{}, ErrInvalidAmount
	}
	return NewMoney(int64(math.Round(major * 100)))
}

// ParseMoney accepts "2800", "2800.5" or "2800.50".
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return MoneyFromMajor(f)
}

func (m Money) Minor() int64 { return m.minor }

func (m Money) Major() float64 {
	return float64(m.minor) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{minor: m.minor + other.minor}
}

func (m Money) Times(n int) Money {
	return Money{minor: m.minor * int64(n)}
}

// Percent applies a rate, rounding half-up to the minor unit.
func (m Money) Percent(rate BasisPoints) Money {
	return Money{minor: (m.minor*int64(rate) + basisPointsScale/2) / basisPointsScale}
}

func (m Money) IsZero() bool { return m.minor == 0 }

// String renders the amount with two decimals, without currency symbol or grouping.
func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.minor/100, m.minor%100)
}

// amountLocales picks the digit grouping per currency. Anything not listed is
// grouped the English way.
var amountLocales = map[string]language.Tag{
	"INR": language.MustParse("en-IN"),
}

// FormatAmount is presentational only: narrow currency symbol plus locale
// digit grouping, always with two decimals. Unknown codes fall back to the
// code itself.
func FormatAmount(m Money, code string) string {
	code = strings.ToUpper(strings.TrimSpace(code))
	digits := number.Decimal(m.Major(), number.MinFractionDigits(2), number.MaxFractionDigits(2))

	unit, err := currency.ParseISO(code)
	if err != nil {
		return message.NewPrinter(language.English).Sprintf("%s %v", code, digits)
	}
	tag, ok := amountLocales[unit.String()]
	if !ok {
		tag = language.English
	}
	p := message.NewPrinter(tag)
	return p.Sprint(currency.NarrowSymbol(unit)) + p.Sprint(digits)
}
