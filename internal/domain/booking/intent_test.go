//go:build unit

package booking_test

import (
	"testing"
	"time"

	"wanderlust-booking/internal/domain/booking"
	"wanderlust-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type intentCase struct {
	name   string
	mutate func(*builder.IntentBuilder)
	errIs  error
}

func TestIntent(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewIntentBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.Equal(t, booking.ItemTypeHotel, actual.ItemType())
		assert.Equal(t, "3", actual.ItemID())
		assert.Equal(t, "Hotel Yashoda International", actual.ItemName())
		assert.Equal(t, 2, actual.GuestCount())
		assert.Equal(t, int64(280000), actual.BasePrice().Minor())
		assert.Equal(t, "INR", actual.Currency())
		assert.Equal(t, "2024-03-15", booking.FormatDate(actual.CheckIn()))
		assert.Equal(t, "2024-03-18", booking.FormatDate(actual.CheckOut()))
	})

	t.Run("date range validation", func(t *testing.T) {
		runIntentCases(t, []intentCase{
			{
				name:   "check-out equal to check-in",
				mutate: func(b *builder.IntentBuilder) { b.WithDates("2024-03-15", "2024-03-15") },
				errIs:  booking.ErrInvalidDateRange,
			},
			{
				name:   "check-out before check-in",
				mutate: func(b *builder.IntentBuilder) { b.WithDates("2024-03-18", "2024-03-15") },
				errIs:  booking.ErrInvalidDateRange,
			},
			{
				name: "only check-in given",
				mutate: func(b *builder.IntentBuilder) {
					b.WithDates("2024-03-15", "2024-03-18")
					b.CheckOut = nil
				},
				errIs: booking.ErrIncompleteDateRange,
			},
			{
				name: "only check-out given",
				mutate: func(b *builder.IntentBuilder) {
					b.WithDates("2024-03-15", "2024-03-18")
					b.CheckIn = nil
				},
				errIs: booking.ErrIncompleteDateRange,
			},
			{
				name:   "no dates at all",
				mutate: func(b *builder.IntentBuilder) { b.WithoutDates() },
			},
			{
				name:   "one night",
				mutate: func(b *builder.IntentBuilder) { b.WithDates("2024-03-15", "2024-03-16") },
			},
		})
	})

	t.Run("guest count validation", func(t *testing.T) {
		runIntentCases(t, []intentCase{
			{
				name:   "zero guests",
				mutate: func(b *builder.IntentBuilder) { b.WithGuests(0) },
				errIs:  booking.ErrInvalidGuestCount,
			},
			{
				name:   "negative guests",
				mutate: func(b *builder.IntentBuilder) { b.WithGuests(-2) },
				errIs:  booking.ErrInvalidGuestCount,
			},
			{
				name:   "single guest",
				mutate: func(b *builder.IntentBuilder) { b.WithGuests(1) },
			},
		})
	})

	t.Run("item validation", func(t *testing.T) {
		runIntentCases(t, []intentCase{
			{
				name:   "unknown item type",
				mutate: func(b *builder.IntentBuilder) { b.ItemType = "cruise" },
				errIs:  booking.ErrInvalidItemType,
			},
			{
				name:   "missing item id",
				mutate: func(b *builder.IntentBuilder) { b.ItemID = " " },
				errIs:  booking.ErrMissingItem,
			},
			{
				name:   "missing currency",
				mutate: func(b *builder.IntentBuilder) { b.WithCurrency("") },
				errIs:  booking.ErrMissingCurrency,
			},
			{
				name:   "free listing is allowed",
				mutate: func(b *builder.IntentBuilder) { b.WithBasePriceMinor(0) },
			},
		})
	})

	t.Run("currency is upper-cased", func(t *testing.T) {
		actual, err := builder.NewIntentBuilder().WithCurrency("inr").BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "INR", actual.Currency())
	})

	t.Run("returned dates are copies", func(t *testing.T) {
		actual, err := builder.NewIntentBuilder().BuildDomain()
		require.NoError(t, err)

		in := actual.CheckIn()
		*in = in.Add(48 * time.Hour)

		assert.Equal(t, "2024-03-15", booking.FormatDate(actual.CheckIn()))
	})
}

func TestParseDate(t *testing.T) {
	d, err := booking.ParseDate("2024-03-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15", booking.FormatDate(&d))

	ts, err := booking.ParseDate("2024-03-15T10:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15T10:30:00+05:30", booking.FormatDate(&ts))

	frac, err := booking.ParseDate("2024-03-15T10:00:00.1Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-15T10:00:00.1Z", booking.FormatDate(&frac))
	back, err := booking.ParseDate(booking.FormatDate(&frac))
	require.NoError(t, err)
	assert.True(t, frac.Equal(back))

	_, err = booking.ParseDate("15/03/2024")
	assert.ErrorIs(t, err, booking.ErrInvalidDate)

	none, err := booking.ParseOptionalDate("")
	require.NoError(t, err)
	assert.Nil(t, none)
}

func runIntentCases(t *testing.T, cases []intentCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewIntentBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
