//go:build unit

package catalog_test

import (
	"context"
	"testing"
	"time"

	"wanderlust-booking/internal/domain/listing"
	"wanderlust-booking/internal/infra/catalog"
	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSource(latency time.Duration) (*catalog.MockSource, *clock.MockClock) {
	clk := clock.NewMockClock(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	return catalog.NewMockSource(clk, latency, observability.NewMetrics()), clk
}

func TestMockSource(t *testing.T) {
	ctx := context.Background()

	t.Run("lists the seeded destinations", func(t *testing.T) {
		src, _ := newSource(0)
		got, err := src.ListDestinations(ctx)
		require.NoError(t, err)
		require.Len(t, got, 6)
		assert.Equal(t, "Ranchi", got[0].Name)
		assert.Equal(t, "Bokaro", got[5].Name)
	})

	t.Run("hotel 3 carries the booking scenario data", func(t *testing.T) {
		src, _ := newSource(0)
		h, err := src.GetHotel(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, "Hotel Yashoda International", h.Name)
		assert.Equal(t, int64(280000), h.PricePerNight)
		assert.Equal(t, "INR", h.Currency)
		assert.Equal(t, "Temple Road, Deoghar", h.Location)
	})

	t.Run("returned entities do not share seed data", func(t *testing.T) {
		src, _ := newSource(0)

		h, err := src.GetHotel(ctx, "3")
		require.NoError(t, err)
		require.NotEmpty(t, h.Amenities)
		want := h.Amenities[0]
		h.Amenities[0] = "changed"
		h.Images = append(h.Images[:0], "changed")

		listed, err := src.ListHotels(ctx, listing.Filter{})
		require.NoError(t, err)
		for i := range listed {
			listed[i].Amenities[0] = "changed"
		}

		again, err := src.GetHotel(ctx, "3")
		require.NoError(t, err)
		assert.Equal(t, want, again.Amenities[0])
		assert.NotEqual(t, "changed", again.Images[0])

		tour, err := src.GetTour(ctx, "1")
		require.NoError(t, err)
		require.NotEmpty(t, tour.Itinerary)
		require.NotEmpty(t, tour.Itinerary[0].Activities)
		activity := tour.Itinerary[0].Activities[0]
		tour.Itinerary[0].Activities[0] = "changed"

		tourAgain, err := src.GetTour(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, activity, tourAgain.Itinerary[0].Activities[0])
	})

	t.Run("unknown ids are not found", func(t *testing.T) {
		src, _ := newSource(0)
		_, err := src.GetHotel(ctx, "99")
		assert.ErrorIs(t, err, listing.ErrNotFound)
		_, err = src.GetTour(ctx, "99")
		assert.ErrorIs(t, err, listing.ErrNotFound)
		_, err = src.GetDestination(ctx, "99")
		assert.ErrorIs(t, err, listing.ErrNotFound)
	})

	t.Run("related excludes self and honours limit", func(t *testing.T) {
		src, _ := newSource(0)
		got, err := src.RelatedHotels(ctx, "1", 3)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "2", got[0].ID)
		assert.Equal(t, "3", got[1].ID)

		tours, err := src.RelatedTours(ctx, "2", 1)
		require.NoError(t, err)
		require.Len(t, tours, 1)
		assert.Equal(t, "1", tours[0].ID)
	})

	t.Run("reviews match by id prefix", func(t *testing.T) {
		src, _ := newSource(0)
		got, err := src.ListReviews(ctx, "2")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Rajesh Kumar", got[0].UserName)

		none, err := src.ListReviews(ctx, "3")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("filters are applied", func(t *testing.T) {
		src, _ := newSource(0)
		got, err := src.ListTours(ctx, listing.Filter{Sort: listing.SortPriceDesc})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "3", got[0].ID)
	})

	t.Run("callers cannot mutate the seed", func(t *testing.T) {
		src, _ := newSource(0)
		got, err := src.ListDestinations(ctx)
		require.NoError(t, err)
		got[0].Name = "changed"

		again, err := src.ListDestinations(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Ranchi", again[0].Name)
	})

	t.Run("waits the configured latency", func(t *testing.T) {
		src, clk := newSource(200 * time.Millisecond)
		_, err := src.GetTour(ctx, "1")
		require.NoError(t, err)
		assert.Equal(t, []time.Duration{200 * time.Millisecond}, clk.Slept())
	})

	t.Run("cancelled context aborts the lookup", func(t *testing.T) {
		src, _ := newSource(200 * time.Millisecond)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := src.ListHotels(cctx, listing.Filter{})
		assert.ErrorIs(t, err, context.Canceled)
	})
}
