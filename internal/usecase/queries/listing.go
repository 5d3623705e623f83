package queries

import (
	"context"
	"errors"

	"wanderlust-booking/internal/domain/listing"
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/internal/pkg/errs"

	"golang.org/x/sync/errgroup"
)

type DestinationDetail struct {
	Destination listing.Destination
	Hotels      []listing.Hotel
	Tours       []listing.Tour
}

type HotelDetail struct {
	Hotel   listing.Hotel
	Related []listing.Hotel
	Reviews []listing.Review
}

type TourDetail struct {
	Tour    listing.Tour
	Related []listing.Tour
	Reviews []listing.Review
}

type ListingQueries interface {
	ListDestinations(ctx context.Context) ([]listing.Destination, error)
	GetDestination(ctx context.Context, id string) (*DestinationDetail, error)
	ListHotels(ctx context.Context, filter listing.Filter) ([]listing.Hotel, error)
	GetHotel(ctx context.Context, id string) (*HotelDetail, error)
	ListTours(ctx context.Context, filter listing.Filter) ([]listing.Tour, error)
	GetTour(ctx context.Context, id string) (*TourDetail, error)
	ListReviews(ctx context.Context, itemID string) ([]listing.Review, error)
}

type listingQueriesImpl struct {
	source       listing.Source
	relatedLimit int
}

func NewListingQueries(source listing.Source, cfg config.CatalogConfig) ListingQueries {
	return &listingQueriesImpl{source: source, relatedLimit: cfg.RelatedLimit}
}

func (q *listingQueriesImpl) ListDestinations(ctx context.Context) ([]listing.Destination, error) {
	return q.source.ListDestinations(ctx)
}

// GetDestination loads the destination, then the hotels and tours located there.
func (q *listingQueriesImpl) GetDestination(ctx context.Context, id string) (*DestinationDetail, error) {
	d, err := q.source.GetDestination(ctx, id)
	if err != nil {
		return nil, markNotFound(err)
	}
	detail := DestinationDetail{Destination: *d}
	byName := listing.Filter{Destination: d.Name}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		hotels, err := q.source.ListHotels(gctx, byName)
		detail.Hotels = hotels
		return err
	})
	g.Go(func() error {
		tours, err := q.source.ListTours(gctx, byName)
		detail.Tours = tours
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (q *listingQueriesImpl) ListHotels(ctx context.Context, filter listing.Filter) ([]listing.Hotel, error) {
	return q.source.ListHotels(ctx, filter)
}

func (q *listingQueriesImpl) GetHotel(ctx context.Context, id string) (*HotelDetail, error) {
	var detail HotelDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		h, err := q.source.GetHotel(gctx, id)
		if err != nil {
			return err
		}
		detail.Hotel = *h
		return nil
	})
	g.Go(func() error {
		related, err := q.source.RelatedHotels(gctx, id, q.relatedLimit)
		detail.Related = related
		return err
	})
	g.Go(func() error {
		reviews, err := q.source.ListReviews(gctx, id)
		detail.Reviews = reviews
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, markNotFound(err)
	}
	return &detail, nil
}

func (q *listingQueriesImpl) ListTours(ctx context.Context, filter listing.Filter) ([]listing.Tour, error) {
	return q.source.ListTours(ctx, filter)
}

func (q *listingQueriesImpl) GetTour(ctx context.Context, id string) (*TourDetail, error) {
	var detail TourDetail

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := q.source.GetTour(gctx, id)
		if err != nil {
			return err
		}
		detail.Tour = *t
		return nil
	})
	g.Go(func() error {
		related, err := q.source.RelatedTours(gctx, id, q.relatedLimit)
		detail.Related = related
		return err
	})
	g.Go(func() error {
		reviews, err := q.source.ListReviews(gctx, id)
		detail.Reviews = reviews
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, markNotFound(err)
	}
	return &detail, nil
}

func (q *listingQueriesImpl) ListReviews(ctx context.Context, itemID string) ([]listing.Review, error) {
	return q.source.ListReviews(ctx, itemID)
}

func markNotFound(err error) error {
	if errors.Is(err, listing.ErrNotFound) {
		return errs.Mark(err, errs.ErrListingNotFound)
	}
	return err
}
