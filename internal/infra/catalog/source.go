package catalog

import (
	"context"
	"strings"
	"time"

	"wanderlust-booking/internal/domain/listing"
	"wanderlust-booking/internal/infra/observability"
	"wanderlust-booking/internal/pkg/clock"
)

// MockSource serves the fixed seed catalog after an artificial delay.
// Every entity handed out is a deep copy of the seed.
type MockSource struct {
	clock        clock.Clock
	latency      time.Duration
	metrics      *observability.Metrics
	destinations []listing.Destination
	hotels       []listing.Hotel
	tours        []listing.Tour
	reviews      []listing.Review
}

func NewMockSource(clk clock.Clock, latency time.Duration, metrics *observability.Metrics) *MockSource {
	return &MockSource{
		clock:        clk,
		latency:      latency,
		metrics:      metrics,
		destinations: seedDestinations(),
		hotels:       seedHotels(),
		tours:        seedTours(),
		reviews:      seedReviews(),
	}
}

func (s *MockSource) wait(ctx context.Context, op string) error {
	start := time.Now()
	err := s.clock.Sleep(ctx, s.latency)
	if s.metrics != nil {
		s.metrics.ObserveCatalog(op, time.Since(start))
	}
	return err
}

func (s *MockSource) ListDestinations(ctx context.Context) ([]listing.Destination, error) {
	if err := s.wait(ctx, "list_destinations"); err != nil {
		return nil, err
	}
	return cloneAll(s.destinations, listing.Destination.Clone), nil
}

func (s *MockSource) GetDestination(ctx context.Context, id string) (*listing.Destination, error) {
	if err := s.wait(ctx, "get_destination"); err != nil {
		return nil, err
	}
	for _, d := range s.destinations {
		if d.ID == id {
			found := d.Clone()
			return &found, nil
		}
	}
	return nil, listing.ErrNotFound
}

func (s *MockSource) ListHotels(ctx context.Context, filter listing.Filter) ([]listing.Hotel, error) {
	if err := s.wait(ctx, "list_hotels"); err != nil {
		return nil, err
	}
	return cloneAll(filter.ApplyHotels(s.hotels), listing.Hotel.Clone), nil
}

func (s *MockSource) GetHotel(ctx context.Context, id string) (*listing.Hotel, error) {
	if err := s.wait(ctx, "get_hotel"); err != nil {
		return nil, err
	}
	for _, h := range s.hotels {
		if h.ID == id {
			found := h.Clone()
			return &found, nil
		}
	}
	return nil, listing.ErrNotFound
}

func (s *MockSource) RelatedHotels(ctx context.Context, hotelID string, limit int) ([]listing.Hotel, error) {
	if err := s.wait(ctx, "related_hotels"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []listing.Hotel{}, nil
	}
	out := make([]listing.Hotel, 0, limit)
	for _, h := range s.hotels {
		if len(out) >= limit {
			break
		}
		if h.ID != hotelID {
			out = append(out, h.Clone())
		}
	}
	return out, nil
}

func (s *MockSource) ListTours(ctx context.Context, filter listing.Filter) ([]listing.Tour, error) {
	if err := s.wait(ctx, "list_tours"); err != nil {
		return nil, err
	}
	return cloneAll(filter.ApplyTours(s.tours), listing.Tour.Clone), nil
}

func (s *MockSource) GetTour(ctx context.Context, id string) (*listing.Tour, error) {
	if err := s.wait(ctx, "get_tour"); err != nil {
		return nil, err
	}
	for _, t := range s.tours {
		if t.ID == id {
			found := t.Clone()
			return &found, nil
		}
	}
	return nil, listing.ErrNotFound
}

func (s *MockSource) RelatedTours(ctx context.Context, tourID string, limit int) ([]listing.Tour, error) {
	if err := s.wait(ctx, "related_tours"); err != nil {
		return nil, err
	}
	if limit <= 0 {
		return []listing.Tour{}, nil
	}
	out := make([]listing.Tour, 0, limit)
	for _, t := range s.tours {
		if len(out) >= limit {
			break
		}
		if t.ID != tourID {
			out = append(out, t.Clone())
		}
	}
	return out, nil
}

// ListReviews matches review ids by prefix, so item "1" also picks up "10", "11", ...
func (s *MockSource) ListReviews(ctx context.Context, itemID string) ([]listing.Review, error) {
	if err := s.wait(ctx, "list_reviews"); err != nil {
		return nil, err
	}
	out := make([]listing.Review, 0)
	for _, r := range s.reviews {
		if strings.HasPrefix(r.ID, itemID) {
			out = append(out, r)
		}
	}
	return out, nil
}

func cloneAll[T any](in []T, clone func(T) T) []T {
	out := make([]T, len(in))
	for i, v := range in {
		out[i] = clone(v)
	}
	return out
}
