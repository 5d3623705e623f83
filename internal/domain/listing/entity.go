package listing

import (
	"context"
	"errors"
	"slices"
	"time"
)

var ErrNotFound = errors.New("listing not found")

type Coordinates struct {
	Lat float64
	Lng float64
}

type Destination struct {
	ID              string
	Name            string
	Country         string
	Description     string
	Image           string
	Rating          float64
	ReviewCount     int
	Coordinates     Coordinates
	Highlights      []string
	BestTimeToVisit string
}

type Hotel struct {
	ID            string
	Name          string
	Destination   string
	Location      string
	Description   string
	Images        []string
	Rating        float64
	ReviewCount   int
	PricePerNight int64 // minor units
	Currency      string
	Amenities     []string
	Coordinates   Coordinates
	Available     bool
}

type Difficulty string

const (
	DifficultyEasy        Difficulty = "easy"
	DifficultyModerate    Difficulty = "moderate"
	DifficultyChallenging Difficulty = "challenging"
)

type ItineraryDay struct {
	Day         int
	Title       string
	Description string
	Activities  []string
}

type Tour struct {
	ID           string
	Name         string
	Destination  string
	Location     string
	Description  string
	Images       []string
	Duration     string
	Price        int64 // minor units
	Currency     string
	Rating       float64
	ReviewCount  int
	MaxGroupSize int
	Difficulty   Difficulty
	Includes     []string
	Highlights   []string
	Itinerary    []ItineraryDay
}

// Clone copies the slice fields too, so callers cannot reach shared data.
func (d Destination) Clone() Destination {
	d.Highlights = slices.Clone(d.Highlights)
	return d
}

func (h Hotel) Clone() Hotel {
	h.Images = slices.Clone(h.Images)
	h.Amenities = slices.Clone(h.Amenities)
	return h
}

func (t Tour) Clone() Tour {
	t.Images = slices.Clone(t.Images)
	t.Includes = slices.Clone(t.Includes)
	t.Highlights = slices.Clone(t.Highlights)
	t.Itinerary = slices.Clone(t.Itinerary)
	for i := range t.Itinerary {
		t.Itinerary[i].Activities = slices.Clone(t.Itinerary[i].Activities)
	}
	return t
}

type Review struct {
	ID         string
	UserID     string
	UserName   string
	UserAvatar string
	Rating     int
	Comment    string
	Date       time.Time
	Helpful    int
}

// Source is the read-only catalog the booking flow selects from.
type Source interface {
	ListDestinations(ctx context.Context) ([]Destination, error)
	GetDestination(ctx context.Context, id string) (*Destination, error)
	ListHotels(ctx context.Context, filter Filter) ([]Hotel, error)
	GetHotel(ctx context.Context, id string) (*Hotel, error)
	RelatedHotels(ctx context.Context, hotelID string, limit int) ([]Hotel, error)
	ListTours(ctx context.Context, filter Filter) ([]Tour, error)
	GetTour(ctx context.Context, id string) (*Tour, error)
	RelatedTours(ctx context.Context, tourID string, limit int) ([]Tour, error)
	ListReviews(ctx context.Context, itemID string) ([]Review, error)
}
