package listing

import (
	"errors"
	"sort"
	"strings"
)

var ErrInvalidSort = errors.New("invalid sort order")

type SortOrder string

const (
	SortNone      SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
	SortName      SortOrder = "name"
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch o := SortOrder(strings.TrimSpace(s)); o {
	case SortNone, SortPriceAsc, SortPriceDesc, SortRating, SortName:
		return o, nil
	default:
		return SortNone, ErrInvalidSort
	}
}

// Filter narrows hotel and tour listings. Zero values mean "no constraint".
type Filter struct {
	Query         string
	Destination   string
	MinPriceMinor *int64
	MaxPriceMinor *int64
	MinRating     *float64
	Sort          SortOrder
}

type filterable struct {
	name        string
	destination string
	location    string
	price       int64
	rating      float64
}

func (f Filter) matches(item filterable) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		if !strings.Contains(strings.ToLower(item.name), q) &&
			!strings.Contains(strings.ToLower(item.destination), q) &&
			!strings.Contains(strings.ToLower(item.location), q) {
			return false
		}
	}
	if d := strings.TrimSpace(f.Destination); d != "" && !strings.EqualFold(item.destination, d) {
		return false
	}
	if f.MinPriceMinor != nil && item.price < *f.MinPriceMinor {
		return false
	}
	if f.MaxPriceMinor != nil && item.price > *f.MaxPriceMinor {
		return false
	}
	if f.MinRating != nil && item.rating < *f.MinRating {
		return false
	}
	return true
}

func (f Filter) less(a, b filterable) bool {
	switch f.Sort {
	case SortPriceAsc:
		return a.price < b.price
	case SortPriceDesc:
		return a.price > b.price
	case SortRating:
		return a.rating > b.rating
	case SortName:
		return strings.ToLower(a.name) < strings.ToLower(b.name)
	default:
		return false
	}
}

func hotelView(h Hotel) filterable {
	return filterable{name: h.Name, destination: h.Destination, location: h.Location, price: h.PricePerNight, rating: h.Rating}
}

func tourView(t Tour) filterable {
	return filterable{name: t.Name, destination: t.Destination, location: t.Location, price: t.Price, rating: t.Rating}
}

// ApplyHotels returns a filtered, sorted copy. Source order is kept when no sort is set.
func (f Filter) ApplyHotels(in []Hotel) []Hotel {
	out := make([]Hotel, 0, len(in))
	for _, h := range in {
		if f.matches(hotelView(h)) {
			out = append(out, h)
		}
	}
	if f.Sort != SortNone {
		sort.SliceStable(out, func(i, j int) bool { return f.less(hotelView(out[i]), hotelView(out[j])) })
	}
	return out
}

func (f Filter) ApplyTours(in []Tour) []Tour {
	out := make([]Tour, 0, len(in))
	for _, t := range in {
		if f.matches(tourView(t)) {
			out = append(out, t)
		}
	}
	if f.Sort != SortNone {
		sort.SliceStable(out, func(i, j int) bool { return f.less(tourView(out[i]), tourView(out[j])) })
	}
	return out
}
