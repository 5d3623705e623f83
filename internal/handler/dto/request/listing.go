package request

import (
	"math"

	"wanderlust-booking/internal/domain/listing"
)

type ListingQuery struct {
	Q           string   `form:"q"`
	Destination string   `form:"destination"`
	MinPrice    *float64 `form:"min_price" binding:"omitempty,min=0"`
	MaxPrice    *float64 `form:"max_price" binding:"omitempty,min=0"`
	MinRating   *float64 `form:"min_rating" binding:"omitempty,min=0,max=5"`
	Sort        string   `form:"sort"`
}

func (q ListingQuery) ToFilter() (listing.Filter, error) {
	order, err := listing.ParseSortOrder(q.Sort)
	if err != nil {
		return listing.Filter{}, err
	}
	return listing.Filter{
		Query:         q.Q,
		Destination:   q.Destination,
		MinPriceMinor: toMinor(q.MinPrice),
		MaxPriceMinor: toMinor(q.MaxPrice),
		MinRating:     q.MinRating,
		Sort:          order,
	}, nil
}

func toMinor(major *float64) *int64 {
	if major == nil {
		return nil
	}
	v := int64(math.Round(*major * 100))
	return &v
}
