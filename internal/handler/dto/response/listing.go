package response

import (
	"encoding/json"
	"time"

	"wanderlust-booking/internal/domain/booking"
	"wanderlust-booking/internal/domain/listing"
	"wanderlust-booking/internal/usecase/queries"
	"wanderlust-booking/internal/usecase/shared"

	"github.com/jinzhu/copier"
)

type CoordinatesResponse struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type DestinationResponse struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	Country         string              `json:"country"`
	Description     string              `json:"description"`
	Image           string              `json:"image"`
	Rating          float64             `json:"rating"`
	ReviewCount     int                 `json:"reviewCount"`
	Coordinates     CoordinatesResponse `json:"coordinates"`
	Highlights      []string            `json:"highlights"`
	BestTimeToVisit string              `json:"bestTimeToVisit"`
}

type HotelResponse struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Destination   string              `json:"destination"`
	Location      string              `json:"location"`
	Description   string              `json:"description"`
	Images        []string            `json:"images"`
	Rating        float64             `json:"rating"`
	ReviewCount   int                 `json:"reviewCount"`
	PricePerNight json.Number         `json:"pricePerNight" copier:"-"`
	Currency      string              `json:"currency"`
	Amenities     []string            `json:"amenities"`
	Coordinates   CoordinatesResponse `json:"coordinates"`
	Available     bool                `json:"available"`
}

type ItineraryDayResponse struct {
	Day         int      `json:"day"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Activities  []string `json:"activities"`
}

type TourResponse struct {
	ID           string                 `json:"id"`
	Name         string                 `json:"name"`
	Destination  string                 `json:"destination"`
	Location     string                 `json:"location"`
	Description  string                 `json:"description"`
	Images       []string               `json:"images"`
	Duration     string                 `json:"duration"`
	Price        json.Number            `json:"price" copier:"-"`
	Currency     string                 `json:"currency"`
	Rating       float64                `json:"rating"`
	ReviewCount  int                    `json:"reviewCount"`
	MaxGroupSize int                    `json:"maxGroupSize"`
	Difficulty   string                 `json:"difficulty"`
	Includes     []string               `json:"includes"`
	Highlights   []string               `json:"highlights"`
	Itinerary    []ItineraryDayResponse `json:"itinerary"`
}

type ReviewResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"userId"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment"`
	Date       string `json:"date" copier:"-"`
	Helpful    int    `json:"helpful"`
}

type DestinationDetailResponse struct {
	Destination DestinationResponse `json:"destination"`
	Hotels      []HotelResponse     `json:"hotels"`
	Tours       []TourResponse      `json:"tours"`
}

type HotelDetailResponse struct {
	Hotel   HotelResponse    `json:"hotel"`
	Related []HotelResponse  `json:"related"`
	Reviews []ReviewResponse `json:"reviews"`
}

type TourDetailResponse struct {
	Tour    TourResponse     `json:"tour"`
	Related []TourResponse   `json:"related"`
	Reviews []ReviewResponse `json:"reviews"`
}

func minorAmount(minor int64) json.Number {
	m, err := booking.NewMoney(minor)
	if err != nil {
		return json.Number("0.00")
	}
	return amount(m)
}

func FromDestination(d listing.Destination) DestinationResponse {
	var out DestinationResponse
	_ = copier.Copy(&out, &d)
	if out.Highlights == nil {
		out.Highlights = []string{}
	}
	return out
}

func FromDestinations(ds []listing.Destination) []DestinationResponse {
	out := make([]DestinationResponse, 0, len(ds))
	for _, d := range ds {
		out = append(out, FromDestination(d))
	}
	return out
}

func FromHotel(h listing.Hotel) HotelResponse {
	var out HotelResponse
	_ = copier.Copy(&out, &h)
	out.PricePerNight = minorAmount(h.PricePerNight)
	return out
}

func FromHotels(hs []listing.Hotel) []HotelResponse {
	out := make([]HotelResponse, 0, len(hs))
	for _, h := range hs {
		out = append(out, FromHotel(h))
	}
	return out
}

func FromTour(t listing.Tour) TourResponse {
	var out TourResponse
	_ = copier.Copy(&out, &t)
	out.Price = minorAmount(t.Price)
	out.Difficulty = string(t.Difficulty)
	return out
}

func FromTours(ts []listing.Tour) []TourResponse {
	out := make([]TourResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, FromTour(t))
	}
	return out
}

func FromReview(r listing.Review) ReviewResponse {
	var out ReviewResponse
	_ = copier.Copy(&out, &r)
	out.Date = r.Date.Format(booking.DateLayout)
	return out
}

func FromReviews(rs []listing.Review) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromReview(r))
	}
	return out
}

func FromDestinationDetail(d *queries.DestinationDetail) DestinationDetailResponse {
	return DestinationDetailResponse{
		Destination: FromDestination(d.Destination),
		Hotels:      FromHotels(d.Hotels),
		Tours:       FromTours(d.Tours),
	}
}

func FromHotelDetail(d *queries.HotelDetail) HotelDetailResponse {
	return HotelDetailResponse{
		Hotel:   FromHotel(d.Hotel),
		Related: FromHotels(d.Related),
		Reviews: FromReviews(d.Reviews),
	}
}

func FromTourDetail(d *queries.TourDetail) TourDetailResponse {
	return TourDetailResponse{
		Tour:    FromTour(d.Tour),
		Related: FromTours(d.Related),
		Reviews: FromReviews(d.Reviews),
	}
}

type ArchivedBookingResponse struct {
	ConfirmationNumber string      `json:"confirmationNumber"`
	ItemType           string      `json:"type"`
	ItemID             string      `json:"itemId"`
	ItemName           string      `json:"itemName"`
	CheckIn            string      `json:"checkIn,omitempty" copier:"-"`
	CheckOut           string      `json:"checkOut,omitempty" copier:"-"`
	GuestCount         int         `json:"guests"`
	Total              json.Number `json:"total" copier:"-"`
	Currency           string      `json:"currency"`
	GuestName          string      `json:"guestName"`
	Email              string      `json:"email"`
	CardLast4          string      `json:"cardLast4"`
	Status             string      `json:"status"`
	BookedAt           time.Time   `json:"bookedAt"`
}

func FromArchived(list []shared.ArchivedBooking) []ArchivedBookingResponse {
	out := make([]ArchivedBookingResponse, 0, len(list))
	for _, b := range list {
		var r ArchivedBookingResponse
		_ = copier.Copy(&r, &b)
		r.CheckIn = booking.FormatDate(b.CheckIn)
		r.CheckOut = booking.FormatDate(b.CheckOut)
		r.Total = minorAmount(b.TotalMinor)
		out = append(out, r)
	}
	return out
}
