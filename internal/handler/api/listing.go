package api

import (
	"net/http"

	reqdto "wanderlust-booking/internal/handler/dto/request"
	resdto "wanderlust-booking/internal/handler/dto/response"
	"wanderlust-booking/internal/handler/httperr"
	"wanderlust-booking/internal/pkg/errs"
	"wanderlust-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ListingHandler struct {
	q queries.ListingQueries
}

func NewListingHandler(q queries.ListingQueries) *ListingHandler {
	return &ListingHandler{q: q}
}

// @Summary List destinations
// @Tags listings
// @Produce json
// @Success 200 {array} resdto.DestinationResponse
// @Router /api/destinations [get]
func (h *ListingHandler) ListDestinations(c *gin.Context) {
	list, err := h.q.ListDestinations(c.Request.Context())
	if err != nil {
		abortListing(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDestinations(list))
}

// @Summary Get destination
// @Description Destination with the hotels and tours located there
// @Tags listings
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} resdto.DestinationDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/destinations/{id} [get]
func (h *ListingHandler) GetDestination(c *gin.Context) {
	detail, err := h.q.GetDestination(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortListing(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDestinationDetail(detail))
}

// @Summary List hotels
// @Tags listings
// @Produce json
// @Param q query string false "Name or destination contains"
// @Param destination query string false "Destination name"
// @Param min_price query number false "Minimum nightly price"
// @Param max_price query number false "Maximum nightly price"
// @Param min_rating query number false "Minimum rating"
// @Param sort query string false "price_asc, price_desc, rating or name"
// @Success 200 {array} resdto.HotelResponse
// @Failure 400 {object} httperr.Response
// @Router /api/hotels [get]
func (h *ListingHandler) ListHotels(c *gin.Context) {
	var req reqdto.ListingQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := req.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	list, err := h.q.ListHotels(c.Request.Context(), filter)
	if err != nil {
		abortListing(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotels(list))
}

// @Summary Get hotel
// @Description Hotel with related hotels and reviews
// @Tags listings
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} resdto.HotelDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/hotels/{id} [get]
func (h *ListingHandler) GetHotel(c *gin.Context) {
	detail, err := h.q.GetHotel(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortListing(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromHotelDetail(detail))
}

// @Summary List tours
// @Tags listings
// @Produce json
// @Param q query string false "Name or destination contains"
// @Param destination query string false "Destination name"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param min_rating query number false "Minimum rating"
// @Param sort query string false "price_asc, price_desc, rating or name"
// @Success 200 {array} resdto.TourResponse
// @Failure 400 {object} httperr.Response
// @Router /api/tours [get]
func (h *ListingHandler) ListTours(c *gin.Context) {
	var req reqdto.ListingQuery
	if err := c.ShouldBindQuery(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	filter, err := req.ToFilter()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
		return
	}
	list, err := h.q.ListTours(c.Request.Context(), filter)
	if err != nil {
		abortListing(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTours(list))
}

// @Summary Get tour
// @Description Tour with related tours and reviews
// @Tags listings
// @Produce json
// @Param id path string true "Tour ID"
// @Success 200 {object} resdto.TourDetailResponse
// @Failure 404 {object} httperr.Response
// @Router /api/tours/{id} [get]
func (h *ListingHandler) GetTour(c *gin.Context) {
	detail, err := h.q.GetTour(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortListing(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromTourDetail(detail))
}

// @Summary List reviews
// @Tags listings
// @Produce json
// @Param itemId path string true "Hotel or tour ID"
// @Success 200 {array} resdto.ReviewResponse
// @Router /api/reviews/{itemId} [get]
func (h *ListingHandler) ListReviews(c *gin.Context) {
	list, err := h.q.ListReviews(c.Request.Context(), c.Param("itemId"))
	if err != nil {
		abortListing(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReviews(list))
}

func abortListing(c *gin.Context, err error) {
	if errs.Is(err, errs.ErrListingNotFound) {
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
		return
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
}
