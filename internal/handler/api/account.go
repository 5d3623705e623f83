package api

import (
	"net/http"

	resdto "wanderlust-booking/internal/handler/dto/response"
	"wanderlust-booking/internal/handler/httperr"
	"wanderlust-booking/internal/handler/middleware"
	"wanderlust-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AccountHandler struct {
	q queries.BookingQueries
}

func NewAccountHandler(q queries.BookingQueries) *AccountHandler {
	return &AccountHandler{q: q}
}

// @Summary My bookings
// @Description Archived confirmations for this session, newest first
// @Tags account
// @Produce json
// @Success 200 {array} resdto.ArchivedBookingResponse
// @Failure 500 {object} httperr.Response
// @Router /api/account/bookings [get]
func (h *AccountHandler) Bookings(c *gin.Context) {
	list, err := h.q.ListArchived(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to load bookings", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromArchived(list))
}
