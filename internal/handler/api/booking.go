package api

import (
	"net/http"

	"wanderlust-booking/internal/domain/booking"
	reqdto "wanderlust-booking/internal/handler/dto/request"
	resdto "wanderlust-booking/internal/handler/dto/response"
	"wanderlust-booking/internal/handler/httperr"
	"wanderlust-booking/internal/handler/middleware"
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/internal/pkg/errs"
	"wanderlust-booking/internal/usecase/commands"
	"wanderlust-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
	cfg  config.BookingConfig
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries, cfg config.Config) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q, cfg: cfg.Booking}
}

// @Summary Quote a selection
// @Description Price an item and date range without starting a booking
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.SelectionRequest true "Selection"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/quote [post]
func (h *BookingHandler) Quote(c *gin.Context) {
	in, ok := bindSelection(c)
	if !ok {
		return
	}
	quote, err := h.cmds.Quote(c.Request.Context(), in)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuote(quote))
}

// @Summary Select an item
// @Description Capture the booking intent and hand the client to the booking details page
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.SelectionRequest true "Selection"
// @Success 201 {object} resdto.SelectionResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/selection [post]
func (h *BookingHandler) Select(c *gin.Context) {
	in, ok := bindSelection(c)
	if !ok {
		return
	}
	result, err := h.cmds.SelectItem(c.Request.Context(), middleware.GetSessionID(c), in)
	if err != nil {
		h.abort(c, err)
		return
	}
	c.Header("Location", result.Next)
	c.JSON(http.StatusCreated, resdto.FromSelection(result))
}

// @Summary Current booking
// @Description Load the booking in progress for the details page
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.CurrentBookingResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/current [get]
func (h *BookingHandler) Current(c *gin.Context) {
	current, err := h.q.CurrentBooking(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCurrentBooking(current, h.cfg.StepValidation))
}

// @Summary Restart selection
// @Tags bookings
// @Success 204
// @Router /api/bookings/current [delete]
func (h *BookingHandler) Clear(c *gin.Context) {
	if err := h.cmds.ClearSelection(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		h.abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Next wizard step
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.WizardRequest true "Current step and details"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/wizard/next [post]
func (h *BookingHandler) Next(c *gin.Context) {
	var req reqdto.WizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Advance(c.Request.Context(), middleware.GetSessionID(c), booking.Step(req.Step), req.Details.ToDomain())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(result))
}

// @Summary Previous wizard step
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.WizardRequest true "Current step"
// @Success 200 {object} resdto.WizardStateResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/wizard/back [post]
func (h *BookingHandler) Back(c *gin.Context) {
	var req reqdto.WizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Retreat(c.Request.Context(), middleware.GetSessionID(c), booking.Step(req.Step))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWizard(result))
}

// @Summary Submit booking
// @Description Validate every field, finalize and store the confirmation
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.WizardRequest true "Review step and all details"
// @Success 201 {object} resdto.SubmitResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /api/bookings/wizard/submit [post]
func (h *BookingHandler) Submit(c *gin.Context) {
	var req reqdto.WizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.cmds.Submit(c.Request.Context(), middleware.GetSessionID(c), booking.Step(req.Step), req.Details.ToDomain())
	if err != nil {
		h.abort(c, err)
		return
	}
	c.Header("Location", result.Next)
	c.JSON(http.StatusCreated, resdto.FromSubmit(result))
}

// @Summary Booking confirmation
// @Tags bookings
// @Produce json
// @Success 200 {object} resdto.ConfirmationResponse
// @Failure 404 {object} httperr.Response
// @Router /api/bookings/confirmation [get]
func (h *BookingHandler) Confirmation(c *gin.Context) {
	view, err := h.q.LoadConfirmation(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfirmationView(view))
}

func bindSelection(c *gin.Context) (commands.SelectionInput, bool) {
	var req reqdto.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return commands.SelectionInput{}, false
	}
	checkIn, checkOut, err := req.DateRange()
	if err != nil {
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid selection",
			httperr.SelectionDetail{ReserveDisabled: true, Reason: err.Error()})
		return commands.SelectionInput{}, false
	}
	return commands.SelectionInput{
		ItemType:   req.ItemType,
		ItemID:     req.ItemID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		GuestCount: req.Guests(),
	}, true
}

func (h *BookingHandler) abort(c *gin.Context, err error) {
	var verrs booking.ValidationErrors
	switch {
	case errs.Is(err, errs.ErrNoCurrentBooking):
		httperr.AbortWithError(c, http.StatusNotFound, err, "No booking in progress",
			httperr.RedirectDetail{Redirect: h.cfg.MissingSessionRoute})
	case errs.Is(err, errs.ErrConfirmationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking confirmation not found",
			httperr.RedirectDetail{Redirect: h.cfg.MissingSessionRoute})
	case errs.Is(err, errs.ErrListingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrInvalidSelection):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid selection",
			httperr.SelectionDetail{ReserveDisabled: true, Reason: rootMessage(err)})
	case errs.Is(err, errs.ErrValidationFailed) && errs.As(err, &verrs):
		step := verrs.FirstStep()
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Please correct the highlighted fields",
			httperr.ValidationDetail{Fields: verrs.Fields(), Step: int(step), StepName: step.String()})
	case errs.Is(err, errs.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid booking step", nil)
	case errs.Is(err, errs.ErrSubmitInterrupted):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Booking submission was interrupted", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// rootMessage strips wrapping so clients see the domain rule that failed.
func rootMessage(err error) string {
	for _, e := range []error{
		booking.ErrInvalidItemType,
		booking.ErrInvalidGuestCount,
		booking.ErrIncompleteDateRange,
		booking.ErrInvalidDateRange,
		booking.ErrNegativePrice,
		booking.ErrMissingCurrency,
		booking.ErrMissingItem,
	} {
		if errs.Is(err, e) {
			return e.Error()
		}
	}
	return err.Error()
}
