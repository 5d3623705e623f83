//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"wanderlust-booking/internal/domain/booking"
	"wanderlust-booking/internal/handler/api"
	resdto "wanderlust-booking/internal/handler/dto/response"
	"wanderlust-booking/internal/handler/httperr"
	"wanderlust-booking/internal/handler/middleware"
	"wanderlust-booking/internal/pkg/config"
	"wanderlust-booking/internal/pkg/errs"
	"wanderlust-booking/internal/usecase/commands"
	"wanderlust-booking/internal/usecase/queries"
	"wanderlust-booking/internal/usecase/shared"
	"wanderlust-booking/tests/common/builder"
	"wanderlust-booking/tests/common/httptest"
	"wanderlust-booking/tests/common/testutil"
	commandsmock "wanderlust-booking/tests/mock/commands"
	queriesmock "wanderlust-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSessionID = "5b0f1f0e-2c55-4f4e-9a57-0c1f1d9a7e11"

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	cfg          config.Config
	priced       *shared.PricedIntent
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.cfg = config.NewTestConfig()
	h := api.NewBookingHandler(s.mockCommands, s.mockQueries, s.cfg)

	intent, err := builder.NewIntentBuilder().BuildDomain()
	s.Require().NoError(err)
	s.priced = &shared.PricedIntent{Intent: intent, Pricing: booking.NewDefaultPriceCalculator().Compute(intent)}

	g := s.router.Group("/bookings", middleware.SessionMiddleware(s.cfg.Cookie))
	g.POST("/quote", h.Quote)
	g.POST("/selection", h.Select)
	g.GET("/current", h.Current)
	g.DELETE("/current", h.Clear)
	g.POST("/wizard/next", h.Next)
	g.POST("/wizard/back", h.Back)
	g.POST("/wizard/submit", h.Submit)
	g.GET("/confirmation", h.Confirmation)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) confirmation() (*booking.Confirmation, booking.DerivedPricing) {
	conf, err := builder.NewConfirmationBuilder().BuildDomain()
	s.Require().NoError(err)
	return conf, booking.NewDefaultPriceCalculator().Compute(conf.Intent())
}

// ================================================================================
// TestQuote / TestSelect
// ================================================================================

func (s *BookingHandlerTestSuite) TestQuote() {
	url := "/bookings/quote"
	reqBody := builder.NewIntentBuilder().BuildSelectionRequest()

	s.Run("success: pricing uses two-decimal amounts", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.SelectionInput) (*shared.PricedIntent, error) {
				s.Equal("hotel", in.ItemType)
				s.Equal("3", in.ItemID)
				s.Equal(2, in.GuestCount)
				s.Require().NotNil(in.CheckIn)
				s.Equal("2024-03-15", in.CheckIn.Format(booking.DateLayout))
				return s.priced, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionID)

		var body resdto.QuoteResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2800.00", body.Intent.BasePrice.String())
		s.Equal(3, body.Pricing.NightsOrUnits)
		s.Equal("8400.00", body.Pricing.Subtotal.String())
		s.Equal("0.12", body.Pricing.ServiceFeeRate.String())
		s.Equal("1008.00", body.Pricing.ServiceFee.String())
		s.Equal("0.08", body.Pricing.TaxRate.String())
		s.Equal("672.00", body.Pricing.Taxes.String())
		s.Equal("10080.00", body.Pricing.Total.String())
		s.Equal("₹10,080.00", body.Pricing.TotalDisplay)
	})

	s.Run("guest count defaults to one", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in commands.SelectionInput) (*shared.PricedIntent, error) {
				s.Equal(1, in.GuestCount)
				return s.priced, nil
			})

		requestMap := testutil.JSONMap(s.T(), reqBody, testutil.Drop("guestCount"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, testSessionID)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request on missing fields", func() {
		for _, field := range []string{"itemType", "itemId"} {
			s.Run(field, func() {
				requestMap := testutil.JSONMap(s.T(), reqBody, testutil.Drop(field))
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, testSessionID)
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
		}
	})

	s.Run("error: unparseable date disables reserve", func() {
		requestMap := testutil.JSONMap(s.T(), reqBody, testutil.Set("checkIn", "15/03/2024"))
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, testSessionID)

		var detail httperr.SelectionDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusUnprocessableEntity, &detail)
		s.True(detail.ReserveDisabled)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "checkout before checkin",
				commandsError:  errs.Mark(booking.ErrInvalidDateRange, errs.ErrInvalidSelection),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Invalid selection",
			},
			{
				name:           "unknown listing",
				commandsError:  errs.Mark(errors.New("listing not found"), errs.ErrListingNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Not found",
			},
			{
				name:           "catalog failure",
				commandsError:  errors.New("catalog unavailable"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: selection detail names the broken rule", func() {
		s.mockCommands.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(nil, errs.Mark(errs.Wrap(booking.ErrInvalidDateRange, "building intent"), errs.ErrInvalidSelection))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionID)

		var detail httperr.SelectionDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusUnprocessableEntity, &detail)
		s.True(detail.ReserveDisabled)
		s.Equal(booking.ErrInvalidDateRange.Error(), detail.Reason)
	})
}

func (s *BookingHandlerTestSuite) TestSelect() {
	url := "/bookings/selection"
	reqBody := builder.NewIntentBuilder().BuildSelectionRequest()

	s.Run("success: 201 with the wizard as next", func() {
		s.mockCommands.EXPECT().SelectItem(gomock.Any(), testSessionID, gomock.Any()).
			Return(&commands.SelectionResult{PricedIntent: *s.priced, Next: s.cfg.Booking.WizardPath}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionID)

		var body resdto.SelectionResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.cfg.Booking.WizardPath, body.Next)
		s.Equal("Hotel Yashoda International", body.Intent.ItemName)
		httptest.AssertHeaders(s.T(), rec, map[string]string{
			"Location":                 s.cfg.Booking.WizardPath,
			middleware.SessionIDHeader: testSessionID,
		})
	})

	s.Run("a session is issued when none is sent", func() {
		var issued string
		s.mockCommands.EXPECT().SelectItem(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, sid string, _ commands.SelectionInput) (*commands.SelectionResult, error) {
				issued = sid
				return &commands.SelectionResult{PricedIntent: *s.priced, Next: s.cfg.Booking.WizardPath}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)

		s.NotEmpty(issued)
		s.Equal(issued, rec.Header().Get(middleware.SessionIDHeader))
		c := httptest.ExtractCookie(rec, s.cfg.Cookie.Name)
		s.Require().NotNil(c)
		s.Equal(issued, c.Value)
	})
}

// ================================================================================
// TestCurrent / TestClear
// ================================================================================

func (s *BookingHandlerTestSuite) TestCurrent() {
	url := "/bookings/current"

	s.Run("success: intent, pricing and a fresh wizard", func() {
		s.mockQueries.EXPECT().CurrentBooking(gomock.Any(), testSessionID).Return(s.priced, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testSessionID)

		var body resdto.CurrentBookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2024-03-15", body.Intent.CheckIn)
		s.Equal("10080.00", body.Pricing.Total.String())
		s.Equal(1, body.Wizard.Step)
		s.Equal("personal-details", body.Wizard.StepName)
		s.True(body.Wizard.IsFirst)
	})

	s.Run("error: 404 with redirect when nothing is selected", func() {
		s.mockQueries.EXPECT().CurrentBooking(gomock.Any(), testSessionID).Return(nil, errs.ErrNoCurrentBooking)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testSessionID)

		var detail httperr.RedirectDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusNotFound, &detail)
		s.Equal("/", detail.Redirect)
	})
}

func (s *BookingHandlerTestSuite) TestClear() {
	s.mockCommands.EXPECT().ClearSelection(gomock.Any(), testSessionID).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/current", nil, testSessionID)
	s.Equal(http.StatusNoContent, rec.Code)
}

// ================================================================================
// TestWizard
// ================================================================================

func (s *BookingHandlerTestSuite) TestNext() {
	url := "/bookings/wizard/next"
	details := builder.NewDetailsBuilder()

	s.Run("success: returns the new step", func() {
		s.mockCommands.EXPECT().Advance(gomock.Any(), testSessionID, booking.StepPersonalDetails, details.BuildDomain()).
			Return(&commands.WizardResult{Step: booking.StepPayment, Phase: booking.PhaseEditing}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, details.BuildWizardRequest(booking.StepPersonalDetails), testSessionID)

		var body resdto.WizardStateResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Step)
		s.Equal("payment", body.StepName)
		s.Equal("editing", body.Phase)
	})

	s.Run("error: 400 on out-of-range step", func() {
		for _, step := range []int{0, 4} {
			requestMap := testutil.JSONMap(s.T(), details.BuildWizardRequest(booking.StepPayment), testutil.Set("step", step))
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, testSessionID)
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
		}
	})

	s.Run("error: 422 lists the failing fields", func() {
		verrs := booking.Details{}.Validate(booking.StepPersonalDetails)
		s.mockCommands.EXPECT().Advance(gomock.Any(), testSessionID, booking.StepPersonalDetails, gomock.Any()).
			Return(nil, errs.Mark(verrs, errs.ErrValidationFailed))

		emptyForm := map[string]any{"step": 1, "details": map[string]any{}}
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, emptyForm, testSessionID)

		var detail httperr.ValidationDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusUnprocessableEntity, &detail)
		s.Equal(1, detail.Step)
		s.Equal("personal-details", detail.StepName)
		s.Contains(detail.Fields, booking.FieldFirstName)
		s.Contains(detail.Fields, booking.FieldEmail)
	})

	s.Run("error: 404 with redirect without a booking", func() {
		s.mockCommands.EXPECT().Advance(gomock.Any(), testSessionID, gomock.Any(), gomock.Any()).
			Return(nil, errs.ErrNoCurrentBooking)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, details.BuildWizardRequest(booking.StepPersonalDetails), testSessionID)

		var detail httperr.RedirectDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusNotFound, &detail)
		s.Equal(s.cfg.Booking.MissingSessionRoute, detail.Redirect)
	})
}

func (s *BookingHandlerTestSuite) TestBack() {
	s.mockCommands.EXPECT().Retreat(gomock.Any(), testSessionID, booking.StepReview).
		Return(&commands.WizardResult{Step: booking.StepPayment, Phase: booking.PhaseEditing}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings/wizard/back", map[string]any{"step": 3}, testSessionID)

	var body resdto.WizardStateResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Equal(2, body.Step)
}

// ================================================================================
// TestSubmit / TestConfirmation
// ================================================================================

func (s *BookingHandlerTestSuite) TestSubmit() {
	url := "/bookings/wizard/submit"
	reqBody := builder.NewDetailsBuilder().BuildWizardRequest(booking.StepReview)

	s.Run("success: 201 and the confirmation page as next", func() {
		conf, pricing := s.confirmation()
		s.mockCommands.EXPECT().Submit(gomock.Any(), testSessionID, booking.StepReview, gomock.Any()).
			Return(&commands.SubmitResult{Confirmation: conf, Pricing: pricing, Next: s.cfg.Booking.ConfirmationPath}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionID)

		var body resdto.SubmitResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(s.cfg.Booking.ConfirmationPath, body.Next)
		s.Equal(conf.ConfirmationNumber(), body.Confirmation.ConfirmationNumber)
		s.Equal("1111", body.Confirmation.CardLast4)
		s.Equal("confirmed", body.Confirmation.Status)
		s.Equal("10080.00", body.Confirmation.Pricing.Total.String())
		s.NotContains(rec.Body.String(), "4111")
		httptest.AssertHeaders(s.T(), rec, map[string]string{"Location": s.cfg.Booking.ConfirmationPath})
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not at review",
				commandsError:  errs.Mark(booking.ErrNotAtFinalStep, errs.ErrInvalidTransition),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Invalid booking step",
			},
			{
				name:           "processing wait cancelled",
				commandsError:  errs.Mark(errors.New("context canceled"), errs.ErrSubmitInterrupted),
				expectedStatus: http.StatusServiceUnavailable,
				expectedMsg:    "interrupted",
			},
			{
				name:           "session store down",
				commandsError:  errs.Mark(errors.New("redis: connection refused"), errs.ErrSessionStoreFailed),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Submit(gomock.Any(), testSessionID, gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionID)
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})

	s.Run("error: 422 points at the first failing step", func() {
		bad := builder.NewDetailsBuilder().With(func(b *builder.DetailsBuilder) { b.CVV = "" }).BuildDomain()
		s.mockCommands.EXPECT().Submit(gomock.Any(), testSessionID, booking.StepReview, gomock.Any()).
			Return(nil, errs.Mark(bad.Validate(), errs.ErrValidationFailed))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, testSessionID)

		var detail httperr.ValidationDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusUnprocessableEntity, &detail)
		s.Equal(2, detail.Step)
		s.Equal(map[string]string{booking.FieldCVV: "Please enter CVV"}, detail.Fields)
	})
}

func (s *BookingHandlerTestSuite) TestConfirmation() {
	url := "/bookings/confirmation"

	s.Run("success", func() {
		conf, pricing := s.confirmation()
		s.mockQueries.EXPECT().LoadConfirmation(gomock.Any(), testSessionID).
			Return(&queries.ConfirmationView{Confirmation: conf, Pricing: pricing}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testSessionID)

		var body resdto.ConfirmationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("Priya", body.FirstName)
		s.Equal("Hotel Yashoda International", body.ItemName)
		s.Equal("2024-03-18", body.CheckOut)
		s.Equal("8400.00", body.Pricing.Subtotal.String())
	})

	s.Run("error: 404 with redirect when nothing was confirmed", func() {
		s.mockQueries.EXPECT().LoadConfirmation(gomock.Any(), testSessionID).Return(nil, errs.ErrConfirmationNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, testSessionID)

		var detail httperr.RedirectDetail
		httptest.AssertErrorDetail(s.T(), rec, http.StatusNotFound, &detail)
		s.Equal("/", detail.Redirect)
	})
}
