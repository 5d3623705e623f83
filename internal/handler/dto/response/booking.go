package response

import (
	"encoding/json"
	"strconv"
	"time"

	"wanderlust-booking/internal/domain/booking"
	"wanderlust-booking/internal/usecase/commands"
	"wanderlust-booking/internal/usecase/queries"
	"wanderlust-booking/internal/usecase/shared"
)

// Amounts are emitted as JSON numbers with exactly two decimals, e.g. 2800.00.
func amount(m booking.Money) json.Number {
	return json.Number(m.String())
}

func rate(bp booking.BasisPoints) json.Number {
	return json.Number(strconv.FormatFloat(float64(bp)/10000, 'f', -1, 64))
}

type IntentResponse struct {
	ItemType   string      `json:"type"`
	ItemID     string      `json:"itemId"`
	ItemName   string      `json:"itemName"`
	CheckIn    string      `json:"checkIn,omitempty"`
	CheckOut   string      `json:"checkOut,omitempty"`
	GuestCount int         `json:"guests"`
	BasePrice  json.Number `json:"basePrice"`
	Currency   string      `json:"currency"`
}

type PricingResponse struct {
	NightsOrUnits  int         `json:"nightsOrUnits"`
	BasePrice      json.Number `json:"basePrice"`
	Subtotal       json.Number `json:"subtotal"`
	ServiceFeeRate json.Number `json:"serviceFeeRate"`
	ServiceFee     json.Number `json:"serviceFee"`
	TaxRate        json.Number `json:"taxRate"`
	Taxes          json.Number `json:"taxes"`
	Total          json.Number `json:"total"`
	Currency       string      `json:"currency"`
	TotalDisplay   string      `json:"totalDisplay"`
}

type QuoteResponse struct {
	Intent  IntentResponse  `json:"intent"`
	Pricing PricingResponse `json:"pricing"`
}

type SelectionResponse struct {
	Intent  IntentResponse  `json:"intent"`
	Pricing PricingResponse `json:"pricing"`
	Next    string          `json:"next"`
}

type WizardStateResponse struct {
	Step     int    `json:"step"`
	StepName string `json:"stepName"`
	Phase    string `json:"phase"`
	IsFirst  bool   `json:"isFirst"`
	IsLast   bool   `json:"isLast"`
}

type CurrentBookingResponse struct {
	Intent  IntentResponse      `json:"intent"`
	Pricing PricingResponse     `json:"pricing"`
	Wizard  WizardStateResponse `json:"wizard"`
}

type ConfirmationResponse struct {
	IntentResponse
	FirstName          string          `json:"firstName"`
	LastName           string          `json:"lastName"`
	Email              string          `json:"email"`
	Phone              string          `json:"phone"`
	CardholderName     string          `json:"cardholderName"`
	CardLast4          string          `json:"cardLast4"`
	AgreeToMarketing   bool            `json:"agreeToMarketing"`
	ConfirmationNumber string          `json:"confirmationNumber"`
	BookingDate        time.Time       `json:"bookingDate"`
	Status             string          `json:"status"`
	Pricing            PricingResponse `json:"pricing"`
}

type SubmitResponse struct {
	Confirmation ConfirmationResponse `json:"confirmation"`
	Next         string               `json:"next"`
}

func FromIntent(i *booking.Intent) IntentResponse {
	return IntentResponse{
		ItemType:   i.ItemType().String(),
		ItemID:     i.ItemID(),
		ItemName:   i.ItemName(),
		CheckIn:    booking.FormatDate(i.CheckIn()),
		CheckOut:   booking.FormatDate(i.CheckOut()),
		GuestCount: i.GuestCount(),
		BasePrice:  amount(i.BasePrice()),
		Currency:   i.Currency(),
	}
}

func FromPricing(p booking.DerivedPricing) PricingResponse {
	return PricingResponse{
		NightsOrUnits:  p.NightsOrUnits,
		BasePrice:      amount(p.BasePrice),
		Subtotal:       amount(p.Subtotal),
		ServiceFeeRate: rate(p.ServiceFeeRate),
		ServiceFee:     amount(p.ServiceFee),
		TaxRate:        rate(p.TaxRate),
		Taxes:          amount(p.Taxes),
		Total:          amount(p.Total),
		Currency:       p.Currency,
		TotalDisplay:   booking.FormatAmount(p.Total, p.Currency),
	}
}

func FromQuote(p *shared.PricedIntent) QuoteResponse {
	return QuoteResponse{Intent: FromIntent(p.Intent), Pricing: FromPricing(p.Pricing)}
}

func FromSelection(r *commands.SelectionResult) SelectionResponse {
	return SelectionResponse{
		Intent:  FromIntent(r.Intent),
		Pricing: FromPricing(r.Pricing),
		Next:    r.Next,
	}
}

func FromWizard(r *commands.WizardResult) WizardStateResponse {
	return WizardStateResponse{
		Step:     int(r.Step),
		StepName: r.Step.String(),
		Phase:    string(r.Phase),
		IsFirst:  r.First,
		IsLast:   r.Last,
	}
}

// FromCurrentBooking starts the wizard at its first step; the client owns
// the step from then on.
func FromCurrentBooking(p *shared.PricedIntent, stepValidation bool) CurrentBookingResponse {
	w := booking.NewWizard(stepValidation)
	return CurrentBookingResponse{
		Intent:  FromIntent(p.Intent),
		Pricing: FromPricing(p.Pricing),
		Wizard: FromWizard(&commands.WizardResult{
			Step:  w.Step(),
			Phase: w.Phase(),
			First: w.IsFirst(),
			Last:  w.IsLast(),
		}),
	}
}

func FromConfirmation(c *booking.Confirmation, p booking.DerivedPricing) ConfirmationResponse {
	d := c.Details()
	return ConfirmationResponse{
		IntentResponse:     FromIntent(c.Intent()),
		FirstName:          d.FirstName,
		LastName:           d.LastName,
		Email:              d.Email,
		Phone:              d.Phone,
		CardholderName:     d.CardholderName,
		CardLast4:          d.CardLast4(),
		AgreeToMarketing:   d.AgreeToMarketing,
		ConfirmationNumber: c.ConfirmationNumber(),
		BookingDate:        c.BookingDate(),
		Status:             c.Status().String(),
		Pricing:            FromPricing(p),
	}
}

func FromConfirmationView(v *queries.ConfirmationView) ConfirmationResponse {
	return FromConfirmation(v.Confirmation, v.Pricing)
}

func FromSubmit(r *commands.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Confirmation: FromConfirmation(r.Confirmation, r.Pricing),
		Next:         r.Next,
	}
}
