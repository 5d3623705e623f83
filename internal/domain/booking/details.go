package booking

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	FieldFirstName        = "firstName"
	FieldLastName         = "lastName"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldCardholderName   = "cardholderName"
	FieldCardNumber       = "cardNumber"
	FieldExpiry           = "expiry"
	FieldCVV              = "cvv"
	FieldAgreeToTerms     = "agreeToTerms"
	FieldAgreeToMarketing = "agreeToMarketing"
)

var (
	emailRegex  = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	expiryRegex = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
)

// Details holds what the wizard collects across its steps. The client owns
// these values until submission; they are only stored as part of a
// Confirmation.
type Details struct {
	FirstName        string
	LastName         string
	Email            string
	Phone            string
	CardholderName   string
	CardNumber       string
	Expiry           string
	CVV              string
	AgreeToTerms     bool
	AgreeToMarketing bool
}

type fieldRule struct {
	field string
	step  Step
	check func(d Details) bool
	msg   string
}

var detailRules = []fieldRule{
	{FieldFirstName, StepPersonalDetails, func(d Details) bool { return minLen(d.FirstName, 2) }, "First name must be at least 2 characters"},
	{FieldLastName, StepPersonalDetails, func(d Details) bool { return minLen(d.LastName, 2) }, "Last name must be at least 2 characters"},
	{FieldEmail, StepPersonalDetails, func(d Details) bool { return emailRegex.MatchString(strings.TrimSpace(d.Email)) }, "Please enter a valid email address"},
	{FieldPhone, StepPersonalDetails, func(d Details) bool { return minLen(d.Phone, 10) }, "Please enter a valid phone number"},
	{FieldCardNumber, StepPayment, func(d Details) bool { return minLen(compactDigits(d.CardNumber), 16) }, "Please enter a valid card number"},
	{FieldExpiry, StepPayment, func(d Details) bool { return expiryRegex.MatchString(strings.TrimSpace(d.Expiry)) }, "Please enter expiry date (MM/YY)"},
	{FieldCVV, StepPayment, func(d Details) bool { return minLen(d.CVV, 3) }, "Please enter CVV"},
	{FieldCardholderName, StepPayment, func(d Details) bool { return minLen(d.CardholderName, 2) }, "Please enter cardholder name"},
	{FieldAgreeToTerms, StepReview, func(d Details) bool { return d.AgreeToTerms }, "You must agree to the terms"},
}

// Validate checks the fields belonging to the given steps, or every field
// when no step is given.
func (d Details) Validate(steps ...Step) ValidationErrors {
	var errs ValidationErrors
	for _, r := range detailRules {
		if len(steps) > 0 && !containsStep(steps, r.step) {
			continue
		}
		if !r.check(d) {
			errs = append(errs, FieldError{Field: r.field, Step: r.step, Message: r.msg})
		}
	}
	return errs
}

// CardLast4 returns the last four digits of the card number, or "" when too short.
func (d Details) CardLast4() string {
	digits := compactDigits(d.CardNumber)
	if len(digits) < 4 {
		return ""
	}
	return digits[len(digits)-4:]
}

// Normalized trims surrounding whitespace from every text field.
func (d Details) Normalized() Details {
	d.FirstName = strings.TrimSpace(d.FirstName)
	d.LastName = strings.TrimSpace(d.LastName)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.CardholderName = strings.TrimSpace(d.CardholderName)
	d.CardNumber = compactDigits(d.CardNumber)
	d.Expiry = strings.TrimSpace(d.Expiry)
	d.CVV = strings.TrimSpace(d.CVV)
	return d
}

type FieldError struct {
	Field   string
	Step    Step
	Message string
}

type ValidationErrors []FieldError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(v))
	for _, fe := range v {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (v ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(v))
	for _, fe := range v {
		out[fe.Field] = fe.Message
	}
	return out
}

// FirstStep is the earliest step with a failing field, so the client can jump back to it.
func (v ValidationErrors) FirstStep() Step {
	first := Step(0)
	for _, fe := range v {
		if first == 0 || fe.Step < first {
			first = fe.Step
		}
	}
	return first
}

func (v ValidationErrors) Has(field string) bool {
	for _, fe := range v {
		if fe.Field == field {
			return true
		}
	}
	return false
}

func minLen(s string, n int) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= n
}

// compactDigits drops the spaces and dashes people type into card numbers.
func compactDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '-' {
			return -1
		}
		return r
	}, strings.TrimSpace(s))
}

func containsStep(steps []Step, s Step) bool {
	for _, st := range steps {
		if st == s {
			return true
		}
	}
	return false
}
