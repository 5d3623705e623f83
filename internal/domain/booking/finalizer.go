package booking

import (
	"strconv"
	"strings"
	"time"

	"wanderlust-booking/internal/pkg/clock"

	"github.com/google/uuid"
)

const DefaultConfirmationPrefix = "WL"

type NumberGenerator interface {
	Generate(at time.Time) string
}

// DefaultNumberGenerator produces e.g. WL1710460800000-3F9A1C: the
// millisecond timestamp keeps numbers ordered, the suffix separates
// bookings made in the same millisecond.
type DefaultNumberGenerator struct {
	Prefix string
}

func NewDefaultNumberGenerator(prefix string) *DefaultNumberGenerator {
	if prefix == "" {
		prefix = DefaultConfirmationPrefix
	}
	return &DefaultNumberGenerator{Prefix: prefix}
}

func (g *DefaultNumberGenerator) Generate(at time.Time) string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:6])
	return g.Prefix + strconv.FormatInt(at.UnixMilli(), 10) + "-" + suffix
}

type Finalizer struct {
	Clock   clock.Clock
	Numbers NumberGenerator
}

func NewFinalizer(clock clock.Clock, numbers NumberGenerator) *Finalizer {
	return &Finalizer{
		Clock:   clock,
		Numbers: numbers,
	}
}

// Finalize builds the confirmation field by field. It has no side effects;
// storing the result is up to the caller.
func (f *Finalizer) Finalize(intent *Intent, details Details) (*Confirmation, error) {
	if intent == nil {
		return nil, ErrMissingIntent
	}
	if errs := details.Validate(); len(errs) > 0 {
		return nil, errs
	}

	now := f.Clock.Now()
	return &Confirmation{
		intent:             intent,
		details:            details.Normalized(),
		confirmationNumber: f.Numbers.Generate(now),
		bookingDate:        now,
		status:             StatusConfirmed,
	}, nil
}
