//go:build unit

package queries_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"wanderlust-booking/internal/domain/booking"
	"wanderlust-booking/internal/infra/session"
	"wanderlust-booking/internal/pkg/errs"
	"wanderlust-booking/internal/usecase/queries"
	"wanderlust-booking/internal/usecase/shared"
	"wanderlust-booking/tests/common/builder"
	sharedmock "wanderlust-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	ctx           context.Context
	mockCtrl      *gomock.Controller
	store         *session.MemoryStore
	intents       *session.Slot[shared.IntentSnapshot]
	confirmations *session.Slot[shared.ConfirmationSnapshot]
	archive       *sharedmock.MockArchive
	q             queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s.store = session.NewMemoryStore()
	s.intents = session.NewSlot(s.store, shared.KeyCurrentBooking, shared.ValidateIntentSnapshot, logger, nil)
	s.confirmations = session.NewSlot(s.store, shared.KeyBookingConfirmation, shared.ValidateConfirmationSnapshot, logger, nil)
	s.archive = sharedmock.NewMockArchive(s.mockCtrl)
	s.q = queries.NewBookingQueries(s.intents, s.confirmations, booking.NewDefaultPriceCalculator(), s.archive)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) TestCurrentBooking() {
	s.Run("missing", func() {
		_, err := s.q.CurrentBooking(s.ctx, "sid-1")
		s.ErrorIs(err, errs.ErrNoCurrentBooking)
	})

	s.Run("corrupt value reads as missing", func() {
		s.Require().NoError(s.store.Write(s.ctx, "sid-2", shared.KeyCurrentBooking, []byte("{not json")))

		_, err := s.q.CurrentBooking(s.ctx, "sid-2")
		s.ErrorIs(err, errs.ErrNoCurrentBooking)
	})

	s.Run("pricing is recomputed from the stored intent", func() {
		s.Require().NoError(s.intents.Save(s.ctx, "sid-3", builder.NewIntentBuilder().BuildSnapshot()))

		got, err := s.q.CurrentBooking(s.ctx, "sid-3")
		s.Require().NoError(err)
		s.Equal("Hotel Yashoda International", got.Intent.ItemName())
		s.Equal(int64(1008000), got.Pricing.Total.Minor())
	})
}

func (s *BookingQueriesTestSuite) TestLoadConfirmation() {
	s.Run("missing", func() {
		_, err := s.q.LoadConfirmation(s.ctx, "sid-1")
		s.ErrorIs(err, errs.ErrConfirmationNotFound)
	})

	s.Run("an intent alone is not a confirmation", func() {
		s.Require().NoError(s.intents.Save(s.ctx, "sid-2", builder.NewIntentBuilder().BuildSnapshot()))

		_, err := s.q.LoadConfirmation(s.ctx, "sid-2")
		s.ErrorIs(err, errs.ErrConfirmationNotFound)
	})

	s.Run("stored confirmation", func() {
		snap := builder.NewConfirmationBuilder().BuildSnapshot()
		s.Require().NoError(s.confirmations.Save(s.ctx, "sid-3", snap))

		got, err := s.q.LoadConfirmation(s.ctx, "sid-3")
		s.Require().NoError(err)
		s.Equal(snap.ConfirmationNumber, got.Confirmation.ConfirmationNumber())
		s.Equal("4111 1111 1111 1111", got.Confirmation.Details().CardNumber)
		s.Equal(int64(1008000), got.Pricing.Total.Minor())
	})

	s.Run("confirmation without a number reads as missing", func() {
		snap := builder.NewConfirmationBuilder().With(func(b *builder.ConfirmationBuilder) {
			b.ConfirmationNumber = ""
		}).BuildSnapshot()
		s.Require().NoError(s.confirmations.Save(s.ctx, "sid-4", snap))

		_, err := s.q.LoadConfirmation(s.ctx, "sid-4")
		s.ErrorIs(err, errs.ErrConfirmationNotFound)
	})
}

func (s *BookingQueriesTestSuite) TestListArchived() {
	s.Run("returns the archive rows", func() {
		rows := []shared.ArchivedBooking{{ConfirmationNumber: "WL1-AAAAAA"}, {ConfirmationNumber: "WL0-BBBBBB"}}
		s.archive.EXPECT().ListBySession(gomock.Any(), "sid-1").Return(rows, nil)

		got, err := s.q.ListArchived(s.ctx, "sid-1")
		s.Require().NoError(err)
		s.Equal(rows, got)
	})

	s.Run("archive failure is marked", func() {
		s.archive.EXPECT().ListBySession(gomock.Any(), "sid-2").Return(nil, errors.New("db down"))

		_, err := s.q.ListArchived(s.ctx, "sid-2")
		s.True(errs.Is(err, errs.ErrArchiveFailed))
	})
}
