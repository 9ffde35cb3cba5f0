//go:build unit

package commands_test

import (
	"context"
	"testing"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/session"
	"venue-booking/internal/infra/remote"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/shared"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/sessiontest"
	sharedmock "venue-booking/tests/mock/shared"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingRequestTestSuite struct {
	suite.Suite
	ctx      context.Context
	env      *sessiontest.Env
	venues   *sharedmock.MockVenueGateway
	bookings *sharedmock.MockBookingGateway
	payments *sharedmock.MockPaymentGateway
	cmd      commands.BookingRequestCommands
	sid      string
}

func TestBookingRequestSuite(t *testing.T) {
	suite.Run(t, new(BookingRequestTestSuite))
}

func (s *BookingRequestTestSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.ctx = context.Background()
	s.env = sessiontest.New()
	s.venues = sharedmock.NewMockVenueGateway(ctrl)
	s.bookings = sharedmock.NewMockBookingGateway(ctrl)
	s.payments = sharedmock.NewMockPaymentGateway(ctrl)
	s.cmd = s.build(s.env.Config.Booking.RequirePayment)
	s.sid = s.env.SignIn(s.T(), 2, false)
}

func (s *BookingRequestTestSuite) build(requirePayment bool) commands.BookingRequestCommands {
	cfg := s.env.Config
	cfg.Booking.RequirePayment = requirePayment
	return commands.NewBookingRequestCommands(s.env.Store, s.env.Guard, s.env.Decoder, s.venues, s.bookings, s.payments, s.env.Clock, cfg)
}

func (s *BookingRequestTestSuite) hallA(bookings ...booking.Booking) booking.VenueBookings {
	return builder.NewVenueBuilder().WithBookings(bookings...).BuildWithBookings()
}

func (s *BookingRequestTestSuite) request() commands.BookingRequestInput {
	return commands.BookingRequestInput{VenueID: 1, StartDate: "2024-01-10", EndDate: "2024-01-12"}
}

func (s *BookingRequestTestSuite) TestRequestRejectsBadInputBeforeAnyCall() {
	cases := []struct {
		name  string
		start string
		end   string
	}{
		{name: "missing start", start: "", end: "2024-01-12"},
		{name: "unparseable", start: "10/01/2024", end: "2024-01-12"},
		{name: "end before start", start: "2024-01-12", end: "2024-01-10"},
	}
	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, err := s.cmd.Request(s.ctx, s.sid, commands.BookingRequestInput{VenueID: 1, StartDate: tc.start, EndDate: tc.end})
			s.Error(err)
			s.True(errs.Is(err, errs.ErrValidation), "got %v", err)
		})
	}
}

func (s *BookingRequestTestSuite) TestRequestNeedsSignIn() {
	_, err := s.cmd.Request(s.ctx, s.env.Anonymous(s.T()), s.request())
	s.True(errs.Is(err, errs.ErrUnauthenticated))
}

func (s *BookingRequestTestSuite) TestRequestRefusesOverlap() {
	held := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
		b.Start, b.End = "2024-01-11", "2024-01-13"
	}).BuildDomain()
	s.venues.EXPECT().GetVenue(gomock.Any(), int64(1)).Return(s.hallA(held), nil)

	_, err := s.cmd.Request(s.ctx, s.sid, s.request())
	s.True(errs.Is(err, errs.ErrConflict))
	s.Nil(s.env.Session(s.T(), s.sid).Intent)
}

func (s *BookingRequestTestSuite) TestRequestStartsPayment() {
	s.venues.EXPECT().GetVenue(gomock.Any(), int64(1)).Return(s.hallA(), nil)
	s.payments.EXPECT().InitiatePayment(gomock.Any(), s.env.Token(s.T(), s.sid), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, req shared.PaymentRequest) (shared.PaymentRedirect, error) {
			s.Equal(2000.0, req.Intent.Amount)
			s.Equal(int64(200000), req.Intent.AmountPaisa())
			s.Equal(s.env.Config.Payment.ReturnURL, req.ReturnURL)

			stored := s.env.Session(s.T(), s.sid).Intent
			s.Require().NotNil(stored, "intent is persisted before the redirect")
			s.Equal(req.Intent.ID, stored.ID)
			return shared.PaymentRedirect{URL: "https://pay.example.com/?pidx=p1", Pidx: "p1"}, nil
		})

	res, err := s.cmd.Request(s.ctx, s.sid, s.request())
	s.Require().NoError(err)
	s.Equal("https://pay.example.com/?pidx=p1", res.PaymentURL)
	s.Require().NotNil(res.Intent)
	s.Equal("Hall A", res.Intent.VenueName)
	s.Nil(res.Booking)
}

func (s *BookingRequestTestSuite) TestFailedPaymentClearsIntent() {
	s.venues.EXPECT().GetVenue(gomock.Any(), int64(1)).Return(s.hallA(), nil)
	s.payments.EXPECT().InitiatePayment(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(shared.PaymentRedirect{}, &remote.APIError{Kind: remote.KindUnavailable})

	_, err := s.cmd.Request(s.ctx, s.sid, s.request())
	s.True(errs.Is(err, errs.ErrRemoteUnavailable))
	s.Nil(s.env.Session(s.T(), s.sid).Intent)
}

func (s *BookingRequestTestSuite) TestDirectCreateWithoutPayment() {
	cmd := s.build(false)
	s.venues.EXPECT().GetVenue(gomock.Any(), int64(1)).Return(s.hallA(), nil)
	s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), booking.New{UserID: 2, VenueID: 1, Dates: builder.Dates("2024-01-10", "2024-01-12")}).
		Return(builder.NewBookingBuilder().BuildDomain(), nil)

	res, err := cmd.Request(s.ctx, s.sid, s.request())
	s.Require().NoError(err)
	s.Require().NotNil(res.Booking)
	s.Equal(booking.StatusPending.String(), res.Booking.Status)
	s.Empty(res.PaymentURL)
}

func (s *BookingRequestTestSuite) TestDuplicateRequestIsRefused() {
	held, err := s.env.Guard.Acquire(s.ctx, shared.GuardKey(s.sid, "book", int64(1)))
	s.Require().NoError(err)
	s.Require().True(held)

	_, err = s.cmd.Request(s.ctx, s.sid, s.request())
	s.True(errs.Is(err, errs.ErrActionInProgress))
}

func (s *BookingRequestTestSuite) withIntent() booking.Intent {
	in := booking.NewIntent(2, 1, "Hall A", builder.Dates("2024-01-10", "2024-01-12"), 1000, s.env.Clock.Now())
	s.env.Mutate(s.T(), s.sid, func(sess *session.Session) { sess.Intent = &in })
	return in
}

func (s *BookingRequestTestSuite) TestConfirmCreatesExactlyOnce() {
	in := s.withIntent()
	s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), in.Booking()).
		Return(builder.NewBookingBuilder().BuildDomain(), nil).
		Times(1)

	cb := commands.PaymentCallback{PurchaseOrderID: in.ID.String(), Pidx: "p1", Status: commands.PaymentStatusCompleted}
	view, err := s.cmd.Confirm(s.ctx, s.sid, cb)
	s.Require().NoError(err)
	s.Equal(int64(10), view.ID)
	s.Nil(s.env.Session(s.T(), s.sid).Intent)

	_, err = s.cmd.Confirm(s.ctx, s.sid, cb)
	s.True(errs.Is(err, errs.ErrNotFound))
	s.True(errs.Is(err, session.ErrNoPendingIntent))
}

func (s *BookingRequestTestSuite) TestConfirmIntentIsConsumedEvenIfCreateFails() {
	in := s.withIntent()
	s.bookings.EXPECT().CreateBooking(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(booking.Booking{}, &remote.APIError{Kind: remote.KindBadRequest, Detail: "Overlaps"})

	_, err := s.cmd.Confirm(s.ctx, s.sid, commands.PaymentCallback{PurchaseOrderID: in.ID.String(), Status: commands.PaymentStatusCompleted})
	s.True(errs.Is(err, errs.ErrRemoteRejected))
	s.Nil(s.env.Session(s.T(), s.sid).Intent)
}

func (s *BookingRequestTestSuite) TestConfirmAbandonedPayment() {
	in := s.withIntent()

	_, err := s.cmd.Confirm(s.ctx, s.sid, commands.PaymentCallback{PurchaseOrderID: in.ID.String(), Status: "User canceled"})
	s.True(errs.Is(err, commands.ErrPaymentNotCompleted))
	s.Nil(s.env.Session(s.T(), s.sid).Intent)
}

func (s *BookingRequestTestSuite) TestConfirmForAnotherOrderKeepsIntent() {
	s.withIntent()

	_, err := s.cmd.Confirm(s.ctx, s.sid, commands.PaymentCallback{PurchaseOrderID: "other", Status: commands.PaymentStatusCompleted})
	s.True(errs.Is(err, errs.ErrConflict))
	s.NotNil(s.env.Session(s.T(), s.sid).Intent)
}
