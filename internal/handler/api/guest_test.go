//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/httptest"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuestBookingsHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockGuestBookingsCommands
	mockQueries  *queriesmock.MockGuestQueries
}

func (s *GuestBookingsHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockGuestBookingsCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockGuestQueries(s.mockCtrl)
	h := api.NewGuestBookingsHandler(s.mockCommands, s.mockQueries)

	g := s.router.Group("/api/guest", middleware.ErrorHandler(), fakeSession)
	g.GET("/bookings", h.Load)
	g.POST("/bookings/filter", h.Filter)
	g.GET("/bookings/cancelled", h.Cancelled)
	g.POST("/bookings/:id/cancel", h.Cancel)
}

func (s *GuestBookingsHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestBookingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestBookingsHandlerTestSuite))
}

func guestView(filter string, statuses ...string) *queries.GuestBookingsView {
	v := &queries.GuestBookingsView{Filter: filter, Total: len(statuses), Bookings: []queries.GuestBookingView{}}
	for i, st := range statuses {
		v.Bookings = append(v.Bookings, queries.GuestBookingView{
			BookingView: queries.BookingView{ID: int64(30 + i), Status: st},
			Venue:       queries.VenueView{ID: 4, Name: "Hall A"},
		})
	}
	return v
}

func (s *GuestBookingsHandlerTestSuite) TestLoad() {
	s.Run("success: returns bookings with their venues", func() {
		s.mockCommands.EXPECT().Load(gomock.Any(), testSessionID).Return(guestView("all", "pending", "confirmed"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guest/bookings", nil, "")

		var body queries.GuestBookingsView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(2, body.Total)
		s.Equal("Hall A", body.Bookings[1].Venue.Name)
	})

	s.Run("error: 502 when the remote api is down", func() {
		s.mockCommands.EXPECT().Load(gomock.Any(), testSessionID).
			Return(nil, errs.Mark(errs.New("list bookings"), errs.ErrRemoteUnavailable))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guest/bookings", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadGateway, "unavailable")
	})
}

func (s *GuestBookingsHandlerTestSuite) TestFilter() {
	url := "/api/guest/bookings/filter"

	s.Run("success: parses the status filter", func() {
		s.mockCommands.EXPECT().Filter(gomock.Any(), testSessionID, booking.FilterPending).
			Return(guestView("pending", "pending"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "pending"}, "")

		var body queries.GuestBookingsView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("pending", body.Filter)
	})

	s.Run("success: an empty status shows everything", func() {
		s.mockCommands.EXPECT().Filter(gomock.Any(), testSessionID, booking.FilterAll).
			Return(guestView("all"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 for an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"status": "rejected"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "filter must be one of")
	})
}

func (s *GuestBookingsHandlerTestSuite) TestCancel() {
	url := "/api/guest/bookings/30/cancel"

	s.Run("success: passes reason and notify through", func() {
		s.mockCommands.EXPECT().
			Cancel(gomock.Any(), testSessionID, int64(30), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, _ int64, in commands.CancelInput) (*queries.GuestBookingsView, error) {
				s.True(in.Confirm)
				s.Equal("plans changed", in.Reason)
				s.Require().NotNil(in.Notify)
				s.False(*in.Notify)
				return guestView("all"), nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"confirm": true, "reason": "plans changed", "notify": false}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 when not confirmed", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), testSessionID, int64(30), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrCancelNotConfirmed, errs.ErrConfirmationMissing))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"confirm": false}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Cancellation must be confirmed")
	})

	s.Run("error: 404 for a booking not in the list", func() {
		s.mockCommands.EXPECT().Cancel(gomock.Any(), testSessionID, int64(30), gomock.Any()).
			Return(nil, errs.Mark(commands.ErrBookingNotListed, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"confirm": true}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

func (s *GuestBookingsHandlerTestSuite) TestCancelled() {
	want := []queries.CancellationView{{
		VenueName:    "Hall A",
		VenueAddress: "Kathmandu",
		StartDate:    "2024-01-10",
		EndDate:      "2024-01-12",
		Reason:       "plans changed",
		Status:       "cancelled",
	}}
	s.mockQueries.EXPECT().Cancelled(gomock.Any(), testSessionID).Return(want, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/guest/bookings/cancelled", nil, "")

	var body resdto.CancellationsResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	if diff := cmp.Diff(want, body.Cancellations); diff != "" {
		s.Failf("cancellations mismatch", "(-want +got):\n%s", diff)
	}
}
