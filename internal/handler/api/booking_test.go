//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/session"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/infra/remote"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/httptest"
	commandsmock "venue-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingRequestCommands
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingRequestCommands(s.mockCtrl)
	h := api.NewBookingHandler(s.mockCommands)

	g := s.router.Group("/api", middleware.ErrorHandler(), fakeSession)
	g.POST("/venues/:id/bookings", h.Request)
	g.POST("/payments/confirm", h.Confirm)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

// ================================================================================
// TestRequest
// ================================================================================

func (s *BookingHandlerTestSuite) TestRequest() {
	url := "/api/venues/4/bookings"
	reqBody := map[string]any{"start_date": "2024-01-10", "end_date": "2024-01-12"}

	s.Run("success: 200 with the payment redirect", func() {
		s.mockCommands.EXPECT().
			Request(gomock.Any(), testSessionID, commands.BookingRequestInput{VenueID: 4, StartDate: "2024-01-10", EndDate: "2024-01-12"}).
			Return(&commands.BookingRequestResult{
				PaymentURL: "https://pay.example/checkout/abc",
				Pidx:       "abc",
				Intent:     &queries.IntentView{ID: "order-1", VenueID: 4, Amount: 2000},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("https://pay.example/checkout/abc", body.PaymentURL)
		require.NotNil(s.T(), body.Intent)
		s.Equal("order-1", body.Intent.ID)
		s.Nil(body.Booking)
	})

	s.Run("success: 201 when the booking is created directly", func() {
		s.mockCommands.EXPECT().Request(gomock.Any(), testSessionID, gomock.Any()).
			Return(&commands.BookingRequestResult{
				Booking: &queries.BookingView{ID: 11, VenueID: 4, Status: "pending"},
			}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		require.NotNil(s.T(), body.Booking)
		s.Equal("pending", body.Booking.Status)
		s.Empty(body.PaymentURL)
	})

	s.Run("error: 400 for a malformed venue id", func() {
		for _, path := range []string{"/api/venues/abc/bookings", "/api/venues/0/bookings"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, path, reqBody, "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "reversed dates",
				commandsError:  errs.Mark(errs.Field("end_date", booking.ErrInvalidDateRange.Error()), booking.ErrInvalidDateRange),
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "start date must not be after end date",
			},
			{
				name:           "overlapping booking",
				commandsError:  errs.Mark(booking.ErrAlreadyBooked, errs.ErrConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already booked for the selected dates",
			},
			{
				name:           "duplicate submission",
				commandsError:  errs.ErrActionInProgress,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "already in progress",
			},
			{
				name:           "signed out",
				commandsError:  errs.ErrUnauthenticated,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Please log in to continue",
			},
			{
				name:           "gateway refused",
				commandsError:  &remote.APIError{Kind: remote.KindBadRequest, StatusCode: 400, Detail: "Invalid amount"},
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid amount",
			},
			{
				name:           "remote unavailable",
				commandsError:  &remote.APIError{Kind: remote.KindUnavailable, StatusCode: 503},
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "unavailable",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Request(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestConfirm
// ================================================================================

func (s *BookingHandlerTestSuite) TestConfirm() {
	url := "/api/payments/confirm"

	s.Run("success: accepts the gateway query string", func() {
		s.mockCommands.EXPECT().
			Confirm(gomock.Any(), testSessionID, commands.PaymentCallback{PurchaseOrderID: "order-1", Pidx: "abc", Status: "Completed"}).
			Return(&queries.BookingView{ID: 12, Status: "pending"}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost,
			url+"?purchase_order_id=order-1&pidx=abc&status=Completed", nil, "")

		var body resdto.ConfirmPaymentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Payment successful, booking confirmed!", body.Message)
		s.Equal(int64(12), body.Booking.ID)
	})

	s.Run("success: accepts a json body", func() {
		s.mockCommands.EXPECT().
			Confirm(gomock.Any(), testSessionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, cb commands.PaymentCallback) (*queries.BookingView, error) {
				s.Equal("order-2", cb.PurchaseOrderID)
				return &queries.BookingView{ID: 13}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
			map[string]any{"purchase_order_id": "order-2", "status": "Completed"}, "")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, nil)
	})

	s.Run("error: 400 without a status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"?purchase_order_id=order-1", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "payment abandoned",
				commandsError:  commands.ErrPaymentNotCompleted,
				expectedStatus: http.StatusPaymentRequired,
				expectedMsg:    "Payment was not completed",
			},
			{
				name:           "nothing pending",
				commandsError:  errs.Mark(session.ErrNoPendingIntent, errs.ErrNotFound),
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "No pending booking to confirm",
			},
			{
				name:           "different order",
				commandsError:  errs.Mark(session.ErrIntentMismatch, errs.ErrConflict),
				expectedStatus: http.StatusConflict,
				expectedMsg:    "payment does not match",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Confirm(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url+"?status=Completed", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
