//go:build e2e

package booking_test

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"

	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	ownerName  = "hall-owner"
	guestName  = "guest-one"
	secondName = "guest-two"
	password   = "correct-horse"
)

type BookingFlowSuite struct {
	e2e.SharedSuite
	ownerID int64
	guestID int64
}

func (s *BookingFlowSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.ownerID = s.Remote.SeedUser(ownerName, password, true)
	s.guestID = s.Remote.SeedUser(guestName, password, false)
	s.Remote.SeedUser(secondName, password, false)
}

func TestBookingFlowSuite(t *testing.T) {
	suite.Run(t, new(BookingFlowSuite))
}

// =============================================================================
// TestRegisterBookAcceptCancel walks a venue from registration through a
// paid booking, owner acceptance and guest cancellation.
// =============================================================================

func (s *BookingFlowSuite) TestRegisterBookAcceptCancel() {
	owner := s.NewBrowser()
	guest := s.NewBrowser()
	var venueID, bookingID int64

	s.Run("owner signs in and lands on the owner dashboard", func() {
		owner.Login(ownerName, password)

		var me queries.MeView
		httptest.AssertSuccessResponse(s.T(), owner.Do(http.MethodGet, "/api/session/me", nil), http.StatusOK, &me)
		s.Equal(s.ownerID, me.UserID)
		s.Equal("owner", me.Landing)
	})

	s.Run("owner registers Hall A through the wizard", func() {
		rec := owner.Do(http.MethodPost, "/api/owner/wizard/next", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")

		steps := []map[string]any{
			{"venuename": "Hall A", "venueaddress": "Lazimpat, Kathmandu"},
			{"capacity": "300", "min_price": "2000", "max_price": "5000", "features": "Parking, Stage"},
			{"description": "A bright hall for weddings", "imageurl": "https://img.example.com/hall-a.jpg"},
		}
		for i, patch := range steps {
			rec := owner.Do(http.MethodPatch, "/api/owner/wizard", patch)
			httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
			if i < len(steps)-1 {
				httptest.AssertSuccessResponse(s.T(), owner.Do(http.MethodPost, "/api/owner/wizard/next", nil), http.StatusOK, nil)
			}
		}

		var wizard queries.WizardView
		httptest.AssertSuccessResponse(s.T(), owner.Do(http.MethodPost, "/api/owner/wizard/submit", nil), http.StatusCreated, &wizard)
		s.Equal("submitted", wizard.Stage)
		s.Positive(wizard.VenueID)
		venueID = wizard.VenueID

		registered, ok := s.Remote.VenueNamed("Hall A")
		require.True(s.T(), ok)
		s.Equal(s.ownerID, registered.OwnerID)
		s.Equal(300, registered.MaxCapacity)

		rec = owner.Do(http.MethodPost, "/api/owner/wizard/submit", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "venue already submitted")
	})

	s.Run("guest finds Hall A in the catalog", func() {
		require.NotZero(s.T(), venueID)
		guest.Login(guestName, password)

		var catalog queries.CatalogView
		httptest.AssertSuccessResponse(s.T(), guest.Do(http.MethodGet, "/api/catalog", nil), http.StatusOK, &catalog)
		require.Len(s.T(), catalog.Venues, 1)
		s.Equal("Hall A", catalog.Venues[0].Name)
		s.Equal([]string{"Parking", "Stage"}, catalog.Venues[0].Features)

		httptest.AssertSuccessResponse(s.T(),
			guest.Do(http.MethodPost, "/api/catalog/filter", map[string]any{"term": "nothing like it"}), http.StatusOK, &catalog)
		s.Empty(catalog.Venues)
		s.NotEmpty(catalog.EmptyMessage)
	})

	s.Run("owner cannot use guest only routes and guest cannot use owner routes", func() {
		rec := guest.Do(http.MethodGet, "/api/owner/bookings", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Insufficient permissions")

		anonymous := s.NewBrowser()
		rec = anonymous.Do(http.MethodPost, fmt.Sprintf("/api/venues/%d/bookings", venueID),
			map[string]any{"start_date": "2024-01-10", "end_date": "2024-01-12"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Please log in to continue")
	})

	s.Run("guest pays for 2024-01-10 to 2024-01-12", func() {
		rec := guest.Do(http.MethodPost, fmt.Sprintf("/api/venues/%d/bookings", venueID),
			map[string]any{"start_date": "2024-01-10", "end_date": "2024-01-12"})

		var started resdto.BookingRequestResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &started)
		s.NotEmpty(started.PaymentURL)
		require.NotNil(s.T(), started.Intent)
		s.Equal(4000.0, started.Intent.Amount)

		payments := s.Remote.Payments()
		require.Len(s.T(), payments, 1)
		s.Equal(400000.0, payments[0]["amount"])
		s.Equal(started.Intent.ID, payments[0]["purchase_order_id"])

		var me queries.MeView
		httptest.AssertSuccessResponse(s.T(), guest.Do(http.MethodGet, "/api/session/me", nil), http.StatusOK, &me)
		require.NotNil(s.T(), me.Intent)

		q := url.Values{"purchase_order_id": {started.Intent.ID}, "pidx": {started.Pidx}, "status": {"Completed"}}
		var confirmed resdto.ConfirmPaymentResponse
		httptest.AssertSuccessResponse(s.T(),
			guest.Do(http.MethodPost, "/api/payments/confirm?"+q.Encode(), nil), http.StatusCreated, &confirmed)
		require.NotNil(s.T(), confirmed.Booking)
		s.Equal("pending", confirmed.Booking.Status)
		bookingID = confirmed.Booking.ID

		rec = guest.Do(http.MethodPost, "/api/payments/confirm?"+q.Encode(), nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No pending booking to confirm")
		s.Len(s.Remote.BookingsOf(s.guestID), 1)
	})

	s.Run("a second guest is refused the same dates", func() {
		other := s.NewBrowser()
		other.Login(secondName, password)

		rec := other.Do(http.MethodPost, fmt.Sprintf("/api/venues/%d/bookings", venueID),
			map[string]any{"start_date": "2024-01-11", "end_date": "2024-01-13"})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already booked")
		s.Len(s.Remote.Payments(), 1)
	})

	s.Run("owner accepts the booking", func() {
		require.NotZero(s.T(), bookingID)

		var list queries.OwnerBookingsView
		httptest.AssertSuccessResponse(s.T(), owner.Do(http.MethodGet, "/api/owner/bookings", nil), http.StatusOK, &list)
		require.Len(s.T(), list.Venues, 1)
		require.Len(s.T(), list.Venues[0].Bookings, 1)
		pending := list.Venues[0].Bookings[0]
		s.Equal("pending", pending.Status)
		require.NotNil(s.T(), pending.Guest)
		s.Equal(guestName, pending.Guest.Username)

		httptest.AssertSuccessResponse(s.T(),
			owner.Do(http.MethodPost, fmt.Sprintf("/api/owner/bookings/%d/accept", bookingID), nil), http.StatusOK, &list)
		s.Equal("confirmed", list.Venues[0].Bookings[0].Status)

		stored, ok := s.Remote.Booking(bookingID)
		require.True(s.T(), ok)
		s.True(stored.Verified)
	})

	s.Run("guest sees the confirmed booking", func() {
		var mine queries.GuestBookingsView
		httptest.AssertSuccessResponse(s.T(), guest.Do(http.MethodGet, "/api/guest/bookings", nil), http.StatusOK, &mine)
		require.Len(s.T(), mine.Bookings, 1)
		s.Equal("confirmed", mine.Bookings[0].Status)
		s.Equal("Hall A", mine.Bookings[0].Venue.Name)

		httptest.AssertSuccessResponse(s.T(),
			guest.Do(http.MethodPost, "/api/guest/bookings/filter", map[string]any{"status": "pending"}), http.StatusOK, &mine)
		s.Empty(mine.Bookings)

		var detail queries.VenueDetailView
		httptest.AssertSuccessResponse(s.T(),
			guest.Do(http.MethodGet, fmt.Sprintf("/api/catalog/venues/%d", venueID), nil), http.StatusOK, &detail)
		want := []queries.BookedRangeView{{StartDate: "2024-01-10", EndDate: "2024-01-12", Status: "confirmed"}}
		if diff := cmp.Diff(want, detail.BookedDates); diff != "" {
			s.Failf("booked dates mismatch", "(-want +got):\n%s", diff)
		}
	})

	s.Run("guest cancels and the owner is told", func() {
		path := fmt.Sprintf("/api/guest/bookings/%d/cancel", bookingID)

		rec := guest.Do(http.MethodPost, path, map[string]any{"confirm": false})
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Cancellation must be confirmed")

		var mine queries.GuestBookingsView
		httptest.AssertSuccessResponse(s.T(),
			guest.Do(http.MethodPost, path, map[string]any{"confirm": true, "reason": "date moved"}), http.StatusOK, &mine)
		s.Empty(mine.Bookings)

		_, exists := s.Remote.Booking(bookingID)
		s.False(exists)
		s.Len(s.Remote.Notifications(), 1)
		s.Len(s.Remote.Cancellations(), 1)

		var cancelled resdto.CancellationsResponse
		httptest.AssertSuccessResponse(s.T(),
			guest.Do(http.MethodGet, "/api/guest/bookings/cancelled", nil), http.StatusOK, &cancelled)
		require.Len(s.T(), cancelled.Cancellations, 1)
		s.Equal("Hall A", cancelled.Cancellations[0].VenueName)
		s.Equal("date moved", cancelled.Cancellations[0].Reason)
	})

	s.Run("signing out forgets the caller", func() {
		rec := guest.Do(http.MethodPost, "/api/session/logout", nil)
		s.Equal(http.StatusNoContent, rec.Code)

		rec = guest.Do(http.MethodGet, "/api/session/me", nil)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Please log in to continue")
	})
}

func (s *BookingFlowSuite) TestSessionsSurviveInRedis() {
	b := s.NewBrowser()
	b.Login(guestName, password)
	first := b.SessionID()
	require.NotEmpty(s.T(), first)

	var me queries.MeView
	httptest.AssertSuccessResponse(s.T(), b.Do(http.MethodGet, "/api/session/me", nil), http.StatusOK, &me)
	s.Equal(s.guestID, me.UserID)
	s.Equal(first, b.SessionID())
}

func (s *BookingFlowSuite) TestLoginRejected() {
	b := s.NewBrowser()
	rec := b.Do(http.MethodPost, "/api/session/login", map[string]any{"username": guestName, "password": "wrong"})
	httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid username or password")
}
