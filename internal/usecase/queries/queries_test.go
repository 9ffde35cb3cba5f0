//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/infra/remote"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/builder"
	"venue-booking/tests/common/sessiontest"
	sharedmock "venue-booking/tests/mock/shared"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSessionQueries_Me(t *testing.T) {
	ctx := context.Background()
	env := sessiontest.New()
	q := queries.NewSessionQueries(env.Store, env.Decoder)

	t.Run("signed out", func(t *testing.T) {
		_, err := q.Me(ctx, env.Anonymous(t))
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))

		_, err = q.Me(ctx, "missing")
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})

	t.Run("owner with a pending intent", func(t *testing.T) {
		sid := env.SignIn(t, 1, true)
		in := booking.NewIntent(1, 5, "Hall A", builder.Dates("2024-01-10", "2024-01-11"), 1500, env.Clock.Now())
		env.Mutate(t, sid, func(s *session.Session) { s.Intent = &in })

		me, err := q.Me(ctx, sid)
		require.NoError(t, err)
		assert.Equal(t, user.RoleOwner.String(), me.Role)
		assert.Equal(t, "owner", me.Landing)
		require.NotNil(t, me.Intent)
		assert.Equal(t, in.ID.String(), me.Intent.ID)
		assert.InDelta(t, 1500.0, me.Intent.Amount, 0.001)
	})

	t.Run("expired token", func(t *testing.T) {
		sid := env.SignIn(t, 2, false)
		env.Clock.Advance(2 * time.Hour)
		_, err := q.Me(ctx, sid)
		assert.True(t, errs.Is(err, errs.ErrUnauthenticated))
	})
}

func TestCatalogQueries(t *testing.T) {
	ctx := context.Background()
	env := sessiontest.New()
	venues := sharedmock.NewMockVenueGateway(gomock.NewController(t))
	q := queries.NewCatalogQueries(env.Store, venues)

	t.Run("current without a session is empty", func(t *testing.T) {
		view, err := q.Current(ctx, "missing")
		require.NoError(t, err)
		assert.Empty(t, view.Venues)
	})

	t.Run("current renders the stored page", func(t *testing.T) {
		sid := env.Anonymous(t)
		env.Mutate(t, sid, func(s *session.Session) {
			s.Catalog.Catalog.Load(builder.Venues(3), 2)
		})
		view, err := q.Current(ctx, sid)
		require.NoError(t, err)
		assert.Len(t, view.Venues, 2)
		assert.True(t, view.HasMore)
	})

	t.Run("venue detail lists the held ranges", func(t *testing.T) {
		vb := builder.NewVenueBuilder().WithBookings(
			builder.NewBookingBuilder().BuildDomain(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
				b.ID, b.Start, b.End, b.Status = 11, "2024-02-01", "2024-02-03", booking.StatusConfirmed
			}).BuildDomain(),
		).BuildWithBookings()
		venues.EXPECT().GetVenue(gomock.Any(), int64(1)).Return(vb, nil)

		view, err := q.Venue(ctx, 1)
		require.NoError(t, err)
		want := []queries.BookedRangeView{
			{StartDate: "2024-01-10", EndDate: "2024-01-12", Status: "pending"},
			{StartDate: "2024-02-01", EndDate: "2024-02-03", Status: "confirmed"},
		}
		if diff := cmp.Diff(want, view.BookedDates); diff != "" {
			t.Errorf("booked dates mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, []string{"Parking", "Stage"}, view.Features)
	})

	t.Run("unknown venue", func(t *testing.T) {
		venues.EXPECT().GetVenue(gomock.Any(), int64(404)).Return(booking.VenueBookings{}, &remote.APIError{Kind: remote.KindNotFound})
		_, err := q.Venue(ctx, 404)
		assert.True(t, errs.Is(err, errs.ErrNotFound))
	})
}

func TestGuestQueries_Cancelled(t *testing.T) {
	ctx := context.Background()
	env := sessiontest.New()
	bookings := sharedmock.NewMockBookingGateway(gomock.NewController(t))
	q := queries.NewGuestQueries(env.Store, env.Decoder, bookings)
	sid := env.SignIn(t, 2, false)

	bookings.EXPECT().ListCancellations(gomock.Any(), env.Token(t, sid), int64(2)).Return([]booking.Cancellation{{
		VenueName: "Hall A",
		UserID:    2,
		Dates:     builder.Dates("2024-01-10", "2024-01-12"),
		Reason:    "plans changed",
	}}, nil)

	list, err := q.Cancelled(ctx, sid)
	require.NoError(t, err)
	want := []queries.CancellationView{{
		VenueName: "Hall A",
		StartDate: "2024-01-10",
		EndDate:   "2024-01-12",
		Reason:    "plans changed",
		Status:    "cancelled",
	}}
	if diff := cmp.Diff(want, list); diff != "" {
		t.Errorf("cancellations mismatch (-want +got):\n%s", diff)
	}
}

func TestWizardQueries_View(t *testing.T) {
	ctx := context.Background()
	env := sessiontest.New()
	q := queries.NewWizardQueries(env.Store, env.Decoder)

	_, err := q.View(ctx, env.SignIn(t, 2, false))
	assert.True(t, errs.Is(err, errs.ErrForbidden))

	view, err := q.View(ctx, env.SignIn(t, 1, true))
	require.NoError(t, err)
	assert.Equal(t, venue.StageBasic.String(), view.Stage)
	assert.Equal(t, int(venue.StageBasic), view.Step)
	assert.NotNil(t, view.Errors)
}
