//go:build unit

package booking_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"
	"venue-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateRange(t *testing.T) {
	t.Run("valid range is normalised to UTC midnight", func(t *testing.T) {
		r, err := booking.ParseDateRange("2024-01-10", " 2024-01-12 ")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, 2, r.Nights())
		assert.Equal(t, "2024-01-10 - 2024-01-12", r.String())
	})

	t.Run("same day is one booked day with zero nights", func(t *testing.T) {
		r, err := booking.ParseDateRange("2024-01-10", "2024-01-10")
		require.NoError(t, err)
		assert.Equal(t, 0, r.Nights())
	})

	t.Run("field errors are reported per date", func(t *testing.T) {
		_, err := booking.ParseDateRange("", "10/01/2024")
		require.ErrorIs(t, err, errs.ErrValidation)

		fields, ok := errs.ValidationFields(err)
		require.True(t, ok)
		if diff := cmp.Diff(map[string]string{
			"start_date": booking.ErrDateRequired.Error(),
			"end_date":   booking.ErrInvalidDate.Error(),
		}, fields); diff != "" {
			t.Errorf("fields mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := booking.ParseDateRange("2024-01-12", "2024-01-10")
		require.Error(t, err)
		assert.True(t, errs.Is(err, booking.ErrInvalidDateRange))
		assert.True(t, errs.Is(err, errs.ErrValidation))
	})
}

func TestCheckAvailability(t *testing.T) {
	existing := []booking.Booking{
		builder.NewBookingBuilder().BuildDomain(), // 10..12 pending
		builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID, b.Start, b.End, b.Status = 11, "2024-02-01", "2024-02-03", booking.StatusCancelled
		}).BuildDomain(),
	}

	cases := []struct {
		name       string
		start, end string
		errIs      error
	}{
		{name: "ends on the first booked day", start: "2024-01-08", end: "2024-01-10", errIs: booking.ErrAlreadyBooked},
		{name: "starts on the last booked day", start: "2024-01-12", end: "2024-01-14", errIs: booking.ErrAlreadyBooked},
		{name: "inside the booked range", start: "2024-01-11", end: "2024-01-11", errIs: booking.ErrAlreadyBooked},
		{name: "covers the booked range", start: "2024-01-01", end: "2024-01-31", errIs: booking.ErrAlreadyBooked},
		{name: "day before", start: "2024-01-05", end: "2024-01-09"},
		{name: "day after", start: "2024-01-13", end: "2024-01-15"},
		{name: "cancelled bookings free their dates", start: "2024-02-01", end: "2024-02-03"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := booking.CheckAvailability(builder.Dates(tc.start, tc.end), existing)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestBookingTransitions(t *testing.T) {
	pending := builder.NewBookingBuilder().BuildDomain()
	confirmed := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusConfirmed }).BuildDomain()
	cancelled := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.Status = booking.StatusCancelled }).BuildDomain()

	t.Run("accept", func(t *testing.T) {
		next, changed, err := pending.Accept()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusConfirmed, next.Status)
		assert.True(t, next.Verified())
		assert.Equal(t, booking.StatusPending, pending.Status, "receiver is not modified")

		_, changed, err = confirmed.Accept()
		require.NoError(t, err)
		assert.False(t, changed, "accepting twice is a no-op")

		_, _, err = cancelled.Accept()
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("revert", func(t *testing.T) {
		next, changed, err := confirmed.Revert()
		require.NoError(t, err)
		assert.True(t, changed)
		assert.Equal(t, booking.StatusPending, next.Status)

		_, changed, err = pending.Revert()
		require.NoError(t, err)
		assert.False(t, changed)

		_, _, err = cancelled.Revert()
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})

	t.Run("cancel", func(t *testing.T) {
		next, err := confirmed.Cancel()
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, next.Status)

		_, err = next.Cancel()
		assert.ErrorIs(t, err, booking.ErrInvalidTransition)
	})
}

func TestFilter(t *testing.T) {
	t.Run("parse", func(t *testing.T) {
		for in, want := range map[string]booking.Filter{
			"":          booking.FilterAll,
			"all":       booking.FilterAll,
			"confirmed": booking.FilterConfirmed,
			"pending":   booking.FilterPending,
		} {
			got, err := booking.ParseFilter(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got)
		}
		_, err := booking.ParseFilter("cancelled")
		assert.ErrorIs(t, err, booking.ErrInvalidFilter)
	})

	t.Run("filters never drop items from the source list", func(t *testing.T) {
		list := []booking.Booking{
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 1 }).BuildDomain(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID, b.Status = 2, booking.StatusConfirmed }).BuildDomain(),
			builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 3 }).BuildDomain(),
		}
		pending := booking.FilterBy(list, booking.FilterPending)
		confirmed := booking.FilterBy(list, booking.FilterConfirmed)
		all := booking.FilterBy(list, booking.FilterAll)

		assert.Len(t, pending, 2)
		assert.Len(t, confirmed, 1)
		assert.Len(t, all, 3)
		assert.Equal(t, len(list), len(pending)+len(confirmed))
	})
}

func TestListHelpers(t *testing.T) {
	a := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 1 }).BuildDomain()
	b := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) { b.ID = 2 }).BuildDomain()
	list := []booking.Booking{a, b}

	t.Run("replace swaps only the matching item", func(t *testing.T) {
		updated := b
		updated.Status = booking.StatusConfirmed
		out, ok := booking.Replace(list, updated)
		require.True(t, ok)
		assert.Equal(t, booking.StatusConfirmed, out[1].Status)
		assert.Equal(t, booking.StatusPending, list[1].Status, "input list is untouched")

		_, ok = booking.Replace(list, builder.NewBookingBuilder().With(func(x *builder.BookingBuilder) { x.ID = 99 }).BuildDomain())
		assert.False(t, ok)
	})

	t.Run("remove", func(t *testing.T) {
		out, ok := booking.Remove(list, 1)
		require.True(t, ok)
		require.Len(t, out, 1)
		assert.Equal(t, int64(2), out[0].ID)
		assert.Len(t, list, 2)
	})

	t.Run("nested venue lists", func(t *testing.T) {
		venues := []booking.VenueBookings{
			builder.NewVenueBuilder().WithBookings(a).BuildWithBookings(),
			builder.NewVenueBuilder().With(func(v *builder.VenueBuilder) { v.ID = 2 }).WithBookings(b).BuildWithBookings(),
		}

		found, idx, ok := booking.FindInVenues(venues, 2)
		require.True(t, ok)
		assert.Equal(t, 1, idx)
		assert.Equal(t, b, found)

		found.Status = booking.StatusConfirmed
		replaced, ok := booking.ReplaceInVenues(venues, found)
		require.True(t, ok)
		assert.Equal(t, booking.StatusConfirmed, replaced[1].Bookings[0].Status)
		assert.Equal(t, booking.StatusPending, venues[1].Bookings[0].Status)

		removed, ok := booking.RemoveFromVenues(venues, 1)
		require.True(t, ok)
		assert.Empty(t, removed[0].Bookings)
		assert.Len(t, removed[1].Bookings, 1)

		_, _, ok = booking.FindInVenues(removed, 1)
		assert.False(t, ok)
	})
}

func TestIntent(t *testing.T) {
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	t.Run("amount is nightly rate times nights", func(t *testing.T) {
		in := booking.NewIntent(2, 1, "Hall A", builder.Dates("2024-01-10", "2024-01-12"), 1500.5, now)
		assert.InDelta(t, 3001.0, in.Amount, 0.001)
		assert.Equal(t, int64(300100), in.AmountPaisa())
		assert.NotEmpty(t, in.ID.String())

		nb := in.Booking()
		assert.Equal(t, int64(2), nb.UserID)
		assert.Equal(t, int64(1), nb.VenueID)
	})

	t.Run("a same-day stay is charged one night", func(t *testing.T) {
		in := booking.NewIntent(2, 1, "Hall A", builder.Dates("2024-01-10", "2024-01-10"), 1000, now)
		assert.InDelta(t, 1000.0, in.Amount, 0.001)
	})
}

func TestCancellationNotice(t *testing.T) {
	v := builder.NewVenueBuilder().With(func(b *builder.VenueBuilder) { b.OwnerID = 5 }).BuildDomain()
	gb := builder.NewBookingBuilder().BuildGuest(v)

	n := booking.CancellationNotice(gb)
	assert.Equal(t, int64(5), n.RecipientID)
	assert.Equal(t, int64(10), n.BookingID)
	assert.Equal(t, "Booking canceled for Hall A (2024-01-10 - 2024-01-12)", n.Message)

	assert.Equal(t, "N/A", booking.Contact{}.PhoneOrNA())
	assert.True(t, venue.Placeholder(3).Placeholder)
}
