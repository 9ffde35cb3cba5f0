package remote

import (
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

func toVenue(d venueDTO) venue.Venue {
	capacity := int(d.MaxCapacity)
	if capacity == 0 {
		capacity = int(d.Capacity)
	}
	return venue.Venue{
		ID:            d.id(),
		Name:          d.Name,
		Address:       d.Address,
		Description:   d.Description,
		Features:      string(d.Features),
		ImageURLs:     []string(d.ImageURL),
		Capacity:      capacity,
		Price:         venue.PriceRange{Min: float64(d.MinPrice), Max: float64(d.MaxPrice)},
		StartingPrice: float64(d.StartingPrice),
		OwnerID:       d.OwnerID.ID,
	}
}

// toVenueBookings keeps only the booked dates that parse; the rest are
// returned as skipped ids so the caller can log them.
func toVenueBookings(d venueDTO) (booking.VenueBookings, []int64) {
	vb := booking.VenueBookings{Venue: toVenue(d), Bookings: make([]booking.Booking, 0, len(d.BookedDates))}
	var skipped []int64
	for _, bd := range d.BookedDates {
		dates, err := parseRemoteDates(bd.StartDate, bd.EndDate)
		if err != nil {
			skipped = append(skipped, int64(bd.ID))
			continue
		}
		vb.Bookings = append(vb.Bookings, booking.Booking{
			ID:      int64(bd.ID),
			UserID:  bd.User.ID,
			VenueID: vb.Venue.ID,
			Dates:   dates,
			Status:  booking.StatusFromVerified(deref(bd.Verified)),
			Guest: booking.Contact{
				Username: bd.User.Username,
				Email:    bd.User.Email,
				Phone:    bd.User.PhoneNumber,
			},
		})
	}
	return vb, skipped
}

func toBooking(d bookingDTO) (booking.Booking, error) {
	dates, err := parseRemoteDates(d.StartDate, d.EndDate)
	if err != nil {
		return booking.Booking{}, errs.Wrapf(err, "booking %d", int64(d.ID))
	}
	return booking.Booking{
		ID:      int64(d.ID),
		UserID:  d.User.ID,
		VenueID: d.Venue.ID,
		Dates:   dates,
		Status:  booking.StatusFromVerified(deref(d.Verified)),
		Guest: booking.Contact{
			Username: d.User.Username,
			Email:    d.User.Email,
			Phone:    d.User.PhoneNumber,
		},
	}, nil
}

func toProfile(d profileDTO) (user.Profile, error) {
	var p user.Profile
	if err := copier.Copy(&p, &d); err != nil {
		return user.Profile{}, errs.Wrap(err, "copy profile")
	}
	return p, nil
}

func toCancellation(d cancellationDTO) booking.Cancellation {
	c := booking.Cancellation{
		VenueName:    d.VenueName,
		VenueAddress: d.VenueAddress,
		UserID:       int64(d.UserID),
		Username:     d.Username,
		Reason:       d.Reason,
	}
	if dates, err := parseRemoteDates(d.StartDate, d.EndDate); err == nil {
		c.Dates = dates
	}
	return c
}

// parseRemoteDates accepts plain dates as well as timestamps.
func parseRemoteDates(start, end string) (booking.DateRange, error) {
	return booking.ParseDateRange(datePart(start), datePart(end))
}

func datePart(s string) string {
	if len(s) > len(booking.DateLayout) {
		return s[:len(booking.DateLayout)]
	}
	return s
}

func deref(b *bool) bool {
	return b != nil && *b
}
