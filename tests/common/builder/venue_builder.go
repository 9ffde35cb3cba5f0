//go:build unit || e2e

package builder

import (
	"strconv"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
)

type VenueBuilder struct {
	ID       int64
	Name     string
	Address  string
	Features string
	MinPrice float64
	MaxPrice float64
	Capacity int
	OwnerID  int64
	Bookings []booking.Booking
}

func NewVenueBuilder() *VenueBuilder {
	return &VenueBuilder{
		ID:       1,
		Name:     "Hall A",
		Address:  "Kathmandu",
		Features: "Parking, Stage",
		MinPrice: 1000,
		MaxPrice: 5000,
		Capacity: 200,
		OwnerID:  1,
	}
}

func (b *VenueBuilder) With(mutate func(*VenueBuilder)) *VenueBuilder {
	mutate(b)
	return b
}

func (b *VenueBuilder) WithBookings(bookings ...booking.Booking) *VenueBuilder {
	b.Bookings = append(b.Bookings, bookings...)
	return b
}

func (b *VenueBuilder) BuildDomain() venue.Venue {
	return venue.Venue{
		ID:       b.ID,
		Name:     b.Name,
		Address:  b.Address,
		Features: b.Features,
		Capacity: b.Capacity,
		Price:    venue.PriceRange{Min: b.MinPrice, Max: b.MaxPrice},
		OwnerID:  b.OwnerID,
	}
}

func (b *VenueBuilder) BuildWithBookings() booking.VenueBookings {
	bookings := b.Bookings
	if bookings == nil {
		bookings = []booking.Booking{}
	}
	return booking.VenueBookings{Venue: b.BuildDomain(), Bookings: bookings}
}

// Venues builds n venues named "Venue 1".."Venue n".
func Venues(n int) []venue.Venue {
	out := make([]venue.Venue, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, NewVenueBuilder().With(func(b *VenueBuilder) {
			b.ID = int64(i)
			b.Name = "Venue " + strconv.Itoa(i)
			b.Address = "Street " + strconv.Itoa(i)
		}).BuildDomain())
	}
	return out
}

