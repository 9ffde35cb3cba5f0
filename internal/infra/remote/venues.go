package remote

import (
	"context"
	"fmt"
	"net/http"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/domain/venue"
	"venue-booking/internal/pkg/errs"
)

func (c *Client) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	var dtos []venueDTO
	if err := c.do(ctx, http.MethodGet, "/api/venue/", "", nil, &dtos); err != nil {
		return nil, errs.Wrap(err, "list venues")
	}
	out := make([]venue.Venue, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, toVenue(d))
	}
	return out, nil
}

func (c *Client) GetVenue(ctx context.Context, id int64) (booking.VenueBookings, error) {
	path := fmt.Sprintf("/api/venue/%d/", id)
	var d venueDTO
	if err := c.do(ctx, http.MethodGet, path, "", nil, &d); err != nil {
		return booking.VenueBookings{}, errs.Wrapf(err, "get venue %d", id)
	}
	vb, skipped := toVenueBookings(d)
	c.logSkipped(ctx, path, skipped)
	if vb.Venue.ID == 0 {
		vb.Venue.ID = id
	}
	return vb, nil
}

func (c *Client) GetVenueByID(ctx context.Context, token string, id int64) (venue.Venue, error) {
	var d venueDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/venues/id/%d/", id), token, nil, &d); err != nil {
		return venue.Venue{}, errs.Wrapf(err, "get venue %d", id)
	}
	v := toVenue(d)
	if v.ID == 0 {
		v.ID = id
	}
	return v, nil
}

func (c *Client) ListOwnerVenues(ctx context.Context, token string, ownerID int64) ([]booking.VenueBookings, error) {
	path := fmt.Sprintf("/api/venues/owner/%d/", ownerID)
	var dtos []venueDTO
	if err := c.do(ctx, http.MethodGet, path, token, nil, &dtos); err != nil {
		return nil, errs.Wrapf(err, "list venues of owner %d", ownerID)
	}
	out := make([]booking.VenueBookings, 0, len(dtos))
	for _, d := range dtos {
		vb, skipped := toVenueBookings(d)
		c.logSkipped(ctx, path, skipped)
		out = append(out, vb)
	}
	return out, nil
}

func (c *Client) RegisterVenue(ctx context.Context, token string, reg venue.Registration) (venue.Venue, error) {
	body := venueRegisterDTO{
		Name:        reg.Name,
		Address:     reg.Address,
		Features:    reg.Features,
		Description: reg.Description,
		ImageURL:    reg.ImageURLs,
		MinPrice:    reg.Price.Min,
		MaxPrice:    reg.Price.Max,
		MaxCapacity: reg.Capacity,
		OwnerID:     reg.OwnerID,
	}
	var d venueDTO
	if err := c.do(ctx, http.MethodPost, "/api/venueRegister/", token, body, &d); err != nil {
		return venue.Venue{}, errs.Wrap(err, "register venue")
	}
	return toVenue(d), nil
}

func (c *Client) logSkipped(ctx context.Context, path string, ids []int64) {
	if len(ids) == 0 {
		return
	}
	c.logger.WarnContext(ctx, "skipped bookings with unreadable dates",
		"path", path,
		"booking_ids", ids,
	)
}
