package remote

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/goccy/go-json"
)

func (c *Client) ListUserBookings(ctx context.Context, token string, userID int64) ([]booking.Booking, error) {
	path := fmt.Sprintf("/api/userbookings/%d/", userID)
	var dtos []bookingDTO
	if err := c.do(ctx, http.MethodGet, path, token, nil, &dtos); err != nil {
		return nil, errs.Wrapf(err, "list bookings of user %d", userID)
	}
	out := make([]booking.Booking, 0, len(dtos))
	var skipped []int64
	for _, d := range dtos {
		b, err := toBooking(d)
		if err != nil {
			skipped = append(skipped, int64(d.ID))
			continue
		}
		out = append(out, b)
	}
	c.logSkipped(ctx, path, skipped)
	return out, nil
}

func (c *Client) CreateBooking(ctx context.Context, token string, nb booking.New) (booking.Booking, error) {
	body := newBookingDTO{
		User:      nb.UserID,
		Venue:     nb.VenueID,
		StartDate: nb.Dates.StartDate(),
		EndDate:   nb.Dates.EndDate(),
	}
	var d bookingDTO
	if err := c.do(ctx, http.MethodPost, "/api/bookings/", token, body, &d); err != nil {
		return booking.Booking{}, errs.Wrap(err, "create booking")
	}
	created := booking.Booking{
		ID:      int64(d.ID),
		UserID:  nb.UserID,
		VenueID: nb.VenueID,
		Dates:   nb.Dates,
		Status:  booking.StatusFromVerified(deref(d.Verified)),
	}
	return created, nil
}

// ModifyBooking keeps the record exactly as the API returned it and only
// overwrites the verified flag, so fields this client does not model
// survive the PUT.
func (c *Client) ModifyBooking(ctx context.Context, token string, id int64, mutate shared.BookingMutation) (booking.Booking, error) {
	path := fmt.Sprintf("/api/bookings/%d/", id)
	raw, err := c.send(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return booking.Booking{}, errs.Wrapf(err, "fetch booking %d", id)
	}

	record := map[string]any{}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&record); err != nil {
		return booking.Booking{}, errs.Wrapf(err, "decode booking %d", id)
	}
	var d bookingDTO
	if err := json.Unmarshal(raw, &d); err != nil {
		return booking.Booking{}, errs.Wrapf(err, "decode booking %d", id)
	}
	current, err := toBooking(d)
	if err != nil {
		return booking.Booking{}, err
	}
	if current.ID == 0 {
		current.ID = id
	}

	next, changed, err := mutate(current)
	if err != nil {
		return booking.Booking{}, err
	}
	if !changed {
		return current, nil
	}

	record["verified"] = next.Verified()
	if _, err := c.send(ctx, http.MethodPut, path, token, record); err != nil {
		return booking.Booking{}, errs.Wrapf(err, "update booking %d", id)
	}
	return next, nil
}

func (c *Client) DeleteBooking(ctx context.Context, token string, id int64) error {
	if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/bookings/%d/", id), token, nil, nil); err != nil {
		return errs.Wrapf(err, "delete booking %d", id)
	}
	return nil
}

func (c *Client) ListCancellations(ctx context.Context, token string, userID int64) ([]booking.Cancellation, error) {
	var dtos []cancellationDTO
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/canceled-bookings/%d/", userID), token, nil, &dtos); err != nil {
		return nil, errs.Wrapf(err, "list cancellations of user %d", userID)
	}
	out := make([]booking.Cancellation, 0, len(dtos))
	for _, d := range dtos {
		out = append(out, toCancellation(d))
	}
	return out, nil
}

func (c *Client) RecordCancellation(ctx context.Context, token string, cn booking.Cancellation) error {
	body := cancellationDTO{
		VenueName:    cn.VenueName,
		VenueAddress: cn.VenueAddress,
		UserID:       flexInt(cn.UserID),
		Username:     cn.Username,
		StartDate:    cn.Dates.StartDate(),
		EndDate:      cn.Dates.EndDate(),
		Reason:       cn.Reason,
	}
	if err := c.do(ctx, http.MethodPost, "/api/canceled-bookings/", token, body, nil); err != nil {
		return errs.Wrap(err, "record cancellation")
	}
	return nil
}
