package remote

import (
	"context"
	"net/http"

	"venue-booking/internal/domain/booking"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"
)

func (c *Client) InitiatePayment(ctx context.Context, token string, req shared.PaymentRequest) (shared.PaymentRedirect, error) {
	in := req.Intent
	body := paymentRequestDTO{
		ReturnURL:         req.ReturnURL,
		WebsiteURL:        req.WebsiteURL,
		Amount:            in.AmountPaisa(),
		PurchaseOrderID:   in.ID.String(),
		PurchaseOrderName: in.VenueName,
		User:              in.UserID,
		Venue:             in.VenueID,
		StartDate:         in.Dates.StartDate(),
		EndDate:           in.Dates.EndDate(),
	}
	var d paymentResponseDTO
	if err := c.do(ctx, http.MethodPost, "/api/create-khalti-payment/", token, body, &d); err != nil {
		return shared.PaymentRedirect{}, errs.Wrap(err, "initiate payment")
	}
	if d.PaymentURL == "" {
		return shared.PaymentRedirect{}, errs.Mark(errs.New("payment response without payment_url"), errs.ErrRemoteUnavailable)
	}
	return shared.PaymentRedirect{URL: d.PaymentURL, Pidx: d.Pidx}, nil
}

func (c *Client) Notify(ctx context.Context, token string, n booking.Notification) error {
	body := notificationDTO{
		Recipient: n.RecipientID,
		Message:   n.Message,
		Booking:   n.BookingID,
	}
	if err := c.do(ctx, http.MethodPost, "/api/notifications/", token, body, nil); err != nil {
		return errs.Wrap(err, "send notification")
	}
	return nil
}
