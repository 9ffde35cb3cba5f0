package response

import (
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
)

// BookingRequestResponse is either a payment redirect or, when payment is
// not required, the created booking.
type BookingRequestResponse struct {
	PaymentURL string               `json:"payment_url,omitempty"`
	Pidx       string               `json:"pidx,omitempty"`
	Intent     *queries.IntentView  `json:"pending_booking,omitempty"`
	Booking    *queries.BookingView `json:"booking,omitempty"`
}

func FromBookingRequestResult(r *commands.BookingRequestResult) BookingRequestResponse {
	return BookingRequestResponse{
		PaymentURL: r.PaymentURL,
		Pidx:       r.Pidx,
		Intent:     r.Intent,
		Booking:    r.Booking,
	}
}

type ConfirmPaymentResponse struct {
	Message string               `json:"message"`
	Booking *queries.BookingView `json:"booking"`
}

type CancellationsResponse struct {
	Cancellations []queries.CancellationView `json:"cancellations"`
}
