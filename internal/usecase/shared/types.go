package shared

import "venue-booking/internal/domain/booking"

type PaymentRequest struct {
	Intent     booking.Intent
	ReturnURL  string
	WebsiteURL string
}

type PaymentRedirect struct {
	URL  string
	Pidx string
}
