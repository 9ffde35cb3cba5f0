package request

import (
	"venue-booking/internal/domain/booking"
	"venue-booking/internal/usecase/commands"
)

type CreateBookingRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func (r CreateBookingRequest) ToInput(venueID int64) commands.BookingRequestInput {
	return commands.BookingRequestInput{
		VenueID:   venueID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}
}

// ConfirmPaymentRequest accepts the gateway return parameters either as a
// JSON body or as the query string of the return redirect.
type ConfirmPaymentRequest struct {
	PurchaseOrderID string `json:"purchase_order_id" form:"purchase_order_id"`
	Pidx            string `json:"pidx" form:"pidx"`
	Status          string `json:"status" form:"status" binding:"required"`
}

func (r ConfirmPaymentRequest) ToCallback() commands.PaymentCallback {
	return commands.PaymentCallback{
		PurchaseOrderID: r.PurchaseOrderID,
		Pidx:            r.Pidx,
		Status:          r.Status,
	}
}

type RejectBookingRequest struct {
	Confirm bool `json:"confirm"`
}

type GuestFilterRequest struct {
	Status string `json:"status"`
}

func (r GuestFilterRequest) ToDomain() (booking.Filter, error) {
	return booking.ParseFilter(r.Status)
}

type CancelBookingRequest struct {
	Confirm bool   `json:"confirm"`
	Reason  string `json:"reason" binding:"max=500"`
	Notify  *bool  `json:"notify,omitempty"`
}

func (r CancelBookingRequest) ToInput() commands.CancelInput {
	return commands.CancelInput{
		Confirm: r.Confirm,
		Reason:  r.Reason,
		Notify:  r.Notify,
	}
}
