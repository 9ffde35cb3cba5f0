package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingRequestCommands
}

func NewBookingHandler(bookingCommands commands.BookingRequestCommands) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
	}
}

// @Summary Request a booking
// @Description Check the dates and start the payment, or create the booking directly when payment is off
// @Tags bookings
// @Accept json
// @Produce json
// @Param id path int true "Venue ID"
// @Param request body reqdto.CreateBookingRequest true "Date range"
// @Success 200 {object} resdto.BookingRequestResponse "payment redirect"
// @Success 201 {object} resdto.BookingRequestResponse "booking created"
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/venues/{id}/bookings [post]
func (h *BookingHandler) Request(c *gin.Context) {
	venueID, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, msgInvalidRequest)
		return
	}

	result, err := h.bookingCommands.Request(c.Request.Context(), middleware.GetSessionID(c), req.ToInput(venueID))
	if err != nil {
		respondError(c, err)
		return
	}

	status := http.StatusOK
	if result.Booking != nil {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromBookingRequestResult(result))
}

// @Summary Confirm payment
// @Description Create the pending booking once the gateway reports a completed payment
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.ConfirmPaymentRequest true "Gateway return parameters"
// @Success 201 {object} resdto.ConfirmPaymentResponse
// @Failure 402 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/payments/confirm [post]
func (h *BookingHandler) Confirm(c *gin.Context) {
	var req reqdto.ConfirmPaymentRequest
	if err := c.ShouldBind(&req); err != nil {
		badRequest(c, err, msgInvalidRequest)
		return
	}

	created, err := h.bookingCommands.Confirm(c.Request.Context(), middleware.GetSessionID(c), req.ToCallback())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.ConfirmPaymentResponse{
		Message: "Payment successful, booking confirmed!",
		Booking: created,
	})
}
