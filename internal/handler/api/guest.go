package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type GuestBookingsHandler struct {
	guestCommands commands.GuestBookingsCommands
	guestQueries  queries.GuestQueries
}

func NewGuestBookingsHandler(guestCommands commands.GuestBookingsCommands, guestQueries queries.GuestQueries) *GuestBookingsHandler {
	return &GuestBookingsHandler{
		guestCommands: guestCommands,
		guestQueries:  guestQueries,
	}
}

// @Summary My bookings
// @Tags guest
// @Produce json
// @Success 200 {object} queries.GuestBookingsView
// @Failure 401 {object} httperr.Response
// @Router /api/guest/bookings [get]
func (h *GuestBookingsHandler) Load(c *gin.Context) {
	view, err := h.guestCommands.Load(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Filter my bookings
// @Tags guest
// @Accept json
// @Produce json
// @Param request body reqdto.GuestFilterRequest true "all, confirmed or pending"
// @Success 200 {object} queries.GuestBookingsView
// @Failure 400 {object} httperr.Response
// @Router /api/guest/bookings/filter [post]
func (h *GuestBookingsHandler) Filter(c *gin.Context) {
	var req reqdto.GuestFilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, msgInvalidRequest)
		return
	}
	filter, err := req.ToDomain()
	if err != nil {
		badRequest(c, err, err.Error())
		return
	}
	view, err := h.guestCommands.Filter(c.Request.Context(), middleware.GetSessionID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Cancel my booking
// @Tags guest
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.CancelBookingRequest true "Confirmation and reason"
// @Success 200 {object} queries.GuestBookingsView
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/guest/bookings/{id}/cancel [post]
func (h *GuestBookingsHandler) Cancel(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.CancelBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, msgInvalidRequest)
		return
	}
	view, err := h.guestCommands.Cancel(c.Request.Context(), middleware.GetSessionID(c), id, req.ToInput())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary My cancelled bookings
// @Tags guest
// @Produce json
// @Success 200 {object} resdto.CancellationsResponse
// @Router /api/guest/bookings/cancelled [get]
func (h *GuestBookingsHandler) Cancelled(c *gin.Context) {
	list, err := h.guestQueries.Cancelled(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CancellationsResponse{Cancellations: list})
}
