package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type OwnerBookingsHandler struct {
	ownerCommands commands.OwnerBookingsCommands
}

func NewOwnerBookingsHandler(ownerCommands commands.OwnerBookingsCommands) *OwnerBookingsHandler {
	return &OwnerBookingsHandler{
		ownerCommands: ownerCommands,
	}
}

// @Summary Bookings of my venues
// @Tags owner
// @Produce json
// @Success 200 {object} queries.OwnerBookingsView
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/owner/bookings [get]
func (h *OwnerBookingsHandler) Load(c *gin.Context) {
	view, err := h.ownerCommands.Load(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Accept a booking
// @Tags owner
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} queries.OwnerBookingsView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/owner/bookings/{id}/accept [post]
func (h *OwnerBookingsHandler) Accept(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.ownerCommands.Accept(c.Request.Context(), middleware.GetSessionID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Reject a booking
// @Description Deletes the booking; requires confirm=true
// @Tags owner
// @Accept json
// @Produce json
// @Param id path int true "Booking ID"
// @Param request body reqdto.RejectBookingRequest true "Confirmation"
// @Success 200 {object} queries.OwnerBookingsView
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/owner/bookings/{id}/reject [post]
func (h *OwnerBookingsHandler) Reject(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req reqdto.RejectBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, msgInvalidRequest)
		return
	}
	view, err := h.ownerCommands.Reject(c.Request.Context(), middleware.GetSessionID(c), id, req.Confirm)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Set a booking back to pending
// @Tags owner
// @Produce json
// @Param id path int true "Booking ID"
// @Success 200 {object} queries.OwnerBookingsView
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/owner/bookings/{id}/pending [post]
func (h *OwnerBookingsHandler) Revert(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	view, err := h.ownerCommands.Revert(c.Request.Context(), middleware.GetSessionID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
