package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type WizardHandler struct {
	wizardCommands commands.WizardCommands
	wizardQueries  queries.WizardQueries
}

func NewWizardHandler(wizardCommands commands.WizardCommands, wizardQueries queries.WizardQueries) *WizardHandler {
	return &WizardHandler{
		wizardCommands: wizardCommands,
		wizardQueries:  wizardQueries,
	}
}

// @Summary Venue wizard
// @Tags owner
// @Produce json
// @Success 200 {object} queries.WizardView
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/owner/wizard [get]
func (h *WizardHandler) View(c *gin.Context) {
	view, err := h.wizardQueries.View(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// @Summary Edit wizard fields
// @Tags owner
// @Accept json
// @Produce json
// @Param request body reqdto.WizardPatchRequest true "Edited fields"
// @Success 200 {object} queries.WizardView
// @Failure 409 {object} httperr.Response
// @Router /api/owner/wizard [patch]
func (h *WizardHandler) Edit(c *gin.Context) {
	var req reqdto.WizardPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, msgInvalidRequest)
		return
	}
	h.respond(c)(h.wizardCommands.Edit(c.Request.Context(), middleware.GetSessionID(c), req.ToDomain()))
}

// @Summary Next wizard stage
// @Description Validate the current stage and advance
// @Tags owner
// @Produce json
// @Success 200 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Router /api/owner/wizard/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	h.respond(c)(h.wizardCommands.Next(c.Request.Context(), middleware.GetSessionID(c)))
}

// @Summary Previous wizard stage
// @Tags owner
// @Produce json
// @Success 200 {object} queries.WizardView
// @Router /api/owner/wizard/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	h.respond(c)(h.wizardCommands.Back(c.Request.Context(), middleware.GetSessionID(c)))
}

// @Summary Submit venue
// @Description Validate every stage and register the venue
// @Tags owner
// @Produce json
// @Success 201 {object} queries.WizardView
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/owner/wizard/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	view, err := h.wizardCommands.Submit(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		h.fail(c, view, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// @Summary Reset wizard
// @Tags owner
// @Produce json
// @Success 200 {object} queries.WizardView
// @Router /api/owner/wizard [delete]
func (h *WizardHandler) Reset(c *gin.Context) {
	h.respond(c)(h.wizardCommands.Reset(c.Request.Context(), middleware.GetSessionID(c)))
}

func (h *WizardHandler) respond(c *gin.Context) func(*queries.WizardView, error) {
	return func(view *queries.WizardView, err error) {
		if err != nil {
			h.fail(c, view, err)
			return
		}
		c.JSON(http.StatusOK, view)
	}
}

// fail keeps the wizard in the error body so the form can redraw itself.
func (h *WizardHandler) fail(c *gin.Context, view *queries.WizardView, err error) {
	if view == nil {
		respondError(c, err)
		return
	}
	status, msg, _ := classify(err)
	httperr.AbortWithError(c, status, err, msg, view)
}
