package api

import (
	"net/http"

	reqdto "venue-booking/internal/handler/dto/request"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/handler/middleware"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	accountCommands commands.AccountCommands
	sessionQueries  queries.SessionQueries
	cfg             config.Config
}

func NewSessionHandler(accountCommands commands.AccountCommands, sessionQueries queries.SessionQueries, cfg config.Config) *SessionHandler {
	return &SessionHandler{
		accountCommands: accountCommands,
		sessionQueries:  sessionQueries,
		cfg:             cfg,
	}
}

// @Summary Sign in
// @Description Exchange username and password for a signed-in session
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/session/login [post]
func (h *SessionHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, msgInvalidRequest)
		return
	}
	creds, err := req.ToDomain()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.accountCommands.Login(c.Request.Context(), middleware.GetSessionID(c), creds)
	if err != nil {
		respondError(c, err)
		return
	}

	// Login may have had to start a new session
	cookie.SetSessionCookie(c, h.cfg.Cookie, result.Session.ID, h.cfg.Session.TTL)
	c.Header(cookie.SessionHeaderName, result.Session.ID)
	c.JSON(http.StatusOK, resdto.LoginResponse{SessionID: result.Session.ID, Me: result.Me})
}

// @Summary Register
// @Description Create a remote account and its profile
// @Tags session
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterRequest true "Registration form"
// @Success 201 {object} resdto.MessageResponse
// @Failure 400 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /api/session/register [post]
func (h *SessionHandler) Register(c *gin.Context) {
	var req reqdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, msgInvalidRequest)
		return
	}
	if err := h.accountCommands.Register(c.Request.Context(), req.ToDomain()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.MessageResponse{Message: "Registration successful. Please log in."})
}

// @Summary Sign out
// @Description Forget tokens, cached profile and any pending booking
// @Tags session
// @Success 204 "No Content"
// @Router /api/session/logout [post]
func (h *SessionHandler) Logout(c *gin.Context) {
	if err := h.accountCommands.Logout(c.Request.Context(), middleware.GetSessionID(c)); err != nil {
		respondError(c, err)
		return
	}
	cookie.ClearSessionCookie(c, h.cfg.Cookie)
	c.Status(http.StatusNoContent)
}

// @Summary Current user
// @Description Identity, cached profile and pending booking of the session
// @Tags session
// @Produce json
// @Success 200 {object} queries.MeView
// @Failure 401 {object} httperr.Response
// @Router /api/session/me [get]
func (h *SessionHandler) Me(c *gin.Context) {
	me, err := h.sessionQueries.Me(c.Request.Context(), middleware.GetSessionID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, me)
}
