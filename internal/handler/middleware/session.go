package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/httperr"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type SessionMiddleware struct {
	store   shared.SessionStore
	decoder shared.TokenDecoder
	cookie  config.CookieConfig
	ttl     time.Duration
}

const (
	ctxSessionIDKey = "session_id"
	ctxUserIDKey    = "user_id"
	ctxUserRoleKey  = "user_role"
)

func NewSessionMiddleware(store shared.SessionStore, decoder shared.TokenDecoder, cfg config.Config) *SessionMiddleware {
	return &SessionMiddleware{
		store:   store,
		decoder: decoder,
		cookie:  cfg.Cookie,
		ttl:     cfg.Session.TTL,
	}
}

// EnsureSession attaches a live session to the request, starting a new one
// when the client has none or its session expired.
func (m *SessionMiddleware) EnsureSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := cookie.GetSessionID(c)

		var sess *session.Session
		if id != "" {
			s, err := m.store.Get(ctx, id)
			switch {
			case err == nil:
				sess = s
			case !errs.Is(err, session.ErrSessionNotFound):
				slog.ErrorContext(ctx, "session lookup failed", "error", err.Error())
				httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Session store unavailable", nil)
				return
			}
		}
		if sess == nil {
			s, err := m.store.Create(ctx)
			if err != nil {
				slog.ErrorContext(ctx, "session create failed", "error", err.Error())
				httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Session store unavailable", nil)
				return
			}
			sess = s
		}

		c.Set(ctxSessionIDKey, sess.ID)
		cookie.SetSessionCookie(c, m.cookie, sess.ID, m.ttl)
		c.Header(cookie.SessionHeaderName, sess.ID)

		if sess.HasToken() {
			if claims, err := m.decoder.Decode(sess.Tokens.Access); err == nil {
				ident := claims.Identity(sess.Profile)
				c.Set(ctxUserIDKey, ident.UserID)
				c.Set(ctxUserRoleKey, ident.Role)
			}
		}
		c.Next()
	}
}

// RequireIdentity must run after EnsureSession.
func (m *SessionMiddleware) RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetUserID(c); !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Please log in to continue", nil)
			return
		}
		c.Next()
	}
}

func (m *SessionMiddleware) RequireRole(role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		current, ok := GetUserRole(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.ErrUnauthenticated, "Please log in to continue", nil)
			return
		}
		if current != role {
			httperr.AbortWithError(c, http.StatusForbidden, errs.ErrForbidden, "Insufficient permissions", nil)
			return
		}
		c.Next()
	}
}

func GetSessionID(c *gin.Context) string {
	return c.GetString(ctxSessionIDKey)
}

func GetUserID(c *gin.Context) (int64, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func GetUserRole(c *gin.Context) (user.Role, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(user.Role)
	return role, ok
}
