//go:build unit || e2e

package httptest

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"venue-booking/internal/pkg/cookie"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
)

// PerformRequest sends body as JSON. A non-empty sessionID travels in the
// session header, the way non-browser clients carry it.
func PerformRequest(t *testing.T, router *gin.Engine, method, path string, body any, sessionID string) *httptest.ResponseRecorder {
	t.Helper()

	req := newJSONRequest(t, method, path, body)
	if sessionID != "" {
		req.Header.Set(cookie.SessionHeaderName, sessionID)
	}
	return serve(router, req)
}

// PerformRequestWithCookies is PerformRequest for browser-style callers.
func PerformRequestWithCookies(t *testing.T, router *gin.Engine, method, path string, body any, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	req := newJSONRequest(t, method, path, body)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return serve(router, req)
}

func newJSONRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	if body == nil {
		return httptest.NewRequest(method, path, http.NoBody)
	}
	raw, err := json.Marshal(body)
	require.NoError(t, err, "Failed to encode request body to JSON")

	req := httptest.NewRequest(method, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExtractCookie returns the named cookie set by the response, or nil.
func ExtractCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// SessionCookie is the session cookie a browser would send back.
func SessionCookie(id string) []*http.Cookie {
	return []*http.Cookie{{Name: cookie.SessionCookieName, Value: id}}
}
