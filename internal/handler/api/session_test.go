//go:build unit

package api_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/handler/api"
	"venue-booking/internal/handler/middleware"
	resdto "venue-booking/internal/handler/dto/response"
	"venue-booking/internal/infra/remote"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/commands"
	"venue-booking/internal/usecase/queries"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/common/testutil"
	commandsmock "venue-booking/tests/mock/commands"
	queriesmock "venue-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const testSessionID = "sid-test"

// stands in for EnsureSession so handlers see a fixed session
func fakeSession(c *gin.Context) {
	c.Set("session_id", testSessionID)
	c.Next()
}

type SessionHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAccountCommands
	mockQueries  *queriesmock.MockSessionQueries
}

func (s *SessionHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAccountCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSessionQueries(s.mockCtrl)
	h := api.NewSessionHandler(s.mockCommands, s.mockQueries, config.NewTestConfig())

	g := s.router.Group("/api/session", middleware.ErrorHandler(), fakeSession)
	g.POST("/login", h.Login)
	g.POST("/register", h.Register)
	g.POST("/logout", h.Logout)
	g.GET("/me", h.Me)
}

func (s *SessionHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSessionHandlerSuite(t *testing.T) {
	suite.Run(t, new(SessionHandlerTestSuite))
}

// ================================================================================
// TestLogin
// ================================================================================

func (s *SessionHandlerTestSuite) TestLogin() {
	url := "/api/session/login"
	reqBody := map[string]any{"username": "hari", "password": "secret-pass"}

	s.Run("success: sets the session cookie and returns the caller", func() {
		me := &queries.MeView{UserID: 3, Role: string(user.RoleOwner), Landing: "owner"}
		s.mockCommands.EXPECT().
			Login(gomock.Any(), testSessionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, creds user.Credentials) (*commands.LoginResult, error) {
				s.Equal("hari", creds.Username)
				return &commands.LoginResult{Session: &session.Session{ID: "sid-new"}, Me: me}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("sid-new", body.SessionID)
		s.Equal("owner", body.Me.Landing)
		c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
		require.NotNil(s.T(), c)
		s.Equal("sid-new", c.Value)
		httptest.AssertHeaders(s.T(), rec, map[string]string{cookie.SessionHeaderName: "sid-new"})
	})

	s.Run("error: 400 when a credential is missing", func() {
		for _, key := range []string{"username", "password"} {
			s.Run(key, func() {
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
					testutil.DtoMap(s.T(), reqBody, testutil.Without(key)), "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
		s.Run("null password", func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url,
				testutil.DtoMap(s.T(), reqBody, testutil.With("password", nil)), "")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
		})
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "rejected credentials",
				commandsError:  commands.ErrInvalidCredentials,
				expectedStatus: http.StatusUnauthorized,
				expectedMsg:    "Invalid username or password",
			},
			{
				name:           "remote api down",
				commandsError:  errs.Mark(errors.New("dial tcp"), errs.ErrRemoteUnavailable),
				expectedStatus: http.StatusBadGateway,
				expectedMsg:    "The booking service is unavailable",
			},
			{
				name:           "unexpected failure",
				commandsError:  errors.New("boom"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestRegister
// ================================================================================

func (s *SessionHandlerTestSuite) TestRegister() {
	url := "/api/session/register"
	reqBody := map[string]any{
		"username":        "sita",
		"email":           "sita@example.com",
		"password":        "long-enough-pass",
		"retype_password": "long-enough-pass",
		"fullname":        "Sita Sharma",
		"phoneNumber":     "9800000000",
		"is_venue_owner":  true,
	}

	s.Run("success: 201 with a sign in prompt", func() {
		s.mockCommands.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, in user.RegistrationInput) error {
				s.True(in.IsVenueOwner)
				s.Equal("sita@example.com", in.Email)
				return nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var body resdto.MessageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Registration successful. Please log in.", body.Message)
	})

	s.Run("error: local validation returns the field messages", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(errs.NewValidation(map[string]string{"retype_password": "Passwords don't match!"}))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Passwords don't match!")
		var detail map[string]string
		httptest.DecodeErrorDetail(s.T(), rec, &detail)
		s.Equal("Passwords don't match!", detail["retype_password"])
	})

	s.Run("error: remote refusal lists every message", func() {
		s.mockCommands.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(&commands.RegistrationError{Messages: []string{"Username is already taken."}})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Username is already taken.")
		var detail []string
		httptest.DecodeErrorDetail(s.T(), rec, &detail)
		s.Equal([]string{"Username is already taken."}, detail)
	})
}

// ================================================================================
// TestLogout / TestMe
// ================================================================================

func (s *SessionHandlerTestSuite) TestLogout() {
	s.mockCommands.EXPECT().Logout(gomock.Any(), testSessionID).Return(nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/session/logout", nil, "")

	s.Equal(http.StatusNoContent, rec.Code)
	c := httptest.ExtractCookie(rec, cookie.SessionCookieName)
	require.NotNil(s.T(), c)
	s.Empty(c.Value)
	s.Negative(c.MaxAge)
}

func (s *SessionHandlerTestSuite) TestMe() {
	s.Run("success: returns the pending booking", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), testSessionID).Return(&queries.MeView{
			UserID:  9,
			Role:    string(user.RoleGuest),
			Landing: "guest",
			Intent:  &queries.IntentView{VenueID: 4, StartDate: "2024-01-10", EndDate: "2024-01-12", Amount: 2000},
		}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/session/me", nil, "")

		var body queries.MeView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		require.NotNil(s.T(), body.Intent)
		s.Equal(2000.0, body.Intent.Amount)
	})

	s.Run("error: 401 when signed out", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), testSessionID).Return(nil, errs.ErrUnauthenticated)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/session/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Please log in to continue")
	})

	s.Run("error: remote 401 reads as signed out", func() {
		s.mockQueries.EXPECT().Me(gomock.Any(), testSessionID).
			Return(nil, errs.Wrap(&remote.APIError{Kind: remote.KindUnauthorized, StatusCode: 401}, "load profile"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/session/me", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Please log in to continue")
	})
}
