//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"venue-booking/cmd/bootstrap"
	"venue-booking/cmd/bootstrap/components"
	"venue-booking/internal/pkg/config"
	"venue-booking/internal/pkg/cookie"
	"venue-booking/tests/common/httptest"
	"venue-booking/tests/common/redistest"
	"venue-booking/tests/common/remotetest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

// ------------------------------------------------------------
// Set up one app per suite: a fake remote API, the shared Redis
// container and the real fx graph on top of them.
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T) (*gin.Engine, *remotetest.FakeAPI, config.Config) {
	gin.SetMode(gin.TestMode)

	redisInfo := redistest.Start(t)
	remote := remotetest.New(t)

	router, cfg, app := buildE2EApp(createTestConfig(redisInfo, remote.URL()))
	require.NotNil(t, router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx application", "error", err.Error())
		}
	})

	slog.Info("e2e environment ready", "redis", redisInfo.Addr(), "remote", remote.URL())
	return router, remote, cfg
}

func createTestConfig(redisInfo redistest.ContainerInfo, remoteURL string) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Redis.Addr = redisInfo.Addr()
	testConfig.Remote.BaseURL = remoteURL
	// suites share the container, so each gets its own keyspace
	testConfig.Session.KeyPrefix = "e2e-" + uuid.NewString()
	return testConfig
}

func buildE2EApp(testConfig config.Config) (*gin.Engine, config.Config, *fx.App) {
	var router *gin.Engine
	var cfg config.Config

	testConfigModule := fx.Module("testconfig",
		fx.Provide(func() config.Config { return testConfig }),
		bootstrap.ConfigSections,
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.RedisModule,
		bootstrap.RemoteModule,
		bootstrap.IdentityModule,
		components.StoreModule,
		components.UseCaseModule,
		components.HandlerModule,

		fx.Populate(&router, &cfg),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		panic(fmt.Sprintf("Failed to start fx app: %v", err))
	}
	return router, cfg, app
}

// ------------------------------------------------------------
// Shared suite for e2e tests
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	Remote *remotetest.FakeAPI
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	router, remote, cfg := setupE2EEnvironment(s.T())
	s.Router = router
	s.Remote = remote
	s.Config = cfg
}

// Browser plays one client: it carries the session cookie from response to
// request the way a browser would.
type Browser struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func (s *SharedSuite) NewBrowser() *Browser {
	return &Browser{t: s.T(), router: s.Router}
}

func (b *Browser) Do(method, path string, body any) *nethttptest.ResponseRecorder {
	b.t.Helper()
	rec := httptest.PerformRequestWithCookies(b.t, b.router, method, path, body, b.cookies)
	if c := httptest.ExtractCookie(rec, cookie.SessionCookieName); c != nil {
		if c.Value == "" {
			b.cookies = nil
		} else {
			b.cookies = []*http.Cookie{{Name: c.Name, Value: c.Value}}
		}
	}
	return rec
}

// SessionID is the session the browser currently holds.
func (b *Browser) SessionID() string {
	if len(b.cookies) == 0 {
		return ""
	}
	return b.cookies[0].Value
}

// Login signs the browser in and fails the test on anything but 200.
func (b *Browser) Login(username, password string) {
	b.t.Helper()
	rec := b.Do(http.MethodPost, "/api/session/login", map[string]any{"username": username, "password": password})
	require.Equal(b.t, http.StatusOK, rec.Code, "login failed: %s", rec.Body.String())
}
