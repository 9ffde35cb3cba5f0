package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, remote API url), security settings
// - default: Values common across all environments (timezone, page size, etc.), standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	CORS      CORSConfig
	Log       LogConfig
	Cookie    CookieConfig
	Remote    RemoteConfig
	Redis     RedisConfig
	Session   SessionConfig
	Catalog   CatalogConfig
	Booking   BookingConfig
	Payment   PaymentConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:5173"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization,X-Session-ID"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length,X-Request-ID"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Kathmandu"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"20700"` // 5*60*60 + 45*60
}

type CookieConfig struct {
	Domain   string `envconfig:"COOKIE_DOMAIN" default:""`
	Secure   bool   `envconfig:"COOKIE_SECURE" default:"false"`
	SameSite string `envconfig:"COOKIE_SAMESITE" default:"Lax"`
}

type RemoteConfig struct {
	BaseURL          string        `envconfig:"REMOTE_BASE_URL" required:"true"`
	TokenPath        string        `envconfig:"REMOTE_TOKEN_PATH" default:"/api/token/"`
	AccountPath      string        `envconfig:"REMOTE_ACCOUNT_PATH" default:"/api/user/register/"`
	Timeout          time.Duration `envconfig:"REMOTE_TIMEOUT" default:"0s"`
	BreakerThreshold int64         `envconfig:"REMOTE_BREAKER_THRESHOLD" default:"5"`
}

type RedisConfig struct {
	// empty address selects the in-memory session store
	Addr     string `envconfig:"REDIS_ADDR" default:""`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type SessionConfig struct {
	TTL         time.Duration `envconfig:"SESSION_TTL" default:"168h"`
	GuardTTL    time.Duration `envconfig:"SESSION_GUARD_TTL" default:"30s"`
	KeyPrefix   string        `envconfig:"SESSION_KEY_PREFIX" default:"venue-booking"`
	UpdateRetry int           `envconfig:"SESSION_UPDATE_RETRY" default:"5"`
}

type CatalogConfig struct {
	PageSize int `envconfig:"CATALOG_PAGE_SIZE" default:"12"`
}

type BookingConfig struct {
	RequirePayment      bool `envconfig:"BOOKING_REQUIRE_PAYMENT" default:"true"`
	CheckAvailability   bool `envconfig:"BOOKING_CHECK_AVAILABILITY" default:"true"`
	RecordCancellations bool `envconfig:"BOOKING_RECORD_CANCELLATIONS" default:"true"`
	GuestFanoutLimit    int  `envconfig:"GUEST_FANOUT_LIMIT" default:"8"`
}

type PaymentConfig struct {
	ReturnURL  string `envconfig:"PAYMENT_RETURN_URL" default:"http://localhost:5173/payment-success"`
	WebsiteURL string `envconfig:"PAYMENT_WEBSITE_URL" default:"http://localhost:5173"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `envconfig:"RATE_LIMIT_RPS" default:"20"`
	Burst             int     `envconfig:"RATE_LIMIT_BURST" default:"40"`
}

// UsesRedis reports whether sessions are persisted in Redis.
func (c RedisConfig) UsesRedis() bool {
	return c.Addr != ""
}

func LoadConfig() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}

	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

// values already present in the environment win over the .env file
func loadDotEnv() error {
	path := os.Getenv("ENV_FILE")
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Kathmandu",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 20700,
		},
		Cookie: CookieConfig{
			SameSite: "Lax",
		},
		Remote: RemoteConfig{
			BaseURL:          "http://127.0.0.1:8000",
			TokenPath:        "/api/token/",
			AccountPath:      "/api/user/register/",
			BreakerThreshold: 5,
		},
		Session: SessionConfig{
			TTL:         time.Hour,
			GuardTTL:    30 * time.Second,
			KeyPrefix:   "venue-booking-test",
			UpdateRetry: 5,
		},
		Catalog: CatalogConfig{
			PageSize: 12,
		},
		Booking: BookingConfig{
			RequirePayment:      true,
			CheckAvailability:   true,
			RecordCancellations: true,
			GuestFanoutLimit:    4,
		},
		Payment: PaymentConfig{
			ReturnURL:  "http://localhost:5173/payment-success",
			WebsiteURL: "http://localhost:5173",
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 1000,
			Burst:             1000,
		},
	}
}
