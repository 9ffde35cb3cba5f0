package identity

import (
	"bytes"
	"errors"
	"strconv"
	"strings"
	"time"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/clock"

	"github.com/goccy/go-json"
	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSession means the token cannot vouch for anyone. Callers treat it as
// "not signed in", never as a failure of their own.
var ErrNoSession = errors.New("no valid session token")

// Claims is the part of an access token this service reads.
type Claims struct {
	UserID       int64
	IsVenueOwner *bool
	ExpiresAt    time.Time
}

// Identity resolves the role from the token when it carries one and from the
// cached profile otherwise.
func (c Claims) Identity(profile *user.Profile) user.Identity {
	role := user.RoleGuest
	switch {
	case c.IsVenueOwner != nil:
		role = user.RoleFromOwnerFlag(*c.IsVenueOwner)
	case profile != nil:
		role = profile.Role()
	}
	return user.Identity{UserID: c.UserID, Role: role}
}

type tokenClaims struct {
	UserID       flexibleID `json:"user_id"`
	IsVenueOwner *bool      `json:"is_venue_owner,omitempty"`
	jwt.RegisteredClaims
}

// user_id arrives as a number or as a numeric string depending on the issuer
type flexibleID struct {
	value int64
	set   bool
}

func (f *flexibleID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	n, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return err
	}
	f.value, f.set = n, true
	return nil
}

// Decoder reads access tokens without verifying their signature; the remote
// API that issued them is the one that verifies.
type Decoder struct {
	clock  clock.Clock
	parser *jwt.Parser
}

func NewDecoder(clk clock.Clock) *Decoder {
	return &Decoder{
		clock:  clk,
		parser: jwt.NewParser(),
	}
}

func (d *Decoder) Decode(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrNoSession
	}

	var tc tokenClaims
	if _, _, err := d.parser.ParseUnverified(token, &tc); err != nil {
		return Claims{}, ErrNoSession
	}
	if !tc.UserID.set || tc.UserID.value <= 0 {
		return Claims{}, ErrNoSession
	}

	var expiresAt time.Time
	if tc.ExpiresAt != nil {
		expiresAt = tc.ExpiresAt.Time
		if !expiresAt.After(d.clock.Now()) {
			return Claims{}, ErrNoSession
		}
	}

	return Claims{
		UserID:       tc.UserID.value,
		IsVenueOwner: tc.IsVenueOwner,
		ExpiresAt:    expiresAt,
	}, nil
}
