//go:build unit || e2e

package builder

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenBuilder struct {
	UserID    any
	Owner     *bool
	ExpiresAt time.Time
	Omit      bool
}

func NewTokenBuilder() *TokenBuilder {
	return &TokenBuilder{
		UserID:    int64(7),
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func (b *TokenBuilder) With(mutate func(*TokenBuilder)) *TokenBuilder {
	mutate(b)
	return b
}

func (b *TokenBuilder) AsOwner(owner bool) *TokenBuilder {
	b.Owner = &owner
	return b
}

// Build signs with a throwaway key; readers of these tokens never verify.
func (b *TokenBuilder) Build() string {
	claims := jwt.MapClaims{}
	if !b.Omit {
		claims["user_id"] = b.UserID
	}
	if b.Owner != nil {
		claims["is_venue_owner"] = *b.Owner
	}
	if !b.ExpiresAt.IsZero() {
		claims["exp"] = b.ExpiresAt.Unix()
	}
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unit-test"))
	if err != nil {
		panic(err)
	}
	return s
}
