//go:build unit

package identity_test

import (
	"testing"
	"time"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/clock"
	"venue-booking/internal/pkg/identity"
	"venue-booking/tests/common/builder"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	now := time.Now()
	dec := identity.NewDecoder(clock.NewFixedClock(now))

	cases := []struct {
		name    string
		token   string
		wantID  int64
		wantErr bool
	}{
		{name: "numeric user id", token: builder.NewTokenBuilder().Build(), wantID: 7},
		{name: "string user id", token: builder.NewTokenBuilder().With(func(b *builder.TokenBuilder) { b.UserID = "42" }).Build(), wantID: 42},
		{name: "no expiry is accepted", token: builder.NewTokenBuilder().With(func(b *builder.TokenBuilder) { b.ExpiresAt = time.Time{} }).Build(), wantID: 7},
		{name: "empty token", token: "  ", wantErr: true},
		{name: "not a jwt", token: "abc.def", wantErr: true},
		{name: "missing user id", token: builder.NewTokenBuilder().With(func(b *builder.TokenBuilder) { b.Omit = true }).Build(), wantErr: true},
		{name: "zero user id", token: builder.NewTokenBuilder().With(func(b *builder.TokenBuilder) { b.UserID = 0 }).Build(), wantErr: true},
		{name: "non numeric user id", token: builder.NewTokenBuilder().With(func(b *builder.TokenBuilder) { b.UserID = "abc" }).Build(), wantErr: true},
		{name: "expired", token: builder.NewTokenBuilder().With(func(b *builder.TokenBuilder) { b.ExpiresAt = now.Add(-time.Minute) }).Build(), wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			claims, err := dec.Decode(tc.token)
			if tc.wantErr {
				assert.ErrorIs(t, err, identity.ErrNoSession)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, claims.UserID)
		})
	}
}

func TestClaimsIdentity(t *testing.T) {
	dec := identity.NewDecoder(clock.NewRealClock())
	owner := &user.Profile{IsVenueOwner: true}

	t.Run("token flag wins over the profile", func(t *testing.T) {
		claims, err := dec.Decode(builder.NewTokenBuilder().AsOwner(false).Build())
		require.NoError(t, err)
		assert.Equal(t, user.RoleGuest, claims.Identity(owner).Role)
	})

	t.Run("profile decides when the token is silent", func(t *testing.T) {
		claims, err := dec.Decode(builder.NewTokenBuilder().Build())
		require.NoError(t, err)
		assert.Equal(t, user.RoleOwner, claims.Identity(owner).Role)
		assert.Equal(t, user.RoleGuest, claims.Identity(nil).Role)
		assert.Equal(t, int64(7), claims.Identity(nil).UserID)
	})
}
