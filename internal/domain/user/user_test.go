//go:build unit

package user_test

import (
	"testing"

	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validInput() user.RegistrationInput {
	return user.RegistrationInput{
		Username:       " alice ",
		Email:          "alice@example.com",
		Password:       "secret",
		RetypePassword: "secret",
		FullName:       "Alice A",
		PhoneNumber:    "9800000000",
		IsVenueOwner:   true,
	}
}

func TestNewRegistration(t *testing.T) {
	t.Run("trims and keeps the owner flag", func(t *testing.T) {
		reg, err := user.NewRegistration(validInput())
		require.NoError(t, err)
		assert.Equal(t, "alice", reg.Username)
		assert.Equal(t, "alice@example.com", reg.Email.Value())
		assert.True(t, reg.IsVenueOwner)
	})

	t.Run("reports every field problem at once", func(t *testing.T) {
		in := validInput()
		in.Username = ""
		in.Email = "not-an-email"
		in.RetypePassword = "other"
		in.FullName = "  "

		_, err := user.NewRegistration(in)
		require.True(t, errs.Is(err, errs.ErrValidation))
		fields, ok := errs.ValidationFields(err)
		require.True(t, ok)

		want := map[string]string{
			"username":        user.ErrUsernameRequired.Error(),
			"email":           user.ErrInvalidEmail.Error(),
			"retype_password": "Passwords don't match!",
			"fullname":        user.ErrFullNameRequired.Error(),
		}
		if diff := cmp.Diff(want, fields); diff != "" {
			t.Errorf("fields mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing password wins over mismatch", func(t *testing.T) {
		in := validInput()
		in.Password = ""
		_, err := user.NewRegistration(in)
		fields, _ := errs.ValidationFields(err)
		assert.Equal(t, user.ErrPasswordRequired.Error(), fields["password"])
		assert.NotContains(t, fields, "retype_password")
	})
}

func TestRoles(t *testing.T) {
	assert.Equal(t, user.RoleOwner, user.RoleFromOwnerFlag(true))
	assert.Equal(t, user.RoleGuest, user.RoleFromOwnerFlag(false))
	assert.Equal(t, "owner", user.RoleOwner.Landing())
	assert.Equal(t, "guest", user.RoleGuest.Landing())

	_, err := user.NewRole("admin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)

	p := user.Profile{IsVenueOwner: true}
	assert.Equal(t, user.RoleOwner, p.Role())
	assert.True(t, user.Identity{Role: user.RoleOwner}.IsOwner())
}

func TestCredentials(t *testing.T) {
	c, err := user.NewCredentials(" bob ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "bob", c.Username)

	_, err = user.NewCredentials("", "pw")
	assert.ErrorIs(t, err, user.ErrCredentialsNeeded)
	_, err = user.NewCredentials("bob", "")
	assert.ErrorIs(t, err, user.ErrCredentialsNeeded)
}
