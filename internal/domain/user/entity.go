package user

import (
	"strings"

	"venue-booking/internal/pkg/errs"
)

// Identity is what a bearer token says about its holder.
type Identity struct {
	UserID int64
	Role   Role
}

func (i Identity) IsOwner() bool {
	return i.Role == RoleOwner
}

// Profile mirrors the remote user profile that is cached in the session.
type Profile struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phoneNumber"`
	Address      string `json:"address"`
	FullName     string `json:"fullname"`
	IsVenueOwner bool   `json:"is_venue_owner"`
}

func (p Profile) Role() Role {
	return RoleFromOwnerFlag(p.IsVenueOwner)
}

// Registration is a sign-up form that passed local checks.
type Registration struct {
	Username     string
	Email        Email
	Password     string
	FullName     string
	Address      string
	PhoneNumber  string
	IsVenueOwner bool
}

type RegistrationInput struct {
	Username       string
	Email          string
	Password       string
	RetypePassword string
	FullName       string
	Address        string
	PhoneNumber    string
	IsVenueOwner   bool
}

// NewRegistration validates the form before anything is sent upstream.
// All field problems are reported together.
func NewRegistration(in RegistrationInput) (Registration, error) {
	fields := map[string]string{}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		fields["username"] = ErrUsernameRequired.Error()
	}

	email, err := NewEmail(in.Email)
	if err != nil {
		fields["email"] = err.Error()
	}

	switch {
	case in.Password == "":
		fields["password"] = ErrPasswordRequired.Error()
	case in.Password != in.RetypePassword:
		fields["retype_password"] = ErrPasswordMismatch.Error()
	}

	fullName := strings.TrimSpace(in.FullName)
	if fullName == "" {
		fields["fullname"] = ErrFullNameRequired.Error()
	}

	if len(fields) > 0 {
		return Registration{}, errs.NewValidation(fields)
	}

	return Registration{
		Username:     username,
		Email:        email,
		Password:     in.Password,
		FullName:     fullName,
		Address:      strings.TrimSpace(in.Address),
		PhoneNumber:  strings.TrimSpace(in.PhoneNumber),
		IsVenueOwner: in.IsVenueOwner,
	}, nil
}
