package request

import (
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"
)

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r LoginRequest) ToDomain() (user.Credentials, error) {
	creds, err := user.NewCredentials(r.Username, r.Password)
	if err != nil {
		return user.Credentials{}, errs.Mark(err, errs.ErrValidation)
	}
	return creds, nil
}

type RegisterRequest struct {
	Username       string `json:"username"`
	Email          string `json:"email"`
	Password       string `json:"password"`
	RetypePassword string `json:"retype_password"`
	FullName       string `json:"fullname"`
	Address        string `json:"address"`
	PhoneNumber    string `json:"phoneNumber"`
	IsVenueOwner   bool   `json:"is_venue_owner"`
}

func (r RegisterRequest) ToDomain() user.RegistrationInput {
	return user.RegistrationInput{
		Username:       r.Username,
		Email:          r.Email,
		Password:       r.Password,
		RetypePassword: r.RetypePassword,
		FullName:       r.FullName,
		Address:        r.Address,
		PhoneNumber:    r.PhoneNumber,
		IsVenueOwner:   r.IsVenueOwner,
	}
}
