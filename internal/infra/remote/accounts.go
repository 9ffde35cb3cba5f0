package remote

import (
	"context"
	"net/http"
	"net/url"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/pkg/errs"
)

func (c *Client) ObtainToken(ctx context.Context, creds user.Credentials) (session.Tokens, error) {
	body := credentialsDTO{Username: creds.Username, Password: creds.Password}
	var d tokensDTO
	if err := c.do(ctx, http.MethodPost, c.cfg.TokenPath, "", body, &d); err != nil {
		return session.Tokens{}, errs.Wrap(err, "obtain token")
	}
	if d.Access == "" {
		return session.Tokens{}, errs.Mark(errs.New("token response without access token"), errs.ErrRemoteUnavailable)
	}
	return session.Tokens{Access: d.Access, Refresh: d.Refresh}, nil
}

func (c *Client) GetProfile(ctx context.Context, token, username string) (user.Profile, error) {
	var d profileDTO
	path := "/api/userProfiles/" + url.PathEscape(username) + "/"
	if err := c.do(ctx, http.MethodGet, path, token, nil, &d); err != nil {
		return user.Profile{}, errs.Wrapf(err, "get profile %s", username)
	}
	return toProfile(d)
}

func (c *Client) CreateAccount(ctx context.Context, reg user.Registration) error {
	body := accountDTO{
		Username: reg.Username,
		Password: reg.Password,
		Email:    reg.Email.Value(),
	}
	if err := c.do(ctx, http.MethodPost, c.cfg.AccountPath, "", body, nil); err != nil {
		return errs.Wrap(err, "create account")
	}
	return nil
}

func (c *Client) CreateProfile(ctx context.Context, reg user.Registration) error {
	body := profileRegisterDTO{
		Username:     reg.Username,
		Email:        reg.Email.Value(),
		Address:      reg.Address,
		PhoneNumber:  reg.PhoneNumber,
		IsVenueOwner: reg.IsVenueOwner,
		FullName:     reg.FullName,
	}
	if err := c.do(ctx, http.MethodPost, "/api/register/", "", body, nil); err != nil {
		return errs.Wrap(err, "create profile")
	}
	return nil
}
