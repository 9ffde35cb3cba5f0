package commands

import (
	"context"
	"sort"
	"strings"

	"venue-booking/internal/domain/session"
	"venue-booking/internal/domain/user"
	"venue-booking/internal/infra/remote"
	"venue-booking/internal/pkg/errs"
	"venue-booking/internal/usecase/queries"
	"venue-booking/internal/usecase/shared"
)

var (
	ErrInvalidCredentials = errs.New("Invalid username or password")
	ErrRegistrationFailed = errs.New("Registration failed. Please try again.")
)

// known remote registration problems, keyed by field
var registrationMessages = map[string]string{
	"username":    "Username is already taken.",
	"email":       "An account with this email already exists.",
	"phoneNumber": "Phone number already registered.",
}

var registrationLabels = map[string]string{
	"username":       "Username",
	"email":          "Email",
	"password":       "Password",
	"phoneNumber":    "Phone number",
	"address":        "Address",
	"fullname":       "Full name",
	"is_venue_owner": "Account type",
}

type LoginResult struct {
	Session *session.Session
	Me      *queries.MeView
}

type AccountCommands interface {
	// Login signs the session in. A missing session is created.
	Login(ctx context.Context, sessionID string, creds user.Credentials) (*LoginResult, error)
	Register(ctx context.Context, in user.RegistrationInput) error
	Logout(ctx context.Context, sessionID string) error
}

type accountCommandsImpl struct {
	store    shared.SessionStore
	decoder  shared.TokenDecoder
	accounts shared.AccountGateway
}

func NewAccountCommands(store shared.SessionStore, decoder shared.TokenDecoder, accounts shared.AccountGateway) AccountCommands {
	return &accountCommandsImpl{
		store:    store,
		decoder:  decoder,
		accounts: accounts,
	}
}

func (a *accountCommandsImpl) Login(ctx context.Context, sessionID string, creds user.Credentials) (*LoginResult, error) {
	tokens, err := a.accounts.ObtainToken(ctx, creds)
	if err != nil {
		if remote.IsKind(err, remote.KindUnauthorized) || remote.IsKind(err, remote.KindBadRequest) {
			return nil, errs.Mark(err, ErrInvalidCredentials)
		}
		return nil, err
	}

	claims, err := a.decoder.Decode(tokens.Access)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "decode issued token"), errs.ErrRemoteUnavailable)
	}

	profile, err := a.accounts.GetProfile(ctx, tokens.Access, creds.Username)
	if err != nil {
		return nil, err
	}

	sess, err := a.signIn(ctx, sessionID, tokens, profile)
	if err != nil {
		return nil, err
	}

	id := claims.Identity(&profile)
	return &LoginResult{
		Session: sess,
		Me: &queries.MeView{
			UserID:  id.UserID,
			Role:    id.Role.String(),
			Landing: id.Role.Landing(),
			Profile: sess.Profile,
		},
	}, nil
}

func (a *accountCommandsImpl) signIn(ctx context.Context, sessionID string, tokens session.Tokens, profile user.Profile) (*session.Session, error) {
	apply := func(s *session.Session) error {
		s.SignIn(tokens, profile)
		return nil
	}
	sess, err := a.store.Update(ctx, sessionID, apply)
	if err == nil {
		return sess, nil
	}
	if !errs.Is(err, session.ErrSessionNotFound) {
		return nil, errs.Wrap(err, "store session")
	}

	created, err := a.store.Create(ctx)
	if err != nil {
		return nil, errs.Wrap(err, "create session")
	}
	return a.store.Update(ctx, created.ID, apply)
}

func (a *accountCommandsImpl) Register(ctx context.Context, in user.RegistrationInput) error {
	reg, err := user.NewRegistration(in)
	if err != nil {
		return err
	}

	if err := a.accounts.CreateAccount(ctx, reg); err != nil {
		return registrationError(err)
	}
	if err := a.accounts.CreateProfile(ctx, reg); err != nil {
		return registrationError(err)
	}
	return nil
}

func (a *accountCommandsImpl) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	return a.store.Delete(ctx, sessionID)
}

// RegistrationError carries the messages shown on the sign-up form when
// the remote API refuses an account.
type RegistrationError struct {
	Messages []string
	err      error
}

func (e *RegistrationError) Error() string {
	return strings.Join(e.Messages, " ")
}

func (e *RegistrationError) Unwrap() error {
	return e.err
}

func registrationError(err error) error {
	apiErr, ok := remote.AsAPIError(err)
	if !ok || !(apiErr.Kind == remote.KindBadRequest || apiErr.Kind == remote.KindConflict) {
		return err
	}

	var messages []string
	keys := make([]string, 0, len(apiErr.Fields))
	for k := range apiErr.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, field := range keys {
		if msgs := apiErr.Fields[field]; len(msgs) > 0 {
			messages = append(messages, registrationMessage(field, msgs[0]))
		}
	}
	if apiErr.Detail != "" {
		messages = append(messages, apiErr.Detail)
	}
	if len(messages) == 0 {
		messages = []string{ErrRegistrationFailed.Error()}
	}
	return &RegistrationError{Messages: messages, err: err}
}

func registrationMessage(field, msg string) string {
	lower := strings.ToLower(msg)
	if known, ok := registrationMessages[field]; ok && (strings.Contains(lower, "exist") || strings.Contains(lower, "taken") || strings.Contains(lower, "already")) {
		return known
	}
	label, ok := registrationLabels[field]
	if !ok {
		label = field
	}
	return label + ": " + msg
}
