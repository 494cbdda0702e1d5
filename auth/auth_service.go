package auth

import (
	"context"
	"log/slog"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hanksha/court-booking-backend/access"
	"github.com/hanksha/court-booking-backend/actionlog"
	"github.com/hanksha/court-booking-backend/licensee"
	"github.com/hanksha/court-booking-backend/upstream"
)

//go:generate mockgen -source=auth_service.go -destination=mocks/auth_service_mock.go -package=mocks

type Authenticator interface {
	Authenticate(ctx context.Context, email, password string) (*upstream.AuthResult, error)
}

type AccessControl interface {
	IsAuthorizedEmail(ctx context.Context, email string) (bool, error)
	GetUserRights(ctx context.Context, userID string) (access.Rights, error)
}

type ActionLogger interface {
	Log(ctx context.Context, userID string, details actionlog.Details, success bool)
}

type Directory interface {
	ByEmail(ctx context.Context, email string) (licensee.Licensee, bool, error)
}

type Service struct {
	authenticator Authenticator
	access        AccessControl
	actions       ActionLogger
	directory     Directory
	tokens        *Tokens
	logger        *slog.Logger
}

func NewService(authenticator Authenticator, access AccessControl, actions ActionLogger, directory Directory, tokens *Tokens) *Service {
	return &Service{
		authenticator: authenticator,
		access:        access,
		actions:       actions,
		directory:     directory,
		tokens:        tokens,
		logger:        slog.Default().With("component", "auth"),
	}
}

// Login checks the allow-list before asking the provider. A LOGIN action is logged on every outcome.
func (s *Service) Login(ctx context.Context, email, password string) (*Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	if len(email) == 0 || len(password) == 0 {
		return nil, ErrMissingCredentials
	}

	details := actionlog.LoginDetails{Email: email}

	allowed, err := s.access.IsAuthorizedEmail(ctx, email)

	if err != nil {
		s.actions.Log(ctx, s.attemptUserID(ctx, email), details, false)
		return nil, err
	}

	if !allowed {
		s.actions.Log(ctx, s.attemptUserID(ctx, email), details, false)
		return nil, ErrEmailNotAuthorized
	}

	result, err := s.authenticator.Authenticate(ctx, email, password)

	if err != nil {
		s.actions.Log(ctx, s.attemptUserID(ctx, email), details, false)
		return nil, err
	}

	rights, err := s.access.GetUserRights(ctx, result.UserID)

	if err != nil {
		s.actions.Log(ctx, result.UserID, details, false)
		return nil, err
	}

	user := User{
		ID:        result.UserID,
		Email:     email,
		FirstName: result.FirstName,
		LastName:  result.LastName,
		Rights:    rights,
	}

	token, expiresAt, err := s.tokens.Issue(Claims{
		Email:            user.Email,
		FirstName:        user.FirstName,
		LastName:         user.LastName,
		Credential:       result.Token,
		RegisteredClaims: jwt.RegisteredClaims{Subject: user.ID},
	})

	if err != nil {
		s.actions.Log(ctx, result.UserID, details, false)
		return nil, err
	}

	s.actions.Log(ctx, result.UserID, details, true)

	return &Session{Token: token, Credential: result.Token, ExpiresAt: expiresAt, User: user}, nil
}

// attemptUserID resolves the licensee behind a failed login, falling back to the email.
func (s *Service) attemptUserID(ctx context.Context, email string) string {
	found, ok, err := s.directory.ByEmail(ctx, email)

	if err != nil {
		s.logger.Warn("licensee directory unavailable for login attempt", "err", err)
		return email
	}

	if !ok {
		return email
	}

	return found.UserID
}

// Authenticate resolves a session token into the current user, with rights read fresh from the store.
func (s *Service) Authenticate(ctx context.Context, token string) (*Session, error) {
	claims, err := s.tokens.Parse(token)

	if err != nil {
		return nil, err
	}

	rights, err := s.access.GetUserRights(ctx, claims.Subject)

	if err != nil {
		return nil, err
	}

	session := &Session{
		Token:      token,
		Credential: claims.Credential,
		User: User{
			ID:        claims.Subject,
			Email:     claims.Email,
			FirstName: claims.FirstName,
			LastName:  claims.LastName,
			Rights:    rights,
		},
	}

	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
	}

	return session, nil
}
