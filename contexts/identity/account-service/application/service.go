package application

import (
	"context"
	"log/slog"
	"strings"

	"inkwell/contexts/identity/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity/account-service/domain/errors"
	"inkwell/contexts/identity/account-service/ports"
)

// Service implements registration, login and per-request authentication.
type Service struct {
	Profiles ports.ProfileRepository
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenCodec
	Logger   *slog.Logger
}

// Register hashes the password and inserts a profile with the default
// "user" role. Credentials are accepted as-is: the store enforces username
// uniqueness, nothing enforces username or password shape.
func (s Service) Register(ctx context.Context, username string, password string) (entities.UserProfile, error) {
	username = strings.TrimSpace(username)

	hash, err := s.Hasher.Hash(password)
	if err != nil {
		return entities.UserProfile{}, err
	}

	profile, err := s.Profiles.CreateProfile(ctx, entities.UserProfile{
		Username:     username,
		PasswordHash: hash,
		Role:         ports.RoleUser,
	})
	if err != nil {
		return entities.UserProfile{}, err
	}

	ResolveLogger(s.Logger).Info("profile registered",
		"event", "account_profile_registered",
		"module", "identity/account-service",
		"layer", "application",
		"username", profile.Username,
	)
	return profile, nil
}

// Login verifies the credentials and issues a bearer token carrying the
// username as subject plus the role at issuance time. Unknown username and
// wrong password collapse into the same error so callers cannot enumerate
// accounts.
func (s Service) Login(ctx context.Context, username string, password string) (string, error) {
	profile, err := s.Profiles.GetProfileByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return "", domainerrors.ErrInvalidCredentials
	}
	if !s.Hasher.Verify(password, profile.PasswordHash) {
		return "", domainerrors.ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(ports.TokenClaims{
		Subject: profile.Username,
		Role:    profile.Role,
	})
	if err != nil {
		return "", err
	}

	ResolveLogger(s.Logger).Info("login succeeded",
		"event", "account_login_succeeded",
		"module", "identity/account-service",
		"layer", "application",
		"username", profile.Username,
	)
	return token, nil
}

// Authenticate decodes the token and rebuilds the identity from the current
// store record. The role embedded in the token is deliberately ignored:
// authorization is re-derived from stored state on every request, so a
// role change applies to tokens issued before it and a forged role claim
// buys nothing. The signature check is the only forgery defense.
func (s Service) Authenticate(ctx context.Context, token string) (entities.Identity, error) {
	claims, err := s.Tokens.Decode(token)
	if err != nil {
		return entities.Identity{}, err
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return entities.Identity{}, domainerrors.ErrMissingSubject
	}

	profile, err := s.Profiles.GetProfileByUsername(ctx, claims.Subject)
	if err != nil {
		return entities.Identity{}, err
	}

	return entities.Identity{
		UserID:   profile.UserID,
		Username: profile.Username,
		Role:     profile.Role,
	}, nil
}

// RequireAdmin gates mutating operations. It passes the identity through
// unchanged on success.
func (s Service) RequireAdmin(identity entities.Identity) (entities.Identity, error) {
	if !ports.IsAdminRole(identity.Role) {
		return entities.Identity{}, domainerrors.ErrAdminRequired
	}
	return identity, nil
}
