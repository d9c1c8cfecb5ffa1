package ports

import (
	"context"
	"strings"

	"inkwell/contexts/identity/account-service/domain/entities"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// IsAdminRole reports whether role names the admin tier. The comparison is
// case-insensitive: stored roles are lowercase but older rows carry mixed
// casing.
func IsAdminRole(role string) bool {
	return strings.EqualFold(strings.TrimSpace(role), RoleAdmin)
}

// TokenClaims is the payload carried inside a signed session token.
type TokenClaims struct {
	Subject string
	Role    string
}

// TokenCodec issues and decodes signed bearer tokens. Decode performs the
// cryptographic check only; resolving the subject against the store is the
// application service's job.
type TokenCodec interface {
	Issue(claims TokenClaims) (string, error)
	Decode(token string) (TokenClaims, error)
}

// PasswordHasher wraps one-way password hashing. Verify reports mismatch as
// false, never as an error. No password policy is enforced here.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password string, hash string) bool
}

// ProfileRepository is the credential store port for account records.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, profile entities.UserProfile) (entities.UserProfile, error)
	GetProfileByUsername(ctx context.Context, username string) (entities.UserProfile, error)
}
