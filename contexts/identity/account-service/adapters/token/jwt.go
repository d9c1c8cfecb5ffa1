package tokenadapter

import (
	"strings"
	"time"

	jwtstd "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	domainerrors "inkwell/contexts/identity/account-service/domain/errors"
	"inkwell/contexts/identity/account-service/ports"
)

// DefaultTTL bounds token lifetime when no TTL is configured.
const DefaultTTL = 24 * time.Hour

type sessionClaims struct {
	jwtstd.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// Codec signs and verifies session tokens with a symmetric HS256 key.
type Codec struct {
	key []byte
	ttl time.Duration
}

func NewCodec(key []byte, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Codec{key: key, ttl: ttl}
}

func (c *Codec) Issue(claims ports.TokenClaims) (string, error) {
	now := time.Now().UTC()
	token := jwtstd.NewWithClaims(jwtstd.SigningMethodHS256, sessionClaims{
		RegisteredClaims: jwtstd.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   claims.Subject,
			IssuedAt:  jwtstd.NewNumericDate(now),
			ExpiresAt: jwtstd.NewNumericDate(now.Add(c.ttl)),
		},
		Role: claims.Role,
	})
	return token.SignedString(c.key)
}

// Decode verifies the signature and expiry and returns the embedded claims.
// Any parse or verification failure, including a token signed with another
// key, comes back as ErrInvalidToken without detail.
func (c *Codec) Decode(raw string) (ports.TokenClaims, error) {
	claims := &sessionClaims{}
	token, err := jwtstd.ParseWithClaims(strings.TrimSpace(raw), claims, func(*jwtstd.Token) (any, error) {
		return c.key, nil
	}, jwtstd.WithValidMethods([]string{jwtstd.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return ports.TokenClaims{}, domainerrors.ErrInvalidToken
	}
	if strings.TrimSpace(claims.Subject) == "" {
		return ports.TokenClaims{}, domainerrors.ErrMissingSubject
	}
	return ports.TokenClaims{
		Subject: claims.Subject,
		Role:    claims.Role,
	}, nil
}
