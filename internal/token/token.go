// Package token encodes and decodes the signed identity assertion shared by
// the credential and product services.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for any token that fails verification:
// bad signature, wrong issuer or audience, expired, or malformed claims.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the verified caller reference carried by a token.
type Identity struct {
	UserID string
	Email  string
}

type claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

// Codec issues and resolves HS256-signed tokens. It holds only immutable
// configuration and is safe for concurrent use.
type Codec struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewCodec creates a Codec. The secret is process-wide configuration loaded
// once at startup.
func NewCodec(secret, issuer, audience string, ttl time.Duration) *Codec {
	return &Codec{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue signs a token binding the user id and email, scoped to the codec's
// issuer and audience and expiring after the configured TTL.
func (c *Codec) Issue(userID, email string) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    c.issuer,
			Audience:  jwt.ClaimStrings{c.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserID: userID,
		Email:  email,
	})

	signed, err := t.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Resolve verifies a token and extracts the caller identity. Any failure is
// reported as ErrInvalidToken; callers treat it as unauthenticated.
func (c *Codec) Resolve(tokenString string) (*Identity, error) {
	parsed := &claims{}
	t, err := jwt.ParseWithClaims(tokenString, parsed, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithIssuer(c.issuer), jwt.WithAudience(c.audience))
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	// The userId claim must be a well-formed id, not just present.
	if _, err := uuid.Parse(parsed.UserID); err != nil {
		return nil, ErrInvalidToken
	}

	return &Identity{UserID: parsed.UserID, Email: parsed.Email}, nil
}
