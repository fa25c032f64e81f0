// Package token implements stateless issuance and validation of signed
// identity tokens (HS256 JWT). A Manager carries the signing configuration
// explicitly; nothing in this package reads ambient state.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tasktrack/internal/errs"
)

// Claims is the attested identity carried by a token.
type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Manager issues and parses identity tokens with a fixed symmetric key,
// issuer, audience and lifetime.
type Manager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
	now      func() time.Time
}

// NewManager constructs a Manager. The secret must be the shared HS256 key;
// ttl bounds the token lifetime from issuance.
func NewManager(secret []byte, issuer, audience string, ttl time.Duration) *Manager {
	return &Manager{
		secret:   secret,
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Issue mints a signed token binding the user id and email. The token expires
// ttl after issuance and is never recorded server-side.
func (m *Manager) Issue(userID uint, email string) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return tok.SignedString(m.secret)
}

// Parse verifies signature, signing method, issuer, audience and expiry.
// Every failure mode collapses into errs.ErrUnauthenticated so callers leak
// nothing about why a token was rejected.
func (m *Manager) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (interface{}, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil || !tok.Valid {
		return nil, errs.ErrUnauthenticated
	}
	return claims, nil
}
