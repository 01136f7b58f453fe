// Package auth verifies the HS256 bearer tokens issued to inspection owners
package auth

import (
	"errors"
	"strings"
	"time"

	perr "hidegrade/internal/platform/errors"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the owner id in sub
type Claims struct {
	jwt.RegisteredClaims
}

// Verifier checks tokens signed with a shared secret
type Verifier struct {
	secret []byte
	issuer string
	leeway time.Duration
	now    func() time.Time
}

// Option configures a Verifier
type Option func(*Verifier)

// WithIssuer requires the iss claim to match
func WithIssuer(iss string) Option { return func(v *Verifier) { v.issuer = strings.TrimSpace(iss) } }

// WithLeeway tolerates clock skew on exp and nbf
func WithLeeway(d time.Duration) Option { return func(v *Verifier) { v.leeway = d } }

// WithNow pins the verification clock
func WithNow(fn func() time.Time) Option { return func(v *Verifier) { v.now = fn } }

// NewVerifier builds a Verifier, an empty secret is a configuration error
func NewVerifier(secret string, opts ...Option) (*Verifier, error) {
	if secret == "" {
		return nil, perr.New(perr.ErrorCodeInvalidArgument, "auth: empty jwt secret")
	}
	v := &Verifier{secret: []byte(secret), leeway: 30 * time.Second, now: time.Now}
	for _, o := range opts {
		o(v)
	}
	return v, nil
}

// Owner validates raw and returns its subject
func (v *Verifier) Owner(raw string) (string, error) {
	popts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithTimeFunc(v.now),
		jwt.WithExpirationRequired(),
	}
	if v.issuer != "" {
		popts = append(popts, jwt.WithIssuer(v.issuer))
	}

	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return v.secret, nil
	}, popts...)
	if err != nil {
		return "", perr.Wrap(err, perr.ErrorCodeUnauthorized, "invalid bearer token")
	}
	if !tok.Valid {
		return "", perr.Unauthorizedf("invalid bearer token")
	}
	sub := strings.TrimSpace(claims.Subject)
	if sub == "" {
		return "", perr.Unauthorizedf("token has no subject")
	}
	return sub, nil
}

// Issue signs a token for owner valid for ttl
func (v *Verifier) Issue(owner string, ttl time.Duration) (string, error) {
	now := v.now()
	claims := Claims{RegisteredClaims: jwt.RegisteredClaims{
		Subject:   owner,
		Issuer:    v.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}
