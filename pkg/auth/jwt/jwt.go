// Package jwt provides JWT-based authentication.
//
// It implements the auth.Authenticator interface using JSON Web Tokens
// signed with an HMAC key. Tokens are opaque bearer credentials from the
// client's point of view: the server issues one on login/registration and
// verifies it on protected routes, but does not track its lifecycle
// afterwards.
//
// Usage:
//
//	jwtAuth, err := jwt.New(
//	    jwt.WithKey("your-secret-key-min-32-chars-long"),
//	    jwt.WithExpired(30 * 24 * time.Hour),
//	)
//	token, err := jwtAuth.Sign(ctx, userID)
//	claims, err := jwtAuth.Verify(ctx, tokenString)
package jwt

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/Afzalshaikh78/ImageGenerator/pkg/auth"
	apierrors "github.com/Afzalshaikh78/ImageGenerator/pkg/errors"
	jwtopts "github.com/Afzalshaikh78/ImageGenerator/pkg/options/jwt"
)

// JWT implements auth.Authenticator using JSON Web Tokens.
type JWT struct {
	opts   *jwtopts.Options
	method jwt.SigningMethod
}

var _ auth.Authenticator = (*JWT)(nil)

// Option is a functional option for the JWT authenticator.
type Option func(*JWT)

// New creates a new JWT authenticator.
func New(opts ...Option) (*JWT, error) {
	j := &JWT{
		opts: jwtopts.NewOptions(),
	}

	for _, opt := range opts {
		opt(j)
	}

	if err := j.opts.Complete(); err != nil {
		return nil, fmt.Errorf("complete options: %w", err)
	}
	if err := j.opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate options: %w", err)
	}

	j.method = jwt.GetSigningMethod(j.opts.SigningMethod)
	if j.method == nil {
		return nil, fmt.Errorf("unsupported signing method: %s", j.opts.SigningMethod)
	}

	return j, nil
}

// WithOptions sets the JWT options.
func WithOptions(opts *jwtopts.Options) Option {
	return func(j *JWT) {
		if opts != nil {
			j.opts = opts
		}
	}
}

// WithKey sets the signing key.
func WithKey(key string) Option {
	return func(j *JWT) {
		j.opts.Key = key
	}
}

// WithExpired sets the token expiration duration.
func WithExpired(d time.Duration) Option {
	return func(j *JWT) {
		j.opts.Expired = d
	}
}

// WithIssuer sets the token issuer.
func WithIssuer(issuer string) Option {
	return func(j *JWT) {
		j.opts.Issuer = issuer
	}
}

// Type returns the authenticator type.
func (j *JWT) Type() string {
	return "jwt"
}

// customClaims carries the registered claims plus extra custom claims.
type customClaims struct {
	jwt.RegisteredClaims
	Extra map[string]interface{} `json:"extra,omitempty"`
}

// Sign creates a new token for the given subject.
func (j *JWT) Sign(_ context.Context, subject string, opts ...auth.SignOption) (auth.Token, error) {
	signOpts := &auth.SignOptions{}
	for _, opt := range opts {
		opt(signOpts)
	}

	now := time.Now()
	expiresAt := now.Add(j.opts.Expired)
	if signOpts.ExpiresAt != nil {
		expiresAt = *signOpts.ExpiresAt
	}

	tokenID, err := generateTokenID()
	if err != nil {
		return nil, err
	}

	claims := &customClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			Issuer:    j.opts.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(now),
			ID:        tokenID,
		},
		Extra: signOpts.Extra,
	}

	token := jwt.NewWithClaims(j.method, claims)

	tokenString, err := token.SignedString([]byte(j.opts.Key))
	if err != nil {
		return nil, apierrors.ErrInternal.WithCause(err)
	}

	return &auth.BaseToken{
		AccessToken: tokenString,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt.Unix(),
		ExpiresIn:   int64(expiresAt.Sub(now).Seconds()),
	}, nil
}

// Verify validates the token and returns the claims.
func (j *JWT) Verify(_ context.Context, tokenString string) (*auth.Claims, error) {
	if tokenString == "" {
		return nil, apierrors.ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &customClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != j.method.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(j.opts.Key), nil
	})
	if err != nil {
		return nil, mapParseError(err)
	}

	if !token.Valid {
		return nil, apierrors.ErrInvalidToken
	}

	claims, ok := token.Claims.(*customClaims)
	if !ok {
		return nil, apierrors.ErrInvalidToken
	}

	out := &auth.Claims{
		Subject: claims.Subject,
		Issuer:  claims.Issuer,
		ID:      claims.ID,
		Extra:   claims.Extra,
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Unix()
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Unix()
	}
	if claims.NotBefore != nil {
		out.NotBefore = claims.NotBefore.Unix()
	}
	return out, nil
}

// mapParseError converts golang-jwt parse errors into the business taxonomy.
// All variants surface the same generic errno to the client.
func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return apierrors.ErrInvalidToken.WithCause(err)
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return apierrors.ErrInvalidToken.WithCause(err)
	case errors.Is(err, jwt.ErrTokenMalformed):
		return apierrors.ErrInvalidToken.WithCause(err)
	default:
		return apierrors.ErrInvalidToken.WithCause(err)
	}
}

// generateTokenID produces a random 16-byte hex token ID (jti claim).
func generateTokenID() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate token id: %w", err)
	}
	return hex.EncodeToString(b), nil
}
