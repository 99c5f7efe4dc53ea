// Package auth carries the caller identity through request contexts and
// parses the backend-issued access token. Token validation is the
// backend's job; the gateway only needs the subject and role claims for
// routing and cache keying.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
)

type Role string

const (
	RoleRenter Role = "RENTER"
	RoleStaff  Role = "STAFF"
	RoleAdmin  Role = "ADMIN"
)

type Claims struct {
	UserID string `json:"sub"`
	Email  string `json:"email"`
	Role   Role   `json:"role"`
	jwt.RegisteredClaims
}

type ctxKey int

const (
	tokenKey ctxKey = iota
	claimsKey
)

func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey, token)
}

func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenKey).(string)
	return token, ok && token != ""
}

func WithClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

func ClaimsFromContext(ctx context.Context) (*Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*Claims)
	return claims, ok
}

// ParseClaims decodes the token claims with the shared HMAC secret. An
// empty secret skips signature verification, matching local setups where
// the backend signs with a key the gateway does not hold.
func ParseClaims(token, secret string) (*Claims, error) {
	claims := &Claims{}
	parser := jwt.NewParser(jwt.WithValidMethods([]string{"HS256", "HS384", "HS512"}))
	if secret == "" {
		if _, _, err := parser.ParseUnverified(token, claims); err != nil {
			return nil, errors.Wrap(err, "parse token")
		}
		return claims, nil
	}
	if _, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	}); err != nil {
		return nil, errors.Wrap(err, "parse token")
	}
	return claims, nil
}
