package utils

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoExpiry is returned by [TokenExpiry] for tokens without an exp claim.
var ErrNoExpiry = errors.New("token has no expiry")

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// TokenExpiry returns the exp claim of tokenString. The signature is not
// verified: the client only needs to know when to authenticate again, the
// store does the verification.
func TokenExpiry(tokenString string) (time.Time, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, err
	}

	exp, err := token.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, err
	}
	if exp == nil {
		return time.Time{}, ErrNoExpiry
	}

	return exp.Time, nil
}

// TokenUsable reports whether tokenString is non-empty and not expired at
// now. Tokens without an exp claim never expire.
func TokenUsable(tokenString string, now time.Time) bool {
	if tokenString == "" {
		return false
	}

	exp, err := TokenExpiry(tokenString)
	if errors.Is(err, ErrNoExpiry) {
		return true
	}
	if err != nil {
		return false
	}

	return now.Before(exp)
}
