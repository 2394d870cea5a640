// Package jwtx reads claims from access tokens issued by the neatdog API.
//
// The client cannot verify signatures (it does not hold the server key), so
// these helpers are for display only and never gate authentication.
package jwtx

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ExpiresAt returns the token's exp claim. ok is false when the token is
// not a JWT or carries no exp.
func ExpiresAt(token string) (exp time.Time, ok bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time.UTC(), true
}

// Remaining is how long the token stays valid after now, truncated to the
// second. Expired tokens report zero.
func Remaining(token string, now time.Time) (time.Duration, bool) {
	exp, ok := ExpiresAt(token)
	if !ok {
		return 0, false
	}
	d := exp.Sub(now).Truncate(time.Second)
	if d < 0 {
		d = 0
	}
	return d, true
}
