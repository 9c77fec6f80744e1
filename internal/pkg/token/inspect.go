// internal/pkg/token/inspect.go
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Info is what could be read out of a token without validating it.
type Info struct {
	Subject   string
	ExpiresAt time.Time
}

// Inspect peeks at a bearer token. Tokens are opaque as far as the gateway's
// contract goes, and the upstream CRM is the only party that validates them.
// Most of them happen to be JWTs though, and reading exp lets the session TTL
// follow the token instead of outliving it. Non-JWT tokens return ok=false
// and the caller falls back to the default TTL.
func Inspect(raw string) (Info, bool) {
	parser := jwt.NewParser()

	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return Info{}, false
	}

	var info Info
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}

	return info, true
}
