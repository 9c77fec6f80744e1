// internal/pkg/session/cookies.go
package session

import (
	"net/http"
)

// Cookie names the Route Guard inspects. Earlier client iterations used
// several names for the same value (orgId, activeOrganizationId); these are
// the canonical ones.
const (
	TokenCookie = "token"
	OrgCookie   = "currentOrgId"
)

// MirrorToken mirrors the token into a cookie so the Route Guard can see it
// before any session lookup happens.
func MirrorToken(w http.ResponseWriter, token string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookie,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// MirrorOrg mirrors the active organization id, same tick as the store write.
func MirrorOrg(w http.ResponseWriter, orgID string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     OrgCookie,
		Value:    orgID,
		Path:     "/",
		MaxAge:   maxAge,
		SameSite: http.SameSiteLaxMode,
	})
}

// DropCookies expires both mirrors. Used on logout; the 401/403 path only
// clears the store, matching the observed client behavior where the cookie
// copy could outlive the cleared storage.
func DropCookies(w http.ResponseWriter) {
	for _, name := range []string{TokenCookie, OrgCookie} {
		http.SetCookie(w, &http.Cookie{
			Name:     name,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			SameSite: http.SameSiteLaxMode,
		})
	}
}
