// Package auth handles the X OAuth 2.0 login flow and the credential
// presented by incoming requests.
package auth

import "net/http"

// TokenCookieName is the cookie holding the user's X access token.
const TokenCookieName = "x_access_token"

// APIKeyParam is the query parameter accepted as a credential by
// programmatic clients.
const APIKeyParam = "apiKey"

// Middleware intercepts authentication routes ahead of the application router.
type Middleware interface {
	// TryHandle writes a response and returns true when r belongs to the
	// auth flow; otherwise it leaves w untouched and returns false.
	TryHandle(w http.ResponseWriter, r *http.Request) bool
}

// Credential returns the bearer token of r: the x_access_token cookie when
// present, else the apiKey query parameter. It returns "" when neither is set.
func Credential(r *http.Request) string {
	if cookie, err := r.Cookie(TokenCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	return r.URL.Query().Get(APIKeyParam)
}

// Passthrough is a Middleware that handles nothing. It is used when no OAuth
// client is configured and credentials arrive through apiKey only.
type Passthrough struct{}

// TryHandle always returns false.
func (Passthrough) TryHandle(w http.ResponseWriter, r *http.Request) bool {
	return false
}
