package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

const (
	LoginPath    = "/login"
	CallbackPath = "/callback"
	LogoutPath   = "/logout"

	// pendingLoginTTL bounds how long a user may stay on the consent screen.
	pendingLoginTTL = 10 * time.Minute
	// maxPendingLogins caps the pending-login store; the oldest entries are evicted first.
	maxPendingLogins = 10000
)

// OAuthConfig holds the X OAuth 2.0 client settings.
type OAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AuthURL      string
	TokenURL     string
	Scopes       []string
	CookieSecure bool
}

// XOAuth implements Middleware with the X OAuth 2.0 authorization code flow
// and PKCE. Successful logins store the access token in the x_access_token
// cookie.
type XOAuth struct {
	oauth2Config *oauth2.Config
	pending      *lru.LRU[string, string] // state -> PKCE verifier
	httpClient   *http.Client
	cookieSecure bool
	logger       logrus.FieldLogger
}

// NewXOAuth creates the OAuth middleware. httpClient is used for the token
// exchange; nil means http.DefaultClient.
func NewXOAuth(cfg OAuthConfig, httpClient *http.Client, logger logrus.FieldLogger) *XOAuth {
	return &XOAuth{
		oauth2Config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint: oauth2.Endpoint{
				AuthURL:   cfg.AuthURL,
				TokenURL:  cfg.TokenURL,
				AuthStyle: oauth2.AuthStyleInHeader,
			},
			RedirectURL: cfg.RedirectURL,
			Scopes:      cfg.Scopes,
		},
		pending:      lru.NewLRU[string, string](maxPendingLogins, nil, pendingLoginTTL),
		httpClient:   httpClient,
		cookieSecure: cfg.CookieSecure,
		logger:       logger,
	}
}

// TryHandle serves /login, /callback and /logout.
func (a *XOAuth) TryHandle(w http.ResponseWriter, r *http.Request) bool {
	switch r.URL.Path {
	case LoginPath:
		a.login(w, r)
	case CallbackPath:
		a.callback(w, r)
	case LogoutPath:
		a.logout(w, r)
	default:
		return false
	}
	return true
}

// login redirects to the X consent screen.
func (a *XOAuth) login(w http.ResponseWriter, r *http.Request) {
	state := uuid.NewString()
	verifier := oauth2.GenerateVerifier()
	a.pending.Add(state, verifier)

	authURL := a.oauth2Config.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier))
	http.Redirect(w, r, authURL, http.StatusFound)
}

// callback exchanges the authorization code and stores the access token.
func (a *XOAuth) callback(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if errParam := query.Get("error"); errParam != "" {
		a.logger.WithField("error", errParam).Warn("authorization denied")
		http.Error(w, "authorization failed: "+errParam, http.StatusBadRequest)
		return
	}

	state := query.Get("state")
	verifier, ok := a.pending.Get(state)
	if state == "" || !ok {
		http.Error(w, "invalid state parameter", http.StatusBadRequest)
		return
	}
	a.pending.Remove(state)

	code := query.Get("code")
	if code == "" {
		http.Error(w, "missing authorization code", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	if a.httpClient != nil {
		ctx = context.WithValue(ctx, oauth2.HTTPClient, a.httpClient)
	}

	token, err := a.oauth2Config.Exchange(ctx, code, oauth2.VerifierOption(verifier))
	if err != nil {
		a.logger.WithError(err).Error("token exchange failed")
		http.Error(w, "failed to exchange token", http.StatusBadGateway)
		return
	}

	cookie := &http.Cookie{
		Name:     TokenCookieName,
		Value:    token.AccessToken,
		Path:     "/",
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	}
	if maxAge := int(time.Until(token.Expiry).Seconds()); !token.Expiry.IsZero() && maxAge > 0 {
		cookie.MaxAge = maxAge
	}
	http.SetCookie(w, cookie)

	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// logout clears the token cookie.
func (a *XOAuth) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, "/", http.StatusFound)
}
