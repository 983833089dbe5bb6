package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOAuth(t *testing.T, tokenURL string) *XOAuth {
	t.Helper()
	logger, _ := test.NewNullLogger()
	return NewXOAuth(OAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		RedirectURL:  "http://localhost:8080/callback",
		AuthURL:      "https://x.com/i/oauth2/authorize",
		TokenURL:     tokenURL,
		Scopes:       []string{"users.read", "tweet.read"},
	}, http.DefaultClient, logger)
}

// startLogin runs /login and returns the state from the redirect.
func startLogin(t *testing.T, a *XOAuth) string {
	t.Helper()
	w := httptest.NewRecorder()
	require.True(t, a.TryHandle(w, httptest.NewRequest(http.MethodGet, LoginPath, nil)))
	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	return location.Query().Get("state")
}

func TestXOAuth_TryHandle_OtherPaths(t *testing.T) {
	a := newTestOAuth(t, "http://unused")

	for _, path := range []string{"/", "/dashboard", "/loginx", "/healthz"} {
		w := httptest.NewRecorder()
		assert.False(t, a.TryHandle(w, httptest.NewRequest(http.MethodGet, path, nil)), path)
		assert.Equal(t, 0, w.Body.Len())
	}
}

func TestXOAuth_Login(t *testing.T) {
	// Arrange
	a := newTestOAuth(t, "http://unused")
	w := httptest.NewRecorder()

	// Act
	handled := a.TryHandle(w, httptest.NewRequest(http.MethodGet, LoginPath, nil))

	// Assert
	require.True(t, handled)
	assert.Equal(t, http.StatusFound, w.Code)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, "x.com", location.Host)
	assert.Equal(t, "/i/oauth2/authorize", location.Path)

	q := location.Query()
	assert.Equal(t, "client-id", q.Get("client_id"))
	assert.Equal(t, "code", q.Get("response_type"))
	assert.Equal(t, "users.read tweet.read", q.Get("scope"))
	assert.Equal(t, "S256", q.Get("code_challenge_method"))
	assert.NotEmpty(t, q.Get("code_challenge"))
	assert.NotEmpty(t, q.Get("state"))
	assert.True(t, a.pending.Contains(q.Get("state")))
}

func TestXOAuth_Callback_Success(t *testing.T) {
	// Arrange
	var form url.Values
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "client-id", user)
		assert.Equal(t, "client-secret", pass)
		require.NoError(t, r.ParseForm())
		form = r.PostForm

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "access-123",
			"token_type":   "bearer",
			"expires_in":   7200,
		})
	}))
	defer tokenServer.Close()

	a := newTestOAuth(t, tokenServer.URL)
	state := startLogin(t, a)

	// Act
	w := httptest.NewRecorder()
	handled := a.TryHandle(w, httptest.NewRequest(http.MethodGet, CallbackPath+"?state="+state+"&code=auth-code", nil))

	// Assert
	require.True(t, handled)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/dashboard", w.Header().Get("Location"))
	assert.Equal(t, "auth-code", form.Get("code"))
	assert.Equal(t, "authorization_code", form.Get("grant_type"))
	assert.NotEmpty(t, form.Get("code_verifier"))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, TokenCookieName, cookies[0].Name)
	assert.Equal(t, "access-123", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
	assert.Greater(t, cookies[0].MaxAge, 0)
	assert.False(t, a.pending.Contains(state))
}

func TestXOAuth_Callback_StateIsSingleUse(t *testing.T) {
	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"a","token_type":"bearer"}`))
	}))
	defer tokenServer.Close()

	a := newTestOAuth(t, tokenServer.URL)
	state := startLogin(t, a)
	target := CallbackPath + "?state=" + state + "&code=c"

	first := httptest.NewRecorder()
	a.TryHandle(first, httptest.NewRequest(http.MethodGet, target, nil))
	second := httptest.NewRecorder()
	a.TryHandle(second, httptest.NewRequest(http.MethodGet, target, nil))

	assert.Equal(t, http.StatusFound, first.Code)
	assert.Equal(t, http.StatusBadRequest, second.Code)
}

func TestXOAuth_Callback_Errors(t *testing.T) {
	failingTokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":"invalid_client"}`))
	}))
	defer failingTokenServer.Close()

	tests := []struct {
		name     string
		query    func(state string) string
		expected int
		body     string
	}{
		{"unknown state", func(string) string { return "?state=forged&code=c" }, http.StatusBadRequest, "invalid state parameter"},
		{"missing state", func(string) string { return "?code=c" }, http.StatusBadRequest, "invalid state parameter"},
		{"denied", func(s string) string { return "?error=access_denied&state=" + s }, http.StatusBadRequest, "access_denied"},
		{"missing code", func(s string) string { return "?state=" + s }, http.StatusBadRequest, "missing authorization code"},
		{"exchange fails", func(s string) string { return "?state=" + s + "&code=c" }, http.StatusBadGateway, "failed to exchange token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newTestOAuth(t, failingTokenServer.URL)
			state := startLogin(t, a)

			w := httptest.NewRecorder()
			handled := a.TryHandle(w, httptest.NewRequest(http.MethodGet, CallbackPath+tt.query(state), nil))

			assert.True(t, handled)
			assert.Equal(t, tt.expected, w.Code)
			assert.Contains(t, w.Body.String(), tt.body)
			assert.Empty(t, w.Result().Cookies())
		})
	}
}

func TestXOAuth_Logout(t *testing.T) {
	a := newTestOAuth(t, "http://unused")
	w := httptest.NewRecorder()

	handled := a.TryHandle(w, httptest.NewRequest(http.MethodGet, LogoutPath, nil))

	require.True(t, handled)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, TokenCookieName, cookies[0].Name)
	assert.Equal(t, "", cookies[0].Value)
	assert.Less(t, cookies[0].MaxAge, 0)
}
