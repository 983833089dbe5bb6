package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseClient_GetJSON(t *testing.T) {
	// Arrange
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "/2/things", r.URL.Path)
		assert.Equal(t, "b", r.URL.Query().Get("a"))
		w.Write([]byte(`{"name":"thing"}`))
	}))
	defer server.Close()

	client := NewBaseClient(server.URL+"/", server.Client())
	var result struct {
		Name string `json:"name"`
	}

	// Act
	err := client.GetJSON(context.Background(), "get thing", "tok", "/2/things", url.Values{"a": {"b"}}, &result)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "thing", result.Name)
}

func TestBaseClient_GetJSON_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"title":"Too Many Requests"}`))
	}))
	defer server.Close()

	client := NewBaseClient(server.URL, server.Client())
	var result map[string]interface{}

	err := client.GetJSON(context.Background(), "get thing", "tok", "/2/things", nil, &result)

	require.Error(t, err)
	upstreamErr, ok := IsUpstreamError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusTooManyRequests, upstreamErr.StatusCode)
	assert.Equal(t, `get thing: 429 {"title":"Too Many Requests"}`, err.Error())
}

func TestBaseClient_GetJSON_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewBaseClient(server.URL, server.Client())
	var result map[string]interface{}

	err := client.GetJSON(context.Background(), "get thing", "tok", "/x", nil, &result)

	require.Error(t, err)
	_, ok := IsUpstreamError(err)
	assert.False(t, ok)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestIsUpstreamError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", &UpstreamError{Op: "get user", StatusCode: 401, Body: "nope"})

	upstreamErr, ok := IsUpstreamError(wrapped)

	require.True(t, ok)
	assert.Equal(t, 401, upstreamErr.StatusCode)
	_, ok = IsUpstreamError(errors.New("plain"))
	assert.False(t, ok)
}

func TestNewBaseClient_DefaultHTTPClient(t *testing.T) {
	client := NewBaseClient("https://api.x.com", nil)

	assert.Equal(t, http.DefaultClient, client.HTTPClient)
}
