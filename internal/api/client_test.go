package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ErrorKinds(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{"validation", http.StatusBadRequest, `{"error":"title must be provided"}`, KindValidation, "title must be provided"},
		{"not found", http.StatusNotFound, `{"error":"Job post not found"}`, KindValidation, "Job post not found"},
		{"unauthorized", http.StatusUnauthorized, `{"error":"Not signed in"}`, KindAuth, "Not signed in"},
		{"forbidden", http.StatusForbidden, `{"error":"User doesn't have permission to access"}`, KindAuth, "User doesn't have permission to access"},
		{"server", http.StatusInternalServerError, `{"error":"boom"}`, KindServer, "boom"},
		{"no message fallback", http.StatusBadGateway, `not-json`, KindServer, "request failed with status 502"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client, err := New(server.URL)
			require.NoError(t, err)

			err = client.GetJSON(context.Background(), "/anything", nil, &struct{}{})
			var apiErr *Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.wantKind, apiErr.Kind)
			assert.Equal(t, tt.status, apiErr.Status)
			assert.Equal(t, tt.wantMsg, apiErr.Message)
		})
	}
}

func TestClient_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // nothing is listening anymore

	client, err := New(server.URL)
	require.NoError(t, err)

	err = client.GetJSON(context.Background(), "/anything", nil, &struct{}{})
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Zero(t, apiErr.Status)
}

func TestClient_ForwardsCookies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/login":
			http.SetCookie(w, &http.Cookie{Name: "session", Value: "tok", Path: "/"})
			_, _ = w.Write([]byte(`{}`))
		case "/check":
			cookie, err := r.Cookie("session")
			if err != nil || cookie.Value != "tok" {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Not signed in"}`))
				return
			}
			_, _ = w.Write([]byte(`{}`))
		}
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	require.NoError(t, client.SendJSON(context.Background(), http.MethodPost, "/login", nil, nil))
	// session cookie from the login response rides on the next request
	assert.NoError(t, client.GetJSON(context.Background(), "/check", nil, &struct{}{}))
}

func TestClient_AuthFailureHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"Session expired"}`))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	fired := false
	client.OnAuthFailure(func() { fired = true })

	_ = client.GetJSON(context.Background(), "/auth/me", nil, &struct{}{})
	assert.True(t, fired)
}

func TestClient_FetchBinary(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write([]byte("pdf-bytes"))
	}))
	defer server.Close()

	client, err := New(server.URL)
	require.NoError(t, err)

	content, err := client.FetchBinary(context.Background(), "/resumes/abc")
	require.NoError(t, err)
	assert.Equal(t, []byte("pdf-bytes"), content)
}
